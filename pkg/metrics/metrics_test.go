package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty or nil option values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the defaults are kept and creation succeeds", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "splitboard")
				So(manager.subsystem, ShouldEqual, "results")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording ingest metrics", func() {
			Convey("Then it should record ingests and errors", func() {
				So(func() {
					RecordIngest()
					RecordIngest()
					RecordIngestError()
				}, ShouldNotPanic)
			})

			Convey("And it should record ingest duration", func() {
				So(func() {
					RecordIngestDuration(1.5)
					RecordIngestDuration(20.0)
				}, ShouldNotPanic)
			})

			Convey("And it should update the board gauges", func() {
				So(func() {
					UpdateClassesTotal(4)
					UpdateCompetitorsTotal(120)
					UpdateLastIngestUnix(1494664262)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording lookup metrics", func() {
			Convey("Then it should record detail lookups and misses", func() {
				So(func() {
					RecordDetailLookup()
					RecordDetailLookup()
					RecordDetailNotFound()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording snapshot metrics", func() {
			Convey("Then it should record saves, loads and errors", func() {
				So(func() {
					RecordSnapshotSave()
					RecordSnapshotLoad()
					RecordSnapshotError()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording poller metrics", func() {
			Convey("Then it should record cycles and failures", func() {
				So(func() {
					RecordPollCycle()
					RecordPollCycle()
					RecordPollError()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests", func() {
				So(func() {
					RecordHTTPRequest("/classes", "GET", "200")
					RecordHTTPRequest("/splits/{class}/{name}", "GET", "404")
				}, ShouldNotPanic)
			})

			Convey("And it should record request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/classes", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/event", "GET", "200", 1.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update memory and goroutines", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024 * 100)
					UpdateSystemGoroutineCount(42)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					UpdateClassesTotal(0)
					UpdateCompetitorsTotal(0)
					UpdateLastIngestUnix(0)
					RecordIngestDuration(0.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty label values", func() {
				So(func() {
					RecordHTTPRequest("", "", "200")
					RecordHTTPRequestDuration("", "", "200", 10.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordIngest()
						UpdateCompetitorsTotal(100 + j)
						RecordIngestDuration(float64(j))
						RecordHTTPRequest("/classes", "GET", "200")
					}
					done <- true
				}()
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordIngest()
			families, err := GetRegistry().Gather()

			Convey("Then our metric families are exposed", func() {
				So(err, ShouldBeNil)

				var found bool
				for _, f := range families {
					if f.GetName() == "splitboard_results_ingests_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}
