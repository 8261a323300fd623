// Package metrics provides Prometheus metrics for the results board service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics - one sample per feed document
	ingestsTotal     prometheus.Counter
	ingestErrors     prometheus.Counter
	ingestDuration   prometheus.Histogram
	classesTotal     prometheus.Gauge
	competitorsTotal prometheus.Gauge
	lastIngestUnix   prometheus.Gauge

	// Detail drill-down metrics
	detailLookups  prometheus.Counter
	detailNotFound prometheus.Counter

	// Snapshot store metrics
	snapshotSaves  prometheus.Counter
	snapshotLoads  prometheus.Counter
	snapshotErrors prometheus.Counter

	// Feed poller metrics
	pollCycles prometheus.Counter
	pollErrors prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "splitboard",
		subsystem:        "results",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.ingestsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingests_total",
		Help:      "Total number of result documents successfully ingested",
	})

	m.ingestErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingest_errors_total",
		Help:      "Total number of documents rejected as malformed",
	})

	m.ingestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingest_duration_milliseconds",
		Help:      "Histogram of full parse-extract-commit cycles in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.classesTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "classes_total",
		Help:      "Number of classes on the current board",
	})

	m.competitorsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "competitors_total",
		Help:      "Number of competitors across all classes on the current board",
	})

	m.lastIngestUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_ingest_unix",
		Help:      "Unix time of the last successful ingest",
	})

	m.detailLookups = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "detail_lookups_total",
		Help:      "Total number of competitor detail lookups",
	})

	m.detailNotFound = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "detail_not_found_total",
		Help:      "Total number of detail lookups that matched no competitor",
	})

	m.snapshotSaves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_saves_total",
		Help:      "Total number of snapshots written to the store",
	})

	m.snapshotLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_loads_total",
		Help:      "Total number of snapshots read from the store",
	})

	m.snapshotErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_errors_total",
		Help:      "Total number of snapshot store failures (non-fatal)",
	})

	m.pollCycles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_cycles_total",
		Help:      "Total number of feed fetch cycles",
	})

	m.pollErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_errors_total",
		Help:      "Total number of fetch cycles that failed and kept the old board",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// RecordIngest increments the ingest counter.
func RecordIngest() {
	globalManager.ingestsTotal.Inc()
}

// RecordIngestError increments the malformed-document counter.
func RecordIngestError() {
	globalManager.ingestErrors.Inc()
}

// RecordIngestDuration records one parse-extract-commit cycle in milliseconds.
func RecordIngestDuration(latencyMs float64) {
	globalManager.ingestDuration.Observe(latencyMs)
}

// UpdateClassesTotal sets the current class count.
func UpdateClassesTotal(count int) {
	globalManager.classesTotal.Set(float64(count))
}

// UpdateCompetitorsTotal sets the current competitor count.
func UpdateCompetitorsTotal(count int) {
	globalManager.competitorsTotal.Set(float64(count))
}

// UpdateLastIngestUnix sets the time of the last successful ingest.
func UpdateLastIngestUnix(unix int64) {
	globalManager.lastIngestUnix.Set(float64(unix))
}

// RecordDetailLookup increments the detail lookup counter.
func RecordDetailLookup() {
	globalManager.detailLookups.Inc()
}

// RecordDetailNotFound increments the missed-lookup counter.
func RecordDetailNotFound() {
	globalManager.detailNotFound.Inc()
}

// RecordSnapshotSave increments the snapshot save counter.
func RecordSnapshotSave() {
	globalManager.snapshotSaves.Inc()
}

// RecordSnapshotLoad increments the snapshot load counter.
func RecordSnapshotLoad() {
	globalManager.snapshotLoads.Inc()
}

// RecordSnapshotError increments the snapshot failure counter.
func RecordSnapshotError() {
	globalManager.snapshotErrors.Inc()
}

// RecordPollCycle increments the fetch cycle counter.
func RecordPollCycle() {
	globalManager.pollCycles.Inc()
}

// RecordPollError increments the failed fetch cycle counter.
func RecordPollError() {
	globalManager.pollErrors.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
