package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/splitboard/internal/adapters/snapshot"
	service "github.com/okian/splitboard/internal/app"
	"github.com/okian/splitboard/internal/domain/model"
	"github.com/okian/splitboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<ResultList createTime="2017-05-13T10:31:02+02:00">
  <Event><Name>Spring Sprint</Name></Event>
  <ClassResult>
    <Class><Name>M 21</Name></Class>
    <Course><Length>3100</Length><NumberOfControls>3</NumberOfControls></Course>
    <PersonResult>
      <Person><Name><Given>Ana</Given><Family>Kos</Family></Name></Person>
      <Organisation><Name>OK Azimut</Name></Organisation>
      <Result>
        <Time>500</Time>
        <TimeBehind>0</TimeBehind>
        <Position>1</Position>
        <Status>OK</Status>
        <ControlCard>891234</ControlCard>
        <SplitTime><ControlCode>31</ControlCode><Time>120</Time></SplitTime>
        <SplitTime><ControlCode>32</ControlCode><Time>300</Time></SplitTime>
        <SplitTime><ControlCode>33</ControlCode><Time>450</Time></SplitTime>
      </Result>
    </PersonResult>
    <PersonResult>
      <Person><Name><Given>Cene</Given><Family>Mur</Family></Name></Person>
      <Organisation><Name>OK Azimut</Name></Organisation>
      <Result>
        <Status>DidNotStart</Status>
      </Result>
    </PersonResult>
  </ClassResult>
</ResultList>`

func newStartedService(opts ...service.Option) *service.Service {
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	return svc
}

func TestService_Ingest(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newStartedService()
		defer svc.Stop()

		Convey("When ingesting a well-formed document", func() {
			err := svc.Ingest(ctx, []byte(sampleXML))

			Convey("Then the board is replaced", func() {
				So(err, ShouldBeNil)
				ev := svc.Event(ctx)
				So(ev.Name, ShouldEqual, "Spring Sprint")
				So(ev.Timestamp, ShouldEqual, "2017-05-13T10:31:02+02:00")
				So(ev.Classes, ShouldHaveLength, 1)
				So(ev.Classes[0].Results, ShouldHaveLength, 2)
			})

			Convey("And ingesting the same bytes again yields an identical board", func() {
				first := svc.Event(ctx)
				So(svc.Ingest(ctx, []byte(sampleXML)), ShouldBeNil)
				So(svc.Event(ctx), ShouldResemble, first)
			})

			Convey("And a later malformed document keeps the previous board", func() {
				So(svc.Ingest(ctx, []byte("<broken")), ShouldNotBeNil)
				So(svc.Event(ctx).Name, ShouldEqual, "Spring Sprint")
				So(svc.Classes(ctx), ShouldHaveLength, 1)
			})
		})

		Convey("When ingesting garbage on an empty board", func() {
			err := svc.Ingest(ctx, []byte("not xml"))

			Convey("Then the error surfaces and the board stays empty", func() {
				So(err, ShouldNotBeNil)
				So(svc.Event(ctx), ShouldResemble, model.Event{})
			})
		})
	})
}

func TestService_Class(t *testing.T) {
	Convey("Given a service with an ingested board", t, func() {
		ctx := context.Background()
		svc := newStartedService()
		defer svc.Stop()
		So(svc.Ingest(ctx, []byte(sampleXML)), ShouldBeNil)

		Convey("When looking a class up by its sanitized key", func() {
			class, err := svc.Class(ctx, "M-21")

			Convey("Then the class comes back with its raw name", func() {
				So(err, ShouldBeNil)
				So(class.Name, ShouldEqual, "M 21")
				So(class.Results, ShouldHaveLength, 2)
			})
		})

		Convey("When the key matches nothing", func() {
			_, err := svc.Class(ctx, "H-35")

			Convey("Then the not-found sentinel is returned", func() {
				So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_Detail(t *testing.T) {
	Convey("Given a service with an ingested board", t, func() {
		ctx := context.Background()
		svc := newStartedService()
		defer svc.Stop()
		So(svc.Ingest(ctx, []byte(sampleXML)), ShouldBeNil)

		Convey("When looking up an existing competitor", func() {
			detail, err := svc.Detail(ctx, "M-21", "Ana Kos")

			Convey("Then the drill-down record is derived from the raw document", func() {
				So(err, ShouldBeNil)
				So(detail.ControlCard, ShouldEqual, "891234")
				So(detail.Runners, ShouldEqual, 2)
				So(detail.Legs, ShouldHaveLength, 4)
				So(detail.Legs[3].Control, ShouldEqual, "F")
				So(detail.Pace, ShouldResemble, model.Int(161))
			})
		})

		Convey("When the competitor does not exist", func() {
			_, err := svc.Detail(ctx, "M-21", "Nobody Here")

			Convey("Then the lookup reports not found without failing hard", func() {
				So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the class does not exist", func() {
			_, err := svc.Detail(ctx, "H-35", "Ana Kos")

			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a service with no ingested document", t, func() {
		svc := newStartedService()
		defer svc.Stop()

		Convey("Then detail lookups report not found", func() {
			_, err := svc.Detail(context.Background(), "M-21", "Ana Kos")
			So(errors.Is(err, service.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestService_SnapshotRoundTrip(t *testing.T) {
	Convey("Given a service backed by an in-memory snapshot store", t, func() {
		ctx := context.Background()
		store, err := snapshot.NewBadgerStore(snapshot.WithInMemory(true))
		So(err, ShouldBeNil)

		svc := newStartedService(service.WithSnapshotStore(store))
		So(svc.Ingest(ctx, []byte(sampleXML)), ShouldBeNil)
		ingested := svc.Event(ctx)

		Convey("When a second service starts from the same store", func() {
			restored := service.New(service.WithSnapshotStore(store))
			So(restored.Start(ctx), ShouldBeNil)

			Convey("Then the three top-level fields survive the round trip", func() {
				ev := restored.Event(ctx)
				So(ev.Name, ShouldEqual, ingested.Name)
				So(ev.Timestamp, ShouldEqual, ingested.Timestamp)
				So(ev.Classes, ShouldResemble, ingested.Classes)
			})

			restored.Stop()
		})
	})
}

func TestService_GetStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newStartedService()
		defer svc.Stop()

		Convey("Then stats report an empty board", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, true)
			So(stats["classes"], ShouldEqual, 0)
			So(stats["persistent"], ShouldEqual, false)
		})

		Convey("And after an ingest they reflect the board", func() {
			So(svc.Ingest(ctx, []byte(sampleXML)), ShouldBeNil)
			stats := svc.GetStats()
			So(stats["eventName"], ShouldEqual, "Spring Sprint")
			So(stats["classes"], ShouldEqual, 1)
			So(stats["competitors"], ShouldEqual, 2)
		})
	})
}
