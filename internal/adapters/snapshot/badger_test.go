package snapshot_test

import (
	"context"
	"testing"

	"github.com/okian/splitboard/internal/adapters/snapshot"
	"github.com/okian/splitboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBadgerStore_RoundTrip(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store, err := snapshot.NewBadgerStore(snapshot.WithInMemory(true))
		So(err, ShouldBeNil)
		defer func() { _ = store.Close() }()

		Convey("When saving an event model", func() {
			ev := model.Event{
				Name:      "Night Relay Quali",
				Timestamp: "2017-06-02T19:00:00+02:00",
				Classes: []model.Class{
					{
						Name: "M 21",
						Results: []model.Summary{
							{
								Name:       "Ana Kos",
								Club:       "OK Azimut",
								Time:       model.Int(500),
								TimeBehind: model.Int(0),
								Status:     "OK",
								Position:   "1",
							},
							{
								Name:   "Cene Mur",
								Club:   "OL Trzin",
								Status: "DNS",
							},
						},
					},
				},
			}
			So(store.SaveEvent(ctx, ev), ShouldBeNil)

			Convey("Then loading restores all three top-level fields", func() {
				got, err := store.LoadEvent(ctx)
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, ev.Name)
				So(got.Timestamp, ShouldEqual, ev.Timestamp)
				So(got.Classes, ShouldResemble, ev.Classes)
			})

			Convey("And saving again overwrites, never accumulates", func() {
				next := model.Event{Name: "Replacement", Timestamp: "2017-06-03"}
				So(store.SaveEvent(ctx, next), ShouldBeNil)

				got, err := store.LoadEvent(ctx)
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "Replacement")
				So(got.Classes, ShouldBeNil)
			})
		})

		Convey("When loading from an empty store", func() {
			got, err := store.LoadEvent(ctx)

			Convey("Then the zero event comes back, not an error", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, model.Event{})
			})
		})
	})
}
