package model_test

import (
	"testing"

	"github.com/okian/splitboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassKey(t *testing.T) {
	Convey("Given class names from the feed", t, func() {
		Convey("Then whitespace runs collapse to single dashes", func() {
			So(model.ClassKey("M 21"), ShouldEqual, "M-21")
			So(model.ClassKey("W  21  E"), ShouldEqual, "W-21-E")
			So(model.ClassKey(" Open \t Course "), ShouldEqual, "Open-Course")
		})

		Convey("And names without whitespace pass through", func() {
			So(model.ClassKey("M21"), ShouldEqual, "M21")
		})

		Convey("And a Class derives its key from its name", func() {
			c := model.Class{Name: "M 21"}
			So(c.Key(), ShouldEqual, "M-21")
		})
	})
}

func TestOptInt(t *testing.T) {
	Convey("Given optional integers", t, func() {
		Convey("Then Int produces a valid value", func() {
			So(model.Int(45), ShouldResemble, model.OptInt{Value: 45, Valid: true})
		})

		Convey("And the zero value is absent, not zero seconds", func() {
			var v model.OptInt
			So(v.Valid, ShouldBeFalse)
			So(v, ShouldNotResemble, model.Int(0))
		})
	})
}
