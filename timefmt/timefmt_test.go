package timefmt

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		Convey("Should zero-pad minutes and seconds", func() {
			So(Format(0), ShouldEqual, "00:00")
			So(Format(65), ShouldEqual, "01:05")
			So(Format(600), ShouldEqual, "10:00")
		})

		Convey("Should truncate fractional seconds", func() {
			So(Format(59.999), ShouldEqual, "00:59")
			So(Format(61.5), ShouldEqual, "01:01")
		})

		Convey("Should clamp negative and NaN inputs to zero", func() {
			So(Format(-5), ShouldEqual, "00:00")
			So(Format(math.NaN()), ShouldEqual, "00:00")
		})

		Convey("Should widen minutes rather than wrap", func() {
			So(Format(6000), ShouldEqual, "100:00")
		})

		Convey("Should clamp huge inputs", func() {
			So(Format(math.Inf(1)), ShouldEqual, Format(MaxSeconds))
		})
	})
}

func TestSpan(t *testing.T) {
	Convey("Span", t, func() {
		So(Span(65, 600), ShouldEqual, "01:05 / 10:00")
	})
}
