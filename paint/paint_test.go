package paint

import (
	"testing"

	"github.com/anisan-cli/seekbar/asset"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseHex(t *testing.T) {
	Convey("ParseHex", t, func() {
		Convey("Should parse long form", func() {
			c, err := ParseHex("#ff0000")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, Red)
		})

		Convey("Should parse short form", func() {
			c, err := ParseHex("#fff")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, White)
		})

		Convey("Should reject garbage", func() {
			_, err := ParseHex("red")
			So(err, ShouldNotBeNil)
		})

		Convey("Hex should round trip", func() {
			So(Hex(Gray), ShouldEqual, "#808080")
		})
	})
}

func TestLuminance(t *testing.T) {
	Convey("Black is darker than white", t, func() {
		So(Luminance(Black), ShouldBeLessThan, Luminance(White))
	})
}

func TestRecorder(t *testing.T) {
	Convey("Given a recorder", t, func() {
		r := NewRecorder(nil)

		Convey("Primitives are kept in paint order", func() {
			r.Clear(White)
			r.FillRect(Rect{X: 1, Y: 2, W: 3, H: 4}, Gray)
			r.DrawCircle(5, 6, 7, Red)

			ops := r.Ops()
			So(ops, ShouldHaveLength, 3)
			So(ops[0].Kind, ShouldEqual, OpClear)
			So(ops[1].Rect, ShouldResemble, Rect{X: 1, Y: 2, W: 3, H: 4})
			So(ops[2].Radius, ShouldEqual, 7)
		})

		Convey("Text is measured with the approximate measurer", func() {
			r.DrawText("abcd", 10, 20, Font{Size: 20}, Black)

			text := r.Filter(OpText)
			So(text, ShouldHaveLength, 1)
			So(text[0].Rect.W, ShouldEqual, 40)
			So(text[0].Rect.H, ShouldEqual, 20)
		})

		Convey("Images record their asset name and size", func() {
			table, err := asset.Load(asset.Builtin{Size: 32})
			So(err, ShouldBeNil)

			r.DrawImage(table.Get(asset.Skip), 3, 4)

			img := r.Filter(OpImage)
			So(img, ShouldHaveLength, 1)
			So(img[0].Image, ShouldEqual, asset.Skip)
			So(img[0].Rect.W, ShouldEqual, 32)
		})

		Convey("Reset empties the recording", func() {
			r.Clear(White)
			r.Reset()
			So(r.Ops(), ShouldBeEmpty)
		})
	})

	Convey("Rect.Contains includes its edges", t, func() {
		rect := Rect{X: 10, Y: 10, W: 5, H: 5}
		So(rect.Contains(10, 10), ShouldBeTrue)
		So(rect.Contains(15, 15), ShouldBeTrue)
		So(rect.Contains(16, 12), ShouldBeFalse)
	})
}
