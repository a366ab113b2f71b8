package tui

import (
	"strings"
	"testing"

	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/paint"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func lines(c *Cells) []string {
	return strings.Split(c.Plain(), "\n")
}

func TestCells(t *testing.T) {
	Convey("Given a 5x2 grid of 8x16 pixel cells", t, func() {
		c := NewCells(40, 32, 8, 16)

		Convey("It should start blank", func() {
			cols, rows := c.Size()
			So(cols, ShouldEqual, 5)
			So(rows, ShouldEqual, 2)
			So(lines(c), ShouldResemble, []string{"     ", "     "})
		})

		Convey("PixelAt should return cell centres", func() {
			x, y := c.PixelAt(2, 1)
			So(x, ShouldEqual, 20)
			So(y, ShouldEqual, 24)
		})

		Convey("MeasureText should count terminal columns", func() {
			w, h := c.MeasureText("ab", paint.Font{Size: 20})
			So(w, ShouldEqual, 16)
			So(h, ShouldEqual, 16)

			w, _ = c.MeasureText("界", paint.Font{Size: 20})
			So(w, ShouldEqual, 16)
		})

		Convey("FillRect should shade the half-blocks whose centre is inside", func() {
			c.FillRect(paint.Rect{X: 8, Y: 0, W: 16, H: 10}, paint.Red)
			So(lines(c), ShouldResemble, []string{" ##  ", "     "})
		})

		Convey("FillRect should ignore empty rectangles", func() {
			c.FillRect(paint.Rect{X: 8, Y: 0, W: 0, H: 10}, paint.Red)
			So(lines(c), ShouldResemble, []string{"     ", "     "})
		})

		Convey("Clear should reset every cell", func() {
			c.FillRect(paint.Rect{X: 0, Y: 0, W: 40, H: 32}, paint.Red)
			c.Clear(paint.White)
			So(lines(c), ShouldResemble, []string{"     ", "     "})
		})

		Convey("DrawCircle should shade the cells within the radius", func() {
			c.DrawCircle(20, 16, 4, paint.Red)
			So(lines(c), ShouldResemble, []string{"  #  ", "  #  "})
		})

		Convey("DrawText should write on the row holding the label's middle", func() {
			c.DrawText("ab", 8, 16, paint.Font{Size: 8}, paint.Black)
			So(lines(c), ShouldResemble, []string{"     ", " ab  "})
		})

		Convey("Wide runes should take two columns", func() {
			c.DrawText("界", 0, 0, paint.Font{}, paint.Black)
			So(lines(c)[0], ShouldEqual, "界   ")
		})

		Convey("Text running past the edge should be cut", func() {
			c.DrawText("abcdefg", 16, 0, paint.Font{}, paint.Black)
			So(lines(c)[0], ShouldEqual, "  abc")
		})

		Convey("Shading over text should replace it", func() {
			c.DrawText("ab", 8, 0, paint.Font{}, paint.Black)
			c.FillRect(paint.Rect{X: 8, Y: 0, W: 8, H: 16}, paint.Red)
			So(lines(c)[0], ShouldEqual, " #b  ")
		})

		Convey("Render should emit one line per row", func() {
			c.FillRect(paint.Rect{X: 8, Y: 0, W: 16, H: 10}, paint.Red)
			out := c.Render()
			So(strings.Count(out, "\n"), ShouldEqual, 1)
			So(out, ShouldContainSubstring, halfBlock)
		})
	})

	Convey("Given a grid and the builtin assets", t, func() {
		viper.Set(key.IconsVariant, "plain")
		c := NewCells(200, 100, 10, 20)
		table, err := asset.Load(asset.Builtin{Size: 40})
		So(err, ShouldBeNil)

		Convey("DrawImage should centre the icon glyph on the image", func() {
			c.DrawImage(table.Get(asset.Play), 50, 20)
			So(lines(c)[2], ShouldEqual, strings.Repeat(" ", 7)+">"+strings.Repeat(" ", 12))
		})

		Convey("Images without a glyph should fall back to their name", func() {
			So(imageGlyph(asset.Name("eject")), ShouldEqual, "eject")
		})

		Reset(func() {
			viper.Set(key.IconsVariant, "")
		})
	})
}
