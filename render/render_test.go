package render

import (
	"errors"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/chapter"
	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/paint"
	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLoadFont(t *testing.T) {
	Convey("LoadFont", t, func() {
		Convey("Should fall back to the embedded font", func() {
			f, err := LoadFont("")
			So(err, ShouldBeNil)
			So(f, ShouldNotBeNil)
		})

		Convey("Should fail on a missing file", func() {
			_, err := LoadFont("/fonts/missing.ttf")
			So(errors.Is(err, ErrFontLoad), ShouldBeTrue)
		})

		Convey("Should fail on a file that is not a font", func() {
			So(filesystem.API().WriteFile("/fonts/broken.ttf", []byte("not a font"), 0o644), ShouldBeNil)
			_, err := LoadFont("/fonts/broken.ttf")
			So(errors.Is(err, ErrFontLoad), ShouldBeTrue)
		})

		Convey("LoadFace returns a face of the requested size", func() {
			face, err := LoadFace("", 20)
			So(err, ShouldBeNil)
			So(face.Metrics().Height.Ceil(), ShouldBeGreaterThan, 0)
		})
	})
}

func TestRaster(t *testing.T) {
	Convey("Given a 100x50 raster", t, func() {
		r := NewRaster(100, 50, lo.Must(LoadFont("")))

		Convey("Clear fills every pixel", func() {
			r.Clear(paint.White)
			So(r.Image().RGBAAt(0, 0), ShouldResemble, paint.White)
			So(r.Image().RGBAAt(99, 49), ShouldResemble, paint.White)
			So(r.Pixels(), ShouldHaveLength, 100*50*4)
		})

		Convey("FillRect paints its interior", func() {
			r.Clear(paint.White)
			r.FillRect(paint.Rect{X: 10, Y: 10, W: 20, H: 10}, paint.Red)
			So(r.Image().RGBAAt(15, 15), ShouldResemble, paint.Red)
			So(r.Image().RGBAAt(35, 15), ShouldResemble, paint.White)
		})

		Convey("Empty rectangles draw nothing", func() {
			r.Clear(paint.White)
			r.FillRect(paint.Rect{X: 10, Y: 10, W: 0, H: 10}, paint.Red)
			So(r.Image().RGBAAt(10, 15), ShouldResemble, paint.White)
		})

		Convey("DrawCircle paints its centre", func() {
			r.Clear(paint.White)
			r.DrawCircle(50, 25, 10, paint.Red)
			So(r.Image().RGBAAt(50, 25), ShouldResemble, paint.Red)
			So(r.Image().RGBAAt(50, 5), ShouldResemble, paint.White)
		})

		Convey("Text is measured and drawn below its anchor", func() {
			r.Clear(paint.White)
			w, h := r.MeasureText("00:00", paint.Font{Size: 20})
			So(w, ShouldBeGreaterThan, 0)
			So(h, ShouldBeGreaterThan, 0)

			r.DrawText("00:00", 0, 0, paint.Font{Size: 20}, paint.Black)
			dark := 0
			for x := 0; x < int(w); x++ {
				for y := 0; y < int(h)+5; y++ {
					if r.Image().RGBAAt(x, y).R < 0x80 {
						dark++
					}
				}
			}
			So(dark, ShouldBeGreaterThan, 0)
		})

		Convey("DrawImage copies the icon", func() {
			table := lo.Must(asset.Load(asset.Builtin{Size: 20}))
			r.Clear(color.Transparent)
			r.DrawImage(table.Get(asset.Pause), 0, 0)

			opaque := 0
			for _, a := range lo.Filter(r.Pixels(), func(_ byte, i int) bool { return i%4 == 3 }) {
				if a > 0 {
					opaque++
				}
			}
			So(opaque, ShouldBeGreaterThan, 0)
		})

		Convey("EncodePNG writes a decodable image", func() {
			r.Clear(paint.Gray)
			So(r.EncodePNG("/frame.png"), ShouldBeNil)

			f, err := filesystem.API().Open("/frame.png")
			So(err, ShouldBeNil)
			defer f.Close()

			img, err := png.Decode(f)
			So(err, ShouldBeNil)
			So(img.Bounds().Dx(), ShouldEqual, 100)
			So(img.Bounds().Dy(), ShouldEqual, 50)
		})
	})
}

func TestSeekbarFrame(t *testing.T) {
	Convey("Given a ready seek bar painted into a raster", t, func() {
		clock := seekbar.NewManualClock(time.Unix(0, 0))
		table := lo.Must(asset.Load(asset.Builtin{}))
		c := lo.Must(seekbar.New(seekbar.DefaultOptions(), table, chapter.Defaults(), clock))

		c.Load([]string{"clip.mp4"})
		clock.Advance(5 * time.Second)

		r := NewRaster(960, 640, lo.Must(LoadFont("")))
		c.Draw(r)
		So(c.Phase(), ShouldEqual, seekbar.Ready)

		c.SeekTo(300)
		c.Move(700, 320)
		c.Draw(r)

		Convey("The played part of the track uses the accent colour", func() {
			So(r.Image().RGBAAt(100, 320), ShouldResemble, paint.Red)
		})

		Convey("The unplayed part is gray", func() {
			So(r.Image().RGBAAt(800, 320), ShouldResemble, paint.Gray)
		})

		Convey("Chapter markers are white", func() {
			So(r.Image().RGBAAt(224, 320), ShouldResemble, paint.White)
		})

		Convey("The cursor disc is drawn at the cursor", func() {
			So(r.Image().RGBAAt(480, 335), ShouldResemble, paint.Red)
		})
	})
}
