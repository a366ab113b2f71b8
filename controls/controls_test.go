package controls

import (
	"testing"

	"github.com/anisan-cli/seekbar/asset"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTransport(t *testing.T) {
	Convey("Given the transport row at (50, 350)", t, func() {
		set := Transport(50, 350)

		Convey("It holds play, skip and volume in order", func() {
			icons := set.Icons()
			So(icons, ShouldHaveLength, 3)
			So(icons[0].Image, ShouldEqual, asset.Play)
			So(icons[1].Image, ShouldEqual, asset.Skip)
			So(icons[2].Image, ShouldEqual, asset.Volume)
		})

		Convey("Icons are spaced 70px apart and 50px square", func() {
			icons := set.Icons()
			So(icons[0].X, ShouldEqual, 50)
			So(icons[1].X, ShouldEqual, 120)
			So(icons[2].X, ShouldEqual, 190)
			for _, icon := range icons {
				So(icon.Y, ShouldEqual, 350)
				So(icon.Width, ShouldEqual, IconSize)
				So(icon.Height, ShouldEqual, IconSize)
			}
		})

		Convey("HitTest finds the box under the point", func() {
			So(set.HitTest(75, 375).MustGet(), ShouldEqual, 0)
			So(set.HitTest(190, 400).MustGet(), ShouldEqual, 2)
			So(set.HitTest(110, 375).IsPresent(), ShouldBeFalse)
			So(set.HitTest(75, 349).IsPresent(), ShouldBeFalse)
		})

		Convey("HitTest never matches while disabled", func() {
			set.SetEnabled(false)
			So(set.HitTest(75, 375).IsPresent(), ShouldBeFalse)
		})
	})

	Convey("An empty set matches nothing", t, func() {
		So(Empty().HitTest(0, 0).IsPresent(), ShouldBeFalse)
	})
}

func TestDispatch(t *testing.T) {
	Convey("Given the transport row and fresh toggles", t, func() {
		set := Transport(0, 0)
		var toggles Toggles

		Convey("Play toggles playback and swaps to the pause image", func() {
			action, ok := set.Dispatch(0, &toggles)
			So(ok, ShouldBeTrue)
			So(action, ShouldEqual, PlayPause)
			So(toggles.Playing, ShouldBeTrue)
			So(set.Icons()[0].Image, ShouldEqual, asset.Pause)

			Convey("A second click swaps back", func() {
				set.Dispatch(0, &toggles)
				So(toggles.Playing, ShouldBeFalse)
				So(set.Icons()[0].Image, ShouldEqual, asset.Play)
			})
		})

		Convey("Skip changes nothing", func() {
			action, ok := set.Dispatch(1, &toggles)
			So(ok, ShouldBeTrue)
			So(action, ShouldEqual, Skip)
			So(toggles, ShouldResemble, Toggles{})
			So(set.Icons()[1].Image, ShouldEqual, asset.Skip)
		})

		Convey("Volume toggles mute and swaps to the mute image", func() {
			set.Dispatch(2, &toggles)
			So(toggles.Muted, ShouldBeTrue)
			So(set.Icons()[2].Image, ShouldEqual, asset.Mute)
		})

		Convey("Out-of-range indices are ignored", func() {
			_, ok := set.Dispatch(3, &toggles)
			So(ok, ShouldBeFalse)
			_, ok = set.Dispatch(-1, &toggles)
			So(ok, ShouldBeFalse)
			So(toggles, ShouldResemble, Toggles{})
		})
	})
}

func TestImageOffset(t *testing.T) {
	Convey("Smaller images are centred in their box", t, func() {
		So(ImageOffset(50, 40), ShouldEqual, 5)
		So(ImageOffset(50, 50), ShouldEqual, 0)

		icon := Icon{X: 100, Y: 200, Width: 50, Height: 50}
		x, y := icon.ImageOrigin(30, 20)
		So(x, ShouldEqual, 110)
		So(y, ShouldEqual, 215)
	})
}
