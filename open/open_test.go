package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("command", t, func() {
		Convey("Should use xdg-open on linux", func() {
			cmd, ok := command("linux", "/tmp/frame.png", "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", "/tmp/frame.png"})
		})

		Convey("Should run the chosen app directly on linux", func() {
			cmd, ok := command("linux", "/tmp/frame.png", "feh")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"feh", "/tmp/frame.png"})
		})

		Convey("Should go through open on darwin", func() {
			cmd, ok := command("darwin", "/tmp/frame.png", "Preview")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "Preview", "/tmp/frame.png"})
		})

		Convey("Should refuse unknown systems", func() {
			_, ok := command("plan9", "/tmp/frame.png", "")
			So(ok, ShouldBeFalse)
		})
	})
}
