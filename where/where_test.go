package where

import (
	"os"
	"testing"

	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Snapshots()", func() {
			path := Snapshots()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Assets() is not created eagerly", func() {
			So(lo.Must(filesystem.API().Exists(Assets())), ShouldBeFalse)
		})

		Convey("The override variable wins", func() {
			So(os.Setenv(EnvConfigPath, "/custom/seekbar"), ShouldBeNil)
			Reset(func() { _ = os.Unsetenv(EnvConfigPath) })

			So(Config(), ShouldEqual, "/custom/seekbar")
			So(lo.Must(filesystem.API().IsDir("/custom/seekbar")), ShouldBeTrue)
		})
	})
}
