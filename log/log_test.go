package log

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestLog(t *testing.T) {
	Convey("Given logging to a buffer", t, func() {
		var buf bytes.Buffer
		viper.Set(key.LogsLevel, "info")
		SetOutput(&buf)

		Convey("Info messages should be written", func() {
			Info("loading file completed")
			So(buf.String(), ShouldContainSubstring, "loading file completed")
			So(buf.String(), ShouldContainSubstring, "level=info")
		})

		Convey("Messages below the level should be dropped", func() {
			Debugf("frame %d", 1)
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("Nothing should be written once disabled", func() {
			Disable()
			Warn("ignored")
			So(buf.String(), ShouldBeEmpty)
		})

		Reset(func() {
			Disable()
			viper.Set(key.LogsLevel, nil)
		})
	})

	Convey("Setup", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/config")

		Convey("Should stay quiet when logs.write is off", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Should create a daily file under the logs directory", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)
			Warn("hello")

			files, err := filesystem.API().ReadDir(where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldHaveLength, 1)

			contents, err := filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name()))
			So(err, ShouldBeNil)
			So(string(contents), ShouldContainSubstring, "hello")
		})

		Reset(func() {
			Disable()
			viper.Set(key.LogsWrite, nil)
			filesystem.SetOsFs()
		})
	})
}
