package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept a read-only wrapper", func() {
			SetFs(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			err := API().WriteFile("/icons/play.png", []byte{1}, 0o644)
			So(err, ShouldNotBeNil)
		})

		Reset(SetOsFs)
	})
}
