package asset

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/anisan-cli/seekbar/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type partialProvider struct {
	missing Name
}

func (p partialProvider) LoadNamed(name Name) (image.Image, error) {
	if name == p.missing {
		return nil, errors.New("not found")
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func writePNG(path string, w, h int) {
	var buf bytes.Buffer
	So(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))), ShouldBeNil)
	So(filesystem.API().WriteFile(path, buf.Bytes(), 0o644), ShouldBeNil)
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should build a table from the built-in icons", func() {
			table, err := Load(Builtin{Size: 32})
			So(err, ShouldBeNil)

			for _, name := range Names() {
				h := table.Get(name)
				So(h, ShouldNotBeNil)
				So(h.Name(), ShouldEqual, name)

				w, hh := h.Size()
				So(w, ShouldEqual, 32)
				So(hh, ShouldEqual, 32)
			}
		})

		Convey("Should hand out the same shared handle on every lookup", func() {
			table, err := Load(Builtin{})
			So(err, ShouldBeNil)
			So(table.Get(Play), ShouldPointTo, table.Get(Play))
		})

		Convey("Should fail fast when any asset is missing", func() {
			_, err := Load(partialProvider{missing: Mute})
			So(errors.Is(err, ErrAssetLoad), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "mute")
		})
	})
}

func TestDirProvider(t *testing.T) {
	Convey("Given an icon directory", t, func() {
		So(filesystem.API().MkdirAll("/icons", 0o755), ShouldBeNil)
		for _, name := range Names() {
			writePNG("/icons/"+string(name)+".png", 48, 48)
		}

		Convey("All icons decode", func() {
			table, err := Load(DirProvider{Dir: "/icons"})
			So(err, ShouldBeNil)
			w, _ := table.Get(Skip).Size()
			So(w, ShouldEqual, 48)
		})

		Convey("A corrupt icon aborts the load", func() {
			So(filesystem.API().WriteFile("/icons/pause.png", []byte("not a png"), 0o644), ShouldBeNil)
			_, err := Load(DirProvider{Dir: "/icons"})
			So(errors.Is(err, ErrAssetLoad), ShouldBeTrue)
		})

		Convey("A missing directory aborts the load", func() {
			_, err := Load(DirProvider{Dir: "/nowhere"})
			So(errors.Is(err, ErrAssetLoad), ShouldBeTrue)
		})
	})
}
