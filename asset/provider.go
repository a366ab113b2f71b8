package asset

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"path/filepath"

	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/util"
	"github.com/fogleman/gg"
)

// DirProvider decodes <Dir>/<name>.png through the filesystem backend.
type DirProvider struct {
	Dir string
}

// LoadNamed implements Provider.
func (d DirProvider) LoadNamed(name Name) (image.Image, error) {
	f, err := filesystem.API().Open(filepath.Join(d.Dir, string(name)+".png"))
	if err != nil {
		return nil, err
	}
	defer util.Ignore(f.Close)

	return png.Decode(f)
}

// Builtin draws vector versions of the icons so the player runs without an icon directory.
type Builtin struct {
	Size int
}

const (
	builtinInk  = "#333333"
	defaultSize = 40
)

// LoadNamed implements Provider.
func (b Builtin) LoadNamed(name Name) (image.Image, error) {
	size := b.Size
	if size <= 0 {
		size = defaultSize
	}

	dc := gg.NewContext(size, size)
	dc.SetHexColor(builtinInk)

	s := float64(size)
	switch name {
	case Play:
		triangle(dc, s*0.25, s*0.2, s*0.8, s*0.8)
	case Pause:
		dc.DrawRectangle(s*0.22, s*0.2, s*0.2, s*0.6)
		dc.DrawRectangle(s*0.58, s*0.2, s*0.2, s*0.6)
		dc.Fill()
	case Skip:
		triangle(dc, s*0.15, s*0.2, s*0.5, s*0.8)
		triangle(dc, s*0.45, s*0.2, s*0.8, s*0.8)
		dc.DrawRectangle(s*0.78, s*0.2, s*0.08, s*0.6)
		dc.Fill()
	case Volume:
		speaker(dc, s)
		dc.SetLineWidth(s * 0.06)
		dc.DrawArc(s*0.55, s*0.5, s*0.15, -math.Pi/4, math.Pi/4)
		dc.Stroke()
		dc.DrawArc(s*0.55, s*0.5, s*0.28, -math.Pi/4, math.Pi/4)
		dc.Stroke()
	case Mute:
		speaker(dc, s)
		dc.SetLineWidth(s * 0.06)
		dc.DrawLine(s*0.62, s*0.35, s*0.86, s*0.65)
		dc.DrawLine(s*0.62, s*0.65, s*0.86, s*0.35)
		dc.Stroke()
	default:
		return nil, fmt.Errorf("no built-in icon named %q", name)
	}

	return dc.Image(), nil
}

// triangle fills a right-pointing triangle inside the box (x0,y0)-(x1,y1).
func triangle(dc *gg.Context, x0, y0, x1, y1 float64) {
	dc.MoveTo(x0, y0)
	dc.LineTo(x1, (y0+y1)/2)
	dc.LineTo(x0, y1)
	dc.ClosePath()
	dc.Fill()
}

func speaker(dc *gg.Context, s float64) {
	dc.DrawRectangle(s*0.12, s*0.38, s*0.16, s*0.24)
	dc.Fill()
	dc.MoveTo(s*0.28, s*0.38)
	dc.LineTo(s*0.5, s*0.18)
	dc.LineTo(s*0.5, s*0.82)
	dc.LineTo(s*0.28, s*0.62)
	dc.ClosePath()
	dc.Fill()
}
