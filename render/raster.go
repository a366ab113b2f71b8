// Package render paints seek bar frames into an RGBA buffer with fogleman/gg.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/paint"
	"github.com/anisan-cli/seekbar/util"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Raster is a paint.Canvas backed by an in-memory RGBA image.
type Raster struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewRaster returns a width x height canvas drawing text with f.
func NewRaster(width, height int, f *truetype.Font) *Raster {
	return &Raster{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float64]font.Face),
	}
}

func (r *Raster) face(f paint.Font) font.Face {
	if face, ok := r.faces[f.Size]; ok {
		return face
	}

	face := truetype.NewFace(r.font, &truetype.Options{Size: f.Size})
	r.faces[f.Size] = face
	return face
}

// MeasureText implements paint.Measurer.
func (r *Raster) MeasureText(s string, f paint.Font) (w, h float64) {
	r.dc.SetFontFace(r.face(f))
	return r.dc.MeasureString(s)
}

// Clear implements paint.Canvas.
func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

// FillRect implements paint.Canvas. Empty rectangles draw nothing.
func (r *Raster) FillRect(rect paint.Rect, c color.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	r.dc.SetColor(c)
	r.dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.dc.Fill()
}

// DrawImage implements paint.Canvas.
func (r *Raster) DrawImage(img *asset.Handle, x, y float64) {
	r.dc.DrawImage(img.Image, int(math.Round(x)), int(math.Round(y)))
}

// DrawText implements paint.Canvas, placing the top of the text at y.
func (r *Raster) DrawText(s string, x, y float64, f paint.Font, c color.Color) {
	r.dc.SetFontFace(r.face(f))
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, 0, 1)
}

// DrawCircle implements paint.Canvas.
func (r *Raster) DrawCircle(cx, cy, radius float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(cx, cy, radius)
	r.dc.Fill()
}

// Image returns the painted frame.
func (r *Raster) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

// Pixels returns the frame as tightly packed RGBA bytes.
func (r *Raster) Pixels() []byte {
	return r.Image().Pix
}

// Size returns the canvas size in pixels.
func (r *Raster) Size() (width, height int) {
	return r.dc.Width(), r.dc.Height()
}

// EncodePNG writes the painted frame to path.
func (r *Raster) EncodePNG(path string) error {
	f, err := filesystem.API().Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer util.Ignore(f.Close)

	if err := r.dc.EncodePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return nil
}
