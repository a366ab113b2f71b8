// Package paint defines the drawing primitives the seek bar paints with and a recorder that captures them.
package paint

import (
	"image/color"

	"github.com/anisan-cli/seekbar/asset"
)

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Font selects the label typeface size in pixels.
type Font struct {
	Size float64
}

// Measurer reports the bounding box of a text run.
type Measurer interface {
	MeasureText(s string, f Font) (w, h float64)
}

// Canvas is a 2D surface the frame render pass paints on.
// Text is anchored at its top-left corner.
type Canvas interface {
	Measurer
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	DrawImage(img *asset.Handle, x, y float64)
	DrawText(s string, x, y float64, f Font, c color.Color)
	DrawCircle(cx, cy, r float64, c color.Color)
}
