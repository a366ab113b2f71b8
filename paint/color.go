package paint

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed colours of the seek bar.
var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Gray  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Red   = color.RGBA{R: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
)

// ParseHex parses a "#rrggbb" or "#rgb" colour into an opaque RGBA.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}

// Luminance returns the perceived lightness of c in [0, 1].
func Luminance(c color.Color) float64 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := cf.Lab()
	return l
}
