package paint

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/anisan-cli/seekbar/asset"
	"github.com/samber/lo"
)

// Kind names a drawing primitive.
type Kind int

const (
	OpClear Kind = iota
	OpFillRect
	OpImage
	OpText
	OpCircle
)

func (k Kind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "rect"
	case OpImage:
		return "image"
	case OpText:
		return "text"
	case OpCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing primitive. Only the fields relevant to Kind are set.
type Op struct {
	Kind  Kind
	Rect  Rect
	Color color.Color
	Image asset.Name
	Text  string
	Font  Font
	// Radius is set for circles; Rect.X and Rect.Y hold the centre.
	Radius float64
}

func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return fmt.Sprintf("clear %s", Hex(o.Color))
	case OpFillRect:
		return fmt.Sprintf("rect (%g,%g %gx%g) %s", o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, Hex(o.Color))
	case OpImage:
		return fmt.Sprintf("image %s at (%g,%g)", o.Image, o.Rect.X, o.Rect.Y)
	case OpText:
		return fmt.Sprintf("text %q at (%g,%g)", o.Text, o.Rect.X, o.Rect.Y)
	case OpCircle:
		return fmt.Sprintf("circle (%g,%g) r=%g %s", o.Rect.X, o.Rect.Y, o.Radius, Hex(o.Color))
	default:
		return "unknown"
	}
}

// ApproxMeasurer estimates text extents from the rune count, assuming glyphs half as wide as they are tall.
type ApproxMeasurer struct{}

// MeasureText implements Measurer.
func (ApproxMeasurer) MeasureText(s string, f Font) (w, h float64) {
	return float64(utf8.RuneCountInString(s)) * f.Size / 2, f.Size
}

// Recorder is a Canvas that keeps every primitive instead of painting it.
type Recorder struct {
	Measurer Measurer
	ops      []Op
}

// NewRecorder returns a recorder measuring text with m, or with ApproxMeasurer when m is nil.
func NewRecorder(m Measurer) *Recorder {
	if m == nil {
		m = ApproxMeasurer{}
	}
	return &Recorder{Measurer: m}
}

// Ops returns the recorded primitives in paint order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Filter returns the recorded primitives of the given kind.
func (r *Recorder) Filter(kind Kind) []Op {
	return lo.Filter(r.ops, func(o Op, _ int) bool {
		return o.Kind == kind
	})
}

// Reset drops all recorded primitives.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) MeasureText(s string, f Font) (w, h float64) {
	return r.Measurer.MeasureText(s, f)
}

func (r *Recorder) Clear(c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) DrawImage(img *asset.Handle, x, y float64) {
	w, h := img.Size()
	r.ops = append(r.ops, Op{Kind: OpImage, Image: img.Name(), Rect: Rect{X: x, Y: y, W: w, H: h}})
}

func (r *Recorder) DrawText(s string, x, y float64, f Font, c color.Color) {
	w, h := r.MeasureText(s, f)
	r.ops = append(r.ops, Op{Kind: OpText, Text: s, Font: f, Color: c, Rect: Rect{X: x, Y: y, W: w, H: h}})
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Rect: Rect{X: cx, Y: cy}, Radius: radius, Color: c})
}
