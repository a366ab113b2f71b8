// Package chapter models the labeled sub-ranges of the seek bar track and their on-screen geometry.
package chapter

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Track heights for a chapter segment in pixels.
const (
	NormalHeight  = 15.0
	HoveredHeight = 20.0
)

// epsilon tolerates float noise when checking that chapters tile [0,1].
const epsilon = 1e-9

// ErrInvalidLayout reports a chapter list that does not tile the track exactly once.
var ErrInvalidLayout = errors.New("invalid chapter layout")

// Chapter is a labeled fractional range [Start, End) of the track.
type Chapter struct {
	Label string  `mapstructure:"label"`
	Start float64 `mapstructure:"start"`
	End   float64 `mapstructure:"end"`

	// Width is the pixel width computed by Model.Layout.
	Width float64 `mapstructure:"-"`
	// Height is NormalHeight, or HoveredHeight while the pointer is over the chapter.
	Height float64 `mapstructure:"-"`
	// AnchorX is the raw pointer x of the last hover update, used to center the hover labels.
	AnchorX float64 `mapstructure:"-"`
	Hovered bool    `mapstructure:"-"`
}

// Segment is a horizontal run of pixels starting at X.
type Segment struct {
	X, Width float64
}

// Defaults returns the built-in chapter list.
func Defaults() []Chapter {
	return []Chapter{
		{Label: "Intro", Start: 0.0, End: 0.2},
		{Label: "Main Topic", Start: 0.2, End: 0.5},
		{Label: "Details", Start: 0.5, End: 0.9},
		{Label: "Outro", Start: 0.9, End: 1.0},
	}
}

// Validate checks that chapters are ordered, non-empty ranges that cover [0,1] without gaps or overlaps.
func Validate(chapters []Chapter) error {
	if len(chapters) == 0 {
		return fmt.Errorf("%w: no chapters", ErrInvalidLayout)
	}

	for i, c := range chapters {
		if c.Start < 0 || c.End > 1 {
			return fmt.Errorf("%w: chapter %q range [%g, %g) leaves [0, 1]", ErrInvalidLayout, c.Label, c.Start, c.End)
		}
		if c.Start >= c.End {
			return fmt.Errorf("%w: chapter %q starts at %g but ends at %g", ErrInvalidLayout, c.Label, c.Start, c.End)
		}
		if i > 0 && math.Abs(c.Start-chapters[i-1].End) > epsilon {
			return fmt.Errorf("%w: chapter %q starts at %g, previous ends at %g", ErrInvalidLayout, c.Label, c.Start, chapters[i-1].End)
		}
	}

	if first := chapters[0]; math.Abs(first.Start) > epsilon {
		return fmt.Errorf("%w: first chapter %q starts at %g", ErrInvalidLayout, first.Label, first.Start)
	}
	if last := chapters[len(chapters)-1]; math.Abs(last.End-1) > epsilon {
		return fmt.Errorf("%w: last chapter %q ends at %g", ErrInvalidLayout, last.Label, last.End)
	}

	return nil
}

// Coverage returns the summed fractional length of all chapters.
func Coverage(chapters []Chapter) float64 {
	return lo.SumBy(chapters, func(c Chapter) float64 {
		return c.End - c.Start
	})
}

// Model owns an ordered chapter list and maps it onto a track of known pixel geometry.
type Model struct {
	chapters   []Chapter
	originX    float64
	trackWidth float64
}

// NewModel validates and copies chapters into a model with every chapter un-hovered.
func NewModel(chapters []Chapter) (*Model, error) {
	if err := Validate(chapters); err != nil {
		return nil, err
	}

	owned := make([]Chapter, len(chapters))
	copy(owned, chapters)

	m := &Model{chapters: owned}
	m.ClearHover()
	return m, nil
}

// Layout places the chapters on a track starting at originX and recomputes each chapter width.
func (m *Model) Layout(originX, trackWidth float64) {
	m.originX = originX
	m.trackWidth = trackWidth

	for i := range m.chapters {
		c := &m.chapters[i]
		c.Width = (c.End - c.Start) * trackWidth
	}
}

// Bounds returns the pixel start and end of chapter i.
func (m *Model) Bounds(i int) (startX, endX float64) {
	c := m.chapters[i]
	return m.originX + m.trackWidth*c.Start, m.originX + m.trackWidth*c.End
}

// UpdateHover marks the chapters whose closed pixel range contains mouseX.
// Every chapter records mouseX unclamped as its label anchor.
func (m *Model) UpdateHover(mouseX float64) {
	for i := range m.chapters {
		startX, endX := m.Bounds(i)

		c := &m.chapters[i]
		c.AnchorX = mouseX
		c.Hovered = mouseX >= startX && mouseX <= endX
		c.Height = lo.Ternary(c.Hovered, HoveredHeight, NormalHeight)
	}
}

// ClearHover resets every chapter to the un-hovered state.
func (m *Model) ClearHover() {
	for i := range m.chapters {
		m.chapters[i].Hovered = false
		m.chapters[i].Height = NormalHeight
	}
}

// Hovered returns the index of the first hovered chapter.
func (m *Model) Hovered() mo.Option[int] {
	_, i, ok := lo.FindIndexOf(m.chapters, func(c Chapter) bool {
		return c.Hovered
	})
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(i)
}

// Fill splits chapter i at cursorX into its played part (from startX) and its unplayed remainder.
func (m *Model) Fill(i int, cursorX float64) (played, unplayed Segment) {
	startX, endX := m.Bounds(i)
	width := m.chapters[i].Width

	played = Segment{
		X:     startX,
		Width: lo.Clamp(cursorX-startX, 0, width),
	}
	unplayed = Segment{
		X:     lo.Clamp(cursorX, startX, endX),
		Width: lo.Clamp(endX-cursorX, 0, width),
	}
	return played, unplayed
}

// MarkerX returns where chapter i draws its boundary tick: the end of the first chapter, the start of every other.
func (m *Model) MarkerX(i int) float64 {
	startX, endX := m.Bounds(i)
	if i == 0 {
		return endX
	}
	return startX
}

// At returns a copy of chapter i.
func (m *Model) At(i int) Chapter {
	return m.chapters[i]
}

// Len returns the number of chapters.
func (m *Model) Len() int {
	return len(m.chapters)
}

// Chapters returns a copy of the chapter list.
func (m *Model) Chapters() []Chapter {
	out := make([]Chapter, len(m.chapters))
	copy(out, m.chapters)
	return out
}
