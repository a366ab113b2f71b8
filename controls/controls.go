// Package controls positions the clickable transport icons and routes clicks to their actions.
package controls

import (
	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Action is the semantic meaning of an icon click.
type Action int

const (
	PlayPause Action = iota
	Skip
	Mute
)

func (a Action) String() string {
	switch a {
	case PlayPause:
		return "play/pause"
	case Skip:
		return "skip"
	case Mute:
		return "mute"
	default:
		return "unknown"
	}
}

// Layout constants for the transport row.
const (
	IconSize    = 50.0
	IconSpacing = 70.0
)

// Icon is a clickable box showing one asset image.
type Icon struct {
	X, Y          float64
	Width, Height float64
	Image         asset.Name
	Action        Action
}

// Contains reports whether (x, y) lies inside the icon box, edges included.
func (i Icon) Contains(x, y float64) bool {
	return x >= i.X && x <= i.X+i.Width && y >= i.Y && y <= i.Y+i.Height
}

// ImageOrigin returns where an image of the given intrinsic size is drawn so it is centered in the box.
func (i Icon) ImageOrigin(imageWidth, imageHeight float64) (x, y float64) {
	return i.X + ImageOffset(i.Width, imageWidth), i.Y + ImageOffset(i.Height, imageHeight)
}

// ImageOffset centers an image of imageSize inside a box of boxSize.
func ImageOffset(boxSize, imageSize float64) float64 {
	return (boxSize - imageSize) / 2
}

// Toggles holds the play and mute switches driven by the transport icons.
type Toggles struct {
	Playing bool
	Muted   bool
}

// Set is the ordered list of transport icons.
type Set struct {
	icons   []Icon
	enabled bool
}

// Empty returns a set with no icons, used before any file is loaded.
func Empty() *Set {
	return &Set{}
}

// Transport builds the fixed play, skip and volume row with its top-left corner at (originX, originY).
func Transport(originX, originY float64) *Set {
	row := []struct {
		image  asset.Name
		action Action
	}{
		{asset.Play, PlayPause},
		{asset.Skip, Skip},
		{asset.Volume, Mute},
	}

	icons := lo.Map(row, func(r struct {
		image  asset.Name
		action Action
	}, i int) Icon {
		return Icon{
			X:      originX + float64(i)*IconSpacing,
			Y:      originY,
			Width:  IconSize,
			Height: IconSize,
			Image:  r.image,
			Action: r.action,
		}
	})

	return &Set{icons: icons, enabled: true}
}

// SetEnabled turns hit-testing on or off.
func (s *Set) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Enabled reports whether hit-testing is active.
func (s *Set) Enabled() bool {
	return s.enabled
}

// HitTest returns the index of the first icon containing (x, y). It never matches while the set is disabled.
func (s *Set) HitTest(x, y float64) mo.Option[int] {
	if !s.enabled {
		return mo.None[int]()
	}

	_, i, ok := lo.FindIndexOf(s.icons, func(icon Icon) bool {
		return icon.Contains(x, y)
	})
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(i)
}

// Dispatch performs the action of icon i against t and swaps the icon image to match the new toggle state.
// Out-of-range indices are ignored.
func (s *Set) Dispatch(i int, t *Toggles) (Action, bool) {
	if i < 0 || i >= len(s.icons) {
		log.Warnf("icon index %d out of range (%d icons)", i, len(s.icons))
		return 0, false
	}

	icon := &s.icons[i]
	switch icon.Action {
	case PlayPause:
		t.Playing = !t.Playing
		icon.Image = lo.Ternary(t.Playing, asset.Pause, asset.Play)
		log.Info(lo.Ternary(t.Playing, "Play", "Pause") + " button clicked")
	case Skip:
		log.Info("Skip button clicked")
	case Mute:
		t.Muted = !t.Muted
		icon.Image = lo.Ternary(t.Muted, asset.Mute, asset.Volume)
		log.Info("Mute button clicked")
	}

	return icon.Action, true
}

// Icons returns a copy of the icon list.
func (s *Set) Icons() []Icon {
	out := make([]Icon, len(s.icons))
	copy(out, s.icons)
	return out
}

// Len returns the number of icons.
func (s *Set) Len() int {
	return len(s.icons)
}
