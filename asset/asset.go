// Package asset loads the transport icon images once at startup and hands out shared, read-only handles to them.
package asset

import (
	"errors"
	"fmt"
	"image"
)

// Name identifies one of the transport icon images.
type Name string

// Logical icon names every Provider must supply.
const (
	Play   Name = "play"
	Pause  Name = "pause"
	Skip   Name = "skip"
	Volume Name = "volume"
	Mute   Name = "mute"
)

// Names lists every required asset in load order.
func Names() []Name {
	return []Name{Play, Pause, Skip, Volume, Mute}
}

// ErrAssetLoad reports that a required icon image could not be loaded or decoded.
var ErrAssetLoad = errors.New("asset load failure")

// Provider supplies decoded images by logical name.
type Provider interface {
	LoadNamed(name Name) (image.Image, error)
}

// Handle is a shared reference to a loaded image. It is owned by a Table and never mutated.
type Handle struct {
	image.Image
	name Name
}

// Name returns the logical name the image was loaded under.
func (h *Handle) Name() Name {
	return h.name
}

// Size returns the intrinsic image size in pixels.
func (h *Handle) Size() (width, height float64) {
	b := h.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Table is the immutable name-to-image mapping built by Load.
type Table struct {
	handles map[Name]*Handle
}

// Load asks p for every required image and fails on the first one that is missing or undecodable.
func Load(p Provider) (*Table, error) {
	t := &Table{handles: make(map[Name]*Handle, len(Names()))}

	for _, name := range Names() {
		img, err := p.LoadNamed(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, name, err)
		}
		if img == nil {
			return nil, fmt.Errorf("%w: %s: provider returned no image", ErrAssetLoad, name)
		}

		t.handles[name] = &Handle{Image: img, name: name}
	}

	return t, nil
}

// Get returns the shared handle for name, or nil if the table does not hold it.
func (t *Table) Get(name Name) *Handle {
	return t.handles[name]
}
