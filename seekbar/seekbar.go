// Package seekbar is the seek bar state machine: it turns pointer, key and drop events into
// cursor, hover and transport state and paints that state once per frame.
package seekbar

import (
	"errors"
	"time"

	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/chapter"
	"github.com/anisan-cli/seekbar/controls"
	"github.com/anisan-cli/seekbar/log"
	"github.com/anisan-cli/seekbar/util"
	"github.com/samber/lo"
)

// Phase is the lifecycle stage of the loaded file.
type Phase int

const (
	// Unloaded shows a flat empty track.
	Unloaded Phase = iota
	// Loading sweeps the loading animation until the loading time has passed.
	Loading
	// Ready shows chapters, transport icons and the cursor.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key is a keyboard key the controller reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
)

// Controller owns the seek bar state. It is not safe for concurrent use; a single event loop must drive it.
type Controller struct {
	opts     Options
	assets   *asset.Table
	chapters *chapter.Model
	icons    *controls.Set
	clock    Clock

	phase     Phase
	files     []string
	loadStart time.Time
	// sweep is the loading animation progress in [0, 1].
	sweep float64

	cursorX, cursorY float64
	current          float64
	cursorVisible    bool
	dragging         bool
	toggles          controls.Toggles

	pointerX, pointerY float64
}

// New builds an unloaded controller. A nil clock uses the system clock.
func New(opts Options, assets *asset.Table, chapters []chapter.Chapter, clock Clock) (*Controller, error) {
	if assets == nil {
		return nil, errors.New("seekbar: nil asset table")
	}
	if opts.TrackWidth() <= 0 {
		return nil, errors.New("seekbar: window too narrow for its padding")
	}
	if opts.Duration <= 0 {
		return nil, errors.New("seekbar: duration must be positive")
	}

	model, err := chapter.NewModel(chapters)
	if err != nil {
		return nil, err
	}
	model.Layout(opts.Padding, opts.TrackWidth())

	if clock == nil {
		clock = SystemClock{}
	}
	if opts.Accent == nil {
		opts.Accent = DefaultOptions().Accent
	}

	return &Controller{
		opts:     opts,
		assets:   assets,
		chapters: model,
		icons:    controls.Empty(),
		clock:    clock,
		cursorX:  opts.Padding,
		cursorY:  opts.Height / 2,
	}, nil
}

// Load starts loading the dropped files. A drop during Loading is ignored and reported as false.
func (c *Controller) Load(paths []string) bool {
	if c.phase == Loading {
		log.Warnf("ignoring drop of %s while loading", util.Quantify(len(paths), "file", "files"))
		return false
	}

	for _, p := range paths {
		log.Infof("dropped %s", p)
	}

	c.phase = Loading
	c.files = append([]string(nil), paths...)
	c.loadStart = c.clock.Now()
	c.sweep = 0

	c.cursorX = c.opts.Padding
	c.current = 0
	c.cursorVisible = false
	c.dragging = false
	c.toggles = controls.Toggles{}

	c.chapters.Layout(c.opts.Padding, c.opts.TrackWidth())
	c.chapters.ClearHover()

	c.icons = controls.Transport(c.opts.Padding, c.cursorY+iconRowOffset)
	c.icons.SetEnabled(false)

	return true
}

// Move handles pointer motion to (x, y).
func (c *Controller) Move(x, y float64) {
	c.pointerX, c.pointerY = x, y

	switch {
	case c.dragging:
		c.setCursor(x)
		c.chapters.UpdateHover(x)
	case c.WithinTrack(x, y):
		c.cursorVisible = true
		c.chapters.UpdateHover(x)
	default:
		c.cursorVisible = false
		c.chapters.ClearHover()
	}
}

// MouseButton handles a press or release of b at (x, y). Only the left button is used.
func (c *Controller) MouseButton(b Button, pressed bool, x, y float64) {
	if b != ButtonLeft {
		return
	}
	c.pointerX, c.pointerY = x, y

	if !pressed {
		c.dragging = false
		return
	}

	if c.phase != Ready {
		return
	}

	if i, ok := c.icons.HitTest(x, y).Get(); ok {
		c.icons.Dispatch(i, &c.toggles)
		return
	}

	if c.WithinTrack(x, y) {
		c.dragging = true
		c.cursorVisible = true
		c.setCursor(x)
		c.chapters.UpdateHover(x)
	}
}

// Key handles a key press or release. Left and right nudge the cursor while Ready.
func (c *Controller) Key(k Key, pressed bool) {
	if !pressed {
		return
	}

	switch k {
	case KeyLeft:
		c.setCursor(c.cursorX - c.opts.NudgeOffset)
	case KeyRight:
		c.setCursor(c.cursorX + c.opts.NudgeOffset)
	}
}

// SeekTo moves the cursor to the given time in seconds, clamped to the track.
func (c *Controller) SeekTo(seconds float64) {
	c.setCursor(c.PositionOf(seconds))
}

func (c *Controller) setCursor(x float64) {
	if c.phase != Ready {
		return
	}

	c.cursorX = lo.Clamp(x, c.opts.Padding, c.opts.Width-c.opts.Padding)
	c.current = c.TimeAt(c.cursorX)
}

// TimeAt maps a pixel x on the track to seconds. It does not clamp.
func (c *Controller) TimeAt(x float64) float64 {
	return (x - c.opts.Padding) / c.opts.TrackWidth() * c.opts.Duration
}

// PositionOf maps seconds to a pixel x on the track. It does not clamp.
func (c *Controller) PositionOf(seconds float64) float64 {
	return c.opts.Padding + seconds/c.opts.Duration*c.opts.TrackWidth()
}

// WithinTrack reports whether (x, y) is inside the track hit area, which is taller than the drawn track.
func (c *Controller) WithinTrack(x, y float64) bool {
	mid := c.opts.Height / 2
	return x >= c.opts.Padding && x <= c.opts.Width-c.opts.Padding &&
		y >= mid-HitTolerance && y <= mid+HitTolerance
}

// WithinIcons reports whether (x, y) is over an enabled transport icon.
func (c *Controller) WithinIcons(x, y float64) bool {
	return c.icons.HitTest(x, y).IsPresent()
}

// IconAt returns the icon under (x, y), if any.
func (c *Controller) IconAt(x, y float64) (controls.Icon, bool) {
	i, ok := c.icons.HitTest(x, y).Get()
	if !ok {
		return controls.Icon{}, false
	}
	return c.icons.Icons()[i], true
}

// WantsHandCursor reports whether the pointer should be shown as a hand.
func (c *Controller) WantsHandCursor() bool {
	return c.dragging || c.WithinTrack(c.pointerX, c.pointerY) || c.WithinIcons(c.pointerX, c.pointerY)
}

// Phase returns the lifecycle stage.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Files returns the paths of the last accepted drop.
func (c *Controller) Files() []string {
	return append([]string(nil), c.files...)
}

// Options returns the layout the controller was built with.
func (c *Controller) Options() Options {
	return c.opts
}

// Cursor returns the cursor centre.
func (c *Controller) Cursor() (x, y float64) {
	return c.cursorX, c.cursorY
}

// CurrentTime returns the cursor position in seconds.
func (c *Controller) CurrentTime() float64 {
	return c.current
}

// CursorVisible reports whether the cursor disc is drawn.
func (c *Controller) CursorVisible() bool {
	return c.cursorVisible
}

// Dragging reports whether the cursor follows the pointer.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Playing reports the play toggle.
func (c *Controller) Playing() bool {
	return c.toggles.Playing
}

// Muted reports the mute toggle.
func (c *Controller) Muted() bool {
	return c.toggles.Muted
}

// Sweep returns the loading animation progress.
func (c *Controller) Sweep() float64 {
	return c.sweep
}

// Icons returns the current transport icons.
func (c *Controller) Icons() []controls.Icon {
	return c.icons.Icons()
}

// Chapters returns the chapters with their current geometry and hover state.
func (c *Controller) Chapters() []chapter.Chapter {
	return c.chapters.Chapters()
}

// Assets returns the shared image table.
func (c *Controller) Assets() *asset.Table {
	return c.assets
}
