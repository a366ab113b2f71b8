// Package window runs the seek bar in a desktop window with ebiten.
package window

import (
	"errors"
	"io/fs"

	"github.com/anisan-cli/seekbar/log"
	"github.com/anisan-cli/seekbar/render"
	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
)

var buttons = map[ebiten.MouseButton]seekbar.Button{
	ebiten.MouseButtonLeft:   seekbar.ButtonLeft,
	ebiten.MouseButtonRight:  seekbar.ButtonRight,
	ebiten.MouseButtonMiddle: seekbar.ButtonMiddle,
}

var keys = map[ebiten.Key]seekbar.Key{
	ebiten.KeyArrowLeft:  seekbar.KeyLeft,
	ebiten.KeyArrowRight: seekbar.KeyRight,
}

// Game feeds ebiten input to a controller and shows the frames it paints.
type Game struct {
	controller *seekbar.Controller
	raster     *render.Raster

	cursorX, cursorY int
	hand             bool
}

// New wires c to a window painting through r. The raster must match the controller's window size.
func New(c *seekbar.Controller, r *render.Raster) *Game {
	return &Game{
		controller: c,
		raster:     r,
		cursorX:    -1,
		cursorY:    -1,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.controller == nil {
		log.Warn("window update without a controller")
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.controller.Move(float64(x), float64(y))
	}

	for eb, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.controller.MouseButton(b, true, float64(x), float64(y))
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.controller.MouseButton(b, false, float64(x), float64(y))
		}
	}

	for eb, k := range keys {
		if inpututil.IsKeyJustPressed(eb) {
			g.controller.Key(k, true)
		}
		if inpututil.IsKeyJustReleased(eb) {
			g.controller.Key(k, false)
		}
	}

	if dropped := ebiten.DroppedFiles(); dropped != nil {
		paths, err := droppedPaths(dropped)
		if err != nil {
			log.Warnf("reading dropped files: %v", err)
		}
		g.controller.Load(paths)
	}

	if hand := g.controller.WantsHandCursor(); hand != g.hand {
		g.hand = hand
		ebiten.SetCursorShape(lo.Ternary(hand, ebiten.CursorShapePointer, ebiten.CursorShapeDefault))
	}

	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.controller == nil {
		return
	}

	g.controller.Draw(g.raster)
	screen.WritePixels(g.raster.Pixels())
}

// Layout implements ebiten.Game. The logical screen always matches the raster.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.raster.Size()
}

// droppedPaths lists the top-level names of a drop.
func droppedPaths(dropped fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		return nil, err
	}

	return lo.Map(entries, func(e fs.DirEntry, _ int) string {
		return e.Name()
	}), nil
}

// Run opens a window titled title and blocks until it is closed.
func Run(g *Game, title string) error {
	width, height := g.raster.Size()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	return nil
}
