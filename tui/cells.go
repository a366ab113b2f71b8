package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/anisan-cli/seekbar/asset"
	termcolor "github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/icon"
	"github.com/anisan-cli/seekbar/paint"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// halfBlock shows the top half of a cell in the foreground colour and the bottom half in the background colour.
const halfBlock = "▀"

type cell struct {
	top, bottom color.Color

	// text is set when a label or glyph covers the cell.
	text string
	fg   color.Color
	// spill marks the trailing column of a wide glyph.
	spill bool
}

// Cells is a paint.Canvas drawing on a terminal grid.
// Each cell covers cellWidth x cellHeight pixels split into two vertically stacked half-blocks.
type Cells struct {
	cols, rows            int
	cellWidth, cellHeight float64
	grid                  [][]cell
}

// NewCells returns a grid large enough to hold a width x height pixel frame.
func NewCells(width, height, cellWidth, cellHeight float64) *Cells {
	c := &Cells{
		cols:       int(math.Ceil(width / cellWidth)),
		rows:       int(math.Ceil(height / cellHeight)),
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}

	c.grid = make([][]cell, c.rows)
	for r := range c.grid {
		c.grid[r] = make([]cell, c.cols)
	}
	c.Clear(paint.White)
	return c
}

// Size returns the grid size in cells.
func (c *Cells) Size() (cols, rows int) {
	return c.cols, c.rows
}

// CellSize returns the pixel size of one cell.
func (c *Cells) CellSize() (width, height float64) {
	return c.cellWidth, c.cellHeight
}

// PixelAt returns the pixel at the centre of cell (col, row).
func (c *Cells) PixelAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellWidth, (float64(row) + 0.5) * c.cellHeight
}

// cellAt returns the cell containing pixel (x, y).
func (c *Cells) cellAt(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / c.cellWidth))
	row = int(math.Floor(y / c.cellHeight))
	return col, row, col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

// MeasureText implements paint.Measurer in pixels: one cell width per terminal column, one row high.
func (c *Cells) MeasureText(s string, _ paint.Font) (w, h float64) {
	return float64(runewidth.StringWidth(s)) * c.cellWidth, c.cellHeight
}

// Clear implements paint.Canvas.
func (c *Cells) Clear(col color.Color) {
	for r := range c.grid {
		for i := range c.grid[r] {
			c.grid[r][i] = cell{top: col, bottom: col}
		}
	}
}

// FillRect implements paint.Canvas. A half-block takes the colour when its centre lies inside r,
// and any rectangle wider than zero marks at least the column it starts in.
func (c *Cells) FillRect(r paint.Rect, col color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	c.shade(col, func(x, y float64, cellX0, cellX1 float64) bool {
		inY := y >= r.Y && y <= r.Y+r.H
		overlapX := r.X < cellX1 && r.X+r.W > cellX0
		return inY && overlapX
	})
}

// DrawCircle implements paint.Canvas.
func (c *Cells) DrawCircle(cx, cy, radius float64, col color.Color) {
	c.shade(col, func(x, y float64, cellX0, cellX1 float64) bool {
		nearest := math.Max(cellX0, math.Min(cx, cellX1))
		return math.Hypot(nearest-cx, y-cy) <= radius
	})
}

// shade colours every half-block for which inside reports true. inside receives the half-block
// centre and the horizontal pixel extent of its cell.
func (c *Cells) shade(col color.Color, inside func(x, y, cellX0, cellX1 float64) bool) {
	for r := range c.grid {
		for i := range c.grid[r] {
			x0 := float64(i) * c.cellWidth
			x1 := x0 + c.cellWidth
			x := x0 + c.cellWidth/2
			top := (float64(r) + 0.25) * c.cellHeight
			bottom := (float64(r) + 0.75) * c.cellHeight

			target := &c.grid[r][i]
			hit := false
			if inside(x, top, x0, x1) {
				target.top = col
				hit = true
			}
			if inside(x, bottom, x0, x1) {
				target.bottom = col
				hit = true
			}
			if hit {
				target.text, target.spill = "", false
			}
		}
	}
}

// DrawText implements paint.Canvas. The text row is the one holding the vertical middle of the label.
func (c *Cells) DrawText(s string, x, y float64, f paint.Font, col color.Color) {
	c.write(s, x, y+f.Size/2, col)
}

// DrawImage implements paint.Canvas by centring the terminal glyph for the image on the image's centre.
func (c *Cells) DrawImage(img *asset.Handle, x, y float64) {
	glyph := imageGlyph(img.Name())
	w, h := img.Size()

	cx := x + w/2 - float64(runewidth.StringWidth(glyph))*c.cellWidth/2
	c.write(glyph, cx, y+h/2, paint.Black)
}

func imageGlyph(name asset.Name) string {
	if i, ok := icon.ForAsset(name); ok {
		if g := icon.Get(i); g != "" {
			return g
		}
	}
	return string(name)
}

func (c *Cells) write(s string, x, y float64, col color.Color) {
	startCol := int(math.Round(x / c.cellWidth))
	_, row, ok := c.cellAt(0, y)
	if !ok {
		return
	}

	at := startCol
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if at >= 0 && at+w <= c.cols {
			target := &c.grid[row][at]
			target.text, target.fg, target.spill = string(r), col, false
			for k := 1; k < w; k++ {
				c.grid[row][at+k].spill = true
				c.grid[row][at+k].text = ""
			}
		}
		at += w
	}
}

// Render draws the grid as styled terminal text, one line per row.
func (c *Cells) Render() string {
	lines := make([]string, c.rows)

	for r, row := range c.grid {
		var (
			b     strings.Builder
			run   strings.Builder
			style lipgloss.Style
			key   string
		)

		flush := func() {
			if run.Len() > 0 {
				b.WriteString(style.Render(run.String()))
				run.Reset()
			}
		}

		for _, cl := range row {
			if cl.spill {
				continue
			}

			glyph, fg, bg := halfBlock, cl.top, cl.bottom
			if cl.text != "" {
				glyph, fg, bg = cl.text, cl.fg, cl.top
			}

			k := paint.Hex(fg) + paint.Hex(bg)
			if k != key {
				flush()
				key = k
				style = lipgloss.NewStyle().
					Foreground(termcolor.FromImage(fg)).
					Background(termcolor.FromImage(bg))
			}
			run.WriteString(glyph)
		}
		flush()

		lines[r] = b.String()
	}

	return strings.Join(lines, "\n")
}

// Plain draws the grid without colour: '#' for half-blocks differing from white, text as is.
func (c *Cells) Plain() string {
	lines := make([]string, c.rows)

	for r, row := range c.grid {
		var b strings.Builder
		for _, cl := range row {
			switch {
			case cl.spill:
			case cl.text != "":
				b.WriteString(cl.text)
			case paint.Hex(cl.top) != paint.Hex(paint.White) || paint.Hex(cl.bottom) != paint.Hex(paint.White):
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		lines[r] = b.String()
	}

	return strings.Join(lines, "\n")
}
