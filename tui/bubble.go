// Package tui provides the terminal front-end for the seek bar.
package tui

import (
	"math"
	"time"

	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/anisan-cli/seekbar/style"
	"github.com/anisan-cli/seekbar/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// frameRate is how often the seek bar is repainted.
const frameRate = time.Second / 60

// Fallback cell size when none is configured.
const (
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0
)

// reservedRows are the terminal rows kept below the frame for the status and help lines.
const reservedRows = 3

type frameMsg time.Time

// statefulBubble owns the controller and translates terminal events into seek bar input.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	controller *seekbar.Controller
	cells      *Cells
	frame      string

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	helpC    help.Model

	minCellWidth, minCellHeight float64
	width, height               int
	lastError                   error
}

func newBubble(c *seekbar.Controller, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()

	b := &statefulBubble{
		keymap:        keymap,
		controller:    c,
		spinnerC:      spinner.New(),
		inputC:        textinput.New(),
		helpC:         help.New(),
		minCellWidth:  options.CellWidth,
		minCellHeight: options.CellHeight,
	}

	b.spinnerC.Spinner = spinner.Dot
	b.spinnerC.Style = style.New().Foreground(style.AccentColor)

	b.inputC.Prompt = "> "
	b.inputC.Placeholder = "path to a media file"
	b.inputC.CharLimit = 4096

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	} else {
		b.resize(0, 0)
	}

	b.setState(barState)
	return b
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize picks the cell size so the whole frame fits a width x height terminal.
func (b *statefulBubble) resize(width, height int) {
	b.width, b.height = width, height
	b.helpC.Width = width

	opts := b.controller.Options()
	cellWidth, cellHeight := b.minCellWidth, b.minCellHeight
	if cellWidth <= 0 {
		cellWidth = defaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = defaultCellHeight
	}

	if width > 0 {
		cellWidth = math.Max(cellWidth, math.Ceil(opts.Width/float64(width)))
	}
	if rows := height - reservedRows; rows > 0 {
		cellHeight = math.Max(cellHeight, math.Ceil(opts.Height/float64(rows)))
	}

	b.cells = NewCells(opts.Width, opts.Height, cellWidth, cellHeight)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame clock.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(tick(), b.spinnerC.Tick)
}
