// Package tui provides the terminal front-end for the seek bar.
package tui

import (
	"github.com/anisan-cli/seekbar/seekbar"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// CellWidth and CellHeight are the fewest seek bar pixels one terminal cell stands for.
	// Cells grow when the terminal is too small to hold the whole frame.
	CellWidth, CellHeight float64
}

// Run drives c from the terminal until the user quits.
func Run(c *seekbar.Controller, options *Options) error {
	bubble := newBubble(c, options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
