package style

import "github.com/charmbracelet/lipgloss"

var (
	// AccentColor tints the loading spinner.
	AccentColor = lipgloss.Color("#cba6f7")
	// ErrorColor is used for error messages.
	ErrorColor = lipgloss.Color("#f38ba8")
)
