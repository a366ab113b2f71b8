// Package color names the terminal colours used by the CLI and the terminal front-end.
package color

import (
	imgcolor "image/color"

	"github.com/anisan-cli/seekbar/paint"
	"github.com/charmbracelet/lipgloss"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette entries, rendered in whatever shade the terminal theme assigns.
var (
	Red      = New("1")
	Green    = New("2")
	Yellow   = New("3")
	Blue     = New("4")
	Purple   = New("5")
	Cyan     = New("6")
	HiRed    = New("9")
	HiPurple = New("13")
)

var Orange = New("#ffb703")

// FromImage converts a frame colour to the hex form lipgloss renders in true colour terminals.
// Fully transparent colours become black.
func FromImage(c imgcolor.Color) lipgloss.Color {
	return lipgloss.Color(paint.Hex(c))
}
