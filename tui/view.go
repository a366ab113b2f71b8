// Package tui provides the terminal front-end for the seek bar.
package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/icon"
	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/anisan-cli/seekbar/style"
	"github.com/anisan-cli/seekbar/timefmt"
	"github.com/anisan-cli/seekbar/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	switch b.state {
	case barState:
		return b.viewBar()
	case promptState:
		return b.viewPrompt()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewBar() string {
	return strings.Join([]string{
		b.frame,
		style.Truncate(b.width)(b.status()),
		b.helpC.View(b.keymap),
	}, "\n")
}

// status summarises the controller state in one line.
func (b *statefulBubble) status() string {
	c := b.controller
	phase := util.Capitalize(c.Phase().String())

	var name string
	if files := c.Files(); len(files) > 0 {
		name = style.Italic(util.FileStem(files[0]))
		if len(files) > 1 {
			name += style.Faint(fmt.Sprintf(" +%d", len(files)-1))
		}
	}

	switch c.Phase() {
	case seekbar.Unloaded:
		return style.Faint(phase + ": paste or drop a file path, or press o")
	case seekbar.Loading:
		return b.spinnerC.View() + " " + style.Fg(color.Yellow)(phase) + " " + name
	}

	opts := c.Options()
	play := icon.Get(icon.Play)
	if c.Playing() {
		play = icon.Get(icon.Pause)
	}
	volume := icon.Get(icon.Volume)
	if c.Muted() {
		volume = icon.Get(icon.Mute)
	}

	return fmt.Sprintf("%s %s  %s  %s  %s",
		style.Fg(color.Green)(phase),
		play,
		volume,
		style.Bold(timefmt.Span(c.CurrentTime(), opts.Duration)),
		name,
	)
}

func (b *statefulBubble) viewPrompt() string {
	return b.renderLines(true, []string{
		style.Title("Open File"),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, max(b.width-4, 1))
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Could not open the file:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h+3 {
			l += strings.Repeat("\n", b.height-h-3)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
