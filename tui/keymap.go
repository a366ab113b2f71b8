// Package tui provides the terminal front-end for the seek bar.
package tui

import (
	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/style"
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap holds every binding; help lists the ones valid in the current state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	left, right,
	playPause, mute,
	open, confirm, back,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

// bind builds a binding matched by keys and listed in help as label.
func bind(label, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

func newStatefulKeymap() *statefulKeymap {
	accent := style.Fg(color.Orange)

	return &statefulKeymap{
		quit:      bind("q", "quit", "q"),
		forceQuit: bind("ctrl+c", "quit", "ctrl+c", "ctrl+d"),
		left:      bind("←", "back", "left", "h"),
		right:     bind("→", "forward", "right", "l"),
		playPause: bind("space", "play/pause", " "),
		mute:      bind("m", "mute", "m"),
		open:      bind(accent("o"), accent("open file"), "o"),
		confirm:   bind("enter", "confirm", "enter"),
		back:      bind("esc", "back", "esc"),
		showHelp:  bind("?", "help", "?"),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	var short, full []key.Binding

	switch k.state {
	case barState:
		short = []key.Binding{k.open, k.playPause, k.showHelp, k.quit}
		full = []key.Binding{k.open, k.left, k.right, k.playPause, k.mute, k.showHelp, k.quit}
	case promptState:
		short = []key.Binding{k.confirm, k.back}
	case errorState:
		short = []key.Binding{k.back, k.quit}
	}

	if full == nil {
		full = short
	}
	return short, full
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
