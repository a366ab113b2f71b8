// Package tui provides the terminal front-end for the seek bar.
package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/log"
	"github.com/anisan-cli/seekbar/seekbar"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

var mouseButtons = map[tea.MouseButton]seekbar.Button{
	tea.MouseButtonLeft:   seekbar.ButtonLeft,
	tea.MouseButtonRight:  seekbar.ButtonRight,
	tea.MouseButtonMiddle: seekbar.ButtonMiddle,
}

// Transport icon positions in the controller's icon row.
const (
	playIcon = 0
	muteIcon = 2
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		b.controller.Draw(b.cells)
		b.frame = b.cells.Render()
		return b, tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case barState:
		return b.updateBar(msg)
	case promptState:
		return b.updatePrompt(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateBar(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		b.handleMouse(msg)
	case tea.KeyMsg:
		if msg.Paste {
			b.load(parsePaths(string(msg.Runes)))
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.left):
			b.press(seekbar.KeyLeft)
		case bubblesKey.Matches(msg, b.keymap.right):
			b.press(seekbar.KeyRight)
		case bubblesKey.Matches(msg, b.keymap.playPause):
			b.click(playIcon)
		case bubblesKey.Matches(msg, b.keymap.mute):
			b.click(muteIcon)
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		case bubblesKey.Matches(msg, b.keymap.open):
			b.inputC.SetValue("")
			b.setState(promptState)
			return b, b.inputC.Focus()
		}
	}

	return b, nil
}

func (b *statefulBubble) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.setState(barState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.inputC.Blur()
			b.setState(barState)

			paths := parsePaths(b.inputC.Value())
			if len(paths) == 0 {
				return b, nil
			}

			if missing := lo.Filter(paths, func(p string, _ int) bool {
				exists, err := filesystem.API().Exists(p)
				return err != nil || !exists
			}); len(missing) > 0 {
				b.raiseError(fmt.Errorf("no such file: %s", strings.Join(missing, ", ")))
				return b, nil
			}

			b.load(paths)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.setState(barState)
		}
	}

	return b, nil
}

// handleMouse forwards a terminal mouse event at the centre of the cell it hit.
func (b *statefulBubble) handleMouse(msg tea.MouseMsg) {
	x, y := b.cells.PixelAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		b.controller.Move(x, y)
	case tea.MouseActionPress:
		button, ok := mouseButtons[msg.Button]
		if !ok {
			return
		}
		b.controller.Move(x, y)
		b.controller.MouseButton(button, true, x, y)
	case tea.MouseActionRelease:
		// Terminals often report releases without the button.
		b.controller.MouseButton(lo.ValueOr(mouseButtons, msg.Button, seekbar.ButtonLeft), false, x, y)
	}
}

// press sends a key press and its release; terminals only report presses.
func (b *statefulBubble) press(k seekbar.Key) {
	b.controller.Key(k, true)
	b.controller.Key(k, false)
}

// click presses and releases the pointer at the centre of transport icon i.
func (b *statefulBubble) click(i int) {
	icons := b.controller.Icons()
	if i >= len(icons) {
		log.Debugf("no transport icon %d to click", i)
		return
	}

	icon := icons[i]
	x, y := icon.X+icon.Width/2, icon.Y+icon.Height/2
	b.controller.MouseButton(seekbar.ButtonLeft, true, x, y)
	b.controller.MouseButton(seekbar.ButtonLeft, false, x, y)
}

func (b *statefulBubble) load(paths []string) {
	if !b.controller.Load(paths) {
		log.Debug("terminal drop ignored while loading")
	}
}

// parsePaths splits pasted text into paths. Terminals paste dropped files separated by
// whitespace, quoting them or escaping their spaces with backslashes.
func parsePaths(s string) []string {
	var (
		paths   []string
		current strings.Builder
		quote   rune
		started bool
	)

	emit := func() {
		if started {
			paths = append(paths, strings.TrimPrefix(current.String(), "file://"))
		}
		current.Reset()
		started = false
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\\' && quote != '\'' && i+1 < len(runes) && strings.ContainsRune(" \t'\"\\", runes[i+1]):
			i++
			current.WriteRune(runes[i])
			started = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote, started = r, true
		case unicode.IsSpace(r):
			emit()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	emit()

	return paths
}
