package icon

import "github.com/anisan-cli/seekbar/asset"

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota
	Pause
	Skip
	Volume
	Mute
	Success
	Fail
)

var icons = map[Icon]glyphs{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "▷",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "=",
		kaomoji: "॥",
		squares: "▮",
	},
	Skip: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   ">|",
		kaomoji: "⇥",
		squares: "⏭",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "V",
		kaomoji: "♪",
		squares: "◀",
	},
	Mute: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "M",
		kaomoji: "×",
		squares: "◁",
	},
	Success: {
		emoji:   "🎉",
		nerd:    " ",
		plain:   "Success",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "▣",
	},
	Fail: {
		emoji:   "💀",
		nerd:    " ",
		plain:   "Error",
		kaomoji: "(╥﹏╥)",
		squares: "▨",
	},
}

// ForAsset returns the symbol standing in for a transport image in the terminal.
func ForAsset(name asset.Name) (Icon, bool) {
	switch name {
	case asset.Play:
		return Play, true
	case asset.Pause:
		return Pause, true
	case asset.Skip:
		return Skip, true
	case asset.Volume:
		return Volume, true
	case asset.Mute:
		return Mute, true
	default:
		return 0, false
	}
}
