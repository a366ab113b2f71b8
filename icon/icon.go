// Package icon holds the terminal symbols for the transport controls and command output.
//
// Every symbol comes in emoji, nerd-font, plain ASCII, kaomoji and Unicode square
// variants; icons.variant picks one.
package icon

import (
	"github.com/anisan-cli/seekbar/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	emoji = iota
	nerd
	plain
	kaomoji
	squares
	variantCount
)

var variantNames = [variantCount]string{
	emoji:   "emoji",
	nerd:    "nerd",
	plain:   "plain",
	kaomoji: "kaomoji",
	squares: "squares",
}

// glyphs holds one rendering per variant.
type glyphs [variantCount]string

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return append([]string(nil), variantNames[:]...)
}

// Get renders i in the configured variant, or returns "" for an unknown variant.
func Get(i Icon) string {
	v := lo.IndexOf(variantNames[:], viper.GetString(key.IconsVariant))
	if v < 0 {
		return ""
	}
	return icons[i][v]
}
