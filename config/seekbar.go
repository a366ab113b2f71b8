package config

import (
	"time"

	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/paint"
	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/spf13/viper"
)

// Seekbar builds the controller layout from the current settings.
func Seekbar() (seekbar.Options, error) {
	accent, err := paint.ParseHex(viper.GetString(key.SeekbarAccentColor))
	if err != nil {
		return seekbar.Options{}, err
	}

	return seekbar.Options{
		Width:       float64(viper.GetInt(key.WindowWidth)),
		Height:      float64(viper.GetInt(key.WindowHeight)),
		Padding:     viper.GetFloat64(key.SeekbarPadding),
		TrackHeight: viper.GetFloat64(key.SeekbarTrackHeight),
		Duration:    viper.GetFloat64(key.SeekbarDuration),
		LoadingTime: time.Duration(viper.GetFloat64(key.SeekbarLoadingTime) * float64(time.Second)),
		NudgeOffset: viper.GetFloat64(key.SeekbarNudgeOffset),
		Font:        paint.Font{Size: viper.GetFloat64(key.SeekbarFontSize)},
		Accent:      accent,
	}, nil
}
