package seekbar

import (
	"image/color"
	"time"

	"github.com/anisan-cli/seekbar/paint"
)

// Drawing constants of the seek bar.
const (
	MarkerWidth  = 5.0
	CursorRadius = 20.0

	// LoadingSegmentWidth is the width of the bar sweeping across the track while loading.
	LoadingSegmentWidth = 250.0

	// LoadingStep is how far the loading sweep advances per frame, as a fraction of its travel.
	LoadingStep = 0.01

	// LoadingTravelInset is subtracted from the window width to get the sweep travel.
	LoadingTravelInset = 350.0

	// HitTolerance is the vertical reach of the track hit area above and below the centre line.
	HitTolerance = 20.0

	// Offsets from the cursor centre.
	iconRowOffset  = 30.0
	elapsedOffsetX = 220.0
	elapsedOffsetY = 60.0
	labelLift      = 40.0
	timeLabelLift  = 20.0
)

// Options sizes and styles a Controller.
type Options struct {
	Width, Height float64
	Padding       float64
	TrackHeight   float64
	// Duration is the total length of the track in seconds.
	Duration    float64
	LoadingTime time.Duration
	NudgeOffset float64
	Font        paint.Font
	Accent      color.Color
}

// DefaultOptions returns the stock 960x640 layout.
func DefaultOptions() Options {
	return Options{
		Width:       960,
		Height:      640,
		Padding:     50,
		TrackHeight: 15,
		Duration:    600,
		LoadingTime: 5 * time.Second,
		NudgeOffset: 20,
		Font:        paint.Font{Size: 20},
		Accent:      paint.Red,
	}
}

// TrackWidth returns the drawable track width between the paddings.
func (o Options) TrackWidth() float64 {
	return o.Width - 2*o.Padding
}
