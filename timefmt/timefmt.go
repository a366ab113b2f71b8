// Package timefmt renders playback positions as minute:second labels.
package timefmt

import (
	"fmt"
	"math"
)

// MaxSeconds is the largest duration Format will render; larger inputs are clamped to it.
const MaxSeconds = math.MaxInt32

// Format truncates seconds to a whole number and renders it as zero-padded "MM:SS".
// Negative and NaN inputs render as "00:00". Minutes widen past two digits instead of wrapping.
func Format(seconds float64) string {
	switch {
	case math.IsNaN(seconds), seconds < 0:
		seconds = 0
	case seconds > MaxSeconds:
		seconds = MaxSeconds
	}

	total := int64(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Span renders "elapsed / total", the label shown under the track.
func Span(elapsed, total float64) string {
	return Format(elapsed) + " / " + Format(total)
}
