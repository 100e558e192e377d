// Package speed maps the 1..100 speed control onto a rotation period.
package speed

import (
	"fmt"
	"math"
	"time"
)

const (
	Min     = 1
	Max     = 100
	Default = 50

	// SlowMs is the period at Min, FastMs the period at Max.
	SlowMs = 7000.0
	FastMs = 1000.0
)

// Clamp limits v to [Min, Max].
func Clamp(v int) int {
	return max(Min, min(Max, v))
}

// PeriodMs returns the rotation period in milliseconds for slider value v.
// Values outside [Min, Max] are clamped first. The result is not rounded.
func PeriodMs(v int) float64 {
	v = Clamp(v)
	return SlowMs - (SlowMs-FastMs)*float64(v-Min)/float64(Max-Min)
}

// Period is PeriodMs as a time.Duration.
func Period(v int) time.Duration {
	return time.Duration(PeriodMs(v) * float64(time.Millisecond))
}

// Format renders a period for display: seconds with one decimal from one
// second upwards, whole milliseconds below.
func Format(ms float64) string {
	if ms >= 1000 {
		return fmt.Sprintf("%.1fs", ms/1000)
	}
	return fmt.Sprintf("%dms", int(math.Round(ms)))
}

// Step moves v by delta and clamps the result.
func Step(v, delta int) int {
	return Clamp(v + delta)
}

// Fraction returns the position of v along the slider track in [0, 1].
func Fraction(v int) float64 {
	return float64(Clamp(v)-Min) / float64(Max-Min)
}
