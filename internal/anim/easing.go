package anim

import "time"

// The widget uses exactly two canonical durations everywhere.
const (
	// ShiftDuration is the length of selection transitions: the blob
	// glide, the tab lift and the disc fill.
	ShiftDuration = 300 * time.Millisecond

	// PassDuration is the length of the auto-reversing pass-by dip
	// applied to tabs a jump skips over.
	PassDuration = 150 * time.Millisecond
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Linear is the identity easing. Used in tests where eased values would
// obscure expectations.
func Linear(t float64) float64 { return t }

// EaseOut is a cubic ease-out: fast start, gentle settle.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut is a cubic ease-in-out.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
