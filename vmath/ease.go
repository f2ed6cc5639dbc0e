package vmath

import (
	"math"
)

// Lerp linearly interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SmoothStep is the cubic Hermite curve t²(3-2t), clamped to [0, 1]
func SmoothStep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// EaseInOutCubic accelerates through the first half and decelerates
// through the second, with unit endpoints.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// EaseOutQuart decelerates hard toward 1
func EaseOutQuart(t float64) float64 {
	f := 1 - t
	return 1 - f*f*f*f
}

// Fract returns the fractional part of x, matching floor semantics for
// negative inputs (Fract(-0.25) == 0.75).
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InterpolateWrapped interpolates between two unit-interval values taking
// the short way around the 1.0 seam. Used for cyclic pattern values.
func InterpolateWrapped(prev, next, alpha float64) float64 {
	diff := next - prev
	if math.Abs(diff) <= 0.5 {
		return prev + diff*alpha
	}

	wrapped := next + 1
	if diff > 0 {
		wrapped = next - 1
	}

	v := prev + (wrapped-prev)*alpha
	if v < 0 {
		return v + 1
	}
	if v > 1 {
		return v - 1
	}
	return v
}
