package vmath

import (
	"math"
)

// LUTSize is one entry per degree, enough resolution for cell-grid animation
const LUTSize = 360

const radToDeg = 180.0 / math.Pi

var (
	sinLUT [LUTSize]float64
	cosLUT [LUTSize]float64
)

func init() {
	// Sin/Cos LUT calculation
	for i := 0; i < LUTSize; i++ {
		rad := float64(i) * math.Pi / 180.0
		sinLUT[i] = math.Sin(rad)
		cosLUT[i] = math.Cos(rad)
	}
}

// Sin returns the table sine of angle in radians.
// Max error vs math.Sin is below 0.018 (half a degree of phase).
func Sin(angle float64) float64 {
	norm := RemEuclid(angle, 2*math.Pi)
	return sinLUT[int(norm*radToDeg)%LUTSize]
}

// Cos returns the table cosine of angle in radians.
func Cos(angle float64) float64 {
	norm := RemEuclid(angle, 2*math.Pi)
	return cosLUT[int(norm*radToDeg)%LUTSize]
}

// RemEuclid returns the least non-negative remainder of x mod m.
// Unlike math.Mod the result is always in [0, m) for m > 0.
func RemEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
