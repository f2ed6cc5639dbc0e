package vmath

import (
	"math"
)

// Noise is a seeded gradient-noise source over a 256-entry permutation
// lattice. The zero value is not usable; construct with NewNoise.
type Noise struct {
	perm [256]uint8
}

// NewNoise builds the permutation table for the given seed using a
// Lehmer-stepped Fisher-Yates shuffle. Equal seeds give equal tables.
func NewNoise(seed uint32) *Noise {
	n := &Noise{}
	for i := range n.perm {
		n.perm[i] = uint8(i)
	}
	state := seed
	for i := 255; i >= 1; i-- {
		state = state*48271 + 1
		j := int(state % uint32(i+1))
		n.perm[i], n.perm[j] = n.perm[j], n.perm[i]
	}
	return n
}

// Hash returns the permutation entry for a lattice coordinate.
func (n *Noise) Hash(x, y int) uint8 {
	return n.perm[((x&255)+(y&255)*256)&255]
}

// Noise2D returns smoothed lattice noise in [-1, 1].
func (n *Noise) Noise2D(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1

	dx := x - math.Floor(x)
	dy := y - math.Floor(y)

	sx := SmoothStep(dx)
	sy := SmoothStep(dy)

	n00 := gradientDot(n.Hash(x0, y0), dx, dy)
	n10 := gradientDot(n.Hash(x1, y0), dx-1, dy)
	n01 := gradientDot(n.Hash(x0, y1), dx, dy-1)
	n11 := gradientDot(n.Hash(x1, y1), dx-1, dy-1)

	nx0 := Lerp(n00, n10, sx)
	nx1 := Lerp(n01, n11, sx)
	return Lerp(nx0, nx1, sy)
}

// gradientDot picks one of four diagonal gradients from the low hash bits
func gradientDot(hash uint8, dx, dy float64) float64 {
	switch hash & 3 {
	case 0:
		return dx + dy
	case 1:
		return -dx + dy
	case 2:
		return dx - dy
	default:
		return -dx - dy
	}
}
