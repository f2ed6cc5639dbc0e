package vmath

import (
	"math"
	"testing"
)

func TestSinAccuracy(t *testing.T) {
	for angle := -10.0; angle < 10.0; angle += 0.013 {
		got := Sin(angle)
		want := math.Sin(angle)
		if math.Abs(got-want) > 0.02 {
			t.Fatalf("Sin(%v) = %v, want within 0.02 of %v", angle, got, want)
		}
	}
}

func TestCosAccuracy(t *testing.T) {
	for angle := -10.0; angle < 10.0; angle += 0.013 {
		got := Cos(angle)
		want := math.Cos(angle)
		if math.Abs(got-want) > 0.02 {
			t.Fatalf("Cos(%v) = %v, want within 0.02 of %v", angle, got, want)
		}
	}
}

func TestRemEuclid(t *testing.T) {
	cases := []struct {
		x, m, want float64
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{7.5, 2.5, 0},
		{-0.5, 2, 1.5},
	}
	for _, c := range cases {
		if got := RemEuclid(c.x, c.m); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("RemEuclid(%v, %v) = %v, want %v", c.x, c.m, got, c.want)
		}
	}
	for x := -20.0; x < 20.0; x += 0.37 {
		r := RemEuclid(x, 2*math.Pi)
		if r < 0 || r >= 2*math.Pi {
			t.Fatalf("RemEuclid(%v, 2pi) = %v out of range", x, r)
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(42)
	b := NewNoise(42)
	c := NewNoise(43)

	same := true
	differ := false
	for x := 0.0; x < 8.0; x += 0.31 {
		for y := 0.0; y < 8.0; y += 0.29 {
			if a.Noise2D(x, y) != b.Noise2D(x, y) {
				same = false
			}
			if a.Noise2D(x, y) != c.Noise2D(x, y) {
				differ = true
			}
		}
	}
	if !same {
		t.Error("equal seeds produced different noise")
	}
	if !differ {
		t.Error("different seeds produced identical noise")
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoise(0)
	for x := -5.0; x < 5.0; x += 0.17 {
		for y := -5.0; y < 5.0; y += 0.19 {
			v := n.Noise2D(x, y)
			if v < -1.0 || v > 1.0 {
				t.Fatalf("Noise2D(%v, %v) = %v out of [-1, 1]", x, y, v)
			}
		}
	}
}

func TestNoiseZeroAtLattice(t *testing.T) {
	// Gradient noise vanishes on integer lattice points
	n := NewNoise(7)
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			if v := n.Noise2D(float64(x), float64(y)); v != 0 {
				t.Fatalf("Noise2D(%d, %d) = %v, want 0", x, y, v)
			}
		}
	}
}

func TestSmoothStep(t *testing.T) {
	if SmoothStep(0) != 0 || SmoothStep(1) != 1 {
		t.Error("SmoothStep endpoints wrong")
	}
	if SmoothStep(0.5) != 0.5 {
		t.Errorf("SmoothStep(0.5) = %v, want 0.5", SmoothStep(0.5))
	}
	if SmoothStep(-1) != 0 || SmoothStep(2) != 1 {
		t.Error("SmoothStep must clamp outside [0, 1]")
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if EaseInOutCubic(0) != 0 || EaseInOutCubic(1) != 1 {
		t.Error("easing endpoints wrong")
	}
	if math.Abs(EaseInOutCubic(0.5)-0.5) > 1e-12 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", EaseInOutCubic(0.5))
	}
	prev := 0.0
	for x := 0.0; x <= 1.0; x += 0.01 {
		v := EaseInOutCubic(x)
		if v < prev-1e-12 {
			t.Fatalf("easing not monotonic at %v", x)
		}
		prev = v
	}
}

func TestInterpolateWrapped(t *testing.T) {
	if got := InterpolateWrapped(0.2, 0.4, 0.5); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("short path = %v, want 0.3", got)
	}
	// 0.9 -> 0.1 should cross the seam, not sweep backwards
	got := InterpolateWrapped(0.9, 0.1, 0.5)
	if math.Abs(got-0.0) > 1e-12 && math.Abs(got-1.0) > 1e-12 {
		t.Errorf("wrap path = %v, want 0.0 or 1.0", got)
	}
}
