// Package blend drives gamma-correct transitions between two pattern
// scenes, with spatial wipe effects deciding the per-cell mix.
package blend

import (
	"math"

	"github.com/softglow/glowcat/vmath"
)

// Effect selects the spatial shape of a transition wipe
type Effect int

const (
	Crossfade Effect = iota
	Ripple
	Spiral
	Wave
	Pixelate
	Kaleidoscope
)

func (e Effect) String() string {
	switch e {
	case Ripple:
		return "ripple"
	case Spiral:
		return "spiral"
	case Wave:
		return "wave"
	case Pixelate:
		return "pixelate"
	case Kaleidoscope:
		return "kaleidoscope"
	default:
		return "crossfade"
	}
}

// Apply returns the per-cell blend weight in [0, 1] for unit coordinates
// x, y at the given animation time. baseBlend is the overall transition
// progress before easing.
func (e Effect) Apply(x, y, time float64, baseBlend float64) float64 {
	eased := vmath.EaseInOutCubic(vmath.Clamp(baseBlend, 0, 1))

	switch e {
	case Ripple:
		// Expanding circle from center with a soft edge
		dx := x - 0.5
		dy := y - 0.5
		dist := math.Sqrt(dx*dx + dy*dy)
		progress := eased * 0.8 * 1.3
		const edgeWidth = 0.15

		if dist < progress-edgeWidth {
			return 1.0
		}
		if dist < progress+edgeWidth {
			return vmath.SmoothStep((progress + edgeWidth - dist) / (edgeWidth * 2.0))
		}
		return 0.0

	case Spiral:
		dx := x - 0.5
		dy := y - 0.5
		angle := math.Atan2(dy, dx)
		dist := math.Sqrt(dx*dx + dy*dy)

		const spiralArms = 3.0
		spiralAngle := angle*spiralArms + dist*8.0 - time*3.0
		spiralWave := math.Sin(spiralAngle)*0.5 + 0.5

		radialProgress := vmath.Clamp(eased*1.4-0.2, 0, 1)
		combined := spiralWave*0.4 + radialProgress*0.6

		return vmath.Clamp((eased*2.0-(1.0-combined))*1.5, 0, 1)

	case Wave:
		// Diagonal sweep from top-left with sine distortion
		waveProgress := eased*1.4 - 0.2
		const waveWidth = 0.12

		diag := (x + y) * 0.5
		wavePos := waveProgress + math.Sin(y*8.0+time*4.0)*0.03

		if diag < wavePos-waveWidth {
			return 1.0
		}
		if diag > wavePos+waveWidth {
			return 0.0
		}
		return vmath.SmoothStep((wavePos + waveWidth - diag) / (waveWidth * 2.0))

	case Pixelate:
		// Dissolve with blocks shrinking as the transition completes
		blockSize := 0.08*(1.0-eased*0.7) + 0.01
		bx := math.Floor(x / blockSize)
		by := math.Floor(y / blockSize)

		threshold := vmath.Fract(math.Sin(bx*127.1+by*311.7) * 43758.5453)

		diff := eased - threshold
		if diff > 0.1 {
			return 1.0
		}
		if diff > -0.1 {
			return vmath.SmoothStep((diff + 0.1) / 0.2)
		}
		return 0.0

	case Kaleidoscope:
		dx := x - 0.5
		dy := y - 0.5
		angle := math.Atan2(dy, dx) + time*0.5
		dist := math.Sqrt(dx*dx + dy*dy)

		const segments = 6.0
		segmentAngle := vmath.RemEuclid(angle*segments/(2.0*math.Pi), 1.0)

		fillProgress := eased * 1.2
		segmentFill := vmath.Clamp(fillProgress-segmentAngle*0.3, 0, 1)
		radialFill := vmath.Clamp((fillProgress-dist*0.5)*2.0, 0, 1)

		return vmath.Clamp(segmentFill*0.5+radialFill*0.5, 0, 1)

	default:
		return eased
	}
}

// ParseEffect maps an effect name to its value
func ParseEffect(s string) (Effect, bool) {
	switch s {
	case "crossfade":
		return Crossfade, true
	case "ripple":
		return Ripple, true
	case "spiral":
		return Spiral, true
	case "wave":
		return Wave, true
	case "pixelate":
		return Pixelate, true
	case "kaleidoscope":
		return Kaleidoscope, true
	}
	return Crossfade, false
}
