package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// FireParams configures the rising flame effect
type FireParams struct {
	Intensity    float64
	Speed        float64
	Turbulence   float64
	Height       float64
	Wind         bool
	WindStrength float64
}

func (FireParams) id() string { return "fire" }

func (p FireParams) String() string {
	return fmt.Sprintf("intensity=%s,speed=%s,turbulence=%s,height=%s,wind=%t,wind_strength=%s",
		fnum(p.Intensity), fnum(p.Speed), fnum(p.Turbulence), fnum(p.Height), p.Wind, fnum(p.WindStrength))
}

func init() {
	register(patternDef{
		id:   "fire",
		name: "Fire",
		desc: "Dynamic fire effect with turbulence and wind",
		fields: []Field{
			{Name: "intensity", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "Overall flame intensity"},
			{Name: "speed", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Animation speed"},
			{Name: "turbulence", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "Amount of flame turbulence"},
			{Name: "height", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "Maximum flame height"},
			{Name: "wind", Type: BoolField, Default: "true", Desc: "Enable wind distortion"},
			{Name: "wind_strength", Type: NumberField, Min: 0, Max: 1, Default: "0.3", Desc: "Wind distortion strength"},
		},
		defaults: func() Params {
			return FireParams{Intensity: 1, Speed: 1, Turbulence: 0.5, Height: 1, Wind: true, WindStrength: 0.3}
		},
		decode: func(raw map[string]string) Params {
			return FireParams{
				Intensity:    num(raw, "intensity", 1),
				Speed:        num(raw, "speed", 1),
				Turbulence:   num(raw, "turbulence", 0.5),
				Height:       num(raw, "height", 1),
				Wind:         boolean(raw, "wind", true),
				WindStrength: num(raw, "wind_strength", 0.3),
			}
		},
	})
}

func (g *Generator) fire(x, y float64, p FireParams) float64 {
	time := g.time * p.Speed

	xPos := x + 0.5

	// Static previews tile a slice of the flame; animation inverts y so
	// flames rise from the bottom row.
	var yPos float64
	if g.time == 0 {
		yPos = vmath.RemEuclid(y+0.5, 0.3) * 3.0
	} else {
		yPos = 1.0 - (y + 0.5)
	}

	if yPos > p.Height {
		return 0.0
	}

	baseIntensity := math.Pow(1.0-yPos/p.Height, 0.35)

	// Scroll rates are multiples of 0.04 so the noise lattice repeats on
	// whole cycles.
	noise1 := g.noise.Noise2D(xPos*6.0+time*2.0, yPos*6.0+time*3.0)
	noise2 := g.noise.Noise2D(xPos*12.0-time*1.52, yPos*12.0+time*2.48)
	noise3 := g.noise.Noise2D(xPos*18.0+time*3.0, yPos*15.0-time*4.0)
	combined := noise1*0.5 + noise2*0.3 + noise3*0.2
	turbulence := combined * p.Turbulence * (1.0 + yPos*0.5)

	intensity := baseIntensity * (1.0 + turbulence)
	intensity = math.Pow(intensity, 0.8)

	if yPos < 0.3 {
		spotNoise := g.noise.Noise2D(xPos*15.0+time*4.0, yPos*10.0-time*3.0)
		if spotNoise > 0.5 {
			intensity = math.Max(intensity, 0.85)
		}
	}

	// Banded remap pushes intensity bands apart for stronger color steps
	switch {
	case intensity < 0.2:
	case intensity < 0.4:
		intensity = 0.2 + (intensity-0.2)*2.0
	case intensity < 0.6:
		intensity = 0.4 + (intensity-0.4)*2.0
	case intensity < 0.8:
		intensity = 0.6 + (intensity-0.6)*2.0
	default:
		intensity = 0.8 + (intensity-0.8)*2.0
	}

	if p.Wind {
		windTime := time * 1.52
		windOffset := g.noise.Noise2D(xPos+windTime, yPos*2.5) * p.WindStrength * math.Pow(yPos, 0.8)

		xSample := vmath.RemEuclid(xPos+windOffset, 1.0)
		calm := p
		calm.Wind = false
		intensity = g.fire(xSample-0.5, y, calm)
	}

	return vmath.Clamp(intensity, 0, 1)
}
