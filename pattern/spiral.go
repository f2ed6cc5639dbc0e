package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// SpiralParams configures the rotating spiral pattern
type SpiralParams struct {
	Density   float64
	Rotation  float64
	Expansion float64
	Clockwise bool
	Frequency float64
}

func (SpiralParams) id() string { return "spiral" }

func (p SpiralParams) String() string {
	return fmt.Sprintf("density=%s,rotation=%s,expansion=%s,clockwise=%t,frequency=%s",
		fnum(p.Density), fnum(p.Rotation), fnum(p.Expansion), p.Clockwise, fnum(p.Frequency))
}

func init() {
	register(patternDef{
		id:   "spiral",
		name: "Spiral",
		desc: "Spiral arms rotating from the center",
		fields: []Field{
			{Name: "density", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "How tightly the spiral winds"},
			{Name: "rotation", Type: NumberField, Min: 0, Max: 360, Default: "0", Desc: "Base rotation in degrees"},
			{Name: "expansion", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "How quickly arms spread outward"},
			{Name: "clockwise", Type: BoolField, Default: "true", Desc: "Rotation direction"},
			{Name: "frequency", Type: NumberField, Min: 0.1, Max: 10, Default: "1", Desc: "Animation speed"},
		},
		defaults: func() Params {
			return SpiralParams{Density: 1, Expansion: 1, Clockwise: true, Frequency: 1}
		},
		decode: func(raw map[string]string) Params {
			return SpiralParams{
				Density:   num(raw, "density", 1),
				Rotation:  num(raw, "rotation", 0),
				Expansion: num(raw, "expansion", 1),
				Clockwise: boolean(raw, "clockwise", true),
				Frequency: num(raw, "frequency", 1),
			}
		},
	})
}

func (g *Generator) spiral(x, y float64, p SpiralParams) float64 {
	timeBase := g.time * p.Frequency * math.Pi
	timeSlow := timeBase * 0.3

	timeSin := vmath.Sin(timeSlow)
	timeSinHalf := vmath.Sin(timeSlow * 0.5)

	angle := math.Atan2(y, x)
	distSq := x*x + y*y
	distance := math.Sqrt(distSq)

	// Rotation advances on a hundredth-step harmonic so the spin closes
	// exactly at the cycle wrap.
	rotRad := p.Rotation*(math.Pi/180.0) + timeBase*0.17

	flowFactor := vmath.Sin(distance*math.Pi*2.0+timeSlow) * 0.2
	expansionFactor := 1.0 + timeSinHalf*0.2

	spiralAngle := angle + (distance*p.Density*p.Expansion*expansionFactor + flowFactor) + rotRad

	primary := vmath.RemEuclid(spiralAngle+timeSlow, math.Pi*2.0) / (math.Pi * 2.0)

	distanceMod := vmath.Sin(distance*math.Pi*1.5+timeSlow*0.8) * 0.15
	phaseMod := vmath.Sin(timeSlow*0.5+angle*2.0+distance*math.Pi) * 0.12
	pulse := math.Max(1.0-distance, 0.0) * timeSin * 0.1

	combined := primary + distanceMod + phaseMod + pulse
	smoothed := (vmath.Sin(combined*math.Pi*2.0) + 1.0) * 0.5

	return vmath.Clamp(smoothed*math.Max(1.0-distSq*0.1, 0.2), 0, 1)
}
