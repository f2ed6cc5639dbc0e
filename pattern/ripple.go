package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// RippleParams configures concentric waves from a movable center
type RippleParams struct {
	CenterX    float64
	CenterY    float64
	Wavelength float64
	Damping    float64
	Frequency  float64
}

func (RippleParams) id() string { return "ripple" }

func (p RippleParams) String() string {
	return fmt.Sprintf("center_x=%s,center_y=%s,wavelength=%s,damping=%s,frequency=%s",
		fnum(p.CenterX), fnum(p.CenterY), fnum(p.Wavelength), fnum(p.Damping), fnum(p.Frequency))
}

func init() {
	register(patternDef{
		id:   "ripple",
		name: "Ripple",
		desc: "Ripple effect emanating from a center point",
		fields: []Field{
			{Name: "center_x", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "X coordinate of the ripple center"},
			{Name: "center_y", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "Y coordinate of the ripple center"},
			{Name: "wavelength", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Distance between ripple waves"},
			{Name: "damping", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "How quickly ripples fade with distance"},
			{Name: "frequency", Type: NumberField, Min: 0.1, Max: 10, Default: "1", Desc: "Speed of ripple animation"},
		},
		defaults: func() Params {
			return RippleParams{CenterX: 0.5, CenterY: 0.5, Wavelength: 1, Damping: 0.5, Frequency: 1}
		},
		decode: func(raw map[string]string) Params {
			return RippleParams{
				CenterX:    num(raw, "center_x", 0.5),
				CenterY:    num(raw, "center_y", 0.5),
				Wavelength: num(raw, "wavelength", 1),
				Damping:    num(raw, "damping", 0.5),
				Frequency:  num(raw, "frequency", 1),
			}
		},
	})
}

func (g *Generator) ripple(x, y float64, p RippleParams) float64 {
	xPos := x + 0.5
	yPos := y + 0.5
	dx := xPos - p.CenterX
	dy := yPos - p.CenterY

	distance := math.Sqrt(dx*dx + dy*dy)

	timeFactor := g.time * p.Frequency * math.Pi * 2.0

	wavePhase := distance/p.Wavelength*math.Pi*10.0 + timeFactor
	value := vmath.Sin(wavePhase)

	amplitude := math.Max(math.Exp(-distance*p.Damping*5.0), 0.2)

	baseMod := vmath.Sin(timeFactor*0.5) * 0.3
	distMod := vmath.Sin(timeFactor+distance*math.Pi*4.0) * 0.2

	angle := 0.0
	if dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx)
	}
	phaseMod := vmath.Sin(timeFactor*0.7) * vmath.Sin(angle*2.0+timeFactor*0.1) * 0.2

	combined := value*amplitude + baseMod + distMod + phaseMod
	return vmath.Clamp((combined+1.0)*0.5, 0, 1)
}
