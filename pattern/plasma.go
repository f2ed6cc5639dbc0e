package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// PlasmaBlendMode selects how the complexity wave components combine
type PlasmaBlendMode string

const (
	PlasmaAdd      PlasmaBlendMode = "add"
	PlasmaMultiply PlasmaBlendMode = "multiply"
	PlasmaMax      PlasmaBlendMode = "max"
)

// PlasmaParams configures the multi-wave plasma effect
type PlasmaParams struct {
	Complexity float64
	Scale      float64
	Frequency  float64
	BlendMode  PlasmaBlendMode
}

func (PlasmaParams) id() string { return "plasma" }

func (p PlasmaParams) String() string {
	return fmt.Sprintf("complexity=%s,scale=%s,frequency=%s,blend_mode=%s",
		fnum(p.Complexity), fnum(p.Scale), fnum(p.Frequency), p.BlendMode)
}

func init() {
	register(patternDef{
		id:   "plasma",
		name: "Plasma",
		desc: "Psychedelic plasma effect with multiple wave components",
		fields: []Field{
			{Name: "complexity", Type: NumberField, Min: 1, Max: 10, Default: "3", Desc: "Number of sine wave components"},
			{Name: "scale", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Scale of the effect"},
			{Name: "frequency", Type: NumberField, Min: 0.1, Max: 10, Default: "1", Desc: "Animation speed"},
			{Name: "blend_mode", Type: EnumField, Options: []string{"add", "multiply", "max"}, Default: "add", Desc: "Component blending mode"},
		},
		defaults: func() Params {
			return PlasmaParams{Complexity: 3, Scale: 1, Frequency: 1, BlendMode: PlasmaAdd}
		},
		decode: func(raw map[string]string) Params {
			return PlasmaParams{
				Complexity: num(raw, "complexity", 3),
				Scale:      num(raw, "scale", 1),
				Frequency:  num(raw, "frequency", 1),
				BlendMode:  PlasmaBlendMode(enum(raw, "blend_mode", "add")),
			}
		},
	})
}

func (g *Generator) plasma(x, y float64, p PlasmaParams) float64 {
	time := g.time * math.Pi

	xPos := x + 0.5
	yPos := y + 0.5
	baseFreq := p.Frequency * p.Scale * 2.0

	// Moving center for the first wave origin
	cx := 0.5 + 0.3*vmath.Sin(time*0.4)
	cy := 0.5 + 0.3*vmath.Cos(time*0.43)

	dx1 := xPos - cx
	dy1 := yPos - cy
	dist1 := math.Sqrt(dx1*dx1 + dy1*dy1)

	sum := 0.0
	divisor := 0.0

	sum += vmath.Sin(dist1*6.0*baseFreq+time*0.6) * 0.8
	divisor += 0.8

	// Directional waves carry the most weight
	sum += vmath.Sin(xPos*5.0*baseFreq+time*0.4)*1.2 +
		vmath.Sin(yPos*5.0*baseFreq+time*0.47)*1.2
	divisor += 2.4

	angle := time * 0.2
	sinA, cosA := vmath.Sin(angle), vmath.Cos(angle)
	rx := xPos*cosA - yPos*sinA
	ry := xPos*sinA + yPos*cosA
	sum += vmath.Sin((rx+ry)*4.0*baseFreq) * 1.4
	divisor += 1.4

	sum += vmath.Sin((xPos+yPos)*4.0*baseFreq+time*0.3)*1.0 +
		vmath.Sin((xPos-yPos)*4.0*baseFreq+time*0.35)*1.0
	divisor += 2.0

	// Complexity components from drifting wave origins, combined per
	// the configured blend mode.
	complexity := int(p.Complexity)
	if complexity > 0 {
		product := 1.0
		maxComponent := -1.0
		for i := 0; i < complexity; i++ {
			fi := float64(i)
			speed := 0.2 + fi*0.04

			ccx := 0.5 + 0.4*vmath.Sin(time*speed)
			ccy := 0.5 + 0.4*vmath.Cos(time*speed+math.Pi*0.3)

			cdx := xPos - ccx
			cdy := yPos - ccy
			dist := math.Sqrt(cdx*cdx + cdy*cdy)

			freq := (2.5 + fi) * baseFreq
			component := vmath.Sin(dist*freq + time*(0.4+fi*0.1))

			switch p.BlendMode {
			case PlasmaMultiply:
				product *= (component + 1.0) * 0.5
			case PlasmaMax:
				if component > maxComponent {
					maxComponent = component
				}
			default:
				weight := 1.0 / (fi + 1.0)
				sum += component * weight
				divisor += weight
			}
		}
		switch p.BlendMode {
		case PlasmaMultiply:
			sum += product*2.0 - 1.0
			divisor += 1.0
		case PlasmaMax:
			sum += maxComponent
			divisor += 1.0
		}
	}

	normalized := (sum / divisor) * 1.1
	return (vmath.Sin(normalized*math.Pi*0.8) + 1.0) * 0.5
}
