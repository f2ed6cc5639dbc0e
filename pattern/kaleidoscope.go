package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// KaleidoscopeParams configures the mirrored segment pattern
type KaleidoscopeParams struct {
	Segments      int
	RotationSpeed float64
	Zoom          float64
	Complexity    float64
	ColorFlow     float64
	Distortion    float64
}

func (KaleidoscopeParams) id() string { return "kaleidoscope" }

func (p KaleidoscopeParams) String() string {
	return fmt.Sprintf("segments=%d,rotation_speed=%s,zoom=%s,complexity=%s,color_flow=%s,distortion=%s",
		p.Segments, fnum(p.RotationSpeed), fnum(p.Zoom), fnum(p.Complexity), fnum(p.ColorFlow), fnum(p.Distortion))
}

func init() {
	register(patternDef{
		id:   "kaleidoscope",
		name: "Kaleidoscope",
		desc: "Symmetrical mirrored segments with layered geometry",
		fields: []Field{
			{Name: "segments", Type: NumberField, Min: 3, Max: 12, Default: "6", Desc: "Number of mirror segments"},
			{Name: "rotation_speed", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Rotation animation speed"},
			{Name: "zoom", Type: NumberField, Min: 0.5, Max: 3, Default: "1", Desc: "Zoom level"},
			{Name: "complexity", Type: NumberField, Min: 1, Max: 5, Default: "2", Desc: "Number of layered components"},
			{Name: "color_flow", Type: NumberField, Min: 0, Max: 2, Default: "1", Desc: "Color flow animation amount"},
			{Name: "distortion", Type: NumberField, Min: 0, Max: 1, Default: "0.3", Desc: "Noise distortion amount"},
		},
		defaults: func() Params {
			return KaleidoscopeParams{Segments: 6, RotationSpeed: 1, Zoom: 1, Complexity: 2, ColorFlow: 1, Distortion: 0.3}
		},
		decode: func(raw map[string]string) Params {
			return KaleidoscopeParams{
				Segments:      integer(raw, "segments", 6),
				RotationSpeed: num(raw, "rotation_speed", 1),
				Zoom:          num(raw, "zoom", 1),
				Complexity:    num(raw, "complexity", 2),
				ColorFlow:     num(raw, "color_flow", 1),
				Distortion:    num(raw, "distortion", 0.3),
			}
		},
	})
}

func (g *Generator) kaleidoscope(x, y float64, p KaleidoscopeParams) float64 {
	var yPos float64
	if g.time == 0 {
		yPos = vmath.RemEuclid(y+0.5, 0.3)*3.0 - 0.5
	} else {
		yPos = y
	}

	baseTime := g.time * p.RotationSpeed * 0.5
	flowTime := g.time * p.ColorFlow * 0.3

	// All animated phases ride on basePhase so every term closes at the
	// cycle wrap.
	basePhase := baseTime * math.Pi * 0.5

	timeSin := vmath.Sin(baseTime * math.Pi)
	timeCos := vmath.Cos(baseTime * math.Pi)
	flowSin := vmath.Sin(flowTime * math.Pi)
	flowCos := vmath.Cos(flowTime * math.Pi)

	// Aspect is applied to y here so the mirror segments stay round
	xk := x * p.Zoom
	yk := yPos * p.Zoom * g.aspectRatio

	angle := math.Atan2(yk, xk)
	distance := math.Sqrt(xk*xk + yk*yk)

	segmentAngle := 2.0 * math.Pi / float64(p.Segments)
	mirroredAngle := vmath.RemEuclid(angle, segmentAngle)
	if mirroredAngle > segmentAngle*0.5 {
		mirroredAngle = segmentAngle - mirroredAngle
	}

	totalAngle := mirroredAngle + baseTime*math.Pi*0.3 + timeSin*0.2

	value := 0.0
	complexity := math.Min(p.Complexity, 5.0)

	spiralBase := totalAngle + distance*2.0 + basePhase
	for i := 0; i < int(complexity); i++ {
		fi := float64(i)
		freq := 1.0 + fi*0.7
		phase := basePhase * (0.8 + fi*0.3)
		value += vmath.Sin(spiralBase*freq+phase) * (0.4 / (fi + 1.0))
	}

	ringPhase := distance*6.0*complexity - basePhase
	value += vmath.Sin(ringPhase) * 0.4

	geoScale := complexity * 2.0
	geoTime := basePhase * 0.5
	hx := xk*geoScale*1.732 + geoTime
	hy := yk*geoScale*2.31 + geoTime
	hz := (xk-yk*0.577)*geoScale + geoTime
	value += vmath.Sin(hx) * vmath.Sin(hz) * vmath.Sin(hy) * 0.3

	mandalaBase := totalAngle*4.0 + basePhase
	for i := 0; i < 2; i++ {
		fi := float64(i)
		radius := distance*(3.0+fi) + basePhase*(0.5+fi*0.2)
		angular := mandalaBase * (1.0 + fi*0.5)
		value += vmath.Sin(radius) * vmath.Cos(angular) * 0.25
	}

	if p.Distortion > 0.001 {
		// Drift rates are multiples of 0.04 so the noise lattice repeats
		// on whole cycles.
		noiseScale := 3.0 * complexity
		noiseDrift := g.time * p.RotationSpeed
		noise := g.noise.Noise2D(xk*noiseScale+noiseDrift*0.36, yk*noiseScale-noiseDrift*0.24)
		value += noise * p.Distortion * 0.6
	}

	flow := flowSin*0.25*(1.0+distance*2.0) + flowCos*0.15*(1.0+distance*3.0)
	value += flow

	intensity := math.Exp(-distance*0.6) * 1.4
	value *= intensity

	pulse := (timeSin*1.5*0.15 + timeCos*0.8*0.1) * (1.0 - distance)
	value += pulse

	edge := (1.0 - vmath.Fract(distance*float64(p.Segments)*0.5)) * 0.15 * intensity
	value += edge

	value = value*0.6 + 0.5
	value = math.Pow(value, 0.9)

	value = vmath.Clamp(value, 0.05, 0.95)
	return (value - 0.05) / 0.9
}
