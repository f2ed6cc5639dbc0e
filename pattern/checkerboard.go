package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// CheckerboardParams configures the rotating checkerboard pattern
type CheckerboardParams struct {
	Size     int
	Blur     float64
	Rotation float64
	Scale    float64
}

func (CheckerboardParams) id() string { return "checkerboard" }

func (p CheckerboardParams) String() string {
	return fmt.Sprintf("size=%d,blur=%s,rotation=%s,scale=%s",
		p.Size, fnum(p.Blur), fnum(p.Rotation), fnum(p.Scale))
}

func init() {
	register(patternDef{
		id:   "checkerboard",
		name: "Checkerboard",
		desc: "Checkerboard pattern with rotation and blur",
		fields: []Field{
			{Name: "size", Type: NumberField, Min: 1, Max: 10, Default: "2", Desc: "Number of squares per unit"},
			{Name: "blur", Type: NumberField, Min: 0, Max: 1, Default: "0.1", Desc: "Edge softness"},
			{Name: "rotation", Type: NumberField, Min: 0, Max: 360, Default: "0", Desc: "Base rotation in degrees"},
			{Name: "scale", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Coordinate scale"},
		},
		defaults: func() Params {
			return CheckerboardParams{Size: 2, Blur: 0.1, Scale: 1}
		},
		decode: func(raw map[string]string) Params {
			return CheckerboardParams{
				Size:     integer(raw, "size", 2),
				Blur:     num(raw, "blur", 0.1),
				Rotation: num(raw, "rotation", 0),
				Scale:    num(raw, "scale", 1),
			}
		},
	})
}

func (g *Generator) checkerboard(x, y float64, p CheckerboardParams) float64 {
	xScaled := x * p.Scale
	yScaled := y * p.Scale

	totalRotation := (p.Rotation + g.time*45.0) * (math.Pi / 180.0)
	sinRot := vmath.Sin(totalRotation)
	cosRot := vmath.Cos(totalRotation)

	xRot := xScaled*cosRot - yScaled*sinRot
	yRot := xScaled*sinRot + yScaled*cosRot

	scaleFactor := vmath.Sin(g.time*math.Pi)*0.2 + 1.0
	sizeScaled := float64(p.Size) * scaleFactor

	xChecker := int(math.Floor(xRot * sizeScaled))
	yChecker := int(math.Floor(yRot * sizeScaled))
	isWhite := (xChecker+yChecker)&1 == 0

	if p.Blur <= 0 {
		if isWhite {
			return 1.0
		}
		return 0.0
	}

	xFract := vmath.Fract(xRot * sizeScaled)
	yFract := vmath.Fract(yRot * sizeScaled)

	blurAmount := p.Blur * (vmath.Sin(g.time*math.Pi*2.0)*0.2 + 0.8)
	blurRange := blurAmount * 0.5

	xSmooth := 0.0
	if math.Abs(xFract-0.5) <= blurRange {
		xSmooth = 1.0
	}
	ySmooth := 0.0
	if math.Abs(yFract-0.5) <= blurRange {
		ySmooth = 1.0
	}

	if isWhite {
		return (1.0-xSmooth)*(1.0-ySmooth) + xSmooth*ySmooth
	}
	return xSmooth*(1.0-ySmooth) + (1.0-xSmooth)*ySmooth
}
