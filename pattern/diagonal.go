package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// DiagonalParams configures the angled scrolling gradient
type DiagonalParams struct {
	Angle     int
	Frequency float64
}

func (DiagonalParams) id() string { return "diagonal" }

func (p DiagonalParams) String() string {
	return fmt.Sprintf("angle=%d,frequency=%s", p.Angle, fnum(p.Frequency))
}

func init() {
	register(patternDef{
		id:   "diagonal",
		name: "Diagonal",
		desc: "Gradient scrolling at a configurable angle",
		fields: []Field{
			{Name: "angle", Type: NumberField, Min: 0, Max: 360, Default: "45", Desc: "Scroll direction in degrees"},
			{Name: "frequency", Type: NumberField, Min: 0.1, Max: 10, Default: "1", Desc: "Scroll rate multiplier"},
		},
		defaults: func() Params { return DiagonalParams{Angle: 45, Frequency: 1.0} },
		decode: func(raw map[string]string) Params {
			return DiagonalParams{
				Angle:     integer(raw, "angle", 45),
				Frequency: num(raw, "frequency", 1.0),
			}
		},
	})
}

func (g *Generator) diagonal(x, y float64, p DiagonalParams) float64 {
	rad := float64(p.Angle) * math.Pi / 180.0
	pos := (x+0.5)*vmath.Cos(rad) + (y+0.5)*vmath.Sin(rad)
	return vmath.RemEuclid(pos+g.time*p.Frequency, 1.0)
}
