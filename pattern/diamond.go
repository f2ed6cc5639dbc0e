package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// DiamondParams configures the diamond lattice pattern
type DiamondParams struct {
	Size      float64
	Offset    float64
	Sharpness float64
	Rotation  float64
	Speed     float64
	Mode      string
}

func (DiamondParams) id() string { return "diamond" }

func (p DiamondParams) String() string {
	return fmt.Sprintf("size=%s,offset=%s,sharpness=%s,rotation=%s,speed=%s,mode=%s",
		fnum(p.Size), fnum(p.Offset), fnum(p.Sharpness), fnum(p.Rotation), fnum(p.Speed), p.Mode)
}

func init() {
	register(patternDef{
		id:   "diamond",
		name: "Diamond",
		desc: "Diamond-shaped pattern with rotation and sharpness control",
		fields: []Field{
			{Name: "size", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Size of diamond shapes"},
			{Name: "offset", Type: NumberField, Min: 0, Max: 1, Default: "0", Desc: "Pattern offset"},
			{Name: "sharpness", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Edge sharpness"},
			{Name: "rotation", Type: NumberField, Min: 0, Max: 360, Default: "0", Desc: "Pattern rotation in degrees"},
			{Name: "speed", Type: NumberField, Min: 0, Max: 5, Default: "1", Desc: "Animation speed"},
			{Name: "mode", Type: EnumField, Options: []string{"zoom", "scroll", "static"}, Default: "zoom", Desc: "Animation mode"},
		},
		defaults: func() Params {
			return DiamondParams{Size: 1, Sharpness: 1, Speed: 1, Mode: "zoom"}
		},
		decode: func(raw map[string]string) Params {
			return DiamondParams{
				Size:      num(raw, "size", 1),
				Offset:    num(raw, "offset", 0),
				Sharpness: num(raw, "sharpness", 1),
				Rotation:  num(raw, "rotation", 0),
				Speed:     num(raw, "speed", 1),
				Mode:      enum(raw, "mode", "zoom"),
			}
		},
	})
}

func (g *Generator) diamond(x, y float64, p DiamondParams) float64 {
	rotRad := p.Rotation * (math.Pi / 180.0)
	sinRot := vmath.Sin(rotRad)
	cosRot := vmath.Cos(rotRad)

	xRot := x*cosRot - y*sinRot
	yRot := x*sinRot + y*cosRot

	time := g.time * math.Pi * p.Speed

	// Scroll drifts the lattice instead of growing the scale; the rate
	// completes whole laps over one animation cycle.
	animationFactor := 1.0
	scroll := 0.0
	switch p.Mode {
	case "zoom":
		animationFactor = 1.0 + vmath.Sin(time*0.5)*0.5
	case "scroll":
		scroll = g.time * p.Speed * 0.3125
	}

	scale := 2.0 * p.Size * animationFactor
	xScaled := xRot * scale
	yScaled := yRot * scale

	diamondDist := math.Abs(xScaled) + math.Abs(yScaled)
	patternRepeat := vmath.Fract(diamondDist + scroll)

	sharpnessMod := p.Sharpness * (1.0 + vmath.Sin(time*0.7)*0.2)

	// Needs full precision at the diamond edges, so no table lookup here
	patternBase := math.Sin(patternRepeat * sharpnessMod * math.Pi)
	pattern := vmath.Clamp(patternBase+p.Offset, 0, 1)

	distSq := xRot*xRot + yRot*yRot
	pulse := vmath.Sin(time*2.0) * 0.05 * math.Exp(-distSq*3.0)

	return vmath.Clamp(pattern+pulse, 0, 1)
}
