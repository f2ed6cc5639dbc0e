package pattern

import (
	"fmt"
)

// PerlinParams configures multi-octave noise
type PerlinParams struct {
	Octaves     int
	Persistence float64
	Scale       float64
	Seed        uint32
}

func (PerlinParams) id() string { return "perlin" }

func (p PerlinParams) String() string {
	return fmt.Sprintf("octaves=%d,persistence=%s,scale=%s,seed=%d",
		p.Octaves, fnum(p.Persistence), fnum(p.Scale), p.Seed)
}

func init() {
	register(patternDef{
		id:   "perlin",
		name: "Perlin",
		desc: "Smooth organic noise with multiple octaves",
		fields: []Field{
			{Name: "octaves", Type: NumberField, Min: 1, Max: 8, Default: "4", Desc: "Number of noise octaves"},
			{Name: "persistence", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "Amplitude falloff per octave"},
			{Name: "scale", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Base noise frequency"},
			{Name: "seed", Type: NumberField, Min: 0, Max: 4294967295, Default: "0", Desc: "Noise table seed"},
		},
		defaults: func() Params {
			return PerlinParams{Octaves: 4, Persistence: 0.5, Scale: 1}
		},
		decode: func(raw map[string]string) Params {
			return PerlinParams{
				Octaves:     integer(raw, "octaves", 4),
				Persistence: num(raw, "persistence", 0.5),
				Scale:       num(raw, "scale", 1),
				Seed:        uint32(num(raw, "seed", 0)),
			}
		},
	})
}

func (g *Generator) perlin(x, y float64, p PerlinParams) float64 {
	total := 0.0
	frequency := p.Scale
	amplitude := 1.0
	maxValue := 0.0

	xBase := x + 0.5
	yBase := y + 0.5
	time := g.time

	for i := 0; i < p.Octaves; i++ {
		total += g.noise.Noise2D(xBase*frequency+time, yBase*frequency+time) * amplitude
		maxValue += amplitude
		amplitude *= p.Persistence
		frequency *= 2.0
	}

	return (total/maxValue + 1.0) * 0.5
}
