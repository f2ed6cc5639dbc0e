package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// AuroraParams configures the aurora borealis effect
type AuroraParams struct {
	Intensity float64
	Speed     float64
	Waviness  float64
	Layers    int
	Height    float64
	Spread    float64
}

func (AuroraParams) id() string { return "aurora" }

func (p AuroraParams) String() string {
	return fmt.Sprintf("intensity=%s,speed=%s,waviness=%s,layers=%d,height=%s,spread=%s",
		fnum(p.Intensity), fnum(p.Speed), fnum(p.Waviness), p.Layers, fnum(p.Height), fnum(p.Spread))
}

func init() {
	register(patternDef{
		id:   "aurora",
		name: "Aurora",
		desc: "Aurora borealis effect with flowing bands of light",
		fields: []Field{
			{Name: "intensity", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "Intensity of the aurora"},
			{Name: "speed", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Speed of aurora movement"},
			{Name: "waviness", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "Amount of wave distortion"},
			{Name: "layers", Type: NumberField, Min: 1, Max: 5, Default: "3", Desc: "Number of aurora layers"},
			{Name: "height", Type: NumberField, Min: 0.1, Max: 1, Default: "0.5", Desc: "Height of the aurora bands"},
			{Name: "spread", Type: NumberField, Min: 0.1, Max: 1, Default: "0.3", Desc: "Vertical spread of bands"},
		},
		defaults: func() Params {
			return AuroraParams{Intensity: 1, Speed: 1, Waviness: 1, Layers: 3, Height: 0.5, Spread: 0.3}
		},
		decode: func(raw map[string]string) Params {
			return AuroraParams{
				Intensity: num(raw, "intensity", 1),
				Speed:     num(raw, "speed", 1),
				Waviness:  num(raw, "waviness", 1),
				Layers:    integer(raw, "layers", 3),
				Height:    num(raw, "height", 0.5),
				Spread:    num(raw, "spread", 0.3),
			}
		},
	})
}

func (g *Generator) aurora(x, y float64, p AuroraParams) float64 {
	baseTime := g.time * p.Speed

	var yPos float64
	if g.time == 0 {
		yPos = vmath.RemEuclid(y+0.5, 0.3) * 3.0
	} else {
		yPos = y + 0.5
	}

	if yPos > 0.8+p.Height || yPos < 0.1 {
		return 0.0
	}

	xPos := x + 0.5
	time := baseTime

	// Trig phases ride on hundredth-step harmonics and noise drift rates
	// are multiples of 0.04, so every layer closes at the cycle wrap.
	phase := time * math.Pi * 0.32
	phaseSlow := time * math.Pi * 0.1

	baseSinTime := vmath.Sin(phaseSlow)
	baseCosTime := vmath.Cos(phaseSlow)

	totalValue := 0.0
	maxValue := 0.0

	wavinessScale := p.Waviness * 2.0
	intensityScale := p.Intensity * 1.2

	for i := 0; i < p.Layers; i++ {
		fi := float64(i)
		layerOffset := fi / float64(p.Layers)
		layerPhase := layerOffset * math.Pi

		driftX := time * (0.6 + fi*0.08)
		driftY := time * (0.48 + fi*0.08)

		primary := g.noise.Noise2D(
			xPos*2.0*wavinessScale*(1.0+layerOffset*0.5)+driftX,
			yPos*2.0*wavinessScale*(1.0+layerOffset*0.3)+driftY,
		)
		detail := g.noise.Noise2D(
			xPos*4.0*wavinessScale+driftX*2.0,
			yPos*4.0*wavinessScale+driftY*2.0,
		)
		flow := (primary*2.0 - 1.0) + detail*0.5*(1.0+baseSinTime*0.3)

		center := 0.3 + layerOffset*p.Spread
		yWave := yPos + flow*0.3*p.Waviness
		pos := (yWave - center) / p.Height
		band := math.Exp(-pos * pos * 3.0)

		xWave := xPos + flow*0.15*(1.0-layerOffset*0.3)
		waveBase := vmath.Sin(xWave*4.0+phase+layerPhase)*0.5 + 0.5
		waveValue := waveBase * (1.0 + vmath.Sin(phaseSlow*1.5+layerPhase)*0.3)

		curtain := vmath.Sin(xPos*3.0+flow*0.15+phaseSlow+layerPhase)*0.5 + 0.5

		intensity := intensityScale * (1.0 - layerOffset*0.2) * (1.0 + curtain*0.5)

		pulse := vmath.Sin(phaseSlow*(1.5+fi*0.5)+layerPhase)*0.25 + 0.85
		shimmer := g.noise.Noise2D(xPos*10.0+time, yPos*10.0-time*0.48)*0.15 + 0.85
		modulation := pulse * shimmer

		totalValue += band * waveValue * intensity * modulation
		maxValue += intensity
	}

	if maxValue <= 0 {
		return 0.0
	}
	baseResult := (totalValue / maxValue) * p.Intensity
	contrast := 1.2 + baseCosTime*0.1
	return vmath.Clamp(0.5+(baseResult-0.5)*contrast, 0, 1)
}
