package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// RainParams configures the digital rain effect
type RainParams struct {
	Speed      float64
	Density    float64
	Length     float64
	Glitch     bool
	GlitchFreq float64
	SpeedVar   float64
}

func (RainParams) id() string { return "rain" }

func (p RainParams) String() string {
	return fmt.Sprintf("speed=%s,density=%s,length=%s,glitch=%t,glitch_freq=%s,speed_var=%s",
		fnum(p.Speed), fnum(p.Density), fnum(p.Length), p.Glitch, fnum(p.GlitchFreq), fnum(p.SpeedVar))
}

func init() {
	register(patternDef{
		id:   "rain",
		name: "Rain",
		desc: "Matrix-style digital rain effect",
		fields: []Field{
			{Name: "speed", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Speed of falling streams"},
			{Name: "density", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "Density of stream columns"},
			{Name: "length", Type: NumberField, Min: 1, Max: 10, Default: "3", Desc: "Length of stream trails"},
			{Name: "glitch", Type: BoolField, Default: "true", Desc: "Enable glitch effects"},
			{Name: "glitch_freq", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Frequency of glitch effects"},
			{Name: "speed_var", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "Speed variation between streams"},
		},
		defaults: func() Params {
			return RainParams{Speed: 1, Density: 1, Length: 3, Glitch: true, GlitchFreq: 1, SpeedVar: 0.5}
		},
		decode: func(raw map[string]string) Params {
			return RainParams{
				Speed:      num(raw, "speed", 1),
				Density:    num(raw, "density", 1),
				Length:     num(raw, "length", 3),
				Glitch:     boolean(raw, "glitch", true),
				GlitchFreq: num(raw, "glitch_freq", 1),
				SpeedVar:   num(raw, "speed_var", 0.5),
			}
		},
	})
}

func (g *Generator) rain(x, y float64, p RainParams) float64 {
	baseTime := g.time * p.Speed

	xPos := x + 0.5
	yPos := y + 0.5

	columnWidth := 0.015 * p.Density
	columnX := math.Floor(xPos/columnWidth) * columnWidth
	columnIndex := int(columnX / columnWidth)
	dx := math.Abs(xPos-columnX-columnWidth/2.0) / columnWidth

	if dx >= 0.5 {
		return 0.0
	}

	columnHash := float64(g.noise.Hash(columnIndex, 0)) / 255.0
	secondaryHash := float64(g.noise.Hash(columnIndex*31, 0)) / 255.0
	tertiaryHash := float64(g.noise.Hash(columnIndex*73, 0)) / 255.0

	// Quantized speed groups keep neighboring columns visually distinct.
	// Speeds snap to 1/80 steps so every stream clock lands on a whole
	// number of laps at the cycle wrap.
	speedGroup := math.Floor(columnHash*4.0) / 4.0
	speedFactor := 0.05 + (speedGroup*0.7+secondaryHash*0.3+tertiaryHash*0.2)*0.8*p.SpeedVar
	speedFactor = math.Round(speedFactor*80.0) / 80.0

	streamTime := baseTime*speedFactor + columnHash*2000.0 + secondaryHash*1000.0
	yStream := vmath.Fract(streamTime)

	const charSpacing = 0.1
	trailLength := p.Length * math.Max(1.2-speedFactor, 0.3)
	numChars := int(trailLength * 2.0)

	value := 0.0
	for i := 0; i < numChars; i++ {
		charY := yStream + float64(i)*charSpacing
		wrappedY := vmath.Fract(charY)

		if math.Abs(yPos-wrappedY) < 0.1 {
			brightness := 1.0
			if i > 0 {
				fade := math.Pow(1.0-float64(i)/float64(numChars), 1.2+speedFactor)
				brightness = fade * (0.7 + secondaryHash*0.3)
			}

			pulse := vmath.Sin(baseTime*math.Pi*0.64+columnHash*math.Pi*2.0+float64(i)*0.5)*0.15 + 0.85
			value = math.Max(value, brightness*pulse*(1.0-dx*2.0))
		}
	}

	if p.Glitch && value > 0.1 {
		// 18.75 ticks per second puts a whole multiple of every glitch
		// modulus (3 through 6) into one animation cycle.
		glitchTime := baseTime * p.GlitchFreq
		if int(math.Floor(glitchTime*18.75))%(3+int(g.noise.Hash(columnIndex, 0))%4) == 0 && secondaryHash > 0.7 {
			value += vmath.Sin(glitchTime*math.Pi*0.32+columnHash*math.Pi*4.0) * 0.3 * value
		}

		if columnHash > 0.95 && secondaryHash > 0.98 && int(math.Floor(baseTime*5.0))&1 == 0 {
			value = math.Max(value, 0.95)
		}
	}

	return vmath.Clamp(value, 0, 1)
}
