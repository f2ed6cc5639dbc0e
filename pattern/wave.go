package pattern

import (
	"fmt"
	"math"

	"github.com/softglow/glowcat/vmath"
)

// WaveParams configures the layered sine wave pattern
type WaveParams struct {
	Amplitude  float64
	Frequency  float64
	Phase      float64
	PhaseDrift float64
	Offset     float64
	BaseFreq   float64
}

func (WaveParams) id() string { return "wave" }

func (p WaveParams) String() string {
	return fmt.Sprintf("amplitude=%s,frequency=%s,phase=%s,phase_drift=%s,offset=%s,base_freq=%s",
		fnum(p.Amplitude), fnum(p.Frequency), fnum(p.Phase), fnum(p.PhaseDrift), fnum(p.Offset), fnum(p.BaseFreq))
}

func init() {
	register(patternDef{
		id:   "wave",
		name: "Wave",
		desc: "Flowing sine waves with drift and distance modulation",
		fields: []Field{
			{Name: "amplitude", Type: NumberField, Min: 0.1, Max: 2, Default: "1", Desc: "Wave height"},
			{Name: "frequency", Type: NumberField, Min: 0.1, Max: 5, Default: "1", Desc: "Number of waves across the screen"},
			{Name: "phase", Type: NumberField, Min: 0, Max: 2 * math.Pi, Default: "0", Desc: "Initial phase offset"},
			{Name: "phase_drift", Type: NumberField, Min: 0, Max: 2, Default: "0", Desc: "Phase drift rate over time"},
			{Name: "offset", Type: NumberField, Min: 0, Max: 1, Default: "0.5", Desc: "Vertical base level"},
			{Name: "base_freq", Type: NumberField, Min: 0.1, Max: 10, Default: "1", Desc: "Animation speed multiplier"},
		},
		defaults: func() Params {
			return WaveParams{Amplitude: 1, Frequency: 1, Offset: 0.5, BaseFreq: 1}
		},
		decode: func(raw map[string]string) Params {
			return WaveParams{
				Amplitude:  num(raw, "amplitude", 1),
				Frequency:  num(raw, "frequency", 1),
				Phase:      num(raw, "phase", 0),
				PhaseDrift: num(raw, "phase_drift", 0),
				Offset:     num(raw, "offset", 0.5),
				BaseFreq:   num(raw, "base_freq", 1),
			}
		},
	})
}

func (g *Generator) wave(x, y float64, p WaveParams) float64 {
	timeBase := g.time * p.BaseFreq * math.Pi
	timeSlow := timeBase * 0.7

	driftedPhase := p.Phase + g.time*p.PhaseDrift*2.0*math.Pi

	timeSin := vmath.Sin(timeSlow)
	timeSinHalf := vmath.Sin(timeSlow * 0.5)

	xPos := x + 0.5
	yPos := y + 0.5

	freqMod := 1.0 + timeSinHalf*0.2
	waveFreq := p.Frequency * freqMod

	waveAngle := xPos*waveFreq*math.Pi*2.0 + driftedPhase + timeBase
	primaryWave := vmath.Sin(waveAngle) * p.Amplitude

	secAngle := yPos*waveFreq*math.Pi + timeSlow*0.7 + xPos*math.Pi*0.5
	secondaryWave := vmath.Sin(secAngle) * p.Amplitude * 0.3

	// Travel and distance phases advance on hundredth-step harmonics so
	// both close at the cycle wrap.
	travelPhase := (xPos+yPos)*math.Pi*2.0 + timeBase*1.32
	travelWave := vmath.Sin(travelPhase) * 0.15

	distSq := x*x + y*y
	distFactor := math.Exp(-distSq * 2.0)
	distAngle := math.Sqrt(distSq)*4.0*math.Pi + timeBase*2.2
	distMod := vmath.Sin(distAngle) * 0.12 * distFactor

	pulse := timeSin * 0.08 * math.Max(1.0-distSq, 0.0)

	combined := primaryWave + secondaryWave + travelWave + distMod + pulse
	return vmath.Clamp(p.Offset+combined, 0, 1)
}
