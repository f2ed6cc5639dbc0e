package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/softglow/glowcat/vmath"
)

// Gradient is an immutable color ramp built from a theme definition.
// At interpolates between stops in sRGB space.
type Gradient struct {
	def   Definition
	stops []Stop
}

// NewGradient validates a definition and builds its gradient
func NewGradient(def Definition) (*Gradient, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	stops := make([]Stop, len(def.Colors))
	copy(stops, def.Colors)
	return &Gradient{def: def, stops: stops}, nil
}

// MustGradient builds a gradient from a definition known to be valid
func MustGradient(def Definition) *Gradient {
	g, err := NewGradient(def)
	if err != nil {
		panic(err)
	}
	return g
}

// Definition returns the theme this gradient was built from
func (g *Gradient) Definition() Definition {
	return g.def
}

// Name returns the theme name
func (g *Gradient) Name() string {
	return g.def.Name
}

// At returns the gradient color for t in [0, 1]. Values outside the
// range clamp to the end stops.
func (g *Gradient) At(t float64) colorful.Color {
	t = vmath.Clamp(t, 0, 1)

	first := g.stops[0]
	if t <= first.Pos {
		return colorful.Color{R: first.R, G: first.G, B: first.B}
	}
	for i := 1; i < len(g.stops); i++ {
		s := g.stops[i]
		if t <= s.Pos {
			prev := g.stops[i-1]
			span := s.Pos - prev.Pos
			frac := 0.0
			if span > 0 {
				frac = (t - prev.Pos) / span
			}
			a := colorful.Color{R: prev.R, G: prev.G, B: prev.B}
			b := colorful.Color{R: s.R, G: s.G, B: s.B}
			return a.BlendRgb(b, frac)
		}
	}
	last := g.stops[len(g.stops)-1]
	return colorful.Color{R: last.R, G: last.G, B: last.B}
}

// Mapped samples the gradient after running the theme's value pipeline
func (g *Gradient) Mapped(t, time float64) colorful.Color {
	return g.At(g.def.MapValue(t, time))
}
