// Package theme provides named color gradients and the transforms that
// map pattern field values onto them.
package theme

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/softglow/glowcat/vmath"
)

// ErrUnknownTheme is returned for names not present in the registry
var ErrUnknownTheme = errors.New("unknown theme")

// Stop is one color anchor in a gradient, components in [0, 1]
type Stop struct {
	R   float64 `yaml:"r"`
	G   float64 `yaml:"g"`
	B   float64 `yaml:"b"`
	Pos float64 `yaml:"position"`
}

// Distribution reshapes the input value before gradient lookup
type Distribution int

const (
	DistEven Distribution = iota
	DistFront
	DistBack
	DistCenter
	DistAlt
)

// RepeatMode controls how values outside [0, 1] wrap
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatMirror
	RepeatTile
	RepeatRotate
	RepeatPulse
)

// Repeat pairs a wrap mode with an animation rate. Rate only matters for
// the rotate and pulse modes.
type Repeat struct {
	Mode RepeatMode
	Rate float64
}

// Easing smooths the value after distribution and repeat
type Easing int

const (
	EaseLinear Easing = iota
	EaseSmooth
	EaseSmoother
	EaseSine
	EaseExp
	EaseElastic
)

// Definition is a complete named theme
type Definition struct {
	Name     string
	Desc     string
	Category string
	Colors   []Stop
	Dist     Distribution
	Repeat   Repeat
	Speed    float64
	Ease     Easing
}

// Validate checks stop count, color components, and position ordering
func (d Definition) Validate() error {
	if len(d.Colors) < 2 {
		return fmt.Errorf("theme %q: needs at least 2 color stops", d.Name)
	}
	prev := -1.0
	for i, c := range d.Colors {
		if c.R < 0 || c.R > 1 || c.G < 0 || c.G > 1 || c.B < 0 || c.B > 1 {
			return fmt.Errorf("theme %q: stop %d has components outside [0, 1]", d.Name, i)
		}
		if c.Pos < 0 || c.Pos > 1 {
			return fmt.Errorf("theme %q: stop %d position %v outside [0, 1]", d.Name, i, c.Pos)
		}
		if c.Pos < prev {
			return fmt.Errorf("theme %q: stop positions must be sorted", d.Name)
		}
		prev = c.Pos
	}
	return nil
}

// ApplyDistribution reshapes t per the theme's distribution curve
func (d Definition) ApplyDistribution(t float64) float64 {
	t = vmath.Clamp(t, 0, 1)
	switch d.Dist {
	case DistFront:
		return t * t
	case DistBack:
		return 1.0 - (1.0-t)*(1.0-t)
	case DistCenter:
		if t < 0.5 {
			return 2.0 * t * t
		}
		f := -2.0*t + 2.0
		return 1.0 - f*f/2.0
	case DistAlt:
		return math.Sin(t*math.Pi)*0.5 + 0.5
	default:
		return t
	}
}

// ApplyRepeat wraps t per the theme's repeat mode. Animated modes take
// the current animation clock.
func (d Definition) ApplyRepeat(t, time float64) float64 {
	switch d.Repeat.Mode {
	case RepeatMirror:
		t = math.Mod(t, 2.0)
		if t < 0 {
			t += 2.0
		}
		if t > 1.0 {
			return 2.0 - t
		}
		return t
	case RepeatTile:
		return vmath.Fract(t)
	case RepeatRotate:
		return vmath.Fract(t + time*d.Repeat.Rate)
	case RepeatPulse:
		phase := math.Sin(time * d.Repeat.Rate * math.Pi)
		return (t + phase) * 0.5
	default:
		return vmath.Clamp(t, 0, 1)
	}
}

// ApplyEasing smooths t per the theme's easing curve
func (d Definition) ApplyEasing(t float64) float64 {
	switch d.Ease {
	case EaseSmooth:
		return t * t * (3.0 - 2.0*t)
	case EaseSmoother:
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	case EaseSine:
		return math.Sin(t*math.Pi-math.Pi/2.0)*0.5 + 0.5
	case EaseExp:
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		return math.Pow(2.0, 10.0*t-10.0)
	case EaseElastic:
		if t == 0 {
			return 0
		}
		if t == 1 {
			return 1
		}
		t -= 1.0
		return -(math.Pow(2.0, 10.0*t) * math.Sin(t*math.Pi*4.5))
	default:
		return t
	}
}

// MapValue runs the full value pipeline for gradient lookup
func (d Definition) MapValue(t, time float64) float64 {
	return d.ApplyEasing(d.ApplyRepeat(d.ApplyDistribution(t), time))
}

// Registry holds named theme definitions. Each registry starts from
// the builtin set; custom themes loaded from files stay local to the
// registry they were loaded into.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry returns a registry seeded with every builtin theme
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]Definition, len(builtins))}
	for _, d := range builtins {
		r.defs[d.Name] = d
	}
	return r
}

// Lookup returns the definition for a theme name
func (r *Registry) Lookup(name string) (Definition, error) {
	d, ok := r.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return d, nil
}

// Names returns all registered theme names in sorted order
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.defs))
	for name := range r.defs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Categories returns all theme categories in sorted order
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	for _, d := range r.defs {
		seen[d.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ByCategory returns sorted theme names in a category
func (r *Registry) ByCategory(category string) []string {
	var out []string
	for name, d := range r.defs {
		if d.Category == category {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// add normalizes and stores definitions, overriding existing names
func (r *Registry) add(category string, defs ...Definition) {
	for _, d := range defs {
		d.Category = category
		if d.Speed == 0 {
			d.Speed = 1.0
		}
		r.defs[d.Name] = d
	}
}

// builtins collects the definitions every new registry starts with
var builtins []Definition

func registerBuiltin(category string, defs ...Definition) {
	for _, d := range defs {
		d.Category = category
		if d.Speed == 0 {
			d.Speed = 1.0
		}
		builtins = append(builtins, d)
	}
}
