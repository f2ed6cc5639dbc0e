package pattern

import (
	"math"

	"github.com/softglow/glowcat/vmath"
)

// CycleLength is the period after which the animation clock wraps. It is
// a whole multiple of the noise lattice period and of the hundredth-step
// trig harmonics used by the generators, so wrapping closes every loop
// without a visible seam.
const CycleLength = 6400.0

// Engine animates one pattern configuration over a cell grid and clamps
// field values to [0, 1].
type Engine struct {
	cfg    Config
	gen    *Generator
	width  int
	height int
	time   float64
}

// NewEngine builds an engine for the given configuration and grid size
func NewEngine(cfg Config, width, height int) *Engine {
	e := &Engine{cfg: cfg, gen: NewGenerator(width, height), width: width, height: height}
	e.gen.SetAspect(cfg.Common.CorrectAspect, cfg.Common.AspectRatio)
	return e
}

// Config returns the engine's current configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig swaps the pattern configuration, keeping the animation clock
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
	e.gen.SetAspect(cfg.Common.CorrectAspect, cfg.Common.AspectRatio)
}

// Size returns the engine's grid dimensions
func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

// Time returns the current animation clock
func (e *Engine) Time() float64 {
	return e.time
}

// SetTime positions the animation clock, wrapped into the cycle
func (e *Engine) SetTime(t float64) {
	e.time = vmath.RemEuclid(t, CycleLength)
	e.gen.SetTime(e.time)
}

// Update advances the animation clock by dt seconds scaled by the
// configured speed.
func (e *Engine) Update(dt float64) {
	e.SetTime(e.time + dt*e.cfg.Common.Speed)
}

// Recreate rebuilds the generator for a new grid size, preserving the
// configuration and animation clock.
func (e *Engine) Recreate(width, height int) {
	e.width = width
	e.height = height
	e.gen = NewGenerator(width, height)
	e.gen.SetAspect(e.cfg.Common.CorrectAspect, e.cfg.Common.AspectRatio)
	e.gen.SetTime(e.time)
}

// ValueAt returns the pattern field value for a cell, clamped to [0, 1].
// Degenerate grids and non-finite generator output yield 0.
func (e *Engine) ValueAt(x, y int) float64 {
	if e.width < 2 || e.height < 2 {
		return 0
	}
	v := e.gen.Eval(x, y, e.cfg.Params)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return vmath.Clamp(v, 0, 1)
}

// ValueAtNormalized samples the field at centered unit coordinates
func (e *Engine) ValueAtNormalized(x, y float64) float64 {
	px := int((x + 0.5) * float64(e.width))
	py := int((y + 0.5) * float64(e.height))
	return e.ValueAt(px, py)
}
