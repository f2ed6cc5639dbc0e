package blend

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
	"github.com/softglow/glowcat/vmath"
)

// DefaultTransitionSpeed finishes a transition in five seconds
const DefaultTransitionSpeed = 0.2

// Engine holds the active scene plus an optional in-flight transition
// toward a new pattern, theme, or both. Colors blend in linear RGB so
// mid-transition frames stay perceptually even.
type Engine struct {
	patterns *pattern.Registry
	themes   *theme.Registry

	source     *pattern.Engine
	sourceGrad *theme.Gradient
	target     *pattern.Engine
	targetGrad *theme.Gradient

	blendFactor   float64
	transitioning bool
	speed         float64
	effect        Effect
}

// NewEngine builds a blend engine showing the given scene
func NewEngine(patterns *pattern.Registry, themes *theme.Registry, cfg pattern.Config, grad *theme.Gradient, width, height int) *Engine {
	return &Engine{
		patterns:   patterns,
		themes:     themes,
		source:     pattern.NewEngine(cfg, width, height),
		sourceGrad: grad,
		speed:      DefaultTransitionSpeed,
		effect:     Crossfade,
	}
}

// Current returns the engine rendering the active scene
func (e *Engine) Current() *pattern.Engine {
	return e.source
}

// CurrentGradient returns the active scene's gradient
func (e *Engine) CurrentGradient() *theme.Gradient {
	return e.sourceGrad
}

// Transitioning reports whether a transition is in flight
func (e *Engine) Transitioning() bool {
	return e.transitioning
}

// BlendFactor returns the overall transition progress in [0, 1]
func (e *Engine) BlendFactor() float64 {
	return e.blendFactor
}

// SetTransitionSpeed sets blend progress per second, clamped to sane
// bounds (0.1 slow, 2.0 fast).
func (e *Engine) SetTransitionSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 2.0 {
		speed = 2.0
	}
	e.speed = speed
}

// TransitionSpeed returns blend progress per second
func (e *Engine) TransitionSpeed() float64 {
	return e.speed
}

// SetEffect selects the wipe shape for subsequent transitions
func (e *Engine) SetEffect(effect Effect) {
	e.effect = effect
}

// Effect returns the configured wipe shape
func (e *Engine) Effect() Effect {
	return e.effect
}

// restart promotes a mostly-finished transition before starting the
// next one, so rapid scene changes never snap back to a stale source.
func (e *Engine) restart() {
	if e.transitioning && e.blendFactor >= 0.5 {
		e.promote()
	}
	e.blendFactor = 0
	e.transitioning = true
}

func (e *Engine) promote() {
	if e.target != nil {
		e.source = e.target
		e.target = nil
	}
	if e.targetGrad != nil {
		e.sourceGrad = e.targetGrad
		e.targetGrad = nil
	}
	e.transitioning = false
}

// StartPatternTransition begins a transition to a new pattern with its
// default parameters, keeping the current gradient and common settings.
func (e *Engine) StartPatternTransition(id string) error {
	return e.StartSceneTransition(id, "", e.sourceGrad.Name(), e.effect)
}

// StartThemeTransition begins a transition to a new gradient, keeping
// the current pattern.
func (e *Engine) StartThemeTransition(name string) error {
	def, err := e.themes.Lookup(name)
	if err != nil {
		return err
	}
	grad, err := theme.NewGradient(def)
	if err != nil {
		return err
	}

	// An in-flight pattern target, if any, keeps going; only the
	// gradient destination changes.
	e.restart()
	e.targetGrad = grad
	return nil
}

// StartSceneTransition begins a transition to a new pattern, parameter
// set, and theme using the given wipe effect. The engine state is
// untouched on error.
func (e *Engine) StartSceneTransition(id, params, themeName string, effect Effect) error {
	p, err := e.patterns.Parse(id, params)
	if err != nil {
		return fmt.Errorf("scene transition: %w", err)
	}
	def, err := e.themes.Lookup(themeName)
	if err != nil {
		return fmt.Errorf("scene transition: %w", err)
	}
	grad, err := theme.NewGradient(def)
	if err != nil {
		return fmt.Errorf("scene transition: %w", err)
	}

	cfg := e.source.Config()
	cfg.Params = p

	w, h := e.source.Size()
	target := pattern.NewEngine(cfg, w, h)
	target.SetTime(e.source.Time())

	e.restart()
	e.effect = effect
	e.target = target
	e.targetGrad = grad
	return nil
}

// Update advances both scene clocks and the transition progress
func (e *Engine) Update(dt float64) {
	e.source.Update(dt)
	if e.target != nil {
		e.target.Update(dt)
	}

	if !e.transitioning {
		return
	}

	e.blendFactor += e.speed * dt
	if e.blendFactor >= 1.0 {
		e.blendFactor = 1.0
		e.promote()
	}
}

// Resize rebuilds both engines for a new grid size
func (e *Engine) Resize(width, height int) {
	e.source.Recreate(width, height)
	if e.target != nil {
		e.target.Recreate(width, height)
	}
}

// ColorAt returns the final cell color, mixing source and target scenes
// by the spatial wipe weight while a transition is in flight.
func (e *Engine) ColorAt(x, y int) colorful.Color {
	srcVal := e.source.ValueAt(x, y)
	srcColor := e.sourceGrad.Mapped(srcVal, e.source.Time())

	if !e.transitioning {
		return srcColor
	}

	tgtEngine := e.source
	if e.target != nil {
		tgtEngine = e.target
	}
	tgtGrad := e.sourceGrad
	if e.targetGrad != nil {
		tgtGrad = e.targetGrad
	}

	tgtVal := tgtEngine.ValueAt(x, y)
	tgtColor := tgtGrad.Mapped(tgtVal, tgtEngine.Time())

	w, h := e.source.Size()
	weight := e.effect.Apply(
		float64(x)/float64(w),
		float64(y)/float64(h),
		e.source.Time(),
		e.blendFactor,
	)
	return mixLinear(srcColor, tgtColor, weight)
}

// ValueAt returns the scalar field value at normalized coordinates,
// eased between source and target while a pattern transition is in
// flight. Idle engines and theme-only transitions pass the source
// value through.
func (e *Engine) ValueAt(x, y float64) float64 {
	srcVal := e.source.ValueAtNormalized(x, y)
	if !e.transitioning || e.target == nil {
		return srcVal
	}
	tgtVal := e.target.ValueAtNormalized(x, y)
	return vmath.Lerp(srcVal, tgtVal, vmath.EaseInOutCubic(e.blendFactor))
}

// mixLinear interpolates two colors in linear RGB. Endpoint weights
// return the inputs untouched so finished transitions are exact.
func mixLinear(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	ar, ag, ab := a.LinearRgb()
	br, bg, bb := b.LinearRgb()
	return colorful.LinearRgb(
		ar+(br-ar)*t,
		ag+(bg-ag)*t,
		ab+(bb-ab)*t,
	)
}
