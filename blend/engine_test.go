package blend

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
)

func mustDef(t *testing.T, name string) theme.Definition {
	t.Helper()
	def, err := theme.NewRegistry().Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%s) failed: %v", name, err)
	}
	return def
}

func newTestEngine(t *testing.T, id string) *Engine {
	t.Helper()
	reg := pattern.NewRegistry()
	p, err := reg.Default(id)
	if err != nil {
		t.Fatalf("Default(%s) failed: %v", id, err)
	}
	themes := theme.NewRegistry()
	def, err := themes.Lookup("rainbow")
	if err != nil {
		t.Fatalf("Lookup(rainbow) failed: %v", err)
	}
	return NewEngine(reg, themes, pattern.DefaultConfig(p), theme.MustGradient(def), 80, 24)
}

func TestPatternTransitionCompletes(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartPatternTransition("wave"); err != nil {
		t.Fatalf("StartPatternTransition failed: %v", err)
	}
	if !e.Transitioning() {
		t.Fatal("transition must be in flight after start")
	}

	// Default speed finishes in five seconds of updates
	for i := 0; i < 49; i++ {
		e.Update(0.1)
	}
	if !e.Transitioning() {
		t.Fatal("transition ended early")
	}
	e.Update(0.2)
	if e.Transitioning() {
		t.Fatal("transition must complete after five seconds")
	}
	if got := pattern.ID(e.Current().Config().Params); got != "wave" {
		t.Errorf("promoted pattern = %q, want wave", got)
	}
	if e.BlendFactor() != 1.0 {
		t.Errorf("BlendFactor = %v, want 1.0 at completion", e.BlendFactor())
	}
}

func TestThemeTransitionKeepsPattern(t *testing.T) {
	e := newTestEngine(t, "plasma")
	if err := e.StartThemeTransition("ocean"); err != nil {
		t.Fatalf("StartThemeTransition failed: %v", err)
	}
	for i := 0; i < 60; i++ {
		e.Update(0.1)
	}
	if e.Transitioning() {
		t.Fatal("theme transition must complete")
	}
	if got := pattern.ID(e.Current().Config().Params); got != "plasma" {
		t.Errorf("pattern changed during theme transition: %q", got)
	}
	if e.CurrentGradient().Name() != "ocean" {
		t.Errorf("gradient = %q, want ocean", e.CurrentGradient().Name())
	}
}

func TestUnknownPatternLeavesStateUntouched(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartPatternTransition("vortex"); err == nil {
		t.Fatal("unknown pattern must fail")
	}
	if e.Transitioning() {
		t.Error("failed start must not begin a transition")
	}
	if got := pattern.ID(e.Current().Config().Params); got != "horizontal" {
		t.Errorf("pattern changed on failed start: %q", got)
	}
}

func TestUnknownThemeLeavesStateUntouched(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartThemeTransition("nonexistent"); err == nil {
		t.Fatal("unknown theme must fail")
	}
	if e.Transitioning() {
		t.Error("failed start must not begin a transition")
	}
	if e.CurrentGradient().Name() != "rainbow" {
		t.Errorf("gradient changed on failed start: %q", e.CurrentGradient().Name())
	}
}

func TestInvalidParamsRejected(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	err := e.StartSceneTransition("plasma", "complexity=11", "rainbow", Crossfade)
	if err == nil {
		t.Fatal("out-of-range params must fail")
	}
	if e.Transitioning() {
		t.Error("failed start must not begin a transition")
	}
}

func TestRestartMidTransitionPromotesLateTarget(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartPatternTransition("wave"); err != nil {
		t.Fatal(err)
	}
	// Push past the halfway point, then restart toward a third pattern
	for i := 0; i < 30; i++ {
		e.Update(0.1)
	}
	if e.BlendFactor() < 0.5 {
		t.Fatalf("setup: blend factor %v not past halfway", e.BlendFactor())
	}
	if err := e.StartPatternTransition("spiral"); err != nil {
		t.Fatal(err)
	}
	// The mostly-finished wave became the new source
	if got := pattern.ID(e.Current().Config().Params); got != "wave" {
		t.Errorf("source after restart = %q, want wave", got)
	}
	if e.BlendFactor() != 0 {
		t.Errorf("restart must reset blend factor, got %v", e.BlendFactor())
	}
}

func TestRestartEarlyKeepsSource(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartPatternTransition("wave"); err != nil {
		t.Fatal(err)
	}
	e.Update(0.5)
	if err := e.StartPatternTransition("spiral"); err != nil {
		t.Fatal(err)
	}
	if got := pattern.ID(e.Current().Config().Params); got != "horizontal" {
		t.Errorf("source after early restart = %q, want horizontal", got)
	}
}

func TestColorAtIdleMatchesGradient(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	e.Update(0.25)
	v := e.Current().ValueAt(10, 5)
	want := e.CurrentGradient().At(v)
	got := e.ColorAt(10, 5)
	if got != want {
		t.Errorf("idle ColorAt = %v, want gradient sample %v", got, want)
	}
}

func TestColorAtCompletedTransitionIsExactTarget(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartThemeTransition("matrix"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		e.Update(0.1)
	}
	grad := theme.MustGradient(mustDef(t, "matrix"))
	v := e.Current().ValueAt(40, 12)
	want := grad.Mapped(v, e.Current().Time())
	got := e.ColorAt(40, 12)
	// Exact equality: no float round trip may survive a finished blend
	if got != want {
		t.Errorf("completed transition ColorAt = %v, want %v", got, want)
	}
}

func TestValueAtIdlePassesSourceThrough(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	e.Update(0.25)
	want := e.Current().ValueAtNormalized(-0.3, 0.1)
	if got := e.ValueAt(-0.3, 0.1); got != want {
		t.Errorf("idle ValueAt = %v, want source value %v", got, want)
	}
}

func TestValueAtBlendEndpoints(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartPatternTransition("wave"); err != nil {
		t.Fatal(err)
	}

	// Freshly started: blend factor zero, the source value wins exactly
	src := e.source.ValueAtNormalized(0.2, -0.1)
	if got := e.ValueAt(0.2, -0.1); got != src {
		t.Errorf("ValueAt at blend 0 = %v, want source %v", got, src)
	}

	// Just shy of promotion the target value dominates
	e.blendFactor = 0.999
	tgt := e.target.ValueAtNormalized(0.2, -0.1)
	if got := e.ValueAt(0.2, -0.1); math.Abs(got-tgt) > 1e-6 {
		t.Errorf("ValueAt near blend 1 = %v, want target %v", got, tgt)
	}

	// Midway the value sits between the two fields
	e.blendFactor = 0.5
	got := e.ValueAt(0.2, -0.1)
	lo, hi := math.Min(src, tgt), math.Max(src, tgt)
	if got < lo || got > hi {
		t.Errorf("mid-blend ValueAt = %v, want within [%v, %v]", got, lo, hi)
	}
}

func TestValueAtThemeTransitionKeepsField(t *testing.T) {
	e := newTestEngine(t, "plasma")
	if err := e.StartThemeTransition("ocean"); err != nil {
		t.Fatal(err)
	}
	e.Update(1.0)
	want := e.Current().ValueAtNormalized(0.0, 0.0)
	if got := e.ValueAt(0.0, 0.0); got != want {
		t.Errorf("theme-only transition ValueAt = %v, want source %v", got, want)
	}
}

func TestMixLinearEndpointsExact(t *testing.T) {
	a := theme.MustGradient(mustDef(t, "rainbow")).At(0.3)
	b := theme.MustGradient(mustDef(t, "ocean")).At(0.7)
	if mixLinear(a, b, 0) != a {
		t.Error("mixLinear at t=0 must return the first color unchanged")
	}
	if mixLinear(a, b, 1) != b {
		t.Error("mixLinear at t=1 must return the second color unchanged")
	}
	mid := mixLinear(a, b, 0.5)
	if mid.R < 0 || mid.R > 1 || mid.G < 0 || mid.G > 1 || mid.B < 0 || mid.B > 1 {
		t.Errorf("mixLinear midpoint out of range: %v", mid)
	}
}

func TestMixLinearIsGammaCorrect(t *testing.T) {
	a := colorful.Color{R: 0, G: 0, B: 0}
	b := colorful.Color{R: 1, G: 1, B: 1}
	mid := mixLinear(a, b, 0.5)
	// Halfway in linear light is far brighter than 0.5 in sRGB
	if mid.R < 0.7 {
		t.Errorf("linear-space midpoint R = %v, want > 0.7", mid.R)
	}
	if math.Abs(mid.R-mid.G) > 1e-9 || math.Abs(mid.G-mid.B) > 1e-9 {
		t.Errorf("grey mix must stay grey: %v", mid)
	}
}

func TestSetTransitionSpeedClamps(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	e.SetTransitionSpeed(99)
	if e.TransitionSpeed() != 2.0 {
		t.Errorf("speed = %v, want clamp to 2.0", e.TransitionSpeed())
	}
	e.SetTransitionSpeed(0.001)
	if e.TransitionSpeed() != 0.1 {
		t.Errorf("speed = %v, want clamp to 0.1", e.TransitionSpeed())
	}
}

func TestResizePropagates(t *testing.T) {
	e := newTestEngine(t, "horizontal")
	if err := e.StartPatternTransition("wave"); err != nil {
		t.Fatal(err)
	}
	e.Resize(120, 40)
	if w, h := e.Current().Size(); w != 120 || h != 40 {
		t.Errorf("Size() = %dx%d, want 120x40", w, h)
	}
}
