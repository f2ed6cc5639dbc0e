package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/softglow/glowcat/blend"
	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestEngine(t *testing.T, width, height int) *blend.Engine {
	t.Helper()
	reg := pattern.NewRegistry()
	p, err := reg.Default("horizontal")
	if err != nil {
		t.Fatalf("Default(horizontal) failed: %v", err)
	}
	themes := theme.NewRegistry()
	def, err := themes.Lookup("rainbow")
	if err != nil {
		t.Fatalf("Lookup(rainbow) failed: %v", err)
	}
	return blend.NewEngine(reg, themes, pattern.DefaultConfig(p), theme.MustGradient(def), width, height)
}

func TestFrameFillsPatternArea(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	p := NewPainter(screen)
	p.Resize(20, 10)

	engine := newTestEngine(t, 20, 9)
	p.Frame(engine, Status{Mode: "off", Pattern: "horizontal", Theme: "rainbow"})

	cells, w, h := screen.GetContents()
	if w != 20 || h != 10 {
		t.Fatalf("simulation size = %dx%d", w, h)
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			cell := cells[y*w+x]
			if len(cell.Runes) == 0 || cell.Runes[0] != blockRune {
				t.Fatalf("cell (%d,%d) = %q, want block rune", x, y, cell.Runes)
			}
		}
	}
}

func TestFrameDrawsStatusLine(t *testing.T) {
	screen := newSimScreen(t, 60, 10)
	p := NewPainter(screen)
	p.Resize(60, 10)

	engine := newTestEngine(t, 60, 9)
	p.Frame(engine, Status{
		Mode:     "showcase",
		Scene:    "Neon Dreams",
		Pattern:  "plasma",
		Theme:    "neon",
		Progress: 0.5,
		FPS:      60,
	})

	cells, w, h := screen.GetContents()
	var line strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[(h-1)*w+x]
		if len(cell.Runes) > 0 {
			line.WriteRune(cell.Runes[0])
		}
	}
	got := line.String()
	for _, want := range []string{"showcase", "Neon Dreams", "plasma/neon", "fps"} {
		if !strings.Contains(got, want) {
			t.Errorf("status line %q missing %q", got, want)
		}
	}
}

func TestStatusDisabledUsesFullHeight(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	p := NewPainter(screen)
	p.Resize(10, 5)
	p.SetShowStatus(false)

	if _, h := p.PatternSize(); h != 5 {
		t.Fatalf("pattern height = %d, want full 5", h)
	}

	engine := newTestEngine(t, 10, 5)
	p.Frame(engine, Status{Mode: "off"})

	cells, w, h := screen.GetContents()
	cell := cells[(h-1)*w]
	if len(cell.Runes) == 0 || cell.Runes[0] != blockRune {
		t.Error("bottom row must be pattern cells when status is off")
	}
}

func TestStatusLineTruncates(t *testing.T) {
	s := Status{
		Mode:    "showcase",
		Scene:   strings.Repeat("long scene name ", 10),
		Pattern: "plasma",
		Theme:   "neon",
	}
	line := statusLine(s, 30)
	if got := len([]rune(line)); got > 30 {
		t.Errorf("status line has %d runes, want at most 30", got)
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0, 10); got != "[----------]" {
		t.Errorf("empty bar = %q", got)
	}
	if got := progressBar(1, 10); got != "[==========]" {
		t.Errorf("full bar = %q", got)
	}
	if got := progressBar(0.5, 10); got != "[=====-----]" {
		t.Errorf("half bar = %q", got)
	}
	// Out of range clamps
	if got := progressBar(2, 4); got != "[====]" {
		t.Errorf("overfull bar = %q", got)
	}
}

func TestPausedStatusHidesFPS(t *testing.T) {
	line := statusLine(Status{Mode: "off", Pattern: "wave", Theme: "ocean", Paused: true, FPS: 60}, 80)
	if !strings.Contains(line, "paused") {
		t.Errorf("paused line = %q", line)
	}
	if strings.Contains(line, "fps") {
		t.Errorf("paused line must not show fps, got %q", line)
	}
}
