package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/softglow/glowcat/automix"
	"github.com/softglow/glowcat/blend"
	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/playlist"
	"github.com/softglow/glowcat/render"
	"github.com/softglow/glowcat/theme"
)

type options struct {
	pattern   string
	theme     string
	params    string
	playlist  string
	recipe    string
	automix   string
	themeFile string
	fps       int
	logLevel  string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.pattern, "pattern", "diagonal", "starting pattern id")
	flag.StringVar(&opts.theme, "theme", "rainbow", "starting theme name")
	flag.StringVar(&opts.params, "params", "", "pattern parameters as k=v,k=v")
	flag.StringVar(&opts.playlist, "playlist", "", "playlist YAML file")
	flag.StringVar(&opts.recipe, "recipe", "", "recipe YAML file, restored on start and saved on exit")
	flag.StringVar(&opts.automix, "automix", "off", "automix mode: off, playlist, random, showcase, adaptive")
	flag.StringVar(&opts.themeFile, "themes", "", "custom theme YAML file")
	flag.IntVar(&opts.fps, "fps", 60, "target frames per second")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	flag.Parse()
	return opts
}

type App struct {
	screen tcell.Screen
	log    zerolog.Logger

	registry *pattern.Registry
	themes   *theme.Registry
	engine   *blend.Engine
	mixer    *automix.Controller
	painter  *render.Painter

	width, height int
	fps           int
	paused        bool

	// Frame rate measured over one second windows
	frameCount  int
	frameStart  time.Time
	measuredFPS float64
}

func NewApp(opts options, log zerolog.Logger) (*App, error) {
	registry := pattern.NewRegistry()
	themes := theme.NewRegistry()

	if opts.themeFile != "" {
		if err := themes.LoadFile(opts.themeFile); err != nil {
			return nil, fmt.Errorf("load themes: %w", err)
		}
	}

	params, err := registry.Parse(opts.pattern, opts.params)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	def, err := themes.Lookup(opts.theme)
	if err != nil {
		return nil, err
	}
	grad, err := theme.NewGradient(def)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &App{
		screen:     screen,
		log:        log,
		registry:   registry,
		themes:     themes,
		mixer:      automix.NewController(registry, themes, log),
		painter:    render.NewPainter(screen),
		fps:        opts.fps,
		frameStart: time.Now(),
	}
	a.width, a.height = screen.Size()

	cfg := pattern.DefaultConfig(params)
	cfg.Common.ThemeName = opts.theme
	pw, ph := a.painter.PatternSize()
	a.engine = blend.NewEngine(registry, themes, cfg, grad, pw, ph)

	if opts.playlist != "" {
		pl, err := playlist.Load(opts.playlist, registry, themes)
		if err != nil {
			screen.Fini()
			return nil, err
		}
		a.mixer.LoadPlaylist(pl.Scenes())
	} else if opts.recipe != "" {
		// A missing recipe file is fine on first start
		if r, err := playlist.LoadRecipe(opts.recipe); err == nil {
			a.mixer.LoadPlaylist(r.SceneList())
			if r.CrossfadeSeconds > 0 {
				a.engine.SetTransitionSpeed(1.0 / r.CrossfadeSeconds)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("recipe not restored")
		}
	}

	if mode, ok := automix.ParseMode(opts.automix); ok {
		a.mixer.SetMode(mode)
	} else {
		screen.Fini()
		return nil, fmt.Errorf("unknown automix mode %q", opts.automix)
	}

	return a, nil
}

func (a *App) handleResize() {
	newWidth, newHeight := a.screen.Size()
	if newWidth != a.width || newHeight != a.height {
		a.width = newWidth
		a.height = newHeight
		a.painter.Resize(newWidth, newHeight)
		pw, ph := a.painter.PatternSize()
		a.engine.Resize(pw, ph)
		a.screen.Sync()
	}
}

// applyChanges feeds queued automix scene switches into the blender
func (a *App) applyChanges(changes []automix.Change) {
	for _, ch := range changes {
		err := a.engine.StartSceneTransition(ch.Scene.Pattern, ch.Scene.Params, ch.Scene.Theme, a.engine.Effect())
		if err != nil {
			a.log.Warn().Err(err).Str("scene", ch.Scene.Name).Msg("scene transition rejected")
			continue
		}
		a.log.Debug().
			Str("scene", ch.Scene.Name).
			Str("pattern", ch.Scene.Pattern).
			Str("theme", ch.Scene.Theme).
			Msg("scene change")
	}
}

func (a *App) nextTheme() {
	names := a.themes.Names()
	current := a.engine.CurrentGradient().Name()
	for i, name := range names {
		if name == current {
			next := names[(i+1)%len(names)]
			if err := a.engine.StartThemeTransition(next); err != nil {
				a.log.Warn().Err(err).Msg("theme transition rejected")
			}
			return
		}
	}
	if len(names) > 0 {
		if err := a.engine.StartThemeTransition(names[0]); err != nil {
			a.log.Warn().Err(err).Msg("theme transition rejected")
		}
	}
}

func (a *App) nextPattern() {
	ids := a.registry.List()
	current := pattern.ID(a.engine.Current().Config().Params)
	for i, id := range ids {
		if id == current {
			next := ids[(i+1)%len(ids)]
			if err := a.engine.StartPatternTransition(next); err != nil {
				a.log.Warn().Err(err).Msg("pattern transition rejected")
			}
			return
		}
	}
}

func (a *App) cycleMode() {
	modes := []automix.Mode{automix.Off, automix.Playlist, automix.Random, automix.Showcase, automix.Adaptive}
	for i, m := range modes {
		if m == a.mixer.Mode() {
			next := modes[(i+1)%len(modes)]
			a.mixer.SetMode(next)
			a.log.Info().Str("mode", next.String()).Msg("automix mode")
			return
		}
	}
}

func (a *App) cycleEffect() {
	effects := []blend.Effect{
		blend.Crossfade, blend.Ripple, blend.Spiral,
		blend.Wave, blend.Pixelate, blend.Kaleidoscope,
	}
	for i, e := range effects {
		if e == a.engine.Effect() {
			a.engine.SetEffect(effects[(i+1)%len(effects)])
			return
		}
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.paused = !a.paused
		case 'n':
			a.mixer.SkipNext()
		case 'p':
			a.mixer.SkipPrev()
		case 'm':
			a.cycleMode()
		case 't':
			a.nextTheme()
		case 'g':
			a.nextPattern()
		case 'e':
			a.cycleEffect()
		case 's':
			a.painter.SetShowStatus(!a.painter.ShowStatus())
			pw, ph := a.painter.PatternSize()
			a.engine.Resize(pw, ph)
		}

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

func (a *App) tick(dt float64) {
	u := a.mixer.Tick(dt)
	a.applyChanges(u.Changes)

	if !a.paused {
		a.engine.Update(dt)
	}

	a.frameCount++
	if elapsed := time.Since(a.frameStart); elapsed >= time.Second {
		a.measuredFPS = float64(a.frameCount) / elapsed.Seconds()
		a.frameCount = 0
		a.frameStart = time.Now()
	}

	scene := a.mixer.Current()
	a.painter.Frame(a.engine, render.Status{
		Mode:     a.mixer.Mode().String(),
		Scene:    scene.Name,
		Pattern:  pattern.ID(a.engine.Current().Config().Params),
		Theme:    a.engine.CurrentGradient().Name(),
		Progress: u.SceneProgress,
		FPS:      a.measuredFPS,
		Paused:   a.paused,
	})
}

func (a *App) run() {
	interval := time.Second / time.Duration(a.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.tick(dt)
		}
	}
}

func (a *App) cleanup() {
	a.screen.Fini()
}

// saveRecipe snapshots the visible scene and scheduler rotation so the
// next start can resume where this run left off.
func (a *App) saveRecipe(path string) {
	current := automix.Scene{
		Pattern: pattern.ID(a.engine.Current().Config().Params),
		Theme:   a.engine.CurrentGradient().Name(),
	}
	crossfade := 1.0 / a.engine.TransitionSpeed()
	r := playlist.Snapshot(current, a.mixer.ScheduledScenes(), crossfade)
	if err := playlist.SaveRecipe(path, r); err != nil {
		a.log.Warn().Err(err).Msg("recipe not saved")
	}
}

func main() {
	opts := parseFlags()

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", opts.logLevel)
		os.Exit(1)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	if opts.fps < 1 || opts.fps > 240 {
		fmt.Fprintln(os.Stderr, "fps must be between 1 and 240")
		os.Exit(1)
	}

	app, err := NewApp(opts, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()

	if opts.recipe != "" {
		app.saveRecipe(opts.recipe)
	}
}
