// Package automix rotates scenes automatically across several modes,
// from curated showcases to time-of-day adaptive selection.
package automix

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
	"github.com/softglow/glowcat/vmath"
)

// Mode selects how scenes are chosen
type Mode int

const (
	// Off leaves scene selection fully manual
	Off Mode = iota
	// Playlist follows a loaded scene list in order
	Playlist
	// Random rotates through a variety-seeded schedule
	Random
	// Showcase cycles curated pattern and theme combinations
	Showcase
	// Adaptive picks scenes by time of day
	Adaptive
)

func (m Mode) String() string {
	switch m {
	case Playlist:
		return "playlist"
	case Random:
		return "random"
	case Showcase:
		return "showcase"
	case Adaptive:
		return "adaptive"
	default:
		return "off"
	}
}

// ParseMode maps a mode name to its value
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "off":
		return Off, true
	case "playlist":
		return Playlist, true
	case "random":
		return Random, true
	case "showcase":
		return Showcase, true
	case "adaptive":
		return Adaptive, true
	}
	return Off, false
}

// TransitionType selects the blend curve of a scene change
type TransitionType int

const (
	// Cut switches instantly
	Cut TransitionType = iota
	// Crossfade blends linearly
	Crossfade
	// Morph eases in and out
	Morph
	// Slide decelerates into the new scene
	Slide
)

// Blend maps raw transition progress to the eased blend factor
func (t TransitionType) Blend(progress float64) float64 {
	progress = vmath.Clamp(progress, 0, 1)
	switch t {
	case Crossfade:
		return progress
	case Morph:
		return vmath.EaseInOutCubic(progress)
	case Slide:
		return vmath.EaseOutQuart(progress)
	default:
		return 1.0
	}
}

// Change asks the caller to switch to a new scene
type Change struct {
	Scene      Scene
	Transition TransitionType
}

// Update reports the controller state after one tick
type Update struct {
	// Changes holds every scene switch queued since the last tick
	Changes []Change
	// Blend is the eased progress of the active transition
	Blend float64
	// Transitioning reports whether a transition is running
	Transitioning bool
	// SceneProgress is elapsed scene time over scene duration
	SceneProgress float64
}

type transitionState struct {
	elapsed  float64
	duration float64
	typ      TransitionType
	target   Scene
}

// maxPending bounds the change queue; rapid skips drop the oldest
const maxPending = 8

// defaultSceneDuration covers scenes that never declare a duration
const defaultSceneDuration = 10.0

// Controller drives automatic scene rotation. All timing is delta
// driven; the wall clock is only consulted for adaptive mode.
type Controller struct {
	mode     Mode
	patterns *pattern.Registry
	themes   *theme.Registry
	log      zerolog.Logger
	now      func() time.Time

	scheduler *SceneScheduler

	playlist      []Scene
	playlistIndex int

	showcase      []Scene
	showcaseIndex int

	current       Scene
	sceneElapsed  float64
	sceneDuration float64

	transition *transitionState
	pending    []Change

	transitionDuration float64
	defaultTransition  TransitionType
}

// NewController builds an automix controller in Off mode
func NewController(patterns *pattern.Registry, themes *theme.Registry, log zerolog.Logger) *Controller {
	return &Controller{
		mode:      Off,
		patterns:  patterns,
		themes:    themes,
		log:       log,
		now:       time.Now,
		scheduler: NewSceneScheduler(nil),
		showcase:  showcaseScenes(),
		current: Scene{
			Pattern: "diagonal",
			Theme:   "rainbow",
			Art:     "rainbow",
		},
		sceneDuration:      defaultSceneDuration,
		transitionDuration: 5,
		defaultTransition:  Crossfade,
	}
}

// showcaseScenes returns the curated rotation for showcase mode
func showcaseScenes() []Scene {
	return []Scene{
		{
			Name: "Neon Dreams", Pattern: "plasma", Theme: "neon", Art: "cityscape",
			Params: "scale=2,complexity=3", Duration: 15,
		},
		{
			Name: "Ocean Waves", Pattern: "wave", Theme: "ocean", Art: "waves",
			Params: "frequency=1.5,amplitude=0.8", Duration: 12,
		},
		{
			Name: "Matrix Rain", Pattern: "rain", Theme: "matrix", Art: "matrix",
			Params: "density=1.5,speed=2", Duration: 10,
		},
		{
			Name: "Aurora Borealis", Pattern: "aurora", Theme: "aurora", Art: "rainbow",
			Params: "turbulence=0.3,layers=3", Duration: 18,
		},
		{
			Name: "Digital Spiral", Pattern: "spiral", Theme: "cyberpunk", Art: "blocks",
			Params: "density=1.5,rotation=45", Duration: 10,
		},
	}
}

// Mode returns the active automix mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Current returns the scene the controller considers active
func (c *Controller) Current() Scene {
	return c.current
}

// ScheduledScenes returns a copy of the random-mode rotation, for
// recipe snapshots.
func (c *Controller) ScheduledScenes() []Scene {
	return c.scheduler.Scenes()
}

// SetClock overrides the wall clock used by adaptive mode
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// LoadPlaylist installs the scene list used by playlist mode
func (c *Controller) LoadPlaylist(scenes []Scene) {
	c.playlist = scenes
	c.playlistIndex = 0
}

// SetMode switches the rotation strategy and applies its first scene
func (c *Controller) SetMode(mode Mode) {
	c.mode = mode
	c.sceneElapsed = 0

	switch mode {
	case Random:
		c.scheduler.ReseedVariety(c.patterns.List(), c.themes.Names(), 10)
		if scene, ok := c.scheduler.Current(); ok {
			c.startTransition(scene, c.defaultTransition)
		}
	case Showcase:
		c.showcaseIndex = 0
		c.startTransition(c.showcase[0], c.defaultTransition)
	case Playlist:
		if len(c.playlist) > 0 {
			c.playlistIndex = 0
			c.startTransition(c.playlist[0], c.defaultTransition)
		}
	case Adaptive:
		c.startTransition(c.adaptiveScene(), Morph)
	}
}

// adaptiveScene picks a scene for the current hour
func (c *Controller) adaptiveScene() Scene {
	var p, t string
	switch hour := c.now().Hour(); {
	case hour >= 6 && hour <= 9:
		p, t = "aurora", "warm"
	case hour >= 10 && hour <= 16:
		p, t = "wave", "ocean"
	case hour >= 17 && hour <= 20:
		p, t = "ripple", "autumn"
	default:
		p, t = "perlin", "midnight"
	}
	return Scene{Name: "Adaptive", Pattern: p, Theme: t, Duration: 20}
}

// startTransition validates a scene and queues its change. Scenes that
// reference unknown patterns or themes are logged and skipped.
func (c *Controller) startTransition(scene Scene, typ TransitionType) {
	if err := c.patterns.Validate(scene.Pattern, scene.Params); err != nil {
		c.log.Warn().Err(err).Str("pattern", scene.Pattern).Msg("automix scene rejected")
		return
	}
	if _, err := c.themes.Lookup(scene.Theme); err != nil {
		c.log.Warn().Err(err).Str("theme", scene.Theme).Msg("automix scene rejected")
		return
	}

	// Scenes keep their declared duration; only unset ones fall back
	c.sceneElapsed = 0
	c.sceneDuration = scene.Duration
	if c.sceneDuration <= 0 {
		c.sceneDuration = defaultSceneDuration
	}
	c.transition = &transitionState{
		duration: c.transitionDuration,
		typ:      typ,
		target:   scene,
	}

	if len(c.pending) >= maxPending {
		dropped := c.pending[0]
		c.pending = c.pending[1:]
		c.log.Warn().
			Str("pattern", dropped.Scene.Pattern).
			Str("theme", dropped.Scene.Theme).
			Msg("automix change queue full, dropping oldest")
	}
	c.pending = append(c.pending, Change{Scene: scene, Transition: typ})
}

// Tick advances the controller by dt seconds and returns any queued
// scene changes plus the current transition state.
func (c *Controller) Tick(dt float64) Update {
	var u Update

	// Hand over everything queued since the last tick
	if len(c.pending) > 0 {
		u.Changes = c.pending
		c.pending = nil
	}

	if c.transition != nil {
		c.transition.elapsed += dt
		progress := c.transition.elapsed / c.transition.duration
		u.Blend = c.transition.typ.Blend(progress)
		if progress >= 1.0 {
			c.current = c.transition.target
			c.transition = nil
		}
	}

	c.sceneElapsed += dt

	switch c.mode {
	case Random:
		if scene, ok := c.scheduler.Tick(dt); ok {
			c.startTransition(scene, c.defaultTransition)
		}
	case Showcase:
		if c.sceneElapsed >= c.sceneDuration {
			c.showcaseIndex = (c.showcaseIndex + 1) % len(c.showcase)
			c.startTransition(c.showcase[c.showcaseIndex], c.defaultTransition)
		}
	case Playlist:
		if c.sceneElapsed >= c.sceneDuration && len(c.playlist) > 0 {
			c.playlistIndex = (c.playlistIndex + 1) % len(c.playlist)
			c.startTransition(c.playlist[c.playlistIndex], c.defaultTransition)
		}
	case Adaptive:
		if c.sceneElapsed >= c.sceneDuration {
			c.startTransition(c.adaptiveScene(), Morph)
		}
	}

	u.Transitioning = c.transition != nil
	if c.sceneDuration > 0 {
		u.SceneProgress = vmath.Clamp(c.sceneElapsed/c.sceneDuration, 0, 1)
	}
	return u
}

// SkipNext jumps to the next scene in the active rotation
func (c *Controller) SkipNext() {
	switch c.mode {
	case Random:
		if scene, ok := c.scheduler.JumpNext(); ok {
			c.startTransition(scene, c.defaultTransition)
		}
	case Showcase:
		c.showcaseIndex = (c.showcaseIndex + 1) % len(c.showcase)
		c.startTransition(c.showcase[c.showcaseIndex], c.defaultTransition)
	case Playlist:
		if len(c.playlist) > 0 {
			c.playlistIndex = (c.playlistIndex + 1) % len(c.playlist)
			c.startTransition(c.playlist[c.playlistIndex], c.defaultTransition)
		}
	}
}

// SkipPrev jumps back to the previous scene in the active rotation
func (c *Controller) SkipPrev() {
	switch c.mode {
	case Random:
		if scene, ok := c.scheduler.JumpPrev(); ok {
			c.startTransition(scene, c.defaultTransition)
		}
	case Showcase:
		if c.showcaseIndex == 0 {
			c.showcaseIndex = len(c.showcase) - 1
		} else {
			c.showcaseIndex--
		}
		c.startTransition(c.showcase[c.showcaseIndex], c.defaultTransition)
	case Playlist:
		if len(c.playlist) > 0 {
			if c.playlistIndex == 0 {
				c.playlistIndex = len(c.playlist) - 1
			} else {
				c.playlistIndex--
			}
			c.startTransition(c.playlist[c.playlistIndex], c.defaultTransition)
		}
	}
}
