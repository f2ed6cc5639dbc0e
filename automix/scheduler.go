package automix

// Scene is one entry in a rotation: which pattern and theme to show,
// with what parameters, for how many seconds.
type Scene struct {
	Name     string
	Pattern  string
	Theme    string
	Art      string
	Params   string
	Duration float64
}

// SceneScheduler rotates through a list of scenes on a delta-time clock
type SceneScheduler struct {
	scenes       []Scene
	currentIndex int
	elapsed      float64
	enabled      bool
}

// NewSceneScheduler builds an enabled scheduler over the given scenes
func NewSceneScheduler(scenes []Scene) *SceneScheduler {
	return &SceneScheduler{scenes: scenes, enabled: true}
}

// Enabled reports whether the scheduler advances on Tick
func (s *SceneScheduler) Enabled() bool {
	return s.enabled
}

// SetEnabled pauses or resumes scene rotation
func (s *SceneScheduler) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Current returns the active scene, or false when the list is empty
func (s *SceneScheduler) Current() (Scene, bool) {
	if s.currentIndex >= len(s.scenes) {
		return Scene{}, false
	}
	return s.scenes[s.currentIndex], true
}

// ReseedVariety rebuilds the scene list with strided pattern and theme
// selection, so consecutive scenes avoid repeating either. Durations
// cycle through 8, 11, 14, and 17 seconds.
func (s *SceneScheduler) ReseedVariety(patterns, themes []string, count int) {
	if len(patterns) == 0 || len(themes) == 0 {
		return
	}
	if count < 2 {
		count = 2
	}
	scenes := make([]Scene, 0, count)
	for i := 0; i < count; i++ {
		scenes = append(scenes, Scene{
			Pattern:  patterns[(i*3)%len(patterns)],
			Theme:    themes[(i*5+7)%len(themes)],
			Duration: 8.0 + float64(i%4)*3.0,
		})
	}
	s.scenes = scenes
	s.currentIndex = 0
	s.elapsed = 0
	s.enabled = true
}

// Tick advances time and returns the next scene when the current one
// expires.
func (s *SceneScheduler) Tick(dt float64) (Scene, bool) {
	if !s.enabled || len(s.scenes) == 0 {
		return Scene{}, false
	}
	s.elapsed += dt
	if s.elapsed >= s.scenes[s.currentIndex].Duration {
		s.elapsed = 0
		s.currentIndex = (s.currentIndex + 1) % len(s.scenes)
		return s.scenes[s.currentIndex], true
	}
	return Scene{}, false
}

// JumpNext advances to the next scene immediately
func (s *SceneScheduler) JumpNext() (Scene, bool) {
	if len(s.scenes) == 0 {
		return Scene{}, false
	}
	s.elapsed = 0
	s.currentIndex = (s.currentIndex + 1) % len(s.scenes)
	return s.scenes[s.currentIndex], true
}

// JumpPrev steps back to the previous scene immediately
func (s *SceneScheduler) JumpPrev() (Scene, bool) {
	if len(s.scenes) == 0 {
		return Scene{}, false
	}
	s.elapsed = 0
	if s.currentIndex == 0 {
		s.currentIndex = len(s.scenes) - 1
	} else {
		s.currentIndex--
	}
	return s.scenes[s.currentIndex], true
}

// Scenes returns a copy of the rotation for snapshotting
func (s *SceneScheduler) Scenes() []Scene {
	out := make([]Scene, len(s.scenes))
	copy(out, s.scenes)
	return out
}
