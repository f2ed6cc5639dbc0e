package playlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/softglow/glowcat/automix"
)

// SceneRecipe is one scheduler entry in a saved recipe
type SceneRecipe struct {
	PatternID    string  `yaml:"pattern_id"`
	ThemeName    string  `yaml:"theme_name"`
	DurationSecs float64 `yaml:"duration_secs"`
}

// Recipe is a snapshot of the running scene line-up. It can be saved on
// exit and restored on the next start.
type Recipe struct {
	CurrentPattern   string        `yaml:"current_pattern,omitempty"`
	CurrentTheme     string        `yaml:"current_theme,omitempty"`
	Scenes           []SceneRecipe `yaml:"scenes"`
	CrossfadeSeconds float64       `yaml:"crossfade_seconds,omitempty"`
}

// Snapshot captures the current scene and scheduler state as a recipe
func Snapshot(current automix.Scene, scenes []automix.Scene, crossfade float64) Recipe {
	r := Recipe{
		CurrentPattern:   current.Pattern,
		CurrentTheme:     current.Theme,
		CrossfadeSeconds: crossfade,
	}
	for _, s := range scenes {
		r.Scenes = append(r.Scenes, SceneRecipe{
			PatternID:    s.Pattern,
			ThemeName:    s.Theme,
			DurationSecs: s.Duration,
		})
	}
	return r
}

// SceneList converts the recipe's scheduler entries back to scenes
func (r Recipe) SceneList() []automix.Scene {
	scenes := make([]automix.Scene, 0, len(r.Scenes))
	for _, s := range r.Scenes {
		scenes = append(scenes, automix.Scene{
			Pattern:  s.PatternID,
			Theme:    s.ThemeName,
			Duration: s.DurationSecs,
		})
	}
	return scenes
}

// SaveRecipe writes a recipe snapshot to path
func SaveRecipe(path string, r Recipe) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode recipe: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write recipe: %w", err)
	}
	return nil
}

// LoadRecipe reads a recipe snapshot from path
func LoadRecipe(path string) (Recipe, error) {
	var r Recipe
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read recipe: %w", err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("parse recipe: %w", err)
	}
	return r, nil
}
