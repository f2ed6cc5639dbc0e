// Package playlist loads scene sequences and recipe snapshots from
// YAML files.
package playlist

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/softglow/glowcat/automix"
	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
)

// Entry is one playlist item as written in YAML. Params is a mapping of
// parameter name to value; it is flattened to the registry's k=v form.
type Entry struct {
	Name     string            `yaml:"name"`
	Pattern  string            `yaml:"pattern"`
	Theme    string            `yaml:"theme"`
	Duration float64           `yaml:"duration"`
	Params   map[string]string `yaml:"params"`
	Art      string            `yaml:"art"`
}

// ParamString flattens the params mapping into the canonical k=v form
// with sorted keys.
func (e Entry) ParamString() string {
	if len(e.Params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+e.Params[k])
	}
	return strings.Join(parts, ",")
}

// Playlist is a validated sequence of scenes
type Playlist struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads and validates a playlist file
func Load(path string, patterns *pattern.Registry, themes *theme.Registry) (*Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return Parse(data, patterns, themes)
}

// Parse validates playlist YAML against both registries. Errors name
// the offending entry by index.
func Parse(data []byte, patterns *pattern.Registry, themes *theme.Registry) (*Playlist, error) {
	var p Playlist
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse playlist: %w", err)
	}
	if len(p.Entries) == 0 {
		return nil, fmt.Errorf("playlist has no entries")
	}

	for i, e := range p.Entries {
		if e.Pattern == "" {
			return nil, fmt.Errorf("playlist entry %d: missing pattern", i)
		}
		if err := patterns.Validate(e.Pattern, e.ParamString()); err != nil {
			return nil, fmt.Errorf("playlist entry %d: %w", i, err)
		}
		if e.Theme == "" {
			return nil, fmt.Errorf("playlist entry %d: missing theme", i)
		}
		if _, err := themes.Lookup(e.Theme); err != nil {
			return nil, fmt.Errorf("playlist entry %d: %w", i, err)
		}
		if e.Duration <= 0 {
			return nil, fmt.Errorf("playlist entry %d: duration must be positive", i)
		}
	}
	return &p, nil
}

// Scenes converts the playlist into the automix scene form
func (p *Playlist) Scenes() []automix.Scene {
	scenes := make([]automix.Scene, 0, len(p.Entries))
	for _, e := range p.Entries {
		scenes = append(scenes, automix.Scene{
			Name:     e.Name,
			Pattern:  e.Pattern,
			Theme:    e.Theme,
			Art:      e.Art,
			Params:   e.ParamString(),
			Duration: e.Duration,
		})
	}
	return scenes
}
