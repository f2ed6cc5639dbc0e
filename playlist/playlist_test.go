package playlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softglow/glowcat/automix"
	"github.com/softglow/glowcat/pattern"
	"github.com/softglow/glowcat/theme"
)

const validPlaylist = `
entries:
  - name: Calm Seas
    pattern: wave
    theme: ocean
    duration: 12
    params:
      frequency: "1.5"
      amplitude: "0.8"
  - name: City Night
    pattern: plasma
    theme: neon
    duration: 15
    art: cityscape
`

func TestParseValidPlaylist(t *testing.T) {
	reg := pattern.NewRegistry()
	p, err := Parse([]byte(validPlaylist), reg, theme.NewRegistry())
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)

	assert.Equal(t, "Calm Seas", p.Entries[0].Name)
	assert.Equal(t, "amplitude=0.8,frequency=1.5", p.Entries[0].ParamString())
	assert.Equal(t, "", p.Entries[1].ParamString())

	scenes := p.Scenes()
	require.Len(t, scenes, 2)
	assert.Equal(t, automix.Scene{
		Name:     "Calm Seas",
		Pattern:  "wave",
		Theme:    "ocean",
		Params:   "amplitude=0.8,frequency=1.5",
		Duration: 12,
	}, scenes[0])
	assert.Equal(t, "cityscape", scenes[1].Art)
}

func TestParseRejectsUnknownPattern(t *testing.T) {
	reg := pattern.NewRegistry()
	_, err := Parse([]byte(`
entries:
  - {name: ok, pattern: wave, theme: ocean, duration: 10}
  - {name: bad, pattern: vortex, theme: ocean, duration: 10}
`), reg, theme.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
	assert.ErrorIs(t, err, pattern.ErrUnknownPattern)
}

func TestParseRejectsBadParams(t *testing.T) {
	reg := pattern.NewRegistry()
	_, err := Parse([]byte(`
entries:
  - name: bad
    pattern: plasma
    theme: neon
    duration: 10
    params:
      complexity: "11"
`), reg, theme.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestParseRejectsUnknownTheme(t *testing.T) {
	reg := pattern.NewRegistry()
	_, err := Parse([]byte(`
entries:
  - {name: bad, pattern: wave, theme: nonexistent, duration: 10}
`), reg, theme.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

func TestParseRejectsBadDuration(t *testing.T) {
	reg := pattern.NewRegistry()
	for _, dur := range []string{"0", "-3"} {
		_, err := Parse([]byte(`
entries:
  - {name: bad, pattern: wave, theme: ocean, duration: `+dur+`}
`), reg, theme.NewRegistry())
		assert.Error(t, err, "duration %s must be rejected", dur)
	}
}

func TestParseRejectsEmptyPlaylist(t *testing.T) {
	reg := pattern.NewRegistry()
	_, err := Parse([]byte("entries: []"), reg, theme.NewRegistry())
	assert.Error(t, err)

	_, err = Parse([]byte("not: [valid"), reg, theme.NewRegistry())
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validPlaylist), 0o644))

	p, err := Load(path, pattern.NewRegistry(), theme.NewRegistry())
	require.NoError(t, err)
	assert.Len(t, p.Entries, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), pattern.NewRegistry(), theme.NewRegistry())
	assert.Error(t, err)
}

func TestRecipeRoundTrip(t *testing.T) {
	current := automix.Scene{Pattern: "plasma", Theme: "neon"}
	scenes := []automix.Scene{
		{Pattern: "wave", Theme: "ocean", Duration: 12},
		{Pattern: "rain", Theme: "matrix", Duration: 10},
	}
	r := Snapshot(current, scenes, 5)

	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, SaveRecipe(path, r))

	loaded, err := LoadRecipe(path)
	require.NoError(t, err)
	assert.Equal(t, "plasma", loaded.CurrentPattern)
	assert.Equal(t, "neon", loaded.CurrentTheme)
	assert.Equal(t, 5.0, loaded.CrossfadeSeconds)

	restored := loaded.SceneList()
	require.Len(t, restored, 2)
	assert.Equal(t, scenes[0].Pattern, restored[0].Pattern)
	assert.Equal(t, scenes[1].Duration, restored[1].Duration)
}

func TestLoadRecipeMissingFile(t *testing.T) {
	_, err := LoadRecipe(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
