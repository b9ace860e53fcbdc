package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sceneforge/sceneforge/internal/core/components"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.True(t, c.Sync.Exclusions.SkipType(components.TypeIdentity))
	require.True(t, c.Sync.Exclusions.NoAutoAddType(components.TypeParent))
	require.Equal(t, 30, c.Playback.FPS)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	in := `
project: demo
assets:
  root: game/assets
sync:
  exclusions:
    skip_types: [Identity, PrefabLink, Custom]
playback:
  fps: 60
`
	c, err := LoadYAML(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "demo", c.Project)
	require.Equal(t, "game/assets", c.Assets.Root)
	require.Equal(t, 60, c.Playback.FPS)
	require.True(t, c.Sync.Exclusions.SkipType("Custom"))
	require.False(t, c.Sync.Exclusions.SkipType(components.TypeSceneInfo),
		"explicit exclusion list replaces the default")
	// untouched sections keep their defaults
	require.Equal(t, "info", c.Logging.Level)
}

func TestLoadJSON(t *testing.T) {
	in := `{"project": "demo", "playback": {"fps": 24}}`
	c, err := LoadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "demo", c.Project)
	require.Equal(t, 24, c.Playback.FPS)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("project: ''"))
	require.Error(t, err)

	_, err = LoadYAML(strings.NewReader("playback: {fps: -1}"))
	require.Error(t, err)

	_, err = LoadJSON(strings.NewReader("{broken"))
	require.Error(t, err)
}

func TestLoadFileDispatch(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "editor.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("project: from-yaml"), 0o644))
	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, "from-yaml", c.Project)

	jsonPath := filepath.Join(dir, "editor.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"project":"from-json"}`), 0o644))
	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, "from-json", c.Project)

	_, err = LoadFile(filepath.Join(dir, "editor.toml"))
	require.Error(t, err)
	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
