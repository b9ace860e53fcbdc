package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sceneforge/sceneforge/internal/core/animation"
	"github.com/sceneforge/sceneforge/internal/core/prefab"
)

// Config is the editor's project configuration, loadable from YAML or JSON.
type Config struct {
	Project  string         `json:"project" yaml:"project"`
	Assets   AssetsConfig   `json:"assets" yaml:"assets"`
	Clips    ClipsConfig    `json:"clips" yaml:"clips"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Sync     SyncConfig     `json:"sync" yaml:"sync"`
	Playback PlaybackConfig `json:"playback" yaml:"playback"`
}

type AssetsConfig struct {
	Root string `json:"root" yaml:"root"`
}

type ClipsConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// SyncConfig carries the prefab synchronization exclusion rules as
// reviewable data rather than code.
type SyncConfig struct {
	Exclusions prefab.Exclusions `json:"exclusions" yaml:"exclusions"`
}

type PlaybackConfig struct {
	FPS int `json:"fps" yaml:"fps"`
}

// Default returns a configuration for an unnamed project rooted in the
// working directory.
func Default() Config {
	return Config{
		Project:  "untitled",
		Assets:   AssetsConfig{Root: "assets"},
		Clips:    ClipsConfig{Dir: filepath.Join("assets", "clips")},
		Logging:  LoggingConfig{Level: "info"},
		Sync:     SyncConfig{Exclusions: prefab.DefaultExclusions()},
		Playback: PlaybackConfig{FPS: animation.DefaultFrameRate},
	}
}

// Validate checks the fields the runtime depends on.
func (c *Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("config: project name is empty")
	}
	if c.Assets.Root == "" {
		return fmt.Errorf("config: assets root is empty")
	}
	if c.Clips.Dir == "" {
		return fmt.Errorf("config: clips dir is empty")
	}
	if c.Playback.FPS <= 0 {
		return fmt.Errorf("config: playback fps %d must be positive", c.Playback.FPS)
	}
	return nil
}

// LoadYAML decodes a configuration over the defaults.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadJSON decodes a configuration over the defaults.
func LoadJSON(r io.Reader) (Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config json: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile dispatches on the file extension: .yaml/.yml or .json.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return Config{}, fmt.Errorf("config: unsupported extension %q", filepath.Ext(path))
	}
}
