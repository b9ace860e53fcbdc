package animation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sceneforge/sceneforge/internal/core/assets"
)

var ErrClipExists = errors.New("clip with this name already exists")

// SavePath returns the on-disk location for a named clip in a clip
// directory.
func SavePath(dir, name string) string {
	return filepath.Join(dir, name+assets.ExtClip)
}

// Exists reports whether a clip with the name is already saved in dir.
func Exists(dir, name string) bool {
	_, err := os.Stat(SavePath(dir, name))
	return err == nil
}

// SaveClip writes the clip to its path in dir. Saving over an existing file
// of the same name is ErrClipExists; the caller decides whether to ask the
// user and retry with overwrite.
func SaveClip(dir string, clip *Clip, overwrite bool) error {
	if err := clip.Validate(); err != nil {
		return err
	}
	if !overwrite && Exists(dir, clip.Name) {
		return fmt.Errorf("save clip %q: %w", clip.Name, ErrClipExists)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save clip %q: %w", clip.Name, err)
	}

	data, err := json.MarshalIndent(clip, "", "  ")
	if err != nil {
		return fmt.Errorf("save clip %q: %w", clip.Name, err)
	}
	if err := os.WriteFile(SavePath(dir, clip.Name), data, 0o644); err != nil {
		return fmt.Errorf("save clip %q: %w", clip.Name, err)
	}
	return nil
}

// LoadClip reads a clip file.
func LoadClip(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load clip: %w", err)
	}
	var clip Clip
	if err := json.Unmarshal(data, &clip); err != nil {
		return nil, fmt.Errorf("load clip %s: %w", path, err)
	}
	if err := clip.Validate(); err != nil {
		return nil, fmt.Errorf("load clip %s: %w", path, err)
	}
	return &clip, nil
}

// DeleteClip removes the saved clip file. Deleting a clip that was never
// saved is not an error.
func DeleteClip(dir, name string) error {
	err := os.Remove(SavePath(dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete clip %q: %w", name, err)
	}
	return nil
}
