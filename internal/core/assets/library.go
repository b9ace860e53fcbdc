package assets

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sceneforge/sceneforge/internal/core/observability/log"
	"github.com/sceneforge/sceneforge/pkg/concurrent"
	"github.com/sceneforge/sceneforge/pkg/sequence"
)

// Editor asset file extensions picked up by a library scan.
const (
	ExtPrefab = ".prefab"
	ExtClip   = ".clip"
)

// Library walks a project's asset tree and registers every recognized asset
// file with the manager.
type Library struct {
	manager *Manager
	logger  log.Log
	exts    []string
}

func NewLibrary(manager *Manager, logger log.Log) *Library {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Library{
		manager: manager,
		logger:  logger.With(log.String("component", "library")),
		exts:    []string{ExtPrefab, ExtClip},
	}
}

// Scan collects matching files under root and registers them. The walk is
// sequential; registration fans out since project trees can be large.
// Returns the number of assets registered.
func (l *Library) Scan(ctx context.Context, root string) (int, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if l.matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = concurrent.Concurrent(sequence.From(paths), func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := l.manager.Register(path)
		return err
	})
	if err != nil {
		return 0, err
	}

	l.logger.Info("Asset scan complete",
		log.String("root", root),
		log.Int("assets", len(paths)))
	return len(paths), nil
}

func (l *Library) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range l.exts {
		if ext == e {
			return true
		}
	}
	return false
}
