package assets

import (
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/sceneforge/sceneforge/internal/core/observability/log"
)

// Manager maps asset handles to their source paths and tracks content
// fingerprints for change detection. Guarded by a mutex because the library
// scan registers assets from several goroutines; every other caller is the
// single editor thread.
type Manager struct {
	mu     sync.RWMutex
	logger log.Log

	paths  map[Handle]string
	byPath map[string]Handle
	prints map[Handle]uint64
}

func NewManager(logger log.Log) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Manager{
		logger: logger.With(log.String("component", "assets")),
		paths:  make(map[Handle]string),
		byPath: make(map[string]Handle),
		prints: make(map[Handle]uint64),
	}
}

// Register assigns a handle to a source path. Registering the same path
// again returns the existing handle; handles are stable for the session.
func (m *Manager) Register(path string) (Handle, error) {
	if path == "" {
		return Handle{}, ErrEmptyPath
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.byPath[path]; ok {
		return h, nil
	}
	h := NewHandle()
	m.paths[h] = path
	m.byPath[path] = h
	m.logger.Debug("Asset registered",
		log.String("handle", h.String()),
		log.String("path", path))
	return h, nil
}

// SourcePath resolves a handle back to its registered path.
func (m *Manager) SourcePath(h Handle) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path, ok := m.paths[h]
	if !ok {
		return "", fmt.Errorf("%s: %w", h, ErrUnknownHandle)
	}
	return path, nil
}

// ReadDocument loads the asset's current on-disk content. No caching: a
// master prefab is read fresh on every synchronization pass.
func (m *Manager) ReadDocument(h Handle) ([]byte, error) {
	path, err := m.SourcePath(h)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", h, err)
	}
	return data, nil
}

// Fingerprint hashes the asset's current content.
func (m *Manager) Fingerprint(h Handle) (uint64, error) {
	data, err := m.ReadDocument(h)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// Modified reports whether the asset's content changed since the last call
// and records the new fingerprint. An asset never seen before counts as
// modified.
func (m *Manager) Modified(h Handle) (bool, error) {
	print, err := m.Fingerprint(h)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	last, seen := m.prints[h]
	m.prints[h] = print
	return !seen || last != print, nil
}

// Handles returns every registered handle. Order is unspecified.
func (m *Manager) Handles() []Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Handle, 0, len(m.paths))
	for h := range m.paths {
		out = append(out, h)
	}
	return out
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.paths)
}
