package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHandleParseRoundTrip(t *testing.T) {
	h := NewHandle()
	require.False(t, h.IsZero())

	back, err := ParseHandle(h.String())
	require.NoError(t, err)
	require.Equal(t, h, back)

	_, err = ParseHandle("garbage")
	require.Error(t, err)

	var zero Handle
	require.True(t, zero.IsZero())
}

func TestRegisterIsStablePerPath(t *testing.T) {
	m := NewManager(nil)

	h1, err := m.Register("scenes/enemy.prefab")
	require.NoError(t, err)
	h2, err := m.Register("scenes/enemy.prefab")
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Equal(t, 1, m.Len())

	path, err := m.SourcePath(h1)
	require.NoError(t, err)
	require.Equal(t, "scenes/enemy.prefab", path)

	_, err = m.Register("")
	require.ErrorIs(t, err, ErrEmptyPath)

	_, err = m.SourcePath(NewHandle())
	require.ErrorIs(t, err, ErrUnknownHandle)
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "e.prefab", `{"Entity":{}}`)

	m := NewManager(nil)
	h, err := m.Register(path)
	require.NoError(t, err)

	data, err := m.ReadDocument(h)
	require.NoError(t, err)
	require.Equal(t, `{"Entity":{}}`, string(data))

	missing, err := m.Register(filepath.Join(dir, "missing.prefab"))
	require.NoError(t, err)
	_, err = m.ReadDocument(missing)
	require.Error(t, err)
}

func TestModifiedTracksContentChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "e.prefab", "v1")

	m := NewManager(nil)
	h, err := m.Register(path)
	require.NoError(t, err)

	// first observation counts as modified: nothing was synced yet
	changed, err := m.Modified(h)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = m.Modified(h)
	require.NoError(t, err)
	require.False(t, changed)

	writeFile(t, dir, "e.prefab", "v2")
	changed, err = m.Modified(h)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = m.Modified(h)
	require.NoError(t, err)
	require.False(t, changed)
}

func TestLibraryScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.prefab", "{}")
	writeFile(t, dir, "sub/b.prefab", "{}")
	writeFile(t, dir, "sub/walk.clip", "{}")
	writeFile(t, dir, "notes.txt", "ignored")

	m := NewManager(nil)
	lib := NewLibrary(m, nil)

	n, err := lib.Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, m.Len())
	require.Len(t, m.Handles(), 3)
}

func TestLibraryScanMissingRoot(t *testing.T) {
	m := NewManager(nil)
	lib := NewLibrary(m, nil)

	_, err := lib.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
