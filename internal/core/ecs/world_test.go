package ecs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	reg := schema.NewRegistry()
	require.NoError(t, components.RegisterAll(reg))
	return NewWorld(reg, nil)
}

func TestCreateAttachesIdentity(t *testing.T) {
	w := newTestWorld(t)

	e, err := w.Create("Player")
	require.NoError(t, err)
	require.True(t, e.Valid())
	require.Equal(t, 1, w.Len())
	require.Equal(t, "Player", e.Name())
	require.NotEqual(t, uuid.Nil, e.ID())
	require.True(t, e.Has(components.TypeIdentity))
}

func TestCreateWithIDAndResolve(t *testing.T) {
	w := newTestWorld(t)
	id := uuid.New()

	e, err := w.CreateWithID(id, "Enemy")
	require.NoError(t, err)
	require.Equal(t, id, e.ID())

	got, ok := w.Resolve(id)
	require.True(t, ok)
	require.Equal(t, id, got.ID())

	_, err = w.CreateWithID(id, "Clone")
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = w.CreateWithID(uuid.Nil, "Nil")
	require.Error(t, err)
}

func TestDestroyTurnsHandlesStale(t *testing.T) {
	w := newTestWorld(t)
	e, err := w.Create("Doomed")
	require.NoError(t, err)
	id := e.ID()

	require.NoError(t, w.Destroy(e))
	require.Equal(t, 0, w.Len())
	require.False(t, e.Valid())
	require.Equal(t, uuid.Nil, e.ID())
	require.ErrorIs(t, w.Destroy(e), ErrStaleEntity)

	_, ok := w.Resolve(id)
	require.False(t, ok)

	_, err = e.Get(components.TypeIdentity)
	require.ErrorIs(t, err, ErrStaleEntity)
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := newTestWorld(t)
	first, err := w.Create("First")
	require.NoError(t, err)
	require.NoError(t, w.Destroy(first))

	// reuses the freed slot, so the old handle must not alias the new one
	second, err := w.Create("Second")
	require.NoError(t, err)
	require.True(t, second.Valid())
	require.False(t, first.Valid())
	require.NotEqual(t, first.ID(), second.ID())
}

func TestComponentAddGetRemove(t *testing.T) {
	w := newTestWorld(t)
	e, err := w.Create("X")
	require.NoError(t, err)

	comp, err := e.Add(components.TypeTransform)
	require.NoError(t, err)
	tr, ok := comp.(*components.Transform)
	require.True(t, ok)
	require.True(t, e.Has(components.TypeTransform))

	got, err := e.Get(components.TypeTransform)
	require.NoError(t, err)
	require.Same(t, any(tr), got)

	_, err = e.Add(components.TypeTransform)
	require.ErrorIs(t, err, ErrDuplicateComponent)

	_, err = e.Add("Nonexistent")
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = e.Get(components.TypeTag)
	require.ErrorIs(t, err, ErrMissingComponent)

	require.NoError(t, e.Remove(components.TypeTransform))
	require.False(t, e.Has(components.TypeTransform))
	require.ErrorIs(t, e.Remove(components.TypeTransform), ErrMissingComponent)
}

func TestEachVisitsLiveEntities(t *testing.T) {
	w := newTestWorld(t)
	a, _ := w.Create("A")
	b, _ := w.Create("B")
	c, _ := w.Create("C")
	require.NoError(t, w.Destroy(b))

	var seen []string
	w.Each(func(e Entity) bool {
		seen = append(seen, e.Name())
		return true
	})
	require.Equal(t, []string{"A", "C"}, seen)

	count := 0
	w.Each(func(Entity) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)

	_ = a
	_ = c
}

func TestComponentsSorted(t *testing.T) {
	w := newTestWorld(t)
	e, _ := w.Create("X")
	_, err := e.Add(components.TypeTransform)
	require.NoError(t, err)
	_, err = e.Add(components.TypeAudioSource)
	require.NoError(t, err)

	require.Equal(t,
		[]string{components.TypeAudioSource, components.TypeIdentity, components.TypeTransform},
		e.Components())
}

func TestZeroEntityIsStale(t *testing.T) {
	var e Entity
	require.False(t, e.Valid())
	require.Equal(t, uuid.Nil, e.ID())
	_, err := e.Get(components.TypeIdentity)
	require.ErrorIs(t, err, ErrStaleEntity)
	_, err = e.Add(components.TypeTag)
	require.ErrorIs(t, err, ErrStaleEntity)
	require.ErrorIs(t, e.Remove(components.TypeTag), ErrStaleEntity)
}
