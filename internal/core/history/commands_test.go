package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

func newCommandWorld(t *testing.T) *ecs.World {
	t.Helper()
	reg := schema.NewRegistry()
	require.NoError(t, components.RegisterAll(reg))
	return ecs.NewWorld(reg, nil)
}

// create, undo, redo yields an entity with the original identifier
func TestCreateEntityIdentityPreserved(t *testing.T) {
	w := newCommandWorld(t)
	m := NewManager(nil)

	cmd := NewCreateEntityCommand(w, "Goblin")
	require.NoError(t, m.Submit(cmd))

	id := cmd.EntityID()
	e, ok := cmd.Entity()
	require.True(t, ok)
	require.Equal(t, id, e.ID())
	require.Equal(t, 1, w.Len())

	require.NoError(t, m.Undo())
	require.Equal(t, 0, w.Len())
	_, ok = w.Resolve(id)
	require.False(t, ok)

	require.NoError(t, m.Redo())
	require.Equal(t, 1, w.Len())
	again, ok := w.Resolve(id)
	require.True(t, ok)
	require.Equal(t, id, again.ID(), "redo must reuse the original identifier")
	require.Equal(t, "Goblin", again.Name())
}

func TestCreateEntityUndoAfterExternalDestroy(t *testing.T) {
	w := newCommandWorld(t)
	m := NewManager(nil)

	cmd := NewCreateEntityCommand(w, "Doomed")
	require.NoError(t, m.Submit(cmd))

	e, ok := cmd.Entity()
	require.True(t, ok)
	require.NoError(t, w.Destroy(e))

	// the target is gone; undo reports it and the stack op still completes
	require.ErrorIs(t, m.Undo(), ecs.ErrStaleEntity)
	require.True(t, m.CanRedo())
}

func TestTransformCommandInverse(t *testing.T) {
	w := newCommandWorld(t)
	m := NewManager(nil)

	e, err := w.Create("Crate")
	require.NoError(t, err)
	comp, err := e.Add(components.TypeTransform)
	require.NoError(t, err)
	tr := comp.(*components.Transform)

	old := Placement{Position: mathf.V3(0, 0, 0), Rotation: mathf.V3(0, 0, 0), Scale: mathf.One()}
	next := Placement{Position: mathf.V3(4, 5, 6), Rotation: mathf.V3(0, 90, 0), Scale: mathf.V3(2, 2, 2)}

	cmd := NewTransformEntityCommand(e, old, next)
	require.NoError(t, m.Submit(cmd))
	require.True(t, tr.Position.Equals(next.Position))
	require.True(t, tr.Rotation.Equals(next.Rotation))
	require.True(t, tr.Scale.Equals(next.Scale))

	require.NoError(t, m.Undo())
	require.True(t, tr.Position.Equals(old.Position))
	require.True(t, tr.Scale.Equals(old.Scale))

	require.NoError(t, m.Redo())
	require.True(t, tr.Position.Equals(next.Position))
}

func TestTransformCommandStaleEntity(t *testing.T) {
	w := newCommandWorld(t)
	m := NewManager(nil)

	e, err := w.Create("Gone")
	require.NoError(t, err)
	_, err = e.Add(components.TypeTransform)
	require.NoError(t, err)

	cmd := NewTransformEntityCommand(e, Placement{}, Placement{Scale: mathf.One()})
	require.NoError(t, w.Destroy(e))

	require.ErrorIs(t, m.Submit(cmd), ecs.ErrStaleEntity)
	require.Equal(t, 1, m.UndoLen(), "command is recorded even when the mutation failed")
}

func TestTransformCommandMissingComponent(t *testing.T) {
	w := newCommandWorld(t)
	e, err := w.Create("Bare")
	require.NoError(t, err)

	cmd := NewTransformEntityCommand(e, Placement{}, Placement{Scale: mathf.One()})
	require.ErrorIs(t, cmd.Execute(), ecs.ErrMissingComponent)
}

func TestChangeMaterialSlot(t *testing.T) {
	w := newCommandWorld(t)
	m := NewManager(nil)

	e, err := w.Create("Mesh")
	require.NoError(t, err)
	comp, err := e.Add(components.TypeMeshRenderer)
	require.NoError(t, err)
	mr := comp.(*components.MeshRenderer)

	oldMat, newMat, other := assets.NewHandle(), assets.NewHandle(), assets.NewHandle()
	mr.Materials = []assets.Handle{other, oldMat}

	cmd := NewChangeMaterialSlotCommand(e,
		components.TypeMeshRenderer, components.PropMaterials, 1, oldMat, newMat)

	require.NoError(t, m.Submit(cmd))
	require.Equal(t, newMat, mr.Materials[1])
	require.Equal(t, other, mr.Materials[0], "untouched slot keeps its value")

	require.NoError(t, m.Undo())
	require.Equal(t, oldMat, mr.Materials[1])

	require.NoError(t, m.Redo())
	require.Equal(t, newMat, mr.Materials[1])
}

func TestChangeMaterialSlotOutOfRange(t *testing.T) {
	w := newCommandWorld(t)
	e, err := w.Create("Mesh")
	require.NoError(t, err)
	comp, err := e.Add(components.TypeMeshRenderer)
	require.NoError(t, err)
	comp.(*components.MeshRenderer).Materials = []assets.Handle{assets.NewHandle()}

	cmd := NewChangeMaterialSlotCommand(e,
		components.TypeMeshRenderer, components.PropMaterials, 5,
		assets.Handle{}, assets.NewHandle())
	require.ErrorIs(t, cmd.Execute(), ErrSlotOutOfRange)
}

func TestChangeMaterialSlotWrongProperty(t *testing.T) {
	w := newCommandWorld(t)
	e, err := w.Create("Mesh")
	require.NoError(t, err)
	_, err = e.Add(components.TypeMeshRenderer)
	require.NoError(t, err)

	cmd := NewChangeMaterialSlotCommand(e,
		components.TypeMeshRenderer, components.PropMesh, 0,
		assets.Handle{}, assets.NewHandle())
	require.ErrorIs(t, cmd.Execute(), schema.ErrUnknownProperty)
}
