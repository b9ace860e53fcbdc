package ecs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

// World owns every entity of one open scene. Component instances are stored
// type-erased, keyed by their registered schema type name. Entities are
// created and destroyed only through the world; everything else holds weak
// Entity handles.
//
// The world is single-threaded by contract: the editor mutates one scene
// from one goroutine.
type World struct {
	schema *schema.Registry
	logger log.Log

	slots []slot
	free  []uint32
	byID  map[uuid.UUID]uint32
	alive int
}

type slot struct {
	generation uint32
	live       bool
	components map[string]any
}

func NewWorld(reg *schema.Registry, logger log.Log) *World {
	if logger == nil {
		logger = log.NewNop()
	}
	return &World{
		schema: reg,
		logger: logger.With(log.String("component", "world")),
		byID:   make(map[uuid.UUID]uint32),
	}
}

// Schema returns the component registry the world resolves type names
// against.
func (w *World) Schema() *schema.Registry {
	return w.schema
}

// Create makes a new entity with a fresh identity.
func (w *World) Create(name string) (Entity, error) {
	return w.CreateWithID(uuid.New(), name)
}

// CreateWithID makes a new entity reusing a known identifier. Used by redo
// to preserve identity across a create, undo, redo cycle.
func (w *World) CreateWithID(id uuid.UUID, name string) (Entity, error) {
	if id == uuid.Nil {
		return Entity{}, fmt.Errorf("create entity: nil id")
	}
	if _, exists := w.byID[id]; exists {
		return Entity{}, fmt.Errorf("create entity %s: %w", id, ErrDuplicateID)
	}

	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.slots = append(w.slots, slot{})
		index = uint32(len(w.slots) - 1)
	}

	s := &w.slots[index]
	s.live = true
	s.components = map[string]any{
		components.TypeIdentity: &components.Identity{ID: id, Name: name},
	}

	w.byID[id] = index
	w.alive++

	e := Entity{index: index, generation: s.generation, world: w}
	w.logger.Debug("Entity created",
		log.String("entity_id", id.String()),
		log.String("name", name))
	return e, nil
}

// Destroy removes the entity and frees its slot. The slot's generation is
// bumped so every outstanding handle to it turns stale.
func (w *World) Destroy(e Entity) error {
	s, err := w.resolve(e)
	if err != nil {
		return err
	}

	id := identityOf(s)
	s.live = false
	s.generation++
	s.components = nil

	delete(w.byID, id)
	w.free = append(w.free, e.index)
	w.alive--

	w.logger.Debug("Entity destroyed", log.String("entity_id", id.String()))
	return nil
}

// Resolve returns a live handle for an entity identifier.
func (w *World) Resolve(id uuid.UUID) (Entity, bool) {
	index, ok := w.byID[id]
	if !ok {
		return Entity{}, false
	}
	return Entity{index: index, generation: w.slots[index].generation, world: w}, true
}

// Each visits every live entity. Return false from fn to stop early. The
// visit order is slot order, stable between mutations.
func (w *World) Each(fn func(Entity) bool) {
	for i := range w.slots {
		if !w.slots[i].live {
			continue
		}
		e := Entity{index: uint32(i), generation: w.slots[i].generation, world: w}
		if !fn(e) {
			return
		}
	}
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.alive
}

func (w *World) resolve(e Entity) (*slot, error) {
	if e.world != w || int(e.index) >= len(w.slots) {
		return nil, ErrStaleEntity
	}
	s := &w.slots[e.index]
	if !s.live || s.generation != e.generation {
		return nil, ErrStaleEntity
	}
	return s, nil
}

func identityOf(s *slot) uuid.UUID {
	if ident, ok := s.components[components.TypeIdentity].(*components.Identity); ok {
		return ident.ID
	}
	return uuid.Nil
}
