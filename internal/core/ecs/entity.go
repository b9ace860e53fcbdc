package ecs

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/sceneforge/sceneforge/internal/core/components"
)

// Entity is a weak, generation-checked reference: an index into the owning
// world plus the generation observed at hand-out. It stays valid only while
// the slot's generation matches; after Destroy every old handle reports
// stale instead of touching a recycled entity.
type Entity struct {
	index      uint32
	generation uint32
	world      *World
}

// World returns the owning world, nil for the zero handle.
func (e Entity) World() *World {
	return e.world
}

// Valid reports whether the handle still refers to a live entity.
func (e Entity) Valid() bool {
	if e.world == nil {
		return false
	}
	_, err := e.world.resolve(e)
	return err == nil
}

// ID returns the entity's stable identifier, or uuid.Nil when the handle is
// stale.
func (e Entity) ID() uuid.UUID {
	if e.world == nil {
		return uuid.Nil
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return uuid.Nil
	}
	return identityOf(s)
}

// Name returns the entity's display name, empty when stale.
func (e Entity) Name() string {
	if e.world == nil {
		return ""
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return ""
	}
	if ident, ok := s.components[components.TypeIdentity].(*components.Identity); ok {
		return ident.Name
	}
	return ""
}

// Has reports whether the named component is attached.
func (e Entity) Has(name string) bool {
	if e.world == nil {
		return false
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return false
	}
	_, ok := s.components[name]
	return ok
}

// Get returns the attached component instance. Callers must check the error
// before use; a missing component is an error, not a nil.
func (e Entity) Get(name string) (any, error) {
	if e.world == nil {
		return nil, ErrStaleEntity
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return nil, err
	}
	comp, ok := s.components[name]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", name, ErrMissingComponent)
	}
	return comp, nil
}

// Add attaches a default-constructed instance of the named type and returns
// it for further initialization.
func (e Entity) Add(name string) (any, error) {
	if e.world == nil {
		return nil, ErrStaleEntity
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return nil, err
	}
	typ, ok := e.world.schema.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("add %s: %w", name, ErrUnknownType)
	}
	if _, exists := s.components[name]; exists {
		return nil, fmt.Errorf("add %s: %w", name, ErrDuplicateComponent)
	}
	comp := typ.New()
	s.components[name] = comp
	return comp, nil
}

// Remove detaches the named component.
func (e Entity) Remove(name string) error {
	if e.world == nil {
		return ErrStaleEntity
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return err
	}
	if _, ok := s.components[name]; !ok {
		return fmt.Errorf("remove %s: %w", name, ErrMissingComponent)
	}
	delete(s.components, name)
	return nil
}

// Components returns the attached component type names, sorted for
// determinism.
func (e Entity) Components() []string {
	if e.world == nil {
		return nil
	}
	s, err := e.world.resolve(e)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
