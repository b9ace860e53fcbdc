package history

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

var ErrSlotOutOfRange = errors.New("material slot index out of range")

// CreateEntityCommand creates one entity. Redo reuses the identifier minted
// by the original Execute, so a create, undo, redo cycle preserves entity
// identity.
type CreateEntityCommand struct {
	world *ecs.World
	name  string
	id    uuid.UUID
}

func NewCreateEntityCommand(world *ecs.World, name string) *CreateEntityCommand {
	return &CreateEntityCommand{world: world, name: name}
}

func (c *CreateEntityCommand) Name() string {
	return fmt.Sprintf("Create Entity %q", c.name)
}

func (c *CreateEntityCommand) Execute() error {
	e, err := c.world.Create(c.name)
	if err != nil {
		return err
	}
	c.id = e.ID()
	return nil
}

func (c *CreateEntityCommand) Undo() error {
	e, ok := c.world.Resolve(c.id)
	if !ok {
		return fmt.Errorf("undo create %s: %w", c.id, ecs.ErrStaleEntity)
	}
	return c.world.Destroy(e)
}

func (c *CreateEntityCommand) Redo() error {
	_, err := c.world.CreateWithID(c.id, c.name)
	return err
}

// EntityID returns the identifier minted by Execute.
func (c *CreateEntityCommand) EntityID() uuid.UUID {
	return c.id
}

// Entity re-resolves the created entity.
func (c *CreateEntityCommand) Entity() (ecs.Entity, bool) {
	return c.world.Resolve(c.id)
}

// Placement is one full transform snapshot.
type Placement struct {
	Position mathf.Vec3
	Rotation mathf.Vec3
	Scale    mathf.Vec3
}

// TransformEntityCommand moves, rotates or scales an entity. It stores the
// old and new placements outright, so Undo and Redo are pure writes of the
// recorded state through the reflection facade.
type TransformEntityCommand struct {
	world *ecs.World
	id    uuid.UUID
	old   Placement
	new   Placement
}

func NewTransformEntityCommand(e ecs.Entity, old, new Placement) *TransformEntityCommand {
	return &TransformEntityCommand{world: e.World(), id: e.ID(), old: old, new: new}
}

func (c *TransformEntityCommand) Name() string {
	return "Transform Entity"
}

func (c *TransformEntityCommand) Execute() error {
	return c.apply(c.new)
}

func (c *TransformEntityCommand) Undo() error {
	return c.apply(c.old)
}

func (c *TransformEntityCommand) Redo() error {
	return c.apply(c.new)
}

func (c *TransformEntityCommand) apply(p Placement) error {
	comp, typ, err := resolveComponent(c.world, c.id, components.TypeTransform)
	if err != nil {
		return fmt.Errorf("transform entity: %w", err)
	}
	writes := []struct {
		prop  string
		value schema.Value
	}{
		{components.PropPosition, schema.Vec3Value(p.Position)},
		{components.PropRotation, schema.Vec3Value(p.Rotation)},
		{components.PropScale, schema.Vec3Value(p.Scale)},
	}
	for _, w := range writes {
		prop, ok := typ.Property(w.prop)
		if !ok {
			return fmt.Errorf("transform entity: %s: %w", w.prop, schema.ErrUnknownProperty)
		}
		if err := prop.Set(comp, w.value); err != nil {
			return fmt.Errorf("transform entity: %s: %w", w.prop, err)
		}
	}
	return nil
}

// ChangeMaterialSlotCommand swaps one material slot of a handle-list
// property, addressed by component name, property name and sequential
// index.
type ChangeMaterialSlotCommand struct {
	world     *ecs.World
	id        uuid.UUID
	component string
	property  string
	index     int
	old       assets.Handle
	new       assets.Handle
}

func NewChangeMaterialSlotCommand(e ecs.Entity, component, property string, index int, old, new assets.Handle) *ChangeMaterialSlotCommand {
	return &ChangeMaterialSlotCommand{
		world:     e.World(),
		id:        e.ID(),
		component: component,
		property:  property,
		index:     index,
		old:       old,
		new:       new,
	}
}

func (c *ChangeMaterialSlotCommand) Name() string {
	return fmt.Sprintf("Change Material Slot %d", c.index)
}

func (c *ChangeMaterialSlotCommand) Execute() error {
	return c.apply(c.new)
}

func (c *ChangeMaterialSlotCommand) Undo() error {
	return c.apply(c.old)
}

func (c *ChangeMaterialSlotCommand) Redo() error {
	return c.apply(c.new)
}

func (c *ChangeMaterialSlotCommand) apply(h assets.Handle) error {
	comp, typ, err := resolveComponent(c.world, c.id, c.component)
	if err != nil {
		return fmt.Errorf("change material: %w", err)
	}
	prop, ok := typ.Property(c.property)
	if !ok || prop.Kind != schema.KindHandleList {
		return fmt.Errorf("change material: %s/%s: %w", c.component, c.property, schema.ErrUnknownProperty)
	}

	value, err := prop.Get(comp)
	if err != nil {
		return fmt.Errorf("change material: %w", err)
	}
	slots, ok := value.AsHandleList()
	if !ok {
		return fmt.Errorf("change material: %s/%s: %w", c.component, c.property, schema.ErrKindMismatch)
	}
	if c.index < 0 || c.index >= len(slots) {
		return fmt.Errorf("change material: slot %d of %d: %w", c.index, len(slots), ErrSlotOutOfRange)
	}

	slots[c.index] = h
	if err := prop.Set(comp, schema.HandleListValue(slots)); err != nil {
		return fmt.Errorf("change material: %w", err)
	}
	return nil
}

// resolveComponent re-derives a live component and its descriptor from a
// weak entity reference. Commands never cache either across calls.
func resolveComponent(world *ecs.World, id uuid.UUID, typeName string) (any, *schema.Type, error) {
	e, ok := world.Resolve(id)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", id, ecs.ErrStaleEntity)
	}
	comp, err := e.Get(typeName)
	if err != nil {
		return nil, nil, err
	}
	typ, ok := world.Schema().Lookup(typeName)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %w", typeName, ecs.ErrUnknownType)
	}
	return comp, typ, nil
}
