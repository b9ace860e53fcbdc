package schema

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateType   = errors.New("component type already registered")
	ErrUnknownType     = errors.New("unknown component type")
	ErrUnknownProperty = errors.New("unknown property")
	ErrKindMismatch    = errors.New("value kind does not match property kind")
	ErrWrongComponent  = errors.New("value is not an instance of this component type")
)

// Property is one named, type-erased accessor pair on a component. Get and
// Set are closures over the concrete component struct; both must reject an
// instance of the wrong concrete type with ErrWrongComponent and Set must
// reject a Value of the wrong kind with ErrKindMismatch.
type Property struct {
	Name string
	Kind Kind
	Get  func(comp any) (Value, error)
	Set  func(comp any, v Value) error
}

// Type describes one component kind: its stable name, a default constructor
// and an ordered property set. Descriptors are built once at startup and
// never mutated afterwards.
type Type struct {
	Name       string
	New        func() any
	Properties []Property
}

// Property returns the named property descriptor.
func (t *Type) Property(name string) (*Property, bool) {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i], true
		}
	}
	return nil, false
}

// Registry holds every registered component type in registration order. It
// is populated once at startup and read-only afterwards, so lookups take no
// lock.
type Registry struct {
	byName map[string]*Type
	order  []*Type
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Type)}
}

// Register adds a type descriptor. Registering the same name twice is an
// error: descriptors are process-global and stable, a second registration
// is always a programming mistake.
func (r *Registry) Register(t *Type) error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("register: type descriptor must have a name")
	}
	if t.New == nil {
		return fmt.Errorf("register %s: type descriptor must have a constructor", t.Name)
	}
	if _, exists := r.byName[t.Name]; exists {
		return fmt.Errorf("register %s: %w", t.Name, ErrDuplicateType)
	}
	seen := make(map[string]struct{}, len(t.Properties))
	for _, p := range t.Properties {
		if p.Name == "" || p.Kind == KindInvalid || p.Get == nil || p.Set == nil {
			return fmt.Errorf("register %s: property %q is incomplete", t.Name, p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("register %s: duplicate property %q", t.Name, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	r.byName[t.Name] = t
	r.order = append(r.order, t)
	return nil
}

// Lookup returns the descriptor for a type name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Types returns every registered descriptor in registration order. The
// returned slice is shared; callers must not modify it.
func (r *Registry) Types() []*Type {
	return r.order
}

func (r *Registry) Len() int {
	return len(r.order)
}
