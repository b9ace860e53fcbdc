package prefab

import (
	"encoding/json"
	"fmt"

	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

// Capture builds a master document from a live entity: the "create prefab
// from entity" editor action. Structural types stay out of the document the
// same way they stay out of synchronization.
func Capture(e ecs.Entity, reg *schema.Registry, excl Exclusions) (*Document, error) {
	if !e.Valid() {
		return nil, ecs.ErrStaleEntity
	}

	doc := &Document{Components: make(map[string]map[string]json.RawMessage)}
	for _, typ := range reg.Types() {
		if excl.SkipType(typ.Name) {
			continue
		}
		if !e.Has(typ.Name) {
			continue
		}
		comp, err := e.Get(typ.Name)
		if err != nil {
			return nil, err
		}

		props := make(map[string]json.RawMessage, len(typ.Properties))
		for i := range typ.Properties {
			p := &typ.Properties[i]
			path := components.OverridePath(typ.Name, p.Name)
			if excl.SkipProperty(path) {
				continue
			}
			value, err := p.Get(comp)
			if err != nil {
				return nil, fmt.Errorf("capture %s: %w", path, err)
			}
			raw, err := schema.EncodeValue(value)
			if err != nil {
				return nil, fmt.Errorf("capture %s: %w", path, err)
			}
			props[p.Name] = raw
		}
		doc.Components[typ.Name] = props
	}
	return doc, nil
}
