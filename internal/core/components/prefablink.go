package components

import (
	"github.com/sceneforge/sceneforge/internal/core/assets"
)

// OverridePath builds the ledger key for one property of one component.
func OverridePath(typeName, propertyName string) string {
	return typeName + "/" + propertyName
}

// PrefabLink ties an entity to the prefab master it was instantiated from
// and carries the override ledger: the property paths and component names
// the user has deliberately diverged from the master. The synchronizer only
// reads the ledger; marking happens on direct user edits in the editor.
type PrefabLink struct {
	Master assets.Handle

	// Properties lists "Type/Property" paths that must never be
	// overwritten by synchronization.
	Properties []string

	// Components lists component type names the user added locally;
	// synchronization must not remove them even when absent from the
	// master.
	Components []string
}

// IsPropertyOverridden answers whether the path is protected from
// synchronization overwrite.
func (l *PrefabLink) IsPropertyOverridden(path string) bool {
	for _, p := range l.Properties {
		if p == path {
			return true
		}
	}
	return false
}

// IsLocallyAdded answers whether the component was added by the user rather
// than the master.
func (l *PrefabLink) IsLocallyAdded(typeName string) bool {
	for _, c := range l.Components {
		if c == typeName {
			return true
		}
	}
	return false
}

// MarkPropertyOverridden records a property divergence. Idempotent.
func (l *PrefabLink) MarkPropertyOverridden(path string) {
	if !l.IsPropertyOverridden(path) {
		l.Properties = append(l.Properties, path)
	}
}

// MarkLocallyAdded records a locally added component. Idempotent.
func (l *PrefabLink) MarkLocallyAdded(typeName string) {
	if !l.IsLocallyAdded(typeName) {
		l.Components = append(l.Components, typeName)
	}
}

// ClearPropertyOverride drops the path from the ledger, re-enabling
// synchronization for it.
func (l *PrefabLink) ClearPropertyOverride(path string) {
	for i, p := range l.Properties {
		if p == path {
			l.Properties = append(l.Properties[:i], l.Properties[i+1:]...)
			return
		}
	}
}

// ClearLocallyAdded drops the component name from the ledger.
func (l *PrefabLink) ClearLocallyAdded(typeName string) {
	for i, c := range l.Components {
		if c == typeName {
			l.Components = append(l.Components[:i], l.Components[i+1:]...)
			return
		}
	}
}
