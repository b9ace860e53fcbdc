package prefab

import (
	"github.com/sceneforge/sceneforge/internal/core/components"
)

// Exclusions is the reviewable rule set deciding which component types and
// property paths synchronization must keep its hands off. It is plain data
// so projects can adjust it from configuration instead of code.
type Exclusions struct {
	// SkipTypes are never considered by synchronization at all: identity,
	// scene bookkeeping and the override ledger itself.
	SkipTypes []string `yaml:"skip_types" json:"skip_types"`

	// NoAutoAdd are types the add rule must not attach even when the
	// master defines them; hierarchy links are built by scene logic, not
	// by reconciliation.
	NoAutoAdd []string `yaml:"no_auto_add" json:"no_auto_add"`

	// Protected are types the remove rule must never detach.
	Protected []string `yaml:"protected" json:"protected"`

	// SkipProperties are "Type/Property" paths never written by property
	// sync.
	SkipProperties []string `yaml:"skip_properties" json:"skip_properties"`
}

// DefaultExclusions covers the built-in structural component set.
func DefaultExclusions() Exclusions {
	return Exclusions{
		SkipTypes: []string{
			components.TypeIdentity,
			components.TypeSceneInfo,
			components.TypePrefabLink,
		},
		NoAutoAdd: []string{
			components.TypeParent,
			components.TypeChildren,
		},
		Protected: []string{
			components.TypeParent,
			components.TypeChildren,
		},
	}
}

func (x Exclusions) SkipType(name string) bool {
	return contains(x.SkipTypes, name)
}

func (x Exclusions) NoAutoAddType(name string) bool {
	return contains(x.NoAutoAdd, name)
}

func (x Exclusions) ProtectedType(name string) bool {
	return contains(x.Protected, name)
}

func (x Exclusions) SkipProperty(path string) bool {
	return contains(x.SkipProperties, path)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
