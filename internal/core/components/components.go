package components

import (
	"github.com/google/uuid"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
)

// Registered component type names. The sync exclusion rules and the world
// refer to components by these names, never by Go type.
const (
	TypeIdentity     = "Identity"
	TypeSceneInfo    = "SceneInfo"
	TypePrefabLink   = "PrefabLink"
	TypeParent       = "Parent"
	TypeChildren     = "Children"
	TypeTransform    = "Transform"
	TypeTag          = "Tag"
	TypeMeshRenderer = "MeshRenderer"
	TypeAudioSource  = "AudioSource"
	TypeAnimator     = "Animator"
)

// Identity carries the stable entity identifier and display name. Attached
// to every entity at creation; never synchronized or removed.
type Identity struct {
	ID   uuid.UUID
	Name string
}

// SceneInfo records which scene owns the entity. Structural bookkeeping,
// excluded from prefab synchronization entirely.
type SceneInfo struct {
	Scene string
}

// Parent links an entity to its hierarchy parent by identity.
type Parent struct {
	Parent uuid.UUID
}

// Children lists the entity's hierarchy children by identity.
type Children struct {
	Children []uuid.UUID
}

// Transform is the entity's placement: position, euler rotation in degrees
// and per-axis scale.
type Transform struct {
	Position mathf.Vec3
	Rotation mathf.Vec3
	Scale    mathf.Vec3
}

func NewTransform() *Transform {
	return &Transform{Scale: mathf.One()}
}

// Tag is a free-form label used by gameplay queries.
type Tag struct {
	Name string
}

// MeshRenderer binds a mesh to a list of material assets. Materials is a
// sequential slot list; the material command addresses slots by index.
type MeshRenderer struct {
	Mesh        string
	Materials   []assets.Handle
	CastShadows bool
}

// AudioSource references an audio clip asset with playback settings.
type AudioSource struct {
	Clip   assets.Handle
	Volume float64
	Loop   bool
}

// Animator holds the entity's animation state. CurrentClip and
// PlaybackSpeed are reflected properties; the playback fields below them
// are runtime-only and never serialized or synchronized.
type Animator struct {
	CurrentClip   string
	PlaybackSpeed float64

	Playing     bool
	Frame       int
	Accumulator float64
}

func NewAnimator() *Animator {
	return &Animator{PlaybackSpeed: 1}
}
