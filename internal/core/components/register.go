package components

import (
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

// prop builds a type-erased property descriptor from typed closures. The
// set closure returns false when the value's kind does not match.
func prop[C any](name string, kind schema.Kind, get func(*C) schema.Value, set func(*C, schema.Value) bool) schema.Property {
	return schema.Property{
		Name: name,
		Kind: kind,
		Get: func(comp any) (schema.Value, error) {
			c, ok := comp.(*C)
			if !ok {
				return schema.Value{}, schema.ErrWrongComponent
			}
			return get(c), nil
		},
		Set: func(comp any, v schema.Value) error {
			c, ok := comp.(*C)
			if !ok {
				return schema.ErrWrongComponent
			}
			if !set(c, v) {
				return schema.ErrKindMismatch
			}
			return nil
		},
	}
}

// RegisterAll registers every built-in component type with the schema
// registry. Called once at engine start, before any world exists.
func RegisterAll(reg *schema.Registry) error {
	types := []*schema.Type{
		{
			Name: TypeIdentity,
			New:  func() any { return &Identity{} },
			Properties: []schema.Property{
				prop(PropName, schema.KindString,
					func(c *Identity) schema.Value { return schema.StringValue(c.Name) },
					func(c *Identity, v schema.Value) bool {
						s, ok := v.AsString()
						if ok {
							c.Name = s
						}
						return ok
					}),
			},
		},
		{
			Name: TypeSceneInfo,
			New:  func() any { return &SceneInfo{} },
			Properties: []schema.Property{
				prop(PropScene, schema.KindString,
					func(c *SceneInfo) schema.Value { return schema.StringValue(c.Scene) },
					func(c *SceneInfo, v schema.Value) bool {
						s, ok := v.AsString()
						if ok {
							c.Scene = s
						}
						return ok
					}),
			},
		},
		{
			Name: TypePrefabLink,
			New:  func() any { return &PrefabLink{} },
			Properties: []schema.Property{
				prop(PropMaster, schema.KindHandle,
					func(c *PrefabLink) schema.Value { return schema.HandleValue(c.Master) },
					func(c *PrefabLink, v schema.Value) bool {
						h, ok := v.AsHandle()
						if ok {
							c.Master = h
						}
						return ok
					}),
			},
		},
		{
			Name:       TypeParent,
			New:        func() any { return &Parent{} },
			Properties: nil,
		},
		{
			Name:       TypeChildren,
			New:        func() any { return &Children{} },
			Properties: nil,
		},
		{
			Name: TypeTransform,
			New:  func() any { return NewTransform() },
			Properties: []schema.Property{
				prop(PropPosition, schema.KindVec3,
					func(c *Transform) schema.Value { return schema.Vec3Value(c.Position) },
					func(c *Transform, v schema.Value) bool {
						vec, ok := v.AsVec3()
						if ok {
							c.Position = vec
						}
						return ok
					}),
				prop(PropRotation, schema.KindVec3,
					func(c *Transform) schema.Value { return schema.Vec3Value(c.Rotation) },
					func(c *Transform, v schema.Value) bool {
						vec, ok := v.AsVec3()
						if ok {
							c.Rotation = vec
						}
						return ok
					}),
				prop(PropScale, schema.KindVec3,
					func(c *Transform) schema.Value { return schema.Vec3Value(c.Scale) },
					func(c *Transform, v schema.Value) bool {
						vec, ok := v.AsVec3()
						if ok {
							c.Scale = vec
						}
						return ok
					}),
			},
		},
		{
			Name: TypeTag,
			New:  func() any { return &Tag{} },
			Properties: []schema.Property{
				prop(PropName, schema.KindString,
					func(c *Tag) schema.Value { return schema.StringValue(c.Name) },
					func(c *Tag, v schema.Value) bool {
						s, ok := v.AsString()
						if ok {
							c.Name = s
						}
						return ok
					}),
			},
		},
		{
			Name: TypeMeshRenderer,
			New:  func() any { return &MeshRenderer{} },
			Properties: []schema.Property{
				prop(PropMesh, schema.KindString,
					func(c *MeshRenderer) schema.Value { return schema.StringValue(c.Mesh) },
					func(c *MeshRenderer, v schema.Value) bool {
						s, ok := v.AsString()
						if ok {
							c.Mesh = s
						}
						return ok
					}),
				prop(PropMaterials, schema.KindHandleList,
					func(c *MeshRenderer) schema.Value { return schema.HandleListValue(c.Materials) },
					func(c *MeshRenderer, v schema.Value) bool {
						hs, ok := v.AsHandleList()
						if ok {
							c.Materials = hs
						}
						return ok
					}),
				prop(PropCastShadows, schema.KindBool,
					func(c *MeshRenderer) schema.Value { return schema.BoolValue(c.CastShadows) },
					func(c *MeshRenderer, v schema.Value) bool {
						b, ok := v.AsBool()
						if ok {
							c.CastShadows = b
						}
						return ok
					}),
			},
		},
		{
			Name: TypeAudioSource,
			New:  func() any { return &AudioSource{} },
			Properties: []schema.Property{
				prop(PropClip, schema.KindHandle,
					func(c *AudioSource) schema.Value { return schema.HandleValue(c.Clip) },
					func(c *AudioSource, v schema.Value) bool {
						h, ok := v.AsHandle()
						if ok {
							c.Clip = h
						}
						return ok
					}),
				prop(PropVolume, schema.KindFloat,
					func(c *AudioSource) schema.Value { return schema.FloatValue(c.Volume) },
					func(c *AudioSource, v schema.Value) bool {
						f, ok := v.AsFloat()
						if ok {
							c.Volume = f
						}
						return ok
					}),
				prop(PropLoop, schema.KindBool,
					func(c *AudioSource) schema.Value { return schema.BoolValue(c.Loop) },
					func(c *AudioSource, v schema.Value) bool {
						b, ok := v.AsBool()
						if ok {
							c.Loop = b
						}
						return ok
					}),
			},
		},
		{
			Name: TypeAnimator,
			New:  func() any { return NewAnimator() },
			Properties: []schema.Property{
				prop(PropCurrentClip, schema.KindString,
					func(c *Animator) schema.Value { return schema.StringValue(c.CurrentClip) },
					func(c *Animator, v schema.Value) bool {
						s, ok := v.AsString()
						if ok {
							c.CurrentClip = s
						}
						return ok
					}),
				prop(PropPlaybackSpeed, schema.KindFloat,
					func(c *Animator) schema.Value { return schema.FloatValue(c.PlaybackSpeed) },
					func(c *Animator, v schema.Value) bool {
						f, ok := v.AsFloat()
						if ok {
							c.PlaybackSpeed = f
						}
						return ok
					}),
			},
		},
	}

	for _, t := range types {
		if err := reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Registered property names. Master documents and the override ledger use
// these as keys.
const (
	PropName          = "Name"
	PropScene         = "Scene"
	PropMaster        = "Master"
	PropPosition      = "Position"
	PropRotation      = "Rotation"
	PropScale         = "Scale"
	PropMesh          = "Mesh"
	PropMaterials     = "Materials"
	PropCastShadows   = "CastShadows"
	PropClip          = "Clip"
	PropVolume        = "Volume"
	PropLoop          = "Loop"
	PropCurrentClip   = "CurrentClip"
	PropPlaybackSpeed = "PlaybackSpeed"
)
