package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

func TestRegisterAll(t *testing.T) {
	reg := schema.NewRegistry()
	require.NoError(t, RegisterAll(reg))

	for _, name := range []string{
		TypeIdentity, TypeSceneInfo, TypePrefabLink, TypeParent, TypeChildren,
		TypeTransform, TypeTag, TypeMeshRenderer, TypeAudioSource, TypeAnimator,
	} {
		require.True(t, reg.Has(name), "missing %s", name)
	}

	// second registration on the same registry must fail, not silently
	// redefine descriptors
	require.ErrorIs(t, RegisterAll(reg), schema.ErrDuplicateType)
}

func TestTransformDescriptorRoundTrip(t *testing.T) {
	reg := schema.NewRegistry()
	require.NoError(t, RegisterAll(reg))

	typ, ok := reg.Lookup(TypeTransform)
	require.True(t, ok)

	comp := typ.New()
	tr, ok := comp.(*Transform)
	require.True(t, ok)
	require.True(t, tr.Scale.Equals(mathf.One()), "default scale must be one")

	pos, ok := typ.Property(PropPosition)
	require.True(t, ok)
	require.NoError(t, pos.Set(comp, schema.Vec3Value(mathf.V3(1, 2, 3))))
	require.True(t, tr.Position.Equals(mathf.V3(1, 2, 3)))

	v, err := pos.Get(comp)
	require.NoError(t, err)
	got, ok := v.AsVec3()
	require.True(t, ok)
	require.True(t, got.Equals(mathf.V3(1, 2, 3)))

	require.ErrorIs(t, pos.Set(comp, schema.BoolValue(true)), schema.ErrKindMismatch)
	require.ErrorIs(t, pos.Set(&Tag{}, schema.Vec3Value(mathf.V3(0, 0, 0))), schema.ErrWrongComponent)
}

func TestMeshRendererMaterialsDescriptor(t *testing.T) {
	reg := schema.NewRegistry()
	require.NoError(t, RegisterAll(reg))

	typ, _ := reg.Lookup(TypeMeshRenderer)
	comp := typ.New().(*MeshRenderer)

	a, b := assets.NewHandle(), assets.NewHandle()
	matProp, ok := typ.Property(PropMaterials)
	require.True(t, ok)
	require.Equal(t, schema.KindHandleList, matProp.Kind)

	require.NoError(t, matProp.Set(comp, schema.HandleListValue([]assets.Handle{a, b})))
	require.Equal(t, []assets.Handle{a, b}, comp.Materials)
}

func TestPrefabLinkLedger(t *testing.T) {
	link := &PrefabLink{Master: assets.NewHandle()}

	path := OverridePath(TypeTransform, PropPosition)
	require.Equal(t, "Transform/Position", path)
	require.False(t, link.IsPropertyOverridden(path))

	link.MarkPropertyOverridden(path)
	link.MarkPropertyOverridden(path) // idempotent
	require.True(t, link.IsPropertyOverridden(path))
	require.Len(t, link.Properties, 1)

	link.ClearPropertyOverride(path)
	require.False(t, link.IsPropertyOverridden(path))

	require.False(t, link.IsLocallyAdded(TypeAudioSource))
	link.MarkLocallyAdded(TypeAudioSource)
	link.MarkLocallyAdded(TypeAudioSource)
	require.True(t, link.IsLocallyAdded(TypeAudioSource))
	require.Len(t, link.Components, 1)

	link.ClearLocallyAdded(TypeAudioSource)
	require.False(t, link.IsLocallyAdded(TypeAudioSource))
}
