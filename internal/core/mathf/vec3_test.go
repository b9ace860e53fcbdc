package mathf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	require.Equal(t, V3(5, 7, 9), a.Add(b))
	require.Equal(t, V3(3, 3, 3), b.Sub(a))
	require.Equal(t, V3(2, 4, 6), a.Scale(2))
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -10, 30)

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
	require.Equal(t, V3(5, -5, 15), a.Lerp(b, 0.5))
}

func TestVec3Distance(t *testing.T) {
	require.Equal(t, 5.0, V3(0, 3, 0).DistanceTo(V3(4, 0, 0)))
	require.Equal(t, 0.0, One().DistanceTo(One()))
}

func TestVec3AlmostEquals(t *testing.T) {
	a := V3(1, 1, 1)
	require.True(t, a.AlmostEquals(V3(1.0000001, 1, 1), 1e-6))
	require.False(t, a.AlmostEquals(V3(1.1, 1, 1), 1e-6))
}
