package schema

import (
	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
)

// Kind enumerates the property kinds the reflection facade can carry.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindInt
	KindBool
	KindString
	KindVec3
	KindHandle
	KindHandleList
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindVec3:
		return "vec3"
	case KindHandle:
		return "handle"
	case KindHandleList:
		return "handle_list"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the supported property kinds. Values are
// immutable once constructed; accessors report false on a kind mismatch
// instead of panicking.
type Value struct {
	kind Kind
	raw  any
}

func FloatValue(v float64) Value {
	return Value{kind: KindFloat, raw: v}
}

func IntValue(v int64) Value {
	return Value{kind: KindInt, raw: v}
}

func BoolValue(v bool) Value {
	return Value{kind: KindBool, raw: v}
}

func StringValue(v string) Value {
	return Value{kind: KindString, raw: v}
}

func Vec3Value(v mathf.Vec3) Value {
	return Value{kind: KindVec3, raw: v}
}

func HandleValue(h assets.Handle) Value {
	return Value{kind: KindHandle, raw: h}
}

// HandleListValue copies the slice so the Value cannot alias caller memory.
func HandleListValue(hs []assets.Handle) Value {
	cp := make([]assets.Handle, len(hs))
	copy(cp, hs)
	return Value{kind: KindHandleList, raw: cp}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

func (v Value) AsFloat() (float64, bool) {
	f, ok := v.raw.(float64)
	return f, ok && v.kind == KindFloat
}

func (v Value) AsInt() (int64, bool) {
	i, ok := v.raw.(int64)
	return i, ok && v.kind == KindInt
}

func (v Value) AsBool() (bool, bool) {
	b, ok := v.raw.(bool)
	return b, ok && v.kind == KindBool
}

func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok && v.kind == KindString
}

func (v Value) AsVec3() (mathf.Vec3, bool) {
	vec, ok := v.raw.(mathf.Vec3)
	return vec, ok && v.kind == KindVec3
}

func (v Value) AsHandle() (assets.Handle, bool) {
	h, ok := v.raw.(assets.Handle)
	return h, ok && v.kind == KindHandle
}

// AsHandleList returns a copy; mutating the result never touches the Value.
func (v Value) AsHandleList() ([]assets.Handle, bool) {
	hs, ok := v.raw.([]assets.Handle)
	if !ok || v.kind != KindHandleList {
		return nil, false
	}
	cp := make([]assets.Handle, len(hs))
	copy(cp, hs)
	return cp, true
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind != KindHandleList {
		return v.raw == other.raw
	}
	a, _ := v.raw.([]assets.Handle)
	b, _ := other.raw.([]assets.Handle)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
