package schema

import (
	"encoding/json"
	"fmt"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
)

// Wire encodings, one per kind: floats and ints are JSON numbers, vec3 is a
// three-element array, handles are UUID strings.

// DecodeValue parses a raw document value into a Value of the requested
// kind. A payload that does not fit the kind is an error, never a silent
// zero value.
func DecodeValue(kind Kind, raw json.RawMessage) (Value, error) {
	switch kind {
	case KindFloat:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return Value{}, fmt.Errorf("decode float: %w", err)
		}
		return FloatValue(f), nil
	case KindInt:
		var i int64
		if err := json.Unmarshal(raw, &i); err != nil {
			return Value{}, fmt.Errorf("decode int: %w", err)
		}
		return IntValue(i), nil
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, fmt.Errorf("decode bool: %w", err)
		}
		return BoolValue(b), nil
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, fmt.Errorf("decode string: %w", err)
		}
		return StringValue(s), nil
	case KindVec3:
		var arr []float64
		if err := json.Unmarshal(raw, &arr); err != nil {
			return Value{}, fmt.Errorf("decode vec3: %w", err)
		}
		if len(arr) != 3 {
			return Value{}, fmt.Errorf("decode vec3: expected 3 components, got %d", len(arr))
		}
		return Vec3Value(mathf.V3(arr[0], arr[1], arr[2])), nil
	case KindHandle:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, fmt.Errorf("decode handle: %w", err)
		}
		h, err := assets.ParseHandle(s)
		if err != nil {
			return Value{}, fmt.Errorf("decode handle: %w", err)
		}
		return HandleValue(h), nil
	case KindHandleList:
		var ss []string
		if err := json.Unmarshal(raw, &ss); err != nil {
			return Value{}, fmt.Errorf("decode handle list: %w", err)
		}
		hs := make([]assets.Handle, len(ss))
		for i, s := range ss {
			h, err := assets.ParseHandle(s)
			if err != nil {
				return Value{}, fmt.Errorf("decode handle list [%d]: %w", i, err)
			}
			hs[i] = h
		}
		return HandleListValue(hs), nil
	default:
		return Value{}, fmt.Errorf("decode: unsupported kind %s", kind)
	}
}

// EncodeValue renders a Value into its wire form.
func EncodeValue(v Value) (json.RawMessage, error) {
	switch v.kind {
	case KindFloat, KindInt, KindBool, KindString:
		return json.Marshal(v.raw)
	case KindVec3:
		vec, _ := v.AsVec3()
		return json.Marshal([3]float64{vec.X, vec.Y, vec.Z})
	case KindHandle:
		h, _ := v.AsHandle()
		return json.Marshal(h.String())
	case KindHandleList:
		hs, _ := v.AsHandleList()
		ss := make([]string, len(hs))
		for i, h := range hs {
			ss[i] = h.String()
		}
		return json.Marshal(ss)
	default:
		return nil, fmt.Errorf("encode: unsupported kind %s", v.kind)
	}
}
