/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

import "github.com/vmihailenco/msgpack/v5"

// MarshalMsgPack supplements the JSON text serializer with a compact
// binary interchange form: it builds a plain map/slice/primitive tree and
// hands that to msgpack.Marshal rather than writing a bespoke binary
// encoder. Object key order is not preserved across a
// MarshalMsgPack/UnmarshalMsgPack round trip: Go's map type has no
// ordering, so this applies only to the binary form, not the ordered
// JSON text serialization.
func (v *Value) MarshalMsgPack() ([]byte, error) {
	return msgpack.Marshal(v.toNative())
}

// UnmarshalMsgPack decodes data produced by MarshalMsgPack into a fresh
// Value tree with refcount 1.
func UnmarshalMsgPack(data []byte) (*Value, error) {
	var native interface{}
	if err := msgpack.Unmarshal(data, &native); err != nil {
		return nil, err
	}
	return fromNative(native), nil
}

// toNative converts v into the map[string]interface{}/[]interface{}/
// primitive shape msgpack's reflection-based encoder already knows how
// to walk, one conversion per value kind.
func (v *Value) toNative() interface{} {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindDouble:
		return v.doubleVal
	case KindString:
		return string(v.str.bytes())
	case KindArray:
		out := make([]interface{}, 0, len(v.elems))
		for _, e := range v.elems {
			out = append(out, e.toNative())
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.entries))
		for _, e := range v.entries {
			out[e.key] = e.value.toNative()
		}
		return out
	default:
		return nil
	}
}

func fromNative(n interface{}) *Value {
	switch x := n.(type) {
	case nil:
		return nil
	case bool:
		return NewBool(x)
	case string:
		return NewString(x)
	case int64:
		return NewInt(x)
	case int:
		return NewInt(int64(x))
	case float64:
		return NewDouble(x)
	case float32:
		return NewDouble(float64(x))
	case []interface{}:
		arr := NewArray()
		for _, e := range x {
			child := fromNative(e)
			arr.ArrayAppend(child)
			Release(child)
		}
		return arr
	case map[string]interface{}:
		obj := NewObject()
		for k, e := range x {
			child := fromNative(e)
			obj.ObjectSet(k, child)
			Release(child)
		}
		return obj
	default:
		return nil
	}
}
