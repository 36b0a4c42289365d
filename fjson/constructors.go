/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

// NewBool creates a boolean value with refcount 1.
func NewBool(b bool) *Value {
	v := newValue(KindBool)
	v.boolVal = b
	return v
}

// NewInt creates a signed 64-bit integer value with refcount 1.
func NewInt(n int64) *Value {
	v := newValue(KindInt)
	v.intVal = n
	return v
}

// NewDouble creates a double value with refcount 1, formatted from its
// binary value on demand.
func NewDouble(f float64) *Value {
	v := newValue(KindDouble)
	v.doubleVal = f
	return v
}

// NewDoubleFromString creates a double value whose binary value is d but
// whose textual form is preserved verbatim as text, to be emitted as-is
// on serialization instead of reformatted. The preserved text lives in a
// dedicated field rather than the generic user_data slot, so that
// SetSerializer(v, nil, nil, nil) cannot accidentally discard it.
func NewDoubleFromString(d float64, text string) *Value {
	v := NewDouble(d)
	v.doubleText = text
	v.hasDoubleText = true
	return v
}

// NewString creates a string value from s with refcount 1, using inline
// storage for short strings.
func NewString(s string) *Value {
	return NewStringBytes([]byte(s))
}

// NewStringBytes is like NewString but takes a byte slice directly,
// preserving any embedded NUL bytes.
func NewStringBytes(b []byte) *Value {
	v := newValue(KindString)
	v.str = newStringPayload(b)
	return v
}

// StringBytes returns the raw bytes of a string-kind value (nil for any
// other kind, including null). Use AsString for the cross-kind coercion
// accessor instead.
func (v *Value) StringBytes() []byte {
	if v == nil || v.kind != KindString {
		return nil
	}
	return v.str.bytes()
}

// Len returns the byte length of a string value, the entry count of an
// object, or the element count of an array. It returns 0 for null and for
// any other kind.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindString:
		return v.str.length
	case KindObject:
		return v.ObjectLen()
	case KindArray:
		return v.ArrayLen()
	default:
		return 0
	}
}
