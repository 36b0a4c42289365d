/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

import (
	"sync/atomic"

	"github.com/kcenon/go_fjson/fjson/printbuf"
)

// InlineStringCapacity is the small-string-optimization threshold: string
// payloads shorter than this are stored directly inside the Value header
// instead of in a separately-allocated heap buffer.
const InlineStringCapacity = 15

// stringPayload is a string value's storage: the byte count is
// authoritative and embedded NUL bytes are preserved, whichever of the
// two storage forms is live.
type stringPayload struct {
	length int
	inline [InlineStringCapacity]byte
	heap   []byte
}

func newStringPayload(b []byte) stringPayload {
	sp := stringPayload{length: len(b)}
	if sp.length < InlineStringCapacity {
		copy(sp.inline[:], b)
		return sp
	}
	sp.heap = append([]byte(nil), b...)
	return sp
}

func (sp *stringPayload) bytes() []byte {
	if sp.length < InlineStringCapacity {
		return sp.inline[:sp.length]
	}
	return sp.heap
}

// SerializerFunc is the per-Value serializer hook: it receives the value,
// the current sink, the current indent level and the active layout
// flags, and returns the number of bytes written.
type SerializerFunc func(v *Value, w Sink, level int, flags Flags) (int, error)

// UserDeleteFunc finalizes user data installed via SetSerializer. It runs
// at most once.
type UserDeleteFunc func(v *Value, userData interface{})

// Value is a tagged, reference-counted JSON node. A nil *Value represents
// JSON null: every exported method is safe to call on a nil receiver and
// behaves as the null kind's documented default.
type Value struct {
	kind     Kind
	refcount atomic.Int64

	boolVal   bool
	intVal    int64
	doubleVal float64

	// doubleText, when hasDoubleText is set, is the preserved original
	// textual form installed by NewDoubleFromString. It has a dedicated
	// field rather than living in the generic user_data slot, so that
	// resetting the serializer via SetSerializer(v, nil, nil, nil) cannot
	// accidentally discard it.
	doubleText    string
	hasDoubleText bool

	str stringPayload

	entries []*objectEntry
	index   map[string]int

	elems []*Value

	serializer SerializerFunc
	userData   interface{}
	userDelete UserDeleteFunc

	buf *printbuf.Buffer
}

func newValue(kind Kind) *Value {
	v := &Value{kind: kind}
	v.refcount.Store(1)
	v.serializer = defaultSerializerFor(kind)
	return v
}

// Kind returns the discriminant of v, or KindNull for a nil handle.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether v is the null handle.
func (v *Value) IsNull() bool { return v == nil }

// Acquire increments v's reference count and returns v, so it can be used
// inline at a call site. Acquiring a nil Value is a no-op.
func Acquire(v *Value) *Value {
	if v == nil {
		return nil
	}
	v.refcount.Add(1)
	return v
}

// Release decrements v's reference count. When the count reaches zero it
// runs, in order: any installed UserDeleteFunc, the kind-specific
// destructor (which recursively releases contained values), and the
// generic destructor. It returns 1 if this call triggered destruction, 0
// otherwise (including when v is nil). Recursion into children uses the
// call stack; callers bound nesting depth by bounding input size.
func Release(v *Value) int {
	if v == nil {
		return 0
	}
	if v.refcount.Add(-1) > 0 {
		return 0
	}
	v.destroy()
	return 1
}

// RefCount returns the current reference count. It exists for tests and
// diagnostics; it is not part of the serialization hot path.
func (v *Value) RefCount() int64 {
	if v == nil {
		return 0
	}
	return v.refcount.Load()
}

func (v *Value) destroy() {
	if v.userDelete != nil {
		ud := v.userDelete
		data := v.userData
		v.userDelete = nil
		v.userData = nil
		ud(v, data)
	}
	switch v.kind {
	case KindObject:
		for _, e := range v.entries {
			Release(e.value)
		}
		v.entries = nil
		v.index = nil
	case KindArray:
		for _, e := range v.elems {
			Release(e)
		}
		v.elems = nil
	case KindString:
		v.str = stringPayload{}
	}
	v.buf = nil
}

// SetSerializer installs a custom per-value serializer.
//
// If a prior UserDeleteFunc is installed, it is invoked with the prior
// user data before anything else happens, regardless of v's current
// reference count: resets are not refcount-gated, only the final Release
// is (see DESIGN.md, "Open Questions resolved").
//
// Passing a nil fn restores the kind's default serializer and clears the
// user data slot.
func (v *Value) SetSerializer(fn SerializerFunc, userData interface{}, userDelete UserDeleteFunc) {
	if v == nil {
		return
	}
	if v.userDelete != nil {
		prevDelete := v.userDelete
		prevData := v.userData
		v.userDelete = nil
		v.userData = nil
		prevDelete(v, prevData)
	}
	if fn == nil {
		v.serializer = defaultSerializerFor(v.kind)
		return
	}
	v.serializer = fn
	v.userData = userData
	v.userDelete = userDelete
}
