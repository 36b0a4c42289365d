/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

// objectEntry is one key/value pair in an object value, carrying an
// ownership flag for its key: library-owned keys are duplicated on
// insertion, caller-constant keys are retained as-is. Go's garbage
// collector makes the distinction immaterial for memory safety, but it is
// still tracked so ObjectSet/ObjectSetConstant expose a consistent API.
type objectEntry struct {
	key           string
	value         *Value
	keyIsConstant bool
}

// NewObject creates an empty object value with refcount 1.
func NewObject() *Value {
	v := newValue(KindObject)
	v.index = make(map[string]int)
	return v
}

// ObjectLen returns the number of entries in an object value, or 0 for
// null or any non-object kind.
func (v *Value) ObjectLen() int {
	if v == nil || v.kind != KindObject {
		return 0
	}
	return len(v.entries)
}

// ObjectGet looks up key and returns its value (nil for a JSON-null
// entry) and whether the key was present. A lookup miss returns (nil,
// false), so the existence probe and the value lookup stay distinguishable
// even though a present key can map to null.
func (v *Value) ObjectGet(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	idx, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.entries[idx].value, true
}

// ObjectHas reports whether key is present in the object.
func (v *Value) ObjectHas(key string) bool {
	_, ok := v.ObjectGet(key)
	return ok
}

// ObjectSet adds or replaces a key: if key is already present, the
// existing value is released in place and child is installed, keeping the
// original key instance; otherwise a new entry is appended in insertion
// order. child may be nil (JSON null). The object takes a reference on
// child; the caller keeps its own.
func (v *Value) ObjectSet(key string, child *Value) {
	v.objectSet(key, child, false)
}

// ObjectSetConstant is like ObjectSet but, for a new key, marks the key as
// caller-constant instead of library-owned. It has no effect on an
// existing key's ownership flag.
func (v *Value) ObjectSetConstant(key string, child *Value) {
	v.objectSet(key, child, true)
}

func (v *Value) objectSet(key string, child *Value, constant bool) {
	if v == nil || v.kind != KindObject {
		return
	}
	if idx, ok := v.index[key]; ok {
		old := v.entries[idx].value
		v.entries[idx].value = Acquire(child)
		Release(old)
		return
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, &objectEntry{key: key, value: Acquire(child), keyIsConstant: constant})
}

// ObjectDelete removes key if present, releasing its value. It reports
// whether a deletion occurred. Removing a key does not disturb the
// insertion order of the remaining keys.
func (v *Value) ObjectDelete(key string) bool {
	if v == nil || v.kind != KindObject {
		return false
	}
	idx, ok := v.index[key]
	if !ok {
		return false
	}
	Release(v.entries[idx].value)
	v.entries = append(v.entries[:idx], v.entries[idx+1:]...)
	delete(v.index, key)
	for i := idx; i < len(v.entries); i++ {
		v.index[v.entries[i].key] = i
	}
	return true
}

// ObjectIter is an opaque handle over an object's entries, yielding
// insertion order. Its behavior is undefined if the object is mutated
// during iteration — this is documented, not defended against.
type ObjectIter struct {
	obj *Value
	pos int
}

// ObjectBegin returns an iterator positioned at the first entry.
func (v *Value) ObjectBegin() ObjectIter {
	return ObjectIter{obj: v, pos: 0}
}

// ObjectEnd returns the sentinel "one past the last entry" iterator.
func (v *Value) ObjectEnd() ObjectIter {
	if v == nil {
		return ObjectIter{}
	}
	return ObjectIter{obj: v, pos: len(v.entries)}
}

// Equal reports whether it and other denote the same position in the
// same object.
func (it ObjectIter) Equal(other ObjectIter) bool {
	return it.obj == other.obj && it.pos == other.pos
}

// Next advances the iterator by one entry.
func (it *ObjectIter) Next() {
	it.pos++
}

// PeekKey returns the key at the iterator's current position.
func (it ObjectIter) PeekKey() string {
	return it.obj.entries[it.pos].key
}

// PeekValue returns the value at the iterator's current position (nil
// for a JSON-null entry).
func (it ObjectIter) PeekValue() *Value {
	return it.obj.entries[it.pos].value
}
