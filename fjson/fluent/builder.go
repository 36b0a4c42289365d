/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package fluent provides a chainable builder API for assembling fjson
// object and array values, in place of repeated ObjectSet/ArrayAppend calls.
package fluent

import "github.com/kcenon/go_fjson/fjson"

// ObjectBuilder accumulates key/value pairs for a single object value.
//
// Example usage:
//
//	v, err := fluent.NewObjectBuilder().
//	    WithString("name", "widget").
//	    WithInt("count", 3).
//	    WithBool("active", true).
//	    Build()
type ObjectBuilder struct {
	keys   []string
	values []*fjson.Value
}

// NewObjectBuilder creates an empty ObjectBuilder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{}
}

// With adds key/child to the builder, taking a reference on child. Returns
// the builder for chaining.
func (b *ObjectBuilder) With(key string, child *fjson.Value) *ObjectBuilder {
	b.keys = append(b.keys, key)
	b.values = append(b.values, fjson.Acquire(child))
	return b
}

// WithString is a convenience wrapper around With(key, fjson.NewString(s)).
func (b *ObjectBuilder) WithString(key, s string) *ObjectBuilder {
	v := fjson.NewString(s)
	defer fjson.Release(v)
	return b.With(key, v)
}

// WithInt is a convenience wrapper around With(key, fjson.NewInt(n)).
func (b *ObjectBuilder) WithInt(key string, n int64) *ObjectBuilder {
	v := fjson.NewInt(n)
	defer fjson.Release(v)
	return b.With(key, v)
}

// WithDouble is a convenience wrapper around With(key, fjson.NewDouble(f)).
func (b *ObjectBuilder) WithDouble(key string, f float64) *ObjectBuilder {
	v := fjson.NewDouble(f)
	defer fjson.Release(v)
	return b.With(key, v)
}

// WithBool is a convenience wrapper around With(key, fjson.NewBool(bv)).
func (b *ObjectBuilder) WithBool(key string, bv bool) *ObjectBuilder {
	v := fjson.NewBool(bv)
	defer fjson.Release(v)
	return b.With(key, v)
}

// Build assembles the accumulated entries into a new object value with
// refcount 1, in insertion order, and releases the builder's own references.
func (b *ObjectBuilder) Build() (*fjson.Value, error) {
	obj := fjson.NewObject()
	for i, key := range b.keys {
		obj.ObjectSet(key, b.values[i])
		fjson.Release(b.values[i])
	}
	b.keys = nil
	b.values = nil
	return obj, nil
}

// ArrayBuilder accumulates elements for a single array value.
type ArrayBuilder struct {
	values []*fjson.Value
}

// NewArrayBuilder creates an empty ArrayBuilder.
func NewArrayBuilder() *ArrayBuilder {
	return &ArrayBuilder{}
}

// Append adds child to the end of the builder, taking a reference on it.
// Returns the builder for chaining.
func (b *ArrayBuilder) Append(child *fjson.Value) *ArrayBuilder {
	b.values = append(b.values, fjson.Acquire(child))
	return b
}

// AppendAll appends each of children in order.
func (b *ArrayBuilder) AppendAll(children ...*fjson.Value) *ArrayBuilder {
	for _, c := range children {
		b.Append(c)
	}
	return b
}

// Build assembles the accumulated elements into a new array value with
// refcount 1, and releases the builder's own references.
func (b *ArrayBuilder) Build() (*fjson.Value, error) {
	arr := fjson.NewArray()
	for _, v := range b.values {
		arr.ArrayAppend(v)
		fjson.Release(v)
	}
	b.values = nil
	return arr, nil
}
