package fjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectInsertionOrderIteration(t *testing.T) {
	obj := NewObject()
	defer Release(obj)

	keys := []string{"z", "a", "m", "b"}
	for i, k := range keys {
		child := NewInt(int64(i))
		obj.ObjectSet(k, child)
		Release(child)
	}

	var seen []string
	for it := obj.ObjectBegin(); !it.Equal(obj.ObjectEnd()); it.Next() {
		seen = append(seen, it.PeekKey())
	}
	assert.Equal(t, keys, seen, "iteration must preserve insertion order, not key sort order")
}

func TestObjectGetDistinguishesMissingFromNull(t *testing.T) {
	obj := NewObject()
	defer Release(obj)

	obj.ObjectSet("present", nil)

	v, ok := obj.ObjectGet("present")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = obj.ObjectGet("absent")
	assert.False(t, ok)
}

func TestObjectDeletePreservesRemainingOrder(t *testing.T) {
	obj := NewObject()
	defer Release(obj)

	for _, k := range []string{"a", "b", "c"} {
		obj.ObjectSet(k, nil)
	}
	require.True(t, obj.ObjectDelete("b"))
	assert.False(t, obj.ObjectHas("b"))

	var seen []string
	for it := obj.ObjectBegin(); !it.Equal(obj.ObjectEnd()); it.Next() {
		seen = append(seen, it.PeekKey())
	}
	assert.Equal(t, []string{"a", "c"}, seen)
}

func TestObjectSetTakesOwnReference(t *testing.T) {
	obj := NewObject()
	defer Release(obj)

	child := NewString("v")
	obj.ObjectSet("k", child)
	assert.Equal(t, int64(2), child.RefCount())
	Release(child)
	assert.Equal(t, int64(1), child.RefCount())
}
