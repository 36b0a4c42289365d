package fluent

import (
	"testing"

	"github.com/kcenon/go_fjson/fjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectBuilderChaining(t *testing.T) {
	v, err := NewObjectBuilder().
		WithString("name", "widget").
		WithInt("count", 3).
		WithBool("active", true).
		Build()
	require.NoError(t, err)
	defer fjson.Release(v)

	s, err := v.ToStringFlags(0)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"widget","count":3,"active":true}`, s)
}

func TestArrayBuilderChaining(t *testing.T) {
	a := fjson.NewInt(1)
	b := fjson.NewInt(2)
	defer fjson.Release(a)
	defer fjson.Release(b)

	v, err := NewArrayBuilder().Append(a).Append(b).Build()
	require.NoError(t, err)
	defer fjson.Release(v)

	s, err := v.ToStringFlags(0)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, s)
}

func TestObjectBuilderDoesNotLeakReferences(t *testing.T) {
	child := fjson.NewString("x")
	obj, err := NewObjectBuilder().With("k", child).Build()
	require.NoError(t, err)

	// The builder's own acquire must have been released once Build installs
	// child into obj: only obj's ownership reference should remain besides
	// the caller's original.
	assert.Equal(t, int64(2), child.RefCount())

	fjson.Release(obj)
	assert.Equal(t, int64(1), child.RefCount())
	fjson.Release(child)
}
