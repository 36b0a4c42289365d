package di

import (
	"testing"

	"github.com/kcenon/go_fjson/fjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValueFactoryBuildsUsableValues(t *testing.T) {
	var factory ValueFactory = NewValueFactory()

	obj := factory.NewObject()
	defer fjson.Release(obj)
	assert.Equal(t, fjson.KindObject, obj.Kind())

	arr := factory.NewArray()
	defer fjson.Release(arr)
	assert.Equal(t, fjson.KindArray, arr.Kind())
}

func TestDefaultValueFactoryBuilders(t *testing.T) {
	var factory ValueFactory = NewValueFactory()

	v, err := factory.NewObjectBuilder().WithInt("n", 1).Build()
	require.NoError(t, err)
	defer fjson.Release(v)

	got, ok := v.ObjectGet("n")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.AsInt64())
}
