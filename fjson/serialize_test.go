package fjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() *Value {
	obj := NewObject()
	abc := NewInt(12)
	obj.ObjectSet("abc", abc)
	Release(abc)
	foo := NewString("bar")
	obj.ObjectSet("foo", foo)
	Release(foo)
	return obj
}

func TestToStringCompactDefault(t *testing.T) {
	v := buildSample()
	defer Release(v)

	s, err := v.ToString()
	require.NoError(t, err)
	assert.Equal(t, `{ "abc": 12, "foo": "bar" }`, s)
}

func TestToStringFlagsPrettyTab(t *testing.T) {
	v := buildSample()
	defer Release(v)

	s, err := v.ToStringFlags(FlagPretty | FlagPrettyTab | FlagSpaced)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"abc\": 12,\n\t\"foo\": \"bar\"\n}", s)
}

func TestToStringFlagsCompactNoSpaced(t *testing.T) {
	v := buildSample()
	defer Release(v)

	s, err := v.ToStringFlags(0)
	require.NoError(t, err)
	assert.Equal(t, `{"abc":12,"foo":"bar"}`, s)
}

func TestToStringNullValue(t *testing.T) {
	var v *Value
	s, err := v.ToStringFlags(0)
	require.NoError(t, err)
	assert.Equal(t, "null", s)
}

func TestToStringIsDeterministic(t *testing.T) {
	v := buildSample()
	defer Release(v)

	first, err := v.ToStringFlags(FlagSpaced)
	require.NoError(t, err)
	second, err := v.ToStringFlags(FlagSpaced)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToStringEmptyObjectAndArray(t *testing.T) {
	obj := NewObject()
	defer Release(obj)
	s, err := obj.ToStringFlags(FlagPretty | FlagSpaced)
	require.NoError(t, err)
	assert.Equal(t, "{\n}", s)

	arr := NewArray()
	defer Release(arr)
	s, err = arr.ToStringFlags(FlagPretty | FlagSpaced)
	require.NoError(t, err)
	assert.Equal(t, "[\n]", s)
}

func TestNestedArrayInsideObject(t *testing.T) {
	obj := NewObject()
	defer Release(obj)

	arr := NewArray()
	one := NewInt(1)
	two := NewInt(2)
	arr.ArrayAppend(one)
	arr.ArrayAppend(two)
	Release(one)
	Release(two)
	obj.ObjectSet("nums", arr)
	Release(arr)

	s, err := obj.ToStringFlags(0)
	require.NoError(t, err)
	assert.Equal(t, `{"nums":[1,2]}`, s)
}

func TestCustomSerializerOverridesDefault(t *testing.T) {
	v := NewInt(42)
	defer Release(v)

	v.SetSerializer(func(val *Value, w Sink, _ int, _ Flags) (int, error) {
		return writeString(w, "\"overridden\"")
	}, nil, nil)

	s, err := v.ToStringFlags(0)
	require.NoError(t, err)
	assert.Equal(t, `"overridden"`, s)
}

func TestMsgPackRoundTripPrimitives(t *testing.T) {
	v := buildSample()
	defer Release(v)

	data, err := v.MarshalMsgPack()
	require.NoError(t, err)

	decoded, err := UnmarshalMsgPack(data)
	require.NoError(t, err)
	defer Release(decoded)

	abc, ok := decoded.ObjectGet("abc")
	require.True(t, ok)
	assert.Equal(t, int64(12), abc.AsInt64())

	foo, ok := decoded.ObjectGet("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", foo.AsString())
}
