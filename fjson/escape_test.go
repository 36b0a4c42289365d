package fjson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteEscapedPassesThroughPlainRuns(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteEscaped(&buf, []byte("hello world"))
	assert.NoError(t, err)
	assert.Equal(t, len("hello world"), n)
	assert.Equal(t, "hello world", buf.String())
}

func TestWriteEscapedControlAndQuoteChars(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteEscaped(&buf, []byte("a\"b\\c/d\nreturn\r\ttab"))
	assert.NoError(t, err)
	assert.Equal(t, "a\\\"b\\\\c\\/d\\nreturn\\r\\ttab", buf.String())
}

func TestWriteEscapedUnicodeControlByteUsesHexEscape(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteEscaped(&buf, []byte{0x01})
	assert.NoError(t, err)
	assert.Equal(t, "\\u0001", buf.String())
}

func TestWriteEscapedEmbeddedNulIsEscapedNotTruncated(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteEscaped(&buf, []byte("a\x00b"))
	assert.NoError(t, err)
	assert.Equal(t, "a\\u0000b", buf.String())
}

func TestWriteEscapedCStringStopsAtFirstNul(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteEscapedCString(&buf, []byte("a\x00b"))
	assert.NoError(t, err)
	assert.Equal(t, "a", buf.String())
}
