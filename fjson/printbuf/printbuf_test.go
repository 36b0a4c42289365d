package printbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBytesAndString(t *testing.T) {
	b := New()
	b.AppendBytes([]byte("hello "))
	b.AppendBytes([]byte("world"))
	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Len())
}

func TestAppendCharOneByteAtATime(t *testing.T) {
	b := New()
	for _, c := range []byte("abc") {
		b.AppendChar(c)
	}
	assert.Equal(t, "abc", b.String())
}

func TestResetReusesBackingArray(t *testing.T) {
	b := New()
	b.AppendBytes([]byte("first"))
	b.Reset()
	assert.Equal(t, 0, b.Len())
	b.AppendBytes([]byte("second"))
	assert.Equal(t, "second", b.String())
}

func TestWriteImplementsIoWriter(t *testing.T) {
	b := New()
	n, err := b.Write([]byte("via write"))
	assert.NoError(t, err)
	assert.Equal(t, len("via write"), n)
	assert.Equal(t, "via write", b.String())
}

func TestGrowsPastInlineScratch(t *testing.T) {
	b := New()
	big := make([]byte, scratchSize+100)
	for i := range big {
		big[i] = 'x'
	}
	b.AppendBytes(big)
	assert.Equal(t, len(big), b.Len())
	assert.Equal(t, big, b.Bytes())
}

func TestFreeClearsBuffer(t *testing.T) {
	b := New()
	b.AppendBytes([]byte("data"))
	b.Free()
	assert.Equal(t, 0, b.Len())
}
