/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package printbuf provides a growable byte buffer for building
// serialized output incrementally: new/append/reset/free, with a small
// inline scratch array for the common case and geometric growth beyond
// it, so most single-value serializations never touch the heap.
package printbuf

// scratchSize is large enough that most single-value serializations never
// touch the heap.
const scratchSize = 512

// Buffer is a growable byte buffer that implements io.Writer, so it can
// be used directly as a serialization Sink.
type Buffer struct {
	scratch [scratchSize]byte
	buf     []byte
}

// New returns a ready-to-use Buffer backed by its inline scratch space.
func New() *Buffer {
	b := &Buffer{}
	b.buf = b.scratch[:0]
	return b
}

// Reset empties the buffer for reuse without releasing any heap storage
// it may have grown into, so repeated serializations of the same value
// avoid reallocating.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Free releases the buffer's storage. After Free, b must not be reused
// without calling Reset first growing it again from scratch.
func (b *Buffer) Free() {
	b.buf = nil
}

// Write implements io.Writer, growing the backing array geometrically
// when the inline scratch space is exhausted.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// AppendBytes appends p and returns the number of bytes written. It never
// errors.
func (b *Buffer) AppendBytes(p []byte) int {
	b.buf = append(b.buf, p...)
	return len(p)
}

// AppendChar appends a single byte.
func (b *Buffer) AppendChar(c byte) {
	b.buf = append(b.buf, c)
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.buf) }

// Bytes returns the buffer's contents. The returned slice is only valid
// until the next mutating call on b.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the buffer's contents as a string.
func (b *Buffer) String() string { return string(b.buf) }
