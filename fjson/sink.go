/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

import "io"

// Sink is the serializer's output target: either a growable print buffer
// (fjson/printbuf.Buffer) or a caller-supplied write callback. Both
// shapes are ordinary io.Writer implementations in Go, so Sink is simply
// an alias rather than a bespoke interface.
type Sink = io.Writer

func writeString(w Sink, s string) (int, error) {
	return io.WriteString(w, s)
}

func writeByte(w Sink, c byte) (int, error) {
	return w.Write([]byte{c})
}
