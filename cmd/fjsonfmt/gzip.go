package main

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// writeMaybeGzipped writes data to w, gzip-compressing it first when
// compressed is true.
func writeMaybeGzipped(w io.Writer, data []byte, compressed bool) error {
	if !compressed {
		_, err := w.Write(data)
		return err
	}
	gw := gzip.NewWriter(w)
	if _, err := gw.Write(data); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}
