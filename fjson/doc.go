/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

// Package fjson implements a compact, reference-counted JSON value model
// and its serializer: the in-memory tagged union of JSON kinds, a small
// string optimization for short string payloads, an escape engine driven
// by a byte-classification table, a numeric formatter for integers and
// IEEE-754 doubles, and a layout engine supporting pretty/spaced/compact
// output.
//
// The JSON tokenizer and a generic hash table are treated as collaborators
// rather than reimplemented wholesale here; object storage uses a
// purpose-built insertion-ordered map (see object.go) instead of a generic
// hash table, since ordering object entries by insertion is part of this
// package's contract and a bare hash table cannot provide it. The growable
// print buffer used as a serialization sink lives in the sibling
// fjson/printbuf package.
//
// Values are not garbage collected implicitly: construction returns a
// Value with a reference count of one, and callers must pair every
// Acquire with a Release. This mirrors a reference-counted lifetime model
// even though Go's runtime would otherwise reclaim the memory on its own.
package fjson

// Version is the single version surface this package exposes.
const Version = "1.0.0"
