/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

// escapeTable classifies each byte as "must escape" (true) or "pass
// through" (false): a fixed 256-entry lookup table built once, walked
// with a sliding cursor that flushes runs of pass-through bytes verbatim
// (see DESIGN.md for the buffer design this is grounded on).
var escapeTable [256]bool

const hexDigits = "0123456789abcdef"

func init() {
	for i := 0; i < 0x20; i++ {
		escapeTable[i] = true
	}
	escapeTable['"'] = true
	escapeTable['\\'] = true
	escapeTable['/'] = true
}

var shortEscapes = [256]string{
	'\b': `\b`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\f': `\f`,
	'"':  `\"`,
	'\\': `\\`,
	'/':  `\/`,
}

// WriteEscaped writes s to w with JSON string escaping applied, without
// surrounding quotes, and returns the number of bytes written. It is
// length-aware: embedded NUL bytes are escaped like any other control
// byte rather than terminating the walk, so it is safe for binary
// content.
func WriteEscaped(w Sink, s []byte) (int, error) {
	total := 0
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !escapeTable[c] {
			continue
		}
		if i > start {
			n, err := w.Write(s[start:i])
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err := writeEscapeByte(w, c)
		total += n
		if err != nil {
			return total, err
		}
		start = i + 1
	}
	if start < len(s) {
		n, err := w.Write(s[start:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteEscapedCString is the C-string-compatible variant of WriteEscaped:
// it treats the first 0x00 byte as a stream terminator and stops there
// instead of escaping it. This is a known limitation — callers with
// possibly-embedded-NUL content must use WriteEscaped instead.
func WriteEscapedCString(w Sink, s []byte) (int, error) {
	if i := indexZero(s); i >= 0 {
		s = s[:i]
	}
	return WriteEscaped(w, s)
}

func indexZero(s []byte) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return -1
}

func writeEscapeByte(w Sink, c byte) (int, error) {
	if esc := shortEscapes[c]; esc != "" {
		return writeString(w, esc)
	}
	buf := [6]byte{'\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F]}
	return w.Write(buf[:])
}
