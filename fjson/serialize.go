/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

import "github.com/kcenon/go_fjson/fjson/printbuf"

// defaultSerializerFor returns the built-in serializer for kind,
// installed by every typed constructor and restored by
// SetSerializer(v, nil, nil, nil).
func defaultSerializerFor(kind Kind) SerializerFunc {
	switch kind {
	case KindBool:
		return serializeBool
	case KindInt:
		return serializeInt
	case KindDouble:
		return serializeDouble
	case KindString:
		return serializeString
	case KindObject:
		return serializeObject
	case KindArray:
		return serializeArray
	default:
		return serializeNull
	}
}

// writeChild dispatches to child's own serializer (or the null default,
// for a nil child): during container recursion, each value is emitted
// through its own per-value serializer, not a single shared function.
func writeChild(child *Value, w Sink, level int, flags Flags) (int, error) {
	if child == nil {
		return serializeNull(nil, w, level, flags)
	}
	return child.serializer(child, w, level, flags)
}

func serializeNull(_ *Value, w Sink, _ int, _ Flags) (int, error) {
	return writeString(w, "null")
}

func serializeBool(v *Value, w Sink, _ int, _ Flags) (int, error) {
	if v.boolVal {
		return writeString(w, "true")
	}
	return writeString(w, "false")
}

func serializeInt(v *Value, w Sink, _ int, _ Flags) (int, error) {
	return writeString(w, FormatInt64(v.intVal))
}

func serializeDouble(v *Value, w Sink, _ int, flags Flags) (int, error) {
	noTrailingZero := flags.has(FlagNoTrailingZero)
	if v.hasDoubleText {
		return writeString(w, FormatDoubleFromText(v.doubleText, noTrailingZero))
	}
	return writeString(w, FormatFloat64(v.doubleVal, noTrailingZero))
}

func serializeString(v *Value, w Sink, _ int, _ Flags) (int, error) {
	total := 0
	n, err := writeByte(w, '"')
	total += n
	if err != nil {
		return total, err
	}
	n, err = WriteEscaped(w, v.str.bytes())
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeByte(w, '"')
	total += n
	return total, err
}

// serializeObject implements the object container framing. SPACED's
// per-entry leading space and the closing brace's leading space only
// apply in compact (non-PRETTY) layout: combined with PRETTY, the
// newline and indentation take over that job instead (so
// `PRETTY|PRETTY_TAB|SPACED` produces `{\n\t"abc": 12,...\n}` with no
// extra space); the colon's trailing space, by contrast, is governed by
// SPACED alone, with or without PRETTY.
func serializeObject(v *Value, w Sink, level int, flags Flags) (int, error) {
	total := 0
	pretty := flags.has(FlagPretty)
	spacedCompact := flags.has(FlagSpaced) && !pretty

	n, err := writeByte(w, '{')
	total += n
	if err != nil {
		return total, err
	}
	if pretty {
		n, err = writeByte(w, '\n')
		total += n
		if err != nil {
			return total, err
		}
	}

	first := true
	for it := v.ObjectBegin(); !it.Equal(v.ObjectEnd()); it.Next() {
		if !first {
			n, err = writeByte(w, ',')
			total += n
			if err != nil {
				return total, err
			}
			if pretty {
				n, err = writeByte(w, '\n')
				total += n
				if err != nil {
					return total, err
				}
			}
		}
		first = false

		if spacedCompact {
			n, err = writeByte(w, ' ')
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = writeIndent(w, level+1, flags)
		total += n
		if err != nil {
			return total, err
		}
		n, err = writeByte(w, '"')
		total += n
		if err != nil {
			return total, err
		}
		n, err = WriteEscaped(w, []byte(it.PeekKey()))
		total += n
		if err != nil {
			return total, err
		}
		n, err = writeByte(w, '"')
		total += n
		if err != nil {
			return total, err
		}
		if flags.has(FlagSpaced) {
			n, err = writeString(w, ": ")
		} else {
			n, err = writeByte(w, ':')
		}
		total += n
		if err != nil {
			return total, err
		}
		n, err = writeChild(it.PeekValue(), w, level+1, flags)
		total += n
		if err != nil {
			return total, err
		}
	}

	if pretty && v.ObjectLen() > 0 {
		n, err = writeNewlineIndent(w, level, flags)
		total += n
		if err != nil {
			return total, err
		}
	}
	if spacedCompact {
		n, err = writeString(w, " }")
	} else {
		n, err = writeByte(w, '}')
	}
	total += n
	return total, err
}

// serializeArray mirrors serializeObject's framing with no key/colon.
func serializeArray(v *Value, w Sink, level int, flags Flags) (int, error) {
	total := 0
	pretty := flags.has(FlagPretty)
	spacedCompact := flags.has(FlagSpaced) && !pretty

	n, err := writeByte(w, '[')
	total += n
	if err != nil {
		return total, err
	}
	if pretty {
		n, err = writeByte(w, '\n')
		total += n
		if err != nil {
			return total, err
		}
	}

	for i, elem := range v.elems {
		if i > 0 {
			n, err = writeByte(w, ',')
			total += n
			if err != nil {
				return total, err
			}
			if pretty {
				n, err = writeByte(w, '\n')
				total += n
				if err != nil {
					return total, err
				}
			}
		}
		if spacedCompact {
			n, err = writeByte(w, ' ')
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = writeIndent(w, level+1, flags)
		total += n
		if err != nil {
			return total, err
		}
		n, err = writeChild(elem, w, level+1, flags)
		total += n
		if err != nil {
			return total, err
		}
	}

	if pretty && len(v.elems) > 0 {
		n, err = writeNewlineIndent(w, level, flags)
		total += n
		if err != nil {
			return total, err
		}
	}
	if spacedCompact {
		n, err = writeString(w, " ]")
	} else {
		n, err = writeByte(w, ']')
	}
	total += n
	return total, err
}

// Write serializes v to w under flags and returns the number of bytes
// written, summing whatever the sink's underlying Write calls report. A
// nil v serializes as "null".
func (v *Value) Write(w Sink, flags Flags) (int, error) {
	return writeChild(v, w, 0, flags)
}

// ToStringFlags serializes v under the given flags and returns the
// result as a string, using (and growing) v's cached format buffer so
// repeated calls on the same root avoid reallocating.
func (v *Value) ToStringFlags(flags Flags) (string, error) {
	if v == nil {
		buf := printbuf.New()
		_, err := serializeNull(nil, buf, 0, flags)
		return buf.String(), err
	}
	if v.buf == nil {
		v.buf = printbuf.New()
	} else {
		v.buf.Reset()
	}
	_, err := v.serializer(v, v.buf, 0, flags)
	return v.buf.String(), err
}

// ToString is the simple entry point: it serializes under the default
// flag set, SPACED.
func (v *Value) ToString() (string, error) {
	return v.ToStringFlags(FlagSpaced)
}
