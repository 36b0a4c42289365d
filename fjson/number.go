/****************************************************************************
BSD 3-Clause License

Copyright (c) 2021, 🍀☀🌕🌥 🌊
All rights reserved.
****************************************************************************/

package fjson

import (
	"math"
	"strconv"
	"strings"
)

// FormatInt64 renders n as the shortest unambiguous signed decimal form.
func FormatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatFloat64 renders f as NaN/±Infinity for the corresponding special
// values, otherwise a round-trip-safe decimal form with a trailing ".0"
// appended when the natural rendering would otherwise look like an
// integer. When noTrailingZero is set, trailing zeros after the decimal
// point are dropped, keeping at least one digit after the point (see
// trimTrailingZero).
func FormatFloat64(f float64, noTrailingZero bool) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	// strconv's shortest round-trip form ('g', -1) gives the minimal
	// digit count that reparses to f exactly.
	s := strconv.FormatFloat(f, 'g', -1, 64)
	s = strings.Replace(s, ",", ".", 1) // locale comma, never produced by strconv but kept for parity
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	if noTrailingZero {
		s = trimTrailingZero(s)
	}
	return s
}

// FormatDoubleFromText renders the preserved original textual form a
// Value constructed via NewDoubleFromString carries: emitted verbatim,
// except that noTrailingZero still trims it exactly like a freshly
// formatted double would be trimmed.
func FormatDoubleFromText(text string, noTrailingZero bool) string {
	if noTrailingZero {
		return trimTrailingZero(text)
	}
	return text
}

// trimTrailingZero retains exactly one zero after the decimal point and
// drops the rest: "1.250000" -> "1.25", "1.0" -> "1.0". Strings without a
// decimal point, or in exponential notation, are returned unchanged.
func trimTrailingZero(s string) string {
	if strings.ContainsAny(s, "eE") {
		return s
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+2 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}
