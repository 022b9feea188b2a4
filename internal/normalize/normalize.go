// Package normalize derives typed values from raw Unihan field strings.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// firstToken returns the first whitespace-separated token of s, or "".
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// RadicalStroke splits a kRSUnicode value such as "149.2" into the radical
// number and the additional stroke count. Only the first of several values is
// used. A value without a dot is a bare radical with zero additional strokes.
// Anything unparseable yields (nil, nil).
func RadicalStroke(raw string) (radical, additional *int) {
	value := firstToken(raw)
	if value == "" {
		return nil, nil
	}

	radicalStr, strokeStr, hasDot := strings.Cut(value, ".")
	r, err := strconv.Atoi(radicalStr)
	if err != nil {
		return nil, nil
	}
	if !hasDot {
		zero := 0
		return &r, &zero
	}

	s, err := strconv.Atoi(strokeStr)
	if err != nil {
		return nil, nil
	}
	return &r, &s
}

// TotalStrokes parses the first value of a kTotalStrokes field.
func TotalStrokes(raw string) *int {
	n, err := strconv.Atoi(firstToken(raw))
	if err != nil {
		return nil
	}
	return &n
}

// Codepoint decodes a hex codepoint (without "U+") into its rune.
func Codepoint(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing codepoint %q: %w", hex, err)
	}
	r := rune(n)
	if n > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("codepoint %q is not a unicode scalar value", hex)
	}
	return r, nil
}

// FormatCodepoint renders a hex codepoint with the "U+" prefix used as the
// unihan table key.
func FormatCodepoint(hex string) string {
	return "U+" + hex
}
