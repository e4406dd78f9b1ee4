// Package fixedwidth renders values into exact-width text fields for
// positional record formats.
package fixedwidth

import (
	"strings"
	"unicode/utf8"
)

// PadNumeric right-justifies value in a zero-filled field of exactly width
// runes. Longer values keep their rightmost width runes. The value is never
// interpreted as a number: "-5" at width 3 becomes "0-5".
func PadNumeric(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return lastRunes(value, n, width)
	}
	return strings.Repeat("0", width-n) + value
}

// PadText left-justifies value in a space-filled field of exactly width runes.
// Longer values keep their leftmost width runes.
func PadText(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return firstRunes(value, width)
	}
	return value + strings.Repeat(" ", width-n)
}

// Upper uppercases value without padding.
func Upper(value string) string {
	return strings.ToUpper(value)
}

func firstRunes(s string, width int) string {
	if width <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == width {
			return s[:pos]
		}
		i++
	}
	return s
}

func lastRunes(s string, n, width int) string {
	if width <= 0 {
		return ""
	}
	skip := n - width
	i := 0
	for pos := range s {
		if i == skip {
			return s[pos:]
		}
		i++
	}
	return s
}
