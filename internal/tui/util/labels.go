package util

import (
	"strings"
	"unicode"
)

// Ellipsis marks a shortened label.
const Ellipsis = "…"

// Fit shortens s to at most width runes for tick labels and titles. It cuts
// at the last space when one exists in the first half, otherwise mid-word,
// and marks the cut with an ellipsis.
func Fit(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}
	limit := width - 1
	boundary := -1
	for i := 0; i < limit; i++ {
		if unicode.IsSpace(r[i]) {
			boundary = i
		}
	}
	if boundary >= limit/2 {
		return strings.TrimSpace(string(r[:boundary])) + Ellipsis
	}
	return string(r[:limit]) + Ellipsis
}

// PadLeft right-aligns s in width runes, shortening it with Fit first.
func PadLeft(s string, width int) string {
	s = Fit(s, width)
	if n := runeLen(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// runeLen returns the length of s in runes (Unicode code points).
func runeLen(s string) int {
	return len([]rune(s))
}
