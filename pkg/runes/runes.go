package runes

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Returns s without its leading Unicode whitespace.
func TrimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// Splits off the first rune of s. Invalid UTF-8 yields utf8.RuneError and
// consumes a single byte, so the rest is always shorter than s unless s is empty.
func Shift(s string) (rune, string) {
	if s == "" {
		return utf8.RuneError, s
	}
	char, size := utf8.DecodeRuneInString(s)
	return char, s[size:]
}
