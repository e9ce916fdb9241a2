// Package textutil provides the character classification and length helpers
// shared by the filter and normalizer implementations. All functions are pure
// and allocation-free.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// IsASCIIRune reports whether r is a 7-bit ASCII code point.
func IsASCIIRune(r rune) bool {
	return r < utf8.RuneSelf
}

// IsASCII reports whether every byte of s is 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ASCIICount returns the number of ASCII runes in s.
func ASCIICount(s string) int {
	n := 0
	for _, r := range s {
		if r < utf8.RuneSelf {
			n++
		}
	}
	return n
}

// IsHanRune reports whether r is a CJK Unified Ideograph.
func IsHanRune(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// HasHan reports whether s contains at least one CJK Unified Ideograph.
func HasHan(s string) bool {
	for _, r := range s {
		if IsHanRune(r) {
			return true
		}
	}
	return false
}

// LengthFunc measures the length of a sentence. Filters take length functions
// as plain configuration values so the same bound can count characters for
// Chinese and whitespace tokens for English.
type LengthFunc func(s string) int

// RuneCount counts Unicode code points. The default length function.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// WordCount counts whitespace-delimited tokens. Suited to space-separated
// languages.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
