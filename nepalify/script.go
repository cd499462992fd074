package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"strings"
	"unicode"
)

// IsDevanagari reports whether text contains at least one character
// in the Devanagari Unicode block (U+0900 - U+097F).
// Empty or whitespace-only input is not Devanagari.
func IsDevanagari(text string) bool {
	for _, r := range text {
		if r >= devanagariRangeStart && r <= devanagariRangeEnd {
			return true
		}
	}
	return false
}

// IsRoman reports whether text consists only of ASCII letters, digits,
// whitespace and the punctuation - . , / after trimming.
// Empty input is not Roman.
//
// IsRoman and IsDevanagari are not complements: a string containing
// neither script (emoji, say) fails both, and callers attempt
// conversion anyway.
func IsRoman(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '.' || r == ',' || r == '/':
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return true
}
