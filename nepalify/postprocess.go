package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"strings"
	"unicode"
)

const halantRune = '्'

// RemoveTrailingHalant deletes a halant that sits immediately before
// whitespace or the end of the string. Generic transliteration
// over-applies vowel suppression at word boundaries; a word-final
// halant is incorrect in Nepali (रम् -> रम).
func RemoveTrailingHalant(text string) string {
	if text == "" {
		return text
	}

	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))

	for i, r := range runes {
		if r == halantRune {
			if i == len(runes)-1 || unicode.IsSpace(runes[i+1]) {
				continue
			}
		}
		out.WriteRune(r)
	}
	return out.String()
}

// applyCorrections overrides transliteration output with entries from
// the correction lookup. The whole phrase wins over per-word fixes;
// per-word fixes only apply when Roman and Devanagari word counts
// agree, otherwise the output is left alone.
func applyCorrections(lookup map[string]string, roman, output string) string {
	if roman == "" || output == "" {
		return output
	}

	if corrected, ok := lookup[strings.ToLower(strings.TrimSpace(roman))]; ok {
		return corrected
	}

	romanWords := strings.Fields(roman)
	outputWords := strings.Fields(output)
	if len(romanWords) != len(outputWords) {
		return output
	}

	changed := false
	for i, word := range romanWords {
		if corrected, ok := lookup[strings.ToLower(word)]; ok {
			outputWords[i] = corrected
			changed = true
		}
	}
	if !changed {
		return output
	}
	return strings.Join(outputWords, " ")
}

// PostProcess applies the Nepali-specific cleanup steps to
// transliteration output: trailing halant removal, then correction
// table substitution against the original Roman input.
func (c *Converter) PostProcess(output, originalRoman string) string {
	if output == "" {
		return output
	}

	output = RemoveTrailingHalant(output)

	if originalRoman != "" {
		output = applyCorrections(c.correctionLookup, originalRoman, output)
	}
	return output
}
