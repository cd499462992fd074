package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"strings"

	"github.com/derekparker/trie"
)

// Engine is the last-resort phonetic converter: a greedy longest-match
// scanner turning one lower-cased Roman word into a best-effort
// Devanagari approximation.
type Engine struct {
	specials   *trie.Trie
	consonants *trie.Trie
	vowels     *trie.Trie
	matras     *trie.Trie

	// TrailingHalant appends an explicit halant to a word-final
	// consonant instead of leaving the inherent vowel. Off by default;
	// the post-processor strips word-final halants anyway.
	TrailingHalant bool
}

// NewEngine builds the pattern tries from the static tables.
func NewEngine() *Engine {
	e := &Engine{
		specials:   trie.New(),
		consonants: trie.New(),
		vowels:     trie.New(),
		matras:     trie.New(),
	}
	for pattern, value := range specialTable {
		e.specials.Add(pattern, value)
	}
	for pattern, value := range consonantTable {
		e.consonants.Add(pattern, value)
	}
	for pattern, value := range vowelTable {
		e.vowels.Add(pattern, value)
	}
	for pattern, value := range matraTable {
		e.matras.Add(pattern, value)
	}
	return e
}

func findPattern(t *trie.Trie, pattern string) (string, bool) {
	node, ok := t.Find(pattern)
	if !ok {
		return "", false
	}
	value, ok := node.Meta().(string)
	return value, ok
}

// TransliterateWord converts a single lower-cased Roman word.
// Multi-word input is split by the caller; no cross-word context is
// used. Unmappable characters pass through unchanged.
//
// At each position substring lengths are tried longest first
// (maximal munch). At equal length specials beat consonants beat
// vowels. A matched consonant looks ahead for a matra; a following
// consonant gets a halant in between.
func (e *Engine) TransliterateWord(word string) string {
	runes := []rune(word)

	var out strings.Builder
	out.Grow(len(word) * 3)

	i := 0
	for i < len(runes) {
		matched := false

		maxLen := patternLongestLength
		if rest := len(runes) - i; rest < maxLen {
			maxLen = rest
		}

		for length := maxLen; length >= 1; length-- {
			seg := string(runes[i : i+length])

			if value, ok := findPattern(e.specials, seg); ok {
				out.WriteString(value)
				i += length
				matched = true
				break
			}

			if value, ok := findPattern(e.consonants, seg); ok {
				out.WriteString(value)
				i += length

				if matra, matraLen := e.matchMatra(runes, i); matraLen > 0 {
					out.WriteString(matra)
					i += matraLen
				} else if i < len(runes) {
					if e.startsConsonant(runes, i) {
						out.WriteString(Halant)
					}
				} else if e.TrailingHalant {
					out.WriteString(Halant)
				}
				matched = true
				break
			}

			if value, ok := findPattern(e.vowels, seg); ok {
				out.WriteString(value)
				i += length
				matched = true
				break
			}
		}

		if !matched {
			out.WriteRune(runes[i])
			i++
		}
	}

	return out.String()
}

// matchMatra finds the longest dependent vowel sign at position i.
// Returns length 0 when none matches. The inherent vowel "a" matches
// with an empty sign and length 1.
func (e *Engine) matchMatra(runes []rune, i int) (string, int) {
	maxLen := matraLongestLength
	if rest := len(runes) - i; rest < maxLen {
		maxLen = rest
	}

	for length := maxLen; length >= 1; length-- {
		if value, ok := findPattern(e.matras, string(runes[i:i+length])); ok {
			return value, length
		}
	}
	return "", 0
}

// startsConsonant reports whether any consonant pattern begins at i.
func (e *Engine) startsConsonant(runes []rune, i int) bool {
	maxLen := patternLongestLength
	if rest := len(runes) - i; rest < maxLen {
		maxLen = rest
	}

	for length := maxLen; length >= 1; length-- {
		if _, ok := e.consonants.Find(string(runes[i : i+length])); ok {
			return true
		}
	}
	return false
}
