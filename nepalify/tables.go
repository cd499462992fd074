package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

// Independent vowel letters, used at word start or after another vowel
var vowelTable = map[string]string{
	"a": "अ", "aa": "आ", "i": "इ", "ii": "ई", "u": "उ", "uu": "ऊ",
	"e": "ए", "ai": "ऐ", "o": "ओ", "au": "औ",
	"ri": "ऋ", "rii": "ॠ",
}

// Dependent vowel signs (matra) attached to a preceding consonant.
// "a" is the inherent vowel and has no visible sign.
var matraTable = map[string]string{
	"a": "", "aa": "ा", "i": "ि", "ii": "ी", "u": "ु", "uu": "ू",
	"e": "े", "ai": "ै", "o": "ो", "au": "ौ",
	"ri": "ृ", "rii": "ॄ",
}

var consonantTable = map[string]string{
	// Velar
	"k": "क", "kh": "ख", "g": "ग", "gh": "घ", "ng": "ङ",
	// Palatal
	"ch": "च", "chh": "छ", "j": "ज", "jh": "झ", "ny": "ञ", "yna": "ञ",
	// Retroflex
	"t": "ट", "th": "ठ", "d": "ड", "dh": "ढ", "n": "ण",
	// Dental
	"ta": "त", "tha": "थ", "da": "द", "dha": "ध", "na": "न",
	// Labial
	"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
	// Approximant
	"y": "य", "r": "र", "l": "ल", "w": "व", "v": "व",
	// Sibilant
	"sh": "श", "shh": "ष", "s": "स",
	// Glottal
	"h": "ह",
	// Conjunct clusters
	"ksh": "क्ष", "tr": "त्र", "gya": "ज्ञ", "jnya": "ज्ञ",
}

// Digits and punctuation with Devanagari equivalents
var specialTable = map[string]string{
	"0": "०", "1": "१", "2": "२", "3": "३", "4": "४",
	"5": "५", "6": "६", "7": "७", "8": "८", "9": "९",
	".": "।", "..": "॥", " ": " ",
}
