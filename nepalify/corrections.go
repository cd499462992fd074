package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

// Words the generic transliteration gets wrong, keyed by the correct
// Devanagari form with their known Roman spellings.
var corrections = map[string][]string{
	"दृष्टि":    {"dristi", "dristri", "drishti", "dristti"},
	"श्री":      {"shri", "sri", "shree"},
	"श्रीमती":   {"shrimati", "shrimathi", "srimati"},
	"श्याम":     {"shyam", "syam", "shyama"},
	"कृष्ण":     {"krishna", "krisna", "krishn"},
	"लक्ष्मी":   {"laxmi", "lakshmi", "laxami", "laksmi"},
	"राम":       {"ram", "raam", "rama"},
	"सीता":      {"sita", "seeta", "sitaa"},
	"गीता":      {"gita", "geeta", "gitaa"},
	"प्रकाश":    {"prakash", "prakas", "prakasa"},
	"विक्रम":    {"bikram", "vikram"},
	"नेपाल":     {"nepal", "nepala"},
	"काठमाडौं":  {"kathmandu", "kathmandau"},
}

// buildCorrectionLookup inverts the variant lists into a Roman key
// lookup. A variant listed under two words keeps the later one;
// map iteration order makes this arbitrary, which matches how the
// data is curated (variants are expected to be unique).
func buildCorrectionLookup(table map[string][]string) map[string]string {
	lookup := make(map[string]string, len(table)*3)
	for devanagari, variants := range table {
		for _, variant := range variants {
			lookup[variant] = devanagari
		}
	}
	return lookup
}
