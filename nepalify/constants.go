package nepalify

// Halant (virama) suppresses the inherent vowel of a consonant
const Halant = "्"

/* Devanagari Unicode block */
const devanagariRangeStart = 0x0900
const devanagariRangeEnd = 0x097F

/* Longest Roman pattern lengths the scanner will attempt */
const patternLongestLength = 4
const matraLongestLength = 3

/* Name dictionary categories. Entries are applied in this
order, a later category wins for a duplicate Roman key. */
const CATEGORY_FIRST_NAME = 1
const CATEGORY_SURNAME = 2
const CATEGORY_PLACE = 3

// DefaultCacheSize bounds the conversion memoization cache
const DefaultCacheSize = 1000

// DefaultLearnedNamesFile is the well-known learned-names resource name
const DefaultLearnedNamesFile = "voter_names_db.json"
