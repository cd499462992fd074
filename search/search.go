package search

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	"strings"

	"github.com/khojproject/nepalify/nepalify"
)

// Searcher filters voter records by Devanagari name columns. Roman
// queries are converted before matching, so searching "ram" and "राम"
// give the same result set.
type Searcher struct {
	converter *nepalify.Converter
}

// NewSearcher wraps a converter for query normalization.
func NewSearcher(converter *nepalify.Converter) *Searcher {
	return &Searcher{converter: converter}
}

// normalizeQuery converts and canonicalizes a user query.
// Empty result means "match everything".
func (s *Searcher) normalizeQuery(ctx context.Context, query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return Normalize(s.converter.SmartConvertContext(ctx, query))
}

// ByPrefix keeps records whose selected field starts with the query.
// An empty or whitespace query returns records unchanged.
func (s *Searcher) ByPrefix(ctx context.Context, records []Record, field Field, query string) []Record {
	normalized := s.normalizeQuery(ctx, query)
	if normalized == "" {
		return records
	}

	var results []Record
	for _, record := range records {
		if strings.HasPrefix(record.shadow(field), normalized) {
			results = append(results, record)
		}
	}
	return results
}

// Ordered keeps records whose selected field contains the query's
// characters as a subsequence in order, with arbitrary characters
// permitted between them.
func (s *Searcher) Ordered(ctx context.Context, records []Record, field Field, query string) []Record {
	normalized := s.normalizeQuery(ctx, query)
	if normalized == "" {
		return records
	}

	queryRunes := []rune(normalized)

	var results []Record
	for _, record := range records {
		if isOrderedSubsequence(queryRunes, record.shadow(field)) {
			results = append(results, record)
		}
	}
	return results
}

// isOrderedSubsequence is a two-pointer scan, equivalent to matching
// the regex built by joining escaped query characters with ".*" but
// without compiling one per query.
func isOrderedSubsequence(query []rune, target string) bool {
	if len(query) == 0 {
		return true
	}

	i := 0
	for _, r := range target {
		if r == query[i] {
			i++
			if i == len(query) {
				return true
			}
		}
	}
	return false
}

// ByVoterNumber keeps records with the exact voter number.
func ByVoterNumber(records []Record, number int) []Record {
	var results []Record
	for _, record := range records {
		if record.VoterNumber == number {
			results = append(results, record)
		}
	}
	return results
}

// Filters is the advanced multi-field search input. Empty string
// fields are skipped; all present filters combine with AND.
type Filters struct {
	Name       string
	ParentName string
	SpouseName string

	// Gender filters by equality when non-empty.
	Gender string

	// MinAge and MaxAge bound the age range when FilterAge is set.
	// Records without a known age are always excluded from an age
	// filtered result.
	FilterAge bool
	MinAge    int
	MaxAge    int
}

// Advanced applies every non-empty filter as an independent
// predicate ANDed across fields.
func (s *Searcher) Advanced(ctx context.Context, records []Record, filters Filters) []Record {
	name := s.normalizeQuery(ctx, filters.Name)
	parent := s.normalizeQuery(ctx, filters.ParentName)
	spouse := s.normalizeQuery(ctx, filters.SpouseName)
	gender := strings.TrimSpace(filters.Gender)

	var results []Record
	for _, record := range records {
		if name != "" && !strings.HasPrefix(record.nameShadow, name) {
			continue
		}
		if parent != "" && !strings.HasPrefix(record.parentShadow, parent) {
			continue
		}
		if spouse != "" {
			if record.SpouseName == spousePlaceholder ||
				!strings.HasPrefix(record.spouseShadow, spouse) {
				continue
			}
		}
		if gender != "" && record.Gender != gender {
			continue
		}
		if filters.FilterAge {
			if !record.HasAge || record.Age < filters.MinAge || record.Age > filters.MaxAge {
				continue
			}
		}
		results = append(results, record)
	}
	return results
}
