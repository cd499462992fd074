package search

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field selects which name column of a record a search runs against.
type Field int

const (
	FieldName Field = iota
	FieldParentName
	FieldSpouseName
)

// spousePlaceholder marks records with no spouse in the roll data
const spousePlaceholder = "-"

// Record is one voter row. The shadow fields are the NFC-normalized
// lower-cased forms of the name columns, derived once when the
// dataset loads and never independently mutated.
type Record struct {
	VoterNumber int    `json:"voter_number"`
	Name        string `json:"name"`
	ParentName  string `json:"parent_name"`
	SpouseName  string `json:"spouse_name"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	HasAge      bool   `json:"has_age"`

	nameShadow   string
	parentShadow string
	spouseShadow string
}

// Normalize maps text to the canonical comparison form: trimmed,
// lower-cased, NFC-composed. Visually identical Devanagari strings
// then compare byte-equal.
func Normalize(text string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(text)))
}

// Prepare computes the shadow fields for a freshly loaded record set.
func Prepare(records []Record) []Record {
	for i := range records {
		records[i].reindex()
	}
	return records
}

func (r *Record) reindex() {
	r.nameShadow = Normalize(r.Name)
	r.parentShadow = Normalize(r.ParentName)
	r.spouseShadow = Normalize(r.SpouseName)
}

func (r *Record) shadow(field Field) string {
	switch field {
	case FieldParentName:
		return r.parentShadow
	case FieldSpouseName:
		return r.spouseShadow
	default:
		return r.nameShadow
	}
}
