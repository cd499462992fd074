package nepalify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevanagari(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"राम", true},
		{"ram राम", true},
		{"कृष्ण", true},
		{"ram", false},
		{"", false},
		{"   ", false},
		{"123", false},
		{"😀", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsDevanagari(test.input), "input %q", test.input)
	}
}

func TestIsRoman(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"ram", true},
		{"Ram Bahadur", true},
		{"voter-123", true},
		{"a.b,c/d", true},
		{"  ram  ", true},
		{"राम", false},
		{"ram राम", false},
		{"", false},
		{"   ", false},
		{"😀", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsRoman(test.input), "input %q", test.input)
	}
}

// A string in neither script is classified by neither predicate;
// callers attempt conversion anyway rather than erroring.
func TestScriptPredicatesNotComplements(t *testing.T) {
	input := "😀"
	assert.False(t, IsDevanagari(input))
	assert.False(t, IsRoman(input))
}
