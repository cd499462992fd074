package nepalify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()

	// A path that never exists keeps the learned store empty
	converter, err := New(Config{
		LearnedPaths: []string{filepath.Join(t.TempDir(), "absent.json")},
	})
	require.NoError(t, err)
	return converter
}

func TestSmartConvertIdempotent(t *testing.T) {
	converter := newTestConverter(t)

	for _, devanagari := range []string{"राम", "सीता", "श्रीराम", "कृष्ण बहादुर"} {
		assert.Equal(t, devanagari, converter.SmartConvert(devanagari))
	}
}

func TestSmartConvertTotality(t *testing.T) {
	converter := newTestConverter(t)

	for _, input := range []string{"", "   ", "\t\n", "😀", "---", "a"} {
		assert.NotPanics(t, func() { converter.SmartConvert(input) })
	}

	assert.Equal(t, "", converter.SmartConvert(""))
	assert.Equal(t, "   ", converter.SmartConvert("   "))
}

func TestDictionaryPrecedence(t *testing.T) {
	converter := newTestConverter(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"ram", "राम"},
		{"shyam", "श्याम"},
		{"krishna", "कृष्ण"},
		{"shrestha", "श्रेष्ठ"},
		{"kathmandu", "काठमाडौं"},
		{"laxmi", "लक्ष्मी"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, converter.SmartConvert(test.input), "input %q", test.input)
	}
}

func TestWholePhraseCorrection(t *testing.T) {
	converter := newTestConverter(t)

	// Any casing and padding of a correction-table variant
	assert.Equal(t, "दृष्टि", converter.SmartConvert("dristri"))
	assert.Equal(t, "दृष्टि", converter.SmartConvert("DRISTRI"))
	assert.Equal(t, "दृष्टि", converter.SmartConvert("  Dristri  "))
}

func TestMultiWordConversion(t *testing.T) {
	converter := newTestConverter(t)

	assert.Equal(t, "राम बहादुर", converter.SmartConvert("ram bahadur"))
	assert.Equal(t, "सीता देवी", converter.SmartConvert("sita devi"))
	assert.Equal(t, "राम बहादुर श्रेष्ठ", converter.SmartConvert("ram bahadur shrestha"))
}

func TestPhoneticFallback(t *testing.T) {
	converter := newTestConverter(t)

	result := converter.SmartConvert("ramxyz123")
	assert.True(t, IsDevanagari(result), "got %q", result)
	assert.Contains(t, result, "रम")
	assert.Contains(t, result, "१२३")
}

func TestConvertResultFlag(t *testing.T) {
	converter := newTestConverter(t)
	ctx := context.Background()

	converted := converter.ConvertResult(ctx, "ram")
	assert.True(t, converted.Converted)
	assert.Equal(t, "ram", converted.Input)
	assert.Equal(t, "राम", converted.Output)

	unchanged := converter.ConvertResult(ctx, "राम")
	assert.False(t, unchanged.Converted)
	assert.Equal(t, "राम", unchanged.Output)
}

func TestLearnedNamesResource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voter_names_db.json")

	// Devanagari keys in the resource must be filtered out
	content := `{"gopal": "गोपाल", "Harka  ": "हर्क", "राम": "राम"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	converter, err := New(Config{LearnedPaths: []string{path}})
	require.NoError(t, err)

	assert.Equal(t, "गोपाल", converter.SmartConvert("gopal"))
	assert.Equal(t, "हर्क", converter.SmartConvert("harka"))

	names := converter.learned.Names()
	assert.Len(t, names, 2)
	_, hasDevanagariKey := names["राम"]
	assert.False(t, hasDevanagariKey)
}

func TestLearnings(t *testing.T) {
	ctx := context.Background()

	converter, err := New(Config{
		LearnedPaths:  []string{filepath.Join(t.TempDir(), "absent.json")},
		LearningsPath: filepath.Join(t.TempDir(), "learnings.db"),
	})
	require.NoError(t, err)
	defer converter.Close()

	// Phonetic output first, learned value afterwards
	before := converter.SmartConvert("gopal")
	assert.NotEqual(t, "गोपाल", before)

	require.NoError(t, converter.Learn(ctx, "Gopal", "गोपाल"))
	assert.Equal(t, "गोपाल", converter.SmartConvert("gopal"))

	require.NoError(t, converter.Unlearn(ctx, "gopal"))
	assert.Equal(t, before, converter.SmartConvert("gopal"))
}

func TestLearnValidation(t *testing.T) {
	ctx := context.Background()

	converter, err := New(Config{
		LearnedPaths:  []string{filepath.Join(t.TempDir(), "absent.json")},
		LearningsPath: filepath.Join(t.TempDir(), "learnings.db"),
	})
	require.NoError(t, err)
	defer converter.Close()

	assert.Error(t, converter.Learn(ctx, "", "हर्क"))
	assert.Error(t, converter.Learn(ctx, "harka", ""))
	assert.Error(t, converter.Learn(ctx, "harka", "harka"))
	assert.Error(t, converter.Learn(ctx, "हर्क", "हर्क"))
}

func TestLearningsExportImport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := New(Config{
		LearnedPaths:  []string{filepath.Join(dir, "absent.json")},
		LearningsPath: filepath.Join(dir, "first.db"),
	})
	require.NoError(t, err)
	defer first.Close()

	require.NoError(t, first.Learn(ctx, "gopal", "गोपाल"))
	require.NoError(t, first.Learn(ctx, "harka", "हर्क"))

	exportPath := filepath.Join(dir, "learnings.json")
	require.NoError(t, first.ExportLearnings(ctx, exportPath))

	second, err := New(Config{
		LearnedPaths:  []string{filepath.Join(dir, "absent.json")},
		LearningsPath: filepath.Join(dir, "second.db"),
	})
	require.NoError(t, err)
	defer second.Close()

	imported, err := second.ImportLearnings(ctx, exportPath)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Equal(t, "गोपाल", second.SmartConvert("gopal"))
}

func TestNoLearningsConfigured(t *testing.T) {
	converter := newTestConverter(t)
	ctx := context.Background()

	assert.ErrorIs(t, converter.Learn(ctx, "gopal", "गोपाल"), ErrNoLearnings)
	assert.ErrorIs(t, converter.Unlearn(ctx, "gopal"), ErrNoLearnings)
	assert.ErrorIs(t, converter.ExportLearnings(ctx, "x.json"), ErrNoLearnings)
}

type failingTransliterator struct{}

func (failingTransliterator) Transliterate(ctx context.Context, text string) (string, error) {
	return "", assert.AnError
}

// A failing external pass is no improvement, not an error
func TestExternalTransliteratorFailure(t *testing.T) {
	converter, err := New(Config{
		LearnedPaths: []string{filepath.Join(t.TempDir(), "absent.json")},
		External:     failingTransliterator{},
	})
	require.NoError(t, err)

	result := converter.SmartConvert("ramxyz")
	assert.True(t, IsDevanagari(result))
}

func TestNameDictLastWins(t *testing.T) {
	entries := []nameEntry{
		{"krishna", "कृष्ण", CATEGORY_FIRST_NAME},
		{"krishna", "कृष्णा", CATEGORY_FIRST_NAME},
	}
	dict := buildNameDict(entries)
	assert.Equal(t, "कृष्णा", dict["krishna"])
}
