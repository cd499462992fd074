package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Transliterator is an optional external conversion pass plugged in
// between the lookup tables and the phonetic engine. Implementations
// may fail or return the input unchanged; both fall through to the
// engine.
type Transliterator interface {
	Transliterate(ctx context.Context, text string) (string, error)
}

// Config for a Converter. The zero value is usable: static tables
// only, default learned-names paths, default cache size.
type Config struct {
	// LearnedPaths are candidate locations of the learned-names JSON
	// resource. Empty means the default locations.
	LearnedPaths []string

	// LearningsPath is the writable learnings database. Empty
	// disables the learnings store.
	LearningsPath string

	// External is an optional third-party transliteration pass.
	External Transliterator

	// TrailingHalant keeps an explicit halant on word-final
	// consonants in phonetic output.
	TrailingHalant bool

	// CacheSize bounds the conversion memoization cache.
	// Zero means DefaultCacheSize.
	CacheSize int

	Logger *slog.Logger
}

// ConversionResult reports a conversion together with whether the
// text actually changed script, so a UI can show a
// "converted from Roman" indicator.
type ConversionResult struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Converted bool   `json:"converted"`
}

// Converter runs the layered conversion pipeline:
// learned names -> learnings DB -> correction table -> name
// dictionary -> optional external pass -> phonetic engine.
type Converter struct {
	nameDict         map[string]string
	correctionLookup map[string]string
	learned          *LearnedStore
	learnings        *Learnings
	engine           *Engine
	external         Transliterator
	cache            *lru.Cache[string, string]
	logger           *slog.Logger
}

// New builds a Converter. The static tables are built here once and
// never mutated afterwards.
func New(config Config) (*Converter, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cacheSize := config.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}

	converter := &Converter{
		nameDict:         buildNameDict(nameEntries),
		correctionLookup: buildCorrectionLookup(corrections),
		learned:          NewLearnedStore(logger, config.LearnedPaths...),
		engine:           NewEngine(),
		external:         config.External,
		cache:            cache,
		logger:           logger,
	}
	converter.engine.TrailingHalant = config.TrailingHalant

	if config.LearningsPath != "" {
		learnings, err := OpenLearnings(config.LearningsPath)
		if err != nil {
			return nil, err
		}
		converter.learnings = learnings
	}

	return converter, nil
}

// SmartConvert is the externally consumed entry point: a no-op for
// text already containing Devanagari, best-effort conversion for
// everything else. It never fails and never returns empty for
// non-empty input.
func (c *Converter) SmartConvert(text string) string {
	return c.SmartConvertContext(context.Background(), text)
}

// SmartConvertContext is SmartConvert with a caller context.
func (c *Converter) SmartConvertContext(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	trimmed := strings.TrimSpace(text)
	if IsDevanagari(trimmed) {
		return trimmed
	}

	// Neither-script input still gets a conversion attempt
	return c.Convert(ctx, trimmed)
}

// ConvertResult wraps SmartConvertContext with the conversion flag.
func (c *Converter) ConvertResult(ctx context.Context, text string) ConversionResult {
	output := c.SmartConvertContext(ctx, text)
	trimmed := strings.TrimSpace(text)

	return ConversionResult{
		Input:     trimmed,
		Output:    output,
		Converted: trimmed != "" && output != trimmed && !IsDevanagari(trimmed),
	}
}

// Convert runs the conversion pipeline on Roman (or ambiguous) text.
// First match wins; if nothing applies the input is returned
// unchanged.
func (c *Converter) Convert(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	original := strings.TrimSpace(text)
	key := strings.ToLower(original)

	if word, ok := c.lookupExact(ctx, key); ok {
		return word
	}

	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	result := c.convertUncached(ctx, original, key)
	if result == "" {
		result = original
	}

	c.cache.Add(key, result)
	return result
}

// lookupExact checks the runtime stores: the learned-names resource
// first, then the learnings database. These take precedence over
// every static table.
func (c *Converter) lookupExact(ctx context.Context, key string) (string, bool) {
	if word, ok := c.learned.Lookup(key); ok {
		return word, true
	}
	if c.learnings != nil {
		if word, ok := c.learnings.Lookup(ctx, key); ok {
			return word, true
		}
	}
	return "", false
}

func (c *Converter) convertUncached(ctx context.Context, original string, key string) string {
	if word, ok := c.correctionLookup[key]; ok {
		return word
	}
	if word, ok := c.nameDict[key]; ok {
		return word
	}

	if c.external != nil {
		converted, err := c.external.Transliterate(ctx, original)
		if err != nil {
			// Treated as no improvement, fall through to the engine
			c.logger.Warn("external transliterator failed", "error", err)
		} else if converted != "" && converted != original {
			return c.PostProcess(converted, original)
		}
	}

	words := strings.Fields(key)
	converted := make([]string, len(words))
	for i, word := range words {
		converted[i] = c.convertWord(ctx, word)
	}

	return c.PostProcess(strings.Join(converted, " "), original)
}

// convertWord resolves one word: exact stores, then the static
// tables, then the phonetic engine.
func (c *Converter) convertWord(ctx context.Context, word string) string {
	if converted, ok := c.lookupExact(ctx, word); ok {
		return converted
	}
	if converted, ok := c.correctionLookup[word]; ok {
		return converted
	}
	if converted, ok := c.nameDict[word]; ok {
		return converted
	}
	return c.engine.TransliterateWord(word)
}

// Learn stores pattern => word in the learnings database and drops
// stale cached conversions.
func (c *Converter) Learn(ctx context.Context, pattern string, word string) error {
	if c.learnings == nil {
		return ErrNoLearnings
	}
	if err := c.learnings.Learn(ctx, pattern, word); err != nil {
		return err
	}
	c.cache.Purge()
	return nil
}

// Unlearn removes a learned pattern.
func (c *Converter) Unlearn(ctx context.Context, pattern string) error {
	if c.learnings == nil {
		return ErrNoLearnings
	}
	if err := c.learnings.Unlearn(ctx, pattern); err != nil {
		return err
	}
	c.cache.Purge()
	return nil
}

// ImportLearnings learns all pattern => word pairs from a JSON file.
func (c *Converter) ImportLearnings(ctx context.Context, path string) (int, error) {
	if c.learnings == nil {
		return 0, ErrNoLearnings
	}
	imported, err := c.learnings.Import(ctx, path)
	if err != nil {
		return imported, err
	}
	c.cache.Purge()
	return imported, nil
}

// ExportLearnings writes the learnings database to a JSON file.
func (c *Converter) ExportLearnings(ctx context.Context, path string) error {
	if c.learnings == nil {
		return ErrNoLearnings
	}
	return c.learnings.Export(ctx, path)
}

// Close releases the learnings database if one is open.
func (c *Converter) Close() error {
	if c.learnings != nil {
		return c.learnings.Close()
	}
	return nil
}
