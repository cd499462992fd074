package nepalify

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	sql "database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	// sqlite
	_ "modernc.org/sqlite"
)

// ErrNoLearnings is returned by learning operations when no
// learnings database was configured.
var ErrNoLearnings = errors.New("no learnings database configured")

// Learnings is the writable store of Roman pattern to Devanagari word
// mappings learned at runtime. It sits between the read-only learned
// names resource and the static tables in the conversion pipeline.
type Learnings struct {
	conn *sql.DB
}

const learningsSchema = `CREATE TABLE IF NOT EXISTS patterns (
	pattern text primary key,
	word text not null,
	confidence integer default 1,
	learned_on integer
) WITHOUT rowid;`

// OpenLearnings opens (creating if needed) a learnings database.
func OpenLearnings(path string) (*Learnings, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := conn.ExecContext(ctx, learningsSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating learnings schema: %w", err)
	}

	return &Learnings{conn: conn}, nil
}

// Learn stores pattern => word. Re-learning an existing pattern
// replaces the word and bumps its confidence.
func (l *Learnings) Learn(ctx context.Context, pattern string, word string) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	word = strings.TrimSpace(word)

	if pattern == "" || word == "" {
		return fmt.Errorf("empty pattern or word")
	}
	if IsDevanagari(pattern) {
		return fmt.Errorf("pattern %q must be Roman", pattern)
	}
	if !IsDevanagari(word) {
		return fmt.Errorf("word %q must be Devanagari", word)
	}

	query := `INSERT INTO patterns(pattern, word, confidence, learned_on)
		VALUES (?, ?, 1, strftime('%s', 'now'))
		ON CONFLICT(pattern) DO UPDATE SET word = excluded.word, confidence = confidence + 1`
	_, err := l.conn.ExecContext(ctx, query, pattern, word)
	return err
}

// Unlearn removes a pattern.
func (l *Learnings) Unlearn(ctx context.Context, pattern string) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	_, err := l.conn.ExecContext(ctx, "DELETE FROM patterns WHERE pattern = ?", pattern)
	return err
}

// Lookup finds the learned word for a trimmed, lower-cased pattern.
func (l *Learnings) Lookup(ctx context.Context, pattern string) (string, bool) {
	var word string
	err := l.conn.QueryRowContext(ctx,
		"SELECT word FROM patterns WHERE pattern = ?", pattern).Scan(&word)
	if err != nil {
		return "", false
	}
	return word, true
}

// Export writes all learnings to a JSON file of pattern => word.
func (l *Learnings) Export(ctx context.Context, path string) error {
	rows, err := l.conn.QueryContext(ctx,
		"SELECT pattern, word FROM patterns ORDER BY pattern")
	if err != nil {
		return err
	}
	defer rows.Close()

	learnings := map[string]string{}
	for rows.Next() {
		var pattern, word string
		if err := rows.Scan(&pattern, &word); err != nil {
			return err
		}
		learnings[pattern] = word
	}
	if err := rows.Err(); err != nil {
		return err
	}

	content, err := sonic.Marshal(learnings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

// Import learns every pattern => word pair from a JSON file.
// Entries that fail validation are skipped, not fatal.
func (l *Learnings) Import(ctx context.Context, path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var learnings map[string]string
	if err := sonic.Unmarshal(content, &learnings); err != nil {
		return 0, fmt.Errorf("malformed learnings file %s: %w", path, err)
	}

	imported := 0
	for pattern, word := range learnings {
		if err := l.Learn(ctx, pattern, word); err != nil {
			continue
		}
		imported++
	}
	return imported, nil
}

// Close closes the database connection.
func (l *Learnings) Close() error {
	return l.conn.Close()
}
