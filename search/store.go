package search

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	sql "database/sql"
	"fmt"
	"time"

	// sqlite
	_ "modernc.org/sqlite"
)

// Store is the SQLite voter roll. It is read-mostly: Insert exists
// for preparing rolls and for tests, searches run against the
// in-memory records returned by Load.
type Store struct {
	conn *sql.DB
}

const voterSchema = `CREATE TABLE IF NOT EXISTS voters (
	voter_number integer primary key,
	name text not null,
	parent_name text default '',
	spouse_name text default '-',
	gender text default '',
	age integer
);`

// Open opens (creating if needed) a voter roll database.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := conn.ExecContext(ctx, voterSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating voters schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Load reads the whole roll and precomputes the shadow fields.
func (s *Store) Load(ctx context.Context) ([]Record, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT voter_number, name, parent_name, spouse_name, gender, age
		 FROM voters ORDER BY voter_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var age sql.NullInt64
		err := rows.Scan(&record.VoterNumber, &record.Name, &record.ParentName,
			&record.SpouseName, &record.Gender, &age)
		if err != nil {
			return nil, err
		}
		if age.Valid {
			record.Age = int(age.Int64)
			record.HasAge = true
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return Prepare(records), nil
}

// Insert adds or replaces one voter row.
func (s *Store) Insert(ctx context.Context, record Record) error {
	var age interface{}
	if record.HasAge {
		age = record.Age
	}

	_, err := s.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO voters(voter_number, name, parent_name, spouse_name, gender, age)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.VoterNumber, record.Name, record.ParentName,
		record.SpouseName, record.Gender, age)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}
