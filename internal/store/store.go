// Package store persists Unihan characters and radicals in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/unihan/internal/unihan"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding the unihan and radicals tables.
type Store struct {
	path string
	db   *sql.DB
}

// Open opens (creating if needed) the database at path. Missing parent
// directories are created.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	return &Store{path: path, db: db}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureSchema creates the tables and indexes if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// UpsertRadicals inserts or replaces the radical reference rows in one
// transaction.
func (s *Store) UpsertRadicals(ctx context.Context, radicals []unihan.Radical) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning radicals transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertRadicalSQL)
	if err != nil {
		return fmt.Errorf("preparing radical upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range radicals {
		if _, err := stmt.ExecContext(ctx, r.Number, r.Character, r.Strokes, r.Meaning, r.Pinyin); err != nil {
			return fmt.Errorf("upserting radical %d: %w", r.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing radicals: %w", err)
	}
	return nil
}

// RadicalChars returns radical number → character as stored.
func (s *Store) RadicalChars(ctx context.Context) (map[int]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT number, character FROM radicals")
	if err != nil {
		return nil, fmt.Errorf("querying radicals: %w", err)
	}
	defer rows.Close()

	chars := make(map[int]string)
	for rows.Next() {
		var number int
		var char string
		if err := rows.Scan(&number, &char); err != nil {
			return nil, fmt.Errorf("scanning radical: %w", err)
		}
		chars[number] = char
	}

	return chars, rows.Err()
}

// UpsertCharacters inserts or replaces characters by codepoint in a single
// transaction. With fullRefresh, existing rows are deleted first inside the
// same transaction. It returns the number of rows written.
func (s *Store) UpsertCharacters(ctx context.Context, chars []unihan.Character, fullRefresh bool) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning characters transaction: %w", err)
	}
	defer tx.Rollback()

	if fullRefresh {
		if _, err := tx.ExecContext(ctx, "DELETE FROM unihan"); err != nil {
			return 0, fmt.Errorf("clearing unihan table: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, upsertCharacterSQL)
	if err != nil {
		return 0, fmt.Errorf("preparing character upsert: %w", err)
	}
	defer stmt.Close()

	var written int64
	for _, c := range chars {
		if _, err := stmt.ExecContext(ctx,
			c.Codepoint, c.Character, c.Radical, c.RadicalChar,
			c.AdditionalStrokes, c.TotalStrokes, c.Pinyin, c.Definition,
			c.Cantonese, c.SimplifiedVariant, c.TraditionalVariant,
		); err != nil {
			return written, fmt.Errorf("upserting %s: %w", c.Codepoint, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("committing characters: %w", err)
	}
	return written, nil
}
