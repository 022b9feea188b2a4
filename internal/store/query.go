package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/f3rmion/unihan/internal/unihan"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Stats holds aggregate counts over the stored tables.
type Stats struct {
	Total          int `yaml:"total" json:"total"`
	WithPinyin     int `yaml:"with_pinyin" json:"with_pinyin"`
	WithDefinition int `yaml:"with_definition" json:"with_definition"`
	Radicals       int `yaml:"radicals" json:"radicals"`
}

// Stats counts characters, characters with a reading, characters with a
// definition and radicals.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	queries := []struct {
		sql  string
		dest *int
	}{
		{"SELECT COUNT(*) FROM unihan", &st.Total},
		{"SELECT COUNT(*) FROM unihan WHERE pinyin != ''", &st.WithPinyin},
		{"SELECT COUNT(*) FROM unihan WHERE definition != ''", &st.WithDefinition},
		{"SELECT COUNT(*) FROM radicals", &st.Radicals},
	}

	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return st, fmt.Errorf("counting (%s): %w", q.sql, err)
		}
	}

	return st, nil
}

// CharacterByCodepoint returns the row for a "U+XXXX" codepoint.
func (s *Store) CharacterByCodepoint(ctx context.Context, codepoint string) (*unihan.Character, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+characterColumns+" FROM unihan WHERE codepoint = ?", codepoint)
	return scanOne(row)
}

// CharacterByChar returns the row for a single character.
func (s *Store) CharacterByChar(ctx context.Context, char string) (*unihan.Character, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+characterColumns+" FROM unihan WHERE character = ? LIMIT 1", char)
	return scanOne(row)
}

// CharactersByRadical lists characters filed under a radical, ordered by
// additional strokes.
func (s *Store) CharactersByRadical(ctx context.Context, radical, limit int) ([]unihan.Character, error) {
	return s.queryCharacters(ctx,
		"SELECT "+characterColumns+` FROM unihan WHERE radical = ?
		ORDER BY additional_strokes, codepoint LIMIT ?`, radical, limit)
}

// CharactersByStrokes lists characters with the given total stroke count.
func (s *Store) CharactersByStrokes(ctx context.Context, strokes, limit int) ([]unihan.Character, error) {
	return s.queryCharacters(ctx,
		"SELECT "+characterColumns+` FROM unihan WHERE total_strokes = ?
		ORDER BY codepoint LIMIT ?`, strokes, limit)
}

// Search matches the query against character, pinyin and definition.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]unihan.Character, error) {
	like := "%" + query + "%"
	return s.queryCharacters(ctx,
		"SELECT "+characterColumns+` FROM unihan
		WHERE character LIKE ? OR pinyin LIKE ? OR definition LIKE ?
		ORDER BY codepoint LIMIT ?`, like, like, like, limit)
}

// Radical returns one radical by number.
func (s *Store) Radical(ctx context.Context, number int) (*unihan.Radical, error) {
	var r unihan.Radical
	var meaning, pinyin sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT number, character, strokes, meaning, pinyin FROM radicals WHERE number = ?", number,
	).Scan(&r.Number, &r.Character, &r.Strokes, &meaning, &pinyin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying radical %d: %w", number, err)
	}
	r.Meaning = meaning.String
	r.Pinyin = pinyin.String
	return &r, nil
}

// Radicals returns every stored radical ordered by number.
func (s *Store) Radicals(ctx context.Context) ([]unihan.Radical, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT number, character, strokes, meaning, pinyin FROM radicals ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("querying radicals: %w", err)
	}
	defer rows.Close()

	var radicals []unihan.Radical
	for rows.Next() {
		var r unihan.Radical
		var meaning, pinyin sql.NullString
		if err := rows.Scan(&r.Number, &r.Character, &r.Strokes, &meaning, &pinyin); err != nil {
			return nil, fmt.Errorf("scanning radical: %w", err)
		}
		r.Meaning = meaning.String
		r.Pinyin = pinyin.String
		radicals = append(radicals, r)
	}

	return radicals, rows.Err()
}

func (s *Store) queryCharacters(ctx context.Context, query string, args ...any) ([]unihan.Character, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	var chars []unihan.Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		chars = append(chars, *c)
	}

	return chars, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(row *sql.Row) (*unihan.Character, error) {
	c, err := scanCharacter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func scanCharacter(sc scanner) (*unihan.Character, error) {
	var c unihan.Character
	var radical, additional, total sql.NullInt64
	var radicalChar, pinyin, definition, cantonese, simplified, traditional, created sql.NullString

	if err := sc.Scan(
		&c.Codepoint, &c.Character, &radical, &radicalChar,
		&additional, &total, &pinyin, &definition,
		&cantonese, &simplified, &traditional, &created,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning character: %w", err)
	}

	c.Radical = intPtr(radical)
	c.AdditionalStrokes = intPtr(additional)
	c.TotalStrokes = intPtr(total)
	if radicalChar.Valid {
		c.RadicalChar = &radicalChar.String
	}
	c.Pinyin = pinyin.String
	c.Definition = definition.String
	c.Cantonese = cantonese.String
	c.SimplifiedVariant = simplified.String
	c.TraditionalVariant = traditional.String
	c.CreatedAt = parseTimestamp(created.String)

	return &c, nil
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
}

// parseTimestamp reads CURRENT_TIMESTAMP values, which the driver may hand
// back either as text or already formatted from a time.Time.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
