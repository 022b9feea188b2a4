package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/unihan/internal/unihan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "dir", "unihan.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})

	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema returned error: %v", err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	s := openTestStore(t)
	if _, err := os.Stat(filepath.Dir(s.Path())); err != nil {
		t.Fatalf("expected parent directory to exist: %v", err)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second EnsureSchema returned error: %v", err)
	}

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'index' AND name IN ('idx_character', 'idx_radical', 'idx_strokes')`).Scan(&count)
	if err != nil {
		t.Fatalf("querying indexes: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 indexes, got %d", count)
	}
}

func TestUpsertRadicalsReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	stale := []unihan.Radical{{Number: 1, Character: "X", Strokes: 9, Meaning: "stale", Pinyin: "x"}}
	if err := s.UpsertRadicals(ctx, stale); err != nil {
		t.Fatalf("UpsertRadicals returned error: %v", err)
	}
	if err := s.UpsertRadicals(ctx, unihan.Radicals); err != nil {
		t.Fatalf("UpsertRadicals returned error: %v", err)
	}
	if err := s.UpsertRadicals(ctx, unihan.Radicals); err != nil {
		t.Fatalf("UpsertRadicals returned error: %v", err)
	}

	radicals, err := s.Radicals(ctx)
	if err != nil {
		t.Fatalf("Radicals returned error: %v", err)
	}
	if len(radicals) != len(unihan.Radicals) {
		t.Fatalf("expected %d radicals, got %d", len(unihan.Radicals), len(radicals))
	}
	for i, r := range radicals {
		if r != unihan.Radicals[i] {
			t.Errorf("radical %d = %+v, want %+v", i, r, unihan.Radicals[i])
		}
	}

	chars, err := s.RadicalChars(ctx)
	if err != nil {
		t.Fatalf("RadicalChars returned error: %v", err)
	}
	if chars[1] != "一" || chars[149] != "言" {
		t.Errorf("unexpected radical chars: 1=%q 149=%q", chars[1], chars[149])
	}

	r, err := s.Radical(ctx, 85)
	if err != nil {
		t.Fatalf("Radical returned error: %v", err)
	}
	if r.Character != "水" || r.Meaning != "water" {
		t.Errorf("unexpected radical 85: %+v", r)
	}
	if _, err := s.Radical(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for radical 2, got %v", err)
	}
}

func TestUpsertCharactersReplacesByCodepoint(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	first := []unihan.Character{
		{Codepoint: "U+4E00", Character: "一", Pinyin: "yi", Definition: "one"},
		{Codepoint: "U+4E8C", Character: "二", Pinyin: "èr"},
	}
	if n, err := s.UpsertCharacters(ctx, first, false); err != nil || n != 2 {
		t.Fatalf("UpsertCharacters = (%d, %v), want (2, nil)", n, err)
	}

	second := []unihan.Character{
		{
			Codepoint:         "U+4E00",
			Character:         "一",
			Radical:           ptr(1),
			RadicalChar:       ptr("一"),
			AdditionalStrokes: ptr(0),
			TotalStrokes:      ptr(1),
			Pinyin:            "yī",
		},
	}
	if _, err := s.UpsertCharacters(ctx, second, false); err != nil {
		t.Fatalf("UpsertCharacters returned error: %v", err)
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if st.Total != 2 {
		t.Errorf("expected accumulated total 2, got %d", st.Total)
	}
	if st.WithPinyin != 2 {
		t.Errorf("expected 2 with pinyin, got %d", st.WithPinyin)
	}
	if st.WithDefinition != 0 {
		t.Errorf("replaced row should drop its old definition, got %d with definition", st.WithDefinition)
	}

	c, err := s.CharacterByCodepoint(ctx, "U+4E00")
	if err != nil {
		t.Fatalf("CharacterByCodepoint returned error: %v", err)
	}
	if c.Pinyin != "yī" || c.Radical == nil || *c.Radical != 1 || c.TotalStrokes == nil || *c.TotalStrokes != 1 {
		t.Errorf("unexpected row after replace: %+v", c)
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected created_at to be set by the store")
	}

	c, err = s.CharacterByCodepoint(ctx, "U+4E8C")
	if err != nil {
		t.Fatalf("CharacterByCodepoint returned error: %v", err)
	}
	if c.Radical != nil || c.RadicalChar != nil || c.TotalStrokes != nil {
		t.Errorf("expected NULL numeric fields, got %+v", c)
	}
}

func TestUpsertCharactersFullRefresh(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	stale := []unihan.Character{{Codepoint: "U+4E8C", Character: "二"}}
	if _, err := s.UpsertCharacters(ctx, stale, false); err != nil {
		t.Fatalf("UpsertCharacters returned error: %v", err)
	}

	fresh := []unihan.Character{{Codepoint: "U+4E00", Character: "一"}}
	if _, err := s.UpsertCharacters(ctx, fresh, true); err != nil {
		t.Fatalf("UpsertCharacters returned error: %v", err)
	}

	if _, err := s.CharacterByCodepoint(ctx, "U+4E8C"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected stale row removed, got %v", err)
	}
	if _, err := s.CharacterByChar(ctx, "一"); err != nil {
		t.Errorf("expected fresh row, got %v", err)
	}
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	chars := []unihan.Character{
		{Codepoint: "U+4E00", Character: "一", Radical: ptr(1), AdditionalStrokes: ptr(0), TotalStrokes: ptr(1), Pinyin: "yī", Definition: "one"},
		{Codepoint: "U+4E01", Character: "丁", Radical: ptr(1), AdditionalStrokes: ptr(1), TotalStrokes: ptr(2), Pinyin: "dīng", Definition: "male adult"},
		{Codepoint: "U+4E8C", Character: "二", Radical: ptr(7), AdditionalStrokes: ptr(0), TotalStrokes: ptr(2), Pinyin: "èr", Definition: "two"},
	}
	if _, err := s.UpsertCharacters(ctx, chars, false); err != nil {
		t.Fatalf("UpsertCharacters returned error: %v", err)
	}

	byRadical, err := s.CharactersByRadical(ctx, 1, 10)
	if err != nil {
		t.Fatalf("CharactersByRadical returned error: %v", err)
	}
	if len(byRadical) != 2 || byRadical[0].Character != "一" || byRadical[1].Character != "丁" {
		t.Errorf("unexpected CharactersByRadical result: %+v", byRadical)
	}

	byStrokes, err := s.CharactersByStrokes(ctx, 2, 10)
	if err != nil {
		t.Fatalf("CharactersByStrokes returned error: %v", err)
	}
	if len(byStrokes) != 2 {
		t.Errorf("expected 2 characters with 2 strokes, got %d", len(byStrokes))
	}

	found, err := s.Search(ctx, "two", 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(found) != 1 || found[0].Codepoint != "U+4E8C" {
		t.Errorf("unexpected Search result: %+v", found)
	}

	if _, err := s.CharacterByChar(ctx, "三"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
