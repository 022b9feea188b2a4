package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/unihan/internal/unihan"
)

func TestMergeLaterFieldsWin(t *testing.T) {
	dst := unihan.Entries{
		"4E00": {"kMandarin": "yi", "kDefinition": "one"},
	}
	src := unihan.Entries{
		"4E00": {"kMandarin": "yī"},
		"4E01": {"kMandarin": "dīng"},
	}

	Merge(dst, src)

	if got := dst["4E00"]["kMandarin"]; got != "yī" {
		t.Errorf("expected later value to win, got %q", got)
	}
	if got := dst["4E00"]["kDefinition"]; got != "one" {
		t.Errorf("field absent from later source should be kept, got %q", got)
	}
	if _, ok := dst["4E01"]; !ok {
		t.Error("codepoint only in later source missing from merge")
	}
}

func TestParseDirUnionsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"Unihan_RadicalStrokeCounts.txt": "U+4E00\tkRSUnicode\t1.0\nU+4E8C\tkRSUnicode\t7.0\n",
		"Unihan_Readings.txt":            "U+4E00\tkMandarin\tyī\nU+4E00\tkDefinition\tone\n",
		"Unihan_DictionaryLikeData.txt":  "U+4E09\tkTotalStrokes\t3\nU+4E00\tkDefinition\tone; a, an\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	entries, results, err := ParseDir(dir, unihan.SourceFiles, quietLogger())
	if err != nil {
		t.Fatalf("ParseDir returned error: %v", err)
	}

	for _, cp := range []string{"4E00", "4E8C", "4E09"} {
		if _, ok := entries[cp]; !ok {
			t.Errorf("codepoint %s missing from union", cp)
		}
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 codepoints, got %d", len(entries))
	}
	if got := entries["4E00"]["kDefinition"]; got != "one; a, an" {
		t.Errorf("expected definition from later file, got %q", got)
	}
	if got := entries["4E00"]["kRSUnicode"]; got != "1.0" {
		t.Errorf("expected radical-stroke from first file, got %q", got)
	}

	if len(results) != len(unihan.SourceFiles) {
		t.Fatalf("expected %d file results, got %d", len(unihan.SourceFiles), len(results))
	}
	if results[3].Found {
		t.Error("Unihan_Variants.txt does not exist and should not be marked found")
	}
	if results[1].Lines != 2 {
		t.Errorf("expected 2 lines from readings, got %d", results[1].Lines)
	}
}
