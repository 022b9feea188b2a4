package parser

import (
	"path/filepath"

	"github.com/f3rmion/unihan/internal/unihan"
	"github.com/sirupsen/logrus"
)

// FileResult records how much one source file contributed.
type FileResult struct {
	Name       string `yaml:"name" json:"name"`
	Found      bool   `yaml:"found" json:"found"`
	Lines      int    `yaml:"lines" json:"lines"` // Lines that produced a field entry
	Codepoints int    `yaml:"codepoints" json:"codepoints"`
}

// Merge applies src over dst field by field. Fields missing from src are left
// as they are in dst.
func Merge(dst, src unihan.Entries) {
	for codepoint, fields := range src {
		merged, ok := dst[codepoint]
		if !ok {
			merged = make(unihan.Fields, len(fields))
			dst[codepoint] = merged
		}
		for field, value := range fields {
			merged[field] = value
		}
	}
}

// ParseDir parses files from dir in order and merges them into one set of
// entries.
func ParseDir(dir string, files []string, logger logrus.FieldLogger) (unihan.Entries, []FileResult, error) {
	all := make(unihan.Entries)
	results := make([]FileResult, 0, len(files))

	for _, name := range files {
		entries, result, err := ParseFile(filepath.Join(dir, name), logger)
		if err != nil {
			return nil, results, err
		}
		results = append(results, result)

		Merge(all, entries)
	}

	return all, results, nil
}
