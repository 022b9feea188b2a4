// Package parser reads Unihan database text files into per-codepoint field maps.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/f3rmion/unihan/internal/unihan"
	"github.com/sirupsen/logrus"
)

// lineRe matches "U+4E00<ws>kRSUnicode<ws>1.0[<ws># comment]". Separators
// include Unicode spaces such as U+3000 and U+00A0, not only ASCII ones.
var lineRe = regexp.MustCompile(`^U\+([0-9A-F]+)[\s\p{Zs}]+(\w+)[\s\p{Zs}]+(.+?)(?:[\s\p{Zs}]*#.*)?$`)

// Parse reads Unihan lines from r. It returns the entries for wanted fields and
// the number of lines that produced an entry. Lines that are blank, comments,
// malformed or carry an unwanted field are skipped.
func Parse(r io.Reader) (unihan.Entries, int, error) {
	entries := make(unihan.Entries)
	processed := 0

	reader := bufio.NewReader(r)
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return entries, processed, fmt.Errorf("reading unihan lines: %w", err)
		}
		if raw == "" && err != nil {
			break
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		codepoint, field, value := m[1], m[2], m[3]
		if !unihan.WantedFields[field] {
			continue
		}

		fields, ok := entries[codepoint]
		if !ok {
			fields = make(unihan.Fields)
			entries[codepoint] = fields
		}
		fields[field] = strings.TrimSpace(value)
		processed++
	}

	return entries, processed, nil
}

// ParseFile parses one Unihan file. A missing file is logged and yields no
// entries; it is not an error.
func ParseFile(path string, logger logrus.FieldLogger) (unihan.Entries, FileResult, error) {
	name := filepath.Base(path)
	result := FileResult{Name: name}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("file", name).Warn("unihan file not found")
		return make(unihan.Entries), result, nil
	}
	if err != nil {
		return nil, result, fmt.Errorf("opening %s: %w", name, err)
	}
	defer file.Close()

	result.Found = true
	logger.WithField("file", name).Info("processing")

	entries, processed, err := Parse(file)
	result.Lines = processed
	if err != nil {
		return nil, result, fmt.Errorf("parsing %s: %w", name, err)
	}
	result.Codepoints = len(entries)

	logger.WithFields(logrus.Fields{
		"file":       name,
		"lines":      result.Lines,
		"codepoints": result.Codepoints,
	}).Info("processed")

	return entries, result, nil
}
