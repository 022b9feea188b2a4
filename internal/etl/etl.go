// Package etl runs the Unihan build: parse the source files, merge them,
// normalize each character and load the result into SQLite.
package etl

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/f3rmion/unihan/internal/normalize"
	"github.com/f3rmion/unihan/internal/parser"
	"github.com/f3rmion/unihan/internal/pinyin"
	"github.com/f3rmion/unihan/internal/store"
	"github.com/f3rmion/unihan/internal/unihan"
	"github.com/sirupsen/logrus"
)

// Options configures a pipeline run.
type Options struct {
	DataDir     string
	OutputDB    string
	Files       []string         // Defaults to unihan.SourceFiles
	Radicals    []unihan.Radical // Defaults to unihan.Radicals
	FullRefresh bool             // Delete existing characters before loading
}

// Skipped records a codepoint that could not be turned into a row.
type Skipped struct {
	Codepoint string `yaml:"codepoint" json:"codepoint"`
	Reason    string `yaml:"reason" json:"reason"`
}

// Malformed records a stroke field that could not be parsed. The row is still
// loaded with that column left NULL.
type Malformed struct {
	Codepoint string `yaml:"codepoint" json:"codepoint"`
	Field     string `yaml:"field" json:"field"`
	Value     string `yaml:"value" json:"value"`
}

// Result summarizes a finished run.
type Result struct {
	Files      []parser.FileResult `yaml:"files" json:"files"`
	Codepoints int                 `yaml:"codepoints" json:"codepoints"` // Unique codepoints after merging
	Inserted   int64               `yaml:"inserted" json:"inserted"`
	Skipped    []Skipped           `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Malformed  []Malformed         `yaml:"malformed,omitempty" json:"malformed,omitempty"`
	Stats      store.Stats         `yaml:"stats" json:"stats"`
	OutputDB   string              `yaml:"output_db" json:"output_db"`
	Duration   time.Duration       `yaml:"duration" json:"duration"`
}

// Pipeline runs the build against one data directory and database.
type Pipeline struct {
	opts   Options
	logger logrus.FieldLogger
}

// New creates a pipeline.
func New(opts Options, logger logrus.FieldLogger) *Pipeline {
	if opts.Files == nil {
		opts.Files = unihan.SourceFiles
	}
	if opts.Radicals == nil {
		opts.Radicals = unihan.Radicals
	}
	return &Pipeline{opts: opts, logger: logger}
}

// Run executes the build. Per-character problems are logged and skipped;
// database failures are returned.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	p.logger.WithField("data_dir", p.opts.DataDir).Info("starting unihan build")

	entries, files, err := parser.ParseDir(p.opts.DataDir, p.opts.Files, p.logger)
	if err != nil {
		return nil, err
	}
	p.logger.WithField("codepoints", len(entries)).Info("merged unihan files")

	p.logger.WithField("output_db", p.opts.OutputDB).Info("opening database")
	db, err := store.Open(ctx, p.opts.OutputDB)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if err := db.UpsertRadicals(ctx, p.opts.Radicals); err != nil {
		return nil, err
	}

	radicalChars, err := db.RadicalChars(ctx)
	if err != nil {
		return nil, err
	}

	chars, skipped, malformed := BuildCharacters(entries, radicalChars)
	for _, s := range skipped {
		p.logger.WithFields(logrus.Fields{
			"codepoint": s.Codepoint,
			"reason":    s.Reason,
		}).Warn("skipping invalid codepoint")
	}
	for _, m := range malformed {
		p.logger.WithFields(logrus.Fields{
			"codepoint": m.Codepoint,
			"field":     m.Field,
			"value":     m.Value,
		}).Debug("unparseable stroke value stored as NULL")
	}

	p.logger.WithFields(logrus.Fields{
		"entries":      len(chars),
		"full_refresh": p.opts.FullRefresh,
	}).Info("inserting characters")
	inserted, err := db.UpsertCharacters(ctx, chars, p.opts.FullRefresh)
	if err != nil {
		return nil, err
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		return nil, err
	}

	p.logger.WithField("output_db", db.Path()).Info("unihan build completed")

	return &Result{
		Files:      files,
		Codepoints: len(entries),
		Inserted:   inserted,
		Skipped:    skipped,
		Malformed:  malformed,
		Stats:      stats,
		OutputDB:   db.Path(),
		Duration:   time.Since(start),
	}, nil
}

// BuildCharacters converts merged entries into rows, ordered by codepoint.
// Entries whose codepoint cannot be decoded are returned as skipped; stroke
// fields that cannot be parsed are returned as malformed.
func BuildCharacters(entries unihan.Entries, radicalChars map[int]string) ([]unihan.Character, []Skipped, []Malformed) {
	codepoints := make([]string, 0, len(entries))
	for cp := range entries {
		codepoints = append(codepoints, cp)
	}
	sort.Strings(codepoints)

	chars := make([]unihan.Character, 0, len(codepoints))
	var skipped []Skipped
	var malformed []Malformed
	for _, cp := range codepoints {
		c, bad, err := BuildCharacter(cp, entries[cp], radicalChars)
		if err != nil {
			skipped = append(skipped, Skipped{Codepoint: cp, Reason: err.Error()})
			continue
		}
		chars = append(chars, c)
		malformed = append(malformed, bad...)
	}

	return chars, skipped, malformed
}

// BuildCharacter normalizes one codepoint's fields into a row. Non-empty
// kRSUnicode or kTotalStrokes values that do not parse are reported back.
func BuildCharacter(codepoint string, fields unihan.Fields, radicalChars map[int]string) (unihan.Character, []Malformed, error) {
	r, err := normalize.Codepoint(codepoint)
	if err != nil {
		return unihan.Character{}, nil, fmt.Errorf("invalid codepoint: %w", err)
	}

	var malformed []Malformed
	check := func(field string, ok bool) {
		if raw := fields[field]; raw != "" && !ok {
			malformed = append(malformed, Malformed{
				Codepoint: normalize.FormatCodepoint(codepoint),
				Field:     field,
				Value:     raw,
			})
		}
	}

	radical, additional := normalize.RadicalStroke(fields[unihan.FieldRSUnicode])
	check(unihan.FieldRSUnicode, radical != nil)
	totalStrokes := normalize.TotalStrokes(fields[unihan.FieldTotalStrokes])
	check(unihan.FieldTotalStrokes, totalStrokes != nil)

	var radicalChar *string
	if radical != nil && *radical != 0 {
		if ch, ok := radicalChars[*radical]; ok {
			radicalChar = &ch
		}
	}

	return unihan.Character{
		Codepoint:          normalize.FormatCodepoint(codepoint),
		Character:          string(r),
		Radical:            radical,
		RadicalChar:        radicalChar,
		AdditionalStrokes:  additional,
		TotalStrokes:       totalStrokes,
		Pinyin:             pinyin.Normalize(fields[unihan.FieldMandarin]),
		Definition:         fields[unihan.FieldDefinition],
		Cantonese:          fields[unihan.FieldCantonese],
		SimplifiedVariant:  fields[unihan.FieldSimplifiedVariant],
		TraditionalVariant: fields[unihan.FieldTraditionalVariant],
	}, malformed, nil
}
