// Package unihan provides core types and reference data for the Unihan database build.
package unihan

import "time"

// Unihan field names kept by the parser.
const (
	FieldRSUnicode          = "kRSUnicode"          // Radical-stroke index, e.g. "149.2"
	FieldTotalStrokes       = "kTotalStrokes"       // Total stroke count
	FieldMandarin           = "kMandarin"           // Mandarin reading(s)
	FieldDefinition         = "kDefinition"         // English definition
	FieldCantonese          = "kCantonese"          // Cantonese reading(s)
	FieldSimplifiedVariant  = "kSimplifiedVariant"  // Simplified form(s)
	FieldTraditionalVariant = "kTraditionalVariant" // Traditional form(s)
)

// WantedFields is the allow-list of fields the parser keeps.
var WantedFields = map[string]bool{
	FieldRSUnicode:          true,
	FieldTotalStrokes:       true,
	FieldMandarin:           true,
	FieldDefinition:         true,
	FieldCantonese:          true,
	FieldSimplifiedVariant:  true,
	FieldTraditionalVariant: true,
}

// SourceFiles lists the Unihan files in merge order. Later files win on
// field collisions.
var SourceFiles = []string{
	"Unihan_RadicalStrokeCounts.txt",
	"Unihan_Readings.txt",
	"Unihan_DictionaryLikeData.txt",
	"Unihan_Variants.txt",
}

// Fields maps a Unihan field name to its raw value.
type Fields map[string]string

// Entries maps a hex codepoint (without the "U+" prefix) to its fields.
type Entries map[string]Fields

// Character is one row of the unihan table.
type Character struct {
	Codepoint          string    `yaml:"codepoint" json:"codepoint"` // "U+4E00"
	Character          string    `yaml:"character" json:"character"`
	Radical            *int      `yaml:"radical,omitempty" json:"radical,omitempty"`
	RadicalChar        *string   `yaml:"radical_char,omitempty" json:"radical_char,omitempty"`
	AdditionalStrokes  *int      `yaml:"additional_strokes,omitempty" json:"additional_strokes,omitempty"`
	TotalStrokes       *int      `yaml:"total_strokes,omitempty" json:"total_strokes,omitempty"`
	Pinyin             string    `yaml:"pinyin" json:"pinyin"` // First reading, lowercased
	Definition         string    `yaml:"definition" json:"definition"`
	Cantonese          string    `yaml:"cantonese" json:"cantonese"`
	SimplifiedVariant  string    `yaml:"simplified_variant" json:"simplified_variant"`
	TraditionalVariant string    `yaml:"traditional_variant" json:"traditional_variant"`
	CreatedAt          time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"` // Set by the store on insert
}

// Radical is one row of the radicals reference table.
type Radical struct {
	Number    int    `yaml:"number" json:"number"`       // Kangxi radical number (1-214)
	Character string `yaml:"character" json:"character"` // Canonical form
	Strokes   int    `yaml:"strokes" json:"strokes"`
	Meaning   string `yaml:"meaning" json:"meaning"` // English gloss
	Pinyin    string `yaml:"pinyin" json:"pinyin"`
}
