// Package pinyin handles the Mandarin reading stored for each character.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Tone is a Mandarin tone number, 1-4 plus 5 for neutral.
type Tone int

const (
	ToneUnknown Tone = 0
	Tone1       Tone = 1 // High level - ˉ
	Tone2       Tone = 2 // Rising - ˊ
	Tone3       Tone = 3 // Dipping - ˇ
	Tone4       Tone = 4 // Falling - ˋ
	Tone5       Tone = 5 // Neutral
)

// Normalize returns the first reading of a kMandarin value, lowercased.
// Tone marks are left as they are.
func Normalize(raw string) string {
	readings := strings.Fields(raw)
	if len(readings) == 0 {
		return ""
	}
	return strings.ToLower(readings[0])
}

// Dictionary looks up readings in the go-pinyin dictionary.
type Dictionary struct {
	args gopinyin.Args
}

// NewDictionary creates a dictionary that returns every tone-marked reading.
func NewDictionary() *Dictionary {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	return &Dictionary{args: args}
}

// Readings returns all dictionary readings for a single character.
func (d *Dictionary) Readings(char string) []string {
	result := gopinyin.Pinyin(char, d.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// Agrees reports whether reading is one of the dictionary readings for char.
// It returns false when the dictionary has no entry.
func (d *Dictionary) Agrees(char, reading string) bool {
	for _, r := range d.Readings(char) {
		if r == reading {
			return true
		}
	}
	return false
}

var toneMarks = map[rune]struct {
	base rune
	tone Tone
}{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
	'ḿ': {'m', Tone2}, 'ń': {'n', Tone2}, 'ň': {'n', Tone3}, 'ǹ': {'n', Tone4},
}

// SplitTone returns the tone of a tone-marked syllable and the syllable
// without its mark. A syllable with no mark is neutral (Tone5); an empty
// syllable is ToneUnknown.
//
// Besides the vowels, kMandarin carries syllabic nasals such as ḿ (呣),
// ń and ň (嗯), so marked m and n are recognised too.
func SplitTone(syllable string) (Tone, string) {
	if syllable == "" {
		return ToneUnknown, ""
	}

	tone := ToneUnknown
	var result strings.Builder
	for _, r := range syllable {
		if mark, ok := toneMarks[r]; ok {
			result.WriteRune(mark.base)
			tone = mark.tone
		} else {
			result.WriteRune(r)
		}
	}

	if tone == ToneUnknown {
		tone = Tone5
	}

	return tone, result.String()
}
