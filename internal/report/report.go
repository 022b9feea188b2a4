// Package report renders the summary printed after a Unihan build.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/f3rmion/unihan/internal/etl"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatYAML, FormatJSON}

var (
	colorTitle = lipgloss.Color("#FF6B6B")
	colorLabel = lipgloss.Color("#a8dadc")
	colorValue = lipgloss.Color("#ffe66d")
	colorMuted = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	labelStyle = lipgloss.NewStyle().Foreground(colorLabel).Width(20)
	valueStyle = lipgloss.NewStyle().Foreground(colorValue).Align(lipgloss.Right).Width(10)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Render writes the result in the given format.
func Render(w io.Writer, result *etl.Result, format string) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, Text(result))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Text renders the human-readable summary.
func Text(result *etl.Result) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Unihan build complete"))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("Database: " + result.OutputDB))
	sb.WriteString("\n\n")

	sb.WriteString(titleStyle.Render("Files"))
	sb.WriteString("\n")
	for _, f := range result.Files {
		if !f.Found {
			sb.WriteString(line(f.Name, mutedStyle.Render("missing")))
			continue
		}
		sb.WriteString(line(f.Name, humanize.Comma(int64(f.Lines))+" lines"))
	}
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render("Stats"))
	sb.WriteString("\n")
	sb.WriteString(stat("Unique codepoints", result.Codepoints))
	sb.WriteString(stat("Inserted", int(result.Inserted)))
	if len(result.Skipped) > 0 {
		sb.WriteString(stat("Skipped", len(result.Skipped)))
	}
	if len(result.Malformed) > 0 {
		sb.WriteString(stat("Malformed strokes", len(result.Malformed)))
	}
	sb.WriteString(stat("Total characters", result.Stats.Total))
	sb.WriteString(stat("With pinyin", result.Stats.WithPinyin))
	sb.WriteString(stat("With definitions", result.Stats.WithDefinition))
	sb.WriteString(stat("Radicals", result.Stats.Radicals))
	sb.WriteString(mutedStyle.Render("Took " + result.Duration.Round(time.Millisecond).String()))
	sb.WriteString("\n")

	return sb.String()
}

func stat(label string, n int) string {
	return labelStyle.Render(label) + valueStyle.Render(humanize.Comma(int64(n))) + "\n"
}

func line(label, value string) string {
	return "  " + lipgloss.NewStyle().Width(34).Render(label) + value + "\n"
}
