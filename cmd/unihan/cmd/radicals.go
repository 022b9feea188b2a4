package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/f3rmion/unihan/internal/unihan"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var radicalsCmd = &cobra.Command{
	Use:   "radicals",
	Short: "List the radicals reference table",
	Long: `List the radicals stored in the unihan database, or the characters
filed under one radical.

Examples:
  unihan radicals
  unihan radicals --radical 85 --limit 50`,
	Args: cobra.NoArgs,
	RunE: runRadicals,
}

var (
	radicalsNumber int
	radicalsLimit  int
)

func init() {
	rootCmd.AddCommand(radicalsCmd)
	radicalsCmd.Flags().IntVarP(&radicalsNumber, "radical", "r", 0, "list characters under this radical number")
	radicalsCmd.Flags().IntVarP(&radicalsLimit, "limit", "n", 50, "maximum number of characters listed with --radical")
}

func runRadicals(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openExisting(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()

	if radicalsNumber > 0 {
		rad, err := db.Radical(ctx, radicalsNumber)
		if err != nil {
			return fmt.Errorf("radical %d: %w", radicalsNumber, err)
		}
		chars, err := db.CharactersByRadical(ctx, radicalsNumber, radicalsLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Radical %d %s (%s, %s): %d characters\n\n",
			rad.Number, rad.Character, rad.Meaning, rad.Pinyin, len(chars))
		printCharacterList(out, chars)
		return nil
	}

	radicals, err := db.Radicals(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, row("No.", "Char", "Strokes", "Pinyin", "Meaning"))
	for _, r := range radicals {
		fmt.Fprintln(out, row(strconv.Itoa(r.Number), r.Character, strconv.Itoa(r.Strokes), r.Pinyin, r.Meaning))
	}

	return nil
}

// row pads columns by display width so CJK characters line up.
func row(cols ...string) string {
	widths := []int{5, 6, 9, 8, 0}
	var line string
	for i, col := range cols {
		if i < len(widths) && widths[i] > 0 {
			col = runewidth.FillRight(col, widths[i])
		}
		line += col
	}
	return line
}

func printCharacterList(out io.Writer, chars []unihan.Character) {
	for _, c := range chars {
		strokes := "-"
		if c.TotalStrokes != nil {
			strokes = strconv.Itoa(*c.TotalStrokes)
		}
		definition := runewidth.Truncate(c.Definition, 48, "…")
		fmt.Fprintln(out, row(c.Character, c.Codepoint, strokes, c.Pinyin, definition))
	}
}
