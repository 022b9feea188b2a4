package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/unihan/internal/config"
	"github.com/f3rmion/unihan/internal/pinyin"
	"github.com/f3rmion/unihan/internal/store"
	"github.com/f3rmion/unihan/internal/unihan"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [characters]",
	Short: "Look up characters in a built unihan database",
	Long: `Look up Chinese characters in the database written by 'unihan build'
and display the stored:
  - Codepoint
  - Radical and additional strokes
  - Total strokes
  - Pinyin, compared with the go-pinyin dictionary
  - Definition, Cantonese reading and variants

Examples:
  unihan lookup 好
  unihan lookup 中国
  unihan lookup --search water
  unihan lookup --strokes 2`,
	RunE: runLookup,
}

var (
	lookupSearch  string
	lookupStrokes int
	lookupLimit   int
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVarP(&lookupSearch, "search", "s", "", "search character, pinyin and definition")
	lookupCmd.Flags().IntVar(&lookupStrokes, "strokes", 0, "list characters with this total stroke count")
	lookupCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 20, "maximum number of results for --search and --strokes")
}

// openExisting opens the configured database without creating a new one.
func openExisting(ctx context.Context) (*store.Store, error) {
	path := viper.GetString(config.KeyOutputDB)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database %s not available (run 'unihan build' first): %w", path, err)
	}
	return store.Open(ctx, path)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && lookupSearch == "" && lookupStrokes == 0 {
		return errors.New("give characters to look up, --search or --strokes")
	}

	ctx := cmd.Context()
	db, err := openExisting(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()

	if lookupSearch != "" {
		chars, err := db.Search(ctx, lookupSearch, lookupLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Search: %s (%d results)\n\n", lookupSearch, len(chars))
		printCharacterList(out, chars)
		return nil
	}

	if lookupStrokes > 0 {
		chars, err := db.CharactersByStrokes(ctx, lookupStrokes, lookupLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Characters with %d strokes (%d results)\n\n", lookupStrokes, len(chars))
		printCharacterList(out, chars)
		return nil
	}

	dict := pinyin.NewDictionary()
	input := strings.Join(args, "")
	fmt.Fprintf(out, "Looking up: %s\n\n", input)

	for _, r := range input {
		char := string(r)
		c, err := db.CharacterByChar(ctx, char)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(out, "Character: %s\n  (not in database)\n\n", char)
			continue
		}
		if err != nil {
			return err
		}

		printCharacter(ctx, out, db, dict, c)
		fmt.Fprintln(out)
	}

	return nil
}

func printCharacter(ctx context.Context, out io.Writer, db *store.Store, dict *pinyin.Dictionary, c *unihan.Character) {
	fmt.Fprintf(out, "Character: %s (%s)\n", c.Character, c.Codepoint)

	if c.Radical != nil {
		fmt.Fprintf(out, "  Radical: %d", *c.Radical)
		if c.RadicalChar != nil {
			fmt.Fprintf(out, " %s", *c.RadicalChar)
		}
		if rad, err := db.Radical(ctx, *c.Radical); err == nil {
			fmt.Fprintf(out, " (%s, %s)", rad.Meaning, rad.Pinyin)
		}
		if c.AdditionalStrokes != nil {
			fmt.Fprintf(out, " + %d", *c.AdditionalStrokes)
		}
		fmt.Fprintln(out)
	}
	if c.TotalStrokes != nil {
		fmt.Fprintf(out, "  Strokes: %d\n", *c.TotalStrokes)
	}

	if c.Pinyin == "" {
		fmt.Fprintf(out, "  Pinyin:  (none)\n")
	} else {
		tone, _ := pinyin.SplitTone(c.Pinyin)
		fmt.Fprintf(out, "  Pinyin:  %s (tone %d)\n", c.Pinyin, tone)
	}
	if readings := dict.Readings(c.Character); len(readings) > 0 {
		mark := "differs"
		if dict.Agrees(c.Character, c.Pinyin) {
			mark = "agrees"
		}
		fmt.Fprintf(out, "  Dictionary: %s (%s)\n", strings.Join(readings, ", "), mark)
	}

	printField(out, "Meaning", c.Definition)
	printField(out, "Cantonese", c.Cantonese)
	printField(out, "Simplified", c.SimplifiedVariant)
	printField(out, "Traditional", c.TraditionalVariant)
}

func printField(out io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", label, value)
}
