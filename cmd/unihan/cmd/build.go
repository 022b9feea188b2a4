package cmd

import (
	"fmt"

	"github.com/f3rmion/unihan/internal/etl"
	"github.com/f3rmion/unihan/internal/log"
	"github.com/f3rmion/unihan/internal/report"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the unihan database from the Unihan text files",
	Long: `Parse the Unihan text files, merge fields per codepoint and write
them to the SQLite database, then print summary statistics.

Existing rows are replaced by codepoint. Rows for codepoints no longer
present in the source files are kept unless --full-refresh is given.

Examples:
  unihan build
  unihan build --data-dir ./data/unihan --output-db ./unihan.db
  unihan build --full-refresh --format yaml`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !report.ValidFormat(cfg.Format) {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	pipeline := etl.New(etl.Options{
		DataDir:     cfg.DataDir,
		OutputDB:    cfg.OutputDB,
		FullRefresh: cfg.FullRefresh,
	}, log.WithRun(logger))

	result, err := pipeline.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("building unihan database: %w", err)
	}

	return report.Render(cmd.OutOrStdout(), result, cfg.Format)
}
