// Package cmd contains all CLI commands for the unihan tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/f3rmion/unihan/internal/config"
	"github.com/f3rmion/unihan/internal/log"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unihan",
	Short: "Build a SQLite database from the Unicode Han database",
	Long: `unihan converts the Unihan text files into a SQLite database.

It reads, in order:
  - Unihan_RadicalStrokeCounts.txt
  - Unihan_Readings.txt
  - Unihan_DictionaryLikeData.txt
  - Unihan_Variants.txt

merges the fields for each codepoint and writes one row per character
to the unihan table, next to a small radicals reference table.

Running 'unihan' without arguments performs the build.`,
	SilenceUsage: true,
	RunE:         runBuild,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./unihan.yaml)")
	flags.String("data-dir", "", "directory containing the Unihan_*.txt files")
	flags.String("output-db", "", "path of the SQLite database to write")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("verbose", false, "verbose output (same as --log-level debug)")
	flags.Bool("full-refresh", false, "delete characters missing from this run's source files")
	flags.String("format", "", "report format: text, yaml, json")

	bindFlags()
}

// bindFlags ties the persistent flags to their viper keys.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag(config.KeyDataDir, flags.Lookup("data-dir"))
	viper.BindPFlag(config.KeyOutputDB, flags.Lookup("output-db"))
	viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	viper.BindPFlag(config.KeyFullRefresh, flags.Lookup("full-refresh"))
	viper.BindPFlag(config.KeyFormat, flags.Lookup("format"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: could not read .env:", err)
	}

	config.SetDefaults(viper.GetViper(), config.ExecutableDir())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("unihan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
	}

	viper.SetEnvPrefix("UNIHAN")
	viper.AutomaticEnv()
}

// loadConfig resolves settings and builds the logger for a command.
func loadConfig(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	level := cfg.LogLevel
	if viper.GetBool("verbose") {
		level = "debug"
	}

	logger, err := log.NewLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
