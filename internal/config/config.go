// Package config resolves the settings for a Unihan build.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Setting keys, shared by flags, UNIHAN_* environment variables and the
// config file.
const (
	KeyDataDir     = "data_dir"
	KeyOutputDB    = "output_db"
	KeyLogLevel    = "log_level"
	KeyFullRefresh = "full_refresh"
	KeyFormat      = "format"
)

// Config holds the settings for one run.
type Config struct {
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`         // Directory holding the Unihan_*.txt files
	OutputDB    string `mapstructure:"output_db" yaml:"output_db"`       // SQLite file to write
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`       // logrus level name
	FullRefresh bool   `mapstructure:"full_refresh" yaml:"full_refresh"` // Delete rows missing from this run
	Format      string `mapstructure:"format" yaml:"format"`             // Report format: text, yaml, json
}

// SetDefaults registers defaults on v. Paths are resolved against baseDir,
// normally the directory of the executable.
func SetDefaults(v *viper.Viper, baseDir string) {
	v.SetDefault(KeyDataDir, filepath.Join(baseDir, "..", "data", "unihan"))
	v.SetDefault(KeyOutputDB, filepath.Join(baseDir, "..", "data", "databases", "unihan.db"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyFullRefresh, false)
	v.SetDefault(KeyFormat, "text")
}

// Load reads the resolved settings from v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDataDir)
	}
	if cfg.OutputDB == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyOutputDB)
	}

	return &cfg, nil
}

// ExecutableDir returns the directory of the running binary, falling back to
// the working directory.
func ExecutableDir() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
