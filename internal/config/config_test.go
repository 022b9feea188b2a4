package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v, "/opt/unihan/bin")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if want := filepath.Join("/opt/unihan", "data", "unihan"); cfg.DataDir != want {
		t.Errorf("expected data dir %q, got %q", want, cfg.DataDir)
	}
	if want := filepath.Join("/opt/unihan", "data", "databases", "unihan.db"); cfg.OutputDB != want {
		t.Errorf("expected output db %q, got %q", want, cfg.OutputDB)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.FullRefresh {
		t.Error("expected full refresh to default to false")
	}
	if cfg.Format != "text" {
		t.Errorf("expected text format, got %q", cfg.Format)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("UNIHAN_DATA_DIR", "/srv/unihan")
	t.Setenv("UNIHAN_FULL_REFRESH", "true")

	v := viper.New()
	SetDefaults(v, ".")
	v.SetEnvPrefix("UNIHAN")
	v.AutomaticEnv()

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataDir != "/srv/unihan" {
		t.Errorf("expected data dir from env, got %q", cfg.DataDir)
	}
	if !cfg.FullRefresh {
		t.Error("expected full refresh from env")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unihan.yaml")
	content := "data_dir: /data/unihan\noutput_db: /data/out.db\nformat: yaml\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	v := viper.New()
	SetDefaults(v, ".")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig returned error: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OutputDB != "/data/out.db" || cfg.Format != "yaml" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsEmptyPaths(t *testing.T) {
	v := viper.New()
	SetDefaults(v, ".")
	v.Set(KeyOutputDB, "")

	if _, err := Load(v); err == nil {
		t.Fatal("expected error for empty output_db")
	}
}
