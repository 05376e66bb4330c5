package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORYNOOK_CONFIG", "")
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reader.FontSize != 16 || cfg.Reader.PageWidth != 80 || cfg.Reader.DarkMode {
		t.Fatalf("unexpected reader defaults %+v", cfg.Reader)
	}
	if cfg.Speech.Engine != "auto" || cfg.Speech.Rate != 0.85 {
		t.Fatalf("unexpected speech defaults %+v", cfg.Speech)
	}
	if cfg.Splash.Duration != 5*time.Second {
		t.Fatalf("unexpected splash duration %s", cfg.Splash.Duration)
	}
	if cfg.Gesture.ColumnUnits != 8 || cfg.Gesture.RowUnits != 16 {
		t.Fatalf("unexpected gesture scale %+v", cfg.Gesture)
	}
	if cfg.Log.File != DefaultLogFile() || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg != Defaults() {
		t.Fatalf("loaded defaults differ from Defaults():\n%+v\n%+v", cfg, Defaults())
	}
}

func TestLoadFileAndNormalize(t *testing.T) {
	path := writeConfig(t, `
[reader]
font_size = 8
dark_mode = true
page_width = -3

[speech]
engine = "Robot"
rate = 1.2

[splash]
duration = "2s"

[catalog]
path = " /tmp/books.toml "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reader.FontSize != 12 {
		t.Fatalf("font size should clamp to 12, got %d", cfg.Reader.FontSize)
	}
	if !cfg.Reader.DarkMode || cfg.Reader.PageWidth != 80 {
		t.Fatalf("unexpected reader config %+v", cfg.Reader)
	}
	if cfg.Speech.Engine != "auto" || cfg.Speech.Rate != 1.2 {
		t.Fatalf("unexpected speech config %+v", cfg.Speech)
	}
	if cfg.Splash.Duration != 2*time.Second {
		t.Fatalf("unexpected splash duration %s", cfg.Splash.Duration)
	}
	if cfg.Catalog.Path != "/tmp/books.toml" {
		t.Fatalf("catalog path not trimmed: %q", cfg.Catalog.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORYNOOK_READER_FONT_SIZE", "20")
	t.Setenv("STORYNOOK_SPEECH_ENGINE", "none")
	cfg, err := Load(writeConfig(t, "[reader]\nfont_size = 14\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Reader.FontSize != 20 {
		t.Fatalf("env should override file, got %d", cfg.Reader.FontSize)
	}
	if cfg.Speech.Engine != "none" {
		t.Fatalf("unexpected engine %q", cfg.Speech.Engine)
	}
}

func TestLoadConfigEnvPath(t *testing.T) {
	t.Setenv("STORYNOOK_CONFIG", writeConfig(t, "[log]\nlevel = \"DEBUG\"\n"))
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Log.Level)
	}
}

func TestLoadUnknownLogLevelFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[log]\nlevel = \"verbose\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unknown level should fall back to info, got %q", cfg.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}
