package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/bmcar/internal/storage"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmcar", "config.json")

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != storage.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}

func TestLoadConfig_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"listLimit": 4, "units": "imperial", "home": {"lat": 48.1, "lon": 11.6}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ListLimit != 4 {
		t.Errorf("expected listLimit 4, got %d", cfg.ListLimit)
	}
	if cfg.Units != "imperial" {
		t.Errorf("expected imperial units, got %q", cfg.Units)
	}
	if cfg.Locale != "en" || cfg.LogLevel != "info" {
		t.Errorf("expected defaults for missing fields, got locale=%q logLevel=%q", cfg.Locale, cfg.LogLevel)
	}
	if cfg.Home == nil || cfg.Home.Lat != 48.1 {
		t.Errorf("expected home position, got %+v", cfg.Home)
	}
}

func TestLoadConfig_SanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"listLimit": -3, "home": {"lat": 123, "lon": 0}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := storage.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ListLimit != 0 {
		t.Errorf("expected negative listLimit to reset to 0, got %d", cfg.ListLimit)
	}
	if cfg.Home != nil {
		t.Errorf("expected out-of-range home to be dropped, got %+v", cfg.Home)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := storage.LoadConfig(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
