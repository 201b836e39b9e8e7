package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/bmcar/internal/geo"
)

// Config holds application configuration.
type Config struct {
	// ListLimit overrides the platform list limit when positive.
	ListLimit    int           `json:"listLimit"`
	Units        string        `json:"units"`
	Locale       string        `json:"locale"`
	LocationFile string        `json:"locationFile"`
	Home         *geo.Position `json:"home,omitempty"`
	LogFile      string        `json:"logFile"`
	LogLevel     string        `json:"logLevel"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Units:    "metric",
		Locale:   "en",
		LogLevel: "info",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Units == "" {
		config.Units = defaults.Units
	}
	if config.Locale == "" {
		config.Locale = defaults.Locale
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.ListLimit < 0 {
		config.ListLimit = 0
	}
	if config.Home != nil && !config.Home.Valid() {
		config.Home = nil
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/bmcar/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
