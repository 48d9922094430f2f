package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Week start constants
const (
	WeekStartMonday = "monday"
	WeekStartSunday = "sunday"
)

// Config represents the flat tlog configuration
type Config struct {
	Version         string `json:"version"`
	DatabasePath    string `json:"database_path,omitempty"`    // overrides ~/.tlog/tlog.db
	WeekStart       string `json:"week_start,omitempty"`       // "monday" or "sunday"
	DefaultCategory string `json:"default_category,omitempty"` // category name used by `tlog log` when --category is omitted
}

// LoadConfig reads config.json from the .tlog directory under dir
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".tlog", "config.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.WeekStart == "" {
		cfg.WeekStart = WeekStartMonday
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the .tlog directory under dir
func SaveConfig(dir string, cfg *Config) error {
	tlogDir := filepath.Join(dir, ".tlog")
	if err := os.MkdirAll(tlogDir, 0755); err != nil {
		return fmt.Errorf("failed to create .tlog dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(tlogDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDatabasePath returns the default database location.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tlog", "tlog.db"), nil
}
