// Package config loads the application configuration from the user's config
// directory. Missing files and missing keys fall back to defaults, so a
// fresh install needs no setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plaisio/plaisio/internal/models"
)

// Config represents the application configuration.
type Config struct {
	// DatabasePath overrides where the board snapshot database lives.
	// Empty means the default under the user's home directory.
	DatabasePath string `yaml:"database_path"`

	// HistoryLimit caps how many undo entries are retained.
	HistoryLimit int `yaml:"history_limit"`

	// ColumnTitles overrides the display titles of the status columns,
	// keyed by column id (todo, in-progress, done).
	ColumnTitles map[models.Status]string `yaml:"column_titles"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory. A missing file yields
// the default config; a malformed file is an error.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "plaisio", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "plaisio", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults.
func (c *Config) applyDefaults() {
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = models.DefaultHistoryLimit
	}
	if c.ColumnTitles == nil {
		c.ColumnTitles = make(map[models.Status]string)
	}
	for _, s := range models.Statuses {
		if c.ColumnTitles[s] == "" {
			c.ColumnTitles[s] = s.Label()
		}
	}
}
