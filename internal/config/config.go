// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Data    DataConfig
	Logging LoggingConfig
}

// DataConfig holds the location and format of the game data files.
type DataConfig struct {
	// Dir is the directory holding the CSV files (default: <parent of cwd>/data)
	Dir string `env:"DATA_DIR" envAlt:"PIPEOPTZ_DATA_DIR"`

	// BuildingsFile is the building table file name inside Dir
	BuildingsFile string `env:"BUILDINGS_FILE" default:"buildings.csv"`

	// RecipesFile is the recipe table file name inside Dir
	RecipesFile string `env:"RECIPES_FILE" default:"recipes.csv"`

	// Delimiter separates fields in the data files (default: ;)
	Delimiter string `env:"CSV_DELIMITER" default:";"`

	// StrictKeys fails a load on the first row with an empty key (default: true).
	// When false such rows are dropped and logged.
	StrictKeys bool `env:"STRICT_KEYS" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// DataDir returns the configured data directory, or the data directory next
// to the working directory when none is set.
func (c *DataConfig) DataDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(wd), "data"), nil
}

// DelimiterRune returns the delimiter as a rune.
func (c *DataConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
