// Package config provides configuration loading and management for escapetower.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete escapetower configuration
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// DisplayConfig configures the component table
type DisplayConfig struct {
	// NameWidth is the padded width of the name column (default: 28)
	NameWidth int `yaml:"name_width"`
	// TypeWidth is the padded width of the type column (default: 18)
	TypeWidth int `yaml:"type_width"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: warn)
	Level string `yaml:"level"`
}

// MetricsConfig configures session metrics
type MetricsConfig struct {
	// Enabled prints the metrics exposition to stderr when the session ends
	Enabled bool `yaml:"enabled"`
}

// Width limits for table columns.
const (
	MinColumnWidth = 1
	MaxColumnWidth = 80
)

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			NameWidth: 28,
			TypeWidth: 18,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Display.NameWidth < MinColumnWidth || c.Display.NameWidth > MaxColumnWidth {
		return fmt.Errorf("display.name_width must be between %d and %d", MinColumnWidth, MaxColumnWidth)
	}
	if c.Display.TypeWidth < MinColumnWidth || c.Display.TypeWidth > MaxColumnWidth {
		return fmt.Errorf("display.type_width must be between %d and %d", MinColumnWidth, MaxColumnWidth)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
// A layer can switch metrics on but not off.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Display
	if other.Display.NameWidth != 0 {
		c.Display.NameWidth = other.Display.NameWidth
	}
	if other.Display.TypeWidth != 0 {
		c.Display.TypeWidth = other.Display.TypeWidth
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}

	// Metrics
	if other.Metrics.Enabled {
		c.Metrics.Enabled = true
	}
}
