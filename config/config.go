// Package config loads forecasting settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goseasonal/seasonal"
)

// Config holds settings shared by the command line tools.
type Config struct {
	Periodicity  int    `yaml:"periodicity"`   // Observations per seasonal cycle
	Decimals     int    `yaml:"decimals"`      // Decimal places kept in forecasts
	Unrounded    bool   `yaml:"unrounded"`     // Keep full precision
	MaxLength    int    `yaml:"max_length"`    // Longest accepted series, 0 for no limit
	ValueColumn  string `yaml:"value_column"`  // Column to read; empty requires a single-column file
	ChartDir     string `yaml:"chart_dir"`     // Where charts are written; empty disables charts
	LogLevel     string `yaml:"log_level"`     // zerolog level name
	OutputFormat string `yaml:"output_format"` // "text" or "json"
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Periodicity:  4,
		Decimals:     seasonal.DefaultDecimals,
		MaxLength:    seasonal.DefaultMaxLength,
		LogLevel:     "info",
		OutputFormat: "text",
	}
}

// Load reads a YAML file on top of the defaults.
// A missing file is not an error when optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for obvious mistakes.
func (c *Config) Validate() error {
	if c.Periodicity < 2 {
		return fmt.Errorf("periodicity must be at least 2, got %d", c.Periodicity)
	}
	if c.Decimals < 0 {
		return fmt.Errorf("decimals must not be negative, got %d", c.Decimals)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must not be negative, got %d", c.MaxLength)
	}
	switch c.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output_format %q", c.OutputFormat)
	}
	return nil
}

// ForecastOptions converts the settings into forecaster options.
func (c *Config) ForecastOptions() *seasonal.Options {
	return &seasonal.Options{
		Decimals:  c.Decimals,
		Unrounded: c.Unrounded,
		MaxLength: c.MaxLength,
	}
}
