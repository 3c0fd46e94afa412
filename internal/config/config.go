// Package config holds the application settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nlyle/giotally/internal/calc"
	"github.com/nlyle/giotally/internal/histlog"
)

// Theme names accepted in configuration.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the application configuration. All fields have working
// defaults; a config file and command-line flags may override them.
type Config struct {
	Theme      string `yaml:"theme"`
	HistoryCap int    `yaml:"history_cap"`
	MaxInput   int    `yaml:"max_input"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:      ThemeDark,
		HistoryCap: histlog.DefaultCap,
		MaxInput:   calc.DefaultMaxInput,
	}
}

// Load reads settings from the YAML file at path, layered over the
// defaults. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("invalid theme %q (must be %q or %q)", c.Theme, ThemeDark, ThemeLight)
	}
	if c.HistoryCap <= 0 {
		return fmt.Errorf("history_cap must be positive, got %d", c.HistoryCap)
	}
	if c.MaxInput <= 0 {
		return fmt.Errorf("max_input must be positive, got %d", c.MaxInput)
	}
	return nil
}
