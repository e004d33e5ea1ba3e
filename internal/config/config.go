// Package config loads and saves run configuration for the ioneq CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ioneq/internal/rates"
)

// Default run configuration values.
const (
	DefaultElement = "Fe"
	DefaultTMin    = 1e4
	DefaultTMax    = 1e8
	DefaultPoints  = 100
	DefaultScale   = "log"
)

// Config describes one equilibrium computation run.
type Config struct {
	Element  string               `yaml:"element"`
	TMin     float64              `yaml:"tmin"`
	TMax     float64              `yaml:"tmax"`
	Points   int                  `yaml:"points"`
	Scale    string               `yaml:"scale"` // "log" or "linear"
	Provider rates.ProviderConfig `yaml:"provider"`
}

// DefaultConfig returns the documented defaults: iron over a logarithmic
// 1e4..1e8 K grid with the built-in provider.
func DefaultConfig() *Config {
	return &Config{
		Element:  DefaultElement,
		TMin:     DefaultTMin,
		TMax:     DefaultTMax,
		Points:   DefaultPoints,
		Scale:    DefaultScale,
		Provider: rates.DefaultProviderConfig(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Grid builds the temperature grid the config describes.
func (c *Config) Grid() (rates.TemperatureGrid, error) {
	if c.TMin <= 0 || c.TMax < c.TMin {
		return nil, fmt.Errorf("invalid temperature range %g..%g K", c.TMin, c.TMax)
	}
	if c.Points < 1 {
		return nil, fmt.Errorf("points must be >= 1, got %d", c.Points)
	}
	switch c.Scale {
	case "log", "":
		return rates.Logspace(c.TMin, c.TMax, c.Points), nil
	case "linear":
		return rates.Linspace(c.TMin, c.TMax, c.Points), nil
	default:
		return nil, fmt.Errorf("unknown scale %q (want log or linear)", c.Scale)
	}
}
