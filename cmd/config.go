package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the account settings of the CLI.
type Config struct {
	// FillsFile is the path to the append-only fill log (JSONL).
	FillsFile string `yaml:"fills_file"`
	// Currency is the ISO 4217 code of the account cash balance.
	Currency string `yaml:"currency"`
	// OpeningCash is the cash the account started with, before any fill.
	OpeningCash float64 `yaml:"opening_cash"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		FillsFile:   "fills.jsonl",
		Currency:    "USD",
		OpeningCash: 0,
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse configuration %q: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.FillsFile == "" {
		return fmt.Errorf("configuration: fills_file must not be empty")
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("configuration: currency %q must be a 3-letter ISO 4217 code", c.Currency)
	}
	if c.OpeningCash < 0 {
		return fmt.Errorf("configuration: opening_cash must not be negative")
	}
	return nil
}
