// Package config loads the YAML configuration shared by the CLI and the
// Cloud Function.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config contains all runtime settings.
type Config struct {
	// Generator contains the defaults used when a request omits a value.
	Generator GeneratorConfig `yaml:"generator" validate:"required"`

	// Function contains Cloud Function settings.
	Function FunctionConfig `yaml:"function"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

type GeneratorConfig struct {
	Width       int  `yaml:"width" validate:"gte=1,lte=64"`
	Height      int  `yaml:"height" validate:"gte=1,lte=64"`
	MaxAttempts int  `yaml:"max_attempts" validate:"gte=1,lte=10000"`
	Fill        bool `yaml:"fill"`
	Deduplicate bool `yaml:"deduplicate"`
}

type FunctionConfig struct {
	// BigQueryProject enables wordScope lookups when set.
	BigQueryProject  string `yaml:"bigquery_project"`
	BigQueryTable    string `yaml:"bigquery_table" validate:"required_with=BigQueryProject"`
	BigQueryLocation string `yaml:"bigquery_location"`
	MaxPuzzles       int    `yaml:"max_puzzles" validate:"gte=1,lte=10"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			Width:       15,
			Height:      15,
			MaxAttempts: 100,
			Fill:        true,
		},
		Function: FunctionConfig{
			BigQueryLocation: "US",
			MaxPuzzles:       10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration's struct constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path, or returns the defaults when path is empty.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// ApplyEnv overrides function settings from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("BIGQUERY_PROJECT"); v != "" {
		c.Function.BigQueryProject = v
	}
	if v := getenv("BIGQUERY_TABLE"); v != "" {
		c.Function.BigQueryTable = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
