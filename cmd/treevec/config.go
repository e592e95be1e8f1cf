package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treevec/treevec"
)

// Config holds the settings shared by all commands.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// Output selects how vectors are printed: text, json or yaml.
	Output string `yaml:"output" validate:"oneof=text json yaml"`
	// Format selects the text layout: lengths (label:name:dist) or names.
	Format string `yaml:"format" validate:"oneof=lengths names"`
	// Compact drops leaf labels and names from the text layout.
	Compact bool `yaml:"compact"`
	// Workers bounds how many segments are compared at once.
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
}

var validate = validator.New()

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Output:   "text",
		Format:   "lengths",
		Workers:  1,
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Level maps LogLevel onto a slog level.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// FormatOptions returns the text layout selected by Format and Compact.
func (c Config) FormatOptions() treevec.FormatOptions {
	opts := treevec.FormatOptions{Format: treevec.WithLengths, Compact: c.Compact}
	if c.Format == "names" {
		opts.Format = treevec.NamesOnly
	}

	return opts
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
