// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

// Config holds settings for the chunin command
type Config struct {
	LogLevel string `env:"CHUNIN_LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"CHUNIN_NO_COLOR"`

	// Tables is a YAML file merged over the embedded encounter tables.
	Tables string `env:"CHUNIN_TABLES"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables instead of the process environment.
// A nil map reads the process environment.
func LoadFrom(environment map[string]string) (*Config, error) {
	var cfg Config
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks the values that env tags cannot
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.InvalidField("CHUNIN_LOG_LEVEL", err.Error())
	}
	return vb.Build()
}

// Level returns the slog level for LogLevel. Invalid values fall back to
// warn; Load rejects them earlier.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, err
	}
	return level, nil
}
