// Package config loads the profileform YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/present"
)

// Config holds runtime settings shared by every front end.
type Config struct {
	// Addr is the listen address for `serve`.
	Addr string `yaml:"addr"`
	// SubmitDelay is the simulated submission time.
	SubmitDelay time.Duration `yaml:"submit_delay"`
	// Placeholder replaces blank summary values.
	Placeholder string `yaml:"placeholder"`
	// DateLayout formats the date of birth in the summary.
	DateLayout string `yaml:"date_layout"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Theme selects the web page palette.
	Theme string `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:        ":8080",
		SubmitDelay: formstate.DefaultSubmitDelay,
		Placeholder: present.DefaultPlaceholder,
		DateLayout:  present.DefaultDateLayout,
		LogLevel:    "info",
		Theme:       "light",
	}
}

// Load reads path over the defaults. A missing file yields the defaults and an
// empty path skips the read.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no front end can run with.
func (c Config) Validate() error {
	if c.SubmitDelay < 0 {
		return fmt.Errorf("config: submit_delay must not be negative, got %s", c.SubmitDelay)
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		return errors.New("config: date_layout is required")
	}
	if strings.TrimSpace(c.Placeholder) == "" {
		return errors.New("config: placeholder is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
