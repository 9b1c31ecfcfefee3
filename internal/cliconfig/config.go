package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Symbol modes select how raw input is split into symbols.
const (
	SymbolsChars  = "chars"
	SymbolsBytes  = "bytes"
	SymbolsFields = "fields"
	SymbolsLines  = "lines"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("lzc: invalid configuration")

// Config holds CLI configuration for lzc.
type Config struct {
	Input      string
	Symbols    string
	StripSpace bool

	Phrases bool
	Format  string

	MaxInputBytes int
	Timeout       time.Duration

	Watch    bool
	Debounce time.Duration

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Symbols:       SymbolsChars,
		StripSpace:    true,
		Format:        FormatText,
		MaxInputBytes: 64 << 20, // 64MB
		Debounce:      100 * time.Millisecond,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Symbols {
	case SymbolsChars, SymbolsBytes, SymbolsFields, SymbolsLines:
	default:
		return fmt.Errorf("%w: unknown symbols %q", ErrInvalidConfig, c.Symbols)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("%w: max-input-bytes must be positive", ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidConfig)
	}

	if c.Watch && (c.Input == "" || c.Input == "-") {
		return fmt.Errorf("%w: watch requires --file", ErrInvalidConfig)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
