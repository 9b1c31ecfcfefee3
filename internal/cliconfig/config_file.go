package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Input         string `toml:"file"`
	Symbols       string `toml:"symbols"`
	StripSpace    *bool  `toml:"strip_space"`
	Phrases       *bool  `toml:"phrases"`
	Format        string `toml:"format"`
	MaxInputBytes int    `toml:"max_input_bytes"`
	Timeout       string `toml:"timeout"`
	Watch         *bool  `toml:"watch"`
	Debounce      string `toml:"debounce"`
	LogLevel      string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.lzc/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".lzc", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", fc.Input, &cfg.Input)
	s.setString("symbols", fc.Symbols, &cfg.Symbols)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setInt("max-input-bytes", fc.MaxInputBytes, &cfg.MaxInputBytes)

	s.setBool("strip-space", fc.StripSpace, &cfg.StripSpace)
	s.setBool("phrases", fc.Phrases, &cfg.Phrases)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
