package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (LZC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("LZC_FILE"), &cfg.Input)
	s.setString("symbols", os.Getenv("LZC_SYMBOLS"), &cfg.Symbols)
	s.setString("format", os.Getenv("LZC_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("LZC_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv("LZC_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("LZC_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	if err := s.setIntFromString("max-input-bytes", os.Getenv("LZC_MAX_INPUT_BYTES"), &cfg.MaxInputBytes); err != nil {
		return err
	}

	s.setBoolFromString("strip-space", os.Getenv("LZC_STRIP_SPACE"), &cfg.StripSpace)
	s.setBoolFromString("phrases", os.Getenv("LZC_PHRASES"), &cfg.Phrases)
	s.setBoolFromString("watch", os.Getenv("LZC_WATCH"), &cfg.Watch)

	return nil
}
