// Package report renders the outcome of one complexity analysis.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for an unsupported output format.
var ErrUnknownFormat = errors.New("lzc: unknown output format")

// Result describes one analyzed sequence.
type Result struct {
	Source     string        `json:"source" yaml:"source" toml:"source"`
	Symbols    string        `json:"symbols" yaml:"symbols" toml:"symbols"`
	Length     int           `json:"length" yaml:"length" toml:"length"`
	Complexity int           `json:"complexity" yaml:"complexity" toml:"complexity"`
	Phrases    []string      `json:"phrases,omitempty" yaml:"phrases,omitempty" toml:"phrases,omitempty"`
	Tail       string        `json:"tail,omitempty" yaml:"tail,omitempty" toml:"tail,omitempty"`
	Elapsed    time.Duration `json:"-" yaml:"-" toml:"-"`
}

// Write renders r to w in the given format: text, json, yaml or toml.
func Write(w io.Writer, format string, r Result) error {
	switch format {
	case "text", "":
		return writeText(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeText prints the complexity, then the phrases separated by " / " when
// they were requested, then any dropped tail in brackets.
func writeText(w io.Writer, r Result) error {
	if _, err := fmt.Fprintln(w, r.Complexity); err != nil {
		return err
	}
	if len(r.Phrases) == 0 {
		return nil
	}
	line := strings.Join(r.Phrases, " / ")
	if r.Tail != "" {
		line += " [" + r.Tail + "]"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
