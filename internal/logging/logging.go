// Package logging builds the zerolog logger shared by the lzc command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level.
// A nil w writes to stderr.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

// Default returns an info-level console logger on stderr.
func Default() zerolog.Logger {
	logger, _ := New(os.Stderr, zerolog.LevelInfoValue)
	return logger
}
