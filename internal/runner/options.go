package runner

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Option configures optional behavior of a Runner.
type Option func(*options)

// options holds the optional configuration for a Runner.
type options struct {
	logger zerolog.Logger
	out    io.Writer
	stdin  io.Reader
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
		out:    os.Stdout,
		stdin:  os.Stdin,
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where reports are written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithStdin sets the reader used when the input is stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}
