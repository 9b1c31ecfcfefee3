// Package runner ties input loading, the LZ76 parser and reporting together
// for the lzc command.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/lzc/internal/cliconfig"
	"github.com/bft-labs/lzc/internal/input"
	"github.com/bft-labs/lzc/internal/report"
	"github.com/bft-labs/lzc/pkg/lz76"
)

// Runner analyzes sequences according to a validated Config.
type Runner struct {
	cfg  cliconfig.Config
	opts options

	// mu serializes analyses so watch re-runs never interleave output.
	mu sync.Mutex
}

// New creates a Runner. cfg should already be validated.
func New(cfg cliconfig.Config, opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{cfg: cfg, opts: o}
}

// Run loads the sequence (arg if non-empty, otherwise the configured file
// or stdin), analyzes it and writes the report.
func (r *Runner) Run(ctx context.Context, arg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq, err := r.load(ctx, arg)
	if err != nil {
		return err
	}
	res, err := r.Analyze(ctx, seq)
	if err != nil {
		return err
	}
	if err := report.Write(r.opts.out, r.cfg.Format, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Analyze parses seq and builds its report. Phrases are collected only when
// the configuration asks for them.
func (r *Runner) Analyze(ctx context.Context, seq input.Sequence) (report.Result, error) {
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	res := report.Result{
		Source:  seq.Name,
		Symbols: seq.Mode,
		Length:  len(seq.Symbols),
	}

	covered, err := lz76.Walk(ctx, seq.Symbols, func(p lz76.Phrase) error {
		res.Complexity++
		if r.cfg.Phrases {
			res.Phrases = append(res.Phrases, seq.Join(seq.Symbols[p.Start:p.End()]))
		}
		return nil
	})
	if err != nil {
		return report.Result{}, fmt.Errorf("parse %s: %w", seq.Name, err)
	}
	res.Tail = seq.Join(seq.Symbols[covered:])
	res.Elapsed = time.Since(start)

	r.opts.logger.Debug().
		Str("source", res.Source).
		Int("length", res.Length).
		Int("complexity", res.Complexity).
		Int("tail", len(seq.Symbols)-covered).
		Dur("elapsed", res.Elapsed).
		Msg("analysis complete")

	return res, nil
}

func (r *Runner) load(ctx context.Context, arg string) (input.Sequence, error) {
	src := input.Source{
		Inline: arg,
		Path:   r.cfg.Input,
		Stdin:  r.opts.stdin,
	}
	seq, err := input.Load(ctx, src, input.Options{
		Symbols:    r.cfg.Symbols,
		StripSpace: r.cfg.StripSpace,
		MaxBytes:   r.cfg.MaxInputBytes,
	})
	if err != nil {
		return input.Sequence{}, fmt.Errorf("load input: %w", err)
	}
	r.opts.logger.Debug().
		Str("source", seq.Name).
		Str("symbols", seq.Mode).
		Int("length", len(seq.Symbols)).
		Msg("input loaded")
	return seq, nil
}
