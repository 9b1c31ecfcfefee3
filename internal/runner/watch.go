package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch analyzes the configured input file, then re-analyzes it every time
// the file is written or recreated, until ctx is cancelled. Failed re-runs
// are logged and watching continues.
func (r *Runner) Watch(ctx context.Context) error {
	path, err := filepath.Abs(r.cfg.Input)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", r.cfg.Input, err)
	}
	dir := filepath.Dir(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace files instead of writing them.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	log := r.opts.logger
	log.Info().Str("file", path).Msg("watching input")
	r.rerun(ctx)

	d := &debouncer{delay: r.cfg.Debounce}
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			d.trigger(func() { r.rerun(ctx) })

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (r *Runner) rerun(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := r.Run(ctx, ""); err != nil {
		r.opts.logger.Error().Err(err).Str("file", r.cfg.Input).Msg("analysis failed")
	}
}

// debouncer collapses bursts of events into one call after delay.
type debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
