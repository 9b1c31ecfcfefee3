package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/lzc/internal/cliconfig"
	"github.com/bft-labs/lzc/internal/input"
	"github.com/bft-labs/lzc/internal/report"
)

func TestRunner_Analyze(t *testing.T) {
	tests := []struct {
		name           string
		symbols        string
		data           string
		phrases        bool
		wantComplexity int
		wantPhrases    []string
		wantTail       string
	}{
		{
			name:           "reference sequence",
			symbols:        cliconfig.SymbolsChars,
			data:           "100111101100001000001010",
			phrases:        true,
			wantComplexity: 10,
			wantPhrases:    []string{"1", "0", "01", "11", "10", "110", "00", "010", "000", "0101"},
			wantTail:       "0",
		},
		{
			name:           "count only",
			symbols:        cliconfig.SymbolsChars,
			data:           "1010101010101010",
			wantComplexity: 7,
		},
		{
			name:           "fields",
			symbols:        cliconfig.SymbolsFields,
			data:           "the cat the cat the dog",
			phrases:        true,
			wantComplexity: 4,
			wantPhrases:    []string{"the", "cat", "the cat", "the dog"},
		},
		{
			name:           "empty",
			symbols:        cliconfig.SymbolsChars,
			data:           "",
			phrases:        true,
			wantComplexity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cliconfig.DefaultConfig()
			cfg.Symbols = tt.symbols
			cfg.Phrases = tt.phrases

			symbols, sep, err := input.Tokenize([]byte(tt.data), tt.symbols, true)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			seq := input.Sequence{Name: "test", Mode: tt.symbols, Symbols: symbols, Separator: sep}

			res, err := New(cfg).Analyze(context.Background(), seq)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if res.Complexity != tt.wantComplexity {
				t.Errorf("Complexity = %d, want %d", res.Complexity, tt.wantComplexity)
			}
			if !reflect.DeepEqual(res.Phrases, tt.wantPhrases) {
				t.Errorf("Phrases = %q, want %q", res.Phrases, tt.wantPhrases)
			}
			if res.Tail != tt.wantTail {
				t.Errorf("Tail = %q, want %q", res.Tail, tt.wantTail)
			}
			if res.Length != len(symbols) {
				t.Errorf("Length = %d, want %d", res.Length, len(symbols))
			}
		})
	}
}

func TestRunner_AnalyzeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq := input.Sequence{Name: "big", Symbols: make([]string, 1<<16)}
	_, err := New(cliconfig.DefaultConfig()).Analyze(ctx, seq)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Analyze() error = %v, want context.Canceled", err)
	}
}

func TestRunner_Run(t *testing.T) {
	t.Run("inline argument as json", func(t *testing.T) {
		cfg := cliconfig.DefaultConfig()
		cfg.Format = cliconfig.FormatJSON
		cfg.Phrases = true

		var out bytes.Buffer
		r := New(cfg, WithOutput(&out))
		if err := r.Run(context.Background(), "1001111011000010"); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		var got report.Result
		if err := json.Unmarshal(out.Bytes(), &got); err != nil {
			t.Fatalf("decode output: %v\n%s", err, out.String())
		}
		if got.Complexity != 8 || got.Source != "argument" || len(got.Phrases) != 8 {
			t.Errorf("Run() result = %+v", got)
		}
	})

	t.Run("stdin as text", func(t *testing.T) {
		var out bytes.Buffer
		r := New(cliconfig.DefaultConfig(),
			WithOutput(&out),
			WithStdin(strings.NewReader("1001111011000010000010\n")),
		)
		if err := r.Run(context.Background(), ""); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if out.String() != "9\n" {
			t.Errorf("Run() output = %q, want %q", out.String(), "9\n")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := cliconfig.DefaultConfig()
		cfg.Input = filepath.Join(t.TempDir(), "missing.txt")
		err := New(cfg, WithOutput(&bytes.Buffer{})).Run(context.Background(), "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Run() error = %v, want os.ErrNotExist", err)
		}
	})
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestRunner_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seq.txt")
	if err := os.WriteFile(path, []byte("0000\n"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cfg := cliconfig.DefaultConfig()
	cfg.Input = path
	cfg.Watch = true
	cfg.Debounce = 20 * time.Millisecond

	out := &syncBuffer{}
	r := New(cfg, WithOutput(out))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	if !waitFor(t, 2*time.Second, func() bool { return out.String() == "2\n" }) {
		cancel()
		t.Fatalf("initial analysis output = %q, want %q", out.String(), "2\n")
	}

	// Give the watcher a moment, then change the file.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("1001111011000010\n"), 0644); err != nil {
		cancel()
		t.Fatalf("rewrite input: %v", err)
	}

	if !waitFor(t, 5*time.Second, func() bool { return strings.HasSuffix(out.String(), "8\n") }) {
		cancel()
		t.Fatalf("output after change = %q, want trailing %q", out.String(), "8\n")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return after cancel")
	}
}

func TestRunner_WatchMissingDir(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "nope", "seq.txt")
	if err := New(cfg).Watch(context.Background()); err == nil {
		t.Error("Watch() expected error for missing directory")
	}
}
