package input

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	// ErrInputTooLarge is returned when the decoded input exceeds the configured limit.
	ErrInputTooLarge = errors.New("lzc: input too large")

	// ErrUnknownSymbols is returned for an unsupported symbol mode.
	ErrUnknownSymbols = errors.New("lzc: unknown symbol mode")
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Source names where a sequence comes from. Inline wins over Path; an
// empty Path or "-" reads Stdin.
type Source struct {
	Inline string
	Path   string
	Stdin  io.Reader
}

// Name returns a short label for logs and reports.
func (s Source) Name() string {
	switch {
	case s.Inline != "":
		return "argument"
	case s.Path == "" || s.Path == "-":
		return "stdin"
	default:
		return s.Path
	}
}

// Options control decoding and tokenization.
type Options struct {
	Symbols    string
	StripSpace bool
	MaxBytes   int
}

// Sequence is a tokenized input ready for parsing.
type Sequence struct {
	Name      string
	Mode      string
	Symbols   []string
	Separator string
}

// Join renders a run of symbols the way they appeared in the input.
func (s Sequence) Join(symbols []string) string {
	var b bytes.Buffer
	for i, sym := range symbols {
		if i > 0 {
			b.WriteString(s.Separator)
		}
		b.WriteString(sym)
	}
	return b.String()
}

// Load reads src, decompresses it if needed and splits it into symbols.
func Load(ctx context.Context, src Source, opts Options) (Sequence, error) {
	if err := ctx.Err(); err != nil {
		return Sequence{}, err
	}

	var data []byte
	if src.Inline != "" {
		if len(src.Inline) > opts.MaxBytes {
			return Sequence{}, fmt.Errorf("%w: argument is %d bytes, limit %d", ErrInputTooLarge, len(src.Inline), opts.MaxBytes)
		}
		data = []byte(src.Inline)
	} else {
		b, err := readSource(src, opts.MaxBytes)
		if err != nil {
			return Sequence{}, err
		}
		data = b
	}

	symbols, sep, err := Tokenize(data, opts.Symbols, opts.StripSpace)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{
		Name:      src.Name(),
		Mode:      opts.Symbols,
		Symbols:   symbols,
		Separator: sep,
	}, nil
}

func readSource(src Source, maxBytes int) ([]byte, error) {
	var r io.Reader
	if src.Path == "" || src.Path == "-" {
		if src.Stdin == nil {
			return nil, errors.New("lzc: no input: pass a sequence, --file or pipe stdin")
		}
		r = src.Stdin
	} else {
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec, closeFn, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src.Name(), err)
	}
	defer closeFn()

	data, err := io.ReadAll(io.LimitReader(dec, int64(maxBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Name(), err)
	}
	if len(data) > maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, src.Name(), maxBytes)
	}
	return data, nil
}

// decode sniffs the stream for gzip or zstd framing and wraps it accordingly.
func decode(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { zr.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}
