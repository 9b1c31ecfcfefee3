package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol modes.
const (
	ModeChars  = "chars"
	ModeBytes  = "bytes"
	ModeFields = "fields"
	ModeLines  = "lines"
)

// Tokenize splits data into symbols according to mode and returns the
// separator that joins symbols back into text.
//
// chars yields one symbol per rune and bytes one per byte; with strip set,
// whitespace is dropped first so wrapped sequences parse as one. fields
// splits on runs of whitespace. lines splits on newlines, keeping empty
// lines but not the empty string after a final newline.
func Tokenize(data []byte, mode string, strip bool) ([]string, string, error) {
	switch mode {
	case ModeChars:
		s := string(data)
		out := make([]string, 0, utf8.RuneCountInString(s))
		for i := 0; i < len(s); {
			r, w := utf8.DecodeRuneInString(s[i:])
			if !strip || !unicode.IsSpace(r) {
				out = append(out, s[i:i+w])
			}
			i += w
		}
		return out, "", nil

	case ModeBytes:
		out := make([]string, 0, len(data))
		for _, b := range data {
			if strip && isASCIISpace(b) {
				continue
			}
			out = append(out, string([]byte{b}))
		}
		return out, "", nil

	case ModeFields:
		return strings.Fields(string(data)), " ", nil

	case ModeLines:
		s := strings.TrimSuffix(string(data), "\n")
		if s == "" {
			return nil, "\n", nil
		}
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
		return lines, "\n", nil

	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownSymbols, mode)
	}
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
