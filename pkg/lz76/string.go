package lz76

import "context"

// DecomposeString parses s rune by rune and returns its phrases as
// substrings of s.
func DecomposeString(s string) []string {
	runes, offsets := splitRunes(s)
	phrases := Phrases(runes)
	if len(phrases) == 0 {
		return nil
	}
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = s[offsets[p.Start]:offsets[p.End()]]
	}
	return out
}

// ComplexityString returns the LZ76 complexity of s, counted over runes.
func ComplexityString(s string) int {
	return Complexity([]rune(s))
}

// TailString returns the suffix of s that DecomposeString drops.
func TailString(s string) string {
	runes, offsets := splitRunes(s)
	covered, _ := Walk(context.Background(), runes, nil)
	return s[offsets[covered]:]
}

// splitRunes returns the runes of s and the byte offset of each rune, with
// len(s) appended so offsets[len(runes)] is valid.
func splitRunes(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}
