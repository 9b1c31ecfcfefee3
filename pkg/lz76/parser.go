package lz76

import "context"

// pollEvery is the number of parse steps between context checks in Walk.
const pollEvery = 4096

// Phrase is a contiguous range [Start, Start+Len) of a parsed sequence.
type Phrase struct {
	Start int
	Len   int
}

// End returns the index one past the last symbol of the phrase.
func (p Phrase) End() int {
	return p.Start + p.Len
}

// edge links a phrase to its one-symbol extension in the phrase trie.
// The root (empty phrase) has id 0; the i-th recorded phrase has id i.
type edge[S comparable] struct {
	parent int
	sym    S
}

// Walk parses seq and calls fn for every phrase, in order.
//
// It returns the number of leading symbols covered by complete phrases;
// seq[covered:] is the dangling tail the parse drops. ctx is polled
// periodically and its error is returned if it is done. A non-nil error
// from fn stops the walk and is returned as is.
func Walk[S comparable](ctx context.Context, seq []S, fn func(Phrase) error) (int, error) {
	n := len(seq)
	if n == 0 {
		return 0, nil
	}

	trie := make(map[edge[S]]int)
	ind, inc := 0, 1
	node := 0
	steps := 0

	for ind+inc <= n {
		steps++
		if steps%pollEvery == 0 {
			if err := ctx.Err(); err != nil {
				return ind, err
			}
		}

		// seq[ind:ind+inc-1] is a known phrase (node); test its extension.
		key := edge[S]{parent: node, sym: seq[ind+inc-1]}
		if child, ok := trie[key]; ok {
			node = child
			inc++
			continue
		}

		trie[key] = len(trie) + 1
		if fn != nil {
			if err := fn(Phrase{Start: ind, Len: inc}); err != nil {
				return ind + inc, err
			}
		}
		ind += inc
		inc = 1
		node = 0
	}
	return ind, nil
}

// Phrases returns the decomposition of seq as ranges.
func Phrases[S comparable](seq []S) []Phrase {
	var out []Phrase
	_, _ = Walk(context.Background(), seq, func(p Phrase) error {
		out = append(out, p)
		return nil
	})
	return out
}

// Decompose returns the phrases of seq in parse order.
// Each phrase is a sub-slice of seq and shares its backing array.
func Decompose[S comparable](seq []S) [][]S {
	var out [][]S
	_, _ = Walk(context.Background(), seq, func(p Phrase) error {
		out = append(out, seq[p.Start:p.End():p.End()])
		return nil
	})
	return out
}

// Complexity returns the LZ76 complexity of seq, the number of phrases in
// its decomposition.
func Complexity[S comparable](seq []S) int {
	c, _ := ComplexityContext(context.Background(), seq)
	return c
}

// ComplexityContext is like Complexity but stops early when ctx is done.
func ComplexityContext[S comparable](ctx context.Context, seq []S) (int, error) {
	count := 0
	_, err := Walk(ctx, seq, func(Phrase) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Tail returns the trailing symbols of seq that the parse discards.
func Tail[S comparable](seq []S) []S {
	covered, _ := Walk(context.Background(), seq, nil)
	return seq[covered:]
}
