// Package lz76 computes the Lempel-Ziv (LZ76) complexity of a symbol sequence.
//
// The sequence is parsed greedily from left to right. At each position the
// parser grows a candidate phrase one symbol at a time until the candidate is
// not yet a known phrase, records it, and continues after it. The complexity
// is the number of phrases recorded.
//
// # Usage
//
// Work on strings directly:
//
//	lz76.DecomposeString("1001111011000010")
//	// [1 0 01 11 10 110 00 010]
//
//	lz76.ComplexityString("1001111011000010")
//	// 8
//
// Or on any slice of comparable symbols:
//
//	bits := []bool{true, false, false, true}
//	n := lz76.Complexity(bits)
//
// # Dangling tail
//
// The parse stops as soon as the growing candidate no longer fits in the
// sequence. That last candidate is discarded: it is not reported as a phrase
// and does not count towards the complexity, even though it was never seen
// before. [Tail] returns the discarded symbols. This matches the reference
// values published for this variant of LZ76 and is kept deliberately.
//
// # Cost
//
// Phrases are stored as a trie whose edges are kept in a single map keyed
// by (phrase, next symbol). Every growth step is one map lookup, phrase
// contents returned by [Decompose] are sub-slices of the input, and no
// candidate is ever copied.
//
// All functions are pure and safe for concurrent use on independent inputs.
//
// # Version
//
// Current version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package lz76
