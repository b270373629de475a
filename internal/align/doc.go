// Package align recovers per-sentence timestamps from a word-level
// transcript by matching normalized sentence text against a glued buffer of
// normalized word text.
//
// Matching is exact and forward-only: a single cursor advances through the
// buffer as sentences match, which keeps sentence order consistent with
// word order and makes the amortized cost linear on well-segmented input.
// There is no fuzzy fallback; a sentence either equals a contiguous window
// of the buffer or it is reported as unmatched.
package align
