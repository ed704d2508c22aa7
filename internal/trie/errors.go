package trie

import "errors"

// ErrInvariantViolation indicates arena inconsistency: a parent/child index
// pointing outside the arena, or a depth-bucket entry whose computed depth
// disagrees with its parent's. This can only follow from a bug in this
// package's own bookkeeping, never from caller input, so it panics rather
// than returning an error, matching how this package treats internal
// bookkeeping bugs as fatal rather than recoverable.
var ErrInvariantViolation = errors.New("trie: arena invariant violation")
