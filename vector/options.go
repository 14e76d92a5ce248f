// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vector construction.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical programmer input),
//   - gatherOptions, the single place where defaults are applied.
//
// Notes:
//   - A negative start index is reported by New as ErrInvalidStartIndex;
//     it never panics.
//   - WithMaxSize can only tighten MaxVectorSize, never relax it.
package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStartIndex is the logical index of the first element.
	DefaultStartIndex = 0

	// DefaultMaxSize is the size bound applied when WithMaxSize is not given.
	DefaultMaxSize = MaxVectorSize

	// DefaultFixedShape leaves vectors resizable through Assign.
	DefaultFixedShape = false
)

const panicMaxSizeInvalid = "vector: WithMaxSize: n must be in [0, MaxVectorSize]"

// Option mutates internal options. Safe to apply repeatedly; the last write wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept ...Option and resolve them here.
type Options struct {
	startIndex int  // DefaultStartIndex; validated by New
	maxSize    int  // DefaultMaxSize; validated by WithMaxSize
	fixedShape bool // DefaultFixedShape
}

// WithStartIndex sets the logical index of the first element.
// A negative value makes New fail with ErrInvalidStartIndex.
func WithStartIndex(i int) Option {
	return func(o *Options) { o.startIndex = i }
}

// WithMaxSize tightens the size bound for a single construction.
// Panics when n < 0 or n > MaxVectorSize.
//
// Complexity: O(1).
func WithMaxSize(n int) Option {
	if n < 0 || n > MaxVectorSize {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = n }
}

// WithFixedShape locks size and start index: Assign from a differently shaped
// source fails with ErrFixedShape. Element writes stay allowed. Clones and
// arithmetic results inherit the lock.
func WithFixedShape() Option {
	return func(o *Options) { o.fixedShape = true }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		startIndex: DefaultStartIndex,
		maxSize:    DefaultMaxSize,
		fixedShape: DefaultFixedShape,
	}
}

// gatherOptions applies opts over the defaults in order. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
