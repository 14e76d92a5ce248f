// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Triangular construction.
// Mirrors package vector: Option/Options, Default* constants, and a single
// gatherOptions resolver. Option constructors panic only on nonsensical input.
package matrix

// MaxMatrixSize is the upper bound on the row/column count of a Triangular.
// It is deliberately independent of vector.MaxVectorSize.
const MaxMatrixSize = 10_000

// DefaultMaxSize is the size bound applied when WithMaxSize is not given.
const DefaultMaxSize = MaxMatrixSize

const panicMaxSizeInvalid = "matrix: WithMaxSize: n must be in [0, MaxMatrixSize]"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSize int // DefaultMaxSize
}

// WithMaxSize tightens the size bound for one construction.
// Panics when n < 0 or n > MaxMatrixSize.
func WithMaxSize(n int) Option {
	if n < 0 || n > MaxMatrixSize {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
