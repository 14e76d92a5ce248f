// SPDX-License-Identifier: MIT

// Package vector provides Vector, a bounds-checked dynamic vector of numeric
// elements with value semantics.
//
// What & Why:
//
//	A Vector owns a contiguous buffer of Size() elements and a start index.
//	Every logical index passed to At/Set is translated by subtracting the start
//	index before the bounds check, so a vector can represent a window that
//	begins at an arbitrary logical position. matrix.Triangular relies on this to
//	address row i of an upper-triangular matrix by column (i..n-1) while only
//	storing n-i elements.
//
// Guarantees:
//
//   - Public accessors never panic on bad input; they return sentinel errors
//     (ErrOutOfRange, ErrSizeMismatch, ...) matchable with errors.Is.
//   - Clone, Assign and every arithmetic operation allocate fresh storage; no two
//     vectors ever alias the same buffer.
//   - Failed operations leave their receiver untouched.
//
// Complexity:
//
//	Size/StartIndex/At/Set are O(1). Clone, Assign, Equal and all arithmetic are O(n).
//
// A Vector is not safe for concurrent mutation; distinct vectors may be used
// from different goroutines freely.
package vector
