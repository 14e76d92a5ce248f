// SPDX-License-Identifier: MIT

// Package matrix provides Triangular, a square upper-triangular matrix stored
// as one vector.Vector per row.
//
// Layout:
//
//	Row i holds the n-i elements of columns i..n-1 and starts at logical index
//	i, so row.At(j) addresses column j directly. Elements below the diagonal
//	are never stored:
//
//	    row 0: [a00 a01 a02]
//	    row 1:     [a11 a12]
//	    row 2:         [a22]
//
// Index translation and bounds checks live in package vector; this package
// only validates the row index and the matrix-level size rules.
//
// Supported: construction, row and element access, deep copy, equality,
// assignment, addition and subtraction. Matrix product and scalar operations
// are not provided.
package matrix
