// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/utmatrix/vector"

// Add returns the sum m + other, computed row by row with vector.Vector.Add.
// Matching rows of equal-size matrices always share size and start index.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(n²/2).
func (m *Triangular[T]) Add(other *Triangular[T]) (*Triangular[T], error) {
	return m.zipRows(ctxAdd, other, (*vector.Vector[T]).Add)
}

// Sub returns the difference m - other, row by row.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(n²/2).
func (m *Triangular[T]) Sub(other *Triangular[T]) (*Triangular[T], error) {
	return m.zipRows(ctxSub, other, (*vector.Vector[T]).Sub)
}

// zipRows applies op to each pair of rows into a fresh matrix; m is never touched.
func (m *Triangular[T]) zipRows(
	method string,
	other *Triangular[T],
	op func(a, b *vector.Vector[T]) (*vector.Vector[T], error),
) (*Triangular[T], error) {
	if err := validateBinarySameSize(m, other); err != nil {
		return nil, matrixErrorf(method, err)
	}

	rows := make([]*vector.Vector[T], len(m.rows))
	for i := range m.rows {
		row, err := op(m.rows[i], other.rows[i])
		if err != nil {
			return nil, matrixErrorf(method, err)
		}
		rows[i] = row
	}

	return &Triangular[T]{rows: rows}, nil
}
