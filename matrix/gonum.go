// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/utmatrix/vector"
)

// ToTriDense copies m into a new gonum upper-triangular matrix, converting
// every stored element to float64. gonum rejects zero-size matrices, so an
// empty m yields ErrInvalidSize.
//
// Complexity: O(n²/2).
func (m *Triangular[T]) ToTriDense() (*mat.TriDense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToTri, ErrNilMatrix)
	}
	n := len(m.rows)
	if n == 0 {
		return nil, matrixErrorf(ctxToTri, ErrInvalidSize)
	}
	t := mat.NewTriDense(n, mat.Upper, nil)
	for i, row := range m.rows {
		for j := i; j < n; j++ {
			x, err := row.At(j)
			if err != nil {
				return nil, cellErrorf(ctxToTri, i, j, err)
			}
			t.SetTri(i, j, float64(x))
		}
	}

	return t, nil
}

// FromTriDense builds a Triangular from a gonum upper-triangular matrix,
// converting each element with T(x). Conversion to integer kinds truncates
// toward zero.
//
// Errors: ErrNilMatrix, ErrTriangleKind (lower source), ErrInvalidSize.
// Complexity: O(n²/2).
func FromTriDense[T vector.Number](src *mat.TriDense, opts ...Option) (*Triangular[T], error) {
	if src == nil {
		return nil, matrixErrorf(ctxFrom, ErrNilMatrix)
	}
	n, kind := src.Triangle()
	if kind != mat.Upper {
		return nil, matrixErrorf(ctxFrom, ErrTriangleKind)
	}
	m, err := NewTriangular[T](n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Triangular.%s: %w", ctxFrom, err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err = m.rows[i].Set(j, T(src.At(i, j))); err != nil {
				return nil, cellErrorf(ctxFrom, i, j, err)
			}
		}
	}

	return m, nil
}
