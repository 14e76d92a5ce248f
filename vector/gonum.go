// SPDX-License-Identifier: MIT

package vector

import "gonum.org/v1/gonum/mat"

// ToVecDense copies v into a new gonum column vector, converting every element
// to float64. gonum rejects zero-length vectors, so an empty v yields
// ErrInvalidSize and a nil v ErrNilVector. The start index is not carried over.
//
// Complexity: O(n).
func (v *Vector[T]) ToVecDense() (*mat.VecDense, error) {
	if v == nil {
		return nil, vectorErrorf(ctxToVec, ErrNilVector)
	}
	if len(v.data) == 0 {
		return nil, vectorErrorf(ctxToVec, ErrInvalidSize)
	}
	buf := make([]float64, len(v.data))
	for i, x := range v.data {
		buf[i] = float64(x)
	}

	return mat.NewVecDense(len(buf), buf), nil
}

// FromVecDense builds a Vector from a gonum vector, converting each element
// with T(x). Conversion to integer kinds truncates toward zero. Options apply
// as in New.
//
// Errors: ErrNilVector, plus any error New reports.
// Complexity: O(n).
func FromVecDense[T Number](src *mat.VecDense, opts ...Option) (*Vector[T], error) {
	if src == nil {
		return nil, vectorErrorf(ctxFrom, ErrNilVector)
	}
	n := src.Len()
	v, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v.data[i] = T(src.AtVec(i))
	}

	return v, nil
}
