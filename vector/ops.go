// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar (AddScalar/SubScalar/Scale) and elementwise (Add/Sub) arithmetic
//     returning fresh vectors, plus the Dot product.
//   - Keep operand validation in one helper (validateBinary) so every binary
//     op reports the same sentinel in the same order: nil -> size.
//
// Determinism:
//   - Fixed 0..n-1 loop order; integer overflow wraps as in plain Go arithmetic.
//   - Results carry the receiver's start index and shape lock.

package vector

// validateBinary checks v and other for nil, then for differing sizes.
// Returns plain sentinels; callers wrap with their method tag.
func (v *Vector[T]) validateBinary(other *Vector[T]) error {
	if v == nil || other == nil {
		return ErrNilVector
	}
	if len(v.data) != len(other.data) {
		return ErrSizeMismatch
	}

	return nil
}

// mapScalar builds out[i] = f(v[i]). A nil v maps to nil.
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	if v == nil {
		return nil
	}
	out := v.emptyLike()
	for i, x := range v.data {
		out.data[i] = f(x)
	}

	return out
}

// zipWith builds out[i] = f(v[i], other[i]); sizes must already match.
func (v *Vector[T]) zipWith(other *Vector[T], f func(a, b T) T) *Vector[T] {
	out := v.emptyLike()
	for i := range v.data {
		out.data[i] = f(v.data[i], other.data[i])
	}

	return out
}

// AddScalar returns a new vector with out[i] = v[i] + c.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(c T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x + c })
}

// SubScalar returns a new vector with out[i] = v[i] - c.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(c T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x - c })
}

// Scale returns a new vector with out[i] = v[i] * c.
// Complexity: O(n).
func (v *Vector[T]) Scale(c T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x * c })
}

// Add returns the elementwise sum v + other.
//
// Errors: ErrNilVector, ErrSizeMismatch. Start indices may differ; the result
// keeps v's.
// Complexity: O(n).
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	if err := v.validateBinary(other); err != nil {
		return nil, vectorErrorf(ctxAdd, err)
	}

	return v.zipWith(other, func(a, b T) T { return a + b }), nil
}

// Sub returns the elementwise difference v - other.
//
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	if err := v.validateBinary(other); err != nil {
		return nil, vectorErrorf(ctxSub, err)
	}

	return v.zipWith(other, func(a, b T) T { return a - b }), nil
}

// Dot returns sum(v[i] * other[i]). The dot product of two empty vectors is 0.
//
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(n).
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var sum T
	if err := v.validateBinary(other); err != nil {
		return sum, vectorErrorf(ctxDot, err)
	}
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}
