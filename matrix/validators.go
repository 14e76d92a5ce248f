// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for size and operand checks.
//   - Return plain sentinels; call sites wrap with their method tag.

package matrix

import "github.com/katalvlaran/utmatrix/vector"

// validateSize checks 0 <= n <= limit.
func validateSize(n, limit int) error {
	if n < 0 || n > limit {
		return ErrInvalidSize
	}

	return nil
}

// validateBinarySameSize – Composite: NotNil(a, b) → SameSize(a, b).
func validateBinarySameSize[T vector.Number](a, b *Triangular[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.Size() != b.Size() {
		return ErrSizeMismatch
	}

	return nil
}
