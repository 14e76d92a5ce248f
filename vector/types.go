// SPDX-License-Identifier: MIT

package vector

// MaxVectorSize is the upper bound on the number of elements any Vector may hold.
// It is independent of matrix.MaxMatrixSize.
const MaxVectorSize = 100_000_000

// Number is the element constraint for Vector: every built-in integer and
// floating-point kind. Elements must convert to float64 for the gonum bridge,
// so complex kinds are not allowed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
