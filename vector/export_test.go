// SPDX-License-Identifier: MIT

package vector

// Test-only bridge: white-box checks on storage ownership for vector_test.

// SharesStorage reports whether a and b are backed by the same buffer.
func SharesStorage[T Number](a, b *Vector[T]) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}

	return &a.data[0] == &b.data[0]
}
