// SPDX-License-Identifier: MIT

// Package matrix - Triangular storage, row access and value semantics.
//
// Purpose:
//   - Own one shape-locked vector.Vector per row (row i: size n-i, start i).
//   - Keep index translation in package vector; only the row index is checked here.
//   - Provide deep copy (Clone), row-wise equality (Equal) and
//     self-assignment-safe Assign.
//
// Complexity quicksheet:
//   - NewTriangular: O(n²/2) zero-init; Row/At/Set: O(1); Clone/Assign/Equal: O(n²/2).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/utmatrix/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtHole     = "." // below-diagonal cell, never stored
)

// Triangular is a square upper-triangular matrix.
// rows[i] holds columns i..n-1 with StartIndex() == i.
type Triangular[T vector.Number] struct {
	rows []*vector.Vector[T]
}

var _ fmt.Stringer = (*Triangular[float64])(nil)

// NewTriangular creates an n×n upper-triangular matrix of zeros.
//
// Implementation:
//   - Stage 1: validate 0 <= n <= MaxMatrixSize (or WithMaxSize), else ErrInvalidSize.
//   - Stage 2: allocate row i as a shape-locked vector of n-i elements starting at i.
//
// Complexity: O(n²/2) time and memory.
func NewTriangular[T vector.Number](n int, opts ...Option) (*Triangular[T], error) {
	o := gatherOptions(opts...)
	if err := validateSize(n, o.maxSize); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, n, err)
	}

	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		row, err := vector.New[T](n-i, vector.WithStartIndex(i), vector.WithFixedShape())
		if err != nil {
			return nil, fmt.Errorf("%s(%d): row %d: %w", ctxNew, n, i, err)
		}
		rows[i] = row
	}

	return &Triangular[T]{rows: rows}, nil
}

// Size returns the row (and column) count. A nil matrix has size 0.
func (m *Triangular[T]) Size() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Row returns the live row i. Writes through it are visible in m.
// The row is shape-locked, so Assign on it cannot change its size or start index.
//
// Errors: ErrOutOfRange when i < 0 or i >= Size().
// Complexity: O(1).
func (m *Triangular[T]) Row(i int) (*vector.Vector[T], error) {
	if m == nil {
		return nil, fmt.Errorf("Triangular.%s(%d): %w", ctxRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Triangular.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// At returns element (i, j). Valid for 0 <= i <= j < Size().
//
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(1).
func (m *Triangular[T]) At(i, j int) (T, error) {
	row, err := m.Row(i)
	if err != nil {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, err)
	}
	x, err := row.At(j)
	if err != nil {
		return x, cellErrorf(ctxAt, i, j, err)
	}

	return x, nil
}

// Set writes x at (i, j). Bounds follow At.
//
// Errors: ErrOutOfRange, ErrNilMatrix.
// Complexity: O(1).
func (m *Triangular[T]) Set(i, j int, x T) error {
	row, err := m.Row(i)
	if err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	if err = row.Set(j, x); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Clone returns a deep copy; no row is shared with m.
//
// Complexity: O(n²/2).
func (m *Triangular[T]) Clone() *Triangular[T] {
	if m == nil {
		return nil
	}
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}

	return &Triangular[T]{rows: rows}
}

// Equal reports whether m and other have the same size and pairwise equal
// rows (vector.Vector.Equal). m.Equal(m) is always true.
//
// Complexity: O(n²/2).
func (m *Triangular[T]) Equal(other *Triangular[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Triangular[T]) NotEqual(other *Triangular[T]) bool { return !m.Equal(other) }

// Assign makes m a deep copy of other, adopting its size.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - Same size: elements are copied into the existing rows, so row handles
//     obtained from Row stay live.
//   - Different size: m gets a fresh set of rows; earlier row handles are
//     detached from m.
//
// Errors: ErrNilMatrix (nil receiver or source).
// Complexity: O(n²/2).
func (m *Triangular[T]) Assign(other *Triangular[T]) error {
	if m == nil || other == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == other {
		return nil
	}
	if len(m.rows) != len(other.rows) {
		m.rows = other.Clone().rows
		return nil
	}
	for i := range m.rows {
		// Matching rows share size and start index, so the shape lock accepts them.
		if err := m.rows[i].Assign(other.rows[i]); err != nil {
			return matrixErrorf(ctxAssign, err)
		}
	}

	return nil
}

// String implements fmt.Stringer. Cells below the diagonal print as ".":
//
//	[1, 2, 3]
//	[., 4, 5]
//	[., ., 6]
//
// Complexity: O(n²).
func (m *Triangular[T]) String() string {
	var sb strings.Builder
	if m == nil {
		return ""
	}
	n := len(m.rows)
	for i, row := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if j < i {
				sb.WriteString(_fmtHole)
				continue
			}
			x, _ := row.At(j) // j in [i, n) is always valid for row i
			fmt.Fprintf(&sb, "%v", x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
