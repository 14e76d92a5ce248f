// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels wrapped with call-site context;
// callers and tests match them with errors.Is.
//
// Sentinels for conditions that package vector also reports (ErrOutOfRange,
// ErrSizeMismatch) are aliases of the vector ones, so errors.Is matches either
// name on matrix results. ErrInvalidSize stays matrix-specific: it reports the
// MaxMatrixSize bound, which is independent of vector.MaxVectorSize.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// ERROR PRIORITY (enforced in tests): nil operand -> size mismatch.

var (
	// ErrInvalidSize is returned when a requested size is negative, exceeds the
	// active maximum, or cannot be represented by the target (empty gonum export).
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrNilMatrix indicates that a nil *Triangular was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrTriangleKind indicates a lower-triangular gonum source.
	ErrTriangleKind = errors.New("matrix: triangle is not upper")
)

// Aliases of package vector sentinels.
var (
	// ErrOutOfRange reports a row or column index outside the stored triangle.
	// Column checks happen inside the row vectors.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrSizeMismatch indicates that Add/Sub were given matrices of different sizes.
	ErrSizeMismatch = vector.ErrSizeMismatch
)

// ---------- error context tags ----------

const (
	ctxNew    = "NewTriangular"
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
	ctxAdd    = "Add"
	ctxSub    = "Sub"
	ctxToTri  = "ToTriDense"
	ctxFrom   = "FromTriDense"
)

// matrixErrorf wraps err with the method tag.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Triangular.%s: %w", method, err)
}

// cellErrorf wraps err with the method tag and coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Triangular.%s(%d,%d): %w", method, row, col, err)
}
