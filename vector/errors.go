// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context via %w). Tests MUST match them with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds
	// the active maximum (MaxVectorSize unless tightened by WithMaxSize).
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrInvalidStartIndex is returned when a requested start index is negative.
	ErrInvalidStartIndex = errors.New("vector: invalid start index")

	// ErrOutOfRange indicates that a logical index, after start-index
	// translation, falls outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates that a binary operation (Add/Sub/Dot) was given
	// operands of different sizes.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrFixedShape indicates an Assign that would change the size or start
	// index of a shape-locked vector (see WithFixedShape).
	ErrFixedShape = errors.New("vector: shape is fixed")
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
	ctxAdd    = "Add"
	ctxSub    = "Sub"
	ctxDot    = "Dot"
	ctxToVec  = "ToVecDense"
	ctxFrom   = "FromVecDense"
)

// vectorErrorf wraps err with the method tag, keeping the sentinel reachable.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}

// indexErrorf is vectorErrorf plus the offending logical index.
func indexErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, index, err)
}
