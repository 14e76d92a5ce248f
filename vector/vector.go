// SPDX-License-Identifier: MIT

// Package vector - storage, index translation and value semantics.
//
// Purpose:
//   - Own a contiguous buffer of exactly Size() elements.
//   - Translate logical indices by the start index in ONE place (offset).
//   - Provide deep-copy (Clone), structural equality (Equal) and
//     self-assignment-safe Assign.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(1); Clone/Assign/Equal: O(n).

package vector

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a bounds-checked numeric vector with a logical start index.
//   - data holds the elements; len(data) is the vector size.
//   - start is added to a physical slot to obtain its logical index.
//   - fixed locks size and start index against Assign.
type Vector[T Number] struct {
	data  []T
	start int
	fixed bool
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// New creates a zero-valued vector of the given size.
//
// Implementation:
//   - Stage 1: resolve options (start index, max size, shape lock).
//   - Stage 2: validate 0 <= size <= max, else ErrInvalidSize.
//   - Stage 3: validate start index >= 0, else ErrInvalidStartIndex.
//   - Stage 4: allocate; make() zero-fills.
//
// Complexity: O(size) time and memory.
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if size < 0 || size > o.maxSize {
		return nil, indexErrorf(ctxNew, size, ErrInvalidSize)
	}
	if o.startIndex < 0 {
		return nil, indexErrorf(ctxNew, o.startIndex, ErrInvalidStartIndex)
	}

	return &Vector[T]{
		data:  make([]T, size),
		start: o.startIndex,
		fixed: o.fixedShape,
	}, nil
}

// FromSlice creates a vector holding a copy of data.
// The same size and start-index rules as New apply.
//
// Complexity: O(len(data)).
func FromSlice[T Number](data []T, opts ...Option) (*Vector[T], error) {
	v, err := New[T](len(data), opts...)
	if err != nil {
		return nil, err
	}
	copy(v.data, data)

	return v, nil
}

// Nil receivers: accessors (Size, StartIndex, FixedShape) report zero values,
// Clone/Data return nil, String prints "[]", and every error-returning method
// fails with ErrNilVector. No method panics on a nil *Vector.

// Size returns the number of stored elements. A nil vector has size 0.
func (v *Vector[T]) Size() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// StartIndex returns the logical index of the first element.
func (v *Vector[T]) StartIndex() int {
	if v == nil {
		return 0
	}

	return v.start
}

// FixedShape reports whether the vector was created with WithFixedShape
// (or derives from one).
func (v *Vector[T]) FixedShape() bool { return v != nil && v.fixed }

// offset translates a logical index into a physical slot.
// It is the only place where the start index is applied.
func (v *Vector[T]) offset(index int) (int, bool) {
	pos := index - v.start
	if pos < 0 || pos >= len(v.data) {
		return 0, false
	}

	return pos, true
}

// At returns the element at the logical index.
// Returns ErrOutOfRange unless StartIndex() <= index < StartIndex()+Size().
//
// Complexity: O(1).
func (v *Vector[T]) At(index int) (T, error) {
	if v == nil {
		var zero T
		return zero, indexErrorf(ctxAt, index, ErrNilVector)
	}
	pos, ok := v.offset(index)
	if !ok {
		var zero T
		return zero, indexErrorf(ctxAt, index, ErrOutOfRange)
	}

	return v.data[pos], nil
}

// Set writes x at the logical index. Bounds follow At.
//
// Complexity: O(1).
func (v *Vector[T]) Set(index int, x T) error {
	if v == nil {
		return indexErrorf(ctxSet, index, ErrNilVector)
	}
	pos, ok := v.offset(index)
	if !ok {
		return indexErrorf(ctxSet, index, ErrOutOfRange)
	}
	v.data[pos] = x

	return nil
}

// Clone returns a deep copy with its own buffer, the same start index and the
// same shape lock.
//
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	out := v.emptyLike()
	copy(out.data, v.data)

	return out
}

// emptyLike allocates a zero vector with v's size, start index and lock.
func (v *Vector[T]) emptyLike() *Vector[T] {
	return &Vector[T]{
		data:  make([]T, len(v.data)),
		start: v.start,
		fixed: v.fixed,
	}
}

// Equal reports whether v and other hold the same number of elements with
// pairwise equal values. The start index does not take part.
//
// Behavior highlights:
//   - v.Equal(v) is always true, even for float vectors holding NaN.
//   - Two nil vectors are equal; nil and non-nil are not.
//
// Complexity: O(n).
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(other *Vector[T]) bool { return !v.Equal(other) }

// Assign makes v a copy of other: size, start index and elements.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - v receives a fresh buffer; later writes to other never show through v.
//   - A shape-locked v only accepts sources with the same size and start index;
//     otherwise ErrFixedShape and v is left unchanged.
//
// Errors: ErrNilVector (nil receiver or source), ErrFixedShape.
// Complexity: O(n).
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == nil || other == nil {
		return vectorErrorf(ctxAssign, ErrNilVector)
	}
	if v == other {
		return nil
	}
	if v.fixed && (len(v.data) != len(other.data) || v.start != other.start) {
		return vectorErrorf(ctxAssign, ErrFixedShape)
	}
	buf := make([]T, len(other.data))
	copy(buf, other.data)
	v.data = buf
	v.start = other.start

	return nil
}

// Data returns a copy of the elements in physical order.
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String implements fmt.Stringer: "[a, b, c]".
//
// Complexity: O(n).
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.Data() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
