// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
)

// MustVector allocates a vector or fails the test.
func MustVector[T vector.Number](t testing.TB, size int, opts ...vector.Option) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](size, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}

	return v
}

// Filled builds a vector from values, starting at logical index 0.
func Filled[T vector.Number](t testing.TB, values ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(values)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", values, err)
	}

	return v
}

// MustAt reads index i or fails the test.
func MustAt[T vector.Number](t testing.TB, v *vector.Vector[T], i int) T {
	t.Helper()
	x, err := v.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}

	return x
}
