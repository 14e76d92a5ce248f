// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for Triangular tests and benchmarks.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/matrix"
)

// MustTriangular allocates an n×n Triangular[int] or fails the test.
func MustTriangular(t testing.TB, n int) *matrix.Triangular[int] {
	t.Helper()
	m, err := matrix.NewTriangular[int](n)
	if err != nil {
		t.Fatalf("NewTriangular(%d): %v", n, err)
	}

	return m
}

// FillUpper writes f(i, j) into every stored cell (j >= i).
func FillUpper[T int | float64](t testing.TB, m *matrix.Triangular[T], f func(i, j int) T) {
	t.Helper()
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := m.Set(i, j, f(i, j)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// MustAt reads (i, j) or fails the test.
func MustAt[T int | float64](t testing.TB, m *matrix.Triangular[T], i, j int) T {
	t.Helper()
	x, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return x
}
