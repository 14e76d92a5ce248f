// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/katalvlaran/utmatrix/vector"
)

func TestAdd_EqualSize(t *testing.T) {
	t.Parallel()
	const n = 5
	first, second, want := MustTriangular(t, n), MustTriangular(t, n), MustTriangular(t, n)
	FillUpper(t, first, func(i, j int) int { return i + j })
	FillUpper(t, second, func(_, j int) int { return -j })
	FillUpper(t, want, func(i, _ int) int { return i })

	snapshot := first.Clone()
	got, err := first.Add(second)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got\n%v", got)
	assert.True(t, first.Equal(snapshot), "operand mutated")

	// Per stored cell, the sum matches the scalar sum of the inputs.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			assert.Equal(t, MustAt(t, first, i, j)+MustAt(t, second, i, j), MustAt(t, got, i, j))
		}
	}
}

func TestSub_EqualSize(t *testing.T) {
	t.Parallel()
	const n = 5
	first, second, want := MustTriangular(t, n), MustTriangular(t, n), MustTriangular(t, n)
	FillUpper(t, first, func(i, j int) int { return i + j })
	FillUpper(t, second, func(_, j int) int { return -j })
	FillUpper(t, want, func(i, j int) int { return i + 2*j })

	got, err := first.Sub(second)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got\n%v", got)
}

func TestAddSub_SizeMismatch(t *testing.T) {
	t.Parallel()
	first, second := MustTriangular(t, 5), MustTriangular(t, 7)

	_, err := first.Add(second)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
	_, err = first.Sub(second)
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)

	// The matrix sentinel is the vector one, so either name matches.
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
}

func TestAddSub_Nil(t *testing.T) {
	t.Parallel()
	m := MustTriangular(t, 2)

	_, err := m.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_ResultRowsKeepShape(t *testing.T) {
	t.Parallel()
	a, b := MustTriangular(t, 3), MustTriangular(t, 3)
	got, err := a.Add(b)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		row, err := got.Row(i)
		require.NoError(t, err)
		assert.Equal(t, i, row.StartIndex())
		assert.Equal(t, 3-i, row.Size())
		assert.True(t, row.FixedShape())
	}
}

func TestAdd_Float(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewTriangular[float64](2)
	require.NoError(t, err)
	FillUpper(t, a, func(i, j int) float64 { return 0.5 * float64(i+j) })

	got, err := a.Add(a)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, MustAt(t, got, 1, 1), 1e-12)
}
