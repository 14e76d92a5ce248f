// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/matrix"
)

func TestWithMaxSize_PanicsOnNonsense(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { matrix.WithMaxSize(-1) })
	assert.Panics(t, func() { matrix.WithMaxSize(matrix.MaxMatrixSize + 1) })
	assert.NotPanics(t, func() { matrix.WithMaxSize(0) })
	assert.NotPanics(t, func() { matrix.WithMaxSize(matrix.MaxMatrixSize) })
}

func TestWithMaxSize_Boundary(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewTriangular[int](3, matrix.WithMaxSize(3))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())

	_, err = matrix.NewTriangular[int](0, matrix.WithMaxSize(0))
	require.NoError(t, err)

	// Nil options are skipped; the last WithMaxSize wins.
	_, err = matrix.NewTriangular[int](3, nil, matrix.WithMaxSize(2), matrix.WithMaxSize(3))
	require.NoError(t, err)
}
