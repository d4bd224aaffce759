// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())

			// immediately after creation all elements should be 0
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					v, err := m.At(i, j)
					require.NoError(t, err)
					require.Zero(t, v, "element [%d,%d] of a new Dense must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -1},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestNewDenseFromRows_Succeeds(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, float64(i*3+j+1), v)
		}
	}
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3},
	})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestNewDenseFromRows_Empty(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewIdentity(t *testing.T) {
	const n = 4
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	var want float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, v)
		}
	}
}

func TestDense_SetAt_RoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
}

func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{2, 0},
		{0, -1},
		{0, 3},
	} {
		name := fmt.Sprintf("at_%d_%d", tc.i, tc.j)
		t.Run(name, func(t *testing.T) {
			_, err := m.At(tc.i, tc.j)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, m.Set(tc.i, tc.j, 1), matrix.ErrOutOfRange)
		})
	}
}

func TestDense_Clone_Independent(t *testing.T) {
	orig, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	clone := orig.Clone()
	require.Equal(t, orig.Rows(), clone.Rows())
	require.Equal(t, orig.Cols(), clone.Cols())

	// Mutating the clone must not leak into the original
	require.NoError(t, clone.Set(0, 0, 99))
	v, err := orig.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
