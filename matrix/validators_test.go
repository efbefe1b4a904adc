// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/shortestpath/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil values.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)

	m, err := matrix.NewSquare(1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"1x1", dense(1, 1), nil},
		{"3x3", dense(3, 3), nil},
		{"2x3", dense(2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateWeights walks the priority chain nil -> square -> sign -> symmetry.
func TestValidateWeights(t *testing.T) {
	t.Parallel()

	build := func(rows [][]float64) *matrix.Dense {
		m, err := matrix.FromRows(rows)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    *matrix.Dense
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", build([][]float64{{0, 1, 2}, {1, 0, 3}}), matrix.ErrNonSquare},
		{"negative", build([][]float64{{0, -1}, {-1, 0}}), matrix.ErrNegativeWeight},
		{"asymmetric", build([][]float64{{0, 1}, {2, 0}}), matrix.ErrAsymmetry},
		{"negative beats asymmetric", build([][]float64{{0, -1}, {2, 0}}), matrix.ErrNegativeWeight},
		{"overflowing path", build([][]float64{{0, 0, 1e308}, {0, 0, 1e308}, {1e308, 1e308, 0}}), matrix.ErrWeightOverflow},
		{"asymmetric beats overflow", build([][]float64{{0, 1e308, 1e308}, {0, 0, 1e308}, {1e308, 1e308, 0}}), matrix.ErrAsymmetry},
		{"valid", build([][]float64{{0, 1, 0}, {1, 0, 2}, {0, 2, 0}}), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateWeights(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateBoundedPaths accepts large but summable weights and rejects a
// graph whose two-edge path would overflow to +Inf.
func TestValidateBoundedPaths(t *testing.T) {
	t.Parallel()

	g, err := matrix.NewSquare(3)
	require.NoError(t, err)
	MustSetSym(t, g, 0, 2, 8e307)
	MustSetSym(t, g, 2, 1, 8e307)
	require.NoError(t, matrix.ValidateBoundedPaths(g))

	MustSetSym(t, g, 2, 1, 1e308)
	require.ErrorIs(t, matrix.ValidateBoundedPaths(g), matrix.ErrWeightOverflow)
}
