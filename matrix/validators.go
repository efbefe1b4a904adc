// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for weight-matrix checks.
//  - Keep algorithms minimal by delegating nil/shape/sign/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Algorithms run only ValidateNotNil and ValidateSquare. Sign and symmetry
//    are caller contracts, and so is keeping path weights inside the float64
//    range; ValidateWeights exists for callers that want to
//    enforce them up front.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (run ValidateNotNil first).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateNonNegative checks that no entry of g is negative.
// Complexity: O(n²).
func ValidateNonNegative(g Graph) error {
	n := g.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.Weight(i, j) < 0 {
				return fmt.Errorf("ValidateNonNegative: (%d,%d)=%g: %w", i, j, g.Weight(i, j), ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks weight[i][j] == weight[j][i] exactly.
// Only the strict upper triangle is scanned.
// Complexity: O(n²/2).
func ValidateSymmetric(g Graph) error {
	n := g.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.Weight(i, j) != g.Weight(j, i) {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateBoundedPaths checks that the sum of the upper-triangle weights is
// finite. Every simple path uses each edge at most once, so no path weight a
// shortest-path search builds can then overflow to +Inf.
// Assumes non-negative weights.
// Complexity: O(n²/2).
func ValidateBoundedPaths(g Graph) error {
	n := g.Size()
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sum += g.Weight(i, j)
		}
	}
	if math.IsInf(sum, 0) {
		return fmt.Errorf("ValidateBoundedPaths: %w", ErrWeightOverflow)
	}

	return nil
}

// ValidateWeights runs the full sequence
// NotNil -> Square -> NonNegative -> Symmetric -> BoundedPaths.
// The first violation wins.
func ValidateWeights(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateWeights", ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}
	if err := ValidateSymmetric(m); err != nil {
		return err
	}

	return ValidateBoundedPaths(m)
}
