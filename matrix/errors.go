// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and validators return these sentinels (possibly wrapped
// with call-site context via %w); tests match them with errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced in validators and tests):
// nil -> shape -> index/NaN -> sign -> symmetry -> overflow.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates ragged input rows or operands of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite weights are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry in a weight matrix.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrAsymmetry signals that weight[i][j] != weight[j][i] for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrWeightOverflow signals weights whose total exceeds the float64 range,
	// so a path weight could overflow to +Inf.
	ErrWeightOverflow = errors.New("matrix: total edge weight overflows float64")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
