// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interfaces.
// Graph is what algorithms read; Matrix is what builders and parsers write.
package matrix

// Graph is the read-only contract of a weighted undirected graph stored as a
// dense adjacency matrix.
//
// Contract (caller responsibility, not checked by algorithms):
//   - Weight(i, j) >= 0 for all 0 ≤ i, j < Size().
//   - Weight(i, j) == Weight(j, i).
//   - Weight(i, j) == 0 means "no edge".
//   - The sum of all edge weights is finite in float64. Larger weights can
//     overflow a path weight to +Inf, which reads as "no path".
type Graph interface {
	// Size returns the number of vertices N.
	Size() int

	// Weight returns the weight of edge i–j, or 0 if absent.
	// Indices are assumed valid; implementations may panic otherwise.
	Weight(i, j int) float64
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
