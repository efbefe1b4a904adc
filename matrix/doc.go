// Package matrix provides the dense adjacency-matrix representation consumed
// by the shortest-path solver.
//
// The matrix package provides:
//
//   - Graph, the minimal read contract (Size, Weight) that algorithms need.
//   - Dense, a row-major float64 matrix with safe At/Set accessors and an
//     unchecked Weight fast path for hot loops.
//   - Validators for shape, sign and symmetry that callers may run before
//     handing a matrix to an algorithm.
//
// Weight convention: entry (i, j) == 0 means "no edge between i and j";
// any positive value is the weight of an undirected edge. Matrices are best
// for dense or small graphs where O(V²) memory is acceptable.
package matrix
