// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//   - Serves as an independent reference for single-source solvers.
//
// Contract:
//   - Same weight convention as Graph: 0 off-diagonal means "no edge".
//   - The input is never modified; distances go into a fresh table where
//     +Inf means "no path" (Dense cannot hold +Inf).

package matrix

import (
	"fmt"
	"math"
)

const opAllPairs = "AllPairs"

// initDistances builds the n×n starting table from g:
//
//	diag = 0; off-diagonal 0 -> +Inf; non-zero -> the weight.
//
// Complexity: O(n^2).
func initDistances(g Graph, n int) []float64 {
	d := make([]float64, n*n)
	inf := math.Inf(1)

	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // make() already zeroed it
			}
			w = g.Weight(i, j)
			if w == 0 {
				d[i*n+j] = inf
			} else {
				d[i*n+j] = w
			}
		}
	}

	return d
}

// floydWarshallInPlace runs the APSP closure over a flat n×n table.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); no allocations inside the hot loops.
func floydWarshallInPlace(data []float64, n int) {
	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j], candidate via k
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// AllPairs returns dist where dist[i][j] is the minimum weight of an i→j
// path in g, 0 on the diagonal, +Inf when j is unreachable from i.
//
// Errors:
//   - ErrNilMatrix if g is nil.
//   - ErrNonSquare if g is a Matrix with Rows != Cols.
//
// Complexity: Time O(n^3), Space O(n^2).
func AllPairs(g Graph) ([][]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opAllPairs, ErrNilMatrix)
	}
	if m, ok := g.(Matrix); ok {
		if err := ValidateNotNil(m); err != nil {
			return nil, fmt.Errorf("%s: %w", opAllPairs, err)
		}
		if err := ValidateSquare(m); err != nil {
			return nil, fmt.Errorf("%s: %w", opAllPairs, err)
		}
	}

	n := g.Size()
	flat := initDistances(g, n)
	floydWarshallInPlace(flat, n)

	// Slice the flat table into rows sharing one backing array.
	out := make([][]float64, n)
	for i := range out {
		out[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}

	return out, nil
}
