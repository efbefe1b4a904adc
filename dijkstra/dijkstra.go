// Package dijkstra implements Dijkstra's shortest-path algorithm on dense
// weighted undirected graphs, answering the fixed query "vertex 0 → vertex 1".
//
// Complexity:
//
//   - Time:  O(V² + E log E) for a dense V×V matrix
//   - Each finalized vertex scans its matrix row: V scans of V cells.
//   - Each relaxation pushes one heap entry: up to E pushes, E pops.
//   - Space: O(V + E)
//   - O(V) for the distance table and visited set.
//   - O(E) worst-case entries in the heap under lazy invalidation.
//
// Notes on implementation choices:
//
//   - All state (distance table, visited set, frontier) is created per call.
//     Concurrent calls on independent graphs share nothing.
//   - Stale heap entries are skipped on extraction instead of being removed
//     on update.
//   - The source is seeded at distance 0 exactly once; its slot is never
//     written to +Inf.
//   - Distances stay float64 until the caller converts them.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortestpath/matrix"
)

// ShortestPath returns the minimum total weight of a path from vertex 0 to
// vertex 1 in g.
//
// Returns:
//
//   - res: res.Distance is the exact path weight, or +Inf if vertex 1 is not
//     reachable from vertex 0 (res.Reachable() == false).
//   - err: non-nil only for malformed input, before any work is done.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. if g is a matrix.Matrix, it must be square (ErrNonSquare).
//  3. g.Size() must be ≥ 2 (ErrTooSmall).
//
// Weights are assumed non-negative and symmetric; this is not checked
// (see matrix.ValidateWeights). Violating it yields an unspecified result.
// The total edge weight must stay finite in float64: a path weight that
// overflows to +Inf is indistinguishable from "no path".
// The input is never mutated.
func ShortestPath(g matrix.Graph, opts ...Option) (Result, error) {
	r, err := solve(g, opts)
	if err != nil {
		return Result{Distance: Unreachable}, err
	}

	return Result{Distance: r.dist[Target], Stats: r.stats}, nil
}

// Distances runs the same solve as ShortestPath and returns the whole
// distance table: dist[v] is the shortest distance from vertex 0 to v,
// +Inf if v is unreachable. The same validation applies.
func Distances(g matrix.Graph, opts ...Option) ([]float64, error) {
	r, err := solve(g, opts)
	if err != nil {
		return nil, err
	}

	return r.dist, nil
}

// solve validates g, builds fresh state and runs the main loop.
func solve(g matrix.Graph, opts []Option) (*runner, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input before any allocation.
	if err := validate(g); err != nil {
		return nil, err
	}

	// 3) Fresh per-call state; nothing survives the call.
	n := g.Size()
	r := &runner{
		g:       g,
		n:       n,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		front:   NewFrontier(n),
	}

	// 4) Seed and run.
	r.init()
	r.process()

	return r, nil
}

// validate checks the shape preconditions of ShortestPath.
func validate(g matrix.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if m, ok := g.(matrix.Matrix); ok {
		if err := matrix.ValidateNotNil(m); err != nil {
			return ErrNilGraph
		}
		if err := matrix.ValidateSquare(m); err != nil {
			return fmt.Errorf("%w: %dx%d: %w", ErrNonSquare, m.Rows(), m.Cols(), err)
		}
	}
	if n := g.Size(); n < minVertices {
		return fmt.Errorf("%w: got %d", ErrTooSmall, n)
	}

	return nil
}

// runner holds the mutable state for a single solve.
type runner struct {
	g       matrix.Graph // The input graph; read-only.
	n       int          // Vertex count.
	options Options      // Hooks.
	dist    []float64    // vertex → current best distance from Source.
	visited []bool       // vertex → distance finalized.
	front   *Frontier    // Min-heap of entries, may hold stale ones.
	stats   Stats
}

// init sets dist[Source]=0, every other dist to +Inf, and seeds the frontier
// with one entry per vertex at that initial distance.
func (r *runner) init() {
	// 1) Source first, at zero, written once.
	r.dist[Source] = 0
	r.front.Insert(NewEntry(Source, 0))

	// 2) Every other vertex at +Inf. visited[] is already all false.
	inf := math.Inf(1)
	for v := 0; v < r.n; v++ {
		if v == Source {
			continue
		}
		r.dist[v] = inf
		r.front.Insert(NewEntry(v, inf))
	}
	r.stats.MaxFrontier = r.front.Len()
}

// process is the select-and-relax loop. It runs until the frontier is empty.
func (r *runner) process() {
	for !r.front.IsEmpty() {
		// 1) Pop the smallest-distance entry.
		e, err := r.front.ExtractMin()
		if err != nil {
			return // unreachable: guarded by IsEmpty
		}
		r.stats.Extracted++
		u, d := e.Vertex(), e.Distance()

		// 2) Stale entry for an already finalized vertex: discard.
		if r.visited[u] {
			r.stats.Stale++
			continue
		}

		// 3) d is now u's final distance.
		r.visited[u] = true
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(u, d)
		}

		// 4) Relax every edge u–v to an unvisited v.
		r.relax(u, d)
	}
}

// relax scans row u of the matrix and improves tentative distances.
// A zero weight means "no edge". +Inf candidates never win, so an
// unreachable u relaxes nothing.
func (r *runner) relax(u int, d float64) {
	var w, candidate, old float64
	for v := 0; v < r.n; v++ {
		w = r.g.Weight(u, v)
		if w == 0 || r.visited[v] {
			continue
		}

		candidate = d + w
		old = r.dist[v]
		if candidate >= old {
			continue
		}

		// Strictly shorter: record and push; the old entry stays behind.
		r.dist[v] = candidate
		r.front.Insert(NewEntry(v, candidate))
		r.stats.Relaxed++
		if l := r.front.Len(); l > r.stats.MaxFrontier {
			r.stats.MaxFrontier = l
		}
		if r.options.OnRelax != nil {
			r.options.OnRelax(v, old, candidate)
		}
	}
}
