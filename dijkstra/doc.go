// Package dijkstra computes the minimum-weight path from vertex 0 to vertex 1
// of a weighted undirected graph stored as a dense adjacency matrix.
//
// Overview:
//
//   - Distance table starts at 0 for vertex 0 and +Inf everywhere else.
//   - The Frontier (a binary min-heap of Entry values) is seeded with one
//     entry per vertex; the loop extracts the minimum, skips it if the vertex
//     is already finalized, otherwise finalizes it and relaxes its matrix row.
//   - The loop ends when the frontier is empty; the answer is dist[1].
//
// Lazy invalidation:
//
//   - An improved distance is pushed as a new entry. The superseded entry is
//     left in the heap and discarded when it is popped for a vertex that is
//     already finalized. The heap may therefore hold O(E) entries, and every
//     relaxation produces exactly one stale pop (Stats.Stale == Stats.Relaxed).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:  the graph is nil.
//   - ErrNonSquare: the adjacency matrix has Rows != Cols (also matches
//     matrix.ErrNonSquare via errors.Is).
//   - ErrTooSmall:  fewer than two vertices, so vertex 1 does not exist.
//
// An unreachable target is not an error: Result.Distance is +Inf and
// Result.Reachable reports false.
//
// API reference:
//
//	func ShortestPath(g matrix.Graph, opts ...Option) (Result, error)
//	func Distances(g matrix.Graph, opts ...Option) ([]float64, error)
//
//	  - g:    any matrix.Graph; *matrix.Dense is the usual implementation.
//	  - opts: WithOnFinalize, WithOnRelax observation hooks.
//
// Thread safety:
//
//   - Each call owns all of its state. Calls on different graphs, or on the
//     same graph that nobody mutates, may run concurrently.
//
// Numeric policy:
//
//   - Distances accumulate as float64. Converting to an integer (Result.Int
//     truncates) is a reporting decision made after the solve.
package dijkstra
