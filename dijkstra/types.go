// Package dijkstra defines core types and configuration options
// for the 0→1 shortest-path solver on dense weighted graphs.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph is nil.
//	– ErrTooSmall       if the graph has fewer than two vertices (no target).
//	– ErrNonSquare      if the adjacency matrix is not square.
//	– ErrEmptyFrontier  if ExtractMin is called on an empty Frontier.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Reachable() {
//	    fmt.Println("no 0-1 path")
//	}
package dijkstra

import (
	"errors"
	"math"
)

// Fixed query endpoints: every solve answers "distance from vertex 0 to vertex 1".
const (
	// Source is the vertex every solve starts from.
	Source = 0

	// Target is the vertex whose distance is reported.
	Target = 1

	// minVertices is the smallest graph with a defined target.
	minVertices = Target + 1
)

// Sentinel errors returned by the solver and the frontier.
var (
	// ErrNilGraph indicates that a nil graph was passed to the solver.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrTooSmall indicates a graph with fewer than two vertices,
	// for which vertex 1 does not exist.
	ErrTooSmall = errors.New("dijkstra: graph must have at least 2 vertices")

	// ErrNonSquare indicates an adjacency matrix with Rows != Cols.
	ErrNonSquare = errors.New("dijkstra: adjacency matrix is not square")

	// ErrEmptyFrontier is returned by ExtractMin when no entries remain.
	ErrEmptyFrontier = errors.New("dijkstra: frontier is empty")
)

// Unreachable is the distance reported for a target with no path from the source.
var Unreachable = math.Inf(1)

// Result is the outcome of one ShortestPath call.
//
// Distance is the exact real-valued total weight of a minimum 0→1 path,
// or +Inf (Unreachable) when no such path exists. It is never coerced to a
// finite number; use Reachable before converting.
type Result struct {
	Distance float64 // total weight, +Inf if unreachable
	Stats    Stats   // loop counters for diagnostics
}

// Reachable reports whether a 0→1 path exists.
func (r Result) Reachable() bool { return !math.IsInf(r.Distance, 1) }

// int64Limit is 2^63, the first float64 outside the int64 range.
const int64Limit = 1 << 63

// Int truncates the distance toward zero, matching integer-weight reporting.
// ok is false when the target is unreachable or the truncated distance does
// not fit in an int64; n is then 0.
func (r Result) Int() (n int64, ok bool) {
	if !r.Reachable() {
		return 0, false
	}
	t := math.Trunc(r.Distance)
	if t >= int64Limit || t < -int64Limit {
		return 0, false
	}

	return int64(t), true
}

// Stats counts what the select-and-relax loop did.
// Stale > 0 is normal under lazy invalidation.
type Stats struct {
	Extracted   int // entries popped from the frontier
	Stale       int // popped entries skipped because their vertex was already finalized
	Relaxed     int // successful relaxations (each inserted one entry)
	MaxFrontier int // high-water mark of frontier size
}

// Options configures observation hooks. Hooks never influence the result.
//
// OnFinalize – called once per vertex when its distance becomes final.
// OnRelax    – called when a tentative distance improves from old to new.
type Options struct {
	OnFinalize func(v int, d float64)
	OnRelax    func(v int, old, new float64)
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithOnFinalize registers a hook fired when vertex v is finalized at distance d.
// Unreachable vertices are finalized at +Inf after all reachable ones.
func WithOnFinalize(fn func(v int, d float64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// WithOnRelax registers a hook fired on every successful relaxation.
// new < old always holds.
func WithOnRelax(fn func(v int, old, new float64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}
