// Package batch solves many independent graphs, timing each solve.
//
// Every graph is solved by its own dijkstra.ShortestPath call on a bounded
// ants worker pool. Solves share no state, so no locking is involved beyond
// writing each outcome into its own slot.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/shortestpath/dijkstra"
	"github.com/katalvlaran/shortestpath/matrix"
)

// ErrSolverPanic marks an outcome whose solve panicked (e.g. a Graph
// implementation indexing out of range).
var ErrSolverPanic = errors.New("batch: solver panicked")

// Outcome is the result of one graph in a batch.
type Outcome struct {
	Index   int             // position in the input slice, 0-based
	Result  dijkstra.Result // valid when Err == nil
	Err     error           // input error, cancellation, or ErrSolverPanic
	Elapsed time.Duration   // wall time of the solve call alone
	Ran     bool            // the solver was invoked; false for unsubmitted graphs
}

// Summary collects the outcomes of a batch in input order.
type Summary struct {
	Outcomes []Outcome
	Wall     time.Duration // wall time of the whole batch
}

// Count returns the number of graphs in the batch.
func (s Summary) Count() int { return len(s.Outcomes) }

// Total returns the sum of per-graph solve times.
func (s Summary) Total() time.Duration {
	var sum time.Duration
	for _, o := range s.Outcomes {
		sum += o.Elapsed
	}

	return sum
}

// Ran returns the number of graphs the solver was invoked on.
func (s Summary) Ran() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Ran {
			n++
		}
	}

	return n
}

// Average returns Total()/Ran(): cancelled or unsubmitted graphs do not
// dilute it. It is 0 when nothing ran.
func (s Summary) Average() time.Duration {
	n := s.Ran()
	if n == 0 {
		return 0
	}

	return s.Total() / time.Duration(n)
}

// Failed returns the outcomes that carry an error.
func (s Summary) Failed() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}

	return out
}

// Options configures Run.
//
// Workers – pool size; defaults to runtime.GOMAXPROCS(0).
// Logger  – receives debug records per graph; defaults to a discarding logger.
// Solver  – options forwarded to every dijkstra.ShortestPath call.
type Options struct {
	Workers int
	Logger  *slog.Logger
	Solver  []dijkstra.Option
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithWorkers sets the pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers requires n >= 1")
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSolverOptions forwards opts to every solve.
// Hooks run concurrently on different graphs and must be safe for that.
func WithSolverOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run solves every graph and returns the outcomes in input order.
//
// Per-graph failures are reported in Outcome.Err and do not stop the batch.
// When ctx is cancelled, graphs not yet handed to the pool get ctx.Err().
// The returned error is non-nil only if the pool cannot be created.
func Run[G matrix.Graph](ctx context.Context, graphs []G, opts ...Option) (Summary, error) {
	// 1) Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	// 2) Pool.
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return Summary{}, fmt.Errorf("batch: create pool: %w", err)
	}
	defer pool.Release()

	// 3) Submit one task per graph; each task owns outcomes[i].
	start := time.Now()
	outcomes := make([]Outcome, len(graphs))
	var wg sync.WaitGroup
	for i := range graphs {
		outcomes[i].Index = i
		if err = ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			outcomes[i] = solveOne(i, graphs[i], cfg.Solver)
			log.Debug("graph solved",
				"graph", i+1,
				"distance", outcomes[i].Result.Distance,
				"elapsed", outcomes[i].Elapsed,
				"err", outcomes[i].Err,
			)
		}
		if err = pool.Submit(task); err != nil {
			wg.Done()
			outcomes[i].Err = fmt.Errorf("batch: submit graph %d: %w", i+1, err)
		}
	}
	wg.Wait()

	s := Summary{Outcomes: outcomes, Wall: time.Since(start)}
	log.Info("batch finished",
		"graphs", s.Count(),
		"failed", len(s.Failed()),
		"average", s.Average(),
		"wall", s.Wall,
	)

	return s, nil
}

// solveOne times a single solve and converts a panic into ErrSolverPanic.
func solveOne(i int, g matrix.Graph, opts []dijkstra.Option) (out Outcome) {
	out.Index = i
	out.Ran = true
	t0 := time.Now()
	defer func() {
		out.Elapsed = time.Since(t0)
		if p := recover(); p != nil {
			out.Result = dijkstra.Result{Distance: dijkstra.Unreachable}
			out.Err = fmt.Errorf("%w: graph %d: %v", ErrSolverPanic, i+1, p)
		}
	}()
	out.Result, out.Err = dijkstra.ShortestPath(g, opts...)

	return out
}
