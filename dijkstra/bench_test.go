// Package dijkstra_test provides benchmarks for the solver on dense and
// sparse random graphs, using deterministic random fill.
package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortestpath/dijkstra"
	"github.com/katalvlaran/shortestpath/matrix"
)

// benchSizes are the vertex counts to benchmark.
var benchSizes = []int{64, 256, 1024}

// sink defeats dead-code elimination.
var sink dijkstra.Result

// benchGraph returns an n-vertex symmetric graph with edge probability p.
func benchGraph(b *testing.B, n int, p float64, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := matrix.NewSquare(n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if err = g.SetSym(i, j, float64(1+rng.Intn(100))); err != nil {
					b.Fatal(err)
				}
			}
		}
	}

	return g
}

func BenchmarkShortestPath_Dense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := benchGraph(b, n, 0.9, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := dijkstra.ShortestPath(g)
				if err != nil {
					b.Fatal(err)
				}
				sink = res
			}
		})
	}
}

func BenchmarkShortestPath_Sparse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := benchGraph(b, n, 4.0/float64(n), 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := dijkstra.ShortestPath(g)
				if err != nil {
					b.Fatal(err)
				}
				sink = res
			}
		})
	}
}

func BenchmarkFrontier_InsertExtract(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(7))
	dists := make([]float64, 4096)
	for i := range dists {
		dists[i] = rng.Float64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := dijkstra.NewFrontier(len(dists))
		for v, d := range dists {
			f.Insert(dijkstra.NewEntry(v, d))
		}
		for !f.IsEmpty() {
			if _, err := f.ExtractMin(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
