// Package shortestpath computes the minimum-weight path between vertex 0 and
// vertex 1 of weighted undirected graphs given as dense adjacency matrices.
//
// Everything is organized under a few subpackages:
//
//	matrix/    — Graph contract, Dense row-major storage, validators
//	dijkstra/  — Entry, Frontier (lazy-invalidation min-heap) and the solver
//	graphio/   — reader for the "N, then N rows of N weights" text format
//	batch/     — solves many graphs concurrently on a worker pool, with timing
//	report/    — per-graph result lines, summary, integer reporting policy
//	config/    — YAML/TOML settings for the command-line driver
//
// Quick ASCII example:
//
//	  (0)──10──(1)
//	    \      /
//	    1\    /1
//	      (2)
//
// has a minimum 0-1 weight of 2, through vertex 2.
//
//	go install github.com/katalvlaran/shortestpath/cmd/shortestpath@latest
package shortestpath
