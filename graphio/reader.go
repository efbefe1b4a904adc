// Package graphio reads adjacency matrices from a whitespace-separated text
// stream.
//
// Format (repeated until end of input):
//
//	<number of vertices N>
//	<row 1: N weights>
//	...
//	<row N: N weights>
//
// Line breaks carry no meaning; only the token sequence matters. Entry (i, j)
// is the weight of edge i–j, 0 meaning "no edge". Weights may be integers or
// reals.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/shortestpath/matrix"
)

// DefaultMaxVertices bounds N so a corrupt size token cannot trigger a huge allocation.
const DefaultMaxVertices = 1 << 13

// Sentinel errors returned by Reader.
var (
	// ErrBadToken indicates a token that is not a number.
	ErrBadToken = errors.New("graphio: malformed number")

	// ErrBadSize indicates a vertex count that is not a positive integer.
	ErrBadSize = errors.New("graphio: vertex count must be a positive integer")

	// ErrTooLarge indicates a vertex count above the configured maximum.
	ErrTooLarge = errors.New("graphio: vertex count exceeds limit")

	// ErrShortMatrix indicates the input ended before N×N weights were read.
	ErrShortMatrix = errors.New("graphio: adjacency matrix contains too few values")
)

// Options configures a Reader.
type Options struct {
	MaxVertices int // upper bound on N, inclusive
}

// Option represents a functional option for configuring a Reader.
type Option func(*Options)

// WithMaxVertices sets the largest accepted N.
// Panics if max < 1: that is a programming error, not an input error.
func WithMaxVertices(max int) Option {
	if max < 1 {
		panic("graphio: WithMaxVertices requires max >= 1")
	}

	return func(o *Options) {
		o.MaxVertices = max
	}
}

// Reader decodes a sequence of graphs from a text stream.
// It is not safe for concurrent use.
type Reader struct {
	sc    *bufio.Scanner
	opts  Options
	count int // graphs decoded successfully
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := Options{MaxVertices: DefaultMaxVertices}
	for _, opt := range opts {
		opt(&cfg)
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc, opts: cfg}
}

// Count returns how many graphs Next has returned successfully.
func (r *Reader) Count() int { return r.count }

// Next decodes the next graph.
//
// Returns io.EOF when the input ends cleanly between graphs. Any other error
// is wrapped with the 1-based graph number and leaves the Reader unusable.
func (r *Reader) Next() (*matrix.Dense, error) {
	graph := r.count + 1

	// 1) Vertex count, or a clean end of input.
	tok, ok := r.token()
	if !ok {
		if err := r.sc.Err(); err != nil {
			return nil, fmt.Errorf("graph %d: %w", graph, err)
		}
		return nil, io.EOF
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("graph %d: size %q: %w", graph, tok, ErrBadSize)
	}
	if n > r.opts.MaxVertices {
		return nil, fmt.Errorf("graph %d: size %d > %d: %w", graph, n, r.opts.MaxVertices, ErrTooLarge)
	}

	// 2) N×N weights in row-major order.
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("graph %d: %w", graph, err)
	}
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if tok, ok = r.token(); !ok {
				if err = r.sc.Err(); err != nil {
					return nil, fmt.Errorf("graph %d: %w", graph, err)
				}
				return nil, fmt.Errorf("graph %d: read %d of %d values: %w", graph, i*n+j, n*n, ErrShortMatrix)
			}
			if w, err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("graph %d: value %q at (%d,%d): %w", graph, tok, i, j, ErrBadToken)
			}
			if err = m.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("graph %d: %w", graph, err)
			}
		}
	}
	r.count++

	return m, nil
}

// token returns the next whitespace-delimited token.
func (r *Reader) token() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}

	return r.sc.Text(), true
}

// ReadAll decodes every graph in r. On error it returns the graphs decoded
// so far together with the error.
func ReadAll(r io.Reader, opts ...Option) ([]*matrix.Dense, error) {
	rd := NewReader(r, opts...)
	var out []*matrix.Dense
	for {
		m, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}
