package matrix_test

import (
	"testing"

	"github.com/katalvlaran/shortestpath/matrix"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSetSym writes an undirected edge or fails the test.
func MustSetSym(t *testing.T, m *matrix.Dense, i, j int, w float64) {
	t.Helper()
	if err := m.SetSym(i, j, w); err != nil {
		t.Fatalf("SetSym(%d,%d,%g): %v", i, j, w, err)
	}
}
