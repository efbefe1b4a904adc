package graphio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/graphio"
	"github.com/katalvlaran/shortestpath/matrix"
)

// rowsOf copies m into a [][]float64 for structural comparison.
func rowsOf(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = m.Weight(i, j)
		}
	}

	return out
}

func TestReadAll_MultipleGraphs(t *testing.T) {
	in := `2
0 5
5 0
3
0 10 1 10 0 1
1 1 0
`
	graphs, err := graphio.ReadAll(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	want := [][][]float64{
		{{0, 5}, {5, 0}},
		{{0, 10, 1}, {10, 0, 1}, {1, 1, 0}},
	}
	for k, g := range graphs {
		if diff := cmp.Diff(want[k], rowsOf(g)); diff != "" {
			t.Errorf("graph %d mismatch (-want +got):\n%s", k+1, diff)
		}
	}
}

func TestReader_CountAndEOF(t *testing.T) {
	rd := graphio.NewReader(strings.NewReader("1 0\n1 0"))

	for i := 0; i < 2; i++ {
		_, err := rd.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, rd.Count())

	_, err := rd.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, rd.Count())
}

func TestReader_EmptyInput(t *testing.T) {
	graphs, err := graphio.ReadAll(strings.NewReader("  \n\t "))
	require.NoError(t, err)
	assert.Empty(t, graphs)
}

func TestReader_RealWeights(t *testing.T) {
	graphs, err := graphio.ReadAll(strings.NewReader("2 0 1.25 1.25 0"))
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, 1.25, graphs[0].Weight(0, 1))
}

func TestReader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		opts    []graphio.Option
		want    error
		decoded int
	}{
		{"short matrix", "2 0 1 1", nil, graphio.ErrShortMatrix, 0},
		{"short second graph", "1 0 3 0 1", nil, graphio.ErrShortMatrix, 1},
		{"zero size", "0", nil, graphio.ErrBadSize, 0},
		{"negative size", "-2 0 0 0 0", nil, graphio.ErrBadSize, 0},
		{"fractional size", "2.5", nil, graphio.ErrBadSize, 0},
		{"bad weight", "2 0 x 1 0", nil, graphio.ErrBadToken, 0},
		{"infinite weight", "2 0 Inf Inf 0", nil, matrix.ErrNaNInf, 0},
		{"too large", "3", []graphio.Option{graphio.WithMaxVertices(2)}, graphio.ErrTooLarge, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			graphs, err := graphio.ReadAll(strings.NewReader(tc.in), tc.opts...)
			require.Error(t, err)
			assert.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			assert.Len(t, graphs, tc.decoded)
		})
	}
}

func TestReader_ErrorNamesGraph(t *testing.T) {
	_, err := graphio.ReadAll(strings.NewReader("1 0 2 0"))
	require.ErrorIs(t, err, graphio.ErrShortMatrix)
	assert.Contains(t, err.Error(), "graph 2")
	assert.Contains(t, err.Error(), "read 1 of 4 values")
}

func TestWithMaxVertices_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { graphio.WithMaxVertices(0) })
}
