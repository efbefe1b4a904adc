package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/batch"
	"github.com/katalvlaran/shortestpath/dijkstra"
	"github.com/katalvlaran/shortestpath/report"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want report.Policy
	}{
		{"", report.Truncate},
		{"truncate", report.Truncate},
		{" Round ", report.Round},
		{"EXACT", report.Exact},
	}
	for _, tc := range tests {
		got, err := report.ParsePolicy(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)

		back, err := report.ParsePolicy(got.String())
		require.NoError(t, err)
		assert.Equal(t, got, back)
	}

	_, err := report.ParsePolicy("ceil")
	assert.ErrorIs(t, err, report.ErrUnknownPolicy)
	assert.Equal(t, "Policy(9)", report.Policy(9).String())
}

func TestPolicy_Format(t *testing.T) {
	assert.Equal(t, "2", report.Truncate.Format(2.7))
	assert.Equal(t, "3", report.Round.Format(2.5))
	assert.Equal(t, "2.7", report.Exact.Format(2.7))
	assert.Equal(t, "6", report.Exact.Format(6))
}

func TestPolicy_FormatBeyondInt64(t *testing.T) {
	assert.Equal(t, "20000000000000000000", report.Truncate.Format(2e19))
	assert.Equal(t, "20000000000000000000", report.Round.Format(2e19))
	assert.Equal(t, "9223372036854775808", report.Truncate.Format(1<<63))
	assert.Equal(t, "9223372036854774784", report.Truncate.Format(1<<63-1024))

	r := dijkstra.Result{Distance: 2e19}
	assert.Equal(t, "Graph 1: Minimum weight of a 0-1 path is 20000000000000000000",
		report.Line(0, r, nil, report.Truncate))
}

func TestLine(t *testing.T) {
	reach := dijkstra.Result{Distance: 6}
	assert.Equal(t, "Graph 1: Minimum weight of a 0-1 path is 6", report.Line(0, reach, nil, report.Truncate))

	none := dijkstra.Result{Distance: dijkstra.Unreachable}
	assert.Equal(t, "Graph 2: No 0-1 path exists", report.Line(1, none, nil, report.Truncate))

	assert.Equal(t, "Graph 3: error: dijkstra: graph is nil",
		report.Line(2, dijkstra.Result{}, dijkstra.ErrNilGraph, report.Exact))
}

func TestSummaryLines(t *testing.T) {
	assert.Equal(t, "Processed 1 graph.\nAverage Time (seconds): 0.50",
		report.SummaryLines(1, 500*time.Millisecond))
	assert.Equal(t, "Processed 0 graphs.\nAverage Time (seconds): 0.00",
		report.SummaryLines(0, 0))
}

func TestWrite(t *testing.T) {
	s := batch.Summary{Outcomes: []batch.Outcome{
		{Index: 0, Result: dijkstra.Result{Distance: 5}},
		{Index: 1, Result: dijkstra.Result{Distance: dijkstra.Unreachable}},
		{Index: 2, Err: errors.New("bad input")},
	}}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, s, report.Truncate))
	assert.Equal(t, "Graph 1: Minimum weight of a 0-1 path is 5\n"+
		"Graph 2: No 0-1 path exists\n"+
		"Graph 3: error: bad input\n"+
		"Processed 3 graphs.\nAverage Time (seconds): 0.00\n", buf.String())
}
