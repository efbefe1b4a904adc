// Package report renders batch outcomes as human-readable lines.
//
// This is the only place where a real-valued distance becomes an integer:
// the Policy decides how, after the solve has finished.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/shortestpath/batch"
	"github.com/katalvlaran/shortestpath/dijkstra"
)

// Policy selects how a distance is printed.
type Policy int

const (
	// Truncate prints the integer part (toward zero), as integer-weight inputs expect.
	Truncate Policy = iota

	// Round prints the nearest integer, halves away from zero.
	Round

	// Exact prints the real value with %g.
	Exact
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("report: unknown rounding policy")

// String returns the config name of p.
func (p Policy) String() string {
	switch p {
	case Truncate:
		return "truncate"
	case Round:
		return "round"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "truncate", "round" or "exact" (case-insensitive) to a Policy.
// The empty string selects Truncate.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate":
		return Truncate, nil
	case "round":
		return Round, nil
	case "exact":
		return Exact, nil
	default:
		return Truncate, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// int64Limit is 2^63, the first float64 outside the int64 range.
const int64Limit = 1 << 63

// Format renders a reachable distance under p.
// Integral values beyond the int64 range are printed with %.0f.
func (p Policy) Format(d float64) string {
	switch p {
	case Round:
		return formatIntegral(math.Round(d))
	case Exact:
		return fmt.Sprintf("%g", d)
	default:
		return formatIntegral(math.Trunc(d))
	}
}

// formatIntegral prints an already integral value without converting it
// through int64 when it would not fit.
func formatIntegral(v float64) string {
	if v >= int64Limit || v < -int64Limit {
		return fmt.Sprintf("%.0f", v)
	}

	return fmt.Sprintf("%d", int64(v))
}

// Line renders one graph's outcome; index is 0-based, printed 1-based.
func Line(index int, r dijkstra.Result, err error, p Policy) string {
	n := index + 1
	switch {
	case err != nil:
		return fmt.Sprintf("Graph %d: error: %v", n, err)
	case !r.Reachable():
		return fmt.Sprintf("Graph %d: No 0-1 path exists", n)
	default:
		return fmt.Sprintf("Graph %d: Minimum weight of a 0-1 path is %s", n, p.Format(r.Distance))
	}
}

// SummaryLines renders the closing count and average solve time.
func SummaryLines(count int, avg time.Duration) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}

	return fmt.Sprintf("Processed %d graph%s.\nAverage Time (seconds): %.2f", count, plural, avg.Seconds())
}

// Write prints one line per outcome followed by the summary.
func Write(w io.Writer, s batch.Summary, p Policy) error {
	for _, o := range s.Outcomes {
		if _, err := fmt.Fprintln(w, Line(o.Index, o.Result, o.Err, p)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, SummaryLines(s.Count(), s.Average()))

	return err
}
