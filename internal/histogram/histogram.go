package histogram

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Binning validation errors.
var (
	// ErrTooFewEdges is returned when fewer than two bin edges are given.
	// Two edges define a single bin; anything less defines no bins at all.
	ErrTooFewEdges = errors.New("histogram: at least two bin edges are required")

	// ErrUnsortedEdges is returned when the bin edges are not non-decreasing.
	ErrUnsortedEdges = errors.New("histogram: bin edges must be non-decreasing")

	// ErrNaNEdge is returned when a bin edge is NaN.
	ErrNaNEdge = errors.New("histogram: bin edges must not be NaN")
)

// Arange returns the half-open range [start, stop) sampled at the given
// step. The stop value itself is never included, matching numpy.arange so
// the standard survey bin grids come out identical to the published ones.
// A zero or negative step returns nil.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+float64(i)*step)
	}
	return out
}

// Validate checks that edges form a usable binning: at least two edges,
// non-decreasing, and free of NaN.
func Validate(edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewEdges, len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) {
			return fmt.Errorf("%w (edge %d)", ErrNaNEdge, i)
		}
		if i > 0 && e < edges[i-1] {
			return fmt.Errorf("%w (edge %d: %v < %v)", ErrUnsortedEdges, i, e, edges[i-1])
		}
	}
	return nil
}

// Count bins values against edges and returns one count per bin
// (len(edges)-1 counts). Bin i covers [edges[i], edges[i+1]); the final bin
// additionally includes the last edge. NaN values and values outside the
// edge range are skipped. An empty or nil value slice yields all-zero
// counts, never an error.
func Count(values, edges []float64) ([]int, error) {
	if err := Validate(edges); err != nil {
		return nil, err
	}

	counts := make([]int, len(edges)-1)
	lo, hi := edges[0], edges[len(edges)-1]
	for _, v := range values {
		if math.IsNaN(v) || v < lo || v > hi {
			continue
		}
		if v == hi {
			// Right edge of the final bin is inclusive.
			counts[len(counts)-1]++
			continue
		}
		// sort.SearchFloat64s returns the first index with edges[i] >= v,
		// so the containing bin starts one edge earlier when the value is
		// not itself an edge.
		i := sort.SearchFloat64s(edges, v)
		if i < len(edges) && edges[i] == v {
			counts[i]++
		} else {
			counts[i-1]++
		}
	}
	return counts, nil
}

// Total returns the sum of counts. It reports how many values fell inside
// the binning range.
func Total(counts []int) int {
	var total int
	for _, c := range counts {
		total += c
	}
	return total
}
