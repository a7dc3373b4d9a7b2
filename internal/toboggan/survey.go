package toboggan

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/specialistvlad/toboggan/internal/ctxlog"
	"github.com/specialistvlad/toboggan/internal/terrain"
)

// ErrProductOverflow is returned when the tree counts multiply past uint64.
var ErrProductOverflow = errors.New("product of tree counts overflows uint64")

// Result is the outcome of one slope.
type Result struct {
	Name  string
	Slope Slope
	Trees int
}

// Run pairs a slope with an optional display name.
type Run struct {
	Name  string
	Slope Slope
}

// RunsFor wraps plain slopes as unnamed runs.
func RunsFor(slopes []Slope) []Run {
	runs := make([]Run, len(slopes))
	for i, s := range slopes {
		runs[i] = Run{Slope: s}
	}
	return runs
}

// Survey counts trees for every run in order. It stops at the first invalid
// slope or when ctx is done.
func Survey(ctx context.Context, grid *terrain.Grid, runs []Run) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	results := make([]Result, 0, len(runs))
	for i, r := range runs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.Slope.Validate(); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		trees := CountTrees(grid, r.Slope)
		logger.Debug("Slope surveyed.", "name", r.Name, "right", r.Slope.Right, "down", r.Slope.Down, "trees", trees)
		results = append(results, Result{Name: r.Name, Slope: r.Slope, Trees: trees})
	}
	return results, nil
}

// Product multiplies the tree counts of all results. No results gives 1.
func Product(results []Result) (uint64, error) {
	product := uint64(1)
	for _, r := range results {
		hi, lo := bits.Mul64(product, uint64(r.Trees))
		if hi != 0 {
			return 0, fmt.Errorf("%w at %s", ErrProductOverflow, r.Slope)
		}
		product = lo
	}
	return product, nil
}
