package pairwise

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/distmat/dist"
)

// Build constructs a dist.Dist over labels from rows under metric.
// labels[i] names rows[i]; row order is preserved in the result.
//
// The metric runs once per unordered pair {i, j}, i < j, in canonical
// enumeration order; see the package comment for the symmetry contract
// and the parallelism model. The first metric error aborts the build
// and is returned wrapped in ErrMetricFailed together with the
// offending pair's labels; no store is returned on any failure.
//
// Errors: ErrNilMetric, ErrMetricFailed, and the dist construction
// sentinels (dist.ErrLengthMismatch, dist.ErrBadShape,
// dist.ErrDuplicateLabel, dist.ErrNaNInf, dist.ErrNegativeDistance).
//
// Complexity: n·(n−1)/2 metric evaluations, divided across
// WithWorkers goroutines; O(n²) space for the result.
func Build(labels []string, rows [][]float64, metric Metric, opts ...Option) (*dist.Dist, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if len(labels) != len(rows) {
		return nil, fmt.Errorf("%d labels vs %d rows: %w",
			len(labels), len(rows), dist.ErrLengthMismatch)
	}
	n := len(labels)
	if n == 0 {
		return nil, fmt.Errorf("no rows: %w", dist.ErrBadShape)
	}
	o := gatherOptions(opts...)

	// Flat task list in canonical pair order: values[k] belongs to
	// pair (pairI[k], pairJ[k]). Chunking this list keeps worker
	// writes disjoint and the result order independent of scheduling.
	total := n * (n - 1) / 2
	pairI := make([]int, total)
	pairJ := make([]int, total)
	k := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairI[k], pairJ[k] = i, j
			k++
		}
	}

	values := make([]float64, total)
	evaluate := func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			i, j := pairI[k], pairJ[k]
			v, err := metric.Distance(rows[i], rows[j])
			if err != nil {
				return fmt.Errorf("pair (%q, %q): %w: %w",
					labels[i], labels[j], err, ErrMetricFailed)
			}
			values[k] = v
		}

		return nil
	}

	if o.workers <= 1 || total == 0 {
		if err := evaluate(0, total); err != nil {
			return nil, err
		}

		return dist.New(labels, values)
	}

	var g errgroup.Group
	chunk := (total + o.workers - 1) / o.workers
	for lo := 0; lo < total; lo += chunk {
		lo, hi := lo, min(lo+chunk, total)
		g.Go(func() error { return evaluate(lo, hi) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dist.New(labels, values)
}
