// Package pairwise: sentinel error set, errors.Is-matchable.

package pairwise

import "errors"

var (
	// ErrNilMetric is returned by Build when metric is nil.
	ErrNilMetric = errors.New("pairwise: nil metric")

	// ErrMetricFailed wraps an error returned by a caller-supplied
	// metric during a build. The message carries the offending pair's
	// labels; the metric's own error stays in the chain for errors.Is.
	ErrMetricFailed = errors.New("pairwise: metric evaluation failed")

	// ErrDimensionMismatch is returned by the built-in metrics when the
	// two rows have different lengths.
	ErrDimensionMismatch = errors.New("pairwise: rows have different dimensions")

	// ErrZeroVector is returned by Cosine when either row has zero
	// magnitude: cosine distance is undefined there (0/0).
	ErrZeroVector = errors.New("pairwise: cosine distance undefined for zero vector")
)
