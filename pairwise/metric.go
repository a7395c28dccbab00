package pairwise

import (
	"fmt"
	"math"
)

// Metric computes a distance between two feature rows. Implementations
// MUST be symmetric (m(a,b) == m(b,a)) and non-negative; Build relies
// on symmetry and evaluates each unordered pair only once. Returning
// an error aborts the surrounding build fail-fast.
type Metric interface {
	Distance(a, b []float64) (float64, error)
}

// MetricFunc adapts a plain function into a Metric. Rows richer than
// []float64 can be served by a closure that captures the real row data
// and treats the slices as keys into it.
type MetricFunc func(a, b []float64) (float64, error)

// Distance implements Metric.
func (f MetricFunc) Distance(a, b []float64) (float64, error) { return f(a, b) }

func checkDims(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return nil
}

// Euclidean computes the Euclidean (L2) distance.
type Euclidean struct{}

// Distance implements Metric.
func (Euclidean) Distance(a, b []float64) (float64, error) {
	s, err := sumOfSquares(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(s), nil
}

// SquaredEuclidean computes the squared Euclidean distance (skips the
// final square root). Note that squared Euclidean is itself generally
// non-Euclidean as a distance; centroid formulas assume plain
// Euclidean-realizable input.
type SquaredEuclidean struct{}

// Distance implements Metric.
func (SquaredEuclidean) Distance(a, b []float64) (float64, error) {
	return sumOfSquares(a, b)
}

func sumOfSquares(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum, nil
}

// Manhattan computes the Manhattan (L1, city-block) distance.
type Manhattan struct{}

// Distance implements Metric.
func (Manhattan) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum, nil
}

// Chebyshev computes the Chebyshev (L∞) distance.
type Chebyshev struct{}

// Distance implements Metric.
func (Chebyshev) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	var maxVal float64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}

	return maxVal, nil
}

// Minkowski computes the Minkowski distance parameterized by P.
// P must be ≥ 1; Distance panics otherwise (programmer error).
type Minkowski struct {
	P float64
}

const panicMinkowskiP = "pairwise: Minkowski: P must be >= 1"

// Distance implements Metric.
func (m Minkowski) Distance(a, b []float64) (float64, error) {
	if m.P < 1 {
		panic(panicMinkowskiP)
	}
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}

	return math.Pow(sum, 1.0/m.P), nil
}

// Cosine computes the cosine distance 1 − cos(a, b). Undefined for
// zero vectors (ErrZeroVector). Cosine distance violates the triangle
// inequality; centroid formulas over it are at the caller's risk.
type Cosine struct{}

// Distance implements Metric.
func (Cosine) Distance(a, b []float64) (float64, error) {
	if err := checkDims(a, b); err != nil {
		return 0, err
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}

	return 1.0 - dot/math.Sqrt(normA*normB), nil
}
