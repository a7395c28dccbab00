package dist

import (
	"fmt"
	"math"
)

// FromMatrix builds a Dist from a full n×n distance matrix.
//
// Validation, in order, against the epsilon policy (WithEpsilon,
// default DefaultEpsilon):
//
//  1. m must be n×n for n = len(labels)      → ErrBadShape
//  2. every entry must be finite             → ErrNaNInf
//  3. |m[i][i]| ≤ eps for every i            → ErrNonZeroDiagonal
//  4. |m[i][j] − m[j][i]| ≤ eps for all i<j  → ErrAsymmetry
//  5. m[i][j] ≥ −eps for all i<j             → ErrNegativeDistance
//
// The policy for asymmetric input is to FAIL, never to symmetrize
// silently. The upper triangle (i < j) is what gets stored; entries in
// [−eps, 0) are clamped to 0.
//
// Complexity: O(n²) time and space.
func FromMatrix(labels []string, m [][]float64, opts ...Option) (*Dist, error) {
	o := gatherOptions(opts...)

	n := len(labels)
	if n == 0 {
		return nil, fmt.Errorf("no labels: %w", ErrBadShape)
	}
	if len(m) != n {
		return nil, fmt.Errorf("matrix has %d rows for %d labels: %w", len(m), n, ErrBadShape)
	}
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrBadShape)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}
	for i := 0; i < n; i++ {
		if math.Abs(m[i][i]) > o.eps {
			return nil, fmt.Errorf("entry (%d,%d) = %g: %w", i, i, m[i][i], ErrNonZeroDiagonal)
		}
	}

	values := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m[i][j]-m[j][i]) > o.eps {
				return nil, fmt.Errorf("entries (%d,%d)=%g and (%d,%d)=%g: %w",
					i, j, m[i][j], j, i, m[j][i], ErrAsymmetry)
			}
			v := m[i][j]
			if v < 0 {
				if v < -o.eps {
					return nil, fmt.Errorf("entry (%d,%d) = %g: %w", i, j, v, ErrNegativeDistance)
				}
				v = 0
			}
			values = append(values, v)
		}
	}

	return New(labels, values)
}

// Matrix exports the store as a full n×n matrix in label order: the
// inverse of FromMatrix. The result is freshly allocated.
//
// Complexity: O(n²) time and space.
func (d *Dist) Matrix() [][]float64 {
	n := len(d.labels)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			v := d.values[d.offset(i, j)]
			m[i][j] = v
			m[j][i] = v
		}
	}

	return m
}
