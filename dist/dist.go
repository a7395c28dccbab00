package dist

import (
	"fmt"
	"math"
)

// Dist is a symmetric, zero-diagonal pairwise-distance relation over an
// ordered set of unique labels, stored in condensed form: only the
// n·(n−1)/2 upper-triangle distances are kept, the diagonal is an
// implicit 0 and the lower triangle an implicit mirror.
//
// A Dist is immutable once constructed; all methods are safe for
// concurrent use without locking.
type Dist struct {
	labels []string       // item labels in fixed order
	index  map[string]int // label → position in labels
	values []float64      // condensed upper triangle, canonical pair order
}

// New builds a Dist from labels and a condensed upper triangle.
//
// values must hold exactly n·(n−1)/2 entries enumerated in canonical
// pair order (i from 0..n−2, j from i+1..n−1), all finite and ≥ 0.
//
// Errors: ErrBadShape, ErrDuplicateLabel, ErrNaNInf, ErrNegativeDistance.
// Complexity: O(n + n²) time, O(n²) space (defensive copies).
func New(labels []string, values []float64) (*Dist, error) {
	n := len(labels)
	if n == 0 {
		return nil, fmt.Errorf("no labels: %w", ErrBadShape)
	}
	if want := n * (n - 1) / 2; len(values) != want {
		return nil, fmt.Errorf("got %d values for %d labels, want %d: %w",
			len(values), n, want, ErrBadShape)
	}

	index := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("label %q: %w", l, ErrDuplicateLabel)
		}
		index[l] = i
	}

	vals := make([]float64, len(values))
	for k, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value at offset %d: %w", k, ErrNaNInf)
		}
		if v < 0 {
			return nil, fmt.Errorf("value %g at offset %d: %w", v, k, ErrNegativeDistance)
		}
		vals[k] = v
	}

	return &Dist{
		labels: append([]string(nil), labels...),
		index:  index,
		values: vals,
	}, nil
}

// offset returns the condensed-storage position of the unordered pair
// {i, j}, i ≠ j, 0-based. The enumeration is the canonical one used by
// every constructor in this module: i from 0..n−2, j from i+1..n−1, so
// pair {i, j} with i < j lands at
//
//	i·(2n−i−1)/2 + (j−i−1)
//
// This mapping is a bijection onto 0..n·(n−1)/2−1 and is load-bearing:
// pairwise.Build fills slots by it and centroid sums by it.
func (d *Dist) offset(i, j int) int {
	if i > j {
		i, j = j, i
	}
	n := len(d.labels)

	return i*(2*n-i-1)/2 + (j - i - 1)
}

// position resolves a label to its index, or ErrUnknownLabel.
func (d *Dist) position(label string) (int, error) {
	i, ok := d.index[label]
	if !ok {
		return 0, fmt.Errorf("label %q: %w", label, ErrUnknownLabel)
	}

	return i, nil
}

// Distance returns the stored distance between labels a and b.
// Both labels must be present; if a == b the result is 0 without a
// triangle lookup.
//
// Errors: ErrUnknownLabel. Complexity: O(1).
func (d *Dist) Distance(a, b string) (float64, error) {
	i, err := d.position(a)
	if err != nil {
		return 0, err
	}
	j, err := d.position(b)
	if err != nil {
		return 0, err
	}
	if i == j {
		return 0, nil
	}

	return d.values[d.offset(i, j)], nil
}

// Len returns the number of items in the store.
func (d *Dist) Len() int { return len(d.labels) }

// Labels returns a copy of the item labels in store order.
func (d *Dist) Labels() []string {
	return append([]string(nil), d.labels...)
}

// Values returns a copy of the condensed upper triangle in canonical
// pair order. Mutating the returned slice does not affect the store.
func (d *Dist) Values() []float64 {
	return append([]float64(nil), d.values...)
}

// Rename returns a new Dist whose labels are replaced according to
// mapping; labels absent from mapping pass through unchanged. Distances
// and order are untouched.
//
// Errors: ErrDuplicateLabel if the renaming collapses two labels.
// Complexity: O(n + n²).
func (d *Dist) Rename(mapping map[string]string) (*Dist, error) {
	renamed := make([]string, len(d.labels))
	for i, l := range d.labels {
		if nl, ok := mapping[l]; ok {
			renamed[i] = nl
		} else {
			renamed[i] = l
		}
	}

	return New(renamed, d.values)
}
