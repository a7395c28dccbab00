package dist

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GroupRecord describes one unordered item pair together with the
// groups its endpoints belong to. Label is the canonical pair-type
// label: "Within X" when both endpoints share group X, otherwise
// "Between X and Y" with X, Y in lexicographic order — so swapping
// origin and destination never changes the label.
type GroupRecord struct {
	Origin           string
	Destination      string
	OriginGroup      string
	DestinationGroup string
	Label            string
	Distance         float64
}

// GroupSummaryRecord aggregates the distances of all pairs sharing one
// canonical pair-type label.
type GroupSummaryRecord struct {
	Label  string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// PairLabel composes the canonical pair-type label for two group names.
func PairLabel(groupA, groupB string) string {
	if groupA == groupB {
		return fmt.Sprintf("Within %s", groupA)
	}
	if groupB < groupA {
		groupA, groupB = groupB, groupA
	}

	return fmt.Sprintf("Between %s and %s", groupA, groupB)
}

// Groups emits one GroupRecord per unordered item pair in the store,
// all n·(n−1)/2 of them, in canonical pair order. assignment must map
// every store label to a group name.
//
// Errors: ErrUnassignedLabel. Complexity: O(n²).
func (d *Dist) Groups(assignment map[string]string) ([]GroupRecord, error) {
	groups := make([]string, len(d.labels))
	for i, l := range d.labels {
		g, ok := assignment[l]
		if !ok {
			return nil, fmt.Errorf("label %q: %w", l, ErrUnassignedLabel)
		}
		groups[i] = g
	}

	n := len(d.labels)
	records := make([]GroupRecord, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			records = append(records, GroupRecord{
				Origin:           d.labels[i],
				Destination:      d.labels[j],
				OriginGroup:      groups[i],
				DestinationGroup: groups[j],
				Label:            PairLabel(groups[i], groups[j]),
				Distance:         d.values[d.offset(i, j)],
			})
		}
	}

	return records, nil
}

// GroupSummary reduces Groups to one record per canonical pair-type
// label: count, min, max, mean, median and (sample) standard deviation
// of the pair distances. Records are ordered by label.
//
// Errors: ErrUnassignedLabel. Complexity: O(n² log n).
func (d *Dist) GroupSummary(assignment map[string]string) ([]GroupSummaryRecord, error) {
	records, err := d.Groups(assignment)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[string][]float64)
	for _, r := range records {
		byLabel[r.Label] = append(byLabel[r.Label], r.Distance)
	}

	labels := make([]string, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]GroupSummaryRecord, 0, len(labels))
	for _, l := range labels {
		xs := byLabel[l]
		sort.Float64s(xs)

		rec := GroupSummaryRecord{
			Label:  l,
			Count:  len(xs),
			Min:    floats.Min(xs),
			Max:    floats.Max(xs),
			Mean:   stat.Mean(xs, nil),
			Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		}
		if len(xs) > 1 {
			rec.StdDev = stat.StdDev(xs, nil)
		}
		out = append(out, rec)
	}

	return out, nil
}
