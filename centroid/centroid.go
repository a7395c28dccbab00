package centroid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/distmat/dist"
)

// Result is one item's distance to the centroid of its own group.
type Result struct {
	Label    string
	Group    string
	Distance float64
}

// ToCentroids returns, for every item in store order, the distance to
// the centroid of the group the assignment puts it in. Every store
// item must be assigned; assignment keys naming labels outside the
// store are ignored.
//
// Errors: dist.ErrUnassignedLabel, ErrNonEuclidean.
// Complexity: O(n²) squared-distance accumulations overall.
func ToCentroids(d *dist.Dist, assignment map[string]string, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)

	labels := d.Labels()
	members := make(map[string][]string)
	for _, l := range labels {
		g, ok := assignment[l]
		if !ok {
			return nil, fmt.Errorf("label %q: %w", l, dist.ErrUnassignedLabel)
		}
		members[g] = append(members[g], l)
	}

	// The within-group term is shared by all members of a group, so it
	// is computed once per group, not once per item.
	within := make(map[string]float64, len(members))
	for g, mem := range members {
		w, err := withinSum(d, mem)
		if err != nil {
			return nil, err
		}
		within[g] = w
	}

	results := make([]Result, 0, len(labels))
	for _, x := range labels {
		g := assignment[x]
		mem := members[g]
		nA := float64(len(mem))

		sumx, err := pointSum(d, x, mem)
		if err != nil {
			return nil, err
		}

		pointTerm := sumx / nA
		sq := pointTerm - within[g]/(nA*nA)
		v, ok := sqrtClamp(sq, pointTerm, o.eps)
		if !ok {
			return nil, fmt.Errorf("item %q, group %q, d² = %g: %w", x, g, sq, ErrNonEuclidean)
		}
		results = append(results, Result{Label: x, Group: g, Distance: v})
	}

	return results, nil
}

// Between returns the distance between the centroids of two disjoint
// item sets.
//
// Errors: ErrEmptyGroup, ErrOverlappingGroups, ErrNonEuclidean,
// dist.ErrUnknownLabel, dist.ErrDuplicateLabel.
// Complexity: O((n_A + n_B)²).
func Between(d *dist.Dist, groupA, groupB []string, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	if err := validateGroup(d, groupA); err != nil {
		return 0, err
	}
	if err := validateGroup(d, groupB); err != nil {
		return 0, err
	}
	inA := make(map[string]struct{}, len(groupA))
	for _, l := range groupA {
		inA[l] = struct{}{}
	}
	for _, l := range groupB {
		if _, both := inA[l]; both {
			return 0, fmt.Errorf("label %q: %w", l, ErrOverlappingGroups)
		}
	}

	nA, nB := float64(len(groupA)), float64(len(groupB))

	cross, err := crossSum(d, groupA, groupB)
	if err != nil {
		return 0, err
	}
	wA, err := withinSum(d, groupA)
	if err != nil {
		return 0, err
	}
	wB, err := withinSum(d, groupB)
	if err != nil {
		return 0, err
	}

	crossTerm := cross / (nA * nB)
	sq := crossTerm - wA/(nA*nA) - wB/(nB*nB)
	v, ok := sqrtClamp(sq, crossTerm, o.eps)
	if !ok {
		return 0, fmt.Errorf("d² = %g: %w", sq, ErrNonEuclidean)
	}

	return v, nil
}

// AllCentroids returns the pairwise centroid-to-centroid distances of
// all groups in the assignment as a new store over the lexicographically
// sorted group names. Every store item must be assigned; keys outside
// the store are ignored.
//
// Errors: dist.ErrUnassignedLabel, ErrNonEuclidean, plus dist
// construction sentinels.
// Complexity: O(g²·m²) for g groups of up to m members.
func AllCentroids(d *dist.Dist, assignment map[string]string, opts ...Option) (*dist.Dist, error) {
	members := make(map[string][]string)
	for _, l := range d.Labels() {
		g, ok := assignment[l]
		if !ok {
			return nil, fmt.Errorf("label %q: %w", l, dist.ErrUnassignedLabel)
		}
		members[g] = append(members[g], l)
	}

	names := make([]string, 0, len(members))
	for g := range members {
		names = append(names, g)
	}
	sort.Strings(names)

	values := make([]float64, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names)-1; i++ {
		for j := i + 1; j < len(names); j++ {
			v, err := Between(d, members[names[i]], members[names[j]], opts...)
			if err != nil {
				return nil, fmt.Errorf("groups %q and %q: %w", names[i], names[j], err)
			}
			values = append(values, v)
		}
	}

	return dist.New(names, values)
}

// validateGroup rejects empty groups, unknown labels and duplicates.
func validateGroup(d *dist.Dist, group []string) error {
	if len(group) == 0 {
		return ErrEmptyGroup
	}
	seen := make(map[string]struct{}, len(group))
	for _, l := range group {
		// Distance(l, l) is a pure presence probe: 0 or ErrUnknownLabel.
		if _, err := d.Distance(l, l); err != nil {
			return err
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("label %q: %w", l, dist.ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// pointSum returns Σ_{i∈members} d(x,i)².
func pointSum(d *dist.Dist, x string, members []string) (float64, error) {
	sq := make([]float64, len(members))
	for k, l := range members {
		v, err := d.Distance(x, l)
		if err != nil {
			return 0, err
		}
		sq[k] = v * v
	}

	return floats.Sum(sq), nil
}

// withinSum returns Σ_{i<j∈members} d(i,j)². A group of one member has
// an empty sum: a single point is its own centroid.
func withinSum(d *dist.Dist, members []string) (float64, error) {
	n := len(members)
	if n < 2 {
		return 0, nil
	}
	sq := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			v, err := d.Distance(members[i], members[j])
			if err != nil {
				return 0, err
			}
			sq = append(sq, v*v)
		}
	}

	return floats.Sum(sq), nil
}

// crossSum returns Σ_{i∈groupA, j∈groupB} d(i,j)².
func crossSum(d *dist.Dist, groupA, groupB []string) (float64, error) {
	sq := make([]float64, 0, len(groupA)*len(groupB))
	for _, a := range groupA {
		for _, b := range groupB {
			v, err := d.Distance(a, b)
			if err != nil {
				return 0, err
			}
			sq = append(sq, v*v)
		}
	}

	return floats.Sum(sq), nil
}

// sqrtClamp takes the non-negative square root of sq under the clamp
// policy: values in [−eps·scale, 0) with scale = max(1, scale term)
// are rounding noise and clamp to 0; anything lower is non-Euclidean
// input and reports false.
func sqrtClamp(sq, scale, eps float64) (float64, bool) {
	if sq >= 0 {
		return math.Sqrt(sq), true
	}
	if sq >= -eps*math.Max(1, scale) {
		return 0, true
	}

	return 0, false
}
