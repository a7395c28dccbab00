// Package centroid: sentinel error set, errors.Is-matchable.

package centroid

import "errors"

var (
	// ErrEmptyGroup is returned when a centroid is requested for a
	// group with no members: the formulas divide by the group size.
	ErrEmptyGroup = errors.New("centroid: empty group")

	// ErrOverlappingGroups is returned by Between when the two groups
	// share a member; the centroid-to-centroid form assumes disjoint
	// sets.
	ErrOverlappingGroups = errors.New("centroid: groups overlap")

	// ErrNonEuclidean is returned when a squared centroid distance is
	// negative beyond the clamp tolerance — the input distances are not
	// realizable in any Euclidean space.
	ErrNonEuclidean = errors.New("centroid: distances are not Euclidean-realizable")
)
