// Package centroid computes distances to and between group centroids
// using only a pairwise-distance store — coordinates are never known,
// inferred or reconstructed.
//
// The premise: the items sit (unobserved) in some Euclidean space and
// the store holds their pairwise distances. For a finite point set A
// with centroid c_A the identity
//
//	Σ_{i∈A} ‖x − p_i‖² = n_A·‖x − c_A‖² + Σ_{i∈A} ‖p_i − c_A‖²
//
// yields closed forms over squared pairwise distances alone:
//
//	d²(x, c_A)   = (1/n_A)·Σ_{i∈A} d(x,i)² − (1/n_A²)·Σ_{i<j∈A} d(i,j)²
//	d²(c_A, c_B) = (1/(n_A·n_B))·Σ_{i∈A,j∈B} d(i,j)²
//	               − (1/n_A²)·Σ_{i<j∈A} d(i,j)²
//	               − (1/n_B²)·Σ_{i<j∈B} d(i,j)²
//
// the latter for disjoint A and B. A single-member group collapses its
// within term to 0 (a point is its own centroid).
//
// Numeric policy: the closed forms can go slightly negative on valid
// input through rounding. A squared result in [−eps·scale, 0), with
// scale = max(1, cross term) and eps from WithEpsilon (default
// DefaultEpsilon), is clamped to 0 before the square root. Anything
// more negative means the distances were not Euclidean-realizable in
// the first place and fails with ErrNonEuclidean — the package reports
// contract violations instead of masking them.
//
// Operations:
//
//	– ToCentroids  — every item's distance to its own group's centroid
//	– Between      — distance between the centroids of two disjoint
//	                 item sets
//	– AllCentroids — pairwise centroid distances of all groups, as a
//	                 new dist.Dist over the sorted group names
//
// Errors (sentinel):
//
//	– ErrEmptyGroup         — a group with no members
//	– ErrOverlappingGroups  — Between called with intersecting groups
//	– ErrNonEuclidean       — squared distance negative beyond tolerance
//
// Label problems surface as the dist sentinels (dist.ErrUnknownLabel,
// dist.ErrUnassignedLabel, dist.ErrDuplicateLabel).
package centroid
