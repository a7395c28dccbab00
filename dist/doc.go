// Package dist stores symmetric pairwise distances over a labeled item
// set in condensed (upper-triangle) form and derives read-only views
// from that storage: subsetting, origin→destination extraction and
// per-pair group tabulation.
//
// A Dist never holds coordinates — only the n·(n−1)/2 distances for
// the unordered item pairs, addressed by one canonical enumeration:
// i from 0..n−2, j from i+1..n−1. Every other package in this module
// (pairwise builds a Dist, centroid consumes one) relies on exactly
// this order, so it is documented on offset and pinned by tests.
//
// Invariants held by every Dist:
//
//	– Distance(a, a) = 0 for every label a
//	– Distance(a, b) = Distance(b, a)
//	– Distance(a, b) ≥ 0, finite
//	– labels are unique; label order is fixed at construction
//
// A Dist is immutable after construction: all derivations copy, none
// mutate, and concurrent readers need no locking.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrBadShape          — label/value counts don't form a triangle
//	– ErrDuplicateLabel    — repeated label at construction or subset
//	– ErrUnknownLabel      — label not present in the store
//	– ErrLengthMismatch    — paired sequences of different lengths
//	– ErrAsymmetry         — square input violates symmetry within eps
//	– ErrNonZeroDiagonal   — square input has a non-zero diagonal entry
//	– ErrNegativeDistance  — negative distance beyond tolerance
//	– ErrNaNInf            — NaN or ±Inf where finite values are required
//	– ErrUnassignedLabel   — item missing from a group assignment
//
// Construction: New (condensed values), FromMatrix (full square
// matrix, validated within an epsilon policy), or pairwise.Build.
package dist
