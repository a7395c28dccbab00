// Package dist: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ...) for context) and tests check them via
// errors.Is. No operation panics on user-triggered conditions.

package dist

import "errors"

var (
	// ErrBadShape is returned when the inputs cannot form a distance
	// store: no labels at all, a condensed slice whose length is not
	// n·(n−1)/2, or a square matrix that is not n×n.
	ErrBadShape = errors.New("dist: invalid shape")

	// ErrDuplicateLabel is returned when a label occurs more than once
	// where uniqueness is required (construction, Subset, Rename).
	ErrDuplicateLabel = errors.New("dist: duplicate label")

	// ErrUnknownLabel is returned when a referenced label is not present
	// in the store.
	ErrUnknownLabel = errors.New("dist: unknown label")

	// ErrLengthMismatch is returned by Pairs when the origin and
	// destination sequences differ in length.
	ErrLengthMismatch = errors.New("dist: sequence length mismatch")

	// ErrAsymmetry is returned by FromMatrix when m[i][j] and m[j][i]
	// differ by more than the configured epsilon. FromMatrix never
	// silently symmetrizes; asymmetric input is the caller's bug.
	ErrAsymmetry = errors.New("dist: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal is returned by FromMatrix when a diagonal entry
	// deviates from zero by more than the configured epsilon.
	ErrNonZeroDiagonal = errors.New("dist: diagonal not zero within eps")

	// ErrNegativeDistance is returned when a distance is negative beyond
	// tolerance. Values in [−eps, 0) are clamped to 0 during ingestion.
	ErrNegativeDistance = errors.New("dist: negative distance")

	// ErrNaNInf is returned when a NaN or ±Inf value is encountered
	// where finite distances are required.
	ErrNaNInf = errors.New("dist: NaN or Inf encountered")

	// ErrUnassignedLabel is returned by group operations when a store
	// item has no entry in the supplied group assignment.
	ErrUnassignedLabel = errors.New("dist: label missing from group assignment")
)
