// Package pairwise builds a dist.Dist from raw feature rows under a
// caller-supplied metric, sequentially or with a bounded worker pool.
//
// The builder evaluates the metric exactly once per unordered row pair
// {i, j}, i < j, in the canonical enumeration dist documents, and the
// result is symmetric by construction. That is a deliberate algebraic
// shortcut: the metric itself must be symmetric. An asymmetric metric
// is NOT detected — it silently yields the store of its upper-triangle
// evaluations. This is a contract on callers, not a runtime check.
//
// Parallelism is explicit: WithWorkers(k) splits the flat pair-index
// space into k contiguous chunks, one goroutine each. Workers share
// nothing mutable beyond read-only rows; every result lands in its
// pair's deterministic condensed offset, so sequential and parallel
// builds are bit-identical. The first metric error aborts the build
// (fail-fast) and no store escapes a failed build.
//
// Metrics: implement Metric, wrap a closure with MetricFunc, or use a
// built-in (Euclidean, SquaredEuclidean, Manhattan, Chebyshev,
// Minkowski, Cosine). Built-ins reject rows of unequal length with
// ErrDimensionMismatch.
//
// Errors (sentinel):
//
//	– ErrNilMetric         — Build called without a metric
//	– ErrMetricFailed      — a metric invocation returned an error;
//	                         wraps it, tagged with both pair labels
//	– ErrDimensionMismatch — built-in metric fed rows of unequal length
//	– ErrZeroVector        — cosine distance of a zero vector
//
// Label/shape problems surface as the dist sentinels
// (dist.ErrLengthMismatch, dist.ErrDuplicateLabel, dist.ErrBadShape,
// dist.ErrNaNInf for a metric that produced NaN/Inf).
package pairwise
