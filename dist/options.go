// Package dist: functional configuration for matrix ingestion.
// Only the numeric policy is configurable; everything else about a Dist
// is determined by its inputs.

package dist

import "math"

// DefaultEpsilon is the non-negative tolerance used by FromMatrix for
// its symmetry, zero-diagonal and non-negativity checks. Suitable for
// double-precision data that went through a handful of arithmetic ops.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "dist: WithEpsilon: eps must be finite and non-negative"

// Option mutates the ingestion options. Constructors panic only on
// nonsensical values (programmer error); user data errors are returned.
type Option func(*options)

type options struct {
	eps float64
}

func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}

// WithEpsilon sets the tolerance used when validating a square matrix:
// |m[i][j]−m[j][i]| ≤ eps passes the symmetry check, |m[i][i]| ≤ eps
// passes the diagonal check, and values in [−eps, 0) are clamped to 0.
//
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
