// Package centroid: functional configuration for the numeric policy.

package centroid

import "math"

// DefaultEpsilon is the relative tolerance separating rounding noise
// from genuinely non-Euclidean input: squared centroid distances in
// [−eps·scale, 0) clamp to 0, anything lower fails.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "centroid: WithEpsilon: eps must be finite and non-negative"

// Option mutates the computation options. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

type options struct {
	eps float64
}

func defaultOptions() options {
	return options{eps: DefaultEpsilon}
}

// WithEpsilon overrides the clamp tolerance. Panics if eps is NaN,
// ±Inf or negative.
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
