// Package pairwise: functional configuration for Build.

package pairwise

// DefaultWorkers is the default concurrency degree: sequential.
const DefaultWorkers = 1

const panicWorkersInvalid = "pairwise: WithWorkers: workers must be >= 1"

// Option mutates the build options. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

type options struct {
	workers int
}

func defaultOptions() options {
	return options{workers: DefaultWorkers}
}

// WithWorkers sets the number of goroutines evaluating metric pairs.
// 1 means sequential (the default); k > 1 splits the flat pair-index
// space into k contiguous chunks. The resulting store is bit-identical
// regardless of k.
//
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = workers }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
