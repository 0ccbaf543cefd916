// SPDX-License-Identifier: MIT

package contour

import (
	"runtime"

	"github.com/katalvlaran/isoline/march"
)

// Defaults. These constants are the single source of truth for zero-value behavior.
const (
	// DefaultWorkers of 0 traces up to runtime.GOMAXPROCS(0) levels at once.
	DefaultWorkers = 0

	// DefaultPartitions traces each level's cells on a single goroutine.
	DefaultPartitions = 1

	// DefaultDecider resolves saddle cells with the mean of the four corners.
	DefaultDecider = march.DeciderMean
)

const (
	panicWorkersInvalid    = "contour: WithWorkers: n must be >= 0"
	panicPartitionsInvalid = "contour: WithPartitions: n must be >= 1"
	panicDeciderInvalid    = "contour: WithDecider: unknown decider"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	workers    int
	partitions int
	decider    march.Decider
}

// WithWorkers bounds how many levels are traced concurrently.
// n == 0 means runtime.GOMAXPROCS(0); n == 1 traces levels sequentially.
// Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithPartitions splits each level's cell scan into n concurrent x bands.
// The output does not depend on n. Panics when n < 1.
func WithPartitions(n int) Option {
	if n < 1 {
		panic(panicPartitionsInvalid)
	}

	return func(o *Options) { o.partitions = n }
}

// WithDecider selects the saddle resolution rule. Panics on an unknown value.
func WithDecider(d march.Decider) Option {
	if d != march.DeciderMean && d != march.DeciderSaddle {
		panic(panicDeciderInvalid)
	}

	return func(o *Options) { o.decider = d }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:    DefaultWorkers,
		partitions: DefaultPartitions,
		decider:    DefaultDecider,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// marchOptions projects the per-level part of o.
func (o Options) marchOptions() march.Options {
	return march.Options{
		Decider:    o.decider,
		Partitions: o.partitions,
	}
}
