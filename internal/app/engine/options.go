package engine

import "time"

// Options holds tunable engine parameters.
type Options struct {
	// SnapshotInterval controls how often the book view cache is
	// refreshed for every known symbol.
	SnapshotInterval time.Duration
}

// DefaultOptions returns the default engine options.
func DefaultOptions() *Options {
	return &Options{
		SnapshotInterval: 5 * time.Second,
	}
}
