package producer

import "log/slog"

// MapFunc replaces the candidate value at index.
type MapFunc func(value any, index int) (any, error)

// CompareFunc decides whether the candidate value at index is accepted.
// accepted holds the values accepted so far and must not be modified.
type CompareFunc func(value any, accepted []any, index int) (bool, error)

// Option configures a generator.
type Option func(*Config)

// Count sets the number of items. Without it, Run produces one raw value.
func Count(n int) Option {
	return func(c *Config) {
		c.Count = n
		c.HasCount = true
	}
}

// Unique rejects candidates equal to an already accepted value.
func Unique(unique bool) Option {
	return func(c *Config) {
		c.Unique = unique
	}
}

// RetryLimit sets the number of consecutive rejections of one index after
// which uniqueness and the compare hook are disabled for the rest of the
// run. Zero means no limit.
func RetryLimit(n int) Option {
	return func(c *Config) {
		c.RetryLimit = n
	}
}

// NoRetryLimit removes the retry limit. A compare hook that never accepts
// then keeps the run from terminating.
func NoRetryLimit() Option {
	return RetryLimit(0)
}

// Map sets the hook applied to every candidate before it is evaluated.
func Map(fn MapFunc) Option {
	return func(c *Config) {
		c.Map = fn
	}
}

// Compare sets the hook that accepts or rejects candidates.
func Compare(fn CompareFunc) Option {
	return func(c *Config) {
		c.Compare = fn
	}
}

// Observe sets the observer notified about every pipeline step.
func Observe(o Observer) Option {
	return func(c *Config) {
		c.Observer = o
	}
}

// Verbose logs one line per pipeline step.
func Verbose(verbose bool) Option {
	return func(c *Config) {
		c.Verbose = verbose
	}
}

// Logger sets the logger for diagnostics.
func Logger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
