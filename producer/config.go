package producer

import (
	"io"
	"log/slog"
)

// Defaults applied by New.
const (
	DefaultRetryLimit = 2000
	DefaultItems      = 100
)

// Config is the resolved configuration of a generator. New fills in every
// field; a Config is never modified afterwards, relaxing the policy during a
// run derives a new value.
type Config struct {
	Params Params

	// Count is the number of items. HasCount reports whether it was
	// requested, a generator without count produces a single raw value.
	Count    int
	HasCount bool

	Unique bool

	// RetryLimit bounds the consecutive rejections of one index, zero means
	// no limit.
	RetryLimit int

	Map     MapFunc
	Compare CompareFunc

	Observer Observer
	Verbose  bool
	Logger   *slog.Logger
}

// Kind returns the generator kind of the parameters.
func (c Config) Kind() Kind {
	return c.Params.Kind()
}

func defaultConfig(params Params) Config {
	return Config{
		Params:     params,
		RetryLimit: DefaultRetryLimit,
		Observer:   NopObserver{},
		Logger:     discardLogger,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c Config) withCount(n int) Config {
	c.Count = n
	c.HasCount = true
	return c
}

// relaxUnique returns the configuration without uniqueness enforcement.
func (c Config) relaxUnique() Config {
	c.Unique = false
	return c
}

// relax returns the configuration with uniqueness and the compare hook
// removed, so the next candidate is always accepted.
func (c Config) relax() Config {
	c.Unique = false
	c.Compare = nil
	return c
}
