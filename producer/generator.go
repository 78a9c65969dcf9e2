package producer

import (
	"fmt"
	"math"
)

// Generator binds the parameters of one generator kind to a resolved
// configuration. It is a deferred handle: nothing is produced until one of
// its run methods is called, which may happen any number of times.
type Generator struct {
	cfg Config
}

// New validates params, applies opts and returns the generator.
func New(params Params, opts ...Option) (*Generator, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: no generator parameters", ErrMissingParameter)
	}

	prepared, err := params.prepare()
	if err != nil {
		return nil, fmt.Errorf("%v generator: %w", params.Kind(), err)
	}

	cfg := defaultConfig(prepared)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: item count %d is negative", ErrInvalidCount, cfg.Count)
	}

	if cfg.RetryLimit < 0 {
		return nil, fmt.Errorf("%w: retry limit %d is negative", ErrInvalidCount, cfg.RetryLimit)
	}

	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}

	if cfg.Logger == nil {
		cfg.Logger = discardLogger
	}

	if s, ok := prepared.(Sample); ok && s.forcedDuplicates {
		cfg.Logger.Warn("sample length exceeds the number of distinct items, allowing duplicates",
			"kind", KindSample, "max_length", s.MaxLength, "items", len(s.items))
	}

	return &Generator{cfg: cfg}, nil
}

// MustNew is like New but panics on error.
func MustNew(params Params, opts ...Option) *Generator {
	g, err := New(params, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Config returns the resolved configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Kind returns the generator kind.
func (g *Generator) Kind() Kind {
	return g.cfg.Kind()
}

// Capacity returns the estimated number of distinct values the generator can
// produce. It reports false for custom generators, which are not estimated.
func (g *Generator) Capacity() (float64, bool) {
	if g.Kind() == KindCustom {
		return math.Inf(1), false
	}
	return capacity(g.cfg.Params), true
}

// Values produces n items.
func (g *Generator) Values(n int) ([]any, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: item count %d is negative", ErrInvalidCount, n)
	}
	return generate(g.cfg.withCount(n))
}

// Value produces a single raw value.
func (g *Generator) Value() (any, error) {
	values, err := generate(g.cfg.withCount(1))
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// Run produces the configured number of items as []any, or a single raw
// value when no count was set.
func (g *Generator) Run() (any, error) {
	if g.cfg.HasCount {
		return generate(g.cfg)
	}
	return g.Value()
}

// Generate produces items for params. Without a Count option, DefaultItems
// items are produced.
func Generate(params Params, opts ...Option) ([]any, error) {
	g, err := New(params, append([]Option{Count(DefaultItems)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return generate(g.cfg)
}

// Run produces the items for params as []any when opts contain Count, or a
// single raw value otherwise.
func Run(params Params, opts ...Option) (any, error) {
	g, err := New(params, opts...)
	if err != nil {
		return nil, err
	}
	return g.Run()
}

// produce returns the candidate value at index.
func produce(params Params, index int) (any, error) {
	switch p := params.(type) {
	case NumberRange:
		return p.produce(), nil
	case FromSet:
		return p.produce(index), nil
	case IDs:
		return p.produce(), nil
	case Sequence:
		return p.produce(index), nil
	case Words:
		return p.produce(), nil
	case Emails:
		return p.produce(), nil
	case HexColors:
		return p.produce(), nil
	case Sample:
		return p.produce(), nil
	case Custom:
		v, err := p.Func(index)
		if err != nil {
			return nil, fmt.Errorf("custom generator: item %d: %w", index, err)
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: unsupported parameters %T", ErrInvalidParameter, params)
}

// generate runs the generation loop for cfg.Count items. A rejected
// candidate is replaced by a new one for the same index. After RetryLimit
// consecutive rejections, uniqueness and the compare hook are dropped for
// the rest of the run.
func generate(cfg Config) ([]any, error) {
	kind := cfg.Kind()

	if cfg.Unique && !feasible(cfg.Params, cfg.Count) {
		cfg.Observer.UniqueCheckFailed(kind, 0)
		cfg.Logger.Warn("not enough distinct values, disabling uniqueness",
			"kind", kind, "items", cfg.Count, "capacity", capacity(cfg.Params))
		cfg = cfg.relaxUnique()
	}

	p := newPipeline(cfg)

	retries := 0
	for index := 0; index < cfg.Count; {
		candidate, err := produce(cfg.Params, index)
		if err != nil {
			return nil, err
		}

		_, ok, err := p.Select(candidate, index)
		if err != nil {
			return nil, err
		}

		if ok {
			index++
			retries = 0
			continue
		}

		retries++
		if cfg.RetryLimit > 0 && retries >= cfg.RetryLimit {
			cfg.Observer.UniqueCheckFailed(kind, cfg.RetryLimit)
			cfg.Logger.Warn("retry limit reached, disabling uniqueness and compare function",
				"kind", kind, "index", index, "retry_limit", cfg.RetryLimit)

			cfg = cfg.relax()
			p.Relax(cfg)
			retries = 0
		}
	}

	return p.Values(), nil
}
