package producer

import "fmt"

// pipeline passes candidates through the map hook, the compare hook and the
// duplicate check, in this order, and notifies the observer after each step.
type pipeline struct {
	cfg Config

	accepted []any
	seen     *valueSet
}

func newPipeline(cfg Config) *pipeline {
	return &pipeline{
		cfg:      cfg,
		accepted: make([]any, 0, cfg.Count),
		seen:     newValueSet(),
	}
}

// Select runs value through all steps. It returns the resulting value and
// whether it was stored at index.
func (p *pipeline) Select(value any, index int) (any, bool, error) {
	cfg := p.cfg
	kind := cfg.Kind()

	cfg.Observer.AfterItemCreated(value, index, kind)
	if cfg.Verbose {
		cfg.Logger.Info("item created", "kind", kind, "index", index, "value", value)
	}

	if cfg.Map != nil {
		v, err := cfg.Map(value, index)
		if err != nil {
			return nil, false, fmt.Errorf("%v generator: map item %d: %w", kind, index, err)
		}
		value = v

		if cfg.Verbose {
			cfg.Logger.Info("after map function", "kind", kind, "index", index, "value", value)
		}
	}
	cfg.Observer.AfterMap(value, index, kind)

	ok := true
	if cfg.Compare != nil {
		res, err := cfg.Compare(value, p.accepted, index)
		if err != nil {
			return nil, false, fmt.Errorf("%v generator: compare item %d: %w", kind, index, err)
		}
		ok = res
	}
	cfg.Observer.AfterCompare(value, index, kind, ok)

	if cfg.Unique && p.seen.Contains(value) {
		ok = false
	}
	cfg.Observer.AfterUnique(value, index, kind, ok)

	if cfg.Verbose && (cfg.Compare != nil || cfg.Unique) {
		cfg.Logger.Info("after compare function", "kind", kind, "index", index,
			"value", value, "accepted", ok, "retry", !ok)
	}

	if !ok {
		return value, false, nil
	}

	p.accepted = append(p.accepted, value)
	p.seen.Add(value)
	return value, true, nil
}

// Relax switches the remaining run to cfg, keeping the accepted values.
func (p *pipeline) Relax(cfg Config) {
	p.cfg = cfg
}

// Values returns the accepted values.
func (p *pipeline) Values() []any {
	return p.accepted
}
