package producer

import (
	"context"
	"fmt"
	"log/slog"
)

// ComposeOptions configures Compose.
type ComposeOptions struct {
	// Verbose replaces the verbose setting of every generator field.
	Verbose bool

	// Logger replaces the logger of every generator field when set.
	Logger *slog.Logger

	// OnFieldResolved is called with the position of each field once its
	// column is complete.
	OnFieldResolved func(position int)
}

// Compose runs every generator of bp once for n items and returns n rows.
// The count n replaces any count the generators were created with. Literal
// fields have the same value in every row.
func Compose(bp *Blueprint, n int, opts ComposeOptions) ([]Row, error) {
	if bp == nil {
		return nil, fmt.Errorf("%w: no blueprint", ErrMissingParameter)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: row count %d is negative", ErrInvalidCount, n)
	}

	columns := make([][]any, bp.Len())
	for pos, value := range bp.values {
		if g, ok := value.(*Generator); ok {
			if g == nil {
				return nil, fmt.Errorf("field %q: %w: nil generator", bp.names[pos], ErrMissingParameter)
			}

			cfg := g.cfg.withCount(n)
			cfg.Verbose = opts.Verbose
			if opts.Logger != nil {
				cfg.Logger = opts.Logger
			}

			col, err := generate(cfg)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", bp.names[pos], err)
			}
			columns[pos] = col
		}

		if opts.OnFieldResolved != nil {
			opts.OnFieldResolved(pos)
		}
	}

	names := bp.Names()
	rows := make([]Row, n)
	for i := range rows {
		values := make([]any, len(names))
		for pos := range values {
			if columns[pos] == nil {
				values[pos] = bp.values[pos]
				continue
			}
			values[pos] = columns[pos][i]
		}

		rows[i] = Row{Names: names, Values: values}
	}

	return rows, nil
}

// Stream composes n rows from bp and sends them to ch. Sending stops when the
// context is cancelled. ch is closed when the function returns.
func Stream(ctx context.Context, bp *Blueprint, n int, opts ComposeOptions, ch chan<- Row) error {
	defer close(ch)

	rows, err := Compose(bp, n, opts)
	if err != nil {
		return err
	}

	for _, row := range rows {
		select {
		case ch <- row:
		case <-ctx.Done():
			return nil
		}
	}

	return nil
}
