package show

import (
	"fmt"
	"math"
	"strings"

	"github.com/RedTeamPentesting/drizzle/blueprint"
	"github.com/RedTeamPentesting/drizzle/producer"
	"github.com/RedTeamPentesting/drizzle/reporter"
	"github.com/spf13/cobra"
)

// Options collect options for the command.
type Options struct {
	blueprint.Spec
	Samples int
}

var opts Options

// AddCommand adds the command to c.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false

	blueprint.AddFlags(&opts.Spec, fs)

	fs.IntVarP(&opts.Samples, "samples", "s", 3, "generate `n` sample values per field")
}

var cmd = &cobra.Command{
	Use:                   "show [options]",
	DisableFlagsInUseLine: true,

	Short:   helpShort,
	Long:    helpLong,
	Example: helpExamples,

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments %q, fields are passed with --field", args)
		}

		if opts.Samples < 0 {
			return fmt.Errorf("invalid number of samples %d", opts.Samples)
		}

		fields, lists, items, err := opts.Spec.Resolve()
		if err != nil {
			return err
		}

		builder := &blueprint.Builder{
			Lists: lists,
			Shell: opts.Shell,
		}

		if items > 0 {
			fmt.Printf("%v %d\n\n", reporter.Bold("items:"), items)
		}

		for _, f := range fields {
			v, err := builder.Field(cmd.Context(), f)
			if err != nil {
				return err
			}

			fmt.Printf("%v %v\n", reporter.Bold(f.Name), reporter.Dim(f.String()))
			err = describe(v, opts.Samples)
			if err != nil {
				return fmt.Errorf("field %v: %w", f.Name, err)
			}
			fmt.Println()
		}

		return nil
	},
}

func formatCapacity(c float64, ok bool) string {
	switch {
	case !ok:
		return "unknown"
	case math.IsInf(c, 1):
		return "unlimited"
	case c >= 1e15:
		return fmt.Sprintf("%.3g", c)
	}
	return fmt.Sprintf("%.0f", c)
}

// describe prints the configuration of a blueprint value and some samples.
func describe(v any, samples int) error {
	g, ok := v.(*producer.Generator)
	if !ok {
		fmt.Printf("  %-10s %v\n", "value", reporter.FormatValue(v))
		return nil
	}

	cfg := g.Config()

	retries := "none"
	if cfg.RetryLimit > 0 {
		retries = fmt.Sprint(cfg.RetryLimit)
	}

	fmt.Printf("  %-10s %v\n", "kind", cfg.Kind())
	fmt.Printf("  %-10s %v\n", "params", cfg.Params)
	fmt.Printf("  %-10s %v\n", "unique", cfg.Unique)
	fmt.Printf("  %-10s %v\n", "retries", retries)
	fmt.Printf("  %-10s %v\n", "capacity", formatCapacity(g.Capacity()))

	if samples == 0 {
		return nil
	}

	values, err := g.Values(samples)
	if err != nil {
		return err
	}

	formatted := make([]string, 0, len(values))
	for _, v := range values {
		formatted = append(formatted, reporter.FormatValue(v))
	}

	fmt.Printf("  %-10s %v\n", "samples", strings.Join(formatted, ", "))
	return nil
}
