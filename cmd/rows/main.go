package rows

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/RedTeamPentesting/drizzle/blueprint"
	"github.com/RedTeamPentesting/drizzle/cli"
	"github.com/RedTeamPentesting/drizzle/producer"
	"github.com/RedTeamPentesting/drizzle/recorder"
	"github.com/RedTeamPentesting/drizzle/reporter"
	"github.com/RedTeamPentesting/drizzle/shell"
	"github.com/fd0/termstatus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Options collect options for a run.
type Options struct {
	blueprint.Spec

	Items  int
	Format string

	Logfile string
	Logdir  string

	RowsPerSecond float64
	BufferSize    int

	Verbose bool

	format reporter.Format
	env    cli.Env
}

var opts Options

// valid validates the options and returns an error if something is invalid.
func (opts *Options) valid() (err error) {
	if opts.Items < 0 {
		return fmt.Errorf("invalid number of items %d", opts.Items)
	}

	if opts.RowsPerSecond < 0 {
		return errors.New("invalid number of rows per second")
	}

	if opts.BufferSize < 0 {
		return errors.New("invalid buffer size")
	}

	opts.format, err = reporter.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if opts.Logdir == "" {
		opts.Logdir = opts.env.LogDir
	}

	return nil
}

var cmd = &cobra.Command{
	Use:                   "rows [options]",
	DisableFlagsInUseLine: true,

	Short:   helpShort,
	Long:    helpLong,
	Example: helpExamples,

	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unexpected arguments %q, fields are passed with --field", args)
		}

		return cli.WithContext(func(ctx context.Context, g *errgroup.Group) error {
			return run(ctx, g, &opts, cmd.Flags().Changed("items"))
		})
	},
}

// AddCommand adds the 'rows' command to cmd.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmd)

	fs := cmd.Flags()
	fs.SortFlags = false

	blueprint.AddFlags(&opts.Spec, fs)

	fs.IntVarP(&opts.Items, "items", "n", 10, "generate `n` rows")
	fs.StringVar(&opts.Format, "format", string(reporter.FormatText), "print rows as `format` (text, json, csv)")

	fs.StringVar(&opts.Logfile, "logfile", "", "write copy of printed messages to `filename`.log and the rows to `filename`.json")
	fs.StringVar(&opts.Logdir, "logdir", "", "automatically log all output to files in `dir` (default: $DRIZZLE_LOG_DIR)")

	fs.Float64Var(&opts.RowsPerSecond, "rows-per-second", 0, "print at most `n` rows per second (e.g. 0.5)")
	fs.IntVar(&opts.BufferSize, "buffer-size", 1000, "set number of buffered rows to `n`")

	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every generated value and the result of the hooks")
}

// logfilePath returns the prefix for the logfiles, if any.
func logfilePath(opts *Options) string {
	if opts.Logdir != "" && opts.Logfile == "" {
		ts := time.Now().Format("20060102_150405")
		fn := fmt.Sprintf("drizzle_%s", ts)
		return filepath.Join(opts.Logdir, fn)
	}

	return opts.Logfile
}

func setupTerminal(g *errgroup.Group, maxFrameRate uint, logfilePrefix string) (term cli.Terminal, cleanup func(), err error) {
	ctx, cancel := context.WithCancel(context.Background())

	statusTerm := termstatus.New(os.Stdout, os.Stderr, false)
	if maxFrameRate != 0 {
		statusTerm.MaxFrameRate = maxFrameRate
	}

	term = statusTerm

	if logfilePrefix != "" {
		fmt.Fprintf(os.Stderr, reporter.Bold("Logfile:")+" %s.log\n", logfilePrefix)

		logfile, err := os.Create(logfilePrefix + ".log")
		if err != nil {
			return nil, cancel, err
		}

		fmt.Fprintln(logfile, shell.Join(os.Args))

		// write copies of messages to logfile
		term = &cli.LogTerminal{
			Terminal: statusTerm,
			Writer:   logfile,
		}
	}

	// make sure error messages logged via the log package are printed nicely
	w := cli.NewStdioWrapper(term)
	log.SetOutput(w.Stderr())

	g.Go(func() error {
		term.Run(ctx)
		return nil
	})

	return term, cancel, nil
}

func fieldRules(fields []blueprint.Field) []string {
	rules := make([]string, 0, len(fields))
	for _, f := range fields {
		rules = append(rules, f.String())
	}
	return rules
}

func run(ctx context.Context, g *errgroup.Group, opts *Options, itemsChanged bool) error {
	env, err := cli.LoadEnv()
	if err != nil {
		return err
	}
	opts.env = env

	err = opts.valid()
	if err != nil {
		return err
	}

	fields, lists, items, err := opts.Spec.Resolve()
	if err != nil {
		return err
	}

	// the number of items in the blueprint file is used unless --items is given
	if items > 0 && !itemsChanged {
		opts.Items = items
	}

	logfilePrefix := logfilePath(opts)

	term, cleanup, err := setupTerminal(g, env.ProgressFPS, logfilePrefix)
	defer cleanup()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelInfo
	}
	logger := cli.NewLogger(term, level)

	builder := &blueprint.Builder{
		Lists:  lists,
		Shell:  opts.Shell,
		Logger: logger,
	}

	bp, err := builder.Build(ctx, fields)
	if err != nil {
		return err
	}

	rep := reporter.New(term, opts.format, bp.Names())

	// compose the rows
	ch := make(chan producer.Row, opts.BufferSize)
	var rowCh <-chan producer.Row = ch

	g.Go(func() error {
		return producer.Stream(ctx, bp, opts.Items, producer.ComposeOptions{
			Verbose:         opts.Verbose,
			Logger:          logger,
			OnFieldResolved: rep.FieldResolved(),
		}, ch)
	})

	// limit the throughput (if requested)
	if opts.RowsPerSecond > 0 {
		rowCh = producer.Limit(ctx, opts.RowsPerSecond, rowCh)
	}

	if logfilePrefix != "" {
		rec := recorder.New(logfilePrefix+".json", fieldRules(fields), opts.Items)
		rec.Data.Command = shell.Join(os.Args)
		rec.Data.Blueprint = opts.File

		out := make(chan producer.Row)
		in := rowCh
		rowCh = out

		g.Go(func() error {
			return rec.Run(ctx, in, out)
		})
	}

	if opts.format == reporter.FormatText {
		term.Printf(reporter.Bold("Fields:")+" %v\n\n", strings.Join(bp.Names(), ", "))
	}

	return rep.Display(rowCh, opts.Items)
}
