package list

import (
	"github.com/RedTeamPentesting/drizzle/cli"
	"github.com/spf13/cobra"
)

// ListOptions collect options for the command.
type ListOptions struct {
	Logdir string

	Field string

	ShowIncomplete bool
	ShowLogfile    bool
	ShowRows       bool
}

var opts ListOptions

// AddCommand adds the command to c.
func AddCommand(c *cobra.Command) {
	c.AddCommand(cmdList)

	fs := cmdList.PersistentFlags()
	fs.SortFlags = false

	fs.StringVar(&opts.Logdir, "logdir", "", "read log files from `dir` (default: $DRIZZLE_LOG_DIR)")

	fs.StringVar(&opts.Field, "field", "", "only display runs with a field containing the string `str`")
	fs.BoolVar(&opts.ShowIncomplete, "incomplete", false, "show incomplete runs")
	fs.BoolVar(&opts.ShowLogfile, "logfile", false, "show log file name")
	fs.BoolVar(&opts.ShowRows, "rows", false, "show the generated rows")
}

// logdir returns the log directory from the options or the environment.
func logdir(opts ListOptions) (string, error) {
	if opts.Logdir != "" {
		return opts.Logdir, nil
	}

	env, err := cli.LoadEnv()
	if err != nil {
		return "", err
	}

	return env.LogDir, nil
}
