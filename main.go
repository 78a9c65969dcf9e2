package main

import (
	"fmt"
	"os"

	"github.com/RedTeamPentesting/drizzle/cmd/list"
	"github.com/RedTeamPentesting/drizzle/cmd/rows"
	"github.com/RedTeamPentesting/drizzle/cmd/show"
	"github.com/RedTeamPentesting/drizzle/reporter"
	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:   "drizzle",
	Short: "Generate synthetic data from field rules",
	Long: `drizzle generates rows of synthetic data. Each field of a row is filled by a
generator for numbers, identifiers, words, e-mail addresses, colors, samples of
a list, or the output of a command. Values can be required to be unique.`,

	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	setupHelp(cmdRoot)

	rows.AddCommand(cmdRoot)
	show.AddCommand(cmdRoot)
	list.AddCommand(cmdRoot)
}

func run() int {
	reset := prepareTerminal()
	defer reset()

	err := cmdRoot.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v %v\n", reporter.Bold("error:"), err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
