package list

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/recorder"
	"github.com/spf13/cobra"
)

func init() {
	cmdList.AddCommand(cmdListFields)
}

func extractFields(list []recorder.Run) []string {
	known := make(map[string]struct{})
	var fields []string

	for _, run := range list {
		for _, name := range run.FieldNames() {
			if _, ok := known[name]; ok {
				continue
			}

			known[name] = struct{}{}
			fields = append(fields, name)
		}
	}

	return fields
}

var cmdListFields = &cobra.Command{
	Use: "fields [options]",

	DisableFlagsInUseLine: true,

	Short: "Print all field names",
	Long: strings.TrimSpace(`
The 'list fields' command prints a list of all field names found in the runs
of 'rows'.
`),

	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := logdir(opts)
		if err != nil {
			return err
		}

		list, err := recorder.LoadRuns(dir)
		if err != nil {
			return err
		}

		recorder.SortRuns(list)
		list = filterRuns(list, opts)

		for _, field := range extractFields(list) {
			fmt.Println(field)
		}

		return nil
	},
}
