package list

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/blueprint"
	"github.com/RedTeamPentesting/drizzle/reporter"
	"github.com/spf13/cobra"
)

func init() {
	cmdList.AddCommand(cmdListTypes)
}

var cmdListTypes = &cobra.Command{
	Use: "types",

	DisableFlagsInUseLine: true,

	Short: "Print all field types and their options",
	Long: strings.TrimSpace(`
The 'list types' command prints the types which can be used for fields,
together with the generator kind and the option keys each type accepts.
` + blueprint.LongHelp),

	RunE: func(cmd *cobra.Command, args []string) error {
		for _, typ := range blueprint.Types {
			keys, err := blueprint.TypeOptions(typ)
			if err != nil {
				return err
			}

			kind := "literal"
			if k, ok := blueprint.TypeKind(typ); ok {
				kind = k.String()
			}

			fmt.Printf("%v %-10s %v\n", reporter.Bold(fmt.Sprintf("%-10s", typ)), kind, strings.Join(keys, ", "))
		}

		return nil
	},
}
