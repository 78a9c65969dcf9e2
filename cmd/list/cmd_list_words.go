package list

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/reporter"
	"github.com/RedTeamPentesting/drizzle/wordlist"
	"github.com/spf13/cobra"
)

func init() {
	cmdList.AddCommand(cmdListWords)
}

const previewWords = 5

var cmdListWords = &cobra.Command{
	Use: "words",

	DisableFlagsInUseLine: true,

	Short: "Print the built-in word lists",
	Long: strings.TrimSpace(`
The 'list words' command prints the names of the built-in word lists which
can be used with the options lists and domains, the number of words and the
first few words of each list.
`),

	RunE: func(cmd *cobra.Command, args []string) error {
		for _, l := range wordlist.Builtin() {
			preview := l.Words
			if len(preview) > previewWords {
				preview = preview[:previewWords]
			}

			fmt.Printf("%v (%d words)\n  %v, ...\n", reporter.Bold(l.Name), len(l.Words), strings.Join(preview, ", "))
		}

		return nil
	},
}
