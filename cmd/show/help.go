package show

import (
	"strings"

	"github.com/RedTeamPentesting/drizzle/blueprint"
)

const helpShort = "Display the configuration of fields"

var helpLong = strings.TrimSpace(`
The 'show' command resolves the fields and prints the configuration of each
generator together with some sample values. The options are the same as for
the 'rows' command, so they can directly be applied to it once the fields
work.
` + blueprint.LongHelp)

const helpExamples = `
Check how many distinct values a numbers field can produce:

    drizzle show --field price:numbers:range=1-100,digits=2

Print five samples for every field of a blueprint file:

    drizzle show --blueprint users.yml --samples 5
`
