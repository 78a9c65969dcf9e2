package list

import (
	"strings"
)

const helpShort = "List and filter previous runs of 'rows'"

var helpLong = strings.TrimSpace(`
The 'list' command displays previous runs of the 'rows' command for which it
can detect log files in the log directory. It also allows filtering by field
name. The subcommands print the field types, field names and word lists.
`)

const helpExamples = `
List all complete runs which have a field named 'email':

    drizzle list --logdir logs --field email

Also print the generated rows and the name of the log file:

    drizzle list --logdir logs --rows --logfile
`
