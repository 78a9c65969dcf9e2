package rows

import (
	"strings"

	"github.com/RedTeamPentesting/drizzle/blueprint"
)

const helpShort = "Generate rows of synthetic data"

var helpLong = strings.TrimSpace(`
The 'rows' command builds one generator per field and composes the generated
values into rows, which are printed as text, JSON or CSV. The 'show' command
can be used to check the configuration of the fields before generating data.
` + blueprint.LongHelp)

const helpExamples = `
Generate ten users with a unique ID, a name and an age between 18 and 99:

    drizzle rows \
      --field id:ids:unique \
      --field name:strings:words=2-2,lists=name \
      --field age:numbers:range=18-99

Print 1000 rows as CSV with an e-mail address which is never repeated:

    drizzle rows --items 1000 --format csv \
      --field seq:sequence:start=1 \
      --field 'mail:emails:unique,tlds=com|org'

Pick two to three tags from a list, keeping the order of the list:

    drizzle rows --format json \
      --field 'tags:sample:items=red|green|blue|black,length=2-3,ordered'

Read the fields from a blueprint file and use a custom word list:

    drizzle rows --blueprint users.yml --list city=cities.txt

Use the output of a command as values, one per line:

    drizzle rows --field 'user:exec:cmd=cat /etc/passwd'

Write the rows to a JSON file in the directory logs as well:

    drizzle rows --logdir logs --field color:hexcolors
`
