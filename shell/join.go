package shell

import (
	"strconv"
	"strings"
)

// special contains the characters which need quoting for a POSIX shell.
const special = "$&|;<>()*?[]#~'\"\\ \t"

func escapeParam(s string) string {
	if s == "" {
		return `""`
	}

	if strings.ContainsAny(s, special) {
		return strconv.Quote(s)
	}

	return s
}

// Join returns a shell command line to run the program.
func Join(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, escapeParam(arg))
	}
	return strings.Join(quoted, " ")
}
