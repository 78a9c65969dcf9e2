package blueprint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/wordlist"
	"github.com/spf13/pflag"
)

// Spec collects the fields of a blueprint from command-line flags.
type Spec struct {
	Rules []string
	File  string
	Lists []string
	Shell string
}

// AddFlags adds the flags which fill s to fs.
func AddFlags(s *Spec, fs *pflag.FlagSet) {
	fs.StringArrayVarP(&s.Rules, "field", "f", nil, "add field `NAME:type:options` (can be specified multiple times)")
	fs.StringVarP(&s.File, "blueprint", "b", "", "read fields from YAML blueprint `file`")
	fs.StringArrayVar(&s.Lists, "list", nil, "load custom word list from `name=file` (can be specified multiple times)")
	fs.StringVar(&s.Shell, "shell", "", "run exec commands with `shell`, e.g. \"/bin/sh -c\"")
}

// Resolve returns the fields of the blueprint file followed by the rules,
// the word lists for them and the number of items the file requests.
func (s *Spec) Resolve() (fields []Field, lists map[string]wordlist.List, items int, err error) {
	lists = make(map[string]wordlist.List)

	if s.File != "" {
		f, fileLists, err := Load(s.File)
		if err != nil {
			return nil, nil, 0, err
		}

		fields = append(fields, f.Fields...)
		items = f.Items
		for name, l := range fileLists {
			lists[name] = l
		}
	}

	for _, rule := range s.Rules {
		f, err := ParseField(rule)
		if err != nil {
			return nil, nil, 0, err
		}
		fields = append(fields, f)
	}

	for _, def := range s.Lists {
		name, filename, found := strings.Cut(def, "=")
		if !found || name == "" || filename == "" {
			return nil, nil, 0, fmt.Errorf("invalid word list %q, want name=file", def)
		}

		l, err := wordlist.Load(name, filename)
		if err != nil {
			return nil, nil, 0, err
		}
		lists[name] = l
	}

	if len(fields) == 0 {
		return nil, nil, 0, errors.New("no fields specified, use --field or --blueprint")
	}

	return fields, lists, items, nil
}
