package wordlist

import (
	"fmt"
	"sort"
)

// List is a named set of candidate words.
type List struct {
	Name  string
	Words []string
}

// Len returns the number of words in the list.
func (l List) Len() int {
	return len(l.Words)
}

var builtin = map[string]List{}

func register(name string, words []string) List {
	l := List{Name: name, Words: words}
	builtin[name] = l
	return l
}

// Built-in word lists.
var (
	Names      = register("name", names)
	Adjectives = register("adjective", adjectives)
	Countries  = register("country", countries)
	Nouns      = register("noun", nouns)
	TLDs       = register("tld", tlds)
)

// Lookup returns the built-in list with the given name.
func Lookup(name string) (List, error) {
	l, ok := builtin[name]
	if !ok {
		return List{}, fmt.Errorf("unknown word list %q", name)
	}
	return l, nil
}

// Builtin returns all built-in lists sorted by name.
func Builtin() []List {
	lists := make([]List, 0, len(builtin))
	for _, l := range builtin {
		lists = append(lists, l)
	}

	sort.Slice(lists, func(i, j int) bool {
		return lists[i].Name < lists[j].Name
	})

	return lists
}

// Union returns the distinct words of all lists in order of first
// occurrence.
func Union(lists ...List) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, l := range lists {
		for _, w := range l.Words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	return words
}
