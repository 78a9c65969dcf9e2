package producer

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/wordlist"
)

// Default word string parameters.
const (
	DefaultMinWords  = 2
	DefaultMaxWords  = 3
	DefaultSeparator = " "
)

// Words joins a uniform number of words in [MinWords, MaxWords], each drawn
// uniformly from the union of Lists, with Separator. The zero value joins two
// or three names and adjectives with a space. An empty Separator selects
// DefaultSeparator unless NoSeparator is set, which joins the words directly.
type Words struct {
	MinWords, MaxWords int
	Separator          string
	NoSeparator        bool
	Lists              []wordlist.List

	words []string
}

// Kind returns KindStrings.
func (Words) Kind() Kind { return KindStrings }

func (p Words) prepare() (Params, error) {
	if p.MinWords == 0 && p.MaxWords == 0 {
		p.MinWords, p.MaxWords = DefaultMinWords, DefaultMaxWords
	}

	switch {
	case p.NoSeparator && p.Separator != "":
		return nil, fmt.Errorf("%w: separator %q set together with no separator",
			ErrInvalidParameter, p.Separator)
	case p.Separator == "" && !p.NoSeparator:
		p.Separator = DefaultSeparator
	}

	if len(p.Lists) == 0 {
		p.Lists = []wordlist.List{wordlist.Names, wordlist.Adjectives}
	}

	words, err := prepareWords("word", p.MinWords, p.MaxWords, p.Lists)
	if err != nil {
		return nil, err
	}
	p.words = words

	return p, nil
}

func prepareWords(part string, min, max int, lists []wordlist.List) ([]string, error) {
	if min < 1 || max < min {
		return nil, fmt.Errorf("%w: invalid %s count %d-%d", ErrInvalidParameter, part, min, max)
	}

	words := wordlist.Union(lists...)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words in %s lists", ErrMissingParameter, part)
	}

	return words, nil
}

func (p Words) produce() any {
	return joinWords(p.words, p.MinWords, p.MaxWords, p.Separator)
}

func joinWords(words []string, min, max int, sep string) string {
	n := between(min, max)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[intN(len(words))]
	}
	return strings.Join(parts, sep)
}

func (p Words) capacity() float64 {
	return powerSum(float64(len(p.words)), p.MinWords, p.MaxWords)
}
