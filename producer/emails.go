package producer

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/wordlist"
)

// Emails builds addresses as local@domain.tld. The local part joins
// MinLocalWords to MaxLocalWords words from LocalLists with dots, the domain
// concatenates MinDomainWords to MaxDomainWords words from DomainLists and
// the top-level domain is drawn from TLDs. Addresses are lower case and
// contain no spaces.
//
// The zero value uses one or two names for the local part, one noun for the
// domain and the built-in top-level domains.
type Emails struct {
	MinLocalWords, MaxLocalWords   int
	MinDomainWords, MaxDomainWords int

	LocalLists  []wordlist.List
	DomainLists []wordlist.List
	TLDs        []string

	local, domain, tlds []string
}

// Kind returns KindEmails.
func (Emails) Kind() Kind { return KindEmails }

func (p Emails) prepare() (Params, error) {
	if p.MinLocalWords == 0 && p.MaxLocalWords == 0 {
		p.MinLocalWords, p.MaxLocalWords = 1, 2
	}
	if p.MinDomainWords == 0 && p.MaxDomainWords == 0 {
		p.MinDomainWords, p.MaxDomainWords = 1, 1
	}
	if len(p.LocalLists) == 0 {
		p.LocalLists = []wordlist.List{wordlist.Names}
	}
	if len(p.DomainLists) == 0 {
		p.DomainLists = []wordlist.List{wordlist.Nouns}
	}
	if len(p.TLDs) == 0 {
		p.TLDs = wordlist.TLDs.Words
	}

	var err error
	p.local, err = prepareWords("local part word", p.MinLocalWords, p.MaxLocalWords, p.LocalLists)
	if err != nil {
		return nil, err
	}

	p.domain, err = prepareWords("domain word", p.MinDomainWords, p.MaxDomainWords, p.DomainLists)
	if err != nil {
		return nil, err
	}

	p.tlds = wordlist.Union(wordlist.List{Words: p.TLDs})
	for i, tld := range p.tlds {
		tld = strings.TrimPrefix(tld, ".")
		if tld == "" {
			return nil, fmt.Errorf("%w: empty top-level domain", ErrInvalidParameter)
		}
		p.tlds[i] = tld
	}

	return p, nil
}

func (p Emails) produce() any {
	local := joinWords(p.local, p.MinLocalWords, p.MaxLocalWords, ".")
	domain := joinWords(p.domain, p.MinDomainWords, p.MaxDomainWords, "")
	tld := p.tlds[intN(len(p.tlds))]

	addr := local + "@" + domain + "." + tld
	return strings.ToLower(strings.ReplaceAll(addr, " ", ""))
}

func (p Emails) capacity() float64 {
	local := powerSum(float64(len(p.local)), p.MinLocalWords, p.MaxLocalWords)
	domain := powerSum(float64(len(p.domain)), p.MinDomainWords, p.MaxDomainWords)
	return local * domain * float64(len(p.tlds))
}
