package producer

import (
	"fmt"
	"strings"

	"github.com/RedTeamPentesting/drizzle/wordlist"
)

// The String methods print the exported parameters in a compact form. Word
// lists are named and item lists counted, cached data is left out.

func (p NumberRange) String() string {
	if !p.Fractional {
		return fmt.Sprintf("range=%v-%v", p.Starting, p.Ending)
	}

	digits := fmt.Sprint(p.Digits)
	switch p.Digits {
	case 0:
		digits = "default"
	case ZeroDigits:
		digits = "0"
	}
	return fmt.Sprintf("range=%v-%v fractional digits=%v", p.Starting, p.Ending, digits)
}

func (p FromSet) String() string {
	return fmt.Sprintf("items=%d ordered=%v distinct=%v", len(p.Items), p.KeepOrder, p.Distinct)
}

func (p IDs) String() string {
	charsets := make([]string, 0, len(p.Charsets))
	for _, c := range p.Charsets {
		charsets = append(charsets, string(c))
	}
	return fmt.Sprintf("length=%d-%d chars=%v", p.MinLength, p.MaxLength, strings.Join(charsets, "+"))
}

func (p Sequence) String() string {
	return fmt.Sprintf("start=%v step=%v", p.Starting, p.Increment)
}

func (p Words) String() string {
	sep := fmt.Sprintf("%q", p.Separator)
	if p.NoSeparator {
		sep = "none"
	}
	return fmt.Sprintf("words=%d-%d sep=%v lists=%v", p.MinWords, p.MaxWords, sep, listNames(p.Lists))
}

func (p Emails) String() string {
	return fmt.Sprintf("local=%d-%d domain=%d-%d lists=%v domains=%v tlds=%d",
		p.MinLocalWords, p.MaxLocalWords, p.MinDomainWords, p.MaxDomainWords,
		listNames(p.LocalLists), listNames(p.DomainLists), len(p.TLDs))
}

func (HexColors) String() string {
	return "#rrggbb"
}

func (p Sample) String() string {
	return fmt.Sprintf("items=%d length=%d-%d ordered=%v duplicates=%v",
		len(p.Items), p.MinLength, p.MaxLength, p.KeepOrder, p.AllowDuplicates)
}

func (p Custom) String() string {
	if p.Func == nil {
		return "func=<nil>"
	}
	return "func"
}

func listNames(lists []wordlist.List) string {
	if len(lists) == 0 {
		return "default"
	}

	names := make([]string, 0, len(lists))
	for _, l := range lists {
		names = append(names, l.Name)
	}
	return strings.Join(names, "+")
}

// statically ensure that all parameter types can be printed
var (
	_ fmt.Stringer = NumberRange{}
	_ fmt.Stringer = FromSet{}
	_ fmt.Stringer = IDs{}
	_ fmt.Stringer = Sequence{}
	_ fmt.Stringer = Words{}
	_ fmt.Stringer = Emails{}
	_ fmt.Stringer = HexColors{}
	_ fmt.Stringer = Sample{}
	_ fmt.Stringer = Custom{}
)
