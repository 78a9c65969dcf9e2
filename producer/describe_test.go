package producer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/RedTeamPentesting/drizzle/wordlist"
)

func TestParamsString(t *testing.T) {
	huge := wordlist.List{Name: "huge", Words: make([]string, 10000)}
	for i := range huge.Words {
		huge.Words[i] = "word"
	}

	tests := []struct {
		Params Params
		Want   string
	}{
		{Words{}, `words=2-3 sep=" " lists=name+adjective`},
		{Words{MinWords: 1, MaxWords: 1, NoSeparator: true, Lists: []wordlist.List{huge}}, `words=1-1 sep=none lists=huge`},
		{Emails{}, "local=1-2 domain=1-1 lists=name domains=noun tlds="},
		{NumberRange{}, "range=0-100"},
		{NumberRange{Ending: 1, Fractional: true, Digits: ZeroDigits}, "range=0-1 fractional digits=0"},
		{Sequence{Starting: 3, Increment: 2}, "start=3 step=2"},
		{FromSet{Items: []any{1, 2, 3}, KeepOrder: true}, "items=3 ordered=true distinct=false"},
		{HexColors{}, "#rrggbb"},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			g, err := New(test.Params)
			if err != nil {
				t.Fatal(err)
			}

			s := g.Config().Params.(fmt.Stringer).String()
			if !strings.HasPrefix(s, test.Want) {
				t.Fatalf("wrong description, want prefix %q, got %q", test.Want, s)
			}

			if len(s) > 200 {
				t.Fatalf("description is too long (%d bytes): %.200s", len(s), s)
			}
		})
	}
}
