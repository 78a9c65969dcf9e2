package producer

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/RedTeamPentesting/drizzle/wordlist"
	"github.com/google/go-cmp/cmp"
)

func TestNumbers(t *testing.T) {
	values, err := Generate(NumberRange{
		Starting:   5,
		Ending:     25,
		Fractional: true,
		Digits:     5,
	}, Count(15))
	if err != nil {
		t.Fatal(err)
	}

	if len(values) != 15 {
		t.Fatalf("wrong number of values, want 15, got %d", len(values))
	}

	for _, v := range values {
		x, ok := v.(float64)
		if !ok {
			t.Fatalf("value %v has type %T, want float64", v, v)
		}

		if x < 5 || x >= 25 {
			t.Errorf("value %v is not within [5, 25)", x)
		}

		s := strconv.FormatFloat(x, 'f', -1, 64)
		if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > 5 {
			t.Errorf("value %v has more than 5 digits after the point", s)
		}
	}
}

func TestNumbersDigits(t *testing.T) {
	tests := []struct {
		Params NumberRange
		Digits int
	}{
		{NumberRange{Starting: 0.123456, Ending: 0.2, Fractional: true, Digits: 2}, 2},
		{NumberRange{Starting: 0.29, Ending: 0.3, Fractional: true, Digits: 2}, 2},
		{NumberRange{Starting: 1.1, Ending: 1.2, Fractional: true, Digits: 1}, 1},
		{NumberRange{Starting: 0.25, Ending: 0.25, Fractional: true, Digits: 2}, 2},
		{NumberRange{Starting: 1, Ending: 5, Fractional: true, Digits: ZeroDigits}, 0},
		{NumberRange{Starting: -2.5, Ending: 2, Fractional: true, Digits: ZeroDigits}, 0},
		{NumberRange{Ending: 1, Fractional: true}, DefaultDigits},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values, err := Generate(test.Params, Count(500))
			if err != nil {
				t.Fatal(err)
			}

			lo, hi := test.Params.Starting, test.Params.Ending
			for _, v := range values {
				x := v.(float64)
				if x < lo || (lo < hi && x >= hi) || (lo == hi && x != lo) {
					t.Errorf("value %v is not within [%v, %v)", x, lo, hi)
				}

				s := strconv.FormatFloat(x, 'f', -1, 64)
				if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > test.Digits {
					t.Errorf("value %v has more than %d digits after the point", s, test.Digits)
				}
			}
		})
	}
}

func TestNumbersIntegers(t *testing.T) {
	tests := []struct {
		Params NumberRange
		Min    int
		Max    int
	}{
		{NumberRange{}, 0, 99},
		{NumberRange{Starting: -3, Ending: 3}, -3, 2},
		{NumberRange{Starting: 0.5, Ending: 2.5}, 1, 2},
		{NumberRange{Starting: 7, Ending: 7}, 7, 7},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values, err := Generate(test.Params, Count(200))
			if err != nil {
				t.Fatal(err)
			}

			for _, v := range values {
				x, ok := v.(int)
				if !ok {
					t.Fatalf("value %v has type %T, want int", v, v)
				}

				if x < test.Min || x > test.Max {
					t.Errorf("value %v is not within [%d, %d]", x, test.Min, test.Max)
				}
			}
		})
	}
}

func TestFromSetKeepOrder(t *testing.T) {
	items := []any{1, 2, 3, 4, []any{1, 56, 9}, 6, map[string]any{"te": 56}}

	tests := []struct {
		Count  int
		Result []any
	}{
		{4, []any{1, 2, 3, 4}},
		{7, items},
		{9, append(append([]any{}, items...), 1, 2)},
		{0, []any{}},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values, err := Generate(FromSet{Items: items, KeepOrder: true}, Count(test.Count))
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.Result, values) {
				t.Fatal(cmp.Diff(test.Result, values))
			}
		})
	}
}

func TestFromSetDistinct(t *testing.T) {
	items := []any{"a", "b", "a", []int{1}, []int{1}}

	values, err := Generate(FromSet{Items: items, KeepOrder: true, Distinct: true}, Count(3))
	if err != nil {
		t.Fatal(err)
	}

	want := []any{"a", "b", []int{1}}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}
}

func TestFromSetUnique(t *testing.T) {
	var items []any
	for i := 0; i < 20; i++ {
		items = append(items, i)
	}

	values, err := Generate(FromSet{Items: items}, Count(20), Unique(true))
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[any]bool)
	for _, v := range values {
		if seen[v] {
			t.Fatalf("duplicate value %v in %v", v, values)
		}
		seen[v] = true
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		Params Sequence
		Count  int
		Result []any
	}{
		{Sequence{Starting: 5, Increment: 2}, 3, []any{5.0, 7.0, 9.0}},
		{Sequence{Starting: 1, Increment: -0.5}, 4, []any{1.0, 0.5, 0.0, -0.5}},
		{Sequence{Starting: 3}, 2, []any{3.0, 3.0}},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values, err := Generate(test.Params, Count(test.Count))
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.Result, values) {
				t.Fatal(cmp.Diff(test.Result, values))
			}
		})
	}
}

func TestSequenceZeroIncrementUnique(t *testing.T) {
	var failed []int
	obs := ObserverFuncs{
		OnUniqueCheckFailed: func(kind Kind, retryLimit int) {
			if kind != KindSequence {
				t.Errorf("wrong kind %v", kind)
			}
			failed = append(failed, retryLimit)
		},
	}

	values, err := Generate(Sequence{Starting: 4}, Count(5), Unique(true), Observe(obs))
	if err != nil {
		t.Fatal(err)
	}

	want := []any{4.0, 4.0, 4.0, 4.0, 4.0}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}

	if !cmp.Equal([]int{0}, failed) {
		t.Fatal(cmp.Diff([]int{0}, failed))
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		Params   IDs
		Min, Max int
		Pattern  string
	}{
		{IDs{}, 8, 16, `^[a-zA-Z0-9]*$`},
		{IDs{MinLength: 3, MaxLength: 3, Charsets: []Charset{CharsetNumber}}, 3, 3, `^[0-9]*$`},
		{IDs{MinLength: 1, MaxLength: 4, Charsets: []Charset{CharsetLetter}}, 1, 4, `^[a-zA-Z]*$`},
		{IDs{MinLength: 5, MaxLength: 10, Charsets: []Charset{CharsetSymbol}}, 5, 10, `^[[:punct:]]*$`},
		{IDs{MinLength: 0, MaxLength: 2, Charsets: []Charset{CharsetNumber, CharsetNumber}}, 0, 2, `^[0-9]*$`},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			re := regexp.MustCompile(test.Pattern)

			values, err := Generate(test.Params, Count(100))
			if err != nil {
				t.Fatal(err)
			}

			for _, v := range values {
				s := v.(string)
				if len(s) < test.Min || len(s) > test.Max {
					t.Errorf("length of %q is not within [%d, %d]", s, test.Min, test.Max)
				}

				if !re.MatchString(s) {
					t.Errorf("%q contains characters outside of the configured classes", s)
				}
			}
		})
	}
}

func TestIDsChars(t *testing.T) {
	g, err := New(IDs{Charsets: []Charset{CharsetNumber, CharsetNumber}})
	if err != nil {
		t.Fatal(err)
	}

	chars := g.Config().Params.(IDs).Chars()
	if chars != "0123456789" {
		t.Fatalf("wrong chars, want 0123456789, got %q", chars)
	}

	if len(charsets[CharsetSymbol]) != 32 {
		t.Fatalf("want 32 symbols, got %d", len(charsets[CharsetSymbol]))
	}
}

func TestWords(t *testing.T) {
	list := wordlist.List{Name: "test", Words: []string{"foo", "bar", "baz"}}

	values, err := Generate(Words{MinWords: 1, MaxWords: 3, Separator: "-", Lists: []wordlist.List{list}}, Count(50))
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range values {
		parts := strings.Split(v.(string), "-")
		if len(parts) < 1 || len(parts) > 3 {
			t.Errorf("wrong number of words in %q", v)
		}

		for _, p := range parts {
			if p != "foo" && p != "bar" && p != "baz" {
				t.Errorf("unknown word %q in %q", p, v)
			}
		}
	}
}

func TestWordsDefault(t *testing.T) {
	v, err := Run(Words{})
	if err != nil {
		t.Fatal(err)
	}

	n := len(strings.Split(v.(string), " "))
	if n < 2 || n > 3 {
		t.Fatalf("wrong number of words in %q", v)
	}
}

func TestWordsSeparator(t *testing.T) {
	list := wordlist.List{Name: "test", Words: []string{"foo"}}

	tests := []struct {
		Params Words
		Want   string
	}{
		{Words{MinWords: 2, MaxWords: 2, Lists: []wordlist.List{list}}, "foo foo"},
		{Words{MinWords: 2, MaxWords: 2, Separator: "_", Lists: []wordlist.List{list}}, "foo_foo"},
		{Words{MinWords: 3, MaxWords: 3, NoSeparator: true, Lists: []wordlist.List{list}}, "foofoofoo"},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			v, err := Run(test.Params)
			if err != nil {
				t.Fatal(err)
			}

			if v != test.Want {
				t.Fatalf("wrong value, want %q, got %q", test.Want, v)
			}
		})
	}
}

func TestEmails(t *testing.T) {
	re := regexp.MustCompile(`^[a-z-]+(\.[a-z-]+)?@[a-z]+\.[a-z]+$`)

	values, err := Generate(Emails{}, Count(100))
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range values {
		s := v.(string)
		if !re.MatchString(s) {
			t.Errorf("invalid address %q", s)
		}

		tld := s[strings.LastIndexByte(s, '.')+1:]
		found := false
		for _, w := range wordlist.TLDs.Words {
			if w == tld {
				found = true
			}
		}
		if !found {
			t.Errorf("unknown top-level domain in %q", s)
		}
	}
}

func TestEmailsCustomTLDs(t *testing.T) {
	v, err := Run(Emails{
		LocalLists: []wordlist.List{{Words: []string{"New York"}}},
		TLDs:       []string{".test"},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := v.(string)
	if !strings.HasPrefix(s, "newyork") || !strings.HasSuffix(s, ".test") {
		t.Fatalf("unexpected address %q", s)
	}
}

func TestHexColors(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	values, err := Generate(HexColors{}, Count(100), Unique(true))
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range values {
		if !re.MatchString(v.(string)) {
			t.Errorf("invalid color %q", v)
		}
	}
}

func TestSample(t *testing.T) {
	items := []any{"a", "b", "c", "d", "e"}

	tests := []struct {
		Params   Sample
		Min, Max int
	}{
		{Sample{Items: items}, 1, 4},
		{Sample{Items: items, MinLength: 2, MaxLength: 5}, 2, 5},
		{Sample{Items: items, MinLength: 3, MaxLength: 3, KeepOrder: true}, 3, 3},
		{Sample{Items: items, MinLength: 4, MaxLength: 4, KeepOrder: true, AllowDuplicates: true}, 4, 4},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			values, err := Generate(test.Params, Count(50))
			if err != nil {
				t.Fatal(err)
			}

			for _, v := range values {
				res := v.([]any)
				if len(res) < test.Min || len(res) > test.Max {
					t.Errorf("length of %v is not within [%d, %d]", res, test.Min, test.Max)
				}

				last := -1
				seen := make(map[any]bool)
				for _, item := range res {
					pos := indexOf(items, item)
					if pos < 0 {
						t.Fatalf("unknown item %v", item)
					}

					if !test.Params.AllowDuplicates && seen[item] {
						t.Errorf("duplicate item %v in %v", item, res)
					}
					seen[item] = true

					if test.Params.KeepOrder && pos < last {
						t.Errorf("items of %v are not in source order", res)
					}
					last = pos
				}
			}
		})
	}
}

func TestSampleForcesDuplicates(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	g, err := New(Sample{Items: []any{1, 2}, MinLength: 3, MaxLength: 3}, Logger(logger))
	if err != nil {
		t.Fatal(err)
	}

	if !g.Config().Params.(Sample).AllowDuplicates {
		t.Fatal("duplicates were not enabled")
	}

	if !strings.Contains(buf.String(), "allowing duplicates") {
		t.Fatalf("missing warning, log is %q", buf.String())
	}

	v, err := g.Value()
	if err != nil {
		t.Fatal(err)
	}

	if len(v.([]any)) != 3 {
		t.Fatalf("wrong sample length, want 3, got %v", v)
	}
}

func TestCustom(t *testing.T) {
	fn := func(index int) (any, error) {
		return fmt.Sprintf("item-%d", index), nil
	}

	values, err := Generate(Custom{Func: fn}, Count(3))
	if err != nil {
		t.Fatal(err)
	}

	want := []any{"item-0", "item-1", "item-2"}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		Params Params
		Opts   []Option
		Err    error
	}{
		{FromSet{}, nil, ErrMissingParameter},
		{Sample{}, nil, ErrMissingParameter},
		{Custom{}, nil, ErrMissingParameter},
		{nil, nil, ErrMissingParameter},
		{Words{Lists: []wordlist.List{{Name: "empty"}}}, nil, ErrMissingParameter},
		{IDs{MinLength: 5, MaxLength: 2}, nil, ErrInvalidParameter},
		{IDs{Charsets: []Charset{"emoji"}}, nil, ErrInvalidParameter},
		{NumberRange{Starting: 10, Ending: 1}, nil, ErrInvalidParameter},
		{NumberRange{Starting: 0.2, Ending: 0.8}, nil, ErrInvalidParameter},
		{NumberRange{Ending: 1, Fractional: true, Digits: 20}, nil, ErrInvalidParameter},
		{NumberRange{Ending: 1, Fractional: true, Digits: -2}, nil, ErrInvalidParameter},
		{NumberRange{Starting: 0.121, Ending: 0.125, Fractional: true, Digits: 2}, nil, ErrInvalidParameter},
		{NumberRange{Starting: 0.5, Ending: 0.5, Fractional: true, Digits: ZeroDigits}, nil, ErrInvalidParameter},
		{Words{Separator: "-", NoSeparator: true}, nil, ErrInvalidParameter},
		{Words{MinWords: 3, MaxWords: 1}, nil, ErrInvalidParameter},
		{Sample{Items: []any{1}, MinLength: 2, MaxLength: 1}, nil, ErrInvalidParameter},
		{HexColors{}, []Option{Count(-1)}, ErrInvalidCount},
		{HexColors{}, []Option{RetryLimit(-5)}, ErrInvalidCount},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			_, err := New(test.Params, test.Opts...)
			if !errors.Is(err, test.Err) {
				t.Fatalf("wrong error, want %v, got %v", test.Err, err)
			}
		})
	}
}

func TestRunDualMode(t *testing.T) {
	v, err := Run(HexColors{})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := v.(string); !ok {
		t.Fatalf("want a single string, got %T", v)
	}

	v, err = Run(HexColors{}, Count(3))
	if err != nil {
		t.Fatal(err)
	}

	values, ok := v.([]any)
	if !ok {
		t.Fatalf("want []any, got %T", v)
	}

	if len(values) != 3 {
		t.Fatalf("wrong number of values, want 3, got %d", len(values))
	}
}

func TestGenerateDefaultCount(t *testing.T) {
	values, err := Generate(IDs{})
	if err != nil {
		t.Fatal(err)
	}

	if len(values) != DefaultItems {
		t.Fatalf("wrong number of values, want %d, got %d", DefaultItems, len(values))
	}
}

func TestGeneratorReuse(t *testing.T) {
	g := MustNew(Sequence{Starting: 1, Increment: 1}, Count(2))

	for i := 0; i < 3; i++ {
		v, err := g.Run()
		if err != nil {
			t.Fatal(err)
		}

		want := []any{1.0, 2.0}
		if !cmp.Equal(want, v) {
			t.Fatal(cmp.Diff(want, v))
		}
	}

	values, err := g.Values(4)
	if err != nil {
		t.Fatal(err)
	}

	if len(values) != 4 {
		t.Fatalf("wrong number of values, want 4, got %d", len(values))
	}

	if g.Config().Count != 2 {
		t.Fatalf("generator count was modified to %d", g.Config().Count)
	}
}

func TestMap(t *testing.T) {
	double := func(v any, index int) (any, error) {
		return v.(float64) * 2, nil
	}

	values, err := Generate(Sequence{Starting: 1, Increment: 1}, Count(3), Map(double))
	if err != nil {
		t.Fatal(err)
	}

	want := []any{2.0, 4.0, 6.0}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}
}

func TestCompare(t *testing.T) {
	even := func(v any, accepted []any, index int) (bool, error) {
		return v.(int)%2 == 0, nil
	}

	values, err := Generate(NumberRange{Starting: 0, Ending: 10}, Count(50), Compare(even))
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range values {
		if v.(int)%2 != 0 {
			t.Errorf("odd value %v was accepted", v)
		}
	}
}

func TestCompareSeesAccepted(t *testing.T) {
	increasing := func(v any, accepted []any, index int) (bool, error) {
		if len(accepted) != index {
			return false, fmt.Errorf("got %d accepted values for index %d", len(accepted), index)
		}
		if index == 0 {
			return true, nil
		}
		return v.(int) > accepted[index-1].(int), nil
	}

	values, err := Generate(Custom{Func: func(index int) (any, error) { return index, nil }},
		Count(5), Compare(increasing))
	if err != nil {
		t.Fatal(err)
	}

	want := []any{0, 1, 2, 3, 4}
	if !cmp.Equal(want, values) {
		t.Fatal(cmp.Diff(want, values))
	}
}

func TestRetryLimit(t *testing.T) {
	never := func(any, []any, int) (bool, error) {
		return false, nil
	}

	var failed []int
	obs := ObserverFuncs{
		OnUniqueCheckFailed: func(kind Kind, retryLimit int) {
			failed = append(failed, retryLimit)
		},
	}

	values, err := Generate(NumberRange{}, Count(10), Compare(never), RetryLimit(5), Observe(obs))
	if err != nil {
		t.Fatal(err)
	}

	if len(values) != 10 {
		t.Fatalf("wrong number of values, want 10, got %d", len(values))
	}

	if !cmp.Equal([]int{5}, failed) {
		t.Fatal(cmp.Diff([]int{5}, failed))
	}
}

func TestRetryLimitDefault(t *testing.T) {
	never := func(any, []any, int) (bool, error) {
		return false, nil
	}

	values, err := Generate(HexColors{}, Count(3), Compare(never))
	if err != nil {
		t.Fatal(err)
	}

	if len(values) != 3 {
		t.Fatalf("wrong number of values, want 3, got %d", len(values))
	}
}

func TestInfeasibleUnique(t *testing.T) {
	g := MustNew(FromSet{Items: []any{1, 2, 3}}, Count(10), Unique(true))

	// running twice must not fail either
	for i := 0; i < 2; i++ {
		var failed []int
		obs := ObserverFuncs{
			OnUniqueCheckFailed: func(kind Kind, retryLimit int) {
				failed = append(failed, retryLimit)
			},
		}

		values, err := g.Values(10)
		if err != nil {
			t.Fatal(err)
		}

		if len(values) != 10 {
			t.Fatalf("wrong number of values, want 10, got %d", len(values))
		}

		values, err = Generate(FromSet{Items: []any{1, 2, 3}}, Count(10), Unique(true), Observe(obs))
		if err != nil {
			t.Fatal(err)
		}

		if len(values) != 10 {
			t.Fatalf("wrong number of values, want 10, got %d", len(values))
		}

		if !cmp.Equal([]int{0}, failed) {
			t.Fatal(cmp.Diff([]int{0}, failed))
		}
	}

	if !g.Config().Unique {
		t.Fatal("uniqueness of the generator configuration was modified")
	}
}

func TestHookErrors(t *testing.T) {
	errTest := errors.New("test error")

	tests := []struct {
		Params Params
		Opts   []Option
	}{
		{
			Custom{Func: func(int) (any, error) { return nil, errTest }},
			nil,
		},
		{
			HexColors{},
			[]Option{Map(func(any, int) (any, error) { return nil, errTest })},
		},
		{
			HexColors{},
			[]Option{Compare(func(any, []any, int) (bool, error) { return false, errTest })},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			_, err := Generate(test.Params, append(test.Opts, Count(3))...)
			if !errors.Is(err, errTest) {
				t.Fatalf("wrong error, want %v, got %v", errTest, err)
			}
		})
	}
}

func TestObserverOrder(t *testing.T) {
	identity := func(v any, index int) (any, error) { return v, nil }
	double := func(v any, index int) (any, error) { return v.(float64) * 2, nil }
	always := func(any, []any, int) (bool, error) { return true, nil }

	tests := []struct {
		Opts   []Option
		Events []string
	}{
		{
			[]Option{Map(identity), Compare(always), Unique(true)},
			[]string{
				"created 1 0 sequence",
				"map 1 0",
				"compare 1 0 true",
				"unique 1 0 true",
				"created 2 1 sequence",
				"map 2 1",
				"compare 2 1 true",
				"unique 2 1 true",
			},
		},
		{
			// no hooks at all, every callback still fires with a pass-through
			nil,
			[]string{
				"created 1 0 sequence",
				"map 1 0",
				"compare 1 0 true",
				"unique 1 0 true",
				"created 2 1 sequence",
				"map 2 1",
				"compare 2 1 true",
				"unique 2 1 true",
			},
		},
		{
			[]Option{Map(double)},
			[]string{
				"created 1 0 sequence",
				"map 2 0",
				"compare 2 0 true",
				"unique 2 0 true",
				"created 2 1 sequence",
				"map 4 1",
				"compare 4 1 true",
				"unique 4 1 true",
			},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			var events []string
			obs := ObserverFuncs{
				OnItemCreated: func(value any, index int, kind Kind) {
					events = append(events, fmt.Sprintf("created %v %d %v", value, index, kind))
				},
				OnMap: func(value any, index int, kind Kind) {
					events = append(events, fmt.Sprintf("map %v %d", value, index))
				},
				OnCompare: func(value any, index int, kind Kind, ok bool) {
					events = append(events, fmt.Sprintf("compare %v %d %v", value, index, ok))
				},
				OnUnique: func(value any, index int, kind Kind, ok bool) {
					events = append(events, fmt.Sprintf("unique %v %d %v", value, index, ok))
				},
			}

			opts := append([]Option{Count(2), Observe(obs)}, test.Opts...)
			_, err := Generate(Sequence{Starting: 1, Increment: 1}, opts...)
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.Events, events) {
				t.Fatal(cmp.Diff(test.Events, events))
			}
		})
	}
}

func TestObserverPlainRun(t *testing.T) {
	var created, mapped, compared, unique int
	obs := ObserverFuncs{
		OnItemCreated: func(any, int, Kind) { created++ },
		OnMap:         func(any, int, Kind) { mapped++ },
		OnCompare:     func(any, int, Kind, bool) { compared++ },
		OnUnique:      func(any, int, Kind, bool) { unique++ },
	}

	_, err := Generate(HexColors{}, Count(5), Observe(obs))
	if err != nil {
		t.Fatal(err)
	}

	want := []int{5, 5, 5, 5}
	got := []int{created, mapped, compared, unique}
	if !cmp.Equal(want, got) {
		t.Fatal(cmp.Diff(want, got))
	}
}

func TestVerbose(t *testing.T) {
	tests := []struct {
		Opts  []Option
		Lines map[string]int
	}{
		{
			[]Option{Verbose(true)},
			map[string]int{"item created": 3},
		},
		{
			[]Option{Verbose(true), Unique(true)},
			map[string]int{"item created": 3, "after compare function": 3},
		},
		{
			[]Option{Verbose(true), Map(func(v any, _ int) (any, error) { return v, nil })},
			map[string]int{"item created": 3, "after map function": 3},
		},
		{
			[]Option{Verbose(false), Unique(true)},
			map[string]int{},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			opts := append([]Option{Count(3), Logger(logger)}, test.Opts...)
			_, err := Generate(Sequence{Increment: 1}, opts...)
			if err != nil {
				t.Fatal(err)
			}

			lines := make(map[string]int)
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				if line == "" {
					continue
				}

				for _, msg := range []string{"item created", "after map function", "after compare function"} {
					if strings.Contains(line, `msg="`+msg+`"`) {
						lines[msg]++
					}
				}
			}

			if !cmp.Equal(test.Lines, lines) {
				t.Fatal(cmp.Diff(test.Lines, lines))
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		Params   Params
		Capacity float64
		Known    bool
	}{
		{NumberRange{Starting: 1, Ending: 11}, 10, true},
		{NumberRange{Starting: 0, Ending: 2, Fractional: true, Digits: 2}, 200, true},
		{FromSet{Items: []any{1, 1, 2}}, 2, true},
		{IDs{MinLength: 1, MaxLength: 2, Charsets: []Charset{CharsetNumber}}, 110, true},
		{Sequence{Starting: 1}, 1, true},
		{HexColors{}, 16777216, true},
		{Sample{Items: []any{1, 2, 3}, MinLength: 1, MaxLength: 2}, 12, true},
		{Custom{Func: func(int) (any, error) { return nil, nil }}, 0, false},
	}

	for _, test := range tests {
		t.Run(test.Params.Kind().String(), func(t *testing.T) {
			g := MustNew(test.Params)

			c, known := g.Capacity()
			if known != test.Known {
				t.Fatalf("wrong known flag, want %v, got %v", test.Known, known)
			}

			if known && c != test.Capacity {
				t.Fatalf("wrong capacity, want %v, got %v", test.Capacity, c)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		res, err := ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}

		if res != k {
			t.Fatalf("wrong kind, want %v, got %v", k, res)
		}
	}

	_, err := ParseKind("foo")
	if err == nil {
		t.Fatal("want error for unknown kind, got nil")
	}
}
