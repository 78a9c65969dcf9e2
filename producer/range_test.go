package producer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		Input  string
		Result Range
	}{
		{
			"2",
			Range{First: 2, Last: 2},
		},
		{
			"1e1",
			Range{First: 10, Last: 10},
		},
		{
			"1-2",
			Range{First: 1, Last: 2},
		},
		{
			"5-800",
			Range{First: 5, Last: 800},
		},
		{
			"500-200",
			Range{First: 500, Last: 200},
		},
		{
			"-5-10",
			Range{First: -5, Last: 10},
		},
		{
			"-10--5",
			Range{First: -10, Last: -5},
		},
		{
			"0.5-1.25",
			Range{First: 0.5, Last: 1.25},
		},
		{
			"1e1-1E2",
			Range{First: 10, Last: 100},
		},
		{
			"1e-2-1",
			Range{First: 0.01, Last: 1},
		},
		{
			"1-10e10",
			Range{First: 1, Last: 100000000000},
		},
		{
			"-10e2--10e1",
			Range{First: -1000, Last: -100},
		},
	}

	for _, test := range tests {
		t.Run(test.Input, func(t *testing.T) {
			r, err := ParseRange(test.Input)
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(test.Result, r) {
				t.Fatal(cmp.Diff(test.Result, r))
			}
		})
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, s := range []string{"", "x", "1-", "-", "1-x", "1--"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseRange(s)
			if err == nil {
				t.Fatalf("expected error for %q", s)
			}
		})
	}
}

func TestRangeInts(t *testing.T) {
	tests := []struct {
		Range       Range
		First, Last int
		Err         bool
	}{
		{Range{First: 1, Last: 3}, 1, 3, false},
		{Range{First: -2, Last: -2}, -2, -2, false},
		{Range{First: 3, Last: 1}, 0, 0, true},
		{Range{First: 1.5, Last: 3}, 0, 0, true},
	}

	for _, test := range tests {
		t.Run(test.Range.String(), func(t *testing.T) {
			first, last, err := test.Range.Ints()
			if test.Err {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if first != test.First || last != test.Last {
				t.Fatalf("wrong result, want %d-%d, got %d-%d", test.First, test.Last, first, last)
			}
		})
	}
}
