package producer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is an interval of numbers given on the command line.
type Range struct {
	First, Last float64
}

// ParseRange parses a range from the string s. Valid formats are `n` and
// `n-m`, where both numbers may be negative, fractional or use an exponent.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)

	// test if it's a number only
	n, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return Range{First: n, Last: n}, nil
	}

	// otherwise try every dash which is not a sign as the separator
	for i := 1; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}

		switch s[i-1] {
		case 'e', 'E', '-':
			continue
		}

		first, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			continue
		}

		last, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil {
			continue
		}

		return Range{First: first, Last: last}, nil
	}

	return Range{}, fmt.Errorf("wrong format for range, expected: first-last, got: %q", s)
}

// Ints returns the range as integers. It fails for fractional bounds and for
// ranges where the last value is smaller than the first one.
func (r Range) Ints() (first, last int, err error) {
	if r.First != math.Trunc(r.First) || r.Last != math.Trunc(r.Last) {
		return 0, 0, fmt.Errorf("range %v-%v is not integral", r.First, r.Last)
	}

	if r.First > r.Last {
		return 0, 0, fmt.Errorf("last value is smaller than first value for range %v-%v", r.First, r.Last)
	}

	return int(r.First), int(r.Last), nil
}

func (r Range) String() string {
	if r.First == r.Last {
		return strconv.FormatFloat(r.First, 'g', -1, 64)
	}
	return strconv.FormatFloat(r.First, 'g', -1, 64) + "-" + strconv.FormatFloat(r.Last, 'g', -1, 64)
}
