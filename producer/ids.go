package producer

import (
	"fmt"
	"math"
	"strings"
)

// Charset is a class of characters identifiers are built from.
type Charset string

// Character classes.
const (
	CharsetNumber Charset = "number"
	CharsetLetter Charset = "letter"
	CharsetSymbol Charset = "symbol"
)

var charsets = map[Charset]string{
	CharsetNumber: "0123456789",
	CharsetLetter: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	CharsetSymbol: "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
}

// Default identifier parameters.
const (
	DefaultIDMinLength = 8
	DefaultIDMaxLength = 16
)

// IDs produces identifier strings with a length uniform in
// [MinLength, MaxLength] and characters uniform over the union of Charsets.
// The zero value yields 8 to 16 letters and digits.
type IDs struct {
	MinLength, MaxLength int
	Charsets             []Charset

	chars []rune
}

// Kind returns KindIDs.
func (IDs) Kind() Kind { return KindIDs }

func (p IDs) prepare() (Params, error) {
	if p.MinLength == 0 && p.MaxLength == 0 {
		p.MinLength, p.MaxLength = DefaultIDMinLength, DefaultIDMaxLength
	}

	if p.MinLength < 0 || p.MaxLength < p.MinLength {
		return nil, fmt.Errorf("%w: invalid identifier length %d-%d",
			ErrInvalidParameter, p.MinLength, p.MaxLength)
	}

	if len(p.Charsets) == 0 {
		p.Charsets = []Charset{CharsetLetter, CharsetNumber}
	}

	seen := make(map[rune]struct{})
	p.chars = nil
	for _, cs := range p.Charsets {
		chars, ok := charsets[cs]
		if !ok {
			return nil, fmt.Errorf("%w: unknown character class %q", ErrInvalidParameter, cs)
		}

		for _, c := range chars {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			p.chars = append(p.chars, c)
		}
	}

	return p, nil
}

// Chars returns the distinct characters of the configured classes. It is
// empty for parameters that have not been passed to New.
func (p IDs) Chars() string {
	return string(p.chars)
}

func (p IDs) produce() any {
	n := between(p.MinLength, p.MaxLength)

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(p.chars[intN(len(p.chars))])
	}

	return sb.String()
}

func (p IDs) capacity() float64 {
	return powerSum(float64(len(p.chars)), p.MinLength, p.MaxLength)
}

// powerSum returns the sum of base^k for k in [min, max].
func powerSum(base float64, min, max int) float64 {
	var sum float64
	for k := min; k <= max; k++ {
		sum += math.Pow(base, float64(k))
		if math.IsInf(sum, 1) {
			break
		}
	}
	return sum
}
