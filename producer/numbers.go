package producer

import (
	"fmt"
	"math"
)

// DefaultDigits is the number of digits after the point in fractional mode
// when NumberRange.Digits is zero.
const DefaultDigits = 5

// ZeroDigits requests no digits after the point in fractional mode. Values
// are then whole float64 numbers.
const ZeroDigits = -1

// maxDigits bounds the digits after the point to what a float64 can carry.
const maxDigits = 15

// maxExact is the largest magnitude up to which every integer is exactly
// representable as a float64.
const maxExact = 1 << 53

// NumberRange draws numbers uniformly from [Starting, Ending). Integer mode
// (the default) yields int values, fractional mode yields float64 values
// truncated to at most Digits digits after the point. The zero value draws
// integers from [0, 100). A zero Digits selects DefaultDigits, use ZeroDigits
// for none.
type NumberRange struct {
	Starting, Ending float64

	Fractional bool
	Digits     int

	lo, hi int64
	digits int
}

// Kind returns KindNumbers.
func (NumberRange) Kind() Kind { return KindNumbers }

func (p NumberRange) prepare() (Params, error) {
	if p.Starting == 0 && p.Ending == 0 {
		p.Ending = 100
	}

	for _, v := range []float64{p.Starting, p.Ending} {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxExact {
			return nil, fmt.Errorf("%w: number range bound %v out of range", ErrInvalidParameter, v)
		}
	}

	if p.Starting > p.Ending {
		return nil, fmt.Errorf("%w: number range start %v is larger than end %v",
			ErrInvalidParameter, p.Starting, p.Ending)
	}

	if p.Digits < ZeroDigits || p.Digits > maxDigits {
		return nil, fmt.Errorf("%w: digits after the point must be within 0..%d, got %d",
			ErrInvalidParameter, maxDigits, p.Digits)
	}

	if p.Fractional {
		switch p.Digits {
		case 0:
			p.Digits = DefaultDigits
			p.digits = DefaultDigits
		case ZeroDigits:
			p.digits = 0
		default:
			p.digits = p.Digits
		}

		// at least one value with the digits after the point must exist
		first := gridCeil(p.Starting, p.digits)
		if (p.Starting == p.Ending && first != p.Starting) ||
			(p.Starting < p.Ending && first >= p.Ending) {
			return nil, fmt.Errorf("%w: no number with %d digits after the point in range [%v, %v)",
				ErrInvalidParameter, p.digits, p.Starting, p.Ending)
		}
		return p, nil
	}

	if p.Starting == p.Ending {
		p.lo = int64(math.Floor(p.Starting))
		p.hi = p.lo
		return p, nil
	}

	p.lo = int64(math.Ceil(p.Starting))
	p.hi = int64(math.Ceil(p.Ending))
	if p.hi <= p.lo {
		return nil, fmt.Errorf("%w: no integer in range [%v, %v)",
			ErrInvalidParameter, p.Starting, p.Ending)
	}

	return p, nil
}

func (p NumberRange) produce() any {
	if !p.Fractional {
		if p.hi <= p.lo {
			return int(p.lo)
		}
		return int(p.lo + int64n(p.hi-p.lo))
	}

	if p.Starting == p.Ending {
		return p.Starting
	}

	v := p.Starting + float64n()*(p.Ending-p.Starting)
	return truncate(v, p.digits, p.Starting, p.Ending)
}

// truncate cuts v to at most digits digits after the point. The result stays
// within [lo, hi), values below lo move up to the first grid value.
func truncate(v float64, digits int, lo, hi float64) float64 {
	scale := math.Pow10(digits)
	t := math.Floor(v*scale) / scale
	if t < lo || t >= hi {
		return gridCeil(lo, digits)
	}
	return t
}

// gridCeil returns the smallest number with at most digits digits after the
// point that is not below v.
func gridCeil(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	x := v * scale
	// absorb rounding noise from the multiplication, e.g. 1.1*100
	if r := math.Round(x); math.Abs(x-r) <= 1e-9*math.Max(1, math.Abs(x)) {
		x = r
	}
	return math.Ceil(x) / scale
}

func (p NumberRange) capacity() float64 {
	var size float64
	if p.Fractional {
		size = (p.Ending - p.Starting) * math.Pow10(p.digits)
	} else {
		size = float64(p.hi - p.lo)
	}

	if size <= 0 {
		return 1
	}
	return size
}
