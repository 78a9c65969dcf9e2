package producer

import "math"

// capacity returns the number of distinct values params can produce, or an
// upper bound of it. Custom generators report +Inf.
func capacity(params Params) float64 {
	switch p := params.(type) {
	case NumberRange:
		return p.capacity()
	case FromSet:
		return p.capacity()
	case IDs:
		return p.capacity()
	case Sequence:
		return p.capacity()
	case Words:
		return p.capacity()
	case Emails:
		return p.capacity()
	case HexColors:
		return p.capacity()
	case Sample:
		return p.capacity()
	}
	return math.Inf(1)
}

// feasible reports whether params can produce count distinct values.
func feasible(params Params, count int) bool {
	return capacity(params) >= float64(count)
}
