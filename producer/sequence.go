package producer

import (
	"fmt"
	"math"
)

// DefaultIncrement is the step callers such as the blueprint sequence type
// use when none is given.
const DefaultIncrement = 1

// Sequence produces Starting + index*Increment as float64. The zero value is
// not counting: Increment is taken literally, and an increment of zero yields
// the constant sequence Starting. Set Increment to DefaultIncrement to count
// up by one.
type Sequence struct {
	Starting  float64
	Increment float64
}

// Kind returns KindSequence.
func (Sequence) Kind() Kind { return KindSequence }

func (p Sequence) prepare() (Params, error) {
	for _, v := range []float64{p.Starting, p.Increment} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sequence parameter %v is not a finite number", ErrInvalidParameter, v)
		}
	}
	return p, nil
}

func (p Sequence) produce(index int) any {
	return p.Starting + float64(index)*p.Increment
}

func (p Sequence) capacity() float64 {
	if p.Increment == 0 {
		return 1
	}
	return math.Inf(1)
}
