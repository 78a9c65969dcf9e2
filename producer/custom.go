package producer

import "fmt"

// Func produces the value at index.
type Func func(index int) (any, error)

// Custom delegates value production to Func. No uniqueness estimate is made
// for custom generators.
type Custom struct {
	Func Func
}

// Kind returns KindCustom.
func (Custom) Kind() Kind { return KindCustom }

func (p Custom) prepare() (Params, error) {
	if p.Func == nil {
		return nil, fmt.Errorf("%w: no custom function", ErrMissingParameter)
	}
	return p, nil
}
