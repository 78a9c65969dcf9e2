package producer

import "fmt"

// FromSet picks values from Items. With KeepOrder, the item at index i is
// Items[i mod len(Items)], otherwise each pick is uniform. Distinct removes
// duplicate items before picking.
type FromSet struct {
	Items     []any
	KeepOrder bool
	Distinct  bool

	items    []any
	distinct int
}

// Kind returns KindFromSet.
func (FromSet) Kind() Kind { return KindFromSet }

func (p FromSet) prepare() (Params, error) {
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%w: no items to pick from", ErrMissingParameter)
	}

	uniq := distinct(p.Items)
	p.distinct = len(uniq)

	p.items = p.Items
	if p.Distinct {
		p.items = uniq
	}

	return p, nil
}

func (p FromSet) produce(index int) any {
	if p.KeepOrder {
		return p.items[index%len(p.items)]
	}
	return p.items[intN(len(p.items))]
}

func (p FromSet) capacity() float64 {
	return float64(p.distinct)
}
