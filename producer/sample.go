package producer

import (
	"fmt"
	"sort"
)

// Sample draws sub-slices of the distinct Items. The length is uniform in
// [MinLength, MaxLength]. Without AllowDuplicates, each item appears at most
// once; a MaxLength beyond the number of distinct items enables duplicates.
// KeepOrder sorts the result by position in Items.
//
// The zero lengths select 1 to len(distinct items)-1 elements.
type Sample struct {
	Items                []any
	MinLength, MaxLength int
	KeepOrder            bool
	AllowDuplicates      bool

	items []any

	// forcedDuplicates is set when prepare had to enable duplicates.
	forcedDuplicates bool
}

// Kind returns KindSample.
func (Sample) Kind() Kind { return KindSample }

func (p Sample) prepare() (Params, error) {
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%w: no items to sample from", ErrMissingParameter)
	}

	p.items = distinct(p.Items)
	n := len(p.items)

	if p.MinLength == 0 && p.MaxLength == 0 {
		p.MinLength, p.MaxLength = 1, max(1, n-1)
	}

	if p.MinLength < 0 || p.MaxLength < p.MinLength {
		return nil, fmt.Errorf("%w: invalid sample length %d-%d",
			ErrInvalidParameter, p.MinLength, p.MaxLength)
	}

	if !p.AllowDuplicates && p.MaxLength > n {
		p.AllowDuplicates = true
		p.forcedDuplicates = true
	}

	return p, nil
}

func (p Sample) produce() any {
	n := len(p.items)
	k := between(p.MinLength, p.MaxLength)

	var idx []int
	if p.AllowDuplicates {
		idx = make([]int, k)
		for i := range idx {
			idx[i] = intN(n)
		}
	} else {
		idx = perm(n, k)
	}

	if p.KeepOrder {
		sort.Ints(idx)
	}

	res := make([]any, k)
	for i, j := range idx {
		res[i] = p.items[j]
	}
	return res
}

func (p Sample) capacity() float64 {
	return powerSum(float64(len(p.items)), p.MinLength, p.MaxLength)
}
