package producer

import "fmt"

const colorSpace = 1 << 24

// HexColors produces colors formatted as #rrggbb.
type HexColors struct{}

// Kind returns KindHexColors.
func (HexColors) Kind() Kind { return KindHexColors }

func (p HexColors) prepare() (Params, error) {
	return p, nil
}

func (HexColors) produce() any {
	return fmt.Sprintf("#%06x", intN(colorSpace))
}

func (HexColors) capacity() float64 {
	return colorSpace
}
