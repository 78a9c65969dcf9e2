package producer

import "fmt"

// Kind selects the value producer of a generator.
type Kind int

// Generator kinds.
const (
	KindNumbers Kind = iota
	KindFromSet
	KindIDs
	KindSequence
	KindStrings
	KindEmails
	KindHexColors
	KindSample
	KindCustom
)

var kindNames = []string{
	KindNumbers:   "numbers",
	KindFromSet:   "set",
	KindIDs:       "ids",
	KindSequence:  "sequence",
	KindStrings:   "strings",
	KindEmails:    "emails",
	KindHexColors: "hexcolors",
	KindSample:    "sample",
	KindCustom:    "custom",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds returns all generator kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, Kind(k))
	}
	return kinds
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("unknown generator kind %q", s)
}
