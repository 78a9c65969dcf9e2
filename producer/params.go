package producer

// Params holds the kind-specific parameters of a generator. It is
// implemented by NumberRange, FromSet, IDs, Sequence, Words, Emails,
// HexColors, Sample and Custom.
type Params interface {
	// Kind returns the generator kind the parameters belong to.
	Kind() Kind

	// prepare validates the parameters and returns a copy with defaults
	// applied and derived data cached.
	prepare() (Params, error)
}

// statically ensure that all parameter types implement Params
var (
	_ Params = NumberRange{}
	_ Params = FromSet{}
	_ Params = IDs{}
	_ Params = Sequence{}
	_ Params = Words{}
	_ Params = Emails{}
	_ Params = HexColors{}
	_ Params = Sample{}
	_ Params = Custom{}
)
