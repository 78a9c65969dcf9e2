package producer

import "errors"

// ErrMissingParameter is returned by New when a required parameter, such as
// the source items of a pick, is absent.
var ErrMissingParameter = errors.New("producer: missing parameter")

// ErrInvalidParameter is returned by New when parameters are inconsistent,
// e.g. a minimum larger than the maximum or an unknown character class.
var ErrInvalidParameter = errors.New("producer: invalid parameter")

// ErrInvalidCount is returned for negative item counts and retry limits.
var ErrInvalidCount = errors.New("producer: invalid count")
