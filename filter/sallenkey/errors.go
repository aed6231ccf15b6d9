package sallenkey

import "errors"

// Errors returned by the solver. Returned errors wrap these sentinels with
// the offending values; use errors.Is to test for them.
var (
	ErrMissingComponent     = errors.New("sallenkey: missing component")
	ErrAmbiguousComponent   = errors.New("sallenkey: ambiguous component set")
	ErrNegativeDiscriminant = errors.New("sallenkey: negative discriminant")
	ErrNonPositiveComponent = errors.New("sallenkey: non-positive component value")
	ErrInvalidPassType      = errors.New("sallenkey: invalid pass type")
	ErrInvalidCutoff        = errors.New("sallenkey: cutoff frequency must be positive and finite")
	ErrInvalidPole          = errors.New("sallenkey: invalid pole descriptor")
)
