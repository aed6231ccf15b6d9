package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/filter/poles"
	"github.com/cwbudde/algo-analog/filter/sallenkey"
)

// ErrInvalidSpec is returned when a Spec fails validation.
var ErrInvalidSpec = errors.New("synth: invalid filter specification")

// Spec is a synthesis request.
type Spec struct {
	Family   poles.Family
	Pass     sallenkey.PassType
	Order    int
	CutoffHz float64
}

// Validate checks the request fields. Order support is checked later
// against the pole table.
func (s Spec) Validate() error {
	switch {
	case !s.Family.Valid():
		return fmt.Errorf("%w: unknown family %s", ErrInvalidSpec, s.Family)
	case !s.Pass.Valid():
		return fmt.Errorf("%w: unknown pass type %s", ErrInvalidSpec, s.Pass)
	case s.Order < 1:
		return fmt.Errorf("%w: order %d < 1", ErrInvalidSpec, s.Order)
	case !(s.CutoffHz > 0) || math.IsInf(s.CutoffHz, 0):
		return fmt.Errorf("%w: cutoff %g Hz", ErrInvalidSpec, s.CutoffHz)
	}
	return nil
}

func (s Spec) String() string {
	return fmt.Sprintf("%s %s order %d @ %g Hz", s.Family, s.Pass, s.Order, s.CutoffHz)
}
