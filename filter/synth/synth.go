package synth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-analog/filter/cascade"
	"github.com/cwbudde/algo-analog/filter/sallenkey"
	"github.com/cwbudde/algo-analog/filter/transfer"
)

// Errors returned for the component set as a whole.
var (
	ErrMissingComponentSet   = errors.New("synth: supply resistances or capacitances")
	ErrAmbiguousComponentSet = errors.New("synth: supply resistances or capacitances, not both")
)

// ComponentSet is the caller's known components. Exactly one list must be
// non-empty; it holds one value per component slot in stage order, e.g.
// [R, R1, R2, R1, R2] for a fifth-order filter.
type ComponentSet struct {
	Resistances  []float64
	Capacitances []float64
}

// given returns the supplied quantity and its values.
func (cs ComponentSet) given() (sallenkey.Quantity, []float64, error) {
	haveR, haveC := len(cs.Resistances) > 0, len(cs.Capacitances) > 0
	switch {
	case haveR && haveC:
		return 0, nil, ErrAmbiguousComponentSet
	case haveR:
		return sallenkey.Resistance, cs.Resistances, nil
	case haveC:
		return sallenkey.Capacitance, cs.Capacitances, nil
	}
	return 0, nil, ErrMissingComponentSet
}

// StageError reports a failure while sizing one stage.
type StageError struct {
	Index int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("synth: stage %d: %v", e.Index, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Synthesize sizes every stage of the requested filter and assembles the
// cascaded transfer function. Supplied component values are copied, never
// modified.
func Synthesize(spec Spec, set ComponentSet, opts ...Option) (*transfer.Cascade, error) {
	cfg := ApplyOptions(opts...)

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	q, values, err := set.given()
	if err != nil {
		return nil, err
	}

	ds, err := cfg.Poles.Poles(spec.Family, spec.Order)
	if err != nil {
		return nil, err
	}
	layout, err := cascade.Partition(spec.Order)
	if err != nil {
		return nil, err
	}
	if err := layout.Match(ds); err != nil {
		return nil, err
	}

	parts, err := layout.Split(append([]float64(nil), values...))
	if err != nil {
		return nil, err
	}

	stages := make([]sallenkey.Stage, len(ds))
	for i, d := range ds {
		st, err := sallenkey.SolveGiven(d, spec.CutoffHz, spec.Pass, q, parts[i])
		if err != nil {
			return nil, &StageError{Index: i, Err: err}
		}
		stages[i] = st
	}
	return transfer.Assemble(stages)
}
