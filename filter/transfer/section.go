package transfer

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-analog/filter/sallenkey"
)

// Errors returned by section construction and assembly.
var (
	ErrNoStages     = errors.New("transfer: no stages")
	ErrInvalidStage = errors.New("transfer: invalid stage")
)

// Section returns the transfer function of one sized stage:
//
//	first-order low-pass:   1 / (1 + sRC)
//	first-order high-pass:  sRC / (1 + sRC)
//	second-order low-pass:  1 / (1 + sC1(R1+R2) + s²R1R2C1C2)
//	second-order high-pass: s²R1R2C1C2 / (1 + sR1(C1+C2) + s²R1R2C1C2)
func Section(st sallenkey.Stage) (Rational, error) {
	if !st.Pass.Valid() {
		return Rational{}, fmt.Errorf("%w: pass type %d", ErrInvalidStage, int(st.Pass))
	}
	for _, role := range st.Roles() {
		if v, _ := st.Value(role); !(v > 0) {
			return Rational{}, fmt.Errorf("%w: %s = %g", ErrInvalidStage, role, v)
		}
	}

	switch st.Order {
	case 1:
		tau := st.R * st.C
		den := Poly{tau, 1}
		if st.Pass == sallenkey.HighPass {
			return Rational{Num: Poly{tau, 0}, Den: den}, nil
		}
		return Rational{Num: Poly{1}, Den: den}, nil
	case 2:
		k := st.R1 * st.R2 * st.C1 * st.C2
		if st.Pass == sallenkey.HighPass {
			return Rational{
				Num: Poly{k, 0, 0},
				Den: Poly{k, st.R1 * (st.C1 + st.C2), 1},
			}, nil
		}
		return Rational{
			Num: Poly{1},
			Den: Poly{k, st.C1 * (st.R1 + st.R2), 1},
		}, nil
	default:
		return Rational{}, fmt.Errorf("%w: order %d", ErrInvalidStage, st.Order)
	}
}
