package sallenkey

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/filter/poles"
)

// Known holds the caller-supplied components of one stage. A zero field is
// unspecified. First-order stages read R and C; second-order stages read
// R1, R2, C1 and C2.
type Known struct {
	R, C           float64
	R1, R2, C1, C2 float64
}

// Solve sizes one stage. The stage order follows the descriptor: Q == 0 is
// a first-order RC stage, Q > 0 a Sallen-Key stage.
func Solve(d poles.Descriptor, cutoffHz float64, pass PassType, known Known) (Stage, error) {
	if err := validate(d, cutoffHz, pass); err != nil {
		return Stage{}, err
	}
	if d.FirstOrder() {
		return firstOrder(d, cutoffHz, pass, known.R, known.C)
	}
	return secondOrder(d, cutoffHz, pass, known)
}

// SolveGiven sizes one stage from a list of one quantity, in role order:
// [R] or [C] for first-order stages, [R1 R2] or [C1 C2] for second-order.
func SolveGiven(d poles.Descriptor, cutoffHz float64, pass PassType, q Quantity, values []float64) (Stage, error) {
	if len(values) != d.Order() {
		return Stage{}, fmt.Errorf("%w: order %d stage needs %d %s values, got %d",
			ErrMissingComponent, d.Order(), d.Order(), q, len(values))
	}

	var k Known
	switch {
	case d.FirstOrder() && q == Resistance:
		k.R = values[0]
	case d.FirstOrder():
		k.C = values[0]
	case q == Resistance:
		k.R1, k.R2 = values[0], values[1]
	default:
		k.C1, k.C2 = values[0], values[1]
	}
	return Solve(d, cutoffHz, pass, k)
}

func validate(d poles.Descriptor, cutoffHz float64, pass PassType) error {
	if !pass.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPassType, int(pass))
	}
	if !(cutoffHz > 0) || math.IsInf(cutoffHz, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidCutoff, cutoffHz)
	}
	if !(d.Omega0 > 0) || math.IsInf(d.Omega0, 0) || !(d.Q >= 0) || math.IsInf(d.Q, 0) {
		return fmt.Errorf("%w: omega0=%g Q=%g", ErrInvalidPole, d.Omega0, d.Q)
	}
	return nil
}

// firstOrder solves R·C = 1/ω for the missing value.
func firstOrder(d poles.Descriptor, cutoffHz float64, pass PassType, r, c float64) (Stage, error) {
	if err := checkSupplied(R, r); err != nil {
		return Stage{}, err
	}
	if err := checkSupplied(C, c); err != nil {
		return Stage{}, err
	}

	w := Omega(d, cutoffHz, pass)
	st := Stage{Order: 1, Pole: d, Pass: pass}

	switch {
	case r > 0 && c > 0:
		return Stage{}, fmt.Errorf("%w: both R=%g and C=%g supplied", ErrAmbiguousComponent, r, c)
	case r > 0:
		st.Given = Resistance
		st.R = r
		st.C = 1 / (w * r)
		if err := checkSolved(C, st.C); err != nil {
			return Stage{}, err
		}
	case c > 0:
		st.Given = Capacitance
		st.C = c
		st.R = 1 / (w * c)
		if err := checkSolved(R, st.R); err != nil {
			return Stage{}, err
		}
	default:
		return Stage{}, fmt.Errorf("%w: first-order stage needs R or C", ErrMissingComponent)
	}
	return st, nil
}

func secondOrder(d poles.Descriptor, cutoffHz float64, pass PassType, k Known) (Stage, error) {
	for _, f := range []struct {
		role Role
		v    float64
	}{{R1, k.R1}, {R2, k.R2}, {C1, k.C1}, {C2, k.C2}} {
		if err := checkSupplied(f.role, f.v); err != nil {
			return Stage{}, err
		}
	}

	haveR := k.R1 > 0 || k.R2 > 0
	haveC := k.C1 > 0 || k.C2 > 0
	switch {
	case haveR && haveC:
		return Stage{}, fmt.Errorf("%w: second-order stage takes resistances or capacitances, not both", ErrAmbiguousComponent)
	case haveR && (k.R1 == 0 || k.R2 == 0):
		return Stage{}, fmt.Errorf("%w: need both R1 and R2 (R1=%g R2=%g)", ErrMissingComponent, k.R1, k.R2)
	case haveC && (k.C1 == 0 || k.C2 == 0):
		return Stage{}, fmt.Errorf("%w: need both C1 and C2 (C1=%g C2=%g)", ErrMissingComponent, k.C1, k.C2)
	case !haveR && !haveC:
		return Stage{}, fmt.Errorf("%w: second-order stage needs (R1, R2) or (C1, C2)", ErrMissingComponent)
	}

	w := Omega(d, cutoffHz, pass)
	st := Stage{Order: 2, Pole: d, Pass: pass, R1: k.R1, R2: k.R2, C1: k.C1, C2: k.C2}

	var err error
	switch {
	case pass == LowPass && haveR:
		st.Given = Resistance
		st.C1, st.C2, err = lowPassCapacitances(w, d.Q, k.R1, k.R2)
	case pass == LowPass:
		st.Given = Capacitance
		st.R1, st.R2, err = lowPassResistances(w, d.Q, k.C1, k.C2)
	case haveR:
		st.Given = Resistance
		st.C1, st.C2, err = highPassCapacitances(w, d.Q, k.R1, k.R2)
	default:
		st.Given = Capacitance
		st.R1, st.R2, err = highPassResistances(w, d.Q, k.C1, k.C2)
	}
	if err != nil {
		return Stage{}, err
	}
	return st, nil
}

// Low-pass relations:
//
//	C1·(R1+R2) = 1/(Q·ω)
//	R1·R2·C1·C2 = 1/ω²

func lowPassCapacitances(w, q, r1, r2 float64) (float64, float64, error) {
	c1 := 1 / (q * w * (r1 + r2))
	if err := checkSolved(C1, c1); err != nil {
		return 0, 0, err
	}
	c2 := 1 / (w * w * r1 * r2 * c1)
	if err := checkSolved(C2, c2); err != nil {
		return 0, 0, err
	}
	return c1, c2, nil
}

func lowPassResistances(w, q, c1, c2 float64) (float64, float64, error) {
	sum := 1 / (q * w * c1)
	product := 1 / (w * w * c1 * c2)
	r1, r2, err := splitPair(sum, product)
	if err != nil {
		return 0, 0, err
	}
	if err := checkSolved(R1, r1); err != nil {
		return 0, 0, err
	}
	if err := checkSolved(R2, r2); err != nil {
		return 0, 0, err
	}
	return r1, r2, nil
}

// High-pass relations:
//
//	R1·(C1+C2) = 1/(Q·ω)
//	R1·R2·C1·C2 = 1/ω²

func highPassCapacitances(w, q, r1, r2 float64) (float64, float64, error) {
	sum := 1 / (q * w * r1)
	product := 1 / (w * w * r1 * r2)
	c1, c2, err := splitPair(sum, product)
	if err != nil {
		return 0, 0, err
	}
	if err := checkSolved(C1, c1); err != nil {
		return 0, 0, err
	}
	if err := checkSolved(C2, c2); err != nil {
		return 0, 0, err
	}
	return c1, c2, nil
}

func highPassResistances(w, q, c1, c2 float64) (float64, float64, error) {
	r1 := 1 / (q * w * (c1 + c2))
	if err := checkSolved(R1, r1); err != nil {
		return 0, 0, err
	}
	r2 := 1 / (w * w * c1 * c2 * r1)
	if err := checkSolved(R2, r2); err != nil {
		return 0, 0, err
	}
	return r1, r2, nil
}
