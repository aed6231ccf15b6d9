package transfer

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-analog/filter/poles"
	"github.com/cwbudde/algo-analog/internal/polyroot"
)

// ErrNoPoles is returned when a transfer function has a constant denominator.
var ErrNoPoles = errors.New("transfer: denominator has no roots")

// Rational is a transfer function H(s) = Num(s) / Den(s).
type Rational struct {
	Num Poly
	Den Poly
}

// At evaluates H at the complex frequency s.
func (r Rational) At(s complex128) complex128 {
	return r.Num.Eval(s) / r.Den.Eval(s)
}

// Response returns H(j·2π·f) for a frequency in Hz.
func (r Rational) Response(freqHz float64) complex128 {
	return r.At(complex(0, 2*math.Pi*freqHz))
}

// MagnitudeDB returns 20·log10|H(j·2π·f)|.
func (r Rational) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(r.Response(freqHz)))
}

// Phase returns the phase of H(j·2π·f) in radians, in [-π, π].
func (r Rational) Phase(freqHz float64) float64 {
	return cmplx.Phase(r.Response(freqHz))
}

// DCGain returns H(0). It is 0 for high-pass functions.
func (r Rational) DCGain() float64 {
	if len(r.Num) == 0 || len(r.Den) == 0 {
		return 0
	}
	return r.Num[len(r.Num)-1] / r.Den[len(r.Den)-1]
}

// HighFrequencyGain returns lim H(s) for |s|→∞ when Num and Den have the
// same degree, and 0 when Den has the higher degree.
func (r Rational) HighFrequencyGain() float64 {
	nd, dd := r.Num.Degree(), r.Den.Degree()
	if nd < dd || nd < 0 {
		return 0
	}
	return r.Num[len(r.Num)-1-nd] / r.Den[len(r.Den)-1-dd]
}

// Poles returns the roots of the denominator in rad/s.
func (r Rational) Poles() ([]complex128, error) {
	if r.Den.Degree() < 1 {
		return nil, ErrNoPoles
	}
	return polyroot.Roots(trimLeading(r.Den))
}

// Zeros returns the roots of the numerator in rad/s.
func (r Rational) Zeros() ([]complex128, error) {
	if r.Num.Degree() < 1 {
		return nil, nil
	}
	return polyroot.Roots(trimLeading(r.Num))
}

// PoleDescriptors returns the realized poles as (ω₀ in rad/s, Q) pairs:
// a descriptor with Q = 0 per real pole, one per conjugate pair otherwise,
// ordered like the prototype tables (real pole first, then ascending Q).
func (r Rational) PoleDescriptors() ([]poles.Descriptor, error) {
	roots, err := r.Poles()
	if err != nil {
		return nil, err
	}
	reals, pairs, err := polyroot.Split(roots)
	if err != nil {
		return nil, fmt.Errorf("transfer: pairing poles: %w", err)
	}

	out := make([]poles.Descriptor, 0, len(reals)+len(pairs))
	for _, x := range reals {
		out = append(out, poles.Descriptor{Omega0: math.Abs(x)})
	}
	qs := make([]poles.Descriptor, 0, len(pairs))
	for _, p := range pairs {
		w0 := cmplx.Abs(p[0])
		qs = append(qs, poles.Descriptor{Omega0: w0, Q: w0 / (2 * math.Abs(real(p[0])))})
	}
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].Q < qs[j].Q })
	return append(out, qs...), nil
}

func trimLeading(p Poly) Poly {
	for i, c := range p {
		if c != 0 {
			return p[i:]
		}
	}
	return nil
}
