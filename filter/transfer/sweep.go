package transfer

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidRange is returned for empty or non-positive frequency grids.
var ErrInvalidRange = errors.New("transfer: invalid frequency range")

// FrequencyResponse holds H(j·2π·f) sampled on a frequency grid, ready to be
// plotted by a Bode renderer.
type FrequencyResponse struct {
	FreqHz      []float64
	Magnitude   []float64 // |H|
	MagnitudeDB []float64 // 20·log10|H|
	Phase       []float64 // radians, unwrapped
}

// LogSpace returns n frequencies spaced logarithmically from lo to hi.
func LogSpace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 || !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return nil, ErrInvalidRange
	}
	return floats.LogSpan(make([]float64, n), lo, hi), nil
}

// Sweep evaluates r at every frequency of freqs (Hz).
func Sweep(r Rational, freqs []float64) (*FrequencyResponse, error) {
	if len(freqs) == 0 {
		return nil, ErrInvalidRange
	}

	n := len(freqs)
	re := make([]float64, n)
	im := make([]float64, n)
	phase := make([]float64, n)
	for i, f := range freqs {
		h := r.Response(f)
		re[i], im[i] = real(h), imag(h)
		phase[i] = cmplx.Phase(h)
	}

	out := &FrequencyResponse{
		FreqHz:      append([]float64(nil), freqs...),
		Magnitude:   make([]float64, n),
		MagnitudeDB: make([]float64, n),
		Phase:       unwrap(phase),
	}
	vecmath.Magnitude(out.Magnitude, re, im)
	for i, m := range out.Magnitude {
		out.MagnitudeDB[i] = 20 * math.Log10(m)
	}
	return out, nil
}

// unwrap removes 2π jumps between consecutive phase samples in place.
func unwrap(p []float64) []float64 {
	offset := 0.0
	for i := 1; i < len(p); i++ {
		d := p[i] + offset - p[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		p[i] += offset
	}
	return p
}
