package transfer

import (
	"github.com/cwbudde/algo-vecmath"
)

// Poly is a real polynomial in s with coefficients in descending power order.
type Poly []float64

// Degree returns the polynomial degree, ignoring leading zero coefficients.
// The zero polynomial has degree -1.
func (p Poly) Degree() int {
	for i, c := range p {
		if c != 0 {
			return len(p) - 1 - i
		}
	}
	return -1
}

// Eval evaluates p at s using Horner's scheme.
func (p Poly) Eval(s complex128) complex128 {
	var v complex128
	for _, c := range p {
		v = v*s + complex(c, 0)
	}
	return v
}

// Clone returns a copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}

// Mul returns the product a·b, i.e. the linear convolution of the
// coefficient sequences. The result has length len(a)+len(b)-1; a nil
// operand yields nil.
func Mul(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(Poly, len(a)+len(b)-1)
	temp := make([]float64, len(b))
	for i, ai := range a {
		vecmath.ScaleBlock(temp, b, ai)
		vecmath.AddBlockInPlace(out[i:i+len(b)], temp)
	}
	return out
}
