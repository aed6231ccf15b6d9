// Package polyroot finds polynomial roots and groups them into real roots and
// conjugate pairs. It backs the realized-pole diagnostics of filter/transfer.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, eigen decomposition failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-6

// Roots returns all roots of the polynomial with coefficients in descending
// power order: coeff[0]*x^n + ... + coeff[n]. Roots at the origin (trailing
// zero coefficients) are returned first.
//
// The polynomial is rescaled so its extreme coefficients have unit magnitude
// before the companion matrix eigenvalues are computed.
func Roots(coeff []float64) ([]complex128, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}
	for _, c := range coeff {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, ErrDegeneratePolynomial
		}
	}

	var out []complex128
	for len(coeff) > 1 && coeff[len(coeff)-1] == 0 {
		out = append(out, 0)
		coeff = coeff[:len(coeff)-1]
	}
	n := len(coeff) - 1
	if n == 0 {
		return out, nil
	}

	// x = alpha·y maps the roots onto the unit circle in geometric mean.
	alpha := math.Pow(math.Abs(coeff[n]/coeff[0]), 1/float64(n))

	// Monic polynomial in y: coefficient k is coeff[k]·alpha^-k / coeff[0].
	comp := mat.NewDense(n, n, nil)
	scale := 1.0
	for k := 1; k <= n; k++ {
		scale /= alpha
		comp.Set(0, k-1, -coeff[k]*scale/coeff[0])
		if k < n {
			comp.Set(k, k-1, 1)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(comp, mat.EigenNone); !ok {
		return nil, ErrDegeneratePolynomial
	}
	for _, y := range eig.Values(nil) {
		out = append(out, y*complex(alpha, 0))
	}
	return out, nil
}

// Split separates roots into real roots and conjugate pairs (positive
// imaginary part first). A root counts as real when its imaginary part is
// within ConjugateTol of its magnitude. Real roots are sorted by value and
// pairs by the real part of their first element.
func Split(roots []complex128) (reals []float64, pairs [][2]complex128, err error) {
	complexRoots := make([]complex128, 0, len(roots))
	for _, r := range roots {
		if math.Abs(imag(r)) <= ConjugateTol*cmplx.Abs(r) {
			reals = append(reals, real(r))
			continue
		}
		complexRoots = append(complexRoots, r)
	}

	pairs, err = PairConjugates(complexRoots)
	if err != nil {
		return nil, nil, err
	}
	for i := range pairs {
		if imag(pairs[i][0]) < 0 {
			pairs[i][0], pairs[i][1] = pairs[i][1], pairs[i][0]
		}
	}
	sort.Float64s(reals)
	sort.Slice(pairs, func(i, j int) bool {
		return real(pairs[i][0]) < real(pairs[j][0])
	})
	return reals, pairs, nil
}

// PairConjugates groups a slice of complex roots into conjugate pairs. For
// each unused root, it finds the closest match to the expected conjugate and
// validates the pairing within ConjugateTol.
func PairConjugates(roots []complex128) ([][2]complex128, error) {
	used := make([]bool, len(roots))
	pairs := make([][2]complex128, 0, len(roots)/2)

	for i := range roots {
		if used[i] {
			continue
		}

		root := roots[i]
		conj := cmplx.Conj(root)
		best := -1
		bestDist := math.MaxFloat64

		for j := range roots {
			if i == j || used[j] {
				continue
			}

			d := cmplx.Abs(roots[j] - conj)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, roots[best], ConjugateTol) {
			return nil, ErrDegeneratePolynomial
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, roots[best]})
	}

	return pairs, nil
}

// IsConjugate checks whether a and b are complex conjugates within the
// relative tolerance tol.
func IsConjugate(a, b complex128, tol float64) bool {
	mag := math.Max(1, cmplx.Abs(a))
	if math.Abs(real(a)-real(b)) > tol*mag {
		return false
	}
	return math.Abs(imag(a)+imag(b)) <= tol*mag
}
