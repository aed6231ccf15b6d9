package poles

import "math"

// chebyshevRippleDB is the passband ripple of the canonical Chebyshev table.
const chebyshevRippleDB = 1.0

// chebyshevRow returns the type I prototype poles normalized to the ripple
// band edge.
func chebyshevRow(order int) []Descriptor {
	eps := math.Sqrt(math.Pow(10, chebyshevRippleDB/10) - 1)
	a := math.Asinh(1/eps) / float64(order)
	sh, ch := math.Sinh(a), math.Cosh(a)

	row := make([]Descriptor, 0, (order+1)/2)
	if order%2 != 0 {
		row = append(row, Descriptor{Omega0: sh})
	}
	for k := range order / 2 {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))
		row = append(row, fromPole(sh*math.Sin(theta), ch*math.Cos(theta)))
	}
	return row
}
