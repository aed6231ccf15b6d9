package sallenkey

import (
	"fmt"
	"math"
)

// splitPair finds x, y with x+y = sum and x·y = product, i.e. the roots of
// x² − sum·x + product = 0. The "+√" root is returned as second, the
// remainder sum−second as first.
func splitPair(sum, product float64) (first, second float64, err error) {
	a, b, c := 1.0, -sum, product
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: b²-4ac = %g (sum %g, product %g)",
			ErrNegativeDiscriminant, disc, sum, product)
	}
	second = (-b + math.Sqrt(disc)) / (2 * a)
	first = sum - second
	return first, second, nil
}

// checkSolved rejects derived values that are not strictly positive and finite.
func checkSolved(role Role, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: solved %s = %g", ErrNonPositiveComponent, role, v)
	}
	return nil
}

// checkSupplied rejects supplied values that are negative or not finite.
// Zero means unspecified and is accepted.
func checkSupplied(role Role, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: supplied %s = %g", ErrNonPositiveComponent, role, v)
	}
	return nil
}
