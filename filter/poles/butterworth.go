package poles

import "math"

// butterworthRow returns the Butterworth prototype of the given order. All
// poles lie on the unit circle, so Omega0 is 1 for every stage.
func butterworthRow(order int) []Descriptor {
	row := make([]Descriptor, 0, (order+1)/2)
	if order%2 != 0 {
		row = append(row, Descriptor{Omega0: 1})
	}
	for i := range order / 2 {
		row = append(row, Descriptor{Omega0: 1, Q: butterworthQ(order, i)})
	}
	return row
}

// butterworthQ returns the quality factor of pole pair index (0 ≤ index < order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	return 1 / (2 * math.Sin(theta))
}
