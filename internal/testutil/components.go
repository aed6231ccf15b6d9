package testutil

import (
	"math"
	"math/rand"
)

// LogUniform returns n values spread log-uniformly over [lo, hi] with a fixed
// seed, e.g. resistances between 100 Ω and 1 MΩ.
func LogUniform(seed int64, n int, lo, hi float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	a, b := math.Log(lo), math.Log(hi)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Exp(a + rng.Float64()*(b-a))
	}
	return out
}
