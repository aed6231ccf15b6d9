// Package synth sizes a complete cascaded analog filter from a family,
// pass type, order, cutoff frequency, and one list of known components.
//
// The caller fixes either every resistance or every capacitance; synth
// looks up the normalized prototype, partitions it into stages, solves the
// complementary components stage by stage, and assembles the cascaded
// transfer function.
//
//	res, err := synth.Synthesize(synth.Spec{
//		Family:   poles.Butterworth,
//		Pass:     sallenkey.LowPass,
//		Order:    3,
//		CutoffHz: 1000,
//	}, synth.ComponentSet{Resistances: []float64{1000, 5000, 12000}})
//
// Synthesis is a pure computation; results can be produced concurrently
// from independent goroutines.
package synth
