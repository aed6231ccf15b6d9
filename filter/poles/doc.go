// Package poles provides the normalized analog prototype tables used to size
// cascaded filter sections.
//
// A prototype of order N is described by ⌈N/2⌉ [Descriptor] values, one per
// cascade stage. A descriptor with Q = 0 is a single real pole (first-order
// stage); a descriptor with Q > 0 is a conjugate pole pair (second-order
// stage). All tables are normalized to a cutoff of 1 rad/s.
//
// Each family has exactly one canonical [Table]. Tables are built once at
// package initialization and are never mutated; lookups return copies.
//
//	ds, err := poles.For(poles.Butterworth, 4)
//	// ds == [{1 0.5412} {1 1.3066}] (rounded)
package poles
