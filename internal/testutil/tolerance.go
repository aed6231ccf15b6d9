// Package testutil holds numeric helpers shared by the package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelDiff returns |got-want| / |want|, or |got| when want is zero.
func RelDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// RequireRelNear fails t if got differs from want by more than rel
// (relative tolerance).
func RequireRelNear(t testing.TB, got, want, rel float64, what string) {
	t.Helper()
	if d := RelDiff(got, want); d > rel || math.IsNaN(got) {
		t.Fatalf("%s: got %.10g, want %.10g (rel diff %.3g > %.3g)", what, got, want, d, rel)
	}
}

// RequireSliceRelNear fails t if got and want differ in length or if any
// element pair exceeds the relative tolerance rel.
func RequireSliceRelNear(t testing.TB, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := RelDiff(got[i], want[i]); d > rel {
			t.Fatalf("index %d: got %.10g, want %.10g (rel diff %.3g > %.3g)", i, got[i], want[i], d, rel)
		}
	}
}

// RequirePositive fails t if any element is not strictly positive and finite.
func RequirePositive(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if !(v > 0) || math.IsInf(v, 0) {
			t.Fatalf("index %d: expected positive finite value, got %v", i, v)
		}
	}
}

// MaxRelDiff returns the maximum relative difference between two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := RelDiff(a[i], b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
