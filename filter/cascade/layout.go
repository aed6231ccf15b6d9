// Package cascade partitions a filter order into first- and second-order
// stages and distributes flat component lists over them.
//
// An order N filter is realized as ⌈N/2⌉ stages. For odd N the leading stage
// is first-order; every other stage is second-order. A first-order stage
// takes one component of each kind (R, C), a second-order stage two
// (R1, R2 or C1, C2), so a flat list for one component kind always holds
// exactly N values.
package cascade

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-analog/filter/poles"
)

// Errors returned by partitioning and list distribution.
var (
	ErrInvalidOrder           = errors.New("cascade: order must be >= 1")
	ErrComponentListMismatch  = errors.New("cascade: component list does not match stage layout")
	ErrInsufficientComponents = errors.New("cascade: insufficient components")
	ErrPoleLayoutMismatch     = errors.New("cascade: pole set does not match stage layout")
)

// Layout is the stage layout of one filter order.
type Layout struct {
	Order int
	// Kinds holds the order (1 or 2) of each stage, in cascade order.
	Kinds []int
}

// Partition returns the stage layout for the given filter order.
func Partition(order int) (Layout, error) {
	if order < 1 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	kinds := make([]int, 0, (order+1)/2)
	if order%2 != 0 {
		kinds = append(kinds, 1)
	}
	for range order / 2 {
		kinds = append(kinds, 2)
	}
	return Layout{Order: order, Kinds: kinds}, nil
}

// StageCount returns the number of cascade stages.
func (l Layout) StageCount() int {
	return len(l.Kinds)
}

// FirstOrderStages returns the number of first-order stages (0 or 1).
func (l Layout) FirstOrderStages() int {
	n := 0
	for _, k := range l.Kinds {
		if k == 1 {
			n++
		}
	}
	return n
}

// SlotsFor returns the number of components of one kind stage i needs.
func (l Layout) SlotsFor(i int) int {
	return l.Kinds[i]
}

// Slots returns the total number of components of one kind.
func (l Layout) Slots() int {
	n := 0
	for _, k := range l.Kinds {
		n += k
	}
	return n
}

// Split distributes a flat component list over the stages. The returned
// sub-slices alias values.
func (l Layout) Split(values []float64) ([][]float64, error) {
	want := l.Slots()
	switch {
	case len(values) < want:
		return nil, fmt.Errorf("%w: %w: got %d values, layout needs %d",
			ErrComponentListMismatch, ErrInsufficientComponents, len(values), want)
	case len(values) > want:
		return nil, fmt.Errorf("%w: got %d values, layout needs %d",
			ErrComponentListMismatch, len(values), want)
	}

	out := make([][]float64, len(l.Kinds))
	idx := 0
	for i, k := range l.Kinds {
		out[i] = values[idx : idx+k : idx+k]
		idx += k
	}
	return out, nil
}

// Match verifies that a pole set follows the layout, stage by stage.
func (l Layout) Match(ds []poles.Descriptor) error {
	if len(ds) != len(l.Kinds) {
		return fmt.Errorf("%w: %d poles for %d stages", ErrPoleLayoutMismatch, len(ds), len(l.Kinds))
	}
	for i, d := range ds {
		if d.Order() != l.Kinds[i] {
			return fmt.Errorf("%w: stage %d is order %d, pole has Q=%g",
				ErrPoleLayoutMismatch, i, l.Kinds[i], d.Q)
		}
	}
	return nil
}
