package sallenkey

import (
	"fmt"

	"github.com/cwbudde/algo-analog/filter/poles"
)

// Role names a component position inside a stage.
type Role int

const (
	R Role = iota
	C
	R1
	R2
	C1
	C2
)

var roleNames = [...]string{R: "R", C: "C", R1: "R1", R2: "R2", C1: "C1", C2: "C2"}

func (r Role) String() string {
	if r >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Quantity is the physical quantity of a component.
type Quantity int

const (
	Resistance Quantity = iota
	Capacitance
)

func (q Quantity) String() string {
	if q == Capacitance {
		return "capacitance"
	}
	return "resistance"
}

// Stage is one fully sized cascade section.
//
// First-order stages use R and C; second-order stages use R1, R2, C1 and C2.
// Unused fields are zero.
type Stage struct {
	Order int
	Pole  poles.Descriptor
	Pass  PassType
	// Given is the quantity the caller supplied; the other one was solved.
	Given Quantity

	R, C           float64
	R1, R2, C1, C2 float64
}

// Roles returns the component roles populated for the stage order.
func (s Stage) Roles() []Role {
	if s.Order == 1 {
		return []Role{R, C}
	}
	return []Role{R1, R2, C1, C2}
}

// Value returns the value of a role and whether the stage uses it.
func (s Stage) Value(role Role) (float64, bool) {
	if s.Order == 1 {
		switch role {
		case R:
			return s.R, true
		case C:
			return s.C, true
		}
		return 0, false
	}
	switch role {
	case R1:
		return s.R1, true
	case R2:
		return s.R2, true
	case C1:
		return s.C1, true
	case C2:
		return s.C2, true
	}
	return 0, false
}

// Components returns the role/value mapping of the stage.
func (s Stage) Components() map[Role]float64 {
	roles := s.Roles()
	out := make(map[Role]float64, len(roles))
	for _, r := range roles {
		out[r], _ = s.Value(r)
	}
	return out
}

// Resistances returns the stage resistances in role order.
func (s Stage) Resistances() []float64 {
	if s.Order == 1 {
		return []float64{s.R}
	}
	return []float64{s.R1, s.R2}
}

// Capacitances returns the stage capacitances in role order.
func (s Stage) Capacitances() []float64 {
	if s.Order == 1 {
		return []float64{s.C}
	}
	return []float64{s.C1, s.C2}
}

// String formats the stage as "order 2 lowpass: R1=1000 R2=5000 C1=... C2=...".
func (s Stage) String() string {
	out := fmt.Sprintf("order %d %s:", s.Order, s.Pass)
	for _, r := range s.Roles() {
		v, _ := s.Value(r)
		out += fmt.Sprintf(" %s=%.6g", r, v)
	}
	return out
}
