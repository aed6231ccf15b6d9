package poles

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxOrder is the highest tabulated order for every family.
const MaxOrder = 10

// Errors returned by table lookups.
var (
	ErrUnsupportedOrder = errors.New("poles: unsupported order")
	ErrUnknownFamily    = errors.New("poles: unknown family")
)

// Descriptor is one normalized pole (pair) of a prototype.
//
// Omega0 is the natural frequency relative to the cutoff. Q is the quality
// factor; Q == 0 marks a real pole realized by a first-order stage.
type Descriptor struct {
	Omega0 float64
	Q      float64
}

// FirstOrder reports whether d describes a single real pole.
func (d Descriptor) FirstOrder() bool {
	return d.Q == 0
}

// Order returns the stage order realizing d (1 or 2).
func (d Descriptor) Order() int {
	if d.FirstOrder() {
		return 1
	}
	return 2
}

// Source provides pole sets for (family, order) pairs.
type Source interface {
	Poles(family Family, order int) ([]Descriptor, error)
}

// Table is the canonical pole table of one family.
type Table struct {
	// ID names the table revision that produced the pole sets,
	// e.g. "bessel/bond-3db".
	ID     string
	Family Family

	rows [MaxOrder + 1][]Descriptor
}

// Orders returns the tabulated orders in ascending order.
func (t *Table) Orders() []int {
	out := make([]int, 0, MaxOrder)
	for n := 1; n <= MaxOrder; n++ {
		if len(t.rows[n]) > 0 {
			out = append(out, n)
		}
	}
	return out
}

// Poles returns a copy of the pole set for the given order.
func (t *Table) Poles(order int) ([]Descriptor, error) {
	if order < 1 || order > MaxOrder || len(t.rows[order]) == 0 {
		return nil, fmt.Errorf("%w: %s order %d (table %s)", ErrUnsupportedOrder, t.Family, order, t.ID)
	}
	out := make([]Descriptor, len(t.rows[order]))
	copy(out, t.rows[order])
	return out, nil
}

// tables holds one canonical table per family. Built at init, read-only.
var tables = map[Family]*Table{
	Butterworth: newTable(Butterworth, "butterworth/closed-form", butterworthRow),
	Bessel:      newTable(Bessel, "bessel/bond-3db", besselRow),
	Chebyshev:   newTable(Chebyshev, "chebyshev/1db-ripple", chebyshevRow),
}

// TableFor returns the canonical table of a family.
func TableFor(family Family) (*Table, error) {
	t, ok := tables[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, family)
	}
	return t, nil
}

// For returns the canonical pole set of (family, order).
func For(family Family, order int) ([]Descriptor, error) {
	t, err := TableFor(family)
	if err != nil {
		return nil, err
	}
	return t.Poles(order)
}

type canonical struct{}

// Canonical is the Source backed by the built-in tables.
var Canonical Source = canonical{}

func (canonical) Poles(family Family, order int) ([]Descriptor, error) {
	return For(family, order)
}

func newTable(family Family, id string, row func(order int) []Descriptor) *Table {
	t := &Table{ID: id, Family: family}
	for n := 1; n <= MaxOrder; n++ {
		t.rows[n] = sortRow(row(n))
	}
	return t
}

// sortRow puts the real pole first and orders pole pairs by ascending Q.
func sortRow(ds []Descriptor) []Descriptor {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Q < ds[j].Q
	})
	return ds
}

// fromPole converts an s-plane pole (upper half-plane or real axis) into
// a descriptor.
func fromPole(sigma, omega float64) Descriptor {
	sigma = math.Abs(sigma)
	omega = math.Abs(omega)
	if omega == 0 {
		return Descriptor{Omega0: sigma}
	}
	w0 := math.Hypot(sigma, omega)
	return Descriptor{Omega0: w0, Q: w0 / (2 * sigma)}
}
