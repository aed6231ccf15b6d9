package poles

import (
	"fmt"
	"strings"
)

// Family selects the prototype approximation.
type Family int

const (
	// Butterworth: maximally flat magnitude.
	Butterworth Family = iota
	// Bessel (Thomson): maximally flat group delay, -3 dB normalized.
	Bessel
	// Chebyshev type I with 1 dB passband ripple.
	Chebyshev
)

var familyNames = map[Family]string{
	Butterworth: "butterworth",
	Bessel:      "bessel",
	Chebyshev:   "chebyshev",
}

// String returns the lower-case family name.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// ParseFamily converts a case-insensitive family name into a Family.
// "tchebychev" and "cheby" are accepted as aliases for Chebyshev.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "butterworth", "butter":
		return Butterworth, nil
	case "bessel", "thomson":
		return Bessel, nil
	case "chebyshev", "cheby", "tchebychev":
		return Chebyshev, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}
