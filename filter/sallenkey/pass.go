package sallenkey

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-analog/filter/poles"
)

// PassType selects low-pass or high-pass realization.
type PassType int

const (
	LowPass PassType = iota
	HighPass
)

// String returns "lowpass" or "highpass".
func (p PassType) String() string {
	switch p {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	default:
		return fmt.Sprintf("PassType(%d)", int(p))
	}
}

// Valid reports whether p is LowPass or HighPass.
func (p PassType) Valid() bool {
	return p == LowPass || p == HighPass
}

// ParsePassType accepts "lowpass", "lp", "highpass", "hp" (case-insensitive;
// dashes and spaces are ignored).
func ParsePassType(name string) (PassType, error) {
	n := strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.ToLower(name))
	switch n {
	case "lowpass", "lp":
		return LowPass, nil
	case "highpass", "hp":
		return HighPass, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPassType, name)
}

// Omega returns the angular reference frequency in rad/s of a stage:
// 2π·f·ω₀ for low-pass and 2π·f/ω₀ for high-pass.
func Omega(d poles.Descriptor, cutoffHz float64, pass PassType) float64 {
	w := 2 * math.Pi * cutoffHz
	if pass == HighPass {
		return w / d.Omega0
	}
	return w * d.Omega0
}
