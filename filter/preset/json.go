// Package preset loads synthesis requests from JSON files.
//
//	{
//	  "family": "bessel",
//	  "pass": "lowpass",
//	  "order": 4,
//	  "cutoff_hz": 1000,
//	  "capacitances": [1e-9, 1e-6, 1e-9, 1e-6],
//	  "sweep": {"from_hz": 10, "to_hz": 100000, "points": 200}
//	}
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-analog/filter/poles"
	"github.com/cwbudde/algo-analog/filter/sallenkey"
	"github.com/cwbudde/algo-analog/filter/synth"
)

// ErrInvalidPreset is returned for files that parse but describe an unusable request.
var ErrInvalidPreset = errors.New("preset: invalid request")

// File is the JSON schema of a synthesis request.
type File struct {
	Family       string     `json:"family"`
	Pass         string     `json:"pass"`
	Order        int        `json:"order"`
	CutoffHz     float64    `json:"cutoff_hz"`
	Resistances  []float64  `json:"resistances,omitempty"`
	Capacitances []float64  `json:"capacitances,omitempty"`
	Sweep        *SweepFile `json:"sweep,omitempty"`
}

// SweepFile selects the frequency grid of an optional response table.
type SweepFile struct {
	FromHz float64 `json:"from_hz"`
	ToHz   float64 `json:"to_hz"`
	Points int     `json:"points"`
}

// Sweep is a validated frequency grid.
type Sweep struct {
	FromHz, ToHz float64
	Points       int
}

// Request is a parsed synthesis request.
type Request struct {
	Spec       synth.Spec
	Components synth.ComponentSet
	// Sweep is nil when the file has no sweep section.
	Sweep *Sweep
}

// LoadJSON reads and converts a request file.
func LoadJSON(path string) (*Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse converts JSON bytes into a request.
func Parse(b []byte) (*Request, error) {
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	return f.Request()
}

// Request converts the file into a synthesis request. The spec is validated;
// component lists are checked by synth.Synthesize.
func (f *File) Request() (*Request, error) {
	family, err := poles.ParseFamily(f.Family)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	pass := sallenkey.LowPass
	if f.Pass != "" {
		if pass, err = sallenkey.ParsePassType(f.Pass); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
	}

	req := &Request{
		Spec: synth.Spec{
			Family:   family,
			Pass:     pass,
			Order:    f.Order,
			CutoffHz: f.CutoffHz,
		},
		Components: synth.ComponentSet{
			Resistances:  f.Resistances,
			Capacitances: f.Capacitances,
		},
	}
	if err := req.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	if f.Sweep != nil {
		s := f.Sweep
		if s.Points < 2 || !(s.FromHz > 0) || !(s.ToHz > s.FromHz) {
			return nil, fmt.Errorf("%w: sweep needs 0 < from_hz < to_hz and points >= 2", ErrInvalidPreset)
		}
		req.Sweep = &Sweep{FromHz: s.FromHz, ToHz: s.ToHz, Points: s.Points}
	}
	return req, nil
}
