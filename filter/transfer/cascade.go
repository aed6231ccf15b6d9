package transfer

import (
	"fmt"

	"github.com/cwbudde/algo-analog/filter/sallenkey"
)

// Cascade is a sized filter: its stages, the transfer function of each
// stage, and their product.
type Cascade struct {
	Stages   []sallenkey.Stage
	Sections []Rational
	Transfer Rational
}

// Assemble builds the per-stage transfer functions and multiplies them in
// stage order into the cascaded transfer function.
func Assemble(stages []sallenkey.Stage) (*Cascade, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	c := &Cascade{
		Stages:   make([]sallenkey.Stage, len(stages)),
		Sections: make([]Rational, 0, len(stages)),
		Transfer: Rational{Num: Poly{1}, Den: Poly{1}},
	}
	copy(c.Stages, stages)

	for i, st := range stages {
		sec, err := Section(st)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		c.Sections = append(c.Sections, sec)
		c.Transfer.Num = Mul(c.Transfer.Num, sec.Num)
		c.Transfer.Den = Mul(c.Transfer.Den, sec.Den)
	}
	return c, nil
}

// Numerator returns the cascaded numerator coefficients (descending power).
func (c *Cascade) Numerator() []float64 {
	return c.Transfer.Num.Clone()
}

// Denominator returns the cascaded denominator coefficients (descending power).
func (c *Cascade) Denominator() []float64 {
	return c.Transfer.Den.Clone()
}

// Order returns the filter order, the degree of the cascaded denominator.
func (c *Cascade) Order() int {
	return c.Transfer.Den.Degree()
}
