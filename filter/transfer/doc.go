// Package transfer builds s-domain transfer functions of sized cascade
// stages and multiplies them into one cascaded transfer function.
//
// Polynomials are stored as coefficient slices in descending power order,
// so Poly{a, b, c} is a·s² + b·s + c.
//
//	c, err := transfer.Assemble(stages)
//	if err != nil {
//		return err
//	}
//	h := c.Transfer.Response(1000) // complex gain at 1 kHz
//
// The package evaluates responses but does not render them.
package transfer
