// Package sallenkey sizes the components of first-order RC and second-order
// unity-gain Sallen-Key stages for a normalized pole descriptor and a cutoff
// frequency.
//
// The caller fixes one physical quantity per stage (resistances or
// capacitances) and the solver derives the other. Supplied values are never
// modified. All values are in SI base units (ohms, farads, hertz).
//
// Stage denominators follow a fixed naming convention:
//
//	low-pass:  D(s) = 1 + s·C1·(R1+R2) + s²·R1·R2·C1·C2
//	high-pass: D(s) = 1 + s·R1·(C1+C2) + s²·R1·R2·C1·C2
//
// When the unknown pair appears as a sum (resistances of a low-pass stage,
// capacitances of a high-pass stage) both values follow from a quadratic
// whose "+√" root is assigned to the second component (R2 or C2) and the
// remainder to the first.
package sallenkey
