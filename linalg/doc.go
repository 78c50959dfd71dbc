// Package linalg adapts gonum.org/v1/gonum/mat's dense solvers to the
// narrow contract spec.md §1 asks of an external dense linear-algebra
// collaborator: "integer determinant / gcd of elementary divisors of a
// small dense integer matrix." It is consumed by matrix.Determinant and by
// property's k-modular/equimodular/unimodular drivers, and is the only
// place in this module that performs floating-point arithmetic — every
// result is validated back to an exact integer before being returned.
package linalg
