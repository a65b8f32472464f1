// Package simplify implements the saturation-aware minimization pass
// that reduces a linear system to an irredundant form consistent with a
// given saturation matrix: promote fully-saturated rows to
// lines/equalities, Gauss-eliminate the equality prefix to its rank,
// drop constraints that cannot be irredundant in any double-description
// pair, drop constraints strictly dominated by another on the same
// saturation set, and back-substitute the surviving equalities into
// every remaining inequality.
//
// This is distinct from linsys.System.Simplify, which only handles the
// Gauss/back-substitute portion on its own; this package additionally
// consults the saturation matrix to drive the two redundancy rules that
// require dual (generator) information.
package simplify
