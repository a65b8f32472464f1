// Package linrow implements the homogeneous linear row: a sequence of
// integer.Coefficient values carrying a topology/kind flag pair, used for
// both constraints and generators.
//
// The first coefficient is the inhomogeneous term (for constraints) or the
// divisor (for generators). When Topology is NotNecessarilyClosed, the
// last coefficient is the epsilon slack and the effective vector-space
// dimension is width-2 rather than width-1.
//
// Construction enforces some row invariants directly: points/closure
// points get a strictly positive divisor (by negating the row if needed),
// closure points in NNC topology get a zero epsilon slack, and lines/rays
// always have a zero inhomogeneous term. The epsilon slack of every other
// row is taken as given and not checked: by convention a strict inequality
// carries a negative one and a point a positive one.
package linrow
