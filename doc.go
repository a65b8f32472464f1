// Package ppl is a from-scratch double-description convex polyhedra
// engine: exact-integer linear algebra, the Chernikova conversion
// algorithm between constraint and generator representations, a
// saturation-aware redundancy-removal engine, and a polyhedron façade
// built on top of them.
//
// Everything lives in subpackages:
//
//	integer/     — exact-integer coefficients (backed by math/big)
//	bitrow/      — dense bit sets
//	bitmatrix/   — sequences of bit rows sharing a width
//	saturation/  — generator×constraint incidence matrices
//	linrow/      — homogeneous linear rows (constraints or generators)
//	linsys/      — ordered systems of linear rows
//	conversion/  — the Chernikova Case A/Case B conversion algorithm
//	simplify/    — saturation-driven redundancy removal
//	polyhedron/  — the Poly façade: the package most callers want
//	watchdog/    — a deadline scheduler for abandoning runaway operations
//
// This root package holds only the ASCII dump/load contract for a
// linrow/linsys system, independent of any particular polyhedron.
package ppl
