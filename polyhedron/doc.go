// Package polyhedron implements the convex polyhedron façade: a type
// owning a constraint system, a generator system, and a saturation
// matrix relating them, kept consistent by the conversion and
// simplification engines.
//
// A polyhedron tracks four status bits — constraints up-to-date,
// constraints minimized, generators up-to-date, generators minimized —
// plus a dedicated collapsed "empty" state carrying no rows at all.
// Adding a constraint marks the generator system stale; adding a
// generator marks the constraint system stale. A query that needs the
// stale side rebuilds it from the up-to-date side via package conversion;
// a query that needs a minimal representation additionally runs package
// simplify. Discovering that a rebuilt generator system has no point or
// closure point collapses the polyhedron to the empty state.
package polyhedron
