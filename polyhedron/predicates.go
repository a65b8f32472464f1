package polyhedron

import (
	"sort"

	"github.com/ddpoly/ppl/linrow"
)

// canonicalRows returns rows strong-normalized and sorted into the
// package's row order, the canonical form two minimized constraint
// systems of the same polyhedron must agree on.
func canonicalRows(rows []linrow.Row) []linrow.Row {
	out := make([]linrow.Row, len(rows))
	for i, r := range rows {
		out[i] = r.StrongNormalize()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

func rowsEqual(a, b []linrow.Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Compare(b[i]) != 0 {
			return false
		}
	}
	return true
}

// IsEmpty reports whether p is the collapsed empty polyhedron.
func (p *Poly) IsEmpty() bool { return p.status.empty }

// IsUniverse reports whether p's minimized constraint system has no rows.
func (p *Poly) IsUniverse() (bool, error) {
	if p.status.empty {
		return false, nil
	}
	rows, err := p.MinimizedConstraints()
	if err != nil {
		return false, err
	}
	return len(rows) == 0, nil
}

// IsTopologicallyClosed reports whether p equals its own topological
// closure. Always true for Closed polyhedra.
func (p *Poly) IsTopologicallyClosed() (bool, error) {
	if p.topology != linrow.NotNecessarilyClosed {
		return true, nil
	}
	if p.status.empty {
		return true, nil
	}
	closure := p.Clone()
	if err := closure.TopologicalClosureAssign(); err != nil {
		return false, err
	}
	return p.Equals(closure)
}

// IsBounded reports whether p's minimized generator system contains no
// line and no ray.
func (p *Poly) IsBounded() (bool, error) {
	if p.status.empty {
		return true, nil
	}
	rows, err := p.MinimizedGenerators()
	if err != nil {
		return false, err
	}
	for _, r := range rows {
		if r.Kind == linrow.Line || r.Kind == linrow.Ray {
			return false, nil
		}
	}
	return true, nil
}

// Equals reports whether p and other denote the same polyhedron, compared
// via their canonicalized minimized constraint systems.
func (p *Poly) Equals(other *Poly) (bool, error) {
	if err := p.checkCompatible(other); err != nil {
		return false, err
	}
	if p.status.empty || other.status.empty {
		return p.status.empty == other.status.empty, nil
	}
	pc, err := p.MinimizedConstraints()
	if err != nil {
		return false, err
	}
	oc, err := other.MinimizedConstraints()
	if err != nil {
		return false, err
	}
	return rowsEqual(canonicalRows(pc), canonicalRows(oc)), nil
}

// Contains reports whether every point of other also belongs to p,
// checked via the convexity fact that p ⊇ other iff hull(p, other) = p.
func (p *Poly) Contains(other *Poly) (bool, error) {
	if err := p.checkCompatible(other); err != nil {
		return false, err
	}
	if other.status.empty {
		return true, nil
	}
	if p.status.empty {
		return false, nil
	}
	hull := p.Clone()
	if err := hull.PolyHullAssign(other); err != nil {
		return false, err
	}
	return p.Equals(hull)
}

// StrictlyContains reports whether p contains other and the two are not
// equal.
func (p *Poly) StrictlyContains(other *Poly) (bool, error) {
	contains, err := p.Contains(other)
	if err != nil || !contains {
		return false, err
	}
	eq, err := p.Equals(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// IsDisjointFrom reports whether p ∩ other is empty.
func (p *Poly) IsDisjointFrom(other *Poly) (bool, error) {
	if err := p.checkCompatible(other); err != nil {
		return false, err
	}
	inter := p.Clone()
	if err := inter.IntersectionAssign(other); err != nil {
		return false, err
	}
	return inter.IsEmpty(), nil
}
