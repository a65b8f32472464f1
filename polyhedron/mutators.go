package polyhedron

import (
	"fmt"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
)

func (p *Poly) validateConstraintRow(c linrow.Row) error {
	if c.Topology != p.topology {
		return fmt.Errorf("polyhedron.AddConstraint: %w", ErrTopologyMismatch)
	}
	if c.Kind != linrow.Equality && c.Kind != linrow.Inequality {
		return fmt.Errorf("polyhedron.AddConstraint: %w", ErrInvalidArgument)
	}
	if c.Width() != p.width() {
		return fmt.Errorf("polyhedron.AddConstraint: %w", ErrDimensionMismatch)
	}
	return nil
}

func (p *Poly) validateGeneratorRow(g linrow.Row) error {
	if g.Topology != p.topology {
		return fmt.Errorf("polyhedron.AddGenerator: %w", ErrTopologyMismatch)
	}
	switch g.Kind {
	case linrow.Line, linrow.Ray, linrow.Point, linrow.ClosurePoint:
	default:
		return fmt.Errorf("polyhedron.AddGenerator: %w", ErrInvalidArgument)
	}
	if g.Width() != p.width() {
		return fmt.Errorf("polyhedron.AddGenerator: %w", ErrDimensionMismatch)
	}
	return nil
}

// AddConstraint inserts c (pending) into the constraint system. Adding a
// constraint marks the generator system stale; an already-empty
// polyhedron is unaffected (a constraint can only shrink it further).
func (p *Poly) AddConstraint(c linrow.Row) error {
	if err := p.validateConstraintRow(c); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if err := p.cs.InsertPending(c); err != nil {
		return fmt.Errorf("polyhedron.AddConstraint: %w", err)
	}
	p.status.gUpToDate = false
	p.status.gMinimized = false
	return nil
}

// AddConstraints adds every row of cs via AddConstraint, in order.
func (p *Poly) AddConstraints(cs []linrow.Row) error {
	for _, c := range cs {
		if err := p.AddConstraint(c); err != nil {
			return err
		}
	}
	return nil
}

// AddGenerator inserts g (pending) into the generator system. Adding a
// generator marks the constraint system stale. Adding the first real
// generator to an empty polyhedron lifts it out of the empty state; the
// caller is responsible for the generator set containing at least one
// point or closure point once minimized, per the usual DD well-formedness
// requirement.
func (p *Poly) AddGenerator(g linrow.Row) error {
	if err := p.validateGeneratorRow(g); err != nil {
		return err
	}
	if p.status.empty {
		p.status.empty = false
		p.cs = linsys.New(p.width(), p.topology)
		p.gs = linsys.New(p.width(), p.topology)
		p.sat = saturation.New(0)
		p.status.cUpToDate, p.status.cMinimized = false, false
		p.status.gUpToDate, p.status.gMinimized = true, false
	}
	if err := p.gs.InsertPending(g); err != nil {
		return fmt.Errorf("polyhedron.AddGenerator: %w", err)
	}
	p.status.cUpToDate = false
	p.status.cMinimized = false
	return nil
}

// AddGenerators adds every row of gs via AddGenerator, in order.
func (p *Poly) AddGenerators(gs []linrow.Row) error {
	for _, g := range gs {
		if err := p.AddGenerator(g); err != nil {
			return err
		}
	}
	return nil
}

func (p *Poly) checkCompatible(other *Poly) error {
	if p.dim != other.dim {
		return fmt.Errorf("polyhedron: %w", ErrDimensionMismatch)
	}
	if p.topology != other.topology {
		return fmt.Errorf("polyhedron: %w", ErrTopologyMismatch)
	}
	return nil
}

// IntersectionAssign replaces p by p ∩ other: the union of both
// constraint systems. The result is marked with a stale generator side.
func (p *Poly) IntersectionAssign(other *Poly) error {
	if err := p.checkCompatible(other); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if err := other.ensureConstraints(nil); err != nil {
		return err
	}
	if other.status.empty {
		p.collapseToEmpty()
		return nil
	}
	return p.AddConstraints(other.Constraints())
}

// PolyHullAssign replaces p by the smallest polyhedron containing p ∪
// other: the union of both generator systems. The result is marked with
// a stale constraint side.
func (p *Poly) PolyHullAssign(other *Poly) error {
	if err := p.checkCompatible(other); err != nil {
		return err
	}
	if other.status.empty {
		return nil
	}
	if p.status.empty {
		*p = *other.Clone()
		return nil
	}
	if err := other.ensureGenerators(nil); err != nil {
		return err
	}
	if other.status.empty {
		return nil
	}
	return p.AddGenerators(other.Generators())
}

// ConcatenateAssign replaces p by the direct sum p × other: the space
// dimension becomes p.dim+other.dim, and the constraint system becomes
// the disjoint union of p's constraints (unchanged) and other's
// constraints (shifted into the new trailing coordinate block). The
// generator side — whose direct sum would require pairing every point of
// p with every point of other — is left stale and is rebuilt correctly
// by package conversion on next need.
func (p *Poly) ConcatenateAssign(other *Poly) error {
	if p.topology != other.topology {
		return fmt.Errorf("polyhedron.ConcatenateAssign: %w", ErrTopologyMismatch)
	}
	newDim := p.dim + other.dim
	if err := validateDim(newDim); err != nil {
		return err
	}
	if err := p.ensureConstraints(nil); err != nil {
		return err
	}
	if err := other.ensureConstraints(nil); err != nil {
		return err
	}
	if p.status.empty || other.status.empty {
		np, err := Empty(newDim, p.topology)
		if err != nil {
			return err
		}
		np.trace = p.trace
		*p = *np
		return nil
	}

	w := rowWidth(newDim, p.topology)
	merged := linsys.New(w, p.topology)
	for _, r := range p.cs.Rows() {
		row := r.Clone()
		row.SetWidth(w)
		if err := merged.Insert(row); err != nil {
			return err
		}
	}
	for _, r := range other.cs.Rows() {
		row, err := shiftRight(r, p.dim, w, p.topology)
		if err != nil {
			return err
		}
		if err := merged.Insert(row); err != nil {
			return err
		}
	}

	p.dim = newDim
	p.cs = merged
	p.gs = linsys.New(w, p.topology)
	p.sat = saturation.New(0)
	p.status = status{cUpToDate: true}
	return nil
}

// shiftRight rebuilds r at newWidth with its homogeneous coordinates moved
// from [1, oldDim] to [1+offset, oldDim+offset], leaving the new leading
// block zero; the inhomogeneous term and (for NNC) the epsilon slack keep
// their roles.
func shiftRight(r linrow.Row, offset, newWidth int, top linrow.Topology) (linrow.Row, error) {
	coeffs := make([]integer.Coefficient, newWidth)
	coeffs[0] = r.Coeffs[0]
	oldDim := r.SpaceDimension()
	for i := 0; i < oldDim; i++ {
		coeffs[1+offset+i] = r.Coeffs[1+i]
	}
	if top == linrow.NotNecessarilyClosed {
		coeffs[newWidth-1] = r.Epsilon()
	}
	return linrow.NewRow(coeffs, top, r.Kind)
}

// TimeElapseAssign replaces p by the set of points reachable from p by
// following, for unbounded non-negative time, any direction admitted by
// other: every line and ray of other's generator system is added to p's;
// other's points contribute no new direction and are ignored.
func (p *Poly) TimeElapseAssign(other *Poly) error {
	if err := p.checkCompatible(other); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if err := other.ensureGenerators(nil); err != nil {
		return err
	}
	if other.status.empty {
		return nil
	}
	var dirs []linrow.Row
	for _, r := range other.Generators() {
		if r.Kind == linrow.Line || r.Kind == linrow.Ray {
			dirs = append(dirs, r)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	return p.AddGenerators(dirs)
}

// TopologicalClosureAssign replaces every strict inequality of a
// not-necessarily-closed polyhedron by its non-strict form (zero
// epsilon). A no-op for topologically closed polyhedra or an already
// empty one.
func (p *Poly) TopologicalClosureAssign() error {
	if p.topology != linrow.NotNecessarilyClosed || p.status.empty {
		return nil
	}
	if err := p.ensureConstraints(nil); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	changed := false
	for i := 0; i < p.cs.NumRows(); i++ {
		row := p.cs.Row(i)
		if row.Kind == linrow.Inequality && row.Epsilon().Sign() < 0 {
			row.Coeffs[row.Width()-1] = integer.Coefficient{}
			changed = true
		}
	}
	if changed {
		p.status.gUpToDate = false
		p.status.gMinimized = false
		p.status.cMinimized = false
	}
	return nil
}

// PolyDifferenceAssign replaces p by an approximation of p \ other: for
// each constraint c of other, the polyhedron p further constrained by the
// complement of c is computed, and the result is the poly-hull of all
// such pieces. In closed topology the complement of an inequality is
// taken in its non-strict form, so points on other's boundary can remain
// in the result; a piece whose complement cannot be expressed at all (an
// equality constraint under closed topology) is skipped, which can leave
// the result smaller than the poly-hull of the true set difference.
func (p *Poly) PolyDifferenceAssign(other *Poly) error {
	if err := p.checkCompatible(other); err != nil {
		return err
	}
	if p.status.empty || other.status.empty {
		return nil
	}
	if err := other.ensureConstraints(nil); err != nil {
		return err
	}
	if other.status.empty {
		return nil
	}
	qConstraints := other.Constraints()
	if len(qConstraints) == 0 {
		return p.becomeEmpty()
	}

	result, err := Empty(p.dim, p.topology)
	if err != nil {
		return err
	}
	result.trace = p.trace
	for _, c := range qConstraints {
		complements := complementConstraints(c, p.topology)
		for _, comp := range complements {
			piece := p.Clone()
			if err := piece.AddConstraint(comp); err != nil {
				return err
			}
			if err := result.PolyHullAssign(piece); err != nil {
				return err
			}
		}
	}
	*p = *result
	return nil
}

// complementConstraints returns the constraint(s) whose union covers the
// set-theoretic complement of c within top. An inequality's complement is
// the single opposite strict inequality (exact in not-necessarily-closed
// topology; approximated by the opposite non-strict inequality in closed
// topology, which is conservative by including the boundary). An
// equality's complement is the two opposite strict inequalities in
// not-necessarily-closed topology; in closed topology it cannot be
// expressed and an empty slice is returned.
func complementConstraints(c linrow.Row, top linrow.Topology) []linrow.Row {
	negated := make([]integer.Coefficient, c.Width())
	for i, v := range c.Coeffs {
		negated[i] = v.Neg()
	}

	switch c.Kind {
	case linrow.Inequality:
		if top == linrow.NotNecessarilyClosed {
			negated[len(negated)-1] = integer.FromInt64(-1)
		}
		row, err := linrow.NewRow(negated, top, linrow.Inequality)
		if err != nil {
			return nil
		}
		return []linrow.Row{row}
	case linrow.Equality:
		if top != linrow.NotNecessarilyClosed {
			return nil
		}
		pos := append([]integer.Coefficient(nil), c.Coeffs...)
		pos[len(pos)-1] = integer.FromInt64(-1)
		posRow, err1 := linrow.NewRow(pos, top, linrow.Inequality)
		negated[len(negated)-1] = integer.FromInt64(-1)
		negRow, err2 := linrow.NewRow(negated, top, linrow.Inequality)
		if err1 != nil || err2 != nil {
			return nil
		}
		return []linrow.Row{posRow, negRow}
	default:
		return nil
	}
}

// becomeEmpty collapses p to the empty polyhedron at its current
// dimension and topology, preserving the trace hook.
func (p *Poly) becomeEmpty() error {
	np, err := Empty(p.dim, p.topology)
	if err != nil {
		return err
	}
	np.trace = p.trace
	*p = *np
	return nil
}
