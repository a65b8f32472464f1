package polyhedron

import (
	"fmt"

	"github.com/ddpoly/ppl/linrow"
)

// RelSym is a relation symbol usable in a generalized affine image, or as
// the topology-checked "how does this constraint compare to zero" tag a
// caller builds one-off constraints with.
type RelSym int

const (
	LessThan RelSym = iota
	LessOrEqual
	Equal
	GreaterOrEqual
	GreaterThan
)

// IsStrict reports whether sym is LessThan or GreaterThan, the two symbols
// only expressible in not-necessarily-closed topology.
func (sym RelSym) IsStrict() bool {
	return sym == LessThan || sym == GreaterThan
}

// checkRelSym rejects a strict relation symbol used against a
// topologically closed polyhedron.
func (p *Poly) checkRelSym(sym RelSym) error {
	if sym.IsStrict() && p.topology != linrow.NotNecessarilyClosed {
		return fmt.Errorf("polyhedron: strict relation in closed topology: %w", ErrTopologyMismatch)
	}
	return nil
}

// Relation is a bitmask of facts a polyhedron can hold with respect to a
// single constraint or generator, combined with bitwise OR.
type Relation uint

const (
	// Nothing is known to hold.
	Nothing Relation = 0
	// IsIncluded: every point of the polyhedron satisfies the constraint.
	IsIncluded Relation = 1 << iota
	// IsDisjoint: no point of the polyhedron satisfies the constraint.
	IsDisjoint
	// StrictlyIntersects: some points satisfy the constraint and some do
	// not.
	StrictlyIntersects
	// Saturates: every generator of the polyhedron saturates the
	// constraint (the polyhedron lies exactly on its boundary hyperplane).
	Saturates
	// Subsumes: the generator satisfies every constraint of the
	// polyhedron, i.e. it belongs to the polyhedron.
	Subsumes
)

// Has reports whether r carries every flag set in mask.
func (r Relation) Has(mask Relation) bool { return r&mask == mask }

// RelationWithConstraint classifies p against a single constraint c by
// the sign of its scalar product against every generator of p's minimized
// generator system.
func (p *Poly) RelationWithConstraint(c linrow.Row) (Relation, error) {
	if c.Topology != p.topology {
		return Nothing, fmt.Errorf("polyhedron.RelationWithConstraint: %w", ErrTopologyMismatch)
	}
	if c.Width() != p.width() {
		return Nothing, fmt.Errorf("polyhedron.RelationWithConstraint: %w", ErrDimensionMismatch)
	}
	if p.status.empty {
		return IsIncluded | IsDisjoint | Saturates, nil
	}
	rows, err := p.MinimizedGenerators()
	if err != nil {
		return Nothing, err
	}

	sawPositive, sawNegative, allSaturate := false, false, true
	for _, g := range rows {
		sp := linrow.ScalarProduct(c, g)
		switch sp.Sign() {
		case 0:
		case 1:
			sawPositive = true
			allSaturate = false
		default:
			sawNegative = true
			allSaturate = false
		}
	}

	var rel Relation
	if allSaturate {
		rel |= Saturates | IsIncluded
	} else if c.Kind == linrow.Equality {
		if sawPositive && sawNegative {
			rel |= StrictlyIntersects
		} else {
			rel |= IsDisjoint
		}
	} else {
		switch {
		case !sawNegative:
			rel |= IsIncluded
		case !sawPositive:
			rel |= IsDisjoint
		default:
			rel |= StrictlyIntersects
		}
	}
	return rel, nil
}

// RelationWithGenerator classifies generator g against p by checking it
// satisfies every constraint of p's minimized constraint system.
func (p *Poly) RelationWithGenerator(g linrow.Row) (Relation, error) {
	if g.Topology != p.topology {
		return Nothing, fmt.Errorf("polyhedron.RelationWithGenerator: %w", ErrTopologyMismatch)
	}
	if g.Width() != p.width() {
		return Nothing, fmt.Errorf("polyhedron.RelationWithGenerator: %w", ErrDimensionMismatch)
	}
	if p.status.empty {
		return Nothing, nil
	}
	rows, err := p.MinimizedConstraints()
	if err != nil {
		return Nothing, err
	}
	for _, c := range rows {
		sp := linrow.ScalarProduct(c, g)
		switch c.Kind {
		case linrow.Equality:
			if sp.Sign() != 0 {
				return Nothing, nil
			}
		default:
			if sp.Sign() < 0 {
				return Nothing, nil
			}
			if c.Kind == linrow.Inequality && c.Epsilon().Sign() < 0 && sp.Sign() == 0 {
				return Nothing, nil
			}
		}
	}
	return Subsumes, nil
}
