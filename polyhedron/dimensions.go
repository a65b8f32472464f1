package polyhedron

import (
	"fmt"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
)

// AddSpaceDimensionsAndEmbed grows the space dimension by m, leaving the
// new dimensions entirely unconstrained. Implemented directly on the
// constraint system: every existing row merely gains m zero coefficients
// before its epsilon slack, which is exactly "no constraint mentions the
// new dimensions".
func (p *Poly) AddSpaceDimensionsAndEmbed(m int) error {
	if m < 0 {
		return fmt.Errorf("polyhedron.AddSpaceDimensionsAndEmbed: %w", ErrInvalidArgument)
	}
	if m == 0 {
		return nil
	}
	newDim := p.dim + m
	if err := validateDim(newDim); err != nil {
		return err
	}
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}
	if err := p.ensureConstraints(nil); err != nil {
		return err
	}
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}

	keptMinimized := p.status.cMinimized
	p.dim = newDim
	w := p.width()
	padded := linsys.New(w, p.topology)
	for _, c := range p.cs.Rows() {
		row := c.Clone()
		row.SetWidth(w)
		if err := padded.Insert(row); err != nil {
			return err
		}
	}
	p.cs = padded
	p.gs = linsys.New(w, p.topology)
	p.sat = saturation.New(0)
	p.status = status{cUpToDate: true, cMinimized: keptMinimized}
	return nil
}

// AddSpaceDimensionsAndProject grows the space dimension by m, pinning
// each new dimension to zero via an added equality.
func (p *Poly) AddSpaceDimensionsAndProject(m int) error {
	if m < 0 {
		return fmt.Errorf("polyhedron.AddSpaceDimensionsAndProject: %w", ErrInvalidArgument)
	}
	if m == 0 {
		return nil
	}
	oldDim := p.dim
	if err := p.AddSpaceDimensionsAndEmbed(m); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	w := p.width()
	for axis := oldDim; axis < oldDim+m; axis++ {
		coeffs := make([]integer.Coefficient, w)
		coeffs[axis+1] = integer.FromInt64(1)
		row, err := linrow.NewRow(coeffs, p.topology, linrow.Equality)
		if err != nil {
			return err
		}
		if err := p.AddConstraint(row); err != nil {
			return err
		}
	}
	return nil
}

// dropColumns rebuilds r without the homogeneous coefficients at the
// listed variable indices (0-based space-dimension indices, not raw
// Coeffs indices); the divisor/inhomogeneous term and (for NNC rows) the
// epsilon slack are always kept.
func dropColumns(r linrow.Row, cols map[int]bool, newWidth int, top linrow.Topology) (linrow.Row, error) {
	coeffs := make([]integer.Coefficient, newWidth)
	idx := 0
	last := r.Width() - 1
	for i := 0; i < r.Width(); i++ {
		if i == 0 {
			coeffs[idx] = r.Coeffs[i]
			idx++
			continue
		}
		if top == linrow.NotNecessarilyClosed && i == last {
			coeffs[idx] = r.Coeffs[i]
			idx++
			continue
		}
		if cols[i-1] {
			continue
		}
		coeffs[idx] = r.Coeffs[i]
		idx++
	}
	return linrow.NewRow(coeffs, top, r.Kind)
}

// RemoveSpaceDimensions deletes the listed variable indices entirely,
// implemented as a column projection of the generator system (trivial:
// dropping a coordinate from every generator is always exact).
func (p *Poly) RemoveSpaceDimensions(vars []int) error {
	if len(vars) == 0 {
		return nil
	}
	seen := map[int]bool{}
	for _, v := range vars {
		if v < 0 || v >= p.dim {
			return fmt.Errorf("polyhedron.RemoveSpaceDimensions: %w", ErrInvalidArgument)
		}
		seen[v] = true
	}
	newDim := p.dim - len(seen)
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}
	if err := p.ensureGenerators(nil); err != nil {
		return err
	}
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}

	w := rowWidth(newDim, p.topology)
	newGs := linsys.New(w, p.topology)
	for _, g := range p.gs.Rows() {
		row, err := dropColumns(g, seen, w, p.topology)
		if err != nil {
			return fmt.Errorf("polyhedron.RemoveSpaceDimensions: %w", err)
		}
		if err := newGs.Insert(row); err != nil {
			return err
		}
	}
	p.dim = newDim
	p.gs = newGs
	p.cs = linsys.New(w, p.topology)
	p.sat = saturation.New(0)
	p.status = status{gUpToDate: true}
	return nil
}

// truncateRow rebuilds r at a smaller width, keeping only its leading
// newWidth columns for closed rows, or its leading newWidth-1 columns plus
// the epsilon slack moved to the new last position for NNC rows.
func truncateRow(r linrow.Row, newWidth int, top linrow.Topology) (linrow.Row, error) {
	coeffs := make([]integer.Coefficient, newWidth)
	if top == linrow.NotNecessarilyClosed {
		copy(coeffs, r.Coeffs[:newWidth-1])
		coeffs[newWidth-1] = r.Epsilon()
	} else {
		copy(coeffs, r.Coeffs[:newWidth])
	}
	return linrow.NewRow(coeffs, top, r.Kind)
}

// RemoveHigherSpaceDimensions drops every dimension at index >= newDim.
func (p *Poly) RemoveHigherSpaceDimensions(newDim int) error {
	if newDim < 0 || newDim > p.dim {
		return fmt.Errorf("polyhedron.RemoveHigherSpaceDimensions: %w", ErrInvalidArgument)
	}
	if newDim == p.dim {
		return nil
	}
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}
	if err := p.ensureGenerators(nil); err != nil {
		return err
	}
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}

	w := rowWidth(newDim, p.topology)
	newGs := linsys.New(w, p.topology)
	for _, g := range p.gs.Rows() {
		row, err := truncateRow(g, w, p.topology)
		if err != nil {
			return fmt.Errorf("polyhedron.RemoveHigherSpaceDimensions: %w", err)
		}
		if err := newGs.Insert(row); err != nil {
			return err
		}
	}
	p.dim = newDim
	p.gs = newGs
	p.cs = linsys.New(w, p.topology)
	p.sat = saturation.New(0)
	p.status = status{gUpToDate: true}
	return nil
}

// MapSpaceDimensions renumbers dimensions according to mapping (a slice
// of length p.dim, where mapping[i] is the new index of old dimension i,
// or -1 to drop it). mapping must be injective on its non-negative
// entries and its image must be the contiguous range [0, newDim).
func (p *Poly) MapSpaceDimensions(mapping []int) error {
	if len(mapping) != p.dim {
		return fmt.Errorf("polyhedron.MapSpaceDimensions: %w", ErrInvalidArgument)
	}
	seen := map[int]bool{}
	newDim := 0
	for _, m := range mapping {
		if m == -1 {
			continue
		}
		if m < 0 || seen[m] {
			return fmt.Errorf("polyhedron.MapSpaceDimensions: %w", ErrInvalidArgument)
		}
		seen[m] = true
		if m+1 > newDim {
			newDim = m + 1
		}
	}
	if len(seen) != newDim {
		return fmt.Errorf("polyhedron.MapSpaceDimensions: %w", ErrInvalidArgument)
	}

	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}
	if err := p.ensureGenerators(nil); err != nil {
		return err
	}
	if p.status.empty {
		p.dim = newDim
		w := p.width()
		p.cs = linsys.New(w, p.topology)
		p.gs = linsys.New(w, p.topology)
		return nil
	}

	w := rowWidth(newDim, p.topology)
	newGs := linsys.New(w, p.topology)
	for _, g := range p.gs.Rows() {
		coeffs := make([]integer.Coefficient, w)
		coeffs[0] = g.Coeffs[0]
		for i, m := range mapping {
			if m == -1 {
				continue
			}
			coeffs[m+1] = g.Coeffs[i+1]
		}
		if p.topology == linrow.NotNecessarilyClosed {
			coeffs[w-1] = g.Epsilon()
		}
		row, err := linrow.NewRow(coeffs, p.topology, g.Kind)
		if err != nil {
			return fmt.Errorf("polyhedron.MapSpaceDimensions: %w", err)
		}
		if err := newGs.Insert(row); err != nil {
			return err
		}
	}
	p.dim = newDim
	p.gs = newGs
	p.cs = linsys.New(w, p.topology)
	p.sat = saturation.New(0)
	p.status = status{gUpToDate: true}
	return nil
}

// expandCopy rebuilds constraint c at the wider width w with the role of
// variable v moved to variable newVar (v's own slot zeroed), the
// per-constraint step Expand repeats once for each freshly added
// dimension.
func expandCopy(c linrow.Row, v, newVar, w int, top linrow.Topology) (linrow.Row, error) {
	coeffs := make([]integer.Coefficient, w)
	coeffs[0] = c.Coeffs[0]
	oldSpaceDim := c.SpaceDimension()
	for i := 1; i <= oldSpaceDim; i++ {
		if i == v+1 {
			continue
		}
		coeffs[i] = c.Coeffs[i]
	}
	coeffs[newVar+1] = c.Coeffs[v+1]
	if top == linrow.NotNecessarilyClosed {
		coeffs[w-1] = c.Epsilon()
	}
	return linrow.NewRow(coeffs, top, c.Kind)
}

// Expand adds m new dimensions, each an independent copy of variable v:
// every existing constraint that mentions v gets one analogous copy per
// new dimension, with v's coefficient moved to that dimension and v's own
// occurrence zeroed; the new dimensions are otherwise unrelated to v and
// to each other.
func (p *Poly) Expand(v, m int) error {
	if v < 0 || v >= p.dim {
		return fmt.Errorf("polyhedron.Expand: %w", ErrInvalidArgument)
	}
	if m < 0 {
		return fmt.Errorf("polyhedron.Expand: %w", ErrInvalidArgument)
	}
	if m == 0 {
		return nil
	}

	var source []linrow.Row
	if !p.status.empty {
		if err := p.ensureConstraints(nil); err != nil {
			return err
		}
		if !p.status.empty {
			source = p.Constraints()
		}
	}
	wasEmpty := p.status.empty

	if err := p.AddSpaceDimensionsAndEmbed(m); err != nil {
		return err
	}
	if wasEmpty || p.status.empty {
		return nil
	}

	w := p.width()
	for copyIdx := 0; copyIdx < m; copyIdx++ {
		newVar := p.dim - m + copyIdx
		for _, c := range source {
			if c.Coeffs[v+1].IsZero() {
				continue
			}
			row, err := expandCopy(c, v, newVar, w, p.topology)
			if err != nil {
				return fmt.Errorf("polyhedron.Expand: %w", err)
			}
			if err := p.AddConstraint(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// Fold merges the dimensions in vars into dest, replacing p by the
// poly-hull, over every candidate i in vars ∪ {dest}, of "p with dest's
// value identified with i's value (via an affine image when i != dest)
// and every dimension in vars then projected away". dest must not itself
// be one of vars.
func (p *Poly) Fold(vars []int, dest int) error {
	if dest < 0 || dest >= p.dim {
		return fmt.Errorf("polyhedron.Fold: %w", ErrInvalidArgument)
	}
	if len(vars) == 0 {
		return nil
	}
	for _, v := range vars {
		if v < 0 || v >= p.dim || v == dest {
			return fmt.Errorf("polyhedron.Fold: %w", ErrInvalidArgument)
		}
	}
	if p.status.empty {
		return p.RemoveSpaceDimensions(vars)
	}

	candidates := append([]int{dest}, vars...)
	result, err := Empty(p.dim-len(vars), p.topology)
	if err != nil {
		return err
	}
	result.trace = p.trace

	for _, i := range candidates {
		piece := p.Clone()
		if i != dest {
			coeffs := make([]integer.Coefficient, p.width())
			coeffs[i+1] = integer.FromInt64(1)
			le, err := linrow.NewRow(coeffs, p.topology, linrow.Inequality)
			if err != nil {
				return err
			}
			if err := piece.AffineImage(dest, le, integer.FromInt64(1)); err != nil {
				return err
			}
		}
		if err := piece.RemoveSpaceDimensions(vars); err != nil {
			return err
		}
		if err := result.PolyHullAssign(piece); err != nil {
			return err
		}
	}
	*p = *result
	return nil
}
