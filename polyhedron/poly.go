package polyhedron

import (
	"fmt"

	"github.com/ddpoly/ppl/bitrow"
	"github.com/ddpoly/ppl/conversion"
	"github.com/ddpoly/ppl/internal/polytrace"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
	"github.com/ddpoly/ppl/simplify"
	"github.com/ddpoly/ppl/watchdog"
)

// Poly is a convex polyhedron held as a matched constraint/generator
// double-description pair, a saturation matrix relating them (rows
// indexed by generators, columns by constraints), and the status lattice
// described in the package doc.
type Poly struct {
	dim      int
	topology linrow.Topology
	cs       *linsys.System
	gs       *linsys.System
	sat      *saturation.Matrix
	status   status
	trace    polytrace.Hook
}

func validateDim(dim int) error {
	if dim < 0 || dim > MaxSpaceDimension {
		return fmt.Errorf("polyhedron: dimension %d: %w", dim, ErrLengthOverflow)
	}
	return nil
}

// Universe returns the d-dimensional universe polyhedron: no constraints,
// generators {d unit lines, one point at the origin}. Both sides start
// up-to-date and minimized; no conversion ever runs for this fast path.
func Universe(dim int, top linrow.Topology, opts ...Option) (*Poly, error) {
	if err := validateDim(dim); err != nil {
		return nil, err
	}
	cfg := resolveOptions(opts)
	w := rowWidth(dim, top)
	return &Poly{
		dim:      dim,
		topology: top,
		cs:       linsys.New(w, top),
		gs:       universeGenerators(dim, top),
		sat:      saturation.New(0),
		status:   freshStatus(),
		trace:    cfg.trace,
	}, nil
}

// Empty returns the d-dimensional empty polyhedron: no constraint or
// generator rows, with the empty status set. Both sides start up-to-date
// and minimized;
// no conversion ever runs for this fast path.
func Empty(dim int, top linrow.Topology, opts ...Option) (*Poly, error) {
	if err := validateDim(dim); err != nil {
		return nil, err
	}
	cfg := resolveOptions(opts)
	w := rowWidth(dim, top)
	p := &Poly{
		dim:      dim,
		topology: top,
		cs:       linsys.New(w, top),
		gs:       linsys.New(w, top),
		sat:      saturation.New(0),
		status:   freshStatus(),
		trace:    cfg.trace,
	}
	p.status.empty = true
	return p, nil
}

// FromConstraints returns the polyhedron cut out by rows (all Equality or
// Inequality, sharing top and a common width). The generator side is
// computed lazily on first need.
func FromConstraints(rows []linrow.Row, top linrow.Topology, opts ...Option) (*Poly, error) {
	dim, err := inferDim(rows, top)
	if err != nil {
		return nil, err
	}
	p, err := Universe(dim, top, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.AddConstraints(rows); err != nil {
		return nil, err
	}
	return p, nil
}

// FromGenerators returns the polyhedron whose generators are rows (Line,
// Ray, Point, or ClosurePoint, sharing top and a common width, containing
// at least one Point/ClosurePoint if non-empty). The constraint side is
// computed lazily on first need.
func FromGenerators(rows []linrow.Row, top linrow.Topology, opts ...Option) (*Poly, error) {
	dim, err := inferDim(rows, top)
	if err != nil {
		return nil, err
	}
	p, err := Empty(dim, top, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.AddGenerators(rows); err != nil {
		return nil, err
	}
	return p, nil
}

func inferDim(rows []linrow.Row, top linrow.Topology) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	w := rows[0].Width()
	for _, r := range rows {
		if r.Topology != top {
			return 0, fmt.Errorf("polyhedron: inferDim: %w", ErrTopologyMismatch)
		}
		if r.Width() > w {
			w = r.Width()
		}
	}
	dim := w - 1
	if top == linrow.NotNecessarilyClosed {
		dim--
	}
	return dim, nil
}

// SpaceDimension returns the declared vector-space dimension.
func (p *Poly) SpaceDimension() int { return p.dim }

// Topology returns the declared topology.
func (p *Poly) Topology() linrow.Topology { return p.topology }

func (p *Poly) width() int { return rowWidth(p.dim, p.topology) }

// regenerateGenerators rebuilds gs/sat from cs from scratch via package
// conversion, seeding Dst with the universe generators. Redundant rows of
// cs discovered along the way are dropped permanently, as a byproduct.
func (p *Poly) regenerateGenerators(abandon *watchdog.AbandonToken) error {
	if p.status.empty {
		p.gs = linsys.New(p.width(), p.topology)
		p.sat = saturation.New(0)
		p.status.gUpToDate, p.status.gMinimized = true, true
		return nil
	}

	dst := universeGenerators(p.dim, p.topology)
	sat := saturation.New(0)
	for i := 0; i < dst.NumRows(); i++ {
		sat.AddRow(bitrow.Row{})
	}
	sat.GrowColumns(uint(p.cs.NumRows()))

	st := &conversion.State{Src: p.cs, Dst: dst, Sat: sat, NumLinesOrEqualities: countLinesOrEqualities(dst)}
	p.trace.Step("convert-to-generators", fmt.Sprintf("constraints=%d", p.cs.NumRows()))
	if _, err := conversion.Convert(st, 0, abandon); err != nil {
		return err
	}

	hasPoint := false
	for _, g := range st.Dst.Rows() {
		if g.Kind == linrow.Point || g.Kind == linrow.ClosurePoint {
			hasPoint = true
			break
		}
	}
	if !hasPoint {
		p.collapseToEmpty()
		return nil
	}

	p.gs = st.Dst
	p.sat = st.Sat
	p.status.gUpToDate = true
	p.status.gMinimized = false
	return nil
}

// regenerateConstraints rebuilds cs/sat from gs from scratch via package
// conversion, seeding Dst with the per-axis pinning equalities and the
// homogeneous-cone tautology. Redundant rows of gs discovered along the
// way are dropped permanently.
func (p *Poly) regenerateConstraints(abandon *watchdog.AbandonToken) error {
	if p.status.empty {
		p.status.cUpToDate, p.status.cMinimized = true, true
		return nil
	}
	if p.gs.NumRows() == 0 {
		p.collapseToEmpty()
		return nil
	}

	dst := universeConstraintSeed(p.dim, p.topology)
	sat := saturation.New(0)
	for i := 0; i < dst.NumRows(); i++ {
		sat.AddRow(bitrow.Row{})
	}
	sat.GrowColumns(uint(p.gs.NumRows()))

	st := &conversion.State{Src: p.gs, Dst: dst, Sat: sat, NumLinesOrEqualities: countLinesOrEqualities(dst)}
	p.trace.Step("convert-to-constraints", fmt.Sprintf("generators=%d", p.gs.NumRows()))
	if _, err := conversion.Convert(st, 0, abandon); err != nil {
		return err
	}

	p.cs = st.Dst
	p.sat = st.Sat.Transpose()
	p.status.cUpToDate = true
	p.status.cMinimized = false
	return nil
}

// collapseToEmpty discards both systems in favor of the dedicated empty
// state, per the façade's "empty DST collapse" rule.
func (p *Poly) collapseToEmpty() {
	p.cs = linsys.New(p.width(), p.topology)
	p.gs = linsys.New(p.width(), p.topology)
	p.sat = saturation.New(0)
	p.status = freshStatus()
	p.status.empty = true
}

func (p *Poly) ensureGenerators(abandon *watchdog.AbandonToken) error {
	if p.status.empty || p.status.gUpToDate {
		return nil
	}
	return p.regenerateGenerators(abandon)
}

func (p *Poly) ensureConstraints(abandon *watchdog.AbandonToken) error {
	if p.status.empty || p.status.cUpToDate {
		return nil
	}
	return p.regenerateConstraints(abandon)
}

func (p *Poly) minimizeGenerators() error {
	if p.status.empty || p.status.gMinimized {
		return nil
	}
	if err := p.ensureGenerators(nil); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if _, err := simplify.Simplify(p.gs, p.sat); err != nil {
		return err
	}
	p.status.gMinimized = true
	return nil
}

func (p *Poly) minimizeConstraints() error {
	if p.status.empty || p.status.cMinimized {
		return nil
	}
	if err := p.ensureConstraints(nil); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	satT := p.sat.Transpose()
	if _, err := simplify.Simplify(p.cs, satT); err != nil {
		return err
	}
	p.sat = satT.Transpose()
	p.status.cMinimized = true
	return nil
}

// Constraints returns the current, possibly stale, constraint rows.
// Callers that need an up-to-date view should call MinimizedConstraints.
func (p *Poly) Constraints() []linrow.Row {
	if p.status.empty {
		return nil
	}
	return append([]linrow.Row(nil), p.cs.Rows()...)
}

// Generators returns the current, possibly stale, generator rows.
// Callers that need an up-to-date view should call MinimizedGenerators.
func (p *Poly) Generators() []linrow.Row {
	if p.status.empty {
		return nil
	}
	return append([]linrow.Row(nil), p.gs.Rows()...)
}

// MinimizedConstraints ensures the constraint system is up-to-date and
// irredundant, then returns its rows.
func (p *Poly) MinimizedConstraints() ([]linrow.Row, error) {
	if err := p.minimizeConstraints(); err != nil {
		return nil, err
	}
	return p.Constraints(), nil
}

// MinimizedGenerators ensures the generator system is up-to-date and
// irredundant, then returns its rows.
func (p *Poly) MinimizedGenerators() ([]linrow.Row, error) {
	if err := p.minimizeGenerators(); err != nil {
		return nil, err
	}
	return p.Generators(), nil
}

// Clone returns an independent deep copy of p.
func (p *Poly) Clone() *Poly {
	return &Poly{
		dim:      p.dim,
		topology: p.topology,
		cs:       p.cs.Clone(),
		gs:       p.gs.Clone(),
		sat:      p.sat.Clone(),
		status:   p.status,
		trace:    p.trace,
	}
}
