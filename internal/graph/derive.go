package graph

// View bundles every derived projection of the store for one render pass.
// All fields come from pure resolvers over the same snapshot, so they are
// mutually consistent.
type View struct {
	Critical CriticalSet
	Visible  VisibleSet
	Focus    map[string]bool // nil = no dimming
	Layout   Layout
}

// Deriver memoizes View computation on (store revision, viewport, minimap
// size). Equal keys return the cached value; any store mutation bumps the
// revision and forces a recompute. This trades an O(V+E) recompute per
// change for freedom from incremental-update bugs.
type Deriver struct {
	minimapW int
	minimapH int

	valid  bool
	rev    uint64
	vp     Viewport
	cached View
}

// NewDeriver returns a deriver that sizes minimap projections to the given
// overview dimensions.
func NewDeriver(minimapW, minimapH int) *Deriver {
	return &Deriver{minimapW: minimapW, minimapH: minimapH}
}

// Derive returns the derived view for the store's current state, reusing
// the cached result when neither the store revision nor the viewport has
// changed since the last call.
func (d *Deriver) Derive(s *Store, vp Viewport) View {
	if d.valid && d.rev == s.Revision() && d.vp == vp {
		return d.cached
	}

	p := s.Plan()
	cp := CriticalPath(p)
	vis := Visible(p, cp, s.Collapsed)

	// Explicit selection wins over the sticky focus pin; FocusSet itself
	// falls back to the single active node.
	focal := s.SelectedNodeID()
	if focal == "" {
		focal = s.FocusNodeID()
	}

	v := View{
		Critical: cp,
		Visible:  vis,
		Focus:    FocusSet(p, focal),
		Layout:   ComputeLayout(vis.Nodes, vp, d.minimapW, d.minimapH),
	}

	d.valid = true
	d.rev = s.Revision()
	d.vp = vp
	d.cached = v
	return v
}

// Invalidate drops the cached view, forcing the next Derive to recompute.
func (d *Deriver) Invalidate() { d.valid = false }
