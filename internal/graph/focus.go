package graph

// FocusSet returns the nodes that should stay fully visible while the rest
// of the canvas dims: the focal node plus every node one edge hop away in
// either direction. The explicit selection always wins; absent a selection,
// the single active node serves as an implicit focus. Returns nil when
// there is no focal node (no dimming, show everything normally).
//
// Pure, O(E).
func FocusSet(p *Plan, selectedNodeID string) map[string]bool {
	if p == nil {
		return nil
	}

	focal := selectedNodeID
	if focal == "" {
		focal = p.ActiveNode()
	}
	if focal == "" || p.NodeByID(focal) == nil {
		return nil
	}

	set := map[string]bool{focal: true}
	for _, e := range p.Edges {
		if e.Source == focal {
			set[e.Target] = true
		}
		if e.Target == focal {
			set[e.Source] = true
		}
	}
	return set
}
