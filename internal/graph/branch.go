package graph

import "sort"

// branchTogglePrefix builds synthetic toggle ids from the branch point node.
const branchTogglePrefix = "branch:"

// BranchToggleID returns the synthetic toggle id for a branch point node.
func BranchToggleID(branchNode string) string {
	return branchTogglePrefix + branchNode
}

// BranchGroup is a collapsible sub-tree hanging off a branch point: the
// non-critical children of a node with multiple outgoing edges, plus every
// descendant reachable only through them.
type BranchGroup struct {
	ToggleID   string
	BranchNode string
	Position   Position
	Members    map[string]bool
}

// Toggle is the collapse affordance reported to the view layer.
type Toggle struct {
	ID          string
	Position    Position
	HiddenCount int
	Collapsed   bool
}

// VisibleSet is the filtered graph after collapsed branches are removed.
type VisibleSet struct {
	Nodes   []Node
	Edges   []Edge
	Toggles []Toggle
}

// BranchGroups finds every collapsible group in the plan. A node qualifies
// as a branch point when it has more than one outgoing edge and at least
// one child off the critical path. A member leaves the group if any edge
// reaches it from outside the group (it is not exclusive to the branch),
// and removal cascades until the group is stable. Critical nodes are never
// group members. Pure; deterministic order by branch node id.
func BranchGroups(p *Plan, cp CriticalSet) []BranchGroup {
	if p == nil {
		return nil
	}

	byID := map[string]*Node{}
	for i := range p.Nodes {
		byID[p.Nodes[i].ID] = &p.Nodes[i]
	}
	out := map[string][]string{}
	in := map[string][]string{}
	for _, e := range p.Edges {
		if byID[e.Source] == nil || byID[e.Target] == nil {
			continue
		}
		out[e.Source] = append(out[e.Source], e.Target)
		in[e.Target] = append(in[e.Target], e.Source)
	}

	var branchIDs []string
	for id, children := range out {
		if len(children) < 2 {
			continue
		}
		for _, c := range children {
			if !cp.Contains(c) {
				branchIDs = append(branchIDs, id)
				break
			}
		}
	}
	sort.Strings(branchIDs)

	var groups []BranchGroup
	for _, b := range branchIDs {
		seeds := map[string]bool{}
		for _, c := range out[b] {
			if !cp.Contains(c) {
				seeds[c] = true
			}
		}

		members := reachable(seeds, out)
		pruneShared(members, seeds, in, cp, b)
		if len(members) == 0 {
			continue
		}

		groups = append(groups, BranchGroup{
			ToggleID:   branchTogglePrefix + b,
			BranchNode: b,
			Position:   byID[b].Position,
			Members:    members,
		})
	}
	return groups
}

// reachable returns every node reachable from the seed set, seeds included.
// The visited set doubles as a cycle guard.
func reachable(seeds map[string]bool, out map[string][]string) map[string]bool {
	visited := map[string]bool{}
	var stack []string
	for s := range seeds {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n] {
			continue
		}
		visited[n] = true
		stack = append(stack, out[n]...)
	}
	return visited
}

// pruneShared removes members that are not exclusive to the branch: critical
// nodes, and any node with an incoming edge from outside the group (other
// than the branch point feeding a seed). Removal cascades to a fixpoint.
func pruneShared(members, seeds map[string]bool, in map[string][]string, cp CriticalSet, branch string) {
	for changed := true; changed; {
		changed = false
		for n := range members {
			if cp.Contains(n) {
				delete(members, n)
				changed = true
				continue
			}
			for _, u := range in[n] {
				if u == branch && seeds[n] {
					continue
				}
				if !members[u] {
					delete(members, n)
					changed = true
					break
				}
			}
		}
	}
}

// Visible filters the plan down to what the canvas should draw given the
// current collapse state, and reports the toggle affordances. Output node
// and edge order follows plan order, so rendering is stable across calls.
func Visible(p *Plan, cp CriticalSet, collapsed func(toggleID string) bool) VisibleSet {
	vs := VisibleSet{}
	if p == nil {
		return vs
	}

	hidden := map[string]bool{}
	for _, g := range BranchGroups(p, cp) {
		c := collapsed(g.ToggleID)
		vs.Toggles = append(vs.Toggles, Toggle{
			ID:          g.ToggleID,
			Position:    g.Position,
			HiddenCount: len(g.Members),
			Collapsed:   c,
		})
		if !c {
			continue
		}
		for id := range g.Members {
			hidden[id] = true
		}
	}

	shown := map[string]bool{}
	for _, n := range p.Nodes {
		if !hidden[n.ID] {
			vs.Nodes = append(vs.Nodes, n)
			shown[n.ID] = true
		}
	}
	// Both endpoints must be visible; this also drops edges that dangle
	// onto unknown node ids.
	for _, e := range p.Edges {
		if shown[e.Source] && shown[e.Target] {
			vs.Edges = append(vs.Edges, e)
		}
	}
	return vs
}
