package graph

import "sort"

// CriticalSet is the resolved critical path: the main line of execution the
// canvas highlights, as id sets for nodes and "src=>dst" keys for edges.
type CriticalSet struct {
	Nodes map[string]bool
	Edges map[string]bool
}

// Contains reports whether the node id is on the critical path.
func (c CriticalSet) Contains(id string) bool { return c.Nodes[id] }

// advance ranks how far along a node is for the critical walk. Pending is
// deliberately absent: the walk never steps onto a pending node.
func advance(s Status) (int, bool) {
	switch s {
	case StatusActive:
		return 3, true
	case StatusCompleted:
		return 2, true
	case StatusWaiting:
		return 1, true
	case StatusError:
		return 0, true
	}
	return 0, false
}

// CriticalPath walks the plan from its root toward the execution frontier
// and returns the path of completed/active work.
//
// The walk starts at a root (a node with no incoming edges) and repeatedly
// follows the outgoing edge whose target holds the most advanced status
// (active > completed > waiting > error). Ties break toward the
// lexicographically lowest node id; this ordering is documented behavior
// that callers may rely on for reproducible output. The walk stops when
// every remaining edge leads to a pending node, or when it reaches an error
// node (a terminal frontier worth surfacing). A visited set guards against
// malformed cyclic input, so the walk always terminates.
//
// Pure and O(V+E); recompute on every graph mutation.
func CriticalPath(p *Plan) CriticalSet {
	cs := CriticalSet{Nodes: map[string]bool{}, Edges: map[string]bool{}}
	if p == nil || len(p.Nodes) == 0 {
		return cs
	}

	out := map[string][]string{}
	indeg := map[string]int{}
	byID := map[string]*Node{}
	for i := range p.Nodes {
		byID[p.Nodes[i].ID] = &p.Nodes[i]
	}
	for _, e := range p.Edges {
		// Edges referencing unknown nodes are ignored, not fatal.
		if byID[e.Source] == nil || byID[e.Target] == nil {
			continue
		}
		out[e.Source] = append(out[e.Source], e.Target)
		indeg[e.Target]++
	}
	for id := range out {
		sort.Strings(out[id])
	}

	start := pickRoot(p, byID, indeg)
	if start == "" {
		return cs
	}

	visited := map[string]bool{}
	cur := start
	cs.Nodes[cur] = true
	visited[cur] = true
	if byID[cur].Status == StatusError {
		return cs
	}

	for {
		next := ""
		best := -1
		for _, t := range out[cur] {
			if visited[t] {
				continue
			}
			r, ok := advance(byID[t].Status)
			if !ok {
				continue
			}
			// Strict greater-than keeps the lowest id on rank ties,
			// since out edges are visited in sorted order.
			if r > best {
				best = r
				next = t
			}
		}
		if next == "" {
			return cs
		}
		cs.Edges[cur+"=>"+next] = true
		cs.Nodes[next] = true
		visited[next] = true
		if byID[next].Status == StatusError {
			return cs
		}
		cur = next
	}
}

// pickRoot chooses the walk's starting node: among roots (no incoming
// edges) that have begun executing, the most advanced wins, lowest id on
// ties. Returns "" when nothing has started yet.
func pickRoot(p *Plan, byID map[string]*Node, indeg map[string]int) string {
	var roots []string
	for i := range p.Nodes {
		if indeg[p.Nodes[i].ID] == 0 {
			roots = append(roots, p.Nodes[i].ID)
		}
	}
	sort.Strings(roots)

	best := -1
	pick := ""
	for _, id := range roots {
		r, ok := advance(byID[id].Status)
		if !ok {
			continue
		}
		if r > best {
			best = r
			pick = id
		}
	}
	return pick
}
