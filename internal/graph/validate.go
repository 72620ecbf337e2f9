package graph

import (
	"fmt"
	"sort"
)

// Lint checks a plan snapshot for structural problems and returns a
// human-readable finding per issue: duplicate node ids, edges referencing
// unknown nodes, parallel duplicate edges, and cycles. The engine tolerates
// all of these at runtime (it degrades rather than crashes), but a producer
// writing such a snapshot has a bug worth surfacing.
func Lint(p *Plan) []string {
	var findings []string
	if p == nil {
		return nil
	}

	seen := map[string]bool{}
	for _, n := range p.Nodes {
		if seen[n.ID] {
			findings = append(findings, fmt.Sprintf("duplicate node id %q", n.ID))
		}
		seen[n.ID] = true
	}

	edgeSeen := map[string]bool{}
	for _, e := range p.Edges {
		if !seen[e.Source] {
			findings = append(findings, fmt.Sprintf("edge %s references unknown source %q", e.Key(), e.Source))
		}
		if !seen[e.Target] {
			findings = append(findings, fmt.Sprintf("edge %s references unknown target %q", e.Key(), e.Target))
		}
		if edgeSeen[e.Key()] {
			findings = append(findings, fmt.Sprintf("duplicate edge %s", e.Key()))
		}
		edgeSeen[e.Key()] = true
	}

	for _, id := range cycleNodes(p, seen) {
		findings = append(findings, fmt.Sprintf("cycle through node %q", id))
	}
	return findings
}

// cycleNodes returns nodes left over after iteratively peeling zero
// in-degree nodes (Kahn's algorithm); a non-empty remainder is exactly the
// set of nodes on or downstream-locked behind cycles.
func cycleNodes(p *Plan, known map[string]bool) []string {
	indeg := map[string]int{}
	out := map[string][]string{}
	for _, n := range p.Nodes {
		indeg[n.ID] = 0
	}
	for _, e := range p.Edges {
		if !known[e.Source] || !known[e.Target] {
			continue
		}
		out[e.Source] = append(out[e.Source], e.Target)
		indeg[e.Target]++
	}

	var queue []string
	for id, d := range indeg {
		if d == 0 {
			queue = append(queue, id)
		}
	}
	removed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		removed++
		for _, t := range out[id] {
			indeg[t]--
			if indeg[t] == 0 {
				queue = append(queue, t)
			}
		}
	}
	if removed == len(indeg) {
		return nil
	}

	var stuck []string
	for id, d := range indeg {
		if d > 0 {
			stuck = append(stuck, id)
		}
	}
	sort.Strings(stuck)
	return stuck
}
