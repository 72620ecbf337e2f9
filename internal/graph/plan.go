package graph

// Plan is the execution graph for one agent task.
type Plan struct {
	ID    string `json:"planId"`
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeByID returns a pointer into the plan's node slice, or nil if the id
// is unknown.
func (p *Plan) NodeByID(id string) *Node {
	for i := range p.Nodes {
		if p.Nodes[i].ID == id {
			return &p.Nodes[i]
		}
	}
	return nil
}

// CountByStatus returns how many nodes currently hold the given status.
func (p *Plan) CountByStatus(s Status) int {
	n := 0
	for i := range p.Nodes {
		if p.Nodes[i].Status == s {
			n++
		}
	}
	return n
}

// ActiveNode returns the id of the single active node, or "" when no node
// is active or more than one is (ambiguous, so no implicit focus).
func (p *Plan) ActiveNode() string {
	found := ""
	for i := range p.Nodes {
		if p.Nodes[i].Status == StatusActive {
			if found != "" {
				return ""
			}
			found = p.Nodes[i].ID
		}
	}
	return found
}

// ResetStatuses returns every node to pending and clears its logs and
// pending instruction, giving replay a pristine starting snapshot.
func (p *Plan) ResetStatuses() {
	for i := range p.Nodes {
		p.Nodes[i].Status = StatusPending
		p.Nodes[i].Logs = nil
		p.Nodes[i].PendingInstruction = ""
	}
}

// Executing reports whether any node is currently active. While true, branch
// toggles are locked to keep the view stable during live updates.
func (p *Plan) Executing() bool {
	for i := range p.Nodes {
		if p.Nodes[i].Status == StatusActive {
			return true
		}
	}
	return false
}
