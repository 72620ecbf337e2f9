// Package graph is the plan canvas engine core: the canonical graph store
// plus the pure resolvers that derive critical path, collapsible branches,
// focus sets, layout geometry and minimap projections from it.
package graph

// Kind classifies what a node represents in the plan.
type Kind string

const (
	KindAction        Kind = "action"
	KindLogicGate     Kind = "logic_gate"
	KindReplanTrigger Kind = "replan_trigger"
)

// Stage groups nodes into visual lanes. It has no execution semantics.
type Stage string

const (
	StageSearch  Stage = "search"
	StageProcess Stage = "process"
	StageSummary Stage = "summary"
	StageAction  Stage = "action"
	StageUnknown Stage = "unknown"
)

// Stages lists every known stage in lane order, top to bottom.
var Stages = []Stage{StageSearch, StageProcess, StageSummary, StageAction, StageUnknown}

// Status is a node's execution state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusWaiting   Status = "waiting"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// ValidTransition reports whether a status change follows the node state
// machine: pending → active → completed, active → error, active ↔ waiting,
// and error → active on rerun. Same-status updates are always valid so that
// a repeated event is idempotent rather than an error.
func ValidTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusPending:
		return to == StatusActive
	case StatusActive:
		return to == StatusCompleted || to == StatusError || to == StatusWaiting
	case StatusWaiting:
		return to == StatusActive
	case StatusError:
		return to == StatusActive
	}
	return false
}

// Position is a node's canvas location in cell coordinates. Positions are
// assigned by the upstream layout step and are never moved by this engine.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Node is a single step in a plan graph. ID, Kind, Stage and Position are
// fixed at creation; only Status, Logs and PendingInstruction change.
type Node struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Kind               Kind     `json:"kind"`
	Stage              Stage    `json:"stage"`
	Status             Status   `json:"status"`
	Position           Position `json:"position"`
	Logs               []string `json:"logs,omitempty"`
	PendingInstruction string   `json:"pendingInstruction,omitempty"`
}

// Edge is a directed connection between two nodes, referenced by id only.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Key returns the canonical "src=>dst" form used in edge sets.
func (e Edge) Key() string {
	return e.Source + "=>" + e.Target
}
