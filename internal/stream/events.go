// Package stream models the status event feed a plan canvas synchronizes
// against: the event types, the JSON Lines event log on disk, and a timed
// replayer that turns a recorded log back into a live feed.
package stream

import (
	"fmt"
	"time"

	"github.com/planvas/planvas/internal/graph"
)

// Type identifies a status event.
type Type string

const (
	TypeNodeStarted   Type = "node_started"
	TypeNodeWaiting   Type = "node_waiting"
	TypeNodeFailed    Type = "node_failed"
	TypeNodeCompleted Type = "node_completed"
	TypeNodeLog       Type = "node_log"
)

// Event is one entry of the push-based status feed. Events are keyed to a
// plan; consumers must drop events tagged with a plan other than the one
// currently loaded.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        Type      `json:"type"`
	PlanID      string    `json:"planId"`
	NodeID      string    `json:"nodeId"`
	Instruction string    `json:"instruction,omitempty"`
	Line        string    `json:"line,omitempty"`
}

// Validate checks the fields every event must carry.
func (e Event) Validate() error {
	switch e.Type {
	case TypeNodeStarted, TypeNodeWaiting, TypeNodeFailed, TypeNodeCompleted, TypeNodeLog:
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.PlanID == "" {
		return fmt.Errorf("event missing planId")
	}
	if e.NodeID == "" {
		return fmt.Errorf("event missing nodeId")
	}
	return nil
}

// Patch translates the event into the store update it implies. The store
// ignores unknown node ids on its own, so the caller can apply the patch
// unconditionally.
func (e Event) Patch() graph.StatusUpdate {
	switch e.Type {
	case TypeNodeStarted:
		// Starting also clears any pending instruction: a rerun after a
		// failure means the node is no longer blocked on a decision.
		cleared := ""
		return graph.StatusUpdate{Status: graph.StatusActive, PendingInstruction: &cleared}
	case TypeNodeWaiting:
		return graph.StatusUpdate{Status: graph.StatusWaiting}
	case TypeNodeCompleted:
		return graph.StatusUpdate{Status: graph.StatusCompleted}
	case TypeNodeFailed:
		u := graph.StatusUpdate{Status: graph.StatusError}
		if e.Instruction != "" {
			instr := e.Instruction
			u.PendingInstruction = &instr
		}
		return u
	case TypeNodeLog:
		return graph.StatusUpdate{AppendLog: e.Line}
	}
	return graph.StatusUpdate{}
}
