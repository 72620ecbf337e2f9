package graph

// StatusUpdate is a partial patch applied to a single node. Zero-value
// fields leave the corresponding node field untouched.
type StatusUpdate struct {
	Status             Status  // "" = unchanged
	AppendLog          string  // non-empty = appended to the node's logs
	PendingInstruction *string // nil = unchanged
}

// Store owns the canonical plan state plus the plan-scoped UI cursors and
// branch toggle state. It is designed for a single-goroutine event loop:
// all mutations are synchronous, total, and bump a revision counter that
// derived views key their memoization on. It carries no lock on purpose.
type Store struct {
	plan *Plan

	selectedNodeID  string
	highlightNodeID string
	focusNodeID     string

	collapsed map[string]bool

	revision uint64
}

// NewStore returns an empty store. Call ReplacePlan to load a plan.
func NewStore() *Store {
	return &Store{collapsed: map[string]bool{}}
}

// Plan returns the current plan, or nil before the first ReplacePlan.
// Callers must treat the result as read-only; all mutation goes through
// the store's methods.
func (s *Store) Plan() *Plan { return s.plan }

// Revision returns a counter that increments on every mutation. Equal
// revisions guarantee identical derived views.
func (s *Store) Revision() uint64 { return s.revision }

// SelectedNodeID returns the explicit user selection, or "".
func (s *Store) SelectedNodeID() string { return s.selectedNodeID }

// HighlightNodeID returns the transient highlight cursor, or "".
func (s *Store) HighlightNodeID() string { return s.highlightNodeID }

// FocusNodeID returns the sticky focus cursor, or "".
func (s *Store) FocusNodeID() string { return s.focusNodeID }

// Collapsed reports whether the given branch toggle is collapsed.
func (s *Store) Collapsed(toggleID string) bool { return s.collapsed[toggleID] }

// ReplacePlan swaps in a new plan wholesale. Selection, highlight, focus and
// all branch toggle state are reset; nothing carries over between plans.
func (s *Store) ReplacePlan(p *Plan) {
	s.plan = p
	s.selectedNodeID = ""
	s.highlightNodeID = ""
	s.focusNodeID = ""
	s.collapsed = map[string]bool{}
	s.revision++
}

// ApplyStatusUpdate merges a partial update into the named node. An unknown
// node id is a silent no-op: late events for a just-replaced plan are
// expected and must never crash the store.
func (s *Store) ApplyStatusUpdate(nodeID string, u StatusUpdate) {
	if s.plan == nil {
		return
	}
	n := s.plan.NodeByID(nodeID)
	if n == nil {
		return
	}
	if u.Status != "" {
		n.Status = u.Status
	}
	if u.AppendLog != "" {
		n.Logs = append(n.Logs, u.AppendLog)
	}
	if u.PendingInstruction != nil {
		n.PendingInstruction = *u.PendingInstruction
	}
	s.revision++
}

// Select sets the explicit selection. Selecting a node hidden inside a
// collapsed branch auto-expands that branch so the selection is visible.
// Passing "" clears the selection. Unknown ids are ignored.
func (s *Store) Select(nodeID string) {
	if s.plan == nil {
		return
	}
	if nodeID != "" && s.plan.NodeByID(nodeID) == nil {
		return
	}
	s.selectedNodeID = nodeID
	if nodeID != "" {
		s.expandContaining(nodeID)
	}
	s.revision++
}

// SetHighlight sets or clears the transient highlight cursor.
func (s *Store) SetHighlight(nodeID string) {
	s.highlightNodeID = nodeID
	s.revision++
}

// SetFocus sets or clears the sticky focus cursor.
func (s *Store) SetFocus(nodeID string) {
	s.focusNodeID = nodeID
	s.revision++
}

// ToggleBranch flips the collapsed state of a branch toggle. While the plan
// is executing (any node active) toggles are locked and this is a no-op, so
// live updates cannot race a view reshuffle.
func (s *Store) ToggleBranch(toggleID string) {
	if s.plan == nil || s.plan.Executing() {
		return
	}
	s.collapsed[toggleID] = !s.collapsed[toggleID]
	s.revision++
}

// expandContaining clears the collapsed flag of any group that hides nodeID.
func (s *Store) expandContaining(nodeID string) {
	cp := CriticalPath(s.plan)
	for _, g := range BranchGroups(s.plan, cp) {
		if !s.collapsed[g.ToggleID] {
			continue
		}
		if g.Members[nodeID] {
			s.collapsed[g.ToggleID] = false
		}
	}
}
