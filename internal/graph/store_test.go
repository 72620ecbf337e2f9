package graph

import "testing"

func storeWithPlan(nodes []Node, edges []Edge) *Store {
	s := NewStore()
	s.ReplacePlan(testPlan(nodes, edges))
	return s
}

func TestApplyStatusUpdate_UnknownIDIsNoOp(t *testing.T) {
	s := storeWithPlan([]Node{node("a", StatusPending)}, nil)
	before := s.Revision()

	s.ApplyStatusUpdate("does-not-exist", StatusUpdate{Status: StatusCompleted})

	if s.Revision() != before {
		t.Error("unknown id must not bump the revision")
	}
	if got := s.Plan().NodeByID("a").Status; got != StatusPending {
		t.Errorf("node a status = %q, want pending", got)
	}
}

func TestApplyStatusUpdate_Idempotent(t *testing.T) {
	s := storeWithPlan([]Node{node("a", StatusActive)}, nil)

	s.ApplyStatusUpdate("a", StatusUpdate{Status: StatusCompleted})
	s.ApplyStatusUpdate("a", StatusUpdate{Status: StatusCompleted})

	n := s.Plan().NodeByID("a")
	if n.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", n.Status)
	}
	if len(n.Logs) != 0 {
		t.Errorf("logs = %v, want none appended", n.Logs)
	}
}

func TestApplyStatusUpdate_PartialMerge(t *testing.T) {
	s := storeWithPlan([]Node{node("a", StatusActive)}, nil)

	s.ApplyStatusUpdate("a", StatusUpdate{AppendLog: "line one"})
	s.ApplyStatusUpdate("a", StatusUpdate{AppendLog: "line two"})

	n := s.Plan().NodeByID("a")
	if n.Status != StatusActive {
		t.Errorf("status = %q, log-only patch must not touch status", n.Status)
	}
	if len(n.Logs) != 2 || n.Logs[0] != "line one" || n.Logs[1] != "line two" {
		t.Errorf("logs = %v, want appended in order", n.Logs)
	}

	instr := "retry with flag"
	s.ApplyStatusUpdate("a", StatusUpdate{PendingInstruction: &instr})
	if n.PendingInstruction != instr {
		t.Errorf("pendingInstruction = %q, want %q", n.PendingInstruction, instr)
	}
}

func TestReplacePlan_ResetsCursorsAndToggles(t *testing.T) {
	// Branch point "a" with non-critical children; collapse it, switch
	// plans, switch back to a fresh copy: the old toggle state must not
	// resurrect.
	nodes := []Node{
		node("a", StatusCompleted), node("b", StatusCompleted),
		node("x", StatusPending), node("y", StatusPending),
	}
	edges := []Edge{edge("a", "b"), edge("a", "x"), edge("x", "y")}

	s := storeWithPlan(nodes, edges)
	s.Select("b")
	s.SetHighlight("b")
	s.SetFocus("b")
	s.ToggleBranch("branch:a")
	if !s.Collapsed("branch:a") {
		t.Fatal("toggle should be collapsed before the switch")
	}

	s.ReplacePlan(&Plan{ID: "p2", Nodes: []Node{node("q", StatusPending)}})
	if s.SelectedNodeID() != "" || s.HighlightNodeID() != "" || s.FocusNodeID() != "" {
		t.Error("cursors must reset on plan replacement")
	}
	if s.Collapsed("branch:a") {
		t.Error("toggle state must reset on plan replacement")
	}

	s.ReplacePlan(testPlan(nodes, edges))
	if s.Collapsed("branch:a") {
		t.Error("reloading plan p1 must not resurrect old toggle state")
	}
}

func TestToggleBranch_LockedWhileExecuting(t *testing.T) {
	s := storeWithPlan(
		[]Node{node("a", StatusActive), node("b", StatusPending)},
		[]Edge{edge("a", "b")},
	)

	s.ToggleBranch("branch:a")
	if s.Collapsed("branch:a") {
		t.Error("toggles must be no-ops while a node is active")
	}
}

func TestToggleBranch_RoundTrip(t *testing.T) {
	s := storeWithPlan([]Node{node("a", StatusCompleted)}, nil)

	s.ToggleBranch("branch:a")
	if !s.Collapsed("branch:a") {
		t.Fatal("first toggle should collapse")
	}
	s.ToggleBranch("branch:a")
	if s.Collapsed("branch:a") {
		t.Error("second toggle should expand back")
	}
}

func TestSelect_AutoExpandsCollapsedBranch(t *testing.T) {
	// Critical path runs a→b; x and y form the collapsible branch off a.
	nodes := []Node{
		node("a", StatusCompleted), node("b", StatusCompleted),
		node("x", StatusPending), node("y", StatusPending),
	}
	edges := []Edge{edge("a", "b"), edge("a", "x"), edge("x", "y")}

	s := storeWithPlan(nodes, edges)
	s.ToggleBranch("branch:a")
	if !s.Collapsed("branch:a") {
		t.Fatal("branch should collapse")
	}

	s.Select("y")

	if s.Collapsed("branch:a") {
		t.Error("selecting a hidden node must auto-expand its branch")
	}
	if s.SelectedNodeID() != "y" {
		t.Errorf("selected = %q, want y", s.SelectedNodeID())
	}
}

func TestSelect_UnknownIDIgnored(t *testing.T) {
	s := storeWithPlan([]Node{node("a", StatusPending)}, nil)
	s.Select("a")

	s.Select("nope")

	if s.SelectedNodeID() != "a" {
		t.Errorf("selected = %q, unknown id must not change selection", s.SelectedNodeID())
	}
}

func TestStore_NoPlanIsSafe(t *testing.T) {
	s := NewStore()
	s.ApplyStatusUpdate("a", StatusUpdate{Status: StatusCompleted})
	s.Select("a")
	s.ToggleBranch("branch:a")
	// Reaching here without a panic is the assertion.
}
