package graph

import (
	"reflect"
	"testing"
)

func testPlan(nodes []Node, edges []Edge) *Plan {
	return &Plan{ID: "p1", Name: "test", Nodes: nodes, Edges: edges}
}

func node(id string, status Status) Node {
	return Node{ID: id, Label: id, Kind: KindAction, Stage: StageProcess, Status: status}
}

func edge(src, dst string) Edge {
	return Edge{Source: src, Target: dst}
}

func TestCriticalPath_LinearChain(t *testing.T) {
	p := testPlan(
		[]Node{node("S", StatusCompleted), node("G", StatusActive), node("T", StatusPending)},
		[]Edge{edge("S", "G"), edge("G", "T")},
	)

	cp := CriticalPath(p)

	wantNodes := map[string]bool{"S": true, "G": true}
	if !reflect.DeepEqual(cp.Nodes, wantNodes) {
		t.Errorf("nodes = %v, want %v", cp.Nodes, wantNodes)
	}
	wantEdges := map[string]bool{"S=>G": true}
	if !reflect.DeepEqual(cp.Edges, wantEdges) {
		t.Errorf("edges = %v, want %v", cp.Edges, wantEdges)
	}
}

func TestCriticalPath_NothingStarted(t *testing.T) {
	p := testPlan(
		[]Node{node("a", StatusPending), node("b", StatusPending)},
		[]Edge{edge("a", "b")},
	)

	cp := CriticalPath(p)
	if len(cp.Nodes) != 0 || len(cp.Edges) != 0 {
		t.Errorf("expected empty path for all-pending plan, got nodes=%v edges=%v", cp.Nodes, cp.Edges)
	}
}

func TestCriticalPath_PrefersMostAdvancedChild(t *testing.T) {
	// From "a", child "c" is active while "b" is only completed.
	p := testPlan(
		[]Node{
			node("a", StatusCompleted),
			node("b", StatusCompleted),
			node("c", StatusActive),
		},
		[]Edge{edge("a", "b"), edge("a", "c")},
	)

	cp := CriticalPath(p)
	if !cp.Contains("c") {
		t.Error("expected active child c on critical path")
	}
	if cp.Contains("b") {
		t.Error("completed sibling b should lose to active c")
	}
	if !cp.Edges["a=>c"] {
		t.Errorf("edges = %v, want a=>c", cp.Edges)
	}
}

func TestCriticalPath_TieBreakLowestID(t *testing.T) {
	// Both children completed: the lexicographically lowest id wins.
	// This ordering is documented behavior, not incidental.
	p := testPlan(
		[]Node{
			node("a", StatusCompleted),
			node("z", StatusCompleted),
			node("m", StatusCompleted),
		},
		[]Edge{edge("a", "z"), edge("a", "m")},
	)

	cp := CriticalPath(p)
	if !cp.Edges["a=>m"] {
		t.Errorf("edges = %v, want tie broken toward a=>m", cp.Edges)
	}
	if cp.Contains("z") {
		t.Error("z should not be on the path when m wins the tie")
	}
}

func TestCriticalPath_ErrorIsTerminalFrontier(t *testing.T) {
	p := testPlan(
		[]Node{
			node("a", StatusCompleted),
			node("b", StatusError),
			node("c", StatusCompleted),
		},
		[]Edge{edge("a", "b"), edge("b", "c")},
	)

	cp := CriticalPath(p)
	if !cp.Contains("b") {
		t.Error("error node should be surfaced on the path")
	}
	if cp.Contains("c") {
		t.Error("walk must stop at the error node")
	}
}

func TestCriticalPath_Deterministic(t *testing.T) {
	p := testPlan(
		[]Node{
			node("a", StatusCompleted),
			node("b", StatusCompleted),
			node("c", StatusCompleted),
			node("d", StatusActive),
		},
		[]Edge{edge("a", "b"), edge("a", "c"), edge("b", "d"), edge("c", "d")},
	)

	first := CriticalPath(p)
	for i := 0; i < 50; i++ {
		got := CriticalPath(p)
		if !reflect.DeepEqual(got.Nodes, first.Nodes) || !reflect.DeepEqual(got.Edges, first.Edges) {
			t.Fatalf("run %d differs: %v / %v vs %v / %v", i, got.Nodes, got.Edges, first.Nodes, first.Edges)
		}
	}
}

func TestCriticalPath_CycleTerminates(t *testing.T) {
	// Malformed input: a cycle a→b→a plus an entry edge. The walk must
	// detect the revisit and stop instead of looping forever.
	p := testPlan(
		[]Node{node("r", StatusCompleted), node("a", StatusCompleted), node("b", StatusCompleted)},
		[]Edge{edge("r", "a"), edge("a", "b"), edge("b", "a")},
	)

	cp := CriticalPath(p)
	want := map[string]bool{"r": true, "a": true, "b": true}
	if !reflect.DeepEqual(cp.Nodes, want) {
		t.Errorf("nodes = %v, want %v", cp.Nodes, want)
	}
}

func TestCriticalPath_DanglingEdgeIgnored(t *testing.T) {
	p := testPlan(
		[]Node{node("a", StatusCompleted)},
		[]Edge{edge("a", "ghost")},
	)

	cp := CriticalPath(p)
	if cp.Contains("ghost") {
		t.Error("edge to unknown node must be ignored")
	}
	if !cp.Contains("a") {
		t.Error("root should still be on the path")
	}
}

func TestCriticalPath_MultipleRoots(t *testing.T) {
	// Two roots: the one that has begun executing starts the walk.
	p := testPlan(
		[]Node{node("r1", StatusPending), node("r2", StatusCompleted), node("x", StatusActive)},
		[]Edge{edge("r1", "x"), edge("r2", "x")},
	)

	cp := CriticalPath(p)
	if !cp.Contains("r2") || !cp.Contains("x") {
		t.Errorf("nodes = %v, want r2 and x", cp.Nodes)
	}
	if cp.Contains("r1") {
		t.Error("pending root must not start the walk")
	}
}
