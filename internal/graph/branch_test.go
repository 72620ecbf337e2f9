package graph

import (
	"reflect"
	"sort"
	"testing"
)

// branchPlan builds the shared fixture:
//
//	a → b → c        (critical: all completed/active)
//	a → x → y        (side branch, pending)
//	b → s            (second branch point)
//	x → s            (s is shared, reachable from outside the x branch)
func branchPlan() *Plan {
	return testPlan(
		[]Node{
			node("a", StatusCompleted),
			node("b", StatusCompleted),
			node("c", StatusActive),
			node("x", StatusPending),
			node("y", StatusPending),
			node("s", StatusPending),
		},
		[]Edge{
			edge("a", "b"), edge("b", "c"),
			edge("a", "x"), edge("x", "y"),
			edge("b", "s"), edge("x", "s"),
		},
	)
}

func visibleIDs(vs VisibleSet) []string {
	var ids []string
	for _, n := range vs.Nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)
	return ids
}

func TestBranchGroups_ExclusiveDescendantsOnly(t *testing.T) {
	p := branchPlan()
	groups := BranchGroups(p, CriticalPath(p))

	var got *BranchGroup
	for i := range groups {
		if groups[i].BranchNode == "a" {
			got = &groups[i]
		}
	}
	if got == nil {
		t.Fatalf("no group for branch point a in %v", groups)
	}

	// s has an incoming edge from b, outside the branch, so it is not
	// exclusive to the group and must stay visible.
	want := map[string]bool{"x": true, "y": true}
	if !reflect.DeepEqual(got.Members, want) {
		t.Errorf("members = %v, want %v", got.Members, want)
	}
	if got.ToggleID != "branch:a" {
		t.Errorf("toggle id = %q, want branch:a", got.ToggleID)
	}
}

func TestBranchGroups_NoGroupWhenAllChildrenCritical(t *testing.T) {
	// Single out-edge nodes and fully-critical fan-outs produce no toggles.
	p := testPlan(
		[]Node{node("a", StatusCompleted), node("b", StatusActive)},
		[]Edge{edge("a", "b")},
	)
	if groups := BranchGroups(p, CriticalPath(p)); len(groups) != 0 {
		t.Errorf("groups = %v, want none", groups)
	}
}

func TestVisible_CollapseHidesGroupAndReportsCount(t *testing.T) {
	p := branchPlan()
	cp := CriticalPath(p)

	collapsed := func(id string) bool { return id == "branch:a" }
	vs := Visible(p, cp, collapsed)

	want := []string{"a", "b", "c", "s"}
	if got := visibleIDs(vs); !reflect.DeepEqual(got, want) {
		t.Errorf("visible nodes = %v, want %v", got, want)
	}

	for _, e := range vs.Edges {
		if e.Source == "x" || e.Target == "x" || e.Source == "y" || e.Target == "y" {
			t.Errorf("edge %s touches a hidden node", e.Key())
		}
	}

	var tog *Toggle
	for i := range vs.Toggles {
		if vs.Toggles[i].ID == "branch:a" {
			tog = &vs.Toggles[i]
		}
	}
	if tog == nil {
		t.Fatal("missing toggle for branch:a")
	}
	if tog.HiddenCount != 2 {
		t.Errorf("hiddenCount = %d, want 2", tog.HiddenCount)
	}
	if !tog.Collapsed {
		t.Error("toggle should report collapsed")
	}
}

func TestVisible_ToggleRoundTrip(t *testing.T) {
	p := branchPlan()
	cp := CriticalPath(p)

	expanded := Visible(p, cp, func(string) bool { return false })
	collapsed := Visible(p, cp, func(id string) bool { return id == "branch:a" })
	restored := Visible(p, cp, func(string) bool { return false })

	if reflect.DeepEqual(visibleIDs(expanded), visibleIDs(collapsed)) {
		t.Fatal("collapsing should change the visible set")
	}
	if !reflect.DeepEqual(visibleIDs(expanded), visibleIDs(restored)) {
		t.Errorf("round trip: %v != %v", visibleIDs(restored), visibleIDs(expanded))
	}
	if len(restored.Edges) != len(expanded.Edges) {
		t.Errorf("round trip edges: %d != %d", len(restored.Edges), len(expanded.Edges))
	}
}

func TestBranchGroups_CycleInBranchTerminates(t *testing.T) {
	p := testPlan(
		[]Node{
			node("a", StatusCompleted), node("b", StatusCompleted),
			node("x", StatusPending), node("y", StatusPending),
		},
		[]Edge{
			edge("a", "b"),
			edge("a", "x"), edge("x", "y"), edge("y", "x"), // cycle x↔y
		},
	)

	groups := BranchGroups(p, CriticalPath(p))
	if len(groups) != 1 {
		t.Fatalf("groups = %v, want one", groups)
	}
	want := map[string]bool{"x": true, "y": true}
	if !reflect.DeepEqual(groups[0].Members, want) {
		t.Errorf("members = %v, want %v", groups[0].Members, want)
	}
}
