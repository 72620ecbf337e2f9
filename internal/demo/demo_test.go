package demo

import (
	"os"
	"strings"
	"testing"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/planfile"
	"github.com/planvas/planvas/internal/stream"
)

func chtmp(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	t.Cleanup(func() { os.Chdir(originalWd) })
}

func TestPlanIsClean(t *testing.T) {
	if findings := graph.Lint(Plan()); len(findings) != 0 {
		t.Errorf("Lint() = %v, want none", findings)
	}
}

func TestPlanStartsPending(t *testing.T) {
	for _, n := range Plan().Nodes {
		if n.Status != graph.StatusPending {
			t.Errorf("node %s starts as %s, want pending", n.ID, n.Status)
		}
	}
}

func TestEventsReferenceKnownNodes(t *testing.T) {
	p := Plan()
	for _, scenario := range Scenarios {
		events, err := Events(scenario)
		if err != nil {
			t.Fatalf("Events(%s) error = %v", scenario, err)
		}
		if len(events) == 0 {
			t.Fatalf("Events(%s) is empty", scenario)
		}
		for i, ev := range events {
			if err := ev.Validate(); err != nil {
				t.Errorf("%s event %d: %v", scenario, i, err)
			}
			if ev.PlanID != PlanID {
				t.Errorf("%s event %d: planId = %q", scenario, i, ev.PlanID)
			}
			if p.NodeByID(ev.NodeID) == nil {
				t.Errorf("%s event %d references unknown node %q", scenario, i, ev.NodeID)
			}
		}
	}
}

func TestEventsTimestampsAscend(t *testing.T) {
	events, err := Events(ScenarioSuccess)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(events); i++ {
		if !events[i].Timestamp.After(events[i-1].Timestamp) {
			t.Errorf("event %d timestamp does not advance", i)
		}
	}
}

func TestEventsFollowStateMachine(t *testing.T) {
	for _, scenario := range Scenarios {
		p := Plan()
		events, err := Events(scenario)
		if err != nil {
			t.Fatal(err)
		}
		for i, ev := range events {
			n := p.NodeByID(ev.NodeID)
			u := ev.Patch()
			if u.Status == "" {
				continue
			}
			if !graph.ValidTransition(n.Status, u.Status) {
				t.Errorf("%s event %d: invalid %s transition %s -> %s",
					scenario, i, ev.NodeID, n.Status, u.Status)
			}
			n.Status = u.Status
		}
	}
}

func TestEventsUnknownScenario(t *testing.T) {
	if _, err := Events("nope"); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}

func TestFeedReturnsFreshPlan(t *testing.T) {
	p1, r, err := Feed(ScenarioFailure, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r == nil {
		t.Fatal("Feed returned a nil replayer")
	}
	p1.Nodes[0].Status = graph.StatusCompleted

	p2, _, _ := Feed(ScenarioFailure, 2)
	if p2.Nodes[0].Status != graph.StatusPending {
		t.Error("Feed must return an independent plan copy")
	}
}

func TestInstallWritesSnapshotAndLog(t *testing.T) {
	chtmp(t)

	dir, err := Install(ScenarioFailure)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	p, err := planfile.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.ID == PlanID {
		t.Error("installed plan should get its own id")
	}
	if !strings.Contains(p.Name, ScenarioFailure) {
		t.Errorf("Name = %q, want the scenario in it", p.Name)
	}

	// Snapshot carries the final statuses of the scenario.
	if got := p.NodeByID("extract-facts").Status; got != graph.StatusCompleted {
		t.Errorf("extract-facts = %s, want completed after rerun", got)
	}
	if got := p.NodeByID("extract-facts").PendingInstruction; got != "" {
		t.Errorf("extract-facts instruction = %q, want cleared by the rerun", got)
	}
	if got := p.NodeByID("publish-report").Status; got != graph.StatusCompleted {
		t.Errorf("publish-report = %s, want completed", got)
	}
	if got := p.NodeByID("cross-check").Status; got != graph.StatusPending {
		t.Errorf("cross-check = %s, want pending (never runs)", got)
	}

	events, err := stream.NewLog(dir).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(events) == 0 {
		t.Fatal("event log is empty")
	}
	for i, ev := range events {
		if ev.PlanID != p.ID {
			t.Errorf("event %d: planId = %q, want %q", i, ev.PlanID, p.ID)
		}
	}

	locked, err := planfile.NewFeedLock(dir).IsLocked()
	if err != nil {
		t.Fatalf("IsLocked() error = %v", err)
	}
	if locked {
		t.Error("feed lock should be released after install")
	}
}

func TestInstallBothScenariosCoexist(t *testing.T) {
	chtmp(t)

	d1, err := Install(ScenarioSuccess)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Install(ScenarioFailure)
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Errorf("both scenarios installed into %s", d1)
	}

	infos, err := planfile.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Errorf("List() = %d plans, want 2", len(infos))
	}
}
