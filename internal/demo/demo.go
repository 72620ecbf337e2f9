// Package demo ships a built-in research plan and scripted event scenarios
// so the canvas can be explored without a real agent attached. The demo
// drives the exact same plan snapshot, event feed, and sync path a live
// execution does.
package demo

import (
	"fmt"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/stream"
)

// PlanID tags the demo plan and every demo event.
const PlanID = "demo"

// Scenario names.
const (
	ScenarioSuccess = "success"
	ScenarioFailure = "failure"
)

// Scenarios lists the available scenario names.
var Scenarios = []string{ScenarioSuccess, ScenarioFailure}

// Plan returns a fresh copy of the demo plan with every node pending. The
// graph fans out twice so both collapse groups and the focus dimming have
// something to bite on: a side fetch off web-search and a side check off
// extract-facts, plus a notify branch behind the review gate.
func Plan() *graph.Plan {
	return &graph.Plan{
		ID:   PlanID,
		Name: "Research: quarterly launch report",
		Nodes: []graph.Node{
			{ID: "parse-query", Label: "Parse query", Kind: graph.KindAction, Stage: graph.StageSearch, Status: graph.StatusPending, Position: graph.Position{X: 2, Y: 2}},
			{ID: "web-search", Label: "Web search", Kind: graph.KindAction, Stage: graph.StageSearch, Status: graph.StatusPending, Position: graph.Position{X: 32, Y: 2}},
			{ID: "fetch-docs", Label: "Fetch internal docs", Kind: graph.KindAction, Stage: graph.StageSearch, Status: graph.StatusPending, Position: graph.Position{X: 62, Y: 2}},
			{ID: "rank-results", Label: "Rank results", Kind: graph.KindAction, Stage: graph.StageProcess, Status: graph.StatusPending, Position: graph.Position{X: 32, Y: 9}},
			{ID: "extract-facts", Label: "Extract facts", Kind: graph.KindAction, Stage: graph.StageProcess, Status: graph.StatusPending, Position: graph.Position{X: 62, Y: 9}},
			{ID: "cross-check", Label: "Cross-check sources", Kind: graph.KindAction, Stage: graph.StageProcess, Status: graph.StatusPending, Position: graph.Position{X: 92, Y: 9}},
			{ID: "draft-summary", Label: "Draft summary", Kind: graph.KindAction, Stage: graph.StageSummary, Status: graph.StatusPending, Position: graph.Position{X: 62, Y: 16}},
			{ID: "review-gate", Label: "Review gate", Kind: graph.KindLogicGate, Stage: graph.StageSummary, Status: graph.StatusPending, Position: graph.Position{X: 92, Y: 16}},
			{ID: "publish-report", Label: "Publish report", Kind: graph.KindAction, Stage: graph.StageAction, Status: graph.StatusPending, Position: graph.Position{X: 92, Y: 23}},
			{ID: "notify-owner", Label: "Notify owner", Kind: graph.KindAction, Stage: graph.StageAction, Status: graph.StatusPending, Position: graph.Position{X: 122, Y: 23}},
		},
		Edges: []graph.Edge{
			{Source: "parse-query", Target: "web-search"},
			{Source: "web-search", Target: "rank-results"},
			{Source: "web-search", Target: "fetch-docs"},
			{Source: "fetch-docs", Target: "extract-facts"},
			{Source: "rank-results", Target: "extract-facts"},
			{Source: "extract-facts", Target: "cross-check"},
			{Source: "extract-facts", Target: "draft-summary"},
			{Source: "draft-summary", Target: "review-gate"},
			{Source: "review-gate", Target: "publish-report"},
			{Source: "review-gate", Target: "notify-owner"},
		},
	}
}

// Feed returns the demo plan together with a replayer for the scenario's
// event script. speed scales playback (2 = twice as fast).
func Feed(scenario string, speed float64) (*graph.Plan, *stream.Replayer, error) {
	events, err := Events(scenario)
	if err != nil {
		return nil, nil, err
	}
	return Plan(), stream.NewReplayer(events, speed), nil
}

func unknownScenario(name string) error {
	return fmt.Errorf("unknown scenario %q (have: %v)", name, Scenarios)
}
