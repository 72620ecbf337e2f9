package demo

import (
	"time"

	"github.com/planvas/planvas/internal/stream"
)

// scriptStep is one line of a scenario before timestamps are assigned.
type scriptStep struct {
	typ         stream.Type
	node        string
	line        string
	instruction string
	// pause before this step, on top of the default step gap
	pause time.Duration
}

const defaultStepGap = 700 * time.Millisecond

// Events returns the scenario's event script with concrete timestamps. The
// replayer reconstructs pacing from the timestamp gaps, so the script
// encodes its own rhythm.
func Events(scenario string) ([]stream.Event, error) {
	var steps []scriptStep
	switch scenario {
	case ScenarioSuccess:
		steps = successScript()
	case ScenarioFailure:
		steps = failureScript()
	default:
		return nil, unknownScenario(scenario)
	}

	ts := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	events := make([]stream.Event, 0, len(steps))
	for _, s := range steps {
		ts = ts.Add(defaultStepGap + s.pause)
		events = append(events, stream.Event{
			Timestamp:   ts,
			Type:        s.typ,
			PlanID:      PlanID,
			NodeID:      s.node,
			Line:        s.line,
			Instruction: s.instruction,
		})
	}
	return events, nil
}

func successScript() []scriptStep {
	return []scriptStep{
		{typ: stream.TypeNodeStarted, node: "parse-query"},
		{typ: stream.TypeNodeLog, node: "parse-query", line: "query: q3 launch coverage, internal + press"},
		{typ: stream.TypeNodeCompleted, node: "parse-query"},

		{typ: stream.TypeNodeStarted, node: "web-search"},
		{typ: stream.TypeNodeLog, node: "web-search", line: "12 results from 4 sources"},
		{typ: stream.TypeNodeCompleted, node: "web-search"},

		{typ: stream.TypeNodeStarted, node: "fetch-docs"},
		{typ: stream.TypeNodeLog, node: "fetch-docs", line: "pulled 3 internal briefs"},
		{typ: stream.TypeNodeCompleted, node: "fetch-docs"},

		{typ: stream.TypeNodeStarted, node: "rank-results"},
		{typ: stream.TypeNodeCompleted, node: "rank-results"},

		{typ: stream.TypeNodeStarted, node: "extract-facts"},
		{typ: stream.TypeNodeLog, node: "extract-facts", line: "41 candidate facts, 28 kept"},
		{typ: stream.TypeNodeCompleted, node: "extract-facts", pause: 400 * time.Millisecond},

		{typ: stream.TypeNodeStarted, node: "cross-check"},
		{typ: stream.TypeNodeCompleted, node: "cross-check"},

		{typ: stream.TypeNodeStarted, node: "draft-summary"},
		{typ: stream.TypeNodeLog, node: "draft-summary", line: "draft at 612 words"},
		{typ: stream.TypeNodeCompleted, node: "draft-summary", pause: 600 * time.Millisecond},

		{typ: stream.TypeNodeStarted, node: "review-gate"},
		{typ: stream.TypeNodeWaiting, node: "review-gate"},
		{typ: stream.TypeNodeStarted, node: "review-gate", pause: 1200 * time.Millisecond},
		{typ: stream.TypeNodeCompleted, node: "review-gate"},

		{typ: stream.TypeNodeStarted, node: "publish-report"},
		{typ: stream.TypeNodeCompleted, node: "publish-report"},

		{typ: stream.TypeNodeStarted, node: "notify-owner"},
		{typ: stream.TypeNodeCompleted, node: "notify-owner"},
	}
}

func failureScript() []scriptStep {
	return []scriptStep{
		{typ: stream.TypeNodeStarted, node: "parse-query"},
		{typ: stream.TypeNodeCompleted, node: "parse-query"},

		{typ: stream.TypeNodeStarted, node: "web-search"},
		{typ: stream.TypeNodeLog, node: "web-search", line: "9 results from 3 sources"},
		{typ: stream.TypeNodeCompleted, node: "web-search"},

		{typ: stream.TypeNodeStarted, node: "rank-results"},
		{typ: stream.TypeNodeCompleted, node: "rank-results"},

		{typ: stream.TypeNodeStarted, node: "extract-facts"},
		{typ: stream.TypeNodeLog, node: "extract-facts", line: "sources disagree on launch date"},
		{
			typ:         stream.TypeNodeFailed,
			node:        "extract-facts",
			instruction: "Sources disagree on the launch date. Use the press release date?",
			pause:       400 * time.Millisecond,
		},

		// Rerun after the user decides: error clears back to active.
		{typ: stream.TypeNodeStarted, node: "extract-facts", pause: 2 * time.Second},
		{typ: stream.TypeNodeLog, node: "extract-facts", line: "using press release date per decision"},
		{typ: stream.TypeNodeCompleted, node: "extract-facts"},

		{typ: stream.TypeNodeStarted, node: "draft-summary"},
		{typ: stream.TypeNodeCompleted, node: "draft-summary"},

		{typ: stream.TypeNodeStarted, node: "review-gate"},
		{typ: stream.TypeNodeCompleted, node: "review-gate"},

		{typ: stream.TypeNodeStarted, node: "publish-report"},
		{typ: stream.TypeNodeCompleted, node: "publish-report"},
	}
}
