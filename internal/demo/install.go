package demo

import (
	"fmt"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/planfile"
	"github.com/planvas/planvas/internal/stream"
)

// Install writes the demo plan and the scenario's full event log into the
// plan storage, so it shows up in listings and can be replayed or tailed
// like any recorded plan. The snapshot is saved with final statuses applied;
// the event log carries the progression. Returns the plan directory.
func Install(scenario string) (string, error) {
	events, err := Events(scenario)
	if err != nil {
		return "", err
	}

	p := Plan()
	// Give the stored copy a unique id so installing both scenarios does
	// not collide, and keep the scenario visible in the name.
	p.ID = ""
	p.Name = fmt.Sprintf("Demo (%s)", scenario)

	dir, err := planfile.Create(p)
	if err != nil {
		return "", err
	}

	lock := planfile.NewFeedLock(dir)
	if err := lock.Acquire(); err != nil {
		return "", fmt.Errorf("demo plan is being written by another process: %w", err)
	}
	defer lock.Release()

	log := stream.NewLog(dir)
	for _, ev := range events {
		ev.PlanID = p.ID
		if err := log.Append(ev); err != nil {
			return "", fmt.Errorf("failed to write event log: %w", err)
		}
		apply(p, ev)
	}

	if err := planfile.Save(dir, p); err != nil {
		return "", err
	}
	return dir, nil
}

// apply folds one event into the snapshot the same way the store would.
func apply(p *graph.Plan, ev stream.Event) {
	n := p.NodeByID(ev.NodeID)
	if n == nil {
		return
	}
	u := ev.Patch()
	if u.Status != "" {
		n.Status = u.Status
	}
	if u.AppendLog != "" {
		n.Logs = append(n.Logs, u.AppendLog)
	}
	if u.PendingInstruction != nil {
		n.PendingInstruction = *u.PendingInstruction
	}
}
