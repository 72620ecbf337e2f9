package stream

import (
	"context"
	"testing"
	"time"
)

func replayEvents(n int) []Event {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	events := make([]Event, n)
	for i := range events {
		events[i] = Event{
			Timestamp: base.Add(time.Duration(i) * 10 * time.Millisecond),
			Type:      TypeNodeStarted,
			PlanID:    "p1",
			NodeID:    "n",
		}
	}
	return events
}

func TestReplayer_DeliversInOrderAndCloses(t *testing.T) {
	events := replayEvents(5)
	out := make(chan Event, 8)

	go NewReplayer(events, 100).Run(context.Background(), out)

	var got []Event
	for e := range out {
		got = append(got, e)
	}
	if len(got) != 5 {
		t.Fatalf("received %d events, want 5", len(got))
	}
	for i, e := range got {
		if e.Timestamp != events[i].Timestamp {
			t.Errorf("event %d out of order", i)
		}
	}
}

func TestReplayer_CancelStopsPlayback(t *testing.T) {
	// Large recorded gaps; cancellation must win over the sleep.
	base := time.Now()
	events := []Event{
		{Timestamp: base, Type: TypeNodeStarted, PlanID: "p1", NodeID: "a"},
		{Timestamp: base.Add(time.Hour), Type: TypeNodeCompleted, PlanID: "p1", NodeID: "a"},
	}
	out := make(chan Event, 2)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewReplayer(events, 1).Run(ctx, out)
		close(done)
	}()

	<-out // first event arrives immediately
	cancel()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("replayer did not stop after cancel")
	}
}

func TestReplayer_GapClamping(t *testing.T) {
	r := NewReplayer(nil, 1)
	base := time.Now()

	if d := r.gap(time.Time{}, base); d != 0 {
		t.Errorf("first event gap = %v, want 0", d)
	}
	if d := r.gap(base, base.Add(time.Hour)); d != maxReplayGap {
		t.Errorf("huge gap = %v, want clamped to %v", d, maxReplayGap)
	}
	if d := r.gap(base, time.Time{}); d != defaultReplayGap {
		t.Errorf("missing timestamp gap = %v, want default %v", d, defaultReplayGap)
	}

	fast := NewReplayer(nil, 4)
	if d := fast.gap(base, base.Add(400*time.Millisecond)); d != 100*time.Millisecond {
		t.Errorf("scaled gap = %v, want 100ms", d)
	}
}
