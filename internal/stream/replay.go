package stream

import (
	"context"
	"time"
)

// Replay pacing bounds. Recorded gaps are divided by the speed factor and
// clamped so a long pause in the recording does not stall playback.
const (
	defaultReplayGap = 400 * time.Millisecond
	maxReplayGap     = 2 * time.Second
)

// Replayer feeds a recorded event sequence into a channel with inter-event
// delays derived from the recorded timestamps, recreating the feel of the
// original live feed.
type Replayer struct {
	events []Event
	speed  float64
}

// NewReplayer creates a replayer. Speed scales playback: 2.0 plays twice as
// fast as recorded; values <= 0 fall back to 1.0.
func NewReplayer(events []Event, speed float64) *Replayer {
	if speed <= 0 {
		speed = 1.0
	}
	return &Replayer{events: events, speed: speed}
}

// Run sends events on out in order, sleeping between them, until done or
// the context is cancelled. It closes out on return, so the receiver can
// range over the channel. Run blocks; call it from its own goroutine.
func (r *Replayer) Run(ctx context.Context, out chan<- Event) {
	defer close(out)

	var prev time.Time
	for _, e := range r.events {
		d := r.gap(prev, e.Timestamp)
		prev = e.Timestamp

		if d > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(d):
			}
		}

		select {
		case <-ctx.Done():
			return
		case out <- e:
		}
	}
}

// gap computes the pause before an event: the recorded gap scaled by speed,
// clamped to maxReplayGap, with a fixed default when timestamps are absent.
func (r *Replayer) gap(prev, cur time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	if cur.IsZero() || !cur.After(prev) {
		return time.Duration(float64(defaultReplayGap) / r.speed)
	}
	d := time.Duration(float64(cur.Sub(prev)) / r.speed)
	if d > maxReplayGap {
		d = maxReplayGap
	}
	return d
}
