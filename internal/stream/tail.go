package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const defaultTailInterval = 300 * time.Millisecond

// Tail follows a plan's event log as it grows, emitting each complete line
// as an event. It polls the file rather than watching it: the log is
// append-only and low-volume, and polling survives editors and renames that
// confuse inotify. Historical lines already in the file are emitted first,
// so tailing doubles as hydration.
type Tail struct {
	path     string
	interval time.Duration
}

// NewTail creates a tail over the event log inside planDir.
func NewTail(planDir string) *Tail {
	return &Tail{
		path:     filepath.Join(planDir, eventLogFileName),
		interval: defaultTailInterval,
	}
}

// Run follows the log until the context is cancelled, then closes out.
// Malformed or invalid lines are skipped; a missing file is treated as
// empty and retried on the next poll.
func (t *Tail) Run(ctx context.Context, out chan<- Event) {
	defer close(out)

	var offset int64
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		offset = t.drain(ctx, out, offset)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// drain reads complete lines past offset, sends their events, and returns
// the new offset. A trailing partial line stays unconsumed until the writer
// finishes it.
func (t *Tail) drain(ctx context.Context, out chan<- Event, offset int64) int64 {
	f, err := os.Open(t.path)
	if err != nil {
		return offset
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil || st.Size() <= offset {
		return offset
	}
	if _, err := f.Seek(offset, 0); err != nil {
		return offset
	}

	buf := make([]byte, st.Size()-offset)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return offset
	}
	buf = buf[:n]

	end := bytes.LastIndexByte(buf, '\n')
	if end < 0 {
		return offset
	}

	for _, line := range bytes.Split(buf[:end], []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		if ev.Validate() != nil {
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return offset
		}
	}

	return offset + int64(end) + 1
}
