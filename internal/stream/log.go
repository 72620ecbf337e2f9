package stream

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const eventLogFileName = "events.jsonl"

// Log reads and writes a plan's status event log: one JSON object per line,
// append-only, stored next to the plan snapshot.
type Log struct {
	path string
}

// NewLog returns the event log for the given plan directory.
func NewLog(planDir string) *Log {
	return &Log{path: filepath.Join(planDir, eventLogFileName)}
}

// Path returns the log file location.
func (l *Log) Path() string { return l.path }

// Append writes one event to the end of the log.
func (l *Log) Append(e Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

// ReadAll returns every well-formed event in the log, in file order.
// Malformed or invalid lines are skipped rather than failing the read:
// a torn final line from an interrupted producer is expected.
func (l *Log) ReadAll() ([]Event, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		if e.Validate() != nil {
			continue
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}
	return events, nil
}
