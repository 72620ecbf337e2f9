// Package planfile persists plan snapshots on disk. Each plan lives in its
// own folder under .planvas/plans/ as a plan.json snapshot plus an
// events.jsonl status log written by whatever produced the execution.
package planfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/util"
)

const (
	planvasDir = ".planvas"
	plansDir   = "plans"

	snapshotFileName = "plan.json"
	eventsFileName   = "events.jsonl"
)

// PlansPath returns the plans directory relative to the working directory.
func PlansPath() string {
	return filepath.Join(planvasDir, plansDir)
}

// FindPlanDir finds a plan folder by name suffix in .planvas/plans/ and
// returns its full path.
func FindPlanDir(name string) (string, error) {
	plansPath := PlansPath()

	entries, err := os.ReadDir(plansPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no plans found. Run 'planvas demo' or import a plan first")
		}
		return "", fmt.Errorf("failed to read plans directory: %w", err)
	}

	var matches []string
	suffix := "-" + name

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			matches = append(matches, entry.Name())
		}
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("plan not found: %s", name)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("multiple plans match '%s': %v", name, matches)
	}

	return filepath.Join(plansPath, matches[0]), nil
}

// Load reads and parses plan.json from a plan directory.
func Load(planDir string) (*graph.Plan, error) {
	data, err := os.ReadFile(filepath.Join(planDir, snapshotFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read plan.json: %w", err)
	}

	var p graph.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan.json: %w", err)
	}
	if p.ID == "" {
		return nil, fmt.Errorf("plan.json is missing planId")
	}
	return &p, nil
}

// Save atomically writes plan.json to the plan directory using a temp file
// plus rename.
func Save(planDir string, p *graph.Plan) error {
	planPath := filepath.Join(planDir, snapshotFileName)
	tmpPath := fmt.Sprintf("%s.tmp.%d", planPath, os.Getpid())

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, planPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Create makes a plan folder at .planvas/plans/<id>-<name>/ with the
// snapshot and an empty event log. A missing plan id is assigned a fresh
// UUID; the folder uses its first segment to keep paths short.
func Create(p *graph.Plan) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	name := util.ToKebabCase(p.Name)
	if name == "" {
		name = "plan"
	}

	folderName := fmt.Sprintf("%s-%s", shortID(p.ID), name)
	folderPath := filepath.Join(PlansPath(), folderName)

	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create plan folder: %w", err)
	}
	if err := Save(folderPath, p); err != nil {
		return "", err
	}
	eventsPath := filepath.Join(folderPath, eventsFileName)
	if err := os.WriteFile(eventsPath, []byte{}, 0644); err != nil {
		return "", fmt.Errorf("failed to create events.jsonl: %w", err)
	}
	return folderPath, nil
}

// Info summarizes one stored plan for listings.
type Info struct {
	Dir       string
	ID        string
	Name      string
	Nodes     int
	Completed int
	Errors    int
}

// List returns a summary of every readable plan folder, in directory order.
// Folders without a parseable plan.json are skipped.
func List() ([]Info, error) {
	entries, err := os.ReadDir(PlansPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plans directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(PlansPath(), entry.Name())
		p, err := Load(dir)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Dir:       dir,
			ID:        p.ID,
			Name:      p.Name,
			Nodes:     len(p.Nodes),
			Completed: p.CountByStatus(graph.StatusCompleted),
			Errors:    p.CountByStatus(graph.StatusError),
		})
	}
	return infos, nil
}

// shortID returns the first uuid segment, or the whole id when it has none.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
