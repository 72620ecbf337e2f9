package tui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planvas/planvas/internal/config"
	"github.com/planvas/planvas/internal/demo"
	"github.com/planvas/planvas/internal/tui/msgs"
	"github.com/planvas/planvas/internal/tui/views"
)

func chtmp(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	t.Cleanup(func() { os.Chdir(originalWd) })
}

func TestModelStartsAtHome(t *testing.T) {
	chtmp(t)
	m := NewModel(config.Default(), Options{})
	if m.currentView != ViewHome {
		t.Errorf("currentView = %v, want home", m.currentView)
	}
}

func TestModelStartsAtCanvasWithOptions(t *testing.T) {
	chtmp(t)
	m := NewModel(config.Default(), Options{
		Canvas: &views.CanvasOptions{Plan: demo.Plan()},
	})
	if m.currentView != ViewCanvas {
		t.Errorf("currentView = %v, want canvas", m.currentView)
	}
}

func TestModelSwitchesToCanvasOnDemo(t *testing.T) {
	chtmp(t)
	m := NewModel(config.Default(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = update(t, m, msgs.OpenDemoMsg{Scenario: demo.ScenarioSuccess, Speed: 4})
	if m.currentView != ViewCanvas {
		t.Fatalf("currentView = %v, want canvas", m.currentView)
	}

	m, _ = update(t, m, msgs.GoToHomeMsg{})
	if m.currentView != ViewHome {
		t.Errorf("currentView = %v, want home", m.currentView)
	}
}

func TestModelIgnoresUnknownDemoScenario(t *testing.T) {
	chtmp(t)
	m := NewModel(config.Default(), Options{})

	m, _ = update(t, m, msgs.OpenDemoMsg{Scenario: "nope", Speed: 1})
	if m.currentView != ViewHome {
		t.Errorf("unknown scenario should stay on home, got %v", m.currentView)
	}
}

// update drives the root model and re-asserts its concrete type.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return root, cmd
}
