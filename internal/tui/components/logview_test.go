package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLogViewShowsLines(t *testing.T) {
	lv := NewLogView(20, 3, 0)
	lv.SetLines([]string{"one", "two"})

	out := lv.View()
	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("missing lines in %q", out)
	}
	// Content fits, so the scrollbar gutter stays blank.
	if strings.Contains(out, "█") {
		t.Error("scrollbar should be hidden when content fits")
	}
}

func TestLogViewFollowsBottom(t *testing.T) {
	lv := NewLogView(20, 3, 0)

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("line-%d", i))
	}
	lv.SetLines(lines)

	out := lv.View()
	if !strings.Contains(out, "line-9") {
		t.Errorf("auto-scroll should show the newest line, got %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Error("expected a scrollbar thumb for overflowing content")
	}
}

func TestLogViewCapsLines(t *testing.T) {
	lv := NewLogView(20, 3, 5)

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("line-%d", i))
	}
	lv.SetLines(lines)

	lv, _ = lv.Update(tea.KeyMsg{Type: tea.KeyHome})
	out := lv.View()
	if strings.Contains(out, "line-4") {
		t.Errorf("lines beyond the cap should be dropped, got %q", out)
	}
	if !strings.Contains(out, "line-5") {
		t.Errorf("expected oldest retained line, got %q", out)
	}
}
