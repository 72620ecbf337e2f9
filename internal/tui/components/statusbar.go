package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/planvas/planvas/internal/tui/styles"
)

// StatusBar renders a bottom help bar with contextual key hints on the left
// and an optional state segment on the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width. Hint items are
// joined with " • "; the right segment is pushed to the far edge and wins
// space when the two sides collide. Width math is escape-aware so styled
// hints (help output carries ANSI sequences) measure and truncate by their
// printable cells.
func (s StatusBar) Render(width int, items []string, right string) string {
	left := strings.Join(items, " • ")

	if right == "" {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		keep := width - ansi.StringWidth(right) - 2
		if keep < 0 {
			keep = 0
		}
		left = ansi.Truncate(left, keep, "…")
		gap = width - ansi.StringWidth(left) - ansi.StringWidth(right)
		if gap < 1 {
			gap = 1
		}
	}

	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
