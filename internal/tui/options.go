package tui

import "github.com/planvas/planvas/internal/tui/views"

// Options configures TUI startup behavior.
type Options struct {
	// Canvas, when set, opens the app directly on a canvas instead of the
	// plan list. The CLI builds it for view, replay and demo subcommands.
	Canvas *views.CanvasOptions
}
