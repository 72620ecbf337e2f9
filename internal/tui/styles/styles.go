// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors
	waitingColor   = lipgloss.Color("#D7AF5F") // Amber for waiting nodes
	pendingColor   = lipgloss.Color("#4E4E4E") // Dark gray for pending nodes
	laneColor      = lipgloss.Color("#3A3A3A") // Stage lane separators

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// Canvas cell styles, keyed by what a cell renders rather than by
	// widget. The canvas grid stores a class per cell and resolves it to
	// one of these at window-extraction time.

	// LaneStyle for stage lane separator lines.
	LaneStyle = lipgloss.NewStyle().
			Foreground(laneColor)

	// LaneLabelStyle for the stage name at the top of each lane.
	LaneLabelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	// EdgeStyle for ordinary connections between nodes.
	EdgeStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// CriticalEdgeStyle for connections on the critical path.
	CriticalEdgeStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	// Node styles by status.
	NodePendingStyle   = lipgloss.NewStyle().Foreground(pendingColor)
	NodeWaitingStyle   = lipgloss.NewStyle().Foreground(waitingColor)
	NodeActiveStyle    = lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	NodeCompletedStyle = lipgloss.NewStyle().Foreground(successColor)
	NodeErrorStyle     = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	// HighlightStyle for the transient flash on a newly active or
	// jumped-to node.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Bold(true)

	// ToggleStyle for collapsed-branch pills.
	ToggleStyle = lipgloss.NewStyle().
			Foreground(waitingColor)

	// DimStyle replaces any canvas style when a cell falls outside the
	// current focus set.
	DimStyle = lipgloss.NewStyle().
			Foreground(pendingColor).
			Faint(true)

	// MinimapBorderStyle for the minimap panel border.
	MinimapBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(secondaryColor)

	// MinimapViewStyle for the viewport rectangle inside the minimap.
	MinimapViewStyle = lipgloss.NewStyle().
				Foreground(primaryColor)
)
