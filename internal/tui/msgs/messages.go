// Package msgs defines shared message types for TUI view transitions.
package msgs

// View transition messages

// GoToHomeMsg signals transition to the home (plan list) view.
type GoToHomeMsg struct{}

// OpenPlanMsg signals that the user wants to open a stored plan on the
// canvas. Dir is the plan's snapshot directory.
type OpenPlanMsg struct {
	Dir string
}

// OpenDemoMsg signals that the user wants to watch the built-in demo plan.
type OpenDemoMsg struct {
	Scenario string
	Speed    float64
}
