// Package tui is the bubbletea application shell: it routes between the
// home (plan list) view and the canvas view, and owns program startup.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/planvas/planvas/internal/config"
	"github.com/planvas/planvas/internal/demo"
	"github.com/planvas/planvas/internal/stream"
	"github.com/planvas/planvas/internal/tui/msgs"
	"github.com/planvas/planvas/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewHome View = iota
	ViewCanvas
)

// Model is the main Bubble Tea model that orchestrates the views.
type Model struct {
	currentView View
	home        views.HomeModel
	canvas      views.CanvasModel
	cfg         *config.Config

	width  int
	height int
}

// Run starts the TUI application.
func Run(cfg *config.Config, opts Options) error {
	zone.NewGlobal()
	defer zone.Close()

	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// NewModel builds the root model. With canvas options present the app opens
// straight onto the canvas; otherwise it starts at the plan list.
func NewModel(cfg *config.Config, opts Options) Model {
	m := Model{
		currentView: ViewHome,
		home:        views.NewHomeModel(),
		// A placeholder canvas keeps message forwarding total; it is
		// replaced wholesale when a plan is opened.
		canvas: views.NewCanvasModel(views.CanvasOptions{}, cfg),
		cfg:    cfg,
	}
	if opts.Canvas != nil {
		m.canvas = views.NewCanvasModel(*opts.Canvas, cfg)
		m.currentView = ViewCanvas
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.currentView == ViewCanvas {
		return m.canvas.Init()
	}
	return m.home.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Both views track the size so switching needs no resync.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		cmds = append(cmds, cmd)
		m.canvas, cmd = m.canvas.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case msgs.GoToHomeMsg:
		m.currentView = ViewHome
		m.home = views.NewHomeModel()
		return m.resized(m.home.Init())

	case msgs.OpenPlanMsg:
		return m.openCanvas(views.CanvasOptions{
			PlanDir:   msg.Dir,
			Feed:      stream.NewTail(msg.Dir),
			FeedLabel: "live",
			Reset:     true,
		})

	case msgs.OpenDemoMsg:
		plan, rep, err := demo.Feed(msg.Scenario, msg.Speed)
		if err != nil {
			return m, nil
		}
		return m.openCanvas(views.CanvasOptions{
			Plan:      plan,
			Feed:      rep,
			FeedLabel: "demo",
		})
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewCanvas:
		m.canvas, cmd = m.canvas.Update(msg)
	default:
		m.home, cmd = m.home.Update(msg)
	}
	return m, cmd
}

func (m Model) openCanvas(opts views.CanvasOptions) (tea.Model, tea.Cmd) {
	m.canvas.Close()
	m.canvas = views.NewCanvasModel(opts, m.cfg)
	m.currentView = ViewCanvas
	return m.resized(m.canvas.Init())
}

// resized replays the last known terminal size into the active view so a
// freshly constructed view lays out immediately.
func (m Model) resized(init tea.Cmd) (tea.Model, tea.Cmd) {
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCanvas:
		m.canvas, cmd = m.canvas.Update(size)
	default:
		m.home, cmd = m.home.Update(size)
	}
	return m, tea.Batch(init, cmd)
}

// View implements tea.Model.
func (m Model) View() string {
	var out string
	switch m.currentView {
	case ViewCanvas:
		out = m.canvas.View()
	default:
		out = m.home.View()
	}
	// Strip the zone markers and record the hit areas for mouse routing.
	return zone.Scan(out)
}
