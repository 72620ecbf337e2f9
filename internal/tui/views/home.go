package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/planvas/planvas/internal/planfile"
	"github.com/planvas/planvas/internal/tui/components"
	"github.com/planvas/planvas/internal/tui/msgs"
	"github.com/planvas/planvas/internal/tui/styles"
)

// homeRowZone builds the bubblezone id for one plan row.
func homeRowZone(i int) string {
	return fmt.Sprintf("home-row-%d", i)
}

// HomeModel lists the stored plans and opens one on the canvas.
type HomeModel struct {
	plans     []planfile.Info
	cursor    int
	statusbar components.StatusBar
	width     int
	height    int
	err       error
}

// NewHomeModel creates the home view and reads the stored plans.
func NewHomeModel() HomeModel {
	m := HomeModel{statusbar: components.NewStatusBar()}
	m.reload()
	return m
}

func (m *HomeModel) reload() {
	m.plans, m.err = planfile.List()
	if m.cursor >= len(m.plans) {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m HomeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i := range m.plans {
				if zone.Get(homeRowZone(i)).InBounds(msg) {
					m.cursor = i
					return m, m.openSelected()
				}
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.plans)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.openSelected()
		case "d":
			return m, func() tea.Msg { return msgs.OpenDemoMsg{Scenario: "success", Speed: 1} }
		case "D":
			return m, func() tea.Msg { return msgs.OpenDemoMsg{Scenario: "failure", Speed: 1} }
		case "r":
			m.reload()
		}
	}
	return m, nil
}

func (m HomeModel) openSelected() tea.Cmd {
	if len(m.plans) == 0 {
		return nil
	}
	dir := m.plans[m.cursor].Dir
	return func() tea.Msg { return msgs.OpenPlanMsg{Dir: dir} }
}

// View implements tea.Model.
func (m HomeModel) View() string {
	title := styles.TitleStyle.Render("planvas — stored plans")

	var body string
	switch {
	case m.err != nil:
		body = styles.ErrorStyle.Render(fmt.Sprintf("Failed to read plans: %v", m.err))
	case len(m.plans) == 0:
		body = styles.SubtleStyle.Render("No plans yet. Press d to watch the demo, or run 'planvas demo'.")
	default:
		rows := make([]string, 0, len(m.plans))
		for i, p := range m.plans {
			marker := "  "
			name := p.Name
			if name == "" {
				name = p.ID
			}
			line := name + "  " + summaryFor(p)
			if i == m.cursor {
				marker = styles.SelectedStyle.Render("▸ ")
				line = styles.SelectedStyle.Render(name) + "  " + summaryFor(p)
			}
			rows = append(rows, zone.Mark(homeRowZone(i), marker+line))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	bar := m.statusbar.Render(m.width,
		[]string{"↑/↓ move", "enter open", "d demo", "r refresh", "q quit"}, "")

	gap := m.height - lipgloss.Height(title) - lipgloss.Height(body) - 1
	if gap < 1 {
		gap = 1
	}

	return title + "\n" + body + strings.Repeat("\n", gap) + bar
}

func summaryFor(p planfile.Info) string {
	s := fmt.Sprintf("%d nodes, %d done", p.Nodes, p.Completed)
	if p.Errors > 0 {
		return styles.SubtleStyle.Render(s+", ") + styles.ErrorStyle.Render(fmt.Sprintf("%d failed", p.Errors))
	}
	return styles.SubtleStyle.Render(s)
}
