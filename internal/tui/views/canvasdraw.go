package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/tui/components"
	"github.com/planvas/planvas/internal/tui/styles"
)

// paintCanvas renders the derived view into a full-size canvas grid. Paint
// order matters: lanes first, then edges, then node boxes over them, then
// toggle pills. The grid is repainted once per derive and windowed per
// frame, so scrolling never repaints.
func paintCanvas(v graph.View, s *graph.Store) (*components.Grid, []toggleHit) {
	g := components.NewGrid(v.Layout.Canvas.W, v.Layout.Canvas.H)

	dimmed := func(id string) bool { return v.Focus != nil && !v.Focus[id] }

	for _, lane := range v.Layout.Lanes {
		g.DrawHLine(0, lane.Top, v.Layout.Canvas.W, '┄', components.CellLane, false)
		g.DrawText(2, lane.Top, " "+strings.ToUpper(string(lane.Stage))+" ", components.CellLaneLabel, false)
	}

	byID := map[string]graph.Node{}
	for _, n := range v.Visible.Nodes {
		byID[n.ID] = n
	}
	for _, e := range v.Visible.Edges {
		class := components.CellEdge
		if v.Critical.Edges[e.Key()] {
			class = components.CellCriticalEdge
		}
		drawEdge(g, byID[e.Source], byID[e.Target], class, dimmed(e.Source) || dimmed(e.Target))
	}

	for _, n := range v.Visible.Nodes {
		drawNode(g, n,
			n.ID == s.SelectedNodeID(),
			n.ID == s.HighlightNodeID(),
			dimmed(n.ID))
	}

	var hits []toggleHit
	for _, t := range v.Visible.Toggles {
		label := "⊟ collapse"
		if t.Collapsed {
			label = fmt.Sprintf("⊞ %d hidden", t.HiddenCount)
		}
		x := t.Position.X + graph.NodeWidth + 2
		y := t.Position.Y + graph.NodeHeight - 1
		g.DrawText(x, y, label, components.CellToggle, false)
		hits = append(hits, toggleHit{
			id:   t.ID,
			rect: graph.Rect{X: x, Y: y, W: runewidth.StringWidth(label), H: 1},
		})
	}

	return g, hits
}

func nodeClass(s graph.Status) components.CellClass {
	switch s {
	case graph.StatusActive:
		return components.CellNodeActive
	case graph.StatusCompleted:
		return components.CellNodeCompleted
	case graph.StatusWaiting:
		return components.CellNodeWaiting
	case graph.StatusError:
		return components.CellNodeError
	default:
		return components.CellNodePending
	}
}

func statusGlyph(s graph.Status) string {
	switch s {
	case graph.StatusActive:
		return "●"
	case graph.StatusCompleted:
		return "✓"
	case graph.StatusWaiting:
		return "◍"
	case graph.StatusError:
		return "✗"
	default:
		return "◌"
	}
}

func drawNode(g *components.Grid, n graph.Node, selected, highlighted, dim bool) {
	class := nodeClass(n.Status)
	if highlighted {
		class = components.CellHighlight
	}

	r := graph.NodeRect(n)
	// Blank the interior so lane and edge lines do not bleed through.
	g.Fill(r.X, r.Y, r.W, r.H, ' ', class, dim)
	if selected {
		g.DrawHeavyBox(r.X, r.Y, r.W, r.H, class, dim)
	} else {
		g.DrawBox(r.X, r.Y, r.W, r.H, class, dim)
	}

	label := n.Label
	if label == "" {
		label = n.ID
	}
	text := statusGlyph(n.Status) + " " + ansi.Truncate(label, graph.NodeWidth-6, "…")
	g.DrawText(r.X+2, r.Y+1, text, class, dim)

	if n.PendingInstruction != "" {
		g.Set(r.X+r.W-2, r.Y, '!', components.CellNodeError, dim)
	}
}

// drawEdge routes an orthogonal connector from the source's right edge to
// the target's left edge, splitting vertical travel at the midpoint. Edges
// that run right-to-left are routed underneath both boxes instead.
func drawEdge(g *components.Grid, src, dst graph.Node, class components.CellClass, dim bool) {
	x0 := src.Position.X + graph.NodeWidth
	y0 := src.Position.Y + graph.NodeHeight/2
	x1 := dst.Position.X - 1
	y1 := dst.Position.Y + graph.NodeHeight/2

	if x1 >= x0 {
		if y0 == y1 {
			g.DrawHLine(x0, y0, x1-x0, '─', class, dim)
		} else {
			mid := x0 + (x1-x0)/2
			g.DrawHLine(x0, y0, mid-x0, '─', class, dim)
			if y1 > y0 {
				g.Set(mid, y0, '┐', class, dim)
				g.DrawVLine(mid, y0+1, y1-y0-1, '│', class, dim)
				g.Set(mid, y1, '└', class, dim)
			} else {
				g.Set(mid, y0, '┘', class, dim)
				g.DrawVLine(mid, y1+1, y0-y1-1, '│', class, dim)
				g.Set(mid, y1, '┌', class, dim)
			}
			g.DrawHLine(mid+1, y1, x1-mid-1, '─', class, dim)
		}
		g.Set(x1, y1, '▶', class, dim)
		return
	}

	// Back edge: drop below both boxes and come around.
	sb := src.Position.Y + graph.NodeHeight
	db := dst.Position.Y + graph.NodeHeight
	row := sb
	if db > row {
		row = db
	}
	row++

	sx := src.Position.X + graph.NodeWidth/2
	dx := dst.Position.X + graph.NodeWidth/2

	g.DrawVLine(sx, sb, row-sb, '│', class, dim)
	lo, hi := dx, sx
	if lo > hi {
		lo, hi = hi, lo
	}
	g.DrawHLine(lo, row, hi-lo+1, '─', class, dim)
	g.DrawVLine(dx, db+1, row-db-1, '│', class, dim)
	g.Set(dx, db, '▲', class, dim)
}

// View implements tea.Model.
func (m CanvasModel) View() string {
	if m.err != nil {
		return styles.ErrorStyle.Render(fmt.Sprintf("Failed to load plan: %v", m.err)) +
			"\n\n" + styles.SubtleStyle.Render("esc to go back")
	}
	if m.grid == nil {
		return styles.SubtleStyle.Render("Loading plan...")
	}

	w, h := m.canvasSize()
	offX, offY := m.port.Offsets()
	canvas := zone.Mark(CanvasZone, m.grid.Window(offX, offY, w, h))

	right := m.minimap.Render(m.view, offX, offY, m.port.Viewport())
	if m.detailOpen {
		right = lipgloss.JoinVertical(lipgloss.Left, right, m.detailView())
	}

	parts := []string{
		m.titleLine(),
		lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", right),
	}
	if m.prompt != nil {
		parts = append(parts, m.promptLine())
	}
	parts = append(parts, m.statusLine())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m CanvasModel) detailView() string {
	sel := m.store.SelectedNodeID()
	n := m.store.Plan().NodeByID(sel)
	if n == nil {
		return ""
	}

	label := n.Label
	if label == "" {
		label = n.ID
	}

	lines := []string{
		styles.SelectedStyle.Render(ansi.Truncate(label, m.cfg.Minimap.Width, "…")),
		styles.SubtleStyle.Render(fmt.Sprintf("%s · %s · %s", n.Kind, n.Stage, n.Status)),
	}
	if n.PendingInstruction != "" {
		lines = append(lines, styles.ErrorStyle.Render("! "+ansi.Truncate(n.PendingInstruction, m.cfg.Minimap.Width, "…")))
	}
	lines = append(lines, m.logview.View())

	return strings.Join(lines, "\n")
}

func (m CanvasModel) promptLine() string {
	return styles.ErrorStyle.Render(
		fmt.Sprintf("✗ %s needs a decision: %s", m.prompt.nodeID, m.prompt.instruction)) +
		styles.SubtleStyle.Render("  (enter to dismiss)")
}

func (m CanvasModel) statusLine() string {
	hints := m.help.ShortHelpView([]key.Binding{
		m.keys.JumpActive,
		m.keys.JumpError,
		m.keys.Toggle,
		m.keys.Focus,
		m.keys.FollowFlip,
		m.keys.Detail,
		m.keys.ClearOrBack,
		m.keys.Quit,
	})
	return m.statusbar.Render(m.width, []string{hints}, m.statusRight())
}
