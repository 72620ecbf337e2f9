package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/planvas/planvas/internal/graph"
	"github.com/planvas/planvas/internal/tui/styles"
)

// MinimapZone is the bubblezone id marking the minimap's clickable area.
const MinimapZone = "minimap"

// Minimap renders a scaled overview of the canvas: one cell per projected
// node, a shaded rectangle for the current viewport, and collapse pills.
type Minimap struct {
	width  int
	height int
}

// NewMinimap creates a minimap with the given content size in cells (the
// rendered panel adds a one-cell border).
func NewMinimap(width, height int) Minimap {
	return Minimap{width: width, height: height}
}

// Size returns the minimap content dimensions.
func (m Minimap) Size() (int, int) { return m.width, m.height }

// Render draws the overview for the given derived view and scroll position.
// The output is wrapped in a border and marked as a click zone.
func (m Minimap) Render(v graph.View, offsetX, offsetY int, vp graph.Viewport) string {
	type cell struct {
		r     rune
		style *lipgloss.Style
	}

	cells := make([]cell, m.width*m.height)
	for i := range cells {
		cells[i] = cell{r: ' '}
	}
	set := func(x, y int, r rune, s *lipgloss.Style) {
		if x < 0 || y < 0 || x >= m.width || y >= m.height {
			return
		}
		cells[y*m.width+x] = cell{r: r, style: s}
	}

	proj := graph.NewProjector(v.Layout)

	vr := proj.ViewRect(offsetX, offsetY, vp)
	for y := vr.Y; y < vr.Y+vr.H; y++ {
		for x := vr.X; x < vr.X+vr.W; x++ {
			set(x, y, '░', &styles.MinimapViewStyle)
		}
	}

	for _, n := range v.Visible.Nodes {
		mx, my := proj.ToMinimap(n.Position.X+graph.NodeWidth/2, n.Position.Y+graph.NodeHeight/2)
		set(mx, my, '▪', nodeStyle(n.Status))
	}
	for _, t := range v.Visible.Toggles {
		if !t.Collapsed {
			continue
		}
		mx, my := proj.ToMinimap(t.Position.X, t.Position.Y)
		set(mx, my, '+', &styles.ToggleStyle)
	}

	var b strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			c := cells[y*m.width+x]
			if c.style == nil {
				b.WriteRune(c.r)
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
	}

	return zone.Mark(MinimapZone, styles.MinimapBorderStyle.Render(b.String()))
}

// CanvasTarget maps a click position relative to the minimap zone back to
// the canvas coordinate it represents. The zone includes the border, so the
// click is shifted by one cell before projecting.
func (m Minimap) CanvasTarget(relX, relY int, v graph.View) (int, int) {
	proj := graph.NewProjector(v.Layout)
	return proj.FromMinimap(relX-1, relY-1)
}

func nodeStyle(s graph.Status) *lipgloss.Style {
	switch s {
	case graph.StatusActive:
		return &styles.NodeActiveStyle
	case graph.StatusCompleted:
		return &styles.NodeCompletedStyle
	case graph.StatusWaiting:
		return &styles.NodeWaitingStyle
	case graph.StatusError:
		return &styles.NodeErrorStyle
	default:
		return &styles.NodePendingStyle
	}
}
