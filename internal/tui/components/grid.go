package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/planvas/planvas/internal/tui/styles"
)

// CellClass identifies what a canvas cell renders. Classes are resolved to
// lipgloss styles only when a window is extracted, so the full canvas can be
// painted once per derive and scrolled cheaply.
type CellClass uint8

const (
	CellBlank CellClass = iota
	CellLane
	CellLaneLabel
	CellEdge
	CellCriticalEdge
	CellNodePending
	CellNodeWaiting
	CellNodeActive
	CellNodeCompleted
	CellNodeError
	CellHighlight
	CellToggle
)

// continuation marks the second column of a double-width rune.
const continuation = rune(0)

func classStyle(c CellClass, dim bool) lipgloss.Style {
	if dim {
		return styles.DimStyle
	}
	switch c {
	case CellLane:
		return styles.LaneStyle
	case CellLaneLabel:
		return styles.LaneLabelStyle
	case CellEdge:
		return styles.EdgeStyle
	case CellCriticalEdge:
		return styles.CriticalEdgeStyle
	case CellNodePending:
		return styles.NodePendingStyle
	case CellNodeWaiting:
		return styles.NodeWaitingStyle
	case CellNodeActive:
		return styles.NodeActiveStyle
	case CellNodeCompleted:
		return styles.NodeCompletedStyle
	case CellNodeError:
		return styles.NodeErrorStyle
	case CellHighlight:
		return styles.HighlightStyle
	case CellToggle:
		return styles.ToggleStyle
	default:
		return lipgloss.NewStyle()
	}
}

// Grid is a fixed-size canvas of runes with a render class and dim flag per
// cell. Out-of-range writes are ignored, so callers can paint shapes that
// partially overhang the canvas without bounds arithmetic.
type Grid struct {
	width  int
	height int
	runes  []rune
	class  []CellClass
	dim    []bool
}

// NewGrid creates a blank grid of the given size.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		runes:  make([]rune, width*height),
		class:  make([]CellClass, width*height),
		dim:    make([]bool, width*height),
	}
	for i := range g.runes {
		g.runes[i] = ' '
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Set writes a single cell.
func (g *Grid) Set(x, y int, r rune, c CellClass, dim bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	i := y*g.width + x
	g.runes[i] = r
	g.class[i] = c
	g.dim[i] = dim
}

// DrawText writes a string starting at (x, y), advancing by display width so
// double-width runes occupy two cells.
func (g *Grid) DrawText(x, y int, text string, c CellClass, dim bool) {
	cx := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g.Set(cx, y, r, c, dim)
		if w == 2 {
			g.Set(cx+1, y, continuation, c, dim)
		}
		cx += w
	}
}

// DrawHLine draws a horizontal run of the given rune.
func (g *Grid) DrawHLine(x, y, length int, r rune, c CellClass, dim bool) {
	for i := 0; i < length; i++ {
		g.Set(x+i, y, r, c, dim)
	}
}

// DrawVLine draws a vertical run of the given rune.
func (g *Grid) DrawVLine(x, y, length int, r rune, c CellClass, dim bool) {
	for i := 0; i < length; i++ {
		g.Set(x, y+i, r, c, dim)
	}
}

// DrawBox draws a single-line box border. Interiors are left untouched.
func (g *Grid) DrawBox(x, y, w, h int, c CellClass, dim bool) {
	if w < 2 || h < 2 {
		return
	}
	g.Set(x, y, '┌', c, dim)
	g.Set(x+w-1, y, '┐', c, dim)
	g.Set(x, y+h-1, '└', c, dim)
	g.Set(x+w-1, y+h-1, '┘', c, dim)
	g.DrawHLine(x+1, y, w-2, '─', c, dim)
	g.DrawHLine(x+1, y+h-1, w-2, '─', c, dim)
	g.DrawVLine(x, y+1, h-2, '│', c, dim)
	g.DrawVLine(x+w-1, y+1, h-2, '│', c, dim)
}

// DrawHeavyBox draws a heavy-line box border, used for the selected node.
func (g *Grid) DrawHeavyBox(x, y, w, h int, c CellClass, dim bool) {
	if w < 2 || h < 2 {
		return
	}
	g.Set(x, y, '┏', c, dim)
	g.Set(x+w-1, y, '┓', c, dim)
	g.Set(x, y+h-1, '┗', c, dim)
	g.Set(x+w-1, y+h-1, '┛', c, dim)
	g.DrawHLine(x+1, y, w-2, '━', c, dim)
	g.DrawHLine(x+1, y+h-1, w-2, '━', c, dim)
	g.DrawVLine(x, y+1, h-2, '┃', c, dim)
	g.DrawVLine(x+w-1, y+1, h-2, '┃', c, dim)
}

// Fill paints the interior of a rectangle with a rune.
func (g *Grid) Fill(x, y, w, h int, r rune, c CellClass, dim bool) {
	for row := 0; row < h; row++ {
		g.DrawHLine(x, y+row, w, r, c, dim)
	}
}

// Window extracts a styled view of the region starting at (x, y). Cells
// outside the grid render as blanks, so the window may overhang freely.
// Consecutive cells sharing a class and dim flag are styled as one run.
func (g *Grid) Window(x, y, w, h int) string {
	var b strings.Builder

	for row := 0; row < h; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}

		var run strings.Builder
		runClass := CellBlank
		runDim := false
		started := false

		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(classStyle(runClass, runDim).Render(run.String()))
			run.Reset()
		}

		for col := 0; col < w; col++ {
			gx, gy := x+col, y+row

			r := ' '
			c := CellBlank
			dim := false
			if gx >= 0 && gy >= 0 && gx < g.width && gy < g.height {
				i := gy*g.width + gx
				r = g.runes[i]
				c = g.class[i]
				dim = g.dim[i]
				if r == continuation {
					// A wide rune whose left half is inside the window is
					// already emitted; one clipped at the left edge degrades
					// to a space.
					if col == 0 {
						r = ' '
					} else {
						continue
					}
				}
				// A wide rune clipped at the right edge degrades to a space.
				if col == w-1 && runewidth.RuneWidth(r) == 2 {
					r = ' '
				}
			}

			if !started || c != runClass || dim != runDim {
				flush()
				runClass = c
				runDim = dim
				started = true
			}
			run.WriteRune(r)
		}
		flush()
	}

	return b.String()
}
