package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/planvas/planvas/internal/graph"
)

// Canvasport is a two-dimensional scroll window over the canvas grid. It
// tracks offsets only; the grid itself is owned by the canvas view and
// re-extracted through Grid.Window on every render.
type Canvasport struct {
	width        int
	height       int
	canvasWidth  int
	canvasHeight int
	xOffset      int
	yOffset      int
}

// NewCanvasport creates a viewport of the given visible size.
func NewCanvasport(width, height int) Canvasport {
	return Canvasport{width: width, height: height}
}

// SetSize updates the visible area and clamps the offsets.
func (c *Canvasport) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.clamp()
}

// SetCanvasSize updates the scrollable extent and clamps the offsets.
func (c *Canvasport) SetCanvasSize(width, height int) {
	c.canvasWidth = width
	c.canvasHeight = height
	c.clamp()
}

// Size returns the visible width and height.
func (c Canvasport) Size() (int, int) { return c.width, c.height }

// Offsets returns the current scroll position.
func (c Canvasport) Offsets() (int, int) { return c.xOffset, c.yOffset }

// Viewport returns the visible size as a layout input.
func (c Canvasport) Viewport() graph.Viewport {
	return graph.Viewport{Width: c.width, Height: c.height}
}

// ScrollBy moves the window by a delta, clamped to the canvas.
func (c *Canvasport) ScrollBy(dx, dy int) {
	c.xOffset += dx
	c.yOffset += dy
	c.clamp()
}

// ScrollTo moves the window to an absolute offset, clamped to the canvas.
func (c *Canvasport) ScrollTo(x, y int) {
	c.xOffset = x
	c.yOffset = y
	c.clamp()
}

// CenterOn scrolls so the given rectangle sits in the middle of the window.
func (c *Canvasport) CenterOn(r graph.Rect) {
	c.ScrollTo(r.X+r.W/2-c.width/2, r.Y+r.H/2-c.height/2)
}

// EnsureVisible scrolls the minimum amount needed for the rectangle to sit
// at least margin cells inside the window. When the rectangle is already
// comfortably inside, the window does not move; the return value reports
// whether a scroll happened.
func (c *Canvasport) EnsureVisible(r graph.Rect, margin int) bool {
	ox, oy := c.xOffset, c.yOffset

	if r.X < c.xOffset+margin {
		c.xOffset = r.X - margin
	} else if r.X+r.W > c.xOffset+c.width-margin {
		c.xOffset = r.X + r.W - c.width + margin
	}

	if r.Y < c.yOffset+margin {
		c.yOffset = r.Y - margin
	} else if r.Y+r.H > c.yOffset+c.height-margin {
		c.yOffset = r.Y + r.H - c.height + margin
	}

	c.clamp()
	return c.xOffset != ox || c.yOffset != oy
}

// Update handles scrolling keys and mouse wheel events.
func (c Canvasport) Update(msg tea.Msg) Canvasport {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			c.ScrollBy(0, -1)
		case "down", "j":
			c.ScrollBy(0, 1)
		case "left", "h":
			c.ScrollBy(-2, 0)
		case "right", "l":
			c.ScrollBy(2, 0)
		case "pgup", "ctrl+u":
			c.ScrollBy(0, -c.height/2)
		case "pgdown", "ctrl+d":
			c.ScrollBy(0, c.height/2)
		case "home", "g":
			c.ScrollTo(c.xOffset, 0)
		case "end", "G":
			c.ScrollTo(c.xOffset, c.canvasHeight)
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				c.ScrollBy(-3, 0)
			} else {
				c.ScrollBy(0, -3)
			}
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				c.ScrollBy(3, 0)
			} else {
				c.ScrollBy(0, 3)
			}
		}
	}
	return c
}

func (c *Canvasport) clamp() {
	maxX := c.canvasWidth - c.width
	if maxX < 0 {
		maxX = 0
	}
	maxY := c.canvasHeight - c.height
	if maxY < 0 {
		maxY = 0
	}
	if c.xOffset > maxX {
		c.xOffset = maxX
	}
	if c.xOffset < 0 {
		c.xOffset = 0
	}
	if c.yOffset > maxY {
		c.yOffset = maxY
	}
	if c.yOffset < 0 {
		c.yOffset = 0
	}
}
