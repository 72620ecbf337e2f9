package graph

// Rendered node box size in cells. Positions address a box's top-left
// corner; layout math accounts for the full box extent.
const (
	NodeWidth  = 22
	NodeHeight = 3
)

// Canvas padding and lane sizing, in cells.
const (
	CanvasPad     = 6
	LanePad       = 1
	LaneMinHeight = NodeHeight + 2*LanePad
)

// Viewport is the size of the scrollable surface.
type Viewport struct {
	Width  int
	Height int
}

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Lane is a horizontal band grouping the visible nodes of one stage.
type Lane struct {
	Stage  Stage
	Top    int
	Height int
}

// Layout is the computed canvas geometry for one (nodes, viewport) pair.
type Layout struct {
	Canvas Rect
	Lanes  []Lane

	// Minimap scale factors: minimap size over canvas size.
	ScaleX float64
	ScaleY float64

	MinimapWidth  int
	MinimapHeight int
}

// ComputeLayout derives the canvas bounding box, stage lanes, and minimap
// scale from the visible nodes and the current viewport. The canvas is at
// least viewport-sized and grows to cover the rightmost/bottommost node
// plus a fixed padding margin. A lane exists for each known stage present
// among the visible nodes, with a floor on its height so a single-node
// stage still renders a usable band.
//
// Pure function of its inputs; recompute whenever nodes or viewport change.
func ComputeLayout(nodes []Node, vp Viewport, minimapW, minimapH int) Layout {
	maxX, maxY := 0, 0
	for _, n := range nodes {
		if r := n.Position.X + NodeWidth; r > maxX {
			maxX = r
		}
		if b := n.Position.Y + NodeHeight; b > maxY {
			maxY = b
		}
	}

	w := maxX + CanvasPad
	if w < vp.Width {
		w = vp.Width
	}
	h := maxY + CanvasPad
	if h < vp.Height {
		h = vp.Height
	}

	l := Layout{
		Canvas:        Rect{X: 0, Y: 0, W: w, H: h},
		Lanes:         stageLanes(nodes),
		MinimapWidth:  minimapW,
		MinimapHeight: minimapH,
	}
	if w > 0 {
		l.ScaleX = float64(minimapW) / float64(w)
	}
	if h > 0 {
		l.ScaleY = float64(minimapH) / float64(h)
	}
	return l
}

// NodeRect returns the cell rectangle a node's box occupies.
func NodeRect(n Node) Rect {
	return Rect{X: n.Position.X, Y: n.Position.Y, W: NodeWidth, H: NodeHeight}
}

func stageLanes(nodes []Node) []Lane {
	type span struct {
		min, max int
		seen     bool
	}
	spans := map[Stage]*span{}
	for _, n := range nodes {
		s, ok := spans[n.Stage]
		if !ok {
			s = &span{}
			spans[n.Stage] = s
		}
		top := n.Position.Y
		bottom := n.Position.Y + NodeHeight
		if !s.seen || top < s.min {
			s.min = top
		}
		if !s.seen || bottom > s.max {
			s.max = bottom
		}
		s.seen = true
	}

	// Stages iterates in lane order so output is deterministic.
	var lanes []Lane
	for _, st := range Stages {
		s, ok := spans[st]
		if !ok {
			continue
		}
		top := s.min - LanePad
		height := s.max - s.min + 2*LanePad
		if height < LaneMinHeight {
			height = LaneMinHeight
		}
		lanes = append(lanes, Lane{Stage: st, Top: top, Height: height})
	}
	return lanes
}
