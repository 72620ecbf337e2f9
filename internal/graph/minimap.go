package graph

// Projector maps between full-canvas coordinates and the scaled minimap
// overview. It is a thin value type derived from a Layout; build a fresh
// one whenever the layout changes.
type Projector struct {
	layout Layout
}

// NewProjector returns a projector for the given layout.
func NewProjector(l Layout) Projector {
	return Projector{layout: l}
}

// ToMinimap scales a canvas coordinate into minimap coordinates, clamped
// to the minimap bounds.
func (pr Projector) ToMinimap(x, y int) (int, int) {
	mx := int(float64(x) * pr.layout.ScaleX)
	my := int(float64(y) * pr.layout.ScaleY)
	return clamp(mx, 0, pr.layout.MinimapWidth-1), clamp(my, 0, pr.layout.MinimapHeight-1)
}

// FromMinimap maps a click inside the minimap back to the canvas
// coordinate it represents.
func (pr Projector) FromMinimap(mx, my int) (int, int) {
	if pr.layout.ScaleX == 0 || pr.layout.ScaleY == 0 {
		return 0, 0
	}
	x := int(float64(mx) / pr.layout.ScaleX)
	y := int(float64(my) / pr.layout.ScaleY)
	return clamp(x, 0, pr.layout.Canvas.W-1), clamp(y, 0, pr.layout.Canvas.H-1)
}

// ViewRect returns the viewport rectangle in minimap coordinates given the
// current scroll offset and viewport size. The rectangle is at least one
// cell in each dimension so it stays visible at small scales.
func (pr Projector) ViewRect(offsetX, offsetY int, vp Viewport) Rect {
	x := int(float64(offsetX) * pr.layout.ScaleX)
	y := int(float64(offsetY) * pr.layout.ScaleY)
	w := int(float64(vp.Width) * pr.layout.ScaleX)
	h := int(float64(vp.Height) * pr.layout.ScaleY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Rect{
		X: clamp(x, 0, pr.layout.MinimapWidth-1),
		Y: clamp(y, 0, pr.layout.MinimapHeight-1),
		W: w,
		H: h,
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
