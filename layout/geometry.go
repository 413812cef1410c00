package layout

import "math"

// Size is a width/height pair. Either axis may be Undefined.
type Size struct {
	Width, Height float64
}

// IsZero returns true if both dimensions are exactly zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect represents a rectangle. X and Y are the top-left corner relative to
// the parent; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Round snaps the rect to a pixel grid of the given scale (points per pixel
// inverse). Edges are rounded rather than sizes so adjacent rects stay flush.
// A non-positive scale returns r unchanged.
func (r Rect) Round(scale float64) Rect {
	if scale <= 0 {
		return r
	}
	snap := func(v float64) float64 {
		return math.Round(v*scale) / scale
	}
	x, y := snap(r.X), snap(r.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  snap(r.X+r.Width) - x,
		Height: snap(r.Y+r.Height) - y,
	}
}

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}
