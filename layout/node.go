// Package layout holds the shadow layout tree that mirrors a widget tree,
// and the Solver that computes frames for it.
//
// A Node carries a Style, an ordered list of child nodes, an optional
// MeasureFunc that reports intrinsic content size, and the frame written by
// the last solve. Frames are relative to the parent node.
package layout

// MeasureFunc reports the intrinsic size of a leaf node's content.
// Either available axis may be Undefined, meaning unconstrained; either
// returned axis may be Undefined, meaning "no opinion".
type MeasureFunc func(availableWidth, availableHeight float64) Size

// Node is one element of the layout tree.
type Node struct {
	// Style is the configuration read by the solver.
	Style Style

	children []*Node
	measure  MeasureFunc

	// Computed (set by the solver)
	frame Rect
}

// NewNode creates a new node with DefaultStyle.
func NewNode() *Node {
	return &Node{Style: DefaultStyle()}
}

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// SetChildren replaces the children of the node.
func (n *Node) SetChildren(children []*Node) {
	n.children = children
}

// SetMeasureFunc installs the measure callback. It is only consulted while
// the node has no children.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	n.measure = fn
}

// MeasureFunc returns the installed measure callback, or nil.
func (n *Node) MeasureFunc() MeasureFunc {
	return n.measure
}

// Frame returns the frame computed by the last solve.
func (n *Node) Frame() Rect {
	return n.frame
}

// SetFrame stores a computed frame. Called by solvers.
func (n *Node) SetFrame(r Rect) {
	n.frame = r
}
