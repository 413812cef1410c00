package layout

// Solver computes frames for every node of a tree.
//
// Solve must write a frame into root and every descendant. width and height
// are the space available to the root; either may be Undefined.
type Solver interface {
	Solve(root *Node, width, height float64, dir Direction)
}

// FlexSolver is the default single-line flexbox Solver.
type FlexSolver struct{}

// Solve implements Solver.
func (FlexSolver) Solve(root *Node, width, height float64, dir Direction) {
	Calculate(root, width, height, dir)
}

// Calculate performs layout calculation on the tree rooted at root.
//
// A root dimension with an explicit style value is sized exactly; an auto
// dimension fits its content, bounded by the available space when that is
// defined.
func Calculate(root *Node, availableWidth, availableHeight float64, dir Direction) {
	if root == nil {
		return
	}
	if dir == DirectionInherit {
		dir = DirectionLTR
	}

	style := &root.Style
	c := constraint{
		parentWidth:  availableWidth,
		parentHeight: availableHeight,
	}
	c.width, c.widthMode = rootAxis(style, true, availableWidth, style.Margin.Horizontal())
	c.height, c.heightMode = rootAxis(style, false, availableHeight, style.Margin.Vertical())

	size := layoutNode(root, c, dir, true)
	root.SetFrame(NewRect(style.Margin.Left, style.Margin.Top, size.Width, size.Height))
	debugLog("calculate: root %.1fx%.1f in avail(%v,%v)", size.Width, size.Height, availableWidth, availableHeight)
}

func rootAxis(style *Style, horizontal bool, available, margin float64) (float64, sizingMode) {
	if r := style.DimensionFor(horizontal).Resolve(available); !IsUndefined(r) {
		return clampAxis(r, style.MinFor(horizontal), style.MaxFor(horizontal), available), modeExactly
	}
	if !IsUndefined(available) {
		return max(0, available-margin), modeAtMost
	}
	return Undefined, modeUndefined
}
