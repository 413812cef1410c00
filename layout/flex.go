package layout

import "fmt"

var layoutDebug = false // Set to true for debug logging

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// sizingMode says how a node may size itself along one axis.
type sizingMode uint8

const (
	modeUndefined sizingMode = iota // No constraint, size to content
	modeExactly                     // Size is fixed by the parent
	modeAtMost                      // Size to content, bounded above
)

// constraint is the space a parent offers a child.
type constraint struct {
	width, height         float64
	widthMode, heightMode sizingMode

	// Parent content size, for resolving percentages of min/max.
	parentWidth, parentHeight float64
}

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
type flexItem struct {
	node        *Node
	baseSize    float64
	mainSize    float64
	crossSize   float64
	mainPos     float64
	crossPos    float64
	mainMargin  float64
	crossMargin float64
	grow        float64
	shrink      float64
	align       Align
}

// layoutNode sizes n within c. When perform is set, frames are written for
// every descendant; otherwise only the size is computed.
func layoutNode(n *Node, c constraint, dir Direction, perform bool) Size {
	if n.ChildCount() == 0 {
		return leafSize(n, c)
	}
	return layoutChildren(n, c, dir, perform)
}

// leafSize sizes a node without children, consulting its measure callback.
func leafSize(n *Node, c constraint) Size {
	style := &n.Style
	padW, padH := style.Padding.Horizontal(), style.Padding.Vertical()

	var content Size
	if measure := n.MeasureFunc(); measure != nil && (c.widthMode != modeExactly || c.heightMode != modeExactly) {
		content = measure(
			innerAvailable(c.width, c.widthMode, padW),
			innerAvailable(c.height, c.heightMode, padH),
		)
	}

	width := fitAxis(c.width, c.widthMode, content.Width, padW)
	height := fitAxis(c.height, c.heightMode, content.Height, padH)
	if c.widthMode != modeExactly {
		width = clampAxis(width, style.MinWidth, style.MaxWidth, c.parentWidth)
	}
	if c.heightMode != modeExactly {
		height = clampAxis(height, style.MinHeight, style.MaxHeight, c.parentHeight)
	}
	return Size{Width: width, Height: height}
}

// layoutChildren arranges the children of a node along its main axis.
// This implements a single-line flexbox: base sizes, grow/shrink, min/max,
// justify, then cross-axis sizing and alignment.
func layoutChildren(n *Node, c constraint, dir Direction, perform bool) Size {
	style := &n.Style
	isRow := style.FlexDirection == Row
	pad := style.Padding

	innerW := innerAvailable(c.width, c.widthMode, pad.Horizontal())
	innerH := innerAvailable(c.height, c.heightMode, pad.Vertical())

	mainAvail, crossAvail := innerW, innerH
	mainMode, crossMode := c.widthMode, c.heightMode
	mainPad, crossPad := pad.Horizontal(), pad.Vertical()
	parentMain, parentCross := c.parentWidth, c.parentHeight
	if !isRow {
		mainAvail, crossAvail = crossAvail, mainAvail
		mainMode, crossMode = crossMode, mainMode
		mainPad, crossPad = crossPad, mainPad
		parentMain, parentCross = parentCross, parentMain
	}

	// Phase 1: Compute base sizes and flex factors
	items := make([]flexItem, n.ChildCount())
	var totalBase, totalGrow, totalScaledShrink float64

	for i, child := range n.children {
		cs := &child.Style
		item := &items[i]
		item.node = child
		item.grow = cs.FlexGrow
		item.shrink = cs.FlexShrink
		item.align = style.AlignItems
		if cs.AlignSelf != nil {
			item.align = *cs.AlignSelf
		}
		if isRow {
			item.mainMargin, item.crossMargin = cs.Margin.Horizontal(), cs.Margin.Vertical()
		} else {
			item.mainMargin, item.crossMargin = cs.Margin.Vertical(), cs.Margin.Horizontal()
		}

		basis := cs.FlexBasis.Resolve(mainAvail)
		if IsUndefined(basis) {
			basis = cs.DimensionFor(isRow).Resolve(mainAvail)
		}
		if IsUndefined(basis) {
			// Content-sized: measure with the main axis bounded by what's left
			crossSize, crossSizeMode := item.hypotheticalCross(cs, isRow, crossAvail, crossMode)
			sz := layoutNode(child, item.constraint(isRow,
				shrinkBy(mainAvail, item.mainMargin), boundedMode(mainAvail),
				crossSize, crossSizeMode,
				innerW, innerH), dir, false)
			basis = mainOf(sz, isRow)
		}
		item.baseSize = clampAxis(basis, cs.MinFor(isRow), cs.MaxFor(isRow), mainAvail)

		totalBase += item.baseSize + item.mainMargin
		totalGrow += item.grow
		totalScaledShrink += item.shrink * item.baseSize
	}

	gaps := style.Gap * float64(max(0, len(items)-1))
	used := totalBase + gaps

	// Container main size: fixed by the parent, or fitted to content
	containerMain := mainAvail
	if mainMode != modeExactly {
		containerMain = clampAxis(used+mainPad, style.MinFor(isRow), style.MaxFor(isRow), parentMain) - mainPad
		if mainMode == modeAtMost && containerMain > mainAvail {
			containerMain = mainAvail
		}
		containerMain = max(0, containerMain)
	}

	// Phase 2: Distribute free space, then apply min/max
	free := containerMain - used
	for i := range items {
		item := &items[i]
		item.mainSize = item.baseSize
		switch {
		case free > 0 && totalGrow > 0:
			item.mainSize += free * item.grow / totalGrow
		case free < 0 && totalScaledShrink > 0:
			item.mainSize += free * item.shrink * item.baseSize / totalScaledShrink
		}
		cs := &item.node.Style
		item.mainSize = clampAxis(item.mainSize, cs.MinFor(isRow), cs.MaxFor(isRow), containerMain)
	}

	// Phase 3: Cross-axis sizing
	for i := range items {
		item := &items[i]
		cs := &item.node.Style
		cross := cs.DimensionFor(!isRow).Resolve(crossAvail)
		switch {
		case !IsUndefined(cross):
		case item.align == AlignStretch && crossMode == modeExactly:
			cross = crossAvail - item.crossMargin
		default:
			sz := layoutNode(item.node, item.constraint(isRow,
				item.mainSize, modeExactly,
				shrinkBy(crossAvail, item.crossMargin), boundedMode(crossAvail),
				innerW, innerH), dir, false)
			cross = crossOf(sz, isRow)
		}
		item.crossSize = clampAxis(cross, cs.MinFor(!isRow), cs.MaxFor(!isRow), crossAvail)
	}

	containerCross := crossAvail
	if crossMode != modeExactly {
		containerCross = 0
		for i := range items {
			containerCross = max(containerCross, items[i].crossSize+items[i].crossMargin)
		}
		containerCross = clampAxis(containerCross+crossPad, style.MinFor(!isRow), style.MaxFor(!isRow), parentCross) - crossPad
		if crossMode == modeAtMost && containerCross > crossAvail {
			containerCross = crossAvail
		}
		containerCross = max(0, containerCross)

		// Stretch against the line size now that it is known
		for i := range items {
			item := &items[i]
			cs := &item.node.Style
			if item.align == AlignStretch && cs.DimensionFor(!isRow).IsAuto() {
				item.crossSize = clampAxis(containerCross-item.crossMargin, cs.MinFor(!isRow), cs.MaxFor(!isRow), containerCross)
			}
		}
	}

	// Phase 4: Position children along main axis (justify) and cross axis (align)
	totalUsed := gaps
	for i := range items {
		totalUsed += items[i].mainSize + items[i].mainMargin
	}
	free = containerMain - totalUsed
	offset := calculateJustifyOffset(style.JustifyContent, free, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, free, len(items))

	for i := range items {
		item := &items[i]
		cs := &item.node.Style
		mainStart, crossStart := cs.Margin.Left, cs.Margin.Top
		if !isRow {
			mainStart, crossStart = cs.Margin.Top, cs.Margin.Left
		}
		item.mainPos = offset + mainStart
		offset += item.mainSize + item.mainMargin + style.Gap + spacing

		slot := containerCross - item.crossSize - item.crossMargin
		item.crossPos = crossStart + calculateAlignOffset(item.align, slot)
	}

	width, height := containerMain+mainPad, containerCross+crossPad
	contentW, contentH := containerMain, containerCross
	if !isRow {
		width, height = height, width
		contentW, contentH = contentH, contentW
	}

	// Phase 5: Convert to frames and recurse
	if perform {
		for i := range items {
			item := &items[i]
			frame := NewRect(pad.Left+item.mainPos, pad.Top+item.crossPos, item.mainSize, item.crossSize)
			if !isRow {
				frame = NewRect(pad.Left+item.crossPos, pad.Top+item.mainPos, item.crossSize, item.mainSize)
			}
			if dir == DirectionRTL {
				frame.X = width - frame.X - frame.Width
			}

			layoutNode(item.node, constraint{
				width:        frame.Width,
				height:       frame.Height,
				widthMode:    modeExactly,
				heightMode:   modeExactly,
				parentWidth:  contentW,
				parentHeight: contentH,
			}, dir, true)
			item.node.SetFrame(frame)
		}
	}

	return Size{Width: width, Height: height}
}

// hypotheticalCross returns the cross constraint used while measuring an
// item's content-based main size.
func (it *flexItem) hypotheticalCross(cs *Style, isRow bool, crossAvail float64, crossMode sizingMode) (float64, sizingMode) {
	if v := cs.DimensionFor(!isRow).Resolve(crossAvail); !IsUndefined(v) {
		return v, modeExactly
	}
	if it.align == AlignStretch && crossMode == modeExactly {
		return shrinkBy(crossAvail, it.crossMargin), modeExactly
	}
	return shrinkBy(crossAvail, it.crossMargin), boundedMode(crossAvail)
}

// constraint maps main/cross sizes back onto width/height.
func (it *flexItem) constraint(isRow bool, main float64, mainMode sizingMode, cross float64, crossMode sizingMode, parentW, parentH float64) constraint {
	c := constraint{parentWidth: parentW, parentHeight: parentH}
	if isRow {
		c.width, c.widthMode = main, mainMode
		c.height, c.heightMode = cross, crossMode
	} else {
		c.width, c.widthMode = cross, crossMode
		c.height, c.heightMode = main, mainMode
	}
	return c
}

func mainOf(s Size, isRow bool) float64 {
	if isRow {
		return s.Width
	}
	return s.Height
}

func crossOf(s Size, isRow bool) float64 {
	if isRow {
		return s.Height
	}
	return s.Width
}

// boundedMode is AtMost for a defined size and Undefined otherwise.
func boundedMode(v float64) sizingMode {
	if IsUndefined(v) {
		return modeUndefined
	}
	return modeAtMost
}

// shrinkBy subtracts d from v, keeping Undefined and never going negative.
func shrinkBy(v, d float64) float64 {
	if IsUndefined(v) {
		return Undefined
	}
	return max(0, v-d)
}

// innerAvailable is the content space left inside padding.
func innerAvailable(v float64, mode sizingMode, padding float64) float64 {
	if mode == modeUndefined {
		return Undefined
	}
	return shrinkBy(v, padding)
}

// fitAxis sizes one axis of a leaf from its measured content.
func fitAxis(avail float64, mode sizingMode, content, padding float64) float64 {
	if mode == modeExactly {
		return avail
	}
	if IsUndefined(content) || content < 0 {
		content = 0
	}
	v := content + padding
	if mode == modeAtMost && !IsUndefined(avail) && v > avail {
		v = avail
	}
	return v
}

// clampAxis restricts v to the resolved [min, max] range.
// If min > max, min wins (matches CSS behavior).
func clampAxis(v float64, minV, maxV Value, parent float64) float64 {
	if hi := maxV.Resolve(parent); !IsUndefined(hi) && v > hi {
		v = hi
	}
	if lo := minV.Resolve(parent); !IsUndefined(lo) && v < lo {
		v = lo
	}
	return max(0, v)
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, slot float64) float64 {
	switch align {
	case AlignEnd:
		return slot
	case AlignCenter:
		return slot / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
