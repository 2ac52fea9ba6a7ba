package arbor

import "math"

// LayoutType selects the layout policy.
type LayoutType uint8

const (
	LayoutNone       LayoutType = iota // no positioning; optional container fit
	LayoutHorizontal                   // single row
	LayoutVertical                     // single column
	LayoutGrid                         // rows or columns with wrapping
)

// ResizeMode selects what a layout resizes.
type ResizeMode uint8

const (
	ResizeNone      ResizeMode = iota
	ResizeContainer            // the layout node fits its children
	ResizeChildren             // children are resized to fit the layout node
)

// AxisDirection is the axis a grid fills first.
type AxisDirection uint8

const (
	AxisHorizontal AxisDirection = iota
	AxisVertical
)

// VerticalDirection is the order children are stacked vertically.
type VerticalDirection uint8

const (
	BottomToTop VerticalDirection = iota
	TopToBottom
)

// HorizontalDirection is the order children are placed horizontally.
type HorizontalDirection uint8

const (
	LeftToRight HorizontalDirection = iota
	RightToLeft
)

// Layout positions the children of its node. Any configuration change, a
// change of the node's size or anchor, a child being added, removed or
// re-sorted, or a child's size, position, anchor or activity changing marks
// the layout dirty; a dirty layout is resolved once in the next LateUpdate.
type Layout struct {
	BaseComponent

	layoutType          LayoutType
	resizeMode          ResizeMode
	cellSize            Size
	startAxis           AxisDirection
	padding             float64
	spacingX            float64
	spacingY            float64
	verticalDirection   VerticalDirection
	horizontalDirection HorizontalDirection

	layoutSize  Size
	layoutDirty bool
	watched     []*Node
}

// NewLayout returns a layout with 40x40 cells, top-to-bottom and
// left-to-right order.
func NewLayout() *Layout {
	return &Layout{
		cellSize:          Size{40, 40},
		verticalDirection: TopToBottom,
		layoutSize:        Size{300, 200},
		layoutDirty:       true,
	}
}

// Type returns the layout policy.
func (l *Layout) Type() LayoutType { return l.layoutType }

// SetType sets the layout policy.
func (l *Layout) SetType(t LayoutType) {
	l.layoutType = t
	l.markDirty()
}

// ResizeMode returns what the layout resizes.
func (l *Layout) ResizeMode() ResizeMode { return l.resizeMode }

// SetResizeMode sets what the layout resizes. ResizeChildren is ignored while
// the type is LayoutNone.
func (l *Layout) SetResizeMode(m ResizeMode) {
	if l.layoutType == LayoutNone && m == ResizeChildren {
		return
	}
	l.resizeMode = m
	l.markDirty()
}

// CellSize returns the grid cell size used when resizing children.
func (l *Layout) CellSize() Size { return l.cellSize }

// SetCellSize sets the grid cell size.
func (l *Layout) SetCellSize(s Size) {
	l.cellSize = s
	l.markDirty()
}

// StartAxis returns the axis a grid fills first.
func (l *Layout) StartAxis() AxisDirection { return l.startAxis }

// SetStartAxis sets the axis a grid fills first.
func (l *Layout) SetStartAxis(a AxisDirection) {
	l.startAxis = a
	l.markDirty()
}

// Padding returns the inner margin on every side.
func (l *Layout) Padding() float64 { return l.padding }

// SetPadding sets the inner margin on every side.
func (l *Layout) SetPadding(p float64) {
	l.padding = p
	l.markDirty()
}

// SpacingX returns the horizontal gap between adjacent children.
func (l *Layout) SpacingX() float64 { return l.spacingX }

// SetSpacingX sets the horizontal gap between adjacent children.
func (l *Layout) SetSpacingX(s float64) {
	l.spacingX = s
	l.markDirty()
}

// SpacingY returns the vertical gap between adjacent children.
func (l *Layout) SpacingY() float64 { return l.spacingY }

// SetSpacingY sets the vertical gap between adjacent children.
func (l *Layout) SetSpacingY(s float64) {
	l.spacingY = s
	l.markDirty()
}

// VerticalDirection returns the vertical stacking order.
func (l *Layout) VerticalDirection() VerticalDirection { return l.verticalDirection }

// SetVerticalDirection sets the vertical stacking order.
func (l *Layout) SetVerticalDirection(v VerticalDirection) {
	l.verticalDirection = v
	l.markDirty()
}

// HorizontalDirection returns the horizontal placement order.
func (l *Layout) HorizontalDirection() HorizontalDirection { return l.horizontalDirection }

// SetHorizontalDirection sets the horizontal placement order.
func (l *Layout) SetHorizontalDirection(h HorizontalDirection) {
	l.horizontalDirection = h
	l.markDirty()
}

// Dirty reports whether a resolution is pending.
func (l *Layout) Dirty() bool { return l.layoutDirty }

func (l *Layout) markDirty() { l.layoutDirty = true }

// OnLoad adopts the stored layout size when the node has none and subscribes
// to the node and its children.
func (l *Layout) OnLoad() {
	n := l.node
	if n.RawContentSize() == (Size{}) && n.sizeProvider == nil {
		n.SetContentSize(l.layoutSize.Width, l.layoutSize.Height)
	}
	n.On(EventSizeChanged, l, func(Event) { l.resized() })
	n.On(EventAnchorChanged, l, func(Event) { l.markDirty() })
	n.On(EventChildAdded, l, l.childrenAddOrDeleted)
	n.On(EventChildRemoved, l, l.childrenAddOrDeleted)
	n.On(EventChildReorder, l, func(Event) { l.markDirty() })
	l.updateChildrenEventListener()
}

// OnDestroy drops the subscriptions on the children.
func (l *Layout) OnDestroy() {
	for _, c := range l.watched {
		c.TargetOff(l)
	}
	l.watched = nil
}

func (l *Layout) updateChildrenEventListener() {
	dirty := func(Event) { l.markDirty() }
	for _, c := range l.watched {
		if c.parent != l.node {
			c.TargetOff(l)
		}
	}
	l.watched = l.watched[:0]
	for _, c := range l.node.children {
		c.On(EventSizeChanged, l, dirty)
		c.On(EventPositionChanged, l, dirty)
		c.On(EventAnchorChanged, l, dirty)
		c.On(EventActiveInHierarchyChanged, l, dirty)
		l.watched = append(l.watched, c)
	}
}

func (l *Layout) childrenAddOrDeleted(Event) {
	l.updateChildrenEventListener()
	l.markDirty()
}

func (l *Layout) resized() {
	l.layoutSize = l.node.ContentSize()
	l.markDirty()
}

// LateUpdate resolves the layout if it is dirty and the node has children.
func (l *Layout) LateUpdate(float64) {
	l.UpdateLayout()
}

// UpdateLayout resolves a pending layout immediately.
func (l *Layout) UpdateLayout() {
	if l.node == nil || !l.layoutDirty || len(l.node.children) == 0 {
		return
	}
	l.doLayout()
	l.layoutDirty = false
}

// positionFn computes a child's cross-axis coordinate from the accumulated
// size of the closed rows (or columns) and the row index.
type positionFn func(child *Node, offset float64, line int) float64

// doLayoutHorizontally places the active children in a row starting at the
// padded inner edge. With rowBreak a child that would cross the far edge
// starts a new row. Positions are written only when commit is set; the
// returned value is the furthest vertical extent reached, used to size a grid
// container. ok is false when no child was visited.
func (l *Layout) doLayoutHorizontally(baseWidth float64, rowBreak bool, fnPositionY positionFn, commit bool) (boundary float64, ok bool) {
	n := l.node
	layoutAnchor := n.anchor
	children := n.children

	sign := 1.0
	leftBoundaryOfLayout := -layoutAnchor.X * baseWidth
	if l.horizontalDirection == RightToLeft {
		sign = -1
		leftBoundaryOfLayout = (1 - layoutAnchor.X) * baseWidth
	}

	nextX := leftBoundaryOfLayout + sign*l.padding - sign*l.spacingX
	rowMaxHeight := 0.0
	tempMaxHeight := 0.0
	secondMaxHeight := 0.0
	row := 0
	var maxHeightChildAnchor Vec2

	newChildWidth := l.cellSize.Width
	if l.layoutType != LayoutGrid && l.resizeMode == ResizeChildren {
		count := float64(len(children))
		newChildWidth = (baseWidth - 2*l.padding - (count-1)*l.spacingX) / count
	}

	for _, child := range children {
		if !child.activeInHierarchy {
			continue
		}
		if l.resizeMode == ResizeChildren {
			child.SetWidth(newChildWidth)
			if l.layoutType == LayoutGrid {
				child.SetHeight(l.cellSize.Height)
			}
		}

		childWidth, childHeight := child.Width(), child.Height()
		anchorX := child.anchor.X

		if secondMaxHeight > tempMaxHeight {
			tempMaxHeight = secondMaxHeight
		}
		if childHeight >= tempMaxHeight {
			secondMaxHeight = tempMaxHeight
			tempMaxHeight = childHeight
			maxHeightChildAnchor = child.anchor
		}

		if l.horizontalDirection == RightToLeft {
			anchorX = 1 - child.anchor.X
		}
		nextX = nextX + sign*anchorX*childWidth + sign*l.spacingX
		rightBoundaryOfChild := sign * (1 - anchorX) * childWidth

		if rowBreak {
			rowBreakBoundary := nextX + rightBoundaryOfChild + sign*l.padding
			leftToRightBreak := l.horizontalDirection == LeftToRight && rowBreakBoundary > (1-layoutAnchor.X)*baseWidth
			rightToLeftBreak := l.horizontalDirection == RightToLeft && rowBreakBoundary < -layoutAnchor.X*baseWidth

			if leftToRightBreak || rightToLeftBreak {
				if childHeight >= tempMaxHeight {
					if secondMaxHeight == 0 {
						secondMaxHeight = tempMaxHeight
					}
					rowMaxHeight += secondMaxHeight
					secondMaxHeight = tempMaxHeight
				} else {
					rowMaxHeight += tempMaxHeight
					secondMaxHeight = childHeight
					tempMaxHeight = 0
				}
				nextX = leftBoundaryOfLayout + sign*(l.padding+anchorX*childWidth)
				row++
			}
		}

		finalPositionY := fnPositionY(child, rowMaxHeight, row)
		if baseWidth >= childWidth+2*l.padding && commit {
			child.SetPosition(nextX, finalPositionY)
		}

		topMargin := tempMaxHeight
		if tempMaxHeight == 0 {
			topMargin = childHeight
		}
		if l.verticalDirection == TopToBottom {
			if !ok {
				boundary = n.size.Height
			}
			edge := finalPositionY - (topMargin*maxHeightChildAnchor.Y + l.padding)
			if edge < boundary {
				boundary = edge
			}
		} else {
			if !ok {
				boundary = -n.size.Height
			}
			edge := finalPositionY + (topMargin*maxHeightChildAnchor.Y + l.padding)
			if edge > boundary {
				boundary = edge
			}
		}
		ok = true

		nextX += rightBoundaryOfChild
	}
	return boundary, ok
}

// doLayoutVertically mirrors doLayoutHorizontally on the vertical axis.
func (l *Layout) doLayoutVertically(baseHeight float64, columnBreak bool, fnPositionX positionFn, commit bool) (boundary float64, ok bool) {
	n := l.node
	layoutAnchor := n.anchor
	children := n.children

	sign := 1.0
	bottomBoundaryOfLayout := -layoutAnchor.Y * baseHeight
	if l.verticalDirection == TopToBottom {
		sign = -1
		bottomBoundaryOfLayout = (1 - layoutAnchor.Y) * baseHeight
	}

	nextY := bottomBoundaryOfLayout + sign*l.padding - sign*l.spacingY
	columnMaxWidth := 0.0
	tempMaxWidth := 0.0
	secondMaxWidth := 0.0
	column := 0
	var maxWidthChildAnchor Vec2

	newChildHeight := l.cellSize.Height
	if l.layoutType != LayoutGrid && l.resizeMode == ResizeChildren {
		count := float64(len(children))
		newChildHeight = (baseHeight - 2*l.padding - (count-1)*l.spacingY) / count
	}

	for _, child := range children {
		if !child.activeInHierarchy {
			continue
		}
		if l.resizeMode == ResizeChildren {
			child.SetHeight(newChildHeight)
			if l.layoutType == LayoutGrid {
				child.SetWidth(l.cellSize.Width)
			}
		}

		childWidth, childHeight := child.Width(), child.Height()
		anchorY := child.anchor.Y

		if secondMaxWidth > tempMaxWidth {
			tempMaxWidth = secondMaxWidth
		}
		if childWidth >= tempMaxWidth {
			secondMaxWidth = tempMaxWidth
			tempMaxWidth = childWidth
			maxWidthChildAnchor = child.anchor
		}

		if l.verticalDirection == TopToBottom {
			anchorY = 1 - child.anchor.Y
		}
		nextY = nextY + sign*anchorY*childHeight + sign*l.spacingY
		topBoundaryOfChild := sign * (1 - anchorY) * childHeight

		if columnBreak {
			columnBreakBoundary := nextY + topBoundaryOfChild + sign*l.padding
			bottomToTopBreak := l.verticalDirection == BottomToTop && columnBreakBoundary > (1-layoutAnchor.Y)*baseHeight
			topToBottomBreak := l.verticalDirection == TopToBottom && columnBreakBoundary < -layoutAnchor.Y*baseHeight

			if bottomToTopBreak || topToBottomBreak {
				if childWidth >= tempMaxWidth {
					if secondMaxWidth == 0 {
						secondMaxWidth = tempMaxWidth
					}
					columnMaxWidth += secondMaxWidth
					secondMaxWidth = tempMaxWidth
				} else {
					columnMaxWidth += tempMaxWidth
					secondMaxWidth = childWidth
					tempMaxWidth = 0
				}
				nextY = bottomBoundaryOfLayout + sign*(l.padding+anchorY*childHeight)
				column++
			}
		}

		finalPositionX := fnPositionX(child, columnMaxWidth, column)
		if baseHeight >= childHeight+2*l.padding && commit {
			child.SetPosition(finalPositionX, nextY)
		}

		// The last item of a column break leaves tempMaxWidth at 0.
		rightMargin := tempMaxWidth
		if tempMaxWidth == 0 {
			rightMargin = childWidth
		}
		if l.horizontalDirection == RightToLeft {
			if !ok {
				boundary = n.size.Width
			}
			edge := finalPositionX - (rightMargin*maxWidthChildAnchor.X + l.padding)
			if edge < boundary {
				boundary = edge
			}
		} else {
			if !ok {
				boundary = -n.size.Width
			}
			edge := finalPositionX + (rightMargin*maxWidthChildAnchor.X + l.padding)
			if edge > boundary {
				boundary = edge
			}
		}
		ok = true

		nextY += topBoundaryOfChild
	}
	return boundary, ok
}

// doLayoutBasic fits the node's box around the world bounds of all children,
// expressed in the parent's space, keeping the node's position fixed by
// moving its anchor.
func (l *Layout) doLayoutBasic() {
	n := l.node
	if n.parent == nil {
		return
	}
	var all Rect
	for i, child := range n.children {
		box := child.BoundingBoxToWorld()
		if i == 0 {
			all = box
		} else {
			all = all.Union(box)
		}
	}

	leftBottom := n.parent.ConvertToNodeSpaceAR(Vec2{all.X, all.Y})
	rightTop := n.parent.ConvertToNodeSpaceAR(Vec2{all.X + all.Width, all.Y + all.Height})
	newSize := Size{rightTop.X - leftBottom.X, rightTop.Y - leftBottom.Y}
	if newSize.Width == 0 || newSize.Height == 0 {
		return
	}
	pos := n.position
	n.SetAnchorPoint((pos.X-leftBottom.X)/newSize.Width, (pos.Y-leftBottom.Y)/newSize.Height)
	n.SetContentSize(newSize.Width, newSize.Height)
}

// doLayoutGridAxisHorizontal fills rows. With ResizeContainer a dry pass
// measures the wrapped height first, the row origin is recomputed from it and
// a second pass commits the positions.
func (l *Layout) doLayoutGridAxisHorizontal(layoutAnchor Vec2, layoutSize Size) {
	baseWidth := layoutSize.Width

	sign := 1.0
	bottomBoundaryOfLayout := -layoutAnchor.Y * layoutSize.Height
	if l.verticalDirection == TopToBottom {
		sign = -1
		bottomBoundaryOfLayout = (1 - layoutAnchor.Y) * layoutSize.Height
	}

	fnPositionY := func(child *Node, topOffset float64, row int) float64 {
		return bottomBoundaryOfLayout + sign*(topOffset+child.anchor.Y*child.Height()+l.padding+float64(row)*l.spacingY)
	}

	newHeight := layoutSize.Height
	if l.resizeMode == ResizeContainer {
		if boundary, ok := l.doLayoutHorizontally(baseWidth, true, fnPositionY, false); ok {
			newHeight = math.Abs(bottomBoundaryOfLayout - boundary)
		}
		bottomBoundaryOfLayout = -layoutAnchor.Y * newHeight
		if l.verticalDirection == TopToBottom {
			bottomBoundaryOfLayout = (1 - layoutAnchor.Y) * newHeight
		}
	}

	l.doLayoutHorizontally(baseWidth, true, fnPositionY, true)

	if l.resizeMode == ResizeContainer {
		l.node.SetContentSize(baseWidth, newHeight)
	}
}

// doLayoutGridAxisVertical fills columns; see doLayoutGridAxisHorizontal.
func (l *Layout) doLayoutGridAxisVertical(layoutAnchor Vec2, layoutSize Size) {
	baseHeight := layoutSize.Height

	sign := 1.0
	leftBoundaryOfLayout := -layoutAnchor.X * layoutSize.Width
	if l.horizontalDirection == RightToLeft {
		sign = -1
		leftBoundaryOfLayout = (1 - layoutAnchor.X) * layoutSize.Width
	}

	fnPositionX := func(child *Node, leftOffset float64, column int) float64 {
		return leftBoundaryOfLayout + sign*(leftOffset+child.anchor.X*child.Width()+l.padding+float64(column)*l.spacingX)
	}

	newWidth := layoutSize.Width
	if l.resizeMode == ResizeContainer {
		if boundary, ok := l.doLayoutVertically(baseHeight, true, fnPositionX, false); ok {
			newWidth = math.Abs(leftBoundaryOfLayout - boundary)
		}
		leftBoundaryOfLayout = -layoutAnchor.X * newWidth
		if l.horizontalDirection == RightToLeft {
			leftBoundaryOfLayout = (1 - layoutAnchor.X) * newWidth
		}
	}

	l.doLayoutVertically(baseHeight, true, fnPositionX, true)

	if l.resizeMode == ResizeContainer {
		l.node.SetContentSize(newWidth, baseHeight)
	}
}

func (l *Layout) doLayoutGrid() {
	layoutAnchor := l.node.anchor
	layoutSize := l.node.ContentSize()
	switch l.startAxis {
	case AxisHorizontal:
		l.doLayoutGridAxisHorizontal(layoutAnchor, layoutSize)
	case AxisVertical:
		l.doLayoutGridAxisVertical(layoutAnchor, layoutSize)
	}
}

func (l *Layout) horizontalBaseWidth() float64 {
	if l.resizeMode != ResizeContainer {
		return l.node.Width()
	}
	children := l.node.children
	w := 0.0
	for _, c := range children {
		w += c.Width()
	}
	return w + float64(len(children)-1)*l.spacingX + 2*l.padding
}

func (l *Layout) verticalBaseHeight() float64 {
	if l.resizeMode != ResizeContainer {
		return l.node.Height()
	}
	children := l.node.children
	h := 0.0
	for _, c := range children {
		h += c.Height()
	}
	return h + float64(len(children)-1)*l.spacingY + 2*l.padding
}

func (l *Layout) doLayout() {
	n := l.node
	switch l.layoutType {
	case LayoutHorizontal:
		newWidth := l.horizontalBaseWidth()
		l.doLayoutHorizontally(newWidth, false, func(c *Node, _ float64, _ int) float64 { return c.position.Y }, true)
		n.SetWidth(newWidth)
	case LayoutVertical:
		newHeight := l.verticalBaseHeight()
		l.doLayoutVertically(newHeight, false, func(c *Node, _ float64, _ int) float64 { return c.position.X }, true)
		n.SetHeight(newHeight)
	case LayoutNone:
		if l.resizeMode == ResizeContainer {
			l.doLayoutBasic()
		}
	case LayoutGrid:
		l.doLayoutGrid()
	}
}
