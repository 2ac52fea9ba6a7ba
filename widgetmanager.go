package arbor

// WidgetManager aligns every registered widget once per tick, walking the
// running scene depth-first so a node is aligned before its children read
// its box.
type WidgetManager struct {
	director   *Director
	widgets    map[*Node]*Widget
	isAligning bool
}

func newWidgetManager(d *Director) *WidgetManager {
	return &WidgetManager{director: d, widgets: make(map[*Node]*Widget)}
}

// Len returns the number of registered widgets.
func (m *WidgetManager) Len() int { return len(m.widgets) }

// IsAligning reports whether an alignment pass is running.
func (m *WidgetManager) IsAligning() bool { return m.isAligning }

func (m *WidgetManager) add(w *Widget) {
	n := w.node
	m.widgets[n] = w
	if m.director.cfg.EditorMode {
		n.On(EventPositionChanged, w, w.adjustToMove)
		n.On(EventSizeChanged, w, w.adjustToResize)
	}
}

func (m *WidgetManager) remove(w *Widget) {
	n := w.node
	if m.widgets[n] == w {
		delete(m.widgets, n)
	}
	n.Off(EventPositionChanged, w)
	n.Off(EventSizeChanged, w)
}

// Refresh aligns every registered widget under s. The director calls it once
// per tick.
func (m *WidgetManager) Refresh(s *Scene) int {
	return m.visit(s)
}

func (m *WidgetManager) visit(s *Scene) int {
	if s == nil || len(m.widgets) == 0 {
		return 0
	}
	m.isAligning = true
	count := m.visitNode(&s.Node)
	m.isAligning = false
	return count
}

func (m *WidgetManager) visitNode(n *Node) int {
	count := 0
	if w := m.widgets[n]; w != nil && n.parent != nil {
		m.alignToParent(n, w)
		count++
		if !m.director.cfg.EditorMode && w.IsAlignOnce {
			w.SetEnabled(false)
		}
	}
	for _, child := range n.children {
		if child.active {
			count += m.visitNode(child)
		}
	}
	return count
}

// parentSize returns the box a child aligns against. A scene has no box of
// its own: the design resolution is used in editor mode and the visible rect
// otherwise.
func (m *WidgetManager) parentSize(parent *Node) Size {
	if parent.scene != nil {
		if m.director.cfg.EditorMode {
			return m.director.DesignResolution()
		}
		vr := m.director.VisibleRect()
		return Size{vr.Width, vr.Height}
	}
	if parent.sizeProvider == nil {
		return parent.size
	}
	return parent.ContentSize()
}

func (m *WidgetManager) alignToParent(n *Node, w *Widget) {
	parent := n.parent
	parentSize := m.parentSize(parent)
	parentWidth, parentHeight := parentSize.Width, parentSize.Height
	parentAnchor := parent.anchor

	var localLeft, localRight, localBottom, localTop float64
	if parent.scene != nil && !m.director.cfg.EditorMode {
		vr := m.director.VisibleRect()
		localLeft = vr.Left()
		localRight = vr.Right()
		localBottom = vr.Bottom()
		localTop = vr.Top()
	} else {
		localLeft = -parentAnchor.X * parentWidth
		localRight = localLeft + parentWidth
		localBottom = -parentAnchor.Y * parentHeight
		localTop = localBottom + parentHeight
	}

	localLeft += pick(w.isAbsLeft, w.left, w.left*parentWidth)
	localRight -= pick(w.isAbsRight, w.right, w.right*parentWidth)
	localBottom += pick(w.isAbsBottom, w.bottom, w.bottom*parentHeight)
	localTop -= pick(w.isAbsTop, w.top, w.top*parentHeight)

	// Rotation and scale are ignored.
	anchor := n.anchor

	x := n.position.X
	if w.IsStretchWidth() {
		width := localRight - localLeft
		n.SetWidth(width)
		x = localLeft + anchor.X*width
	} else {
		width := n.Width()
		switch {
		case w.IsAlignHorizontalCenter():
			parentCenter := (0.5 - parentAnchor.X) * parentWidth
			x = parentCenter + (anchor.X-0.5)*width
		case w.IsAlignLeft():
			x = localLeft + anchor.X*width
		case w.IsAlignRight():
			x = localRight + anchor.X*width - width
		}
	}

	y := n.position.Y
	if w.IsStretchHeight() {
		height := localTop - localBottom
		n.SetHeight(height)
		y = localBottom + anchor.Y*height
	} else {
		height := n.Height()
		switch {
		case w.IsAlignVerticalCenter():
			parentMiddle := (0.5 - parentAnchor.Y) * parentHeight
			y = parentMiddle + (anchor.Y-0.5)*height
		case w.IsAlignBottom():
			y = localBottom + anchor.Y*height
		case w.IsAlignTop():
			y = localTop + anchor.Y*height - height
		}
	}

	n.SetPosition(x, y)
}
