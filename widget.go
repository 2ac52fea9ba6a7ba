package arbor

// AlignFlags selects the edges and centers a Widget aligns to.
type AlignFlags uint8

const (
	AlignTop AlignFlags = 1 << iota
	AlignMid            // vertical center
	AlignBottom
	AlignLeft
	AlignCenter // horizontal center
	AlignRight

	alignHorizontal = AlignLeft | AlignCenter | AlignRight
	alignVertical   = AlignTop | AlignMid | AlignBottom
)

// Widget anchors its node's box to its parent's box. Each edge offset is in
// points when its absolute flag is set, otherwise a fraction of the parent's
// size. Aligning both left and right (or top and bottom) stretches the node.
//
// Enabled widgets are registered with the director's WidgetManager, which
// aligns them once per tick.
type Widget struct {
	BaseComponent

	alignFlags AlignFlags

	left, right, top, bottom                     float64
	isAbsLeft, isAbsRight, isAbsTop, isAbsBottom bool

	// IsAlignOnce disables the widget after its first alignment.
	IsAlignOnce bool
}

// NewWidget returns a widget with absolute offsets that aligns once.
func NewWidget() *Widget {
	return &Widget{
		isAbsLeft:   true,
		isAbsRight:  true,
		isAbsTop:    true,
		isAbsBottom: true,
		IsAlignOnce: true,
	}
}

// AlignFlags returns the active alignment flags.
func (w *Widget) AlignFlags() AlignFlags { return w.alignFlags }

func (w *Widget) setAlign(flag AlignFlags, v bool) {
	if (w.alignFlags&flag != 0) == v {
		return
	}
	if !v {
		w.alignFlags &^= flag
		return
	}
	w.alignFlags |= flag
	switch {
	case flag == AlignCenter:
		w.alignFlags &^= AlignLeft | AlignRight
	case flag == AlignMid:
		w.alignFlags &^= AlignTop | AlignBottom
	case flag&alignHorizontal != 0:
		w.alignFlags &^= AlignCenter
	case flag&alignVertical != 0:
		w.alignFlags &^= AlignMid
	}
}

// IsAlignTop reports whether the top edge is aligned.
func (w *Widget) IsAlignTop() bool { return w.alignFlags&AlignTop != 0 }

// SetAlignTop toggles top alignment; enabling it clears vertical centering.
func (w *Widget) SetAlignTop(v bool) { w.setAlign(AlignTop, v) }

// IsAlignBottom reports whether the bottom edge is aligned.
func (w *Widget) IsAlignBottom() bool { return w.alignFlags&AlignBottom != 0 }

// SetAlignBottom toggles bottom alignment; enabling it clears vertical
// centering.
func (w *Widget) SetAlignBottom(v bool) { w.setAlign(AlignBottom, v) }

// IsAlignLeft reports whether the left edge is aligned.
func (w *Widget) IsAlignLeft() bool { return w.alignFlags&AlignLeft != 0 }

// SetAlignLeft toggles left alignment; enabling it clears horizontal
// centering.
func (w *Widget) SetAlignLeft(v bool) { w.setAlign(AlignLeft, v) }

// IsAlignRight reports whether the right edge is aligned.
func (w *Widget) IsAlignRight() bool { return w.alignFlags&AlignRight != 0 }

// SetAlignRight toggles right alignment; enabling it clears horizontal
// centering.
func (w *Widget) SetAlignRight(v bool) { w.setAlign(AlignRight, v) }

// IsAlignHorizontalCenter reports whether the node is centered horizontally.
func (w *Widget) IsAlignHorizontalCenter() bool { return w.alignFlags&AlignCenter != 0 }

// SetAlignHorizontalCenter toggles horizontal centering; enabling it clears
// left and right alignment.
func (w *Widget) SetAlignHorizontalCenter(v bool) { w.setAlign(AlignCenter, v) }

// IsAlignVerticalCenter reports whether the node is centered vertically.
func (w *Widget) IsAlignVerticalCenter() bool { return w.alignFlags&AlignMid != 0 }

// SetAlignVerticalCenter toggles vertical centering; enabling it clears top
// and bottom alignment.
func (w *Widget) SetAlignVerticalCenter(v bool) { w.setAlign(AlignMid, v) }

// IsStretchWidth reports whether both horizontal edges are aligned.
func (w *Widget) IsStretchWidth() bool {
	return w.alignFlags&(AlignLeft|AlignRight) == AlignLeft|AlignRight
}

// IsStretchHeight reports whether both vertical edges are aligned.
func (w *Widget) IsStretchHeight() bool {
	return w.alignFlags&(AlignTop|AlignBottom) == AlignTop|AlignBottom
}

// Left returns the left offset.
func (w *Widget) Left() float64 { return w.left }

// SetLeft sets the left offset.
func (w *Widget) SetLeft(v float64) { w.left = v }

// Right returns the right offset.
func (w *Widget) Right() float64 { return w.right }

// SetRight sets the right offset.
func (w *Widget) SetRight(v float64) { w.right = v }

// Top returns the top offset.
func (w *Widget) Top() float64 { return w.top }

// SetTop sets the top offset.
func (w *Widget) SetTop(v float64) { w.top = v }

// Bottom returns the bottom offset.
func (w *Widget) Bottom() float64 { return w.bottom }

// SetBottom sets the bottom offset.
func (w *Widget) SetBottom(v float64) { w.bottom = v }

// IsAbsoluteLeft reports whether the left offset is in points.
func (w *Widget) IsAbsoluteLeft() bool { return w.isAbsLeft }

// SetAbsoluteLeft selects points (true) or a parent-width fraction (false).
func (w *Widget) SetAbsoluteLeft(v bool) { w.isAbsLeft = v }

// IsAbsoluteRight reports whether the right offset is in points.
func (w *Widget) IsAbsoluteRight() bool { return w.isAbsRight }

// SetAbsoluteRight selects points (true) or a parent-width fraction (false).
func (w *Widget) SetAbsoluteRight(v bool) { w.isAbsRight = v }

// IsAbsoluteTop reports whether the top offset is in points.
func (w *Widget) IsAbsoluteTop() bool { return w.isAbsTop }

// SetAbsoluteTop selects points (true) or a parent-height fraction (false).
func (w *Widget) SetAbsoluteTop(v bool) { w.isAbsTop = v }

// IsAbsoluteBottom reports whether the bottom offset is in points.
func (w *Widget) IsAbsoluteBottom() bool { return w.isAbsBottom }

// SetAbsoluteBottom selects points (true) or a parent-height fraction (false).
func (w *Widget) SetAbsoluteBottom(v bool) { w.isAbsBottom = v }

// OnEnable registers the widget with the manager.
func (w *Widget) OnEnable() {
	w.node.director.widgets.add(w)
}

// OnDisable unregisters the widget.
func (w *Widget) OnDisable() {
	w.node.director.widgets.remove(w)
}

// UpdateAlignment aligns the node to its parent immediately.
func (w *Widget) UpdateAlignment() {
	if w.node == nil || w.node.parent == nil {
		return
	}
	m := w.node.director.widgets
	m.isAligning = true
	m.alignToParent(w.node, w)
	m.isAligning = false
}

// adjustToMove keeps the node where it was moved to by shifting the aligned
// margins. Registered only in editor mode.
func (w *Widget) adjustToMove(ev Event) {
	m := w.node.director.widgets
	if m.isAligning {
		return
	}
	oldPos, _ := ev.Detail.(Vec2)
	newPos := w.node.position
	delta := Vec2{newPos.X - oldPos.X, newPos.Y - oldPos.Y}
	parentSize := m.parentSize(w.node.parent)
	var pct Vec2
	if parentSize.Width != 0 && parentSize.Height != 0 {
		pct = Vec2{delta.X / parentSize.Width, delta.Y / parentSize.Height}
	}

	if w.IsAlignTop() {
		w.top -= pick(w.isAbsTop, delta.Y, pct.Y)
	}
	if w.IsAlignBottom() {
		w.bottom += pick(w.isAbsBottom, delta.Y, pct.Y)
	}
	if w.IsAlignLeft() {
		w.left += pick(w.isAbsLeft, delta.X, pct.X)
	}
	if w.IsAlignRight() {
		w.right -= pick(w.isAbsRight, delta.X, pct.X)
	}
	if w.IsAlignHorizontalCenter() && oldPos.X != newPos.X {
		w.SetAlignHorizontalCenter(false)
	}
	if w.IsAlignVerticalCenter() && oldPos.Y != newPos.Y {
		w.SetAlignVerticalCenter(false)
	}
}

// adjustToResize keeps the node's edges where a resize put them by shifting
// the aligned margins. Registered only in editor mode.
func (w *Widget) adjustToResize(ev Event) {
	m := w.node.director.widgets
	if m.isAligning {
		return
	}
	oldSize, _ := ev.Detail.(Size)
	newSize := w.node.ContentSize()
	delta := Vec2{newSize.Width - oldSize.Width, newSize.Height - oldSize.Height}
	parentSize := m.parentSize(w.node.parent)
	var pct Vec2
	if parentSize.Width != 0 && parentSize.Height != 0 {
		pct = Vec2{delta.X / parentSize.Width, delta.Y / parentSize.Height}
	}
	anchor := w.node.anchor

	if w.IsAlignTop() {
		w.top -= pick(w.isAbsTop, delta.Y, pct.Y) * (1 - anchor.Y)
	}
	if w.IsAlignBottom() {
		w.bottom -= pick(w.isAbsBottom, delta.Y, pct.Y) * anchor.Y
	}
	if w.IsAlignLeft() {
		w.left -= pick(w.isAbsLeft, delta.X, pct.X) * anchor.X
	}
	if w.IsAlignRight() {
		w.right -= pick(w.isAbsRight, delta.X, pct.X) * (1 - anchor.X)
	}
	if w.IsAlignHorizontalCenter() && delta.X != 0 && anchor.X != 0.5 {
		w.SetAlignHorizontalCenter(false)
	}
	if w.IsAlignVerticalCenter() && delta.Y != 0 && anchor.Y != 0.5 {
		w.SetAlignVerticalCenter(false)
	}
}

func pick(abs bool, points, fraction float64) float64 {
	if abs {
		return points
	}
	return fraction
}
