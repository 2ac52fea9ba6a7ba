package arbor

// RenderNode is the shadow object a Node keeps for the rendering backend.
// Its parent/child edges always mirror the logical tree; every other field is
// copied from the owning Node by SyncToRenderer.
//
// RenderNode is reference counted. The owning node holds one reference and
// releases it when destroyed; a backend that caches render nodes across
// frames takes its own with Retain.
type RenderNode struct {
	refs     int
	parent   *RenderNode
	children []*RenderNode

	position     Vec2
	rotationX    float64
	rotationY    float64
	scaleX       float64
	scaleY       float64
	skewX        float64
	skewY        float64
	anchor       Vec2
	size         Size
	ignoreAnchor bool

	localZOrder  int
	globalZOrder int
	arrivalOrder int
	tag          int

	opacity          uint8
	displayedOpacity uint8
	cascadeOpacity   bool
	color            Color
	visible          bool

	worldTransform [6]float64
}

func newRenderNode() *RenderNode {
	return &RenderNode{
		refs:             1,
		scaleX:           1,
		scaleY:           1,
		opacity:          255,
		displayedOpacity: 255,
		cascadeOpacity:   true,
		color:            ColorWhite,
		visible:          true,
		tag:              TagInvalid,
		worldTransform:   identityTransform,
	}
}

// Retain adds a reference.
func (r *RenderNode) Retain() {
	r.refs++
}

// Release drops a reference. When the last reference goes the node detaches
// from the render graph and orphans its children.
func (r *RenderNode) Release() {
	if r.refs <= 0 {
		return
	}
	r.refs--
	if r.refs > 0 {
		return
	}
	r.removeFromParent()
	for _, c := range r.children {
		c.parent = nil
	}
	r.children = nil
}

// RefCount returns the current reference count.
func (r *RenderNode) RefCount() int { return r.refs }

func (r *RenderNode) addChild(child *RenderNode) {
	if child.parent != nil {
		child.removeFromParent()
	}
	child.parent = r
	r.children = append(r.children, child)
}

func (r *RenderNode) removeChild(child *RenderNode) {
	for i, c := range r.children {
		if c == child {
			copy(r.children[i:], r.children[i+1:])
			r.children[len(r.children)-1] = nil
			r.children = r.children[:len(r.children)-1]
			child.parent = nil
			return
		}
	}
}

func (r *RenderNode) removeFromParent() {
	if r.parent != nil {
		r.parent.removeChild(r)
	}
}

// Parent returns the parent render node, or nil.
func (r *RenderNode) Parent() *RenderNode { return r.parent }

// Children returns the render children in draw order. The returned slice
// MUST NOT be mutated by the caller.
func (r *RenderNode) Children() []*RenderNode { return r.children }

// Position returns the synced local position.
func (r *RenderNode) Position() Vec2 { return r.position }

// Rotation returns the synced rotation pair in degrees.
func (r *RenderNode) Rotation() (x, y float64) { return r.rotationX, r.rotationY }

// Scale returns the synced scale pair.
func (r *RenderNode) Scale() (x, y float64) { return r.scaleX, r.scaleY }

// Skew returns the synced skew pair in degrees.
func (r *RenderNode) Skew() (x, y float64) { return r.skewX, r.skewY }

// AnchorPoint returns the synced anchor point.
func (r *RenderNode) AnchorPoint() Vec2 { return r.anchor }

// ContentSize returns the synced content size.
func (r *RenderNode) ContentSize() Size { return r.size }

// IgnoreAnchor reports whether the position addresses the bottom-left corner.
func (r *RenderNode) IgnoreAnchor() bool { return r.ignoreAnchor }

// LocalZOrder returns the synced sibling Z order.
func (r *RenderNode) LocalZOrder() int { return r.localZOrder }

// GlobalZOrder returns the synced global Z order.
func (r *RenderNode) GlobalZOrder() int { return r.globalZOrder }

// ArrivalOrder returns the synced sibling arrival order.
func (r *RenderNode) ArrivalOrder() int { return r.arrivalOrder }

// Tag returns the synced tag.
func (r *RenderNode) Tag() int { return r.tag }

// Opacity returns the synced local opacity.
func (r *RenderNode) Opacity() uint8 { return r.opacity }

// DisplayedOpacity returns the opacity after cascading through ancestors.
func (r *RenderNode) DisplayedOpacity() uint8 { return r.displayedOpacity }

// Color returns the synced tint.
func (r *RenderNode) Color() Color { return r.color }

// Visible reports whether the owning node is active.
func (r *RenderNode) Visible() bool { return r.visible }

// WorldTransform returns the anchor-relative world matrix computed at the
// last sync.
func (r *RenderNode) WorldTransform() [6]float64 { return r.worldTransform }

// WorldBounds returns the world-space axis-aligned bounds of the content box
// as of the last sync.
func (r *RenderNode) WorldBounds() Rect {
	local := Rect{
		X:      -r.anchor.X * r.size.Width,
		Y:      -r.anchor.Y * r.size.Height,
		Width:  r.size.Width,
		Height: r.size.Height,
	}
	return transformRect(r.worldTransform, local)
}

// --- Sync ---

// SyncToRenderer copies the logical state of this node and its subtree into
// the render nodes, recomputing world matrices and displayed opacity where
// anything changed. The director calls it on the running scene at the end of
// every tick.
func (n *Node) SyncToRenderer() {
	if n.render == nil {
		return
	}
	parentWorld := identityTransform
	var parentOpacity uint8 = 255
	parentCascade := false
	recomputed := false
	if n.parent != nil && n.parent.render != nil {
		parentWorld = n.parent.render.worldTransform
		parentOpacity = n.parent.render.displayedOpacity
		parentCascade = n.parent.cascadeOpacity
		recomputed = true
	}
	n.syncRender(parentWorld, parentOpacity, parentCascade, recomputed)
}

// syncRender recomputes a node's world matrix when it is dirty or its parent
// was recomputed this pass.
func (n *Node) syncRender(parentWorld [6]float64, parentOpacity uint8, parentCascade, parentRecomputed bool) {
	r := n.render
	if n.renderDirty {
		r.position = n.position
		r.rotationX, r.rotationY = n.rotationX, n.rotationY
		r.scaleX, r.scaleY = n.scaleX, n.scaleY
		r.skewX, r.skewY = n.skewX, n.skewY
		r.anchor = n.anchor
		r.size = n.ContentSize()
		r.ignoreAnchor = n.ignoreAnchor
		r.localZOrder = n.zIndex
		r.globalZOrder = n.globalZOrder
		r.arrivalOrder = n.arrivalOrder
		r.tag = n.tag
		r.opacity = n.opacity
		r.cascadeOpacity = n.cascadeOpacity
		r.color = n.color
		r.visible = n.active
		n.renderDirty = false
	}

	recompute := n.worldDirty || parentRecomputed
	if recompute {
		r.worldTransform = multiplyAffine(parentWorld, n.NodeToParentTransformAR())
		n.worldDirty = false
	}

	displayed := n.opacity
	if parentCascade {
		displayed = uint8(float64(n.opacity) * float64(parentOpacity) / 255)
	}
	r.displayedOpacity = displayed

	// Children order follows the logical order, which is sorted lazily.
	if len(r.children) == len(n.children) {
		for i, child := range n.children {
			if child.render != nil {
				r.children[i] = child.render
			}
		}
	}

	for _, child := range n.children {
		if child.render != nil {
			child.syncRender(r.worldTransform, displayed, n.cascadeOpacity, recompute)
		}
	}
}
