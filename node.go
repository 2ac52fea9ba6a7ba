package arbor

import (
	"github.com/google/uuid"
)

// SizeProvider computes a node's content size dynamically. When a node has a
// provider, width and height reads and writes route through it instead of the
// node's stored size.
type SizeProvider interface {
	Width() float64
	Height() float64
	SetContentSize(w, h float64)
	SetColor(c Color)
	SetOpacity(o uint8)
}

// Node is the element of the logical scene graph. It owns its children and a
// shadow RenderNode, carries components and emits change events through its
// embedded EventTarget.
//
// Nodes are created with Director.NewNode and belong to that director for
// their whole life.
type Node struct {
	Object
	EventTarget

	director *Director
	scene    *Scene // set only on a scene's own root node
	uuid     string

	// Hierarchy
	parent   *Node
	children []*Node
	render   *RenderNode

	// Transform (local)
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

	// Ordering
	zIndex       int
	globalZOrder int
	arrivalOrder int
	tag          int

	// Visual
	opacity        uint8
	color          Color
	cascadeOpacity bool

	// Activation
	active            bool
	activeInHierarchy bool

	components   []Component
	sizeProvider SizeProvider

	// Dirty markers
	reorderChildDirty bool
	transformDirty    bool
	worldDirty        bool
	renderDirty       bool
	localTransform    [6]float64
}

func (n *Node) init(d *Director, name string) {
	n.director = d
	n.initObject(d.destroyQueue, name, n)
	n.render = newRenderNode()
	n.scaleX = 1
	n.scaleY = 1
	n.anchor = Vec2{0.5, 0.5}
	n.tag = TagInvalid
	n.opacity = 255
	n.color = ColorWhite
	n.cascadeOpacity = true
	n.active = true
	n.markTransformDirty()
}

// Director returns the director the node belongs to.
func (n *Node) Director() *Director { return n.director }

// UUID returns the node's identifier, generating it on first use. The value
// stays the same for the node's whole life, destruction included.
func (n *Node) UUID() string {
	if n.uuid == "" {
		n.uuid = uuid.NewString()
	}
	return n.uuid
}

// Emit dispatches an event of type typ with n as the target.
func (n *Node) Emit(typ EventType, detail any) {
	n.Dispatch(Event{Type: typ, Target: n, Detail: detail})
}

// Render returns the node's shadow render node. Nil after destruction.
func (n *Node) Render() *RenderNode { return n.render }

// --- Logging ---

func (n *Node) warn(err error, msg string) {
	if n.director != nil {
		n.director.nodeLog(n).WithError(err).Warn(msg)
	}
}

func (n *Node) logError(err error, msg string) {
	if n.director != nil {
		n.director.nodeLog(n).WithError(err).Error(msg)
	}
}

// --- Hierarchy ---

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// SetParent moves n under value, or detaches it when value is nil. The old
// parent emits child-removed and the new one child-added. The node receives
// the highest arrival order among its new siblings.
//
// Reparenting a node under itself or one of its descendants is refused, as
// is any move involving a destroyed node or a scene root.
func (n *Node) SetParent(value *Node) {
	if n.parent == value {
		return
	}
	if n.scene != nil {
		n.scene.SetParent(value)
		return
	}
	if !n.IsValid() || (value != nil && !value.IsValid()) {
		n.warn(ErrObjectDestroyed, "setParent aborted")
		return
	}
	if value != nil && value.IsChildOf(n) {
		n.warn(ErrHierarchyCycle, "setParent aborted")
		return
	}

	if n.render != nil {
		n.render.removeFromParent()
	}

	old := n.parent
	n.parent = value

	if old != nil && old.flags&FlagDestroying == 0 {
		idx := old.indexOfChild(n)
		if idx < 0 {
			old.logError(ErrUnknownChild, "detach failed")
		} else {
			copy(old.children[idx:], old.children[idx+1:])
			old.children[len(old.children)-1] = nil
			old.children = old.children[:len(old.children)-1]
		}
		old.Emit(EventChildRemoved, n)
	}

	if value != nil {
		if value.render != nil && n.render != nil {
			value.render.addChild(n.render)
		}
		value.children = append(value.children, n)
		n.setMaxArrivalOrder()
		value.reorderChildDirty = true
		value.delaySort()
		value.Emit(EventChildAdded, n)
		if n.director != nil && n.director.cfg.Debug {
			n.director.checkTreeDepth(n)
			n.director.checkChildCount(value)
		}
	}

	n.onHierarchyChanged(old)
}

// setMaxArrivalOrder places n after its previous sibling in arrival order.
func (n *Node) setMaxArrivalOrder() {
	siblings := n.parent.children
	order := 0
	if len(siblings) >= 2 {
		order = siblings[len(siblings)-2].arrivalOrder + 1
	}
	n.arrivalOrder = order
	n.renderDirty = true
}

func (n *Node) onHierarchyChanged(old *Node) {
	n.markTransformDirty()
	before := n.active && old != nil && old.activeInHierarchy
	now := n.active && n.parent != nil && n.parent.activeInHierarchy
	if before != now {
		n.onActivatedInHierarchy(now)
	}
}

func (n *Node) indexOfChild(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AddChild attaches child keeping its current z index. A child that already
// has a parent is refused with a warning.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	n.AddChildWithZ(child, child.zIndex)
}

// AddChildWithZ attaches child and sets its z index.
func (n *Node) AddChildWithZ(child *Node, z int) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if child.parent != nil {
		n.warn(ErrChildHasParent, "addChild aborted")
		return
	}
	child.SetParent(n)
	if child.parent == n {
		child.SetZIndex(z)
	}
}

// AddChildWithTag attaches child and sets both its z index and tag.
func (n *Node) AddChildWithTag(child *Node, z, tag int) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if child.parent != nil {
		n.warn(ErrChildHasParent, "addChild aborted")
		return
	}
	child.SetParent(n)
	if child.parent == n {
		child.SetZIndex(z)
		child.SetTag(tag)
	}
}

// RemoveChild detaches child from n. No-op if child is not one of n's
// children.
func (n *Node) RemoveChild(child *Node) {
	if len(n.children) == 0 || child == nil {
		return
	}
	if n.indexOfChild(child) >= 0 {
		child.SetParent(nil)
	}
}

// RemoveChildByTag detaches the first child carrying tag.
func (n *Node) RemoveChildByTag(tag int) {
	child := n.ChildByTag(tag)
	if child == nil {
		if n.director != nil {
			n.director.nodeLog(n).WithField("tag", tag).Debug("removeChildByTag: child not found")
		}
		return
	}
	n.RemoveChild(child)
}

// RemoveAllChildren detaches every child, last to first.
func (n *Node) RemoveAllChildren() {
	for i := len(n.children) - 1; i >= 0; i-- {
		if i < len(n.children) {
			n.children[i].SetParent(nil)
		}
	}
}

// RemoveFromParent detaches n from its parent.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Children returns the children in sibling order. The returned slice MUST NOT
// be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// ChildrenCount returns the number of children.
func (n *Node) ChildrenCount() int { return len(n.children) }

// ChildAt returns the child at index i.
func (n *Node) ChildAt(i int) *Node { return n.children[i] }

// ChildByTag returns the first child carrying tag, or nil.
func (n *Node) ChildByTag(tag int) *Node {
	if tag == TagInvalid {
		n.warn(ErrInvalidLookup, "childByTag: invalid tag")
		return nil
	}
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
	}
	return nil
}

// ChildByUUID returns the child whose UUID matches id, or nil.
func (n *Node) ChildByUUID(id string) *Node {
	if id == "" {
		n.warn(ErrInvalidLookup, "childByUuid: invalid uuid")
		return nil
	}
	for _, c := range n.children {
		if c.uuid == id {
			return c
		}
	}
	return nil
}

// ChildByName returns the first child named name, or nil.
func (n *Node) ChildByName(name string) *Node {
	if name == "" {
		n.warn(ErrInvalidLookup, "childByName: invalid name")
		return nil
	}
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// IsChildOf reports whether n is parent or one of its descendants. A node is
// considered a child of itself.
func (n *Node) IsChildOf(parent *Node) bool {
	for c := n; c != nil; c = c.parent {
		if c == parent {
			return true
		}
	}
	return false
}

// SiblingIndex returns n's index among its siblings, or 0 without a parent.
func (n *Node) SiblingIndex() int {
	if n.parent == nil {
		return 0
	}
	return n.parent.indexOfChild(n)
}

// SetSiblingIndex moves n to index among its siblings; -1 means last and
// other negative indices count back from the end. Arrival orders of all siblings are renumbered to match the new sequence.
func (n *Node) SetSiblingIndex(index int) {
	if n.parent == nil {
		return
	}
	p := n.parent
	if index == -1 {
		index = len(p.children) - 1
	}
	old := p.indexOfChild(n)
	if index == old || old < 0 {
		return
	}
	p.children = append(p.children[:old], p.children[old+1:]...)
	if index < 0 {
		index = max(index+len(p.children), 0)
	}
	if index < len(p.children) {
		p.children = append(p.children, nil)
		copy(p.children[index+1:], p.children[index:])
		p.children[index] = n
	} else {
		p.children = append(p.children, n)
	}
	for i, sibling := range p.children {
		sibling.arrivalOrder = i
		sibling.renderDirty = true
	}
	p.reorderChildDirty = true
	p.delaySort()
}

// SortAllChildren stable-sorts the children by (z index, arrival order) if a
// reorder is pending, then emits child-reorder once.
func (n *Node) SortAllChildren() {
	if n.reorderChildDirty {
		children := n.children
		for i := 1; i < len(children); i++ {
			child := children[i]
			j := i - 1
			for j >= 0 {
				prev := children[j]
				if child.zIndex < prev.zIndex ||
					(child.zIndex == prev.zIndex && child.arrivalOrder < prev.arrivalOrder) {
					children[j+1] = prev
				} else {
					break
				}
				j--
			}
			children[j+1] = child
		}
		n.reorderChildDirty = false
		n.Emit(EventChildReorder, nil)
	}
	if n.director != nil {
		n.director.scheduler.CancelAfterUpdate(n)
	}
}

// delaySort schedules SortAllChildren for the next after-update event. Any
// number of calls within one frame produce a single sort.
func (n *Node) delaySort() {
	if n.director != nil {
		n.director.scheduler.OnceAfterUpdate(n, n.SortAllChildren)
	}
}

// --- Transform ---

// Position returns the local position.
func (n *Node) Position() Vec2 { return n.position }

// X returns the local x coordinate.
func (n *Node) X() float64 { return n.position.X }

// Y returns the local y coordinate.
func (n *Node) Y() float64 { return n.position.Y }

// SetPosition sets the local position and emits position-changed with the old
// value. Non-finite coordinates are rejected.
func (n *Node) SetPosition(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		n.warn(ErrInvalidNumber, "setPosition rejected")
		return
	}
	old := n.position
	if old.X == x && old.Y == y {
		return
	}
	n.position = Vec2{x, y}
	n.markTransformDirty()
	n.Emit(EventPositionChanged, old)
}

// SetX sets the local x coordinate.
func (n *Node) SetX(x float64) { n.SetPosition(x, n.position.Y) }

// SetY sets the local y coordinate.
func (n *Node) SetY(y float64) { n.SetPosition(n.position.X, y) }

// Rotation returns rotationX. It warns when the two rotation axes diverge.
func (n *Node) Rotation() float64 {
	if n.rotationX != n.rotationY && n.director != nil {
		n.director.nodeLog(n).Warn("rotation: rotationX != rotationY, returning rotationX")
	}
	return n.rotationX
}

// SetRotation sets both rotation axes in degrees.
func (n *Node) SetRotation(deg float64) {
	if n.rotationX == deg && n.rotationY == deg {
		return
	}
	old := n.rotationX
	n.rotationX = deg
	n.rotationY = deg
	n.markTransformDirty()
	n.Emit(EventRotationChanged, old)
}

// RotationX returns the x rotation in degrees.
func (n *Node) RotationX() float64 { return n.rotationX }

// SetRotationX sets the x rotation in degrees.
func (n *Node) SetRotationX(deg float64) {
	if n.rotationX == deg {
		return
	}
	old := n.rotationX
	n.rotationX = deg
	n.markTransformDirty()
	n.Emit(EventRotationChanged, old)
}

// RotationY returns the y rotation in degrees.
func (n *Node) RotationY() float64 { return n.rotationY }

// SetRotationY sets the y rotation in degrees.
func (n *Node) SetRotationY(deg float64) {
	if n.rotationY == deg {
		return
	}
	old := n.rotationY
	n.rotationY = deg
	n.markTransformDirty()
	n.Emit(EventRotationChanged, old)
}

// Scale returns scaleX. It warns when the two scale axes differ.
func (n *Node) Scale() float64 {
	if n.scaleX != n.scaleY && n.director != nil {
		n.director.nodeLog(n).Warn("scale: scaleX != scaleY, returning scaleX")
	}
	return n.scaleX
}

// SetScale sets both scale axes.
func (n *Node) SetScale(x, y float64) {
	if n.scaleX == x && n.scaleY == y {
		return
	}
	old := Vec2{n.scaleX, n.scaleY}
	n.scaleX = x
	n.scaleY = y
	n.markTransformDirty()
	n.Emit(EventScaleChanged, old)
}

// ScaleX returns the horizontal scale.
func (n *Node) ScaleX() float64 { return n.scaleX }

// SetScaleX sets the horizontal scale.
func (n *Node) SetScaleX(x float64) { n.SetScale(x, n.scaleY) }

// ScaleY returns the vertical scale.
func (n *Node) ScaleY() float64 { return n.scaleY }

// SetScaleY sets the vertical scale.
func (n *Node) SetScaleY(y float64) { n.SetScale(n.scaleX, y) }

// SkewX returns the horizontal skew in degrees.
func (n *Node) SkewX() float64 { return n.skewX }

// SetSkewX sets the horizontal skew in degrees.
func (n *Node) SetSkewX(deg float64) {
	n.skewX = deg
	n.markTransformDirty()
}

// SkewY returns the vertical skew in degrees.
func (n *Node) SkewY() float64 { return n.skewY }

// SetSkewY sets the vertical skew in degrees.
func (n *Node) SetSkewY(deg float64) {
	n.skewY = deg
	n.markTransformDirty()
}

// --- Box ---

// AnchorPoint returns the normalized anchor.
func (n *Node) AnchorPoint() Vec2 { return n.anchor }

// SetAnchorPoint sets the normalized anchor and emits anchor-changed.
func (n *Node) SetAnchorPoint(x, y float64) {
	old := n.anchor
	if old.X == x && old.Y == y {
		return
	}
	n.anchor = Vec2{x, y}
	n.markTransformDirty()
	n.Emit(EventAnchorChanged, old)
}

// AnchorX returns the horizontal anchor.
func (n *Node) AnchorX() float64 { return n.anchor.X }

// SetAnchorX sets the horizontal anchor.
func (n *Node) SetAnchorX(x float64) { n.SetAnchorPoint(x, n.anchor.Y) }

// AnchorY returns the vertical anchor.
func (n *Node) AnchorY() float64 { return n.anchor.Y }

// SetAnchorY sets the vertical anchor.
func (n *Node) SetAnchorY(y float64) { n.SetAnchorPoint(n.anchor.X, y) }

// AnchorPointInPoints returns the anchor scaled by the content size.
func (n *Node) AnchorPointInPoints() Vec2 {
	s := n.ContentSize()
	return Vec2{n.anchor.X * s.Width, n.anchor.Y * s.Height}
}

// ContentSize returns the node's size, asking the size provider if present.
func (n *Node) ContentSize() Size {
	if n.sizeProvider != nil {
		return Size{n.sizeProvider.Width(), n.sizeProvider.Height()}
	}
	return n.size
}

// RawContentSize returns the stored size, ignoring any size provider.
func (n *Node) RawContentSize() Size { return n.size }

// SetContentSize sets the content size and emits size-changed with the old
// value. With a size provider attached the request is forwarded to it and the
// provider's answer is stored. Non-finite sizes are rejected.
func (n *Node) SetContentSize(w, h float64) {
	if !isFinite(w) || !isFinite(h) {
		n.warn(ErrInvalidNumber, "setContentSize rejected")
		return
	}
	old := n.ContentSize()
	if n.sizeProvider != nil {
		n.sizeProvider.SetContentSize(w, h)
		n.size = Size{n.sizeProvider.Width(), n.sizeProvider.Height()}
	} else {
		if old.Width == w && old.Height == h {
			return
		}
		n.size = Size{w, h}
	}
	if cur := n.ContentSize(); cur == old {
		return
	}
	n.markTransformDirty()
	n.Emit(EventSizeChanged, old)
}

// Width returns the content width.
func (n *Node) Width() float64 {
	if n.sizeProvider != nil {
		return n.sizeProvider.Width()
	}
	return n.size.Width
}

// SetWidth sets the content width.
func (n *Node) SetWidth(w float64) { n.SetContentSize(w, n.Height()) }

// Height returns the content height.
func (n *Node) Height() float64 {
	if n.sizeProvider != nil {
		return n.sizeProvider.Height()
	}
	return n.size.Height
}

// SetHeight sets the content height.
func (n *Node) SetHeight(h float64) { n.SetContentSize(n.Width(), h) }

// SizeProvider returns the attached size provider, or nil.
func (n *Node) SizeProvider() SizeProvider { return n.sizeProvider }

// SetSizeProvider attaches p, or detaches the current provider when p is nil.
// The provider receives the node's current tint and opacity.
func (n *Node) SetSizeProvider(p SizeProvider) {
	old := n.ContentSize()
	n.sizeProvider = p
	if p != nil {
		p.SetColor(n.color)
		p.SetOpacity(n.opacity)
	}
	if cur := n.ContentSize(); cur != old {
		n.markTransformDirty()
		n.Emit(EventSizeChanged, old)
	}
}

// providerResized is called by a size provider whose size changed on its own,
// e.g. a label whose text was replaced.
func (n *Node) providerResized(old Size) {
	cur := n.ContentSize()
	n.size = cur
	if cur != old {
		n.markTransformDirty()
		n.Emit(EventSizeChanged, old)
	}
}

// IgnoreAnchor reports whether the position addresses the bottom-left corner
// of the content box instead of the anchor.
func (n *Node) IgnoreAnchor() bool { return n.ignoreAnchor }

// SetIgnoreAnchor toggles anchor-independent positioning.
func (n *Node) SetIgnoreAnchor(v bool) {
	if n.ignoreAnchor == v {
		return
	}
	n.ignoreAnchor = v
	n.markTransformDirty()
}

// --- Ordering ---

// ZIndex returns the local Z order among siblings.
func (n *Node) ZIndex() int { return n.zIndex }

// SetZIndex sets the local Z order and schedules a sibling re-sort.
func (n *Node) SetZIndex(z int) {
	n.zIndex = z
	n.renderDirty = true
	if n.parent != nil {
		n.parent.reorderChildDirty = true
		n.parent.delaySort()
	}
}

// ArrivalOrder returns the sibling tie-break counter.
func (n *Node) ArrivalOrder() int { return n.arrivalOrder }

// GlobalZOrder returns the global Z order.
func (n *Node) GlobalZOrder() int { return n.globalZOrder }

// SetGlobalZOrder sets the global Z order.
func (n *Node) SetGlobalZOrder(z int) {
	n.globalZOrder = z
	n.renderDirty = true
}

// Tag returns the integer tag, TagInvalid by default.
func (n *Node) Tag() int { return n.tag }

// SetTag sets the integer tag.
func (n *Node) SetTag(tag int) {
	n.tag = tag
	n.renderDirty = true
}

// --- Visual ---

// Opacity returns the local opacity.
func (n *Node) Opacity() uint8 { return n.opacity }

// SetOpacity sets the local opacity.
func (n *Node) SetOpacity(o uint8) {
	if n.opacity == o {
		return
	}
	n.opacity = o
	n.renderDirty = true
	if n.sizeProvider != nil {
		n.sizeProvider.SetOpacity(o)
	}
}

// DisplayedOpacity returns the opacity multiplied through every cascading
// ancestor.
func (n *Node) DisplayedOpacity() uint8 {
	if n.parent == nil || !n.parent.cascadeOpacity {
		return n.opacity
	}
	return uint8(float64(n.opacity) * float64(n.parent.DisplayedOpacity()) / 255)
}

// CascadeOpacity reports whether children inherit this node's opacity.
func (n *Node) CascadeOpacity() bool { return n.cascadeOpacity }

// SetCascadeOpacity toggles opacity inheritance for children.
func (n *Node) SetCascadeOpacity(v bool) {
	n.cascadeOpacity = v
	n.renderDirty = true
}

// Color returns the tint. Alpha is always 255; use Opacity for transparency.
func (n *Node) Color() Color { return n.color }

// SetColor sets the tint and emits color-changed. The alpha channel is
// ignored with a warning.
func (n *Node) SetColor(c Color) {
	if c.A != 255 && n.director != nil {
		n.director.nodeLog(n).Warn("setColor: alpha is ignored, use SetOpacity")
	}
	c.A = 255
	old := n.color
	if old == c {
		return
	}
	n.color = c
	n.renderDirty = true
	if n.sizeProvider != nil {
		n.sizeProvider.SetColor(c)
	}
	n.Emit(EventColorChanged, old)
}

// --- Activation ---

// Active reports the node's own active flag.
func (n *Node) Active() bool { return n.active }

// ActiveInHierarchy reports whether the node and all its ancestors up to the
// running scene are active.
func (n *Node) ActiveInHierarchy() bool { return n.activeInHierarchy }

// SetActive sets the node's own active flag. When the parent is active in
// the hierarchy, the change propagates to the node's components and active
// descendants.
func (n *Node) SetActive(v bool) {
	if n.scene != nil {
		n.scene.SetActive(v)
		return
	}
	if n.active == v {
		return
	}
	n.active = v
	n.renderDirty = true
	if n.parent != nil && n.parent.activeInHierarchy {
		n.onActivatedInHierarchy(v)
	}
}

func (n *Node) onActivatedInHierarchy(active bool) {
	n.activeInHierarchy = active
	comps := append([]Component(nil), n.components...)
	for _, c := range comps {
		c.component().onNodeActivated(active)
	}
	children := append([]*Node(nil), n.children...)
	for _, child := range children {
		if child.active && child.IsValid() {
			child.onActivatedInHierarchy(active)
		}
	}
	n.Emit(EventActiveInHierarchyChanged, active)
}

// --- Destroy ---

// Destroy requests destruction of the node and its subtree. The node is
// deactivated at once; the teardown runs when the director flushes its
// destroy queue.
func (n *Node) Destroy() bool {
	if !n.Object.Destroy() {
		return false
	}
	if n.activeInHierarchy {
		n.onActivatedInHierarchy(false)
	}
	return true
}

// CancelDestroy rescinds a pending destroy request and reactivates the node if
// its place in the hierarchy says it should be active.
func (n *Node) CancelDestroy() {
	if !n.WillDestroy() {
		return
	}
	n.Object.CancelDestroy()
	if n.active && n.parent != nil && n.parent.activeInHierarchy && !n.activeInHierarchy {
		n.onActivatedInHierarchy(true)
	}
}

func (n *Node) preDestroy() {
	// Survivors leave before the Destroying mark so their parent splices them
	// out normally.
	for _, child := range append([]*Node(nil), n.children...) {
		if child.flags&FlagDontDestroy != 0 {
			child.SetParent(nil)
		}
	}

	n.flags |= FlagDestroying
	for _, child := range append([]*Node(nil), n.children...) {
		if child.IsValid() {
			child.destroyImmediate()
		}
	}
	n.children = nil

	for _, c := range append([]Component(nil), n.components...) {
		if b := c.component(); b.IsValid() {
			b.destroyImmediate()
		}
	}

	n.SetParent(nil)
	if n.director != nil {
		n.director.scheduler.CancelAfterUpdate(n)
	}
	if n.render != nil {
		n.render.Release()
	}
	n.flags &^= FlagDestroying
}

func (n *Node) destruct() {
	n.parent = nil
	n.children = nil
	n.components = nil
	n.sizeProvider = nil
	n.render = nil
	n.scene = nil
	n.activeInHierarchy = false
	n.reorderChildDirty = false
	n.clearListeners()
}
