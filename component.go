package arbor

import "fmt"

// Component is behavior attached to a Node. Concrete components embed
// BaseComponent and implement any of the optional callback interfaces below.
type Component interface {
	component() *BaseComponent
}

// Optional component callbacks. The director and the activation broadcast
// call them through type assertions; a component implements only what it
// needs.
type (
	// Loader is called once, the first time the component's node becomes
	// active in the hierarchy.
	Loader interface{ OnLoad() }
	// Starter is called once, before the first Update.
	Starter interface{ Start() }
	// Enabler is called when the component becomes enabled in the hierarchy.
	Enabler interface{ OnEnable() }
	// Disabler is called when the component stops being enabled in the
	// hierarchy.
	Disabler interface{ OnDisable() }
	// Updater is called every tick while enabled in the hierarchy.
	Updater interface{ Update(dt float64) }
	// LateUpdater is called every tick after all Update calls and the
	// after-update event.
	LateUpdater interface{ LateUpdate(dt float64) }
	// Destroyer is called during teardown if OnLoad ran.
	Destroyer interface{ OnDestroy() }
)

// attacher is implemented by built-in components that wire node
// capabilities (a size provider) as soon as they are attached.
type attacher interface {
	onAttach(n *Node)
	onDetach(n *Node)
}

// BaseComponent carries the state shared by every component. The zero value
// is enabled and unattached.
type BaseComponent struct {
	Object
	node     *Node
	self     Component
	disabled bool
}

func (b *BaseComponent) component() *BaseComponent { return b }

// Node returns the node the component is attached to.
func (b *BaseComponent) Node() *Node { return b.node }

// Enabled reports the component's own enabled flag.
func (b *BaseComponent) Enabled() bool { return !b.disabled }

// EnabledInHierarchy reports whether the component is enabled and its node is
// active in the hierarchy.
func (b *BaseComponent) EnabledInHierarchy() bool {
	return !b.disabled && b.node != nil && b.node.activeInHierarchy
}

// SetEnabled toggles the component, calling OnEnable or OnDisable when its
// node is active in the hierarchy.
func (b *BaseComponent) SetEnabled(v bool) {
	if b.disabled == !v {
		return
	}
	b.disabled = !v
	if b.node != nil && b.node.activeInHierarchy {
		if v {
			b.callEnable()
		} else {
			b.callDisable()
		}
	}
}

// Destroy requests destruction of the component. OnDisable runs at once if
// the component was enabled in the hierarchy.
func (b *BaseComponent) Destroy() bool {
	if !b.Object.Destroy() {
		return false
	}
	b.callDisable()
	return true
}

func (b *BaseComponent) onNodeActivated(active bool) {
	if active && b.flags&FlagIsOnLoadCalled == 0 {
		b.flags |= FlagIsOnLoadCalled
		if l, ok := b.self.(Loader); ok {
			l.OnLoad()
		}
	}
	if b.disabled || !b.IsValid() {
		return
	}
	if active {
		b.callEnable()
	} else {
		b.callDisable()
	}
}

func (b *BaseComponent) callEnable() {
	if b.flags&FlagIsOnEnableCalled != 0 {
		return
	}
	b.flags |= FlagIsOnEnableCalled
	if e, ok := b.self.(Enabler); ok {
		e.OnEnable()
	}
}

func (b *BaseComponent) callDisable() {
	if b.flags&FlagIsOnEnableCalled == 0 {
		return
	}
	b.flags &^= FlagIsOnEnableCalled
	if d, ok := b.self.(Disabler); ok {
		d.OnDisable()
	}
}

func (b *BaseComponent) preDestroy() {
	b.callDisable()
	if b.flags&FlagIsOnLoadCalled != 0 {
		if d, ok := b.self.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	n := b.node
	if n == nil {
		return
	}
	if a, ok := b.self.(attacher); ok {
		a.onDetach(n)
	}
	for i, c := range n.components {
		if c.component() == b {
			copy(n.components[i:], n.components[i+1:])
			n.components[len(n.components)-1] = nil
			n.components = n.components[:len(n.components)-1]
			break
		}
	}
	n.TargetOff(b.self)
}

func (b *BaseComponent) destruct() {
	b.node = nil
	b.self = nil
}

// AddComponent attaches c to n and returns it. If n is already active in the
// hierarchy, OnLoad and OnEnable run before AddComponent returns.
func (n *Node) AddComponent(c Component) Component {
	if n.scene != nil && n.director.cfg.EditorMode {
		n.logError(ErrSceneAccessor, "addComponent")
		return nil
	}
	if !n.IsValid() {
		n.warn(ErrObjectDestroyed, "addComponent aborted")
		return nil
	}
	b := c.component()
	if b.node != nil {
		n.warn(ErrChildHasParent, "addComponent: component already attached")
		return nil
	}
	b.node = n
	b.self = c
	b.initObject(n.director.destroyQueue, fmt.Sprintf("%T", c), b)
	n.components = append(n.components, c)
	if a, ok := c.(attacher); ok {
		a.onAttach(n)
	}
	if n.activeInHierarchy {
		b.onNodeActivated(true)
	}
	return c
}

// RemoveComponent requests destruction of c if it is attached to n.
func (n *Node) RemoveComponent(c Component) {
	if c == nil || c.component().node != n {
		return
	}
	c.component().Destroy()
}

// Components returns the attached components. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Components() []Component { return n.components }

// GetComponent returns the first component of n assignable to T.
func GetComponent[T any](n *Node) (T, bool) {
	var zero T
	if n.scene != nil && n.director.cfg.EditorMode {
		n.logError(ErrSceneAccessor, "getComponent")
		return zero, false
	}
	for _, c := range n.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// GetComponents returns every component of n assignable to T.
func GetComponents[T any](n *Node) []T {
	if n.scene != nil && n.director.cfg.EditorMode {
		n.logError(ErrSceneAccessor, "getComponents")
		return nil
	}
	var out []T
	for _, c := range n.components {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
