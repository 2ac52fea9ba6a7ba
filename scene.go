package arbor

// Scene is the root of a node hierarchy. Its activity is controlled by the
// director when the scene starts or stops running, never directly: in editor
// mode the activity accessors and component accessors are rejected.
type Scene struct {
	Node
}

// NewScene creates an inactive scene sized to the design resolution, with
// its anchor at the bottom-left corner.
func (d *Director) NewScene(name string) *Scene {
	s := &Scene{}
	s.init(d, name)
	s.scene = s
	s.anchor = Vec2{0, 0}
	s.size = d.cfg.DesignResolution.Size()
	return s
}

func (s *Scene) rejectAccessor(op string) bool {
	if s.director != nil && s.director.cfg.EditorMode {
		s.director.nodeLog(&s.Node).WithError(ErrSceneAccessor).WithField("accessor", op).Error("scene accessor rejected")
		return true
	}
	return false
}

// Active reports whether the scene is running. Rejected in editor mode.
func (s *Scene) Active() bool {
	if s.rejectAccessor("active") {
		return false
	}
	return s.activeInHierarchy
}

// SetActive is not available on a scene; scenes are activated by
// Director.RunScene. The call is logged and ignored.
func (s *Scene) SetActive(bool) {
	if s.rejectAccessor("active") {
		return
	}
	s.warn(ErrSceneAccessor, "setActive ignored, use Director.RunScene")
}

// ActiveInHierarchy reports whether the scene is running. Rejected in editor
// mode.
func (s *Scene) ActiveInHierarchy() bool {
	if s.rejectAccessor("activeInHierarchy") {
		return false
	}
	return s.activeInHierarchy
}

// SetParent is not available on a scene. The call is logged and ignored.
func (s *Scene) SetParent(*Node) {
	s.warn(ErrSceneAccessor, "setParent ignored on scene")
}

// activate broadcasts the activation edge to the scene's own components and
// every active child. Components receive OnLoad once and OnEnable/OnDisable
// once per edge.
func (s *Scene) activate(active bool) {
	if s.activeInHierarchy == active {
		return
	}
	s.activeInHierarchy = active
	for _, c := range append([]Component(nil), s.components...) {
		c.component().onNodeActivated(active)
	}
	for _, child := range append([]*Node(nil), s.children...) {
		if child.active && child.IsValid() {
			child.onActivatedInHierarchy(active)
		}
	}
	s.Emit(EventActiveInHierarchyChanged, active)
}
