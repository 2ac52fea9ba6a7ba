package arbor

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Director is the process-scoped context of a scene graph: it owns the
// logger, the deferred-work scheduler, the destroy queue, the widget
// alignment manager and the running scene, and drives them once per Tick.
//
// A Director and everything it owns are single-threaded.
type Director struct {
	cfg          Config
	log          *logrus.Logger
	scheduler    *Scheduler
	destroyQueue *DestroyQueue
	widgets      *WidgetManager
	scene        *Scene

	frame uint64
	stats FrameStats
}

// NewDirector creates a director. Zero config fields take their
// DefaultConfig values.
func NewDirector(cfg Config) *Director {
	cfg = cfg.withDefaults()
	d := &Director{
		cfg:       cfg,
		log:       newLogger(cfg.LogLevel, nil),
		scheduler: &Scheduler{},
	}
	d.destroyQueue = &DestroyQueue{director: d}
	d.widgets = newWidgetManager(d)
	return d
}

// NewNode creates a detached, active node owned by d.
func (d *Director) NewNode(name string) *Node {
	n := &Node{}
	n.init(d, name)
	return n
}

// Config returns the director's configuration.
func (d *Director) Config() Config { return d.cfg }

// Logger returns the director's logger.
func (d *Director) Logger() *logrus.Logger { return d.log }

// SetLogger replaces the director's logger.
func (d *Director) SetLogger(l *logrus.Logger) {
	if l != nil {
		d.log = l
	}
}

// Scheduler returns the deferred-work scheduler.
func (d *Director) Scheduler() *Scheduler { return d.scheduler }

// DestroyQueue returns the pending-destroy queue.
func (d *Director) DestroyQueue() *DestroyQueue { return d.destroyQueue }

// WidgetManager returns the widget alignment manager.
func (d *Director) WidgetManager() *WidgetManager { return d.widgets }

// Scene returns the running scene, or nil.
func (d *Director) Scene() *Scene { return d.scene }

// Frame returns the number of completed ticks.
func (d *Director) Frame() uint64 { return d.frame }

// Stats returns the measurements of the last tick. Timings are only taken in
// debug mode.
func (d *Director) Stats() FrameStats { return d.stats }

// DesignResolution returns the logical screen size.
func (d *Director) DesignResolution() Size { return d.cfg.DesignResolution.Size() }

// VisibleRect returns the visible part of the design resolution.
func (d *Director) VisibleRect() Rect { return d.cfg.VisibleRect }

// RunScene makes s the running scene. The previous scene is destroyed at
// once; its children flagged DontDestroy move to s first. s is then
// activated.
func (d *Director) RunScene(s *Scene) {
	old := d.scene
	if old == s {
		return
	}
	var persist []*Node
	if old != nil {
		for _, c := range old.children {
			if c.flags&FlagDontDestroy != 0 {
				persist = append(persist, c)
			}
		}
		for _, c := range persist {
			c.SetParent(nil)
		}
		old.Destroy()
		d.destroyQueue.Flush()
	}
	d.scene = s
	if s == nil {
		return
	}
	for _, c := range persist {
		if c.IsValid() {
			s.AddChild(c)
		}
	}
	s.activate(true)
	d.log.WithField("component", "arbor").WithField("scene", s.Name()).Debug("scene started")
}

// Tick advances one frame:
//
//	Update -> after-update (child sorts) -> LateUpdate (layouts)
//	-> widget alignment -> deferred tasks (destroy flush) -> render sync
func (d *Director) Tick(dt float64) {
	var t0 time.Time
	if d.cfg.Debug {
		t0 = time.Now()
	}
	st := FrameStats{Frame: d.frame}

	s := d.scene
	if s != nil {
		d.updatePhase(&s.Node, dt, false)
	}
	d.scheduler.EmitAfterUpdate()
	if d.cfg.Debug {
		st.UpdateTime = time.Since(t0)
		t0 = time.Now()
	}

	if s != nil {
		d.updatePhase(&s.Node, dt, true)
	}
	if d.cfg.Debug {
		st.LateUpdateTime = time.Since(t0)
		t0 = time.Now()
	}

	if s != nil {
		st.Aligned = d.widgets.visit(s)
	}
	if d.cfg.Debug {
		st.WidgetTime = time.Since(t0)
		t0 = time.Now()
	}

	st.Tasks = d.scheduler.Drain()

	if s != nil && s.IsValid() {
		s.SyncToRenderer()
		st.Nodes = countNodes(&s.Node)
	}
	if d.cfg.Debug {
		st.SyncTime = time.Since(t0)
	}

	d.frame++
	d.stats = st
	d.logStats(st)
}

func (d *Director) updatePhase(n *Node, dt float64, late bool) {
	if !n.activeInHierarchy {
		return
	}
	if len(n.components) > 0 {
		for _, c := range append([]Component(nil), n.components...) {
			b := c.component()
			if !b.IsValid() || b.WillDestroy() || !b.EnabledInHierarchy() {
				continue
			}
			if late {
				if u, ok := c.(LateUpdater); ok {
					u.LateUpdate(dt)
				}
				continue
			}
			if b.flags&FlagIsOnStartCalled == 0 {
				b.flags |= FlagIsOnStartCalled
				if st, ok := c.(Starter); ok {
					st.Start()
				}
			}
			if u, ok := c.(Updater); ok {
				u.Update(dt)
			}
		}
	}
	for _, child := range append([]*Node(nil), n.children...) {
		d.updatePhase(child, dt, late)
	}
}

// Close destroys the running scene and drains all deferred work.
func (d *Director) Close() {
	if d.scene != nil {
		d.scene.Destroy()
		d.scene = nil
	}
	for d.scheduler.Drain() > 0 {
	}
	d.destroyQueue.Flush()
}
