// Package arbor is a retained-mode scene graph with a UI layout engine for
// [Ebitengine].
//
// Arbor provides the node hierarchy, component lifecycle, deferred
// destruction, box layout and edge alignment that a 2D UI needs, and keeps a
// shadow render tree in sync with the logical one.
//
// # Quick start
//
// A [Director] owns everything: the logger, the deferred-work scheduler, the
// destroy queue, the widget manager and the running scene. [Run] opens a
// window and ticks it:
//
//	d := arbor.NewDirector(arbor.DefaultConfig())
//	scene := d.NewScene("main")
//	// ... add nodes ...
//	d.RunScene(scene)
//	arbor.Run(d)
//
// Headless tools and tests call [Director.Tick] themselves:
//
//	d.Tick(1.0 / 60)
//
// # Coordinates
//
// The origin is bottom-left and Y grows upward. A child's position is
// relative to its parent's anchor point. Rotation is in degrees, clockwise.
//
// # Scene graph
//
// Every element is a [Node] created with [Director.NewNode]. Behavior is
// attached as components: anything embedding [BaseComponent], with optional
// callbacks such as [Loader], [Updater] and [Destroyer].
//
//	panel := d.NewNode("panel")
//	panel.SetContentSize(300, 200)
//	scene.AddChild(panel)
//
//	layout := arbor.NewLayout()
//	layout.SetType(arbor.LayoutVertical)
//	panel.AddComponent(layout)
//
// Destroying a node is deferred to the end of the tick; it is deactivated at
// once and can be rescinded with [Node.CancelDestroy] until then.
//
// # Layout and alignment
//
// [Layout] arranges a node's children in rows, columns or a grid and can
// resize the container or the children. [Widget] pins a node's edges to its
// parent's box. Both run once per tick, after Update.
//
// # Animation
//
// [Animation] plays named [AnimationClip]s whose keyframe tracks are eased
// through [gween]. [TweenGroup] covers one-off property tweens.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package arbor
