package arbor

import "math"

// Vec2 is a 2D vector used for positions, anchors, offsets and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair used for content sizes and resolutions.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the bottom-left, with Y increasing upward. X, Y is the bottom-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the minimum X edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the minimum Y edge.
func (r Rect) Bottom() float64 { return r.Y }

// Top returns the maximum Y edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.Right(), other.Right())
	maxY := math.Max(r.Top(), other.Top())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Color is an 8-bit RGB(A) color. Node tint only uses R, G and B; a node's
// alpha is controlled through its opacity.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{255, 255, 255, 255}

// TagInvalid is the tag every node carries until one is assigned.
const TagInvalid = -1

// EventType identifies a node change notification.
type EventType uint8

const (
	EventPositionChanged          EventType = iota // local position changed; detail is the old Vec2
	EventRotationChanged                           // rotation changed; detail is the old angle
	EventScaleChanged                              // scale changed; detail is the old scale as Vec2
	EventSizeChanged                               // content size changed; detail is the old Size
	EventAnchorChanged                             // anchor point changed; detail is the old Vec2
	EventColorChanged                              // tint changed; detail is the old Color
	EventChildAdded                                // a child was attached; detail is the child *Node
	EventChildRemoved                              // a child was detached; detail is the child *Node
	EventChildReorder                              // children were re-sorted
	EventActiveInHierarchyChanged                  // activeInHierarchy flipped; detail is the new bool
	EventAnimationPlay                             // an animation state started; detail is the *AnimationState
	EventAnimationStop                             // an animation state stopped
	EventAnimationPause                            // an animation state paused
	EventAnimationResume                           // an animation state resumed
	EventAnimationFinished                         // a non-looping state reached its end
)

var eventTypeNames = [...]string{
	EventPositionChanged:          "position-changed",
	EventRotationChanged:          "rotation-changed",
	EventScaleChanged:             "scale-changed",
	EventSizeChanged:              "size-changed",
	EventAnchorChanged:            "anchor-changed",
	EventColorChanged:             "color-changed",
	EventChildAdded:               "child-added",
	EventChildRemoved:             "child-removed",
	EventChildReorder:             "child-reorder",
	EventActiveInHierarchyChanged: "active-in-hierarchy-changed",
	EventAnimationPlay:            "play",
	EventAnimationStop:            "stop",
	EventAnimationPause:           "pause",
	EventAnimationResume:          "resume",
	EventAnimationFinished:        "finished",
}

// String returns the wire name of the event.
func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
