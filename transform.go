package arbor

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

const degToRad = math.Pi / 180

// computeLocalTransform computes the matrix mapping the node's anchor-relative
// space into its parent's anchor-relative space. Returns [a, b, c, d, tx, ty].
//
// Rotation and skew are in degrees; positive rotation is clockwise.
// Composition order:
//
//	Skew -> Scale/Rotate -> Translate(X, Y)
//
// When IgnoreAnchor is set the position addresses the bottom-left corner, so
// the translation is shifted by the anchor offset.
func computeLocalTransform(n *Node) [6]float64 {
	var sinX, cosX, sinY, cosY float64 = 0, 1, 0, 1
	if n.rotationX != 0 || n.rotationY != 0 {
		sinX, cosX = math.Sincos(-n.rotationX * degToRad)
		sinY, cosY = math.Sincos(-n.rotationY * degToRad)
	}

	m := [6]float64{
		cosY * n.scaleX,
		sinY * n.scaleX,
		-sinX * n.scaleY,
		cosX * n.scaleY,
		0, 0,
	}

	if n.skewX != 0 || n.skewY != 0 {
		skew := [6]float64{1, math.Tan(n.skewY * degToRad), math.Tan(n.skewX * degToRad), 1, 0, 0}
		m = multiplyAffine(m, skew)
	}

	tx, ty := n.position.X, n.position.Y
	if n.ignoreAnchor {
		ap := n.AnchorPointInPoints()
		tx += ap.X
		ty += ap.Y
	}
	m[4] = tx
	m[5] = ty
	return m
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// translateAffine returns m * Translate(x, y).
func translateAffine(m [6]float64, x, y float64) [6]float64 {
	return [6]float64{
		m[0], m[1], m[2], m[3],
		m[0]*x + m[2]*y + m[4],
		m[1]*x + m[3]*y + m[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformRect returns the axis-aligned bounds of r after applying m.
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(m, r.X, r.Y+r.Height)
	x3, y3 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// markTransformDirty invalidates the cached local matrix and schedules a
// render-node refresh for node and all its descendants' world matrices.
func (n *Node) markTransformDirty() {
	n.transformDirty = true
	n.worldDirty = true
	n.renderDirty = true
}

// --- Matrices ---

// NodeToParentTransformAR returns the matrix mapping this node's
// anchor-relative space into its parent's anchor-relative space.
func (n *Node) NodeToParentTransformAR() [6]float64 {
	if n.transformDirty {
		n.localTransform = computeLocalTransform(n)
		n.transformDirty = false
	}
	return n.localTransform
}

// NodeToParentTransform returns the matrix mapping this node's corner space
// (origin at the bottom-left of the content box) into its parent's
// anchor-relative space.
func (n *Node) NodeToParentTransform() [6]float64 {
	ap := n.AnchorPointInPoints()
	return translateAffine(n.NodeToParentTransformAR(), -ap.X, -ap.Y)
}

// ParentToNodeTransform is the inverse of NodeToParentTransform.
func (n *Node) ParentToNodeTransform() [6]float64 {
	return invertAffine(n.NodeToParentTransform())
}

// NodeToWorldTransformAR returns the matrix mapping this node's
// anchor-relative space into world space.
func (n *Node) NodeToWorldTransformAR() [6]float64 {
	m := n.NodeToParentTransformAR()
	for p := n.parent; p != nil; p = p.parent {
		m = multiplyAffine(p.NodeToParentTransformAR(), m)
	}
	return m
}

// NodeToWorldTransform returns the matrix mapping this node's corner space
// into world space.
func (n *Node) NodeToWorldTransform() [6]float64 {
	ap := n.AnchorPointInPoints()
	return translateAffine(n.NodeToWorldTransformAR(), -ap.X, -ap.Y)
}

// WorldToNodeTransform is the inverse of NodeToWorldTransform.
func (n *Node) WorldToNodeTransform() [6]float64 {
	return invertAffine(n.NodeToWorldTransform())
}

// WorldToNodeTransformAR is the inverse of NodeToWorldTransformAR.
func (n *Node) WorldToNodeTransformAR() [6]float64 {
	return invertAffine(n.NodeToWorldTransformAR())
}

// --- Coordinate conversion ---

// ConvertToNodeSpace converts a world-space point to this node's corner space.
func (n *Node) ConvertToNodeSpace(world Vec2) Vec2 {
	x, y := transformPoint(n.WorldToNodeTransform(), world.X, world.Y)
	return Vec2{x, y}
}

// ConvertToNodeSpaceAR converts a world-space point to this node's
// anchor-relative space.
func (n *Node) ConvertToNodeSpaceAR(world Vec2) Vec2 {
	x, y := transformPoint(n.WorldToNodeTransformAR(), world.X, world.Y)
	return Vec2{x, y}
}

// ConvertToWorldSpace converts a point in this node's corner space to world space.
func (n *Node) ConvertToWorldSpace(local Vec2) Vec2 {
	x, y := transformPoint(n.NodeToWorldTransform(), local.X, local.Y)
	return Vec2{x, y}
}

// ConvertToWorldSpaceAR converts a point in this node's anchor-relative space
// to world space.
func (n *Node) ConvertToWorldSpaceAR(local Vec2) Vec2 {
	x, y := transformPoint(n.NodeToWorldTransformAR(), local.X, local.Y)
	return Vec2{x, y}
}

// --- Bounds ---

// BoundingBox returns the node's content box in its parent's
// anchor-relative space. Children are not included.
func (n *Node) BoundingBox() Rect {
	size := n.ContentSize()
	return transformRect(n.NodeToParentTransform(), Rect{Width: size.Width, Height: size.Height})
}

// BoundingBoxToWorld returns the world-space union of this node's content box
// and the boxes of all its active descendants.
func (n *Node) BoundingBoxToWorld() Rect {
	parentAR := identityTransform
	if n.parent != nil {
		parentAR = n.parent.NodeToWorldTransformAR()
	}
	return n.boundingBoxTo(parentAR)
}

func (n *Node) boundingBoxTo(parentAR [6]float64) Rect {
	size := n.ContentSize()
	rect := Rect{
		X:      -n.anchor.X * size.Width,
		Y:      -n.anchor.Y * size.Height,
		Width:  size.Width,
		Height: size.Height,
	}
	transAR := multiplyAffine(parentAR, n.NodeToParentTransformAR())
	rect = transformRect(transAR, rect)
	for _, child := range n.children {
		if child != nil && child.active {
			rect = rect.Union(child.boundingBoxTo(transAR))
		}
	}
	return rect
}
