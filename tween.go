package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 node properties simultaneously. Create one via
// the convenience constructors (TweenPosition, TweenScale, TweenOpacity,
// TweenRotation, TweenSize) and call Update(dt) each frame. Values are written
// through the node setters, so change events fire. If the target node is
// destroyed, the group stops immediately.
//
// There is no global tween manager; users call Update themselves, usually
// from a component's Update.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(v [4]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values. If the
// target node is no longer valid, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target == nil || !g.target.IsValid() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(float32(dt))
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenPosition animates the node position to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	p := node.Position()
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(p.X), float32(toX), float32(duration), fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(toY), float32(duration), fn)
	g.apply = func(v [4]float64) { node.SetPosition(v[0], v[1]) }
	return g
}

// TweenScale animates the node scale to (toSX, toSY).
func TweenScale(node *Node, toSX, toSY float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX()), float32(toSX), float32(duration), fn)
	g.tweens[1] = gween.New(float32(node.ScaleY()), float32(toSY), float32(duration), fn)
	g.apply = func(v [4]float64) { node.SetScale(v[0], v[1]) }
	return g
}

// TweenSize animates the node content size to (toW, toH).
func TweenSize(node *Node, toW, toH float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	sz := node.ContentSize()
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(sz.Width), float32(toW), float32(duration), fn)
	g.tweens[1] = gween.New(float32(sz.Height), float32(toH), float32(duration), fn)
	g.apply = func(v [4]float64) { node.SetContentSize(v[0], v[1]) }
	return g
}

// TweenOpacity animates the node opacity to the target value.
func TweenOpacity(node *Node, to uint8, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Opacity()), float32(to), float32(duration), fn)
	g.apply = func(v [4]float64) { PropOpacity.apply(node, v[0]) }
	return g
}

// TweenRotation animates the node rotation to the target angle in degrees.
func TweenRotation(node *Node, to float64, duration float64, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.RotationX()), float32(to), float32(duration), fn)
	g.apply = func(v [4]float64) { node.SetRotation(v[0]) }
	return g
}

// TweenColor animates the RGB tint to the target color. Alpha is driven by
// opacity and is left alone.
func TweenColor(node *Node, to Color, duration float64, fn ease.TweenFunc) *TweenGroup {
	c := node.Color()
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), float32(duration), fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), float32(duration), fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), float32(duration), fn)
	g.apply = func(v [4]float64) {
		node.SetColor(Color{R: channel(v[0]), G: channel(v[1]), B: channel(v[2]), A: 255})
	}
	return g
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
