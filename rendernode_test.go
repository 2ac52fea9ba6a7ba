package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNodeMirrorsHierarchy(t *testing.T) {
	d, s, _ := newRunningScene(t)
	p, c := d.NewNode("p"), d.NewNode("c")
	s.AddChild(p)
	p.AddChild(c)
	assert.Same(t, s.Render(), p.Render().Parent())
	assert.Same(t, p.Render(), c.Render().Parent())

	c.SetParent(&s.Node)
	assert.Same(t, s.Render(), c.Render().Parent())
	assert.Empty(t, p.Render().Children())

	c.RemoveFromParent()
	assert.Nil(t, c.Render().Parent())
}

func TestSyncCopiesState(t *testing.T) {
	d, s, _ := newRunningScene(t)
	n := d.NewNode("n")
	s.AddChild(n)
	n.SetPosition(10, 20)
	n.SetRotation(15)
	n.SetScale(2, 3)
	n.SetSkewX(4)
	n.SetAnchorPoint(0, 1)
	n.SetContentSize(30, 40)
	n.SetIgnoreAnchor(true)
	n.SetGlobalZOrder(6)
	n.SetTag(8)
	n.SetOpacity(100)
	n.SetColor(Color{R: 1, G: 2, B: 3, A: 255})

	d.Tick(testDT)
	r := n.Render()
	assert.Equal(t, Vec2{10, 20}, r.Position())
	rx, ry := r.Rotation()
	assert.Equal(t, [2]float64{15, 15}, [2]float64{rx, ry})
	sx, sy := r.Scale()
	assert.Equal(t, [2]float64{2, 3}, [2]float64{sx, sy})
	kx, ky := r.Skew()
	assert.Equal(t, [2]float64{4, 0}, [2]float64{kx, ky})
	assert.Equal(t, Vec2{0, 1}, r.AnchorPoint())
	assert.Equal(t, Size{30, 40}, r.ContentSize())
	assert.True(t, r.IgnoreAnchor())
	assert.Equal(t, 6, r.GlobalZOrder())
	assert.Equal(t, 8, r.Tag())
	assert.Equal(t, uint8(100), r.Opacity())
	assert.Equal(t, Color{1, 2, 3, 255}, r.Color())
	assert.True(t, r.Visible())
	assertMatrix(t, n.NodeToWorldTransformAR(), r.WorldTransform())
}

func TestSyncWorldTransformPropagates(t *testing.T) {
	d, s, _ := newRunningScene(t)
	p, c := d.NewNode("p"), d.NewNode("c")
	s.AddChild(p)
	p.AddChild(c)
	p.SetPosition(100, 100)
	c.SetPosition(5, 5)
	d.Tick(testDT)
	assertMatrix(t, [6]float64{1, 0, 0, 1, 105, 105}, c.Render().WorldTransform())

	// Only the parent moves; the clean child is recomputed through it.
	p.SetPosition(0, 0)
	assert.False(t, c.worldDirty)
	d.Tick(testDT)
	assertMatrix(t, [6]float64{1, 0, 0, 1, 5, 5}, c.Render().WorldTransform())
}

func TestSyncDisplayedOpacity(t *testing.T) {
	d, s, _ := newRunningScene(t)
	p, c := d.NewNode("p"), d.NewNode("c")
	s.AddChild(p)
	p.AddChild(c)
	p.SetOpacity(128)
	c.SetOpacity(128)
	d.Tick(testDT)
	assert.Equal(t, uint8(128), p.Render().DisplayedOpacity())
	assert.Equal(t, uint8(64), c.Render().DisplayedOpacity())
	assert.Equal(t, c.DisplayedOpacity(), c.Render().DisplayedOpacity())

	p.SetCascadeOpacity(false)
	d.Tick(testDT)
	assert.Equal(t, uint8(128), c.Render().DisplayedOpacity())
}

func TestSyncFollowsSortedOrder(t *testing.T) {
	d, s, _ := newRunningScene(t)
	a, b := d.NewNode("a"), d.NewNode("b")
	s.AddChild(a)
	s.AddChild(b)
	a.SetZIndex(1)
	d.Tick(testDT)

	rc := s.Render().Children()
	require.Len(t, rc, 2)
	assert.Same(t, b.Render(), rc[0])
	assert.Same(t, a.Render(), rc[1])
	assert.Equal(t, 1, a.Render().LocalZOrder())
	assert.Equal(t, 0, a.Render().ArrivalOrder())
}

func TestSyncInactiveNodeInvisible(t *testing.T) {
	d, s, _ := newRunningScene(t)
	n := d.NewNode("n")
	s.AddChild(n)
	n.SetActive(false)
	d.Tick(testDT)
	assert.False(t, n.Render().Visible())
}

func TestWorldBounds(t *testing.T) {
	d, s, _ := newRunningScene(t)
	n := d.NewNode("n")
	s.AddChild(n)
	n.SetContentSize(20, 10)
	n.SetPosition(50, 50)
	d.Tick(testDT)
	assertRect(t, Rect{X: 40, Y: 45, Width: 20, Height: 10}, n.Render().WorldBounds())
}

func TestRenderNodeRefCount(t *testing.T) {
	d, _ := newTestDirector(t)
	p, c := d.NewNode("p"), d.NewNode("c")
	p.AddChild(c)
	r := p.Render()
	assert.Equal(t, 1, r.RefCount())

	r.Retain()
	r.Release()
	assert.Equal(t, 1, r.RefCount())
	assert.Len(t, r.Children(), 1)

	r.Release()
	assert.Zero(t, r.RefCount())
	assert.Empty(t, r.Children())
	assert.Nil(t, c.Render().Parent())

	r.Release()
	assert.Zero(t, r.RefCount())
}

func TestDestroyReleasesRenderNode(t *testing.T) {
	d, s, _ := newRunningScene(t)
	n := d.NewNode("n")
	s.AddChild(n)
	r := n.Render()
	r.Retain()

	n.Destroy()
	d.Tick(testDT)
	assert.Nil(t, n.Render())
	assert.Equal(t, 1, r.RefCount())
	assert.Nil(t, r.Parent())
	assert.Empty(t, s.Render().Children())
}
