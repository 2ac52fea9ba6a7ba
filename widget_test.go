package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWidgetChild puts a 200x100 parent in s and returns a w x h child of it.
func newWidgetChild(d *Director, s *Scene, w, h float64) (*Node, *Node) {
	parent := d.NewNode("parent")
	parent.SetContentSize(200, 100)
	s.AddChild(parent)
	child := d.NewNode("child")
	child.SetContentSize(w, h)
	parent.AddChild(child)
	return parent, child
}

func TestNewWidgetDefaults(t *testing.T) {
	w := NewWidget()
	assert.True(t, w.IsAlignOnce)
	assert.True(t, w.IsAbsoluteLeft())
	assert.True(t, w.IsAbsoluteRight())
	assert.True(t, w.IsAbsoluteTop())
	assert.True(t, w.IsAbsoluteBottom())
	assert.Zero(t, w.AlignFlags())
}

func TestWidgetAlignFlagsExclusive(t *testing.T) {
	w := NewWidget()
	w.SetAlignLeft(true)
	w.SetAlignRight(true)
	assert.True(t, w.IsStretchWidth())

	w.SetAlignHorizontalCenter(true)
	assert.False(t, w.IsAlignLeft())
	assert.False(t, w.IsAlignRight())
	assert.True(t, w.IsAlignHorizontalCenter())

	w.SetAlignLeft(true)
	assert.False(t, w.IsAlignHorizontalCenter())

	w.SetAlignTop(true)
	w.SetAlignBottom(true)
	assert.True(t, w.IsStretchHeight())
	w.SetAlignVerticalCenter(true)
	assert.Equal(t, AlignLeft|AlignMid, w.AlignFlags())

	w.SetAlignBottom(true)
	assert.False(t, w.IsAlignVerticalCenter())
	w.SetAlignBottom(false)
	assert.Equal(t, AlignLeft, w.AlignFlags())
}

func TestWidgetStretchWidth(t *testing.T) {
	d, s, _ := newRunningScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	child.SetPosition(33, 7)
	w := NewWidget()
	w.SetAlignLeft(true)
	w.SetAlignRight(true)
	w.SetLeft(10)
	w.SetRight(10)
	child.AddComponent(w)
	require.Equal(t, 1, d.WidgetManager().Len())

	d.Tick(testDT)
	assert.Equal(t, 180.0, child.Width())
	assert.Equal(t, Vec2{0, 7}, child.Position())
	assert.Equal(t, 1, d.Stats().Aligned)

	// Align-once widgets retire after their pass.
	assert.False(t, w.Enabled())
	assert.Zero(t, d.WidgetManager().Len())
}

func TestWidgetStretchHeight(t *testing.T) {
	d, s, _ := newRunningScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	w.SetAlignTop(true)
	w.SetAlignBottom(true)
	w.SetTop(5)
	w.SetBottom(15)
	child.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, 80.0, child.Height())
	assert.Equal(t, 5.0, child.Y())
}

func TestWidgetAlignsToVisibleRectUnderScene(t *testing.T) {
	d, s, _ := newRunningScene(t)
	n := d.NewNode("hud")
	n.SetContentSize(100, 50)
	s.AddChild(n)
	w := NewWidget()
	w.SetAlignTop(true)
	w.SetAlignLeft(true)
	w.SetTop(10)
	w.SetLeft(20)
	n.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, Vec2{70, 605}, n.Position())
}

func TestWidgetUsesConfiguredVisibleRect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VisibleRect = Rect{X: 10, Y: 20, Width: 500, Height: 300}
	d, _ := newTestDirectorWith(t, cfg)
	s := d.NewScene("main")
	d.RunScene(s)

	n := d.NewNode("corner")
	n.SetContentSize(100, 50)
	s.AddChild(n)
	w := NewWidget()
	w.SetAlignRight(true)
	w.SetAlignBottom(true)
	w.SetBottom(5)
	n.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, Vec2{460, 50}, n.Position())
}

func TestWidgetRelativeOffsets(t *testing.T) {
	d, s, _ := newRunningScene(t)
	_, child := newWidgetChild(d, s, 40, 40)
	w := NewWidget()
	w.SetAlignLeft(true)
	w.SetAbsoluteLeft(false)
	w.SetLeft(0.1)
	w.SetAlignBottom(true)
	w.SetAbsoluteBottom(false)
	w.SetBottom(0.5)
	child.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, Vec2{-60, 20}, child.Position())
}

func TestWidgetCenters(t *testing.T) {
	d, s, _ := newRunningScene(t)
	parent, child := newWidgetChild(d, s, 40, 40)
	parent.SetAnchorPoint(0, 0)
	w := NewWidget()
	w.SetAlignHorizontalCenter(true)
	w.SetAlignVerticalCenter(true)
	child.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, Vec2{100, 50}, child.Position())
}

func TestWidgetAlwaysFollowsParent(t *testing.T) {
	d, s, _ := newRunningScene(t)
	parent, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	w.IsAlignOnce = false
	w.SetAlignLeft(true)
	w.SetAlignRight(true)
	child.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, 200.0, child.Width())
	assert.True(t, w.Enabled())

	parent.SetContentSize(300, 100)
	d.Tick(testDT)
	assert.Equal(t, 300.0, child.Width())
	assert.Equal(t, 1, d.WidgetManager().Len())
}

func TestWidgetRegistrationFollowsEnable(t *testing.T) {
	d, s, _ := newRunningScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	child.AddComponent(w)
	require.Equal(t, 1, d.WidgetManager().Len())

	w.SetEnabled(false)
	assert.Zero(t, d.WidgetManager().Len())
	w.SetEnabled(true)
	assert.Equal(t, 1, d.WidgetManager().Len())

	child.SetActive(false)
	assert.Zero(t, d.WidgetManager().Len())
	d.Tick(testDT)
	assert.Zero(t, d.Stats().Aligned)
}

func TestUpdateAlignmentImmediate(t *testing.T) {
	d, s, _ := newRunningScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	w.SetAlignRight(true)
	child.AddComponent(w)

	w.UpdateAlignment()
	assert.Equal(t, 90.0, child.X())
	assert.False(t, d.WidgetManager().IsAligning())
	assert.True(t, w.Enabled())
}

// --- Editor mode ---

func newEditorScene(t *testing.T) (*Director, *Scene) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EditorMode = true
	d, _ := newTestDirectorWith(t, cfg)
	s := d.NewScene("edit")
	d.RunScene(s)
	return d, s
}

func TestEditorWidgetAdjustsToMove(t *testing.T) {
	d, s := newEditorScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	w.SetAlignLeft(true)
	w.SetLeft(10)
	child.AddComponent(w)

	d.Tick(testDT)
	assert.Equal(t, -80.0, child.X())
	// Editor mode keeps align-once widgets live.
	assert.True(t, w.Enabled())

	child.SetPosition(-70, child.Y())
	assert.Equal(t, 20.0, w.Left())
	d.Tick(testDT)
	assert.Equal(t, -70.0, child.X())
}

func TestEditorWidgetAdjustsToResize(t *testing.T) {
	d, s := newEditorScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	w.SetAlignLeft(true)
	w.SetLeft(10)
	child.AddComponent(w)
	d.Tick(testDT)

	child.SetContentSize(40, 20)
	assert.Equal(t, 0.0, w.Left())
	d.Tick(testDT)
	assert.Equal(t, -80.0, child.X())
}

func TestEditorWidgetMoveClearsCenter(t *testing.T) {
	d, s := newEditorScene(t)
	_, child := newWidgetChild(d, s, 20, 20)
	w := NewWidget()
	w.SetAlignHorizontalCenter(true)
	child.AddComponent(w)
	d.Tick(testDT)

	child.SetPosition(15, 0)
	assert.False(t, w.IsAlignHorizontalCenter())
}

func TestEditorSceneChildUsesDesignResolution(t *testing.T) {
	d, s := newEditorScene(t)
	n := d.NewNode("n")
	n.SetContentSize(100, 50)
	s.AddChild(n)
	w := NewWidget()
	w.SetAlignTop(true)
	n.AddComponent(w)

	d.Tick(testDT)
	// The scene's anchor is the origin, so the top edge sits at the design height.
	assert.Equal(t, 615.0, n.Y())
}
