package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainComponent struct {
	BaseComponent
	updates int
}

func (p *plainComponent) Update(float64) { p.updates++ }

func TestAddComponentOnInactiveNode(t *testing.T) {
	d, _ := newTestDirector(t)
	var log []string
	n := d.NewNode("n")
	r := newRecorder(&log, "r")
	got := n.AddComponent(r)
	assert.Same(t, r, got)
	assert.Same(t, n, r.Node())
	assert.True(t, r.Enabled())
	assert.False(t, r.EnabledInHierarchy())
	assert.Equal(t, "*arbor.phaseRecorder", r.Name())
	assert.Empty(t, log)
}

func TestAddComponentTwiceWarns(t *testing.T) {
	d, hook := newTestDirector(t)
	a, b := d.NewNode("a"), d.NewNode("b")
	c := &plainComponent{}
	a.AddComponent(c)
	assert.Nil(t, b.AddComponent(c))
	assert.Same(t, a, c.Node())
	assertWarned(t, hook, ErrChildHasParent)
}

func TestAddComponentToDestroyedNode(t *testing.T) {
	d, hook := newTestDirector(t)
	n := d.NewNode("n")
	n.destroyImmediate()
	assert.Nil(t, n.AddComponent(&plainComponent{}))
	assertWarned(t, hook, ErrObjectDestroyed)
}

func TestOnLoadRunsOnce(t *testing.T) {
	d, s, _ := newRunningScene(t)
	var log []string
	n := d.NewNode("n")
	s.AddChild(n)
	n.AddComponent(newRecorder(&log, "r"))
	n.RemoveFromParent()
	s.AddChild(n)
	assert.Equal(t, []string{"r:load", "r:enable", "r:disable", "r:enable"}, log)
}

func TestSetEnabled(t *testing.T) {
	d, s, _ := newRunningScene(t)
	var log []string
	n := d.NewNode("n")
	s.AddChild(n)
	r := newRecorder(&log, "r")
	n.AddComponent(r)
	log = log[:0]

	r.SetEnabled(false)
	r.SetEnabled(false)
	assert.False(t, r.EnabledInHierarchy())
	r.SetEnabled(true)
	assert.True(t, r.EnabledInHierarchy())
	assert.Equal(t, []string{"r:disable", "r:enable"}, log)

	d.Tick(testDT)
	log = log[:0]
	r.SetEnabled(false)
	d.Tick(testDT)
	assert.Equal(t, []string{"r:disable"}, log)
}

func TestDisabledComponentSkipsActivationEdges(t *testing.T) {
	d, s, _ := newRunningScene(t)
	var log []string
	n := d.NewNode("n")
	r := newRecorder(&log, "r")
	n.AddComponent(r)
	r.SetEnabled(false)
	s.AddChild(n)
	assert.Equal(t, []string{"r:load"}, log)
}

func TestRemoveComponent(t *testing.T) {
	d, s, _ := newRunningScene(t)
	var log []string
	n := d.NewNode("n")
	s.AddChild(n)
	r := newRecorder(&log, "r")
	n.AddComponent(r)

	other := d.NewNode("other")
	other.RemoveComponent(r)
	other.RemoveComponent(nil)
	assert.False(t, r.WillDestroy())

	n.RemoveComponent(r)
	assert.True(t, r.WillDestroy())
	assert.Equal(t, []string{"r:load", "r:enable", "r:disable"}, log)
	assert.Len(t, n.Components(), 1)

	d.Tick(testDT)
	assert.Equal(t, []string{"r:load", "r:enable", "r:disable", "r:destroy"}, log)
	assert.Empty(t, n.Components())
	assert.False(t, r.IsValid())
	assert.Nil(t, r.Node())
}

func TestComponentDestroyDropsItsListeners(t *testing.T) {
	d, _ := newTestDirector(t)
	n := d.NewNode("n")
	c := &plainComponent{}
	n.AddComponent(c)
	n.On(EventSizeChanged, c, func(Event) {})
	c.Destroy()
	d.DestroyQueue().Flush()
	assert.False(t, n.HasListener(EventSizeChanged, nil))
}

func TestOnDestroySkippedWithoutLoad(t *testing.T) {
	d, _ := newTestDirector(t)
	var log []string
	n := d.NewNode("n")
	n.AddComponent(newRecorder(&log, "r"))
	n.Destroy()
	d.DestroyQueue().Flush()
	assert.Empty(t, log)
}

func TestGetComponent(t *testing.T) {
	d, _ := newTestDirector(t)
	n := d.NewNode("n")
	a := &plainComponent{}
	b := &plainComponent{}
	l := NewLayout()
	n.AddComponent(a)
	n.AddComponent(l)
	n.AddComponent(b)

	got, ok := GetComponent[*plainComponent](n)
	require.True(t, ok)
	assert.Same(t, a, got)

	lay, ok := GetComponent[*Layout](n)
	require.True(t, ok)
	assert.Same(t, l, lay)

	_, ok = GetComponent[*Widget](n)
	assert.False(t, ok)

	assert.Equal(t, []*plainComponent{a, b}, GetComponents[*plainComponent](n))
	assert.Len(t, GetComponents[Updater](n), 2)
	assert.Len(t, GetComponents[LateUpdater](n), 1)
}

func TestUpdateSkipsDisabledAndPendingComponents(t *testing.T) {
	d, s, _ := newRunningScene(t)
	n := d.NewNode("n")
	s.AddChild(n)
	on := &plainComponent{}
	off := &plainComponent{}
	n.AddComponent(on)
	n.AddComponent(off)
	off.SetEnabled(false)

	d.Tick(testDT)
	assert.Equal(t, 1, on.updates)
	assert.Zero(t, off.updates)
}
