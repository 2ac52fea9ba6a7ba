package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTargetOnReplacesSameOwner(t *testing.T) {
	var et EventTarget
	var got []string
	owner := new(int)
	et.On(EventPositionChanged, owner, func(Event) { got = append(got, "a") })
	et.On(EventPositionChanged, owner, func(Event) { got = append(got, "b") })
	et.On(EventPositionChanged, "other", func(Event) { got = append(got, "c") })

	et.Dispatch(Event{Type: EventPositionChanged})
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestEventTargetOnNilListener(t *testing.T) {
	var et EventTarget
	et.On(EventSizeChanged, "x", nil)
	assert.False(t, et.HasListener(EventSizeChanged, nil))
}

func TestEventTargetOffAndTargetOff(t *testing.T) {
	var et EventTarget
	et.On(EventPositionChanged, "a", func(Event) {})
	et.On(EventSizeChanged, "a", func(Event) {})
	et.On(EventSizeChanged, "b", func(Event) {})

	et.Off(EventPositionChanged, "a")
	assert.False(t, et.HasListener(EventPositionChanged, nil))

	et.TargetOff("a")
	assert.False(t, et.HasListener(EventSizeChanged, "a"))
	assert.True(t, et.HasListener(EventSizeChanged, "b"))
	assert.True(t, et.HasListener(EventSizeChanged, nil))

	et.Off(EventColorChanged, "nobody")
}

func TestDispatchSkipsListenersRemovedMidDispatch(t *testing.T) {
	var et EventTarget
	var got []string
	et.On(EventChildAdded, "a", func(Event) {
		got = append(got, "a")
		et.Off(EventChildAdded, "b")
		et.On(EventChildAdded, "c", func(Event) { got = append(got, "c") })
	})
	et.On(EventChildAdded, "b", func(Event) { got = append(got, "b") })

	et.Dispatch(Event{Type: EventChildAdded})
	assert.Equal(t, []string{"a"}, got)

	got = nil
	et.Dispatch(Event{Type: EventChildAdded})
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestNodeEmitSetsTarget(t *testing.T) {
	d, _ := newTestDirector(t)
	n := d.NewNode("n")
	var ev Event
	n.On(EventColorChanged, "t", func(e Event) { ev = e })
	n.Emit(EventColorChanged, 42)
	assert.Same(t, n, ev.Target)
	assert.Equal(t, EventColorChanged, ev.Type)
	assert.Equal(t, 42, ev.Detail)
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventPositionChanged, "position-changed"},
		{EventChildReorder, "child-reorder"},
		{EventActiveInHierarchyChanged, "active-in-hierarchy-changed"},
		{EventAnimationFinished, "finished"},
		{EventType(200), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
