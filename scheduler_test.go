package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnceAfterUpdateCollapsesByKey(t *testing.T) {
	var s Scheduler
	var got []string
	key := new(int)
	s.OnceAfterUpdate(key, func() { got = append(got, "first") })
	s.OnceAfterUpdate(key, func() { got = append(got, "second") })
	s.OnceAfterUpdate("other", func() { got = append(got, "other") })
	assert.Equal(t, 2, s.PendingAfterUpdate())

	s.EmitAfterUpdate()
	assert.Equal(t, []string{"second", "other"}, got)
	assert.Zero(t, s.PendingAfterUpdate())

	s.EmitAfterUpdate()
	assert.Len(t, got, 2)
}

func TestCancelAfterUpdate(t *testing.T) {
	var s Scheduler
	ran := false
	s.OnceAfterUpdate("k", func() { ran = true })
	s.CancelAfterUpdate("k")
	s.CancelAfterUpdate("missing")
	s.EmitAfterUpdate()
	assert.False(t, ran)
}

func TestEmitAfterUpdateSnapshot(t *testing.T) {
	var s Scheduler
	calls := 0
	s.OnceAfterUpdate("a", func() {
		calls++
		s.OnceAfterUpdate("b", func() { calls++ })
	})
	s.EmitAfterUpdate()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.PendingAfterUpdate())
	s.EmitAfterUpdate()
	assert.Equal(t, 2, calls)
}

func TestDrainSnapshot(t *testing.T) {
	var s Scheduler
	var order []int
	s.Defer(func() {
		order = append(order, 1)
		s.Defer(func() { order = append(order, 3) })
	})
	s.Defer(func() { order = append(order, 2) })
	assert.Equal(t, 2, s.PendingTasks())

	assert.Equal(t, 2, s.Drain())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, s.PendingTasks())

	assert.Equal(t, 1, s.Drain())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, s.Drain())
}
