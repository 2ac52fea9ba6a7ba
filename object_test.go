package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookRecorder struct {
	calls []string
}

func (h *hookRecorder) preDestroy() { h.calls = append(h.calls, "pre") }
func (h *hookRecorder) destruct() { h.calls = append(h.calls, "destruct") }

func newHookedObject(d *Director, name string) (*Object, *hookRecorder) {
	h := &hookRecorder{}
	o := &Object{}
	o.initObject(d.DestroyQueue(), name, h)
	return o, h
}

// --- Destroy protocol ---

func TestObjectDestroyIsDeferred(t *testing.T) {
	d, _ := newTestDirector(t)
	o, h := newHookedObject(d, "obj")

	require.True(t, o.Destroy())
	assert.True(t, o.IsValid())
	assert.True(t, o.WillDestroy())
	assert.True(t, o.HasFlags(FlagToDestroy))
	assert.Empty(t, h.calls)
	assert.Equal(t, 1, d.Scheduler().PendingTasks())

	d.Scheduler().Drain()
	assert.False(t, o.IsValid())
	assert.False(t, o.WillDestroy())
	assert.Equal(t, []string{"pre", "destruct"}, h.calls)
	assert.Empty(t, o.Name())
}

func TestObjectDestroyTwice(t *testing.T) {
	d, hook := newTestDirector(t)
	o, h := newHookedObject(d, "obj")

	assert.True(t, o.Destroy())
	assert.False(t, o.Destroy())
	assert.Equal(t, 1, d.DestroyQueue().Len())

	d.DestroyQueue().Flush()
	assert.Equal(t, []string{"pre", "destruct"}, h.calls)

	assert.False(t, o.Destroy())
	assertWarned(t, hook, ErrObjectDestroyed)
}

func TestObjectCancelDestroy(t *testing.T) {
	d, _ := newTestDirector(t)
	o, h := newHookedObject(d, "obj")

	o.Destroy()
	o.CancelDestroy()
	assert.False(t, o.WillDestroy())
	assert.Zero(t, d.DestroyQueue().Len())

	d.Scheduler().Drain()
	assert.True(t, o.IsValid())
	assert.Empty(t, h.calls)

	// A second request after cancelling starts a new batch.
	assert.True(t, o.Destroy())
	d.Scheduler().Drain()
	assert.False(t, o.IsValid())
}

func TestCancelDestroyWithoutRequestIsNoop(t *testing.T) {
	d, _ := newTestDirector(t)
	o, _ := newHookedObject(d, "obj")
	o.CancelDestroy()
	assert.True(t, o.IsValid())
	assert.False(t, o.WillDestroy())
}

func TestDestroyQueueBatchesOneFlush(t *testing.T) {
	d, _ := newTestDirector(t)
	a, _ := newHookedObject(d, "a")
	b, _ := newHookedObject(d, "b")
	c, _ := newHookedObject(d, "c")

	a.Destroy()
	b.Destroy()
	c.Destroy()
	assert.Equal(t, 3, d.DestroyQueue().Len())
	assert.Equal(t, 1, d.Scheduler().PendingTasks())

	assert.Equal(t, 1, d.Scheduler().Drain())
	assert.False(t, a.IsValid())
	assert.False(t, b.IsValid())
	assert.False(t, c.IsValid())
}

func TestDestroyQueueFlushSkipsCancelled(t *testing.T) {
	d, _ := newTestDirector(t)
	a, _ := newHookedObject(d, "a")
	b, _ := newHookedObject(d, "b")
	a.Destroy()
	b.Destroy()
	b.CancelDestroy()

	assert.Equal(t, 1, d.DestroyQueue().Flush())
	assert.False(t, a.IsValid())
	assert.True(t, b.IsValid())
}

func TestDestroyRequestedDuringFlushWaits(t *testing.T) {
	d, _ := newTestDirector(t)
	late, _ := newHookedObject(d, "late")
	first := &Object{}
	first.initObject(d.DestroyQueue(), "first", &chainHooks{next: late})

	first.Destroy()
	d.Scheduler().Drain()
	assert.False(t, first.IsValid())
	assert.True(t, late.IsValid())
	assert.True(t, late.WillDestroy())

	d.Scheduler().Drain()
	assert.False(t, late.IsValid())
}

type chainHooks struct{ next *Object }

func (c *chainHooks) preDestroy() { c.next.Destroy() }
func (c *chainHooks) destruct() {}

func TestDestroyImmediateTwiceLogsError(t *testing.T) {
	d, hook := newTestDirector(t)
	o, h := newHookedObject(d, "obj")
	o.destroyImmediate()
	o.destroyImmediate()
	assert.Equal(t, []string{"pre", "destruct"}, h.calls)
	assertWarned(t, hook, ErrObjectDestroyed)
}

// --- Flags ---

func TestSetFlagsProtectsDestroyBits(t *testing.T) {
	o := NewObject(nil, "o")
	o.SetFlags(FlagDestroyed | FlagToDestroy | FlagDontSave)
	assert.True(t, o.IsValid())
	assert.False(t, o.WillDestroy())
	assert.True(t, o.HasFlags(FlagDontSave))

	o.ClearFlags(FlagDontSave)
	assert.False(t, o.HasFlags(FlagDontSave))
}

func TestFlagMasks(t *testing.T) {
	assert.Equal(t, FlagHideInGame|FlagHideInEditor, FlagHide)
	assert.Zero(t, FlagsPersistentMask&FlagToDestroy)
	assert.Zero(t, FlagsPersistentMask&FlagIsOnLoadCalled)
	assert.NotZero(t, FlagsPersistentMask&FlagDontSave)
	assert.NotZero(t, FlagsTransformLock&FlagIsSizeLocked)
}

func TestObjectWithoutQueue(t *testing.T) {
	o := NewObject(nil, "loose")
	assert.True(t, o.Destroy())
	assert.True(t, o.WillDestroy())
	o.destroyImmediate()
	assert.False(t, o.IsValid())
	assert.False(t, o.Destroy())
}

func TestIsValidObject(t *testing.T) {
	assert.False(t, IsValidObject(nil))
	var nilObj *Object
	assert.False(t, IsValidObject(nilObj))
	o := NewObject(nil, "o")
	assert.True(t, IsValidObject(o))
	o.destroyImmediate()
	assert.False(t, IsValidObject(o))
}
