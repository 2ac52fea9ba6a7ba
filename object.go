package arbor

// ObjectFlags is the bitset controlling an object's lifecycle state.
type ObjectFlags uint32

const (
	FlagDestroyed    ObjectFlags = 1 << 0
	FlagToDestroy    ObjectFlags = 1 << 1 // destroy requested, waiting for the flush
	FlagDontSave     ObjectFlags = 1 << 2
	FlagEditorOnly   ObjectFlags = 1 << 3
	FlagDirty        ObjectFlags = 1 << 4
	FlagDontDestroy  ObjectFlags = 1 << 5 // survives destruction of its parent and scene switches
	FlagDestroying   ObjectFlags = 1 << 6 // set while the pre-destroy hook runs
	FlagHideInGame   ObjectFlags = 1 << 9
	FlagHideInEditor ObjectFlags = 1 << 10

	FlagIsPreloadStarted ObjectFlags = 1 << 11
	FlagIsOnEnableCalled ObjectFlags = 1 << 12
	FlagIsOnLoadCalled   ObjectFlags = 1 << 13
	FlagIsOnLoadStarted  ObjectFlags = 1 << 14
	FlagIsOnStartCalled  ObjectFlags = 1 << 15

	FlagIsRotationLocked ObjectFlags = 1 << 16
	FlagIsScaleLocked    ObjectFlags = 1 << 17
	FlagIsAnchorLocked   ObjectFlags = 1 << 18
	FlagIsSizeLocked     ObjectFlags = 1 << 19
	FlagIsPositionLocked ObjectFlags = 1 << 20

	FlagHide = FlagHideInGame | FlagHideInEditor

	// FlagsLifecycle covers the per-component callback bookkeeping bits.
	FlagsLifecycle = FlagIsPreloadStarted | FlagIsOnEnableCalled | FlagIsOnLoadCalled |
		FlagIsOnLoadStarted | FlagIsOnStartCalled
	// FlagsTransformLock covers the editor transform lock bits.
	FlagsTransformLock = FlagIsRotationLocked | FlagIsScaleLocked | FlagIsAnchorLocked |
		FlagIsSizeLocked | FlagIsPositionLocked

	// FlagsPersistentMask strips the flags that never survive cloning or saving.
	FlagsPersistentMask = ^(FlagToDestroy | FlagDirty | FlagDestroying | FlagDontDestroy |
		FlagIsOnEnableCalled | FlagIsOnLoadStarted | FlagIsOnLoadCalled | FlagIsOnStartCalled)
)

// destroyHooks lets an owning type customise teardown. preDestroy releases
// resources, destruct clears the owner's fields.
type destroyHooks interface {
	preDestroy()
	destruct()
}

// Object is the lifecycle base embedded by nodes and components. Destroy only
// requests destruction; the owning director finalises it when its
// DestroyQueue is flushed, so a destroy requested during a traversal never
// invalidates that traversal.
type Object struct {
	name  string
	flags ObjectFlags
	queue *DestroyQueue
	hooks destroyHooks
}

// NewObject creates a standalone lifecycle object bound to queue.
func NewObject(queue *DestroyQueue, name string) *Object {
	o := &Object{}
	o.initObject(queue, name, nil)
	return o
}

func (o *Object) initObject(queue *DestroyQueue, name string, hooks destroyHooks) {
	o.name = name
	o.queue = queue
	o.hooks = hooks
}

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// SetName sets the object's name.
func (o *Object) SetName(name string) { o.name = name }

// Flags returns the raw flag bits.
func (o *Object) Flags() ObjectFlags { return o.flags }

// HasFlags reports whether every bit in f is set.
func (o *Object) HasFlags(f ObjectFlags) bool { return o.flags&f == f }

// SetFlags sets the given bits. FlagDestroyed and FlagToDestroy are owned by
// the destroy protocol and are ignored here.
func (o *Object) SetFlags(f ObjectFlags) {
	o.flags |= f &^ (FlagDestroyed | FlagToDestroy)
}

// ClearFlags clears the given bits, with the same restriction as SetFlags.
func (o *Object) ClearFlags(f ObjectFlags) {
	o.flags &^= f &^ (FlagDestroyed | FlagToDestroy)
}

// IsValid reports whether the object has not been destroyed yet. An object
// whose destruction is pending is still valid until the queue is flushed.
func (o *Object) IsValid() bool {
	return o != nil && o.flags&FlagDestroyed == 0
}

// WillDestroy reports whether destruction was requested but not finalised.
func (o *Object) WillDestroy() bool {
	return o.flags&FlagDestroyed == 0 && o.flags&FlagToDestroy != 0
}

// Destroy requests destruction. It returns true only for the first request;
// repeated requests and requests on destroyed objects return false.
func (o *Object) Destroy() bool {
	if o.flags&FlagDestroyed != 0 {
		if o.queue != nil {
			o.queue.warn(o, ErrObjectDestroyed)
		}
		return false
	}
	if o.flags&FlagToDestroy != 0 {
		return false
	}
	o.flags |= FlagToDestroy
	if o.queue != nil {
		o.queue.push(o)
	}
	return true
}

// CancelDestroy rescinds a pending destroy request, restoring the object to
// full liveness. No-op if nothing is pending.
func (o *Object) CancelDestroy() {
	if o.flags&FlagToDestroy == 0 || o.flags&FlagDestroyed != 0 {
		return
	}
	o.flags &^= FlagToDestroy
	if o.queue != nil {
		o.queue.remove(o)
	}
}

// destroyImmediate runs the teardown: pre-destroy hook, field clearing, then
// the Destroyed flag.
func (o *Object) destroyImmediate() {
	if o.flags&FlagDestroyed != 0 {
		if o.queue != nil {
			o.queue.error(o, ErrObjectDestroyed)
		}
		return
	}
	if o.hooks != nil {
		o.hooks.preDestroy()
		o.hooks.destruct()
	}
	o.name = ""
	o.flags |= FlagDestroyed
}

// IsValidObject reports whether obj is non-nil and not destroyed.
func IsValidObject(obj interface{ IsValid() bool }) bool {
	if obj == nil {
		return false
	}
	return obj.IsValid()
}

// DestroyQueue collects destroy requests and finalises them in batches.
// The first request of a batch schedules one Flush on the director's
// scheduler.
type DestroyQueue struct {
	pending   []*Object
	scheduled bool
	director  *Director
}

func (q *DestroyQueue) push(o *Object) {
	q.pending = append(q.pending, o)
	if !q.scheduled && q.director != nil {
		q.scheduled = true
		q.director.scheduler.Defer(func() { q.Flush() })
	}
}

func (q *DestroyQueue) remove(o *Object) {
	for i, p := range q.pending {
		if p == o {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = nil
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
}

// Len returns the number of objects waiting to be destroyed.
func (q *DestroyQueue) Len() int {
	return len(q.pending)
}

// Flush destroys every object queued before the call and returns how many
// entries were processed. Objects queued by pre-destroy hooks during the
// flush stay queued for the next flush; entries whose request was cancelled
// are skipped.
func (q *DestroyQueue) Flush() int {
	q.scheduled = false
	batch := q.pending
	q.pending = nil
	for _, o := range batch {
		if o.flags&FlagToDestroy != 0 && o.flags&FlagDestroyed == 0 {
			o.destroyImmediate()
		}
	}
	return len(batch)
}

func (q *DestroyQueue) warn(o *Object, err error) {
	if q.director != nil {
		q.director.log.WithField("component", "arbor").WithField("object", o.name).WithError(err).Warn("destroy rejected")
	}
}

func (q *DestroyQueue) error(o *Object, err error) {
	if q.director != nil {
		q.director.log.WithField("component", "arbor").WithField("object", o.name).WithError(err).Error("destroy rejected")
	}
}
