package arbor

// Scheduler holds the deferred work of one Director. Nothing here runs on its
// own: the director drains each queue at a fixed point in the frame.
//
// Both queues use snapshot semantics: entries added while a queue is being
// drained are kept for the next drain.
type Scheduler struct {
	afterUpdate []afterUpdateEntry
	tasks       []func()
}

type afterUpdateEntry struct {
	key any
	fn  func()
}

// OnceAfterUpdate registers fn to run the next time the after-update event is
// emitted. Registering again with the same key replaces the earlier callback,
// so several requests in one frame collapse into a single call.
func (s *Scheduler) OnceAfterUpdate(key any, fn func()) {
	for i := range s.afterUpdate {
		if s.afterUpdate[i].key == key {
			s.afterUpdate[i].fn = fn
			return
		}
	}
	s.afterUpdate = append(s.afterUpdate, afterUpdateEntry{key: key, fn: fn})
}

// CancelAfterUpdate drops a pending after-update callback. No-op if key is
// not registered.
func (s *Scheduler) CancelAfterUpdate(key any) {
	for i := range s.afterUpdate {
		if s.afterUpdate[i].key == key {
			copy(s.afterUpdate[i:], s.afterUpdate[i+1:])
			s.afterUpdate[len(s.afterUpdate)-1] = afterUpdateEntry{}
			s.afterUpdate = s.afterUpdate[:len(s.afterUpdate)-1]
			return
		}
	}
}

// PendingAfterUpdate returns the number of registered after-update callbacks.
func (s *Scheduler) PendingAfterUpdate() int {
	return len(s.afterUpdate)
}

// EmitAfterUpdate runs and clears every callback registered before the call.
func (s *Scheduler) EmitAfterUpdate() {
	if len(s.afterUpdate) == 0 {
		return
	}
	batch := s.afterUpdate
	s.afterUpdate = nil
	for _, e := range batch {
		e.fn()
	}
}

// Defer queues fn for the next Drain.
func (s *Scheduler) Defer(fn func()) {
	s.tasks = append(s.tasks, fn)
}

// PendingTasks returns the number of queued deferred tasks.
func (s *Scheduler) PendingTasks() int {
	return len(s.tasks)
}

// Drain runs the tasks that were queued when Drain started and returns how
// many ran. Tasks queued by those tasks stay queued.
func (s *Scheduler) Drain() int {
	n := len(s.tasks)
	if n == 0 {
		return 0
	}
	batch := s.tasks[:n:n]
	s.tasks = nil
	for _, fn := range batch {
		fn()
	}
	return n
}
