package arbor

// Event is delivered to node listeners.
type Event struct {
	Type   EventType
	Target *Node
	// Detail carries the event payload: the previous value for *-changed
	// events, the child for child-added/child-removed.
	Detail any
}

// Listener handles a node event.
type Listener func(Event)

type listenerEntry struct {
	owner   any
	fn      Listener
	removed bool
}

// EventTarget is the publish/subscribe component embedded in every Node.
// Listeners are keyed by (event type, owner); owner is any comparable value,
// usually the subscribing component, and registering the same key twice
// replaces the previous listener.
type EventTarget struct {
	listeners map[EventType][]*listenerEntry
}

// On subscribes fn to events of type typ on behalf of owner.
func (t *EventTarget) On(typ EventType, owner any, fn Listener) {
	if fn == nil {
		return
	}
	if t.listeners == nil {
		t.listeners = make(map[EventType][]*listenerEntry)
	}
	for _, e := range t.listeners[typ] {
		if !e.removed && e.owner == owner {
			e.fn = fn
			return
		}
	}
	t.listeners[typ] = append(t.listeners[typ], &listenerEntry{owner: owner, fn: fn})
}

// Off removes owner's listener for typ. No-op if none is registered.
func (t *EventTarget) Off(typ EventType, owner any) {
	list := t.listeners[typ]
	for i, e := range list {
		if e.owner == owner && !e.removed {
			e.removed = true
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			t.listeners[typ] = list[:len(list)-1]
			return
		}
	}
}

// TargetOff removes every listener registered by owner.
func (t *EventTarget) TargetOff(owner any) {
	for typ := range t.listeners {
		t.Off(typ, owner)
	}
}

// HasListener reports whether anyone listens for typ. When owner is non-nil
// only that owner's listener counts.
func (t *EventTarget) HasListener(typ EventType, owner any) bool {
	for _, e := range t.listeners[typ] {
		if e.removed {
			continue
		}
		if owner == nil || e.owner == owner {
			return true
		}
	}
	return false
}

// Dispatch delivers ev to the listeners registered when dispatch began.
// Listeners removed by an earlier callback in the same dispatch are skipped.
func (t *EventTarget) Dispatch(ev Event) {
	list := t.listeners[ev.Type]
	if len(list) == 0 {
		return
	}
	snapshot := make([]*listenerEntry, len(list))
	copy(snapshot, list)
	for _, e := range snapshot {
		if !e.removed {
			e.fn(ev)
		}
	}
}

func (t *EventTarget) clearListeners() {
	for _, list := range t.listeners {
		for _, e := range list {
			e.removed = true
		}
	}
	t.listeners = nil
}
