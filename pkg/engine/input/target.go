package input

// Listener receives pointer events.
type Listener func(PointerEvent)

type listener struct {
	id uint32
	fn Listener
}

// Target is an event registry standing in for a render surface: hosts Emit
// events, the engine registers listeners. It is driven from the frame thread
// only and takes no locks.
type Target struct {
	listeners map[EventType][]listener
	nextID    uint32
}

// NewTarget creates an empty target.
func NewTarget() *Target {
	return &Target{listeners: make(map[EventType][]listener)}
}

// Handle allows removing a registered listener.
type Handle struct {
	id     uint32
	target *Target
	event  EventType
}

// On registers fn for events of type t.
func (t *Target) On(ev EventType, fn Listener) Handle {
	t.nextID++
	id := t.nextID
	t.listeners[ev] = append(t.listeners[ev], listener{id: id, fn: fn})
	return Handle{id: id, target: t, event: ev}
}

// Remove unregisters the listener so it no longer fires. Removing twice is a no-op.
func (h Handle) Remove() {
	if h.target == nil {
		return
	}
	s := h.target.listeners[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.target.listeners[h.event] = s[:len(s)-1]
			return
		}
	}
}

// Emit delivers ev to every listener registered for its type, in
// registration order.
func (t *Target) Emit(ev PointerEvent) {
	if ev.Device == DeviceUnknown {
		ev.Device = DeviceOf(ev.Type)
	}
	// Copy so a listener may remove itself while being called.
	ls := append([]listener(nil), t.listeners[ev.Type]...)
	for _, l := range ls {
		l.fn(ev)
	}
}

// ListenerCount returns the number of listeners registered for ev.
func (t *Target) ListenerCount(ev EventType) int {
	return len(t.listeners[ev])
}
