package event

// Handler processes a single event, called synchronously on the host loop
type Handler func(ev Event)

// Subscription identifies a registered handler for Unsubscribe
type Subscription struct {
	typ Type
	id  uint64
}

type entry struct {
	id      uint64
	handler Handler
}

// Bus dispatches events to subscribed handlers
//
// Architecture:
//   - Single-threaded dispatch on the host loop
//   - Multiple handlers can subscribe to the same type
//   - Handlers are invoked in subscription order
//   - Queued events are drained by DispatchAll in FIFO order
type Bus struct {
	handlers [typeCount][]entry
	nextID   uint64
	queue    *Queue
}

// NewBus creates a bus with its own queue
func NewBus() *Bus {
	return &Bus{queue: NewQueue()}
}

// Subscribe adds a handler for the given type
func (b *Bus) Subscribe(t Type, h Handler) Subscription {
	if t < 0 || t >= typeCount || h == nil {
		return Subscription{}
	}
	b.nextID++
	b.handlers[t] = append(b.handlers[t], entry{id: b.nextID, handler: h})
	return Subscription{typ: t, id: b.nextID}
}

// Unsubscribe removes a handler, false if it was not registered
func (b *Bus) Unsubscribe(sub Subscription) bool {
	if sub.id == 0 {
		return false
	}
	list := b.handlers[sub.typ]
	for i, e := range list {
		if e.id == sub.id {
			// Copy so an in-flight Publish keeps iterating its snapshot
			next := make([]entry, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.handlers[sub.typ] = next
			return true
		}
	}
	return false
}

// Publish delivers an event immediately to the handlers registered at call time
func (b *Bus) Publish(ev Event) {
	if ev.Type < 0 || ev.Type >= typeCount {
		return
	}
	for _, e := range b.handlers[ev.Type] {
		e.handler(ev)
	}
}

// Push queues an event for the next DispatchAll, safe from any goroutine
func (b *Bus) Push(ev Event) {
	b.queue.Push(ev)
}

// DispatchAll consumes all pending events and publishes them in FIFO order
func (b *Bus) DispatchAll() int {
	events := b.queue.Consume()
	for _, ev := range events {
		b.Publish(ev)
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t Type) int {
	if t < 0 || t >= typeCount {
		return 0
	}
	return len(b.handlers[t])
}
