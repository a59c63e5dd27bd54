package events

// Handler receives every published event.
type Handler func(Event)

// Bus is a synchronous fan-out of gameplay events. It is injected into each
// producer at construction; there is no package-level singleton. Publishing
// happens inside the simulation tick, so handlers run on the same goroutine
// in subscription order.
type Bus struct {
	handlers []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make([]Handler, 0, 8)}
}

// Subscribe registers a handler for all events.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every handler in order. Handlers may
// publish further events; those are delivered depth-first.
func (b *Bus) Publish(e Event) {
	for _, h := range b.handlers {
		h(e)
	}
}
