package event

// Handler processes specific event types.
type Handler interface {
	// HandleEvent processes a single event, synchronously during dispatch.
	HandleEvent(ev Event)

	// EventTypes returns the types this handler wants.
	EventTypes() []Type
}

// Router dispatches queued events to registered handlers. Dispatch is
// single-threaded; handlers for the same type run in registration order.
type Router struct {
	handlers map[Type][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue.
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[Type][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types.
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order.
func (r *Router) DispatchAll() {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
