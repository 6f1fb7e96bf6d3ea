package event

// Subscription represents a registered handler on an emitter.
type Subscription interface {
	// Cancel removes the handler. Safe to call more than once.
	Cancel()
}

// Emitter delivers values of type T to subscribed handlers.
// The zero value is not usable; create one with NewEmitter.
type Emitter[T any] struct {
	handlers []*handler[T]
}

type handler[T any] struct {
	owner     *Emitter[T]
	fn        func(T)
	cancelled bool
}

// NewEmitter creates an emitter with no subscribers.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscribe registers fn to receive every value emitted after this call.
// Handlers run in registration order.
func (e *Emitter[T]) Subscribe(fn func(T)) Subscription {
	h := &handler[T]{owner: e, fn: fn}
	e.handlers = append(e.handlers, h)
	return h
}

// Emit delivers v to all active handlers synchronously, in registration
// order. Handlers registered during delivery do not receive v; handlers
// cancelled during delivery are skipped if not yet invoked.
func (e *Emitter[T]) Emit(v T) {
	// Snapshot so handlers can subscribe/cancel mid-delivery.
	handlers := e.handlers
	for _, h := range handlers {
		if h.cancelled {
			continue
		}
		h.fn(v)
	}
}

// Len returns the number of active subscriptions.
func (e *Emitter[T]) Len() int {
	return len(e.handlers)
}

// Cancel removes the handler from its emitter.
func (h *handler[T]) Cancel() {
	if h.cancelled {
		return
	}
	h.cancelled = true
	e := h.owner
	for i, other := range e.handlers {
		if other == h {
			// Full-slice expression forces reallocation so snapshots
			// taken by an in-flight Emit stay intact.
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return
		}
	}
}
