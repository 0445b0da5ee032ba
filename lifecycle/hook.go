// Package lifecycle provides the in-process signals agents listen to: a generic
// callback list and the game lifecycle publisher built on top of it.
package lifecycle

// Subscription detaches a callback from the hook it was registered on.
// The zero value is valid and does nothing.
type Subscription struct {
	cancel func()
}

// Cancel is idempotent.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Hook is an ordered list of callbacks. Dispatch works on a snapshot, so
// callbacks may subscribe or cancel (themselves or others) while an Emit is in
// progress; a callback cancelled mid-dispatch is not invoked afterwards.
type Hook[T any] struct {
	next  uint64
	subs  map[uint64]func(T)
	order []uint64
}

func (h *Hook[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	if h.subs == nil {
		h.subs = make(map[uint64]func(T))
	}
	h.next++
	id := h.next
	h.subs[id] = fn

	order := make([]uint64, len(h.order), len(h.order)+1)
	copy(order, h.order)
	h.order = append(order, id)

	return Subscription{cancel: func() { h.remove(id) }}
}

func (h *Hook[T]) remove(id uint64) {
	if _, ok := h.subs[id]; !ok {
		return
	}
	delete(h.subs, id)

	order := make([]uint64, 0, len(h.order))
	for _, other := range h.order {
		if other != id {
			order = append(order, other)
		}
	}
	h.order = order
}

func (h *Hook[T]) Emit(v T) {
	for _, id := range h.order {
		if fn, ok := h.subs[id]; ok {
			fn(v)
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hook[T]) Len() int {
	return len(h.subs)
}
