package game

import (
	"sync"
	"sync/atomic"
)

// PointerSource delivers pointer X positions in court coordinates.
// Subscribe returns a cancel func; no delivery starts after it returns.
type PointerSource interface {
	Subscribe(fn func(x float64)) (cancel func())
}

// PointerHub fans pointer positions out to subscribers.
// Front ends publish into it from their input loop.
type PointerHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	fn        func(float64)
	cancelled atomic.Bool
}

// NewPointerHub creates an empty hub.
func NewPointerHub() *PointerHub {
	return &PointerHub{subs: make(map[int]*subscription)}
}

// Subscribe registers fn. The returned cancel is idempotent.
func (h *PointerHub) Subscribe(fn func(x float64)) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	sub := &subscription{fn: fn}
	h.subs[id] = sub
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.cancelled.Store(true)
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish delivers x to every current subscriber.
func (h *PointerHub) Publish(x float64) {
	h.mu.Lock()
	subs := make([]*subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	// Called outside the lock so a subscriber may cancel itself or others
	for _, sub := range subs {
		if sub.cancelled.Load() {
			continue
		}
		sub.fn(x)
	}
}

// Active returns the number of live subscriptions.
func (h *PointerHub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
