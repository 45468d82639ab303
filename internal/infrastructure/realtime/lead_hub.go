// Package realtime fans the authoritative lead collection out to
// subscribed views. Every publish is a full replacement snapshot; a
// subscriber that registers mid-stream receives the next snapshot, not a
// replay.
package realtime

import (
	"sync"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase/interfaces"
)

type LeadHub struct {
	mu   sync.Mutex
	next int
	subs map[int]func([]entities.Lead)
}

var _ interfaces.ILeadStream = (*LeadHub)(nil)

func NewLeadHub() *LeadHub {
	return &LeadHub{subs: make(map[int]func([]entities.Lead))}
}

func (h *LeadHub) Publish(leads []entities.Lead) {
	h.mu.Lock()
	callbacks := make([]func([]entities.Lead), 0, len(h.subs))
	for _, fn := range h.subs {
		callbacks = append(callbacks, fn)
	}
	h.mu.Unlock()

	// Callbacks run outside the lock: a subscriber may unsubscribe from
	// within its own callback.
	for _, fn := range callbacks {
		fn(leads)
	}
}

func (h *LeadHub) Subscribe(onChange func(leads []entities.Lead)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = onChange
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}
