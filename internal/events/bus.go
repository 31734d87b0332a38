// Package events provides a small publish/subscribe bus. Slides, the
// presentation controller, the player and the stage all expose one, so
// listeners can treat every source uniformly and release their
// registrations in bulk via a Set.
package events

import "sync"

// Handler receives the payload an event was emitted with.
type Handler func(payload any)

// Source is anything subscriptions can be attached to and detached from.
type Source interface {
	On(event string, h Handler) Subscription
	Off(sub Subscription)
}

// Subscription identifies one active handler registration. The zero value
// is inert; Cancel on it is a no-op.
type Subscription struct {
	src   Source
	event string
	id    uint64
}

// Cancel detaches the handler from its source.
func (s Subscription) Cancel() {
	if s.src != nil {
		s.src.Off(s)
	}
}

type registration struct {
	id uint64
	fn Handler
}

// Bus is an in-process event bus. Handlers for an event fire in
// registration order.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]registration
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]registration)}
}

// On registers h for event and returns the subscription handle needed to
// detach it again.
func (b *Bus) On(event string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.handlers[event] = append(b.handlers[event], registration{id: b.nextID, fn: h})
	return Subscription{src: b, event: event, id: b.nextID}
}

// Off removes the registration identified by sub. Unknown subscriptions are
// ignored so Off stays idempotent.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	regs := b.handlers[sub.event]
	for i, r := range regs {
		if r.id == sub.id {
			b.handlers[sub.event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Emit calls every handler registered for event, in registration order.
// Handlers run outside the bus lock, so they may subscribe or unsubscribe.
func (b *Bus) Emit(event string, payload any) {
	b.mu.Lock()
	regs := b.handlers[event]
	snapshot := make([]registration, len(regs))
	copy(snapshot, regs)
	b.mu.Unlock()

	for _, r := range snapshot {
		r.fn(payload)
	}
}

// Set collects subscriptions across any number of sources so they can be
// released together at teardown.
type Set struct {
	subs []Subscription
}

// On subscribes h to event on src and records the handle.
func (s *Set) On(src Source, event string, h Handler) {
	s.subs = append(s.subs, src.On(event, h))
}

// Add records an externally created subscription for later release.
func (s *Set) Add(sub Subscription) {
	s.subs = append(s.subs, sub)
}

// Release cancels every recorded subscription and empties the set. Calling
// it again is harmless.
func (s *Set) Release() {
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
}

// Len reports the number of recorded subscriptions.
func (s *Set) Len() int { return len(s.subs) }
