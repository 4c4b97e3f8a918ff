// Package notify provides synchronous change notification for mask engines.
//
// It implements an observer pattern: hosts subscribe to an engine's
// Notifier and receive a callback after every processed edit or
// programmatic date change. Delivery is synchronous on the calling
// goroutine, matching the single-owner threading model of the engine.
package notify

import (
	"sync"
	"time"
)

// Change describes one processed change to a masked field.
type Change struct {
	// Source is the engine that produced the change.
	Source any

	// Text is the field text after the change.
	Text string

	// Date is the parsed value of Text. It is only meaningful when OK is
	// true; incomplete or unparseable text leaves it zero.
	Date time.Time

	// OK reports whether Text parsed as a complete date or time.
	OK bool
}

// Observer is called when a change occurs.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages change subscriptions for one engine.
type Notifier struct {
	mu        sync.Mutex
	observers map[uint64]Observer
	nextID    uint64
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{observers: make(map[uint64]Observer)}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify delivers a change to every observer. Observers run outside the
// lock, on the caller's goroutine, in unspecified order.
func (n *Notifier) Notify(change Change) {
	n.mu.Lock()
	observers := make([]Observer, 0, len(n.observers))
	for _, obs := range n.observers {
		observers = append(observers, obs)
	}
	n.mu.Unlock()

	for _, obs := range observers {
		obs(change)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}
