// Package notify delivers settings health notifications.
//
// Consumers subscribe to three events: the settings file entered an error
// state, the error state was resolved, and the backing file changed on
// disk. Events carry no payload; observers re-read whatever they cache.
// For a single triggering edit the state-change event is always delivered
// before the file-changed event.
package notify

import (
	"sync"
)

// Event identifies a settings health notification.
type Event int

const (
	// EventError fires when validation first finds a problem.
	EventError Event = iota

	// EventErrorResolved fires when a previously reported problem clears.
	EventErrorResolved

	// EventFileChanged fires after every external edit of the backing
	// file, regardless of the validation outcome.
	EventFileChanged
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventError:
		return "error"
	case EventErrorResolved:
		return "errorResolved"
	case EventFileChanged:
		return "fileChanged"
	default:
		return "unknown"
	}
}

// Observer is called when an event fires.
type Observer func(event Event)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages subscriptions and delivers events synchronously and
// in order. Observers run on the notifying goroutine, outside the
// notifier lock, so they may subscribe or unsubscribe freely.
type Notifier struct {
	mu        sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64
}

// New creates a Notifier.
func New() *Notifier {
	return &Notifier{
		observers: make(map[uint64]Observer),
	}
}

// Subscribe registers an observer for all events.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify delivers an event to every observer.
func (n *Notifier) Notify(event Event) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, obs := range n.observers {
		observers = append(observers, obs)
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(event)
	}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}
