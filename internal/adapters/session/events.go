package session

import "sync"

type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
)

type Event struct {
	Kind   EventKind
	UserID string
}

// Listener receives session changes.
type Listener interface {
	SessionChanged(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) SessionChanged(e Event) { f(e) }

// Events fans session changes out to subscribers, synchronously and in
// subscription order.
type Events struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	l  Listener
}

// Subscribe registers l and returns the function that removes it. Calling the
// returned function more than once is a no-op; events published after it
// returns are not delivered to l.
func (e *Events) Subscribe(l Listener) (unsubscribe func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscription{id: id, l: l})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, s := range e.subs {
				if s.id == id {
					e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (e *Events) Publish(ev Event) {
	e.mu.Lock()
	subs := make([]subscription, len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, s := range subs {
		s.l.SessionChanged(ev)
	}
}

func (e *Events) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
