package state

import "sync"

// Notifier is the refresh signal: components that change vault contents
// publish, the tree-loading UI subscribes. It replaces a process-global
// notification bus with an observer registry owned by the state object.
// Fan-out is synchronous and multi-consumer.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers an observer and returns its unsubscribe function.
func (n *Notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Publish invokes every registered observer.
func (n *Notifier) Publish() {
	n.mu.Lock()
	observers := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		observers = append(observers, fn)
	}
	n.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}
