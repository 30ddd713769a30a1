package platform

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
)

// LifecycleNotifier fans the app's "entered foreground" event out to any
// number of subscribers. Fyne's lifecycle only holds a single callback, so the
// notifier owns that slot and hands out removable subscriptions instead.
type LifecycleNotifier struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func()
}

// NewLifecycleNotifier creates a notifier and registers it with the app
// lifecycle. Passing a nil app creates a detached notifier that only fires on
// explicit EnteredForeground calls.
func NewLifecycleNotifier(app fyne.App) *LifecycleNotifier {
	n := &LifecycleNotifier{
		subscribers: make(map[int]func()),
	}
	if app != nil {
		app.Lifecycle().SetOnEnteredForeground(n.EnteredForeground)
	}
	return n
}

// Subscribe registers fn for foreground re-entry events. The returned function
// removes the subscription; calling it more than once is harmless.
func (n *LifecycleNotifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subscribers[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, id)
			n.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions
func (n *LifecycleNotifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}

// EnteredForeground notifies all subscribers. Callbacks run outside the lock
// so they may unsubscribe themselves.
func (n *LifecycleNotifier) EnteredForeground() {
	n.mu.Lock()
	callbacks := make([]func(), 0, len(n.subscribers))
	for _, fn := range n.subscribers {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	log.Printf("App entered foreground, notifying %d subscriber(s)", len(callbacks))
	for _, fn := range callbacks {
		fn()
	}
}
