package platform

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestLifecycleNotifier_Subscribe(t *testing.T) {
	n := NewLifecycleNotifier(nil)

	calls := 0
	unsubscribe := n.Subscribe(func() { calls++ })

	n.EnteredForeground()
	n.EnteredForeground()
	if calls != 2 {
		t.Errorf("Expected 2 calls, got %d", calls)
	}

	unsubscribe()
	n.EnteredForeground()
	if calls != 2 {
		t.Errorf("Expected no calls after unsubscribe, got %d", calls)
	}

	// Unsubscribing twice must not panic or remove other subscribers
	other := 0
	n.Subscribe(func() { other++ })
	unsubscribe()
	n.EnteredForeground()
	if other != 1 {
		t.Errorf("Expected other subscriber to be notified once, got %d", other)
	}
	if n.Subscribers() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", n.Subscribers())
	}
}

func TestLifecycleNotifier_UnsubscribeFromCallback(t *testing.T) {
	n := NewLifecycleNotifier(nil)

	var unsubscribe func()
	calls := 0
	unsubscribe = n.Subscribe(func() {
		calls++
		unsubscribe()
	})

	n.EnteredForeground()
	n.EnteredForeground()
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if n.Subscribers() != 0 {
		t.Errorf("Expected no subscribers, got %d", n.Subscribers())
	}
}

func TestLifecycleNotifier_WithApp(t *testing.T) {
	app := test.NewApp()
	n := NewLifecycleNotifier(app)

	calls := 0
	defer n.Subscribe(func() { calls++ })()

	n.EnteredForeground()
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}
