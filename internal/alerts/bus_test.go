package alerts

import "testing"

func TestBusDeliversToAllListeners(t *testing.T) {
	bus := NewBus()

	var first, second []Event
	unsub1 := bus.Subscribe(func(e Event) { first = append(first, e) })
	defer unsub1()
	unsub2 := bus.Subscribe(func(e Event) { second = append(second, e) })
	defer unsub2()

	bus.Publish(Event{Context: ContextServices, Code: CodePermissionDenied, Message: "denied"})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected both listeners called, got %d and %d", len(first), len(second))
	}
	if first[0].Context != ContextServices {
		t.Fatalf("wrong context: %s", first[0].Context)
	}
}

func TestBusUnsubscribeIsReentrant(t *testing.T) {
	bus := NewBus()

	calls := 0
	unsubscribe := bus.Subscribe(func(Event) { calls++ })

	unsubscribe()
	unsubscribe()

	bus.Publish(Event{Context: ContextTenants})
	if calls != 0 {
		t.Fatalf("listener called after unsubscribe: %d", calls)
	}
	if bus.ListenerCount() != 0 {
		t.Fatalf("listener leaked: %d", bus.ListenerCount())
	}
}

func TestBusPublishWithoutListeners(t *testing.T) {
	bus := NewBus()
	// Must not panic or block.
	bus.Publish(Event{Context: ContextRequests, Message: "nobody listening"})
}

func TestContextForMatchesCollections(t *testing.T) {
	if ContextFor("tenants") != ContextTenants {
		t.Fatal("tenants collection mapped wrong")
	}
	if ContextFor("requests") != ContextRequests {
		t.Fatal("requests collection mapped wrong")
	}
}
