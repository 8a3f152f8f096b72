package event

import (
	"testing"
	"time"
)

// TestBusOrder verifies handlers run in subscription order and only for their type
func TestBusOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(PointerMove, func(Event) { got = append(got, "a") })
	bus.Subscribe(Click, func(Event) { got = append(got, "click") })
	bus.Subscribe(PointerMove, func(Event) { got = append(got, "b") })

	bus.Publish(Event{Type: PointerMove})

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected [a b], got %v", got)
	}
	if bus.HandlerCount(PointerMove) != 2 || bus.HandlerCount(Click) != 1 {
		t.Errorf("Unexpected handler counts %d/%d", bus.HandlerCount(PointerMove), bus.HandlerCount(Click))
	}
}

// TestUnsubscribeDuringPublish verifies removal mid-dispatch does not skip or panic
func TestUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	calls := 0
	var second Subscription

	bus.Subscribe(Resize, func(Event) {
		calls++
		bus.Unsubscribe(second)
	})
	second = bus.Subscribe(Resize, func(Event) { calls++ })

	bus.Publish(Event{Type: Resize})
	if calls != 2 {
		t.Errorf("Expected snapshot dispatch to reach both handlers, got %d", calls)
	}

	calls = 0
	bus.Publish(Event{Type: Resize})
	if calls != 1 {
		t.Errorf("Expected one handler after unsubscribe, got %d", calls)
	}

	if bus.Unsubscribe(second) {
		t.Error("Expected second unsubscribe to report false")
	}
	if bus.Unsubscribe(Subscription{}) {
		t.Error("Expected zero subscription to report false")
	}
}

// TestGroupDetachAll verifies a group removes all of its handlers at once
func TestGroupDetachAll(t *testing.T) {
	bus := NewBus()
	g := NewGroup(bus)
	g.On(PointerMove, func(Event) {})
	g.On(TouchMove, func(Event) {})
	g.On(Resize, func(Event) {})
	bus.Subscribe(PointerMove, func(Event) {})

	if g.Len() != 3 {
		t.Fatalf("Expected 3 subscriptions, got %d", g.Len())
	}

	g.DetachAll()
	if g.Len() != 0 {
		t.Errorf("Expected empty group, got %d", g.Len())
	}
	if bus.HandlerCount(PointerMove) != 1 || bus.HandlerCount(TouchMove) != 0 || bus.HandlerCount(Resize) != 0 {
		t.Error("Expected only the outside subscription to remain")
	}

	// Idempotent
	g.DetachAll()
}

// TestQueueDispatchFIFO verifies queued events are delivered in order
func TestQueueDispatchFIFO(t *testing.T) {
	bus := NewBus()
	var xs []float64
	bus.Subscribe(PointerMove, func(ev Event) { xs = append(xs, ev.X) })

	now := time.Now()
	for i := 0; i < 5; i++ {
		bus.Push(Event{Type: PointerMove, X: float64(i), Time: now})
	}

	if n := bus.DispatchAll(); n != 5 {
		t.Fatalf("Expected 5 dispatched, got %d", n)
	}
	for i, x := range xs {
		if x != float64(i) {
			t.Errorf("position %d: expected %d, got %v", i, i, x)
		}
	}
	if n := bus.DispatchAll(); n != 0 {
		t.Errorf("Expected empty queue, got %d", n)
	}
}

// TestQueueOverflow verifies the oldest events are dropped when the ring fills
func TestQueueOverflow(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(Event{X: float64(i)})
	}

	events := q.Consume()
	if len(events) != QueueSize {
		t.Fatalf("Expected %d events, got %d", QueueSize, len(events))
	}
	if events[0].X != 10 {
		t.Errorf("Expected oldest retained event 10, got %v", events[0].X)
	}
}

func TestTypeString(t *testing.T) {
	if PointerMove.String() != "PointerMove" || Type(42).String() != "Unknown" {
		t.Error("Unexpected type names")
	}
}
