package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish("hello")
	if v := <-ch; v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusNonBlockingPublish(t *testing.T) {
	bus := New()
	_ = bus.Subscribe()
	// Overflow the subscriber buffer; Publish must not block.
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(i)
	}
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	// Subscribing after close yields a closed channel.
	if _, ok := <-bus.Subscribe(); ok {
		t.Fatalf("expected closed channel after Close")
	}
}
