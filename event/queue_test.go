package event

import (
	"sync"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	EmitTick(q)
	EmitResize(q, 800, 600)
	EmitQuit(q)

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	want := []EventType{EventTick, EventResize, EventQuit}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("event %d: got %v, want %v", i, ev.Type, want[i])
		}
	}
	if rp, ok := got[1].Payload.(*ResizePayload); !ok || rp.Width != 800 || rp.Height != 600 {
		t.Errorf("resize payload: %#v", got[1].Payload)
	}
	if q.Consume() != nil {
		t.Error("queue should be empty after Consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(Event{Type: EventResize, Payload: &ResizePayload{Width: i}})
	}
	if q.Len() != QueueSize {
		t.Errorf("Len = %d, want %d", q.Len(), QueueSize)
	}
	got := q.Consume()
	if len(got) != QueueSize {
		t.Fatalf("got %d events, want %d", len(got), QueueSize)
	}
	first := got[0].Payload.(*ResizePayload).Width
	if first != 10 {
		t.Errorf("oldest surviving event = %d, want 10", first)
	}
}

func TestQueueNotify(t *testing.T) {
	q := NewQueue()
	select {
	case <-q.Notify():
		t.Fatal("notify fired with empty queue")
	default:
	}
	EmitTick(q)
	EmitTick(q)
	select {
	case <-q.Notify():
	case <-time.After(time.Second):
		t.Fatal("notify did not fire")
	}
	// coalesced, second push does not queue another wakeup
	select {
	case <-q.Notify():
		t.Fatal("notify should coalesce")
	default:
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers, perProducer = 4, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				EmitTick(q)
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("consumed %d, want %d", total, producers*perProducer)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventModelLoaded.String() != "ModelLoaded" {
		t.Errorf("got %q", EventModelLoaded.String())
	}
	if EventType(250).String() != "Unknown" {
		t.Errorf("got %q", EventType(250).String())
	}
}
