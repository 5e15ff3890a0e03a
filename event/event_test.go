package event

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: TypeAppleEaten, Payload: i})
	}
	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d events, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Payload != i {
			t.Errorf("event %d payload = %d, want %d", i, ev.Payload, i)
		}
	}
	if q.Consume() != nil {
		t.Error("second consume must return nil")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	const producers, perProducer = 4, 8
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: TypeStateChanged})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("consumed %d events, want %d", got, producers*perProducer)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < queueSize+10; i++ {
		q.Push(Event{Payload: i})
	}
	got := q.Consume()
	if len(got) == 0 || len(got) > queueSize {
		t.Fatalf("consumed %d events, want at most %d", len(got), queueSize)
	}
	if got[len(got)-1].Payload != queueSize+9 {
		t.Errorf("newest event payload = %d, want %d", got[len(got)-1].Payload, queueSize+9)
	}
}

type recordingHandler struct {
	types []Type
	seen  []Event
}

func (h *recordingHandler) HandleEvent(ev Event) { h.seen = append(h.seen, ev) }
func (h *recordingHandler) EventTypes() []Type   { return h.types }

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	apples := &recordingHandler{types: []Type{TypeAppleEaten}}
	all := &recordingHandler{types: []Type{TypeAppleEaten, TypeGameOver}}
	r.Register(apples)
	r.Register(all)

	q.Push(Event{Type: TypeAppleEaten, Payload: 1})
	q.Push(Event{Type: TypeGameOver, Payload: 7})
	q.Push(Event{Type: TypeMuteToggled})
	r.DispatchAll()

	if len(apples.seen) != 1 || apples.seen[0].Payload != 1 {
		t.Errorf("apple handler saw %v, want one apple event", apples.seen)
	}
	if len(all.seen) != 2 {
		t.Errorf("broad handler saw %d events, want 2", len(all.seen))
	}
}
