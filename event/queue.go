package event

import "sync/atomic"

const (
	queueSize  = 64
	bufferMask = queueSize - 1
)

// Queue is a lock-free MPSC ring buffer for game events.
//
// Push is safe for concurrent producers (CAS with published flags so a
// consumer never reads a half-written slot). Consume is single-consumer.
// When the ring is full the oldest events are overwritten; the game never
// produces enough events per tick for that to matter in practice.
type Queue struct {
	events    [queueSize]Event
	published [queueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event. Lock-free, O(1) amortized.
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		idx := tail & bufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // after the slot write

		// Advance head past overwritten slots.
		head := q.head.Load()
		if tail+1-head > queueSize {
			q.head.CompareAndSwap(head, tail+1-queueSize)
		}
		return
	}
}

// Consume returns all pending events in FIFO order and advances the head.
// Single-consumer; returns nil when empty.
func (q *Queue) Consume() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return nil
		}

		available := tail - head
		if available > queueSize {
			available = queueSize
			head = tail - queueSize
		}

		out := make([]Event, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & bufferMask
			if !q.published[idx].Load() {
				break // writer still in flight
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}
