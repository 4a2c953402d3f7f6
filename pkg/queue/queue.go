package queue

import (
	"sync"
	"time"
)

// Queue is an unbounded FIFO of encoded replication events. Producers
// never block; the single fan-out consumer blocks with a timeout so it
// can notice shutdown.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  [][]byte
	closed bool
}

// New creates an empty queue
func New() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends an item. Enqueueing on a closed queue drops the item.
func (q *Queue) Enqueue(item []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, item)
	q.cond.Signal()
}

// Dequeue removes and returns the oldest item, waiting up to timeout
// for one to arrive. The second return is false on timeout or when the
// queue has been closed and drained.
func (q *Queue) Dequeue(timeout time.Duration) ([]byte, bool) {
	deadline := time.Now().Add(timeout)

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			return nil, false
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, false
		}
		wakeup := time.AfterFunc(remaining, q.cond.Broadcast)
		q.cond.Wait()
		wakeup.Stop()
	}

	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

// Len returns the number of queued items
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close wakes all waiting consumers. Queued items remain drainable;
// further enqueues are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
