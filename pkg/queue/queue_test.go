package queue

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	q := New()

	q.Enqueue([]byte("a"))
	q.Enqueue([]byte("b"))
	q.Enqueue([]byte("c"))
	assert.Equal(t, 3, q.Len())

	for _, want := range []string{"a", "b", "c"} {
		item, ok := q.Dequeue(time.Second)
		require.True(t, ok)
		assert.Equal(t, want, string(item))
	}
	assert.Equal(t, 0, q.Len())
}

func TestDequeueTimeout(t *testing.T) {
	q := New()

	start := time.Now()
	item, ok := q.Dequeue(20 * time.Millisecond)
	assert.False(t, ok)
	assert.Nil(t, item)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDequeueWakesOnEnqueue(t *testing.T) {
	q := New()

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Enqueue([]byte("late"))
	}()

	item, ok := q.Dequeue(2 * time.Second)
	require.True(t, ok)
	assert.Equal(t, "late", string(item))
}

func TestCloseWakesConsumer(t *testing.T) {
	q := New()

	done := make(chan bool, 1)
	go func() {
		_, ok := q.Dequeue(10 * time.Second)
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not wake on close")
	}
}

func TestCloseDrainsRemaining(t *testing.T) {
	q := New()
	q.Enqueue([]byte("kept"))
	q.Close()

	// enqueues after close are dropped
	q.Enqueue([]byte("dropped"))

	item, ok := q.Dequeue(time.Second)
	require.True(t, ok)
	assert.Equal(t, "kept", string(item))

	_, ok = q.Dequeue(10 * time.Millisecond)
	assert.False(t, ok)
}

func TestConcurrentProducers(t *testing.T) {
	q := New()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue([]byte(fmt.Sprintf("%d-%d", p, i)))
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[string]bool)
	lastPerProducer := make(map[string]int)
	for i := 0; i < producers*perProducer; i++ {
		item, ok := q.Dequeue(time.Second)
		require.True(t, ok)
		s := string(item)
		assert.False(t, seen[s], "duplicate item %s", s)
		seen[s] = true

		// per-producer order is preserved
		var p, n int
		fmt.Sscanf(s, "%d-%d", &p, &n)
		key := fmt.Sprintf("%d", p)
		if last, ok := lastPerProducer[key]; ok {
			assert.Greater(t, n, last)
		}
		lastPerProducer[key] = n
	}
	assert.Equal(t, 0, q.Len())
}
