package container

// Queue is a slice-backed FIFO queue with a head cursor. Dequeued slots
// are zeroed immediately; the backing slice is compacted once the dead
// prefix outgrows the live part, keeping Dequeue amortized O(1) without
// per-call copying. The zero value is an empty queue ready for use.
type Queue[T any] struct {
	items []T
	head  int
}

// Enqueue appends v at the back. Complexity: amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front value. Returns (zero, false) on
// an empty queue. Complexity: amortized O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.head >= len(q.items) {
		var zero T

		return zero, false
	}
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	// Compact once more than half the slice is a dead prefix.
	if q.head > len(q.items)/2 && q.head > 0 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, true
}

// Peek returns the front value without removing it. Returns (zero,
// false) on an empty queue. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var zero T

		return zero, false
	}

	return q.items[q.head], true
}

// Len returns the number of queued values. Complexity: O(1).
func (q *Queue[T]) Len() int { return len(q.items) - q.head }
