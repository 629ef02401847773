package container

// Stack is a slice-backed LIFO stack. The zero value is an empty stack
// ready for use.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack. Complexity: amortized O(1).
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value. Returns (zero, false) on an
// empty stack. Complexity: O(1).
func (s *Stack[T]) Pop() (T, bool) {
	n := len(s.items)
	if n == 0 {
		var zero T

		return zero, false
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero // drop the stale copy for the GC
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top value without removing it. Returns (zero, false)
// on an empty stack. Complexity: O(1).
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T

		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of stacked values. Complexity: O(1).
func (s *Stack[T]) Len() int { return len(s.items) }
