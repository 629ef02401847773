package container

// Node is one cell of a doubly linked DList. Callers receive *Node
// handles from the push operations and may pass them back to Remove for
// O(1) deletion from the middle of the list.
type Node[T any] struct {
	// Value is the stored value; callers may read and write it freely.
	Value T

	prev, next *Node[T]
	list       *DList[T] // owner, to reject foreign or detached nodes
}

// DList is a doubly linked list with O(1) insertion and removal at both
// ends and, given a node handle, anywhere in between. The zero value is
// an empty list ready for use.
type DList[T any] struct {
	head *Node[T]
	tail *Node[T]
	n    int
}

// PushFront prepends v and returns its node handle. Complexity: O(1).
func (l *DList[T]) PushFront(v T) *Node[T] {
	node := &Node[T]{Value: v, next: l.head, list: l}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.n++

	return node
}

// PushBack appends v and returns its node handle. Complexity: O(1).
func (l *DList[T]) PushBack(v T) *Node[T] {
	node := &Node[T]{Value: v, prev: l.tail, list: l}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.n++

	return node
}

// PopFront removes and returns the first value. Returns (zero, false) on
// an empty list. Complexity: O(1).
func (l *DList[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T

		return zero, false
	}
	v := l.head.Value
	l.Remove(l.head)

	return v, true
}

// PopBack removes and returns the last value. Returns (zero, false) on
// an empty list. Complexity: O(1).
func (l *DList[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T

		return zero, false
	}
	v := l.tail.Value
	l.Remove(l.tail)

	return v, true
}

// Remove unlinks node from the list. Reports false when node is nil, was
// already removed, or belongs to another list. Complexity: O(1).
func (l *DList[T]) Remove(node *Node[T]) bool {
	if node == nil || node.list != l {
		return false
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	node.list = nil
	l.n--

	return true
}

// Front returns the first node, or nil on an empty list. Complexity: O(1).
func (l *DList[T]) Front() *Node[T] { return l.head }

// Back returns the last node, or nil on an empty list. Complexity: O(1).
func (l *DList[T]) Back() *Node[T] { return l.tail }

// Len returns the number of stored values. Complexity: O(1).
func (l *DList[T]) Len() int { return l.n }

// Each calls fn on every value, front to back, until fn returns false.
// fn must not mutate the list. Complexity: O(n).
func (l *DList[T]) Each(fn func(T) bool) {
	for node := l.head; node != nil; node = node.next {
		if !fn(node.Value) {
			return
		}
	}
}
