package container

// listNode is one cell of a singly linked List.
type listNode[T any] struct {
	val  T
	next *listNode[T]
}

// List is a singly linked list with head and tail pointers, so both
// PushFront and PushBack are O(1). Removal is only possible at the
// front. The zero value is an empty list ready for use.
type List[T any] struct {
	head *listNode[T]
	tail *listNode[T]
	n    int
}

// PushFront prepends v. Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	node := &listNode[T]{val: v, next: l.head}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.n++
}

// PushBack appends v. Complexity: O(1).
func (l *List[T]) PushBack(v T) {
	node := &listNode[T]{val: v}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.n++
}

// PopFront removes and returns the first value. Returns (zero, false) on
// an empty list. Complexity: O(1).
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T

		return zero, false
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}
	l.n--

	return node.val, true
}

// Front returns the first value without removing it. Returns (zero,
// false) on an empty list. Complexity: O(1).
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T

		return zero, false
	}

	return l.head.val, true
}

// Len returns the number of stored values. Complexity: O(1).
func (l *List[T]) Len() int { return l.n }

// Each calls fn on every value, front to back, until fn returns false.
// fn must not mutate the list. Complexity: O(n).
func (l *List[T]) Each(fn func(T) bool) {
	for node := l.head; node != nil; node = node.next {
		if !fn(node.val) {
			return
		}
	}
}
