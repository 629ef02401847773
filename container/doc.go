// Package container provides the small generic building-block
// containers: a LIFO stack, a FIFO queue, and singly and doubly linked
// lists.
//
// All four are deliberately plain: slice- or pointer-backed, zero-value
// ready, and free of any synchronization. Empty pops return
// (zero value, false) rather than an error — an empty container is an
// ordinary condition, not a failure.
//
// Complexity: every operation is O(1), except Queue.Dequeue which is
// amortized O(1) (the backing slice is compacted once the dead prefix
// dominates) and the list Each iterators which are O(n).
//
// None of the containers are safe for concurrent use.
package container
