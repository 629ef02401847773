package pqueue

import "errors"

// DefaultCapacity is the initial entry-array capacity when WithCapacity
// is not given.
const DefaultCapacity = 16

// Sentinel errors returned by IndexedHeap operations.
var (
	// ErrEmptyHeap indicates Pop or Peek on a heap with no entries.
	ErrEmptyHeap = errors.New("pqueue: heap is empty")

	// ErrDuplicateElement indicates Push of an element that is already
	// queued. The heap holds at most one entry per element value.
	ErrDuplicateElement = errors.New("pqueue: element already in heap")

	// ErrElementNotFound indicates Update of an element that is not
	// currently queued.
	ErrElementNotFound = errors.New("pqueue: element not in heap")

	// ErrBadCapacity indicates WithCapacity was called with a
	// non-positive capacity hint.
	ErrBadCapacity = errors.New("pqueue: capacity hint must be positive")
)

// ReleaseFunc disposes of an element the heap still owns when Clear is
// called. Needed only for resource-owning element types.
type ReleaseFunc[E comparable] func(E)

// Options configures an IndexedHeap at construction time.
type Options[E comparable] struct {
	Capacity int            // initial capacity hint for entries and index map
	Release  ReleaseFunc[E] // optional element disposal hook
}

// Option is a functional option for configuring an IndexedHeap.
type Option[E comparable] func(*Options[E])

// WithCapacity sets the initial capacity hint for the entry array and the
// element→index map. Panics on a non-positive hint.
func WithCapacity[E comparable](n int) Option[E] {
	return func(o *Options[E]) {
		if n <= 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithRelease installs an element disposal hook, invoked by Clear on
// every entry still queued.
func WithRelease[E comparable](fn ReleaseFunc[E]) Option[E] {
	return func(o *Options[E]) { o.Release = fn }
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
func DefaultOptions[E comparable]() Options[E] {
	return Options[E]{Capacity: DefaultCapacity}
}
