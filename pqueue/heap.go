package pqueue

import "github.com/katalvlaran/strukt/hashtable"

// entry is one (priority, element) pair of the heap array.
type entry[E comparable] struct {
	priority int64
	elem     E
}

// IndexedHeap is an array-backed binary min-heap over (priority, element)
// pairs, augmented with an element→index map for O(1) membership and
// O(log n) arbitrary-element updates.
//
// Invariants, restored after every operation:
//   - order:  entries[parent(i)].priority <= entries[i].priority
//   - index:  the map returns exactly i for entries[i].elem, for all i
//   - unique: each element value appears in at most one entry
//
// Construct with New; the zero value is not usable.
type IndexedHeap[E comparable] struct {
	entries []entry[E]
	index   *hashtable.Map[E, int]
	release ReleaseFunc[E]
}

// New creates an empty IndexedHeap configured by the given options.
func New[E comparable](opts ...Option[E]) *IndexedHeap[E] {
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}

	return &IndexedHeap[E]{
		entries: make([]entry[E], 0, o.Capacity),
		index:   hashtable.New[E, int](hashtable.WithCapacity[E, int](o.Capacity)),
		release: o.Release,
	}
}

// Len returns the number of queued entries. Complexity: O(1).
func (h *IndexedHeap[E]) Len() int { return len(h.entries) }

// Contains reports whether e is currently queued.
// Complexity: O(1) expected.
func (h *IndexedHeap[E]) Contains(e E) bool {
	_, ok := h.index.Get(e)

	return ok
}

// Push appends (priority, e) and sifts it up into place. Refused with
// ErrDuplicateElement when e is already queued.
// Complexity: O(log n).
func (h *IndexedHeap[E]) Push(priority int64, e E) error {
	if h.Contains(e) {
		return ErrDuplicateElement
	}

	h.entries = append(h.entries, entry[E]{priority: priority, elem: e})
	last := len(h.entries) - 1
	if err := h.index.Put(e, last); err != nil {
		h.entries = h.entries[:last]

		return err
	}
	h.siftUp(last)

	return nil
}

// Peek returns the minimum entry without removing it.
// Complexity: O(1).
func (h *IndexedHeap[E]) Peek() (int64, E, error) {
	if len(h.entries) == 0 {
		var zero E

		return 0, zero, ErrEmptyHeap
	}

	return h.entries[0].priority, h.entries[0].elem, nil
}

// Pop removes and returns the minimum entry: the last entry moves into
// the root, the popped element leaves the index map, and the root sifts
// down. Complexity: O(log n).
func (h *IndexedHeap[E]) Pop() (int64, E, error) {
	if len(h.entries) == 0 {
		var zero E

		return 0, zero, ErrEmptyHeap
	}

	top := h.entries[0]
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries[last] = entry[E]{} // drop the stale copy for the GC
	h.entries = h.entries[:last]
	h.index.Remove(top.elem)
	if last > 0 {
		h.setIndex(0)
		h.siftDown(0)
	}

	return top.priority, top.elem, nil
}

// Update overwrites the priority of a queued element and restores heap
// order by sifting both up and down from its slot — only one direction
// can move it, and running both is simpler than branching on the
// comparison. Refused with ErrElementNotFound when e is not queued.
// Complexity: O(log n).
func (h *IndexedHeap[E]) Update(priority int64, e E) error {
	i, ok := h.index.Get(e)
	if !ok {
		return ErrElementNotFound
	}

	h.entries[i].priority = priority
	h.siftUp(i)
	h.siftDown(i)

	return nil
}

// Clear disposes of every queued element (via the release hook, when
// set) and empties the heap, keeping the allocated capacity.
// Complexity: O(n).
func (h *IndexedHeap[E]) Clear() {
	if h.release != nil {
		for i := range h.entries {
			h.release(h.entries[i].elem)
		}
	}
	clear(h.entries)
	h.entries = h.entries[:0]
	h.index.Clear()
}

// setIndex re-registers the element at slot i in the index map. The
// element is already a key of the map, so Put can neither grow it nor
// fail.
func (h *IndexedHeap[E]) setIndex(i int) {
	_ = h.index.Put(h.entries[i].elem, i)
}

// siftUp moves the entry at i toward the root until its parent is no
// larger. Every swap re-registers both moved elements in the index map.
func (h *IndexedHeap[E]) siftUp(i int) {
	var p int
	for i > 0 {
		p = (i - 1) / 2
		if h.entries[p].priority <= h.entries[i].priority {
			break
		}
		h.entries[p], h.entries[i] = h.entries[i], h.entries[p]
		h.setIndex(p)
		h.setIndex(i)
		i = p
	}
}

// siftDown moves the entry at i toward the leaves until both children
// are no smaller. Every swap re-registers both moved elements in the
// index map.
func (h *IndexedHeap[E]) siftDown(i int) {
	n := len(h.entries)
	var l, r, min int
	for {
		l = 2*i + 1
		r = 2*i + 2
		min = i
		if l < n && h.entries[l].priority < h.entries[min].priority {
			min = l
		}
		if r < n && h.entries[r].priority < h.entries[min].priority {
			min = r
		}
		if min == i {
			return
		}
		h.entries[min], h.entries[i] = h.entries[i], h.entries[min]
		h.setIndex(min)
		h.setIndex(i)
		i = min
	}
}
