package hashtable

// Map is a generic key→element map over the open-addressing slot table.
//
// The zero Map is not usable; construct one with New. A Map is not safe
// for concurrent use.
type Map[K comparable, V any] struct {
	t slotTable[K, V]
}

// New creates an empty Map configured by the given functional options.
// Complexity: O(capacity) for the initial slot allocation.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	o := DefaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Map[K, V]{}
	m.t.init(o)

	return m
}

// Put inserts (k, v). An existing key is overwritten — or combined, when
// the map was built WithCombine — leaving Len unchanged. Returns
// ErrCapacityExceeded only when the table is full and growth is capped.
// Complexity: O(1) expected, amortized over growth.
func (m *Map[K, V]) Put(k K, v V) error {
	return m.t.insertOne(k, v)
}

// Get returns a copy of the element stored under k, and whether the key
// was present. Complexity: O(1) expected.
func (m *Map[K, V]) Get(k K) (V, bool) {
	idx := m.t.lookup(k)
	if idx < 0 {
		var zero V

		return zero, false
	}

	return m.t.slots[idx].val, true
}

// Ref returns a pointer into the map's own storage for the element under
// k, or nil when absent. The pointer is invalidated by any subsequent
// mutating call (Put, Remove, Delete, Clear) — do not retain it.
// Complexity: O(1) expected.
func (m *Map[K, V]) Ref(k K) *V {
	idx := m.t.lookup(k)
	if idx < 0 {
		return nil
	}

	return &m.t.slots[idx].val
}

// Remove deletes k and hands its element back to the caller. The release
// hook is NOT invoked: ownership transfers out of the map.
// Complexity: O(1) expected.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	return m.t.removeOne(k)
}

// Delete drops k and disposes of its element through the release hook
// (when one is set). Reports whether the key was present.
// Complexity: O(1) expected.
func (m *Map[K, V]) Delete(k K) bool {
	v, ok := m.t.removeOne(k)
	if !ok {
		return false
	}
	if m.t.release != nil {
		m.t.release(v)
	}

	return true
}

// Len returns the number of live elements. Complexity: O(1).
func (m *Map[K, V]) Len() int { return m.t.elems }

// Cap returns the current slot-array capacity. Complexity: O(1).
func (m *Map[K, V]) Cap() int { return len(m.t.slots) }

// Clear disposes of every element (via the release hook, when set) and
// resets the map to empty at its current capacity.
// Complexity: O(capacity).
func (m *Map[K, V]) Clear() {
	m.t.clearAll()
}

// Range calls fn for every live (key, element) pair until fn returns
// false. Iteration order is unspecified. fn must not mutate the map.
// Complexity: O(capacity).
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for i := range m.t.slots {
		s := &m.t.slots[i]
		if s.state != slotOccupied {
			continue
		}
		if !fn(s.key, s.val) {
			return
		}
	}
}
