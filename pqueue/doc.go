// Package pqueue implements an indexed binary min-heap: a priority queue
// whose elements can be looked up and re-prioritized in place.
//
// A plain binary heap answers only "what is the minimum?"; finding an
// arbitrary element costs O(n), which is why naive Dijkstra/Prim
// implementations resort to pushing duplicates ("lazy decrease-key").
// IndexedHeap instead pairs the entry array with a hashtable.Map from
// element to its current array index. That map makes membership O(1)
// expected and arbitrary-element priority updates O(log n).
//
// The two structures are kept in lockstep: every time a sift operation
// swaps two entries, both moved elements are re-registered in the index
// map. Breaking that synchronization would silently break Contains and
// Update for both elements, so all array motion funnels through the
// sift helpers.
//
// Each element value may appear at most once; Push on a present element
// is refused with ErrDuplicateElement rather than corrupting the map.
//
// Complexity:
//
//   - Push / Pop / Update: O(log n) plus O(1) expected map work.
//   - Contains / Peek / Len: O(1) (Contains expected).
//   - Clear: O(n).
//
// Errors:
//
//   - ErrEmptyHeap        Pop/Peek on an empty heap.
//   - ErrDuplicateElement Push of an element already queued.
//   - ErrElementNotFound  Update of an element not queued.
//
// An IndexedHeap is not safe for concurrent use.
package pqueue
