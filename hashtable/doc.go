// Package hashtable implements a generic open-addressing hash map with
// double hashing, tombstone deletion, and incremental growth.
//
// The table stores key/element pairs in a flat slice of slots. Every slot
// is in one of three states: empty, occupied, or tombstone (a placeholder
// left behind by a deletion). Collisions are resolved by double hashing:
// the i-th candidate slot for a key is
//
//	index(i) = (h1 + i*h2) mod capacity
//
// where h1 and h2 are two independent 64-bit hashes of the key. With
// power-of-two capacities (the default) h2 is forced odd, so the probe
// sequence visits every slot exactly once before repeating. With
// WithPrimeCapacity the capacity is kept prime and h2 is reduced into
// [1, capacity-1], which gives the same full-cycle guarantee.
//
// Tombstones are mandatory: a search stops at the first empty slot, so
// erasing a slot outright would cut every probe chain running through it.
// A deletion therefore leaves a tombstone that searches probe through and
// later insertions may reclaim.
//
// Growth is proactive. Before an insertion would push the occupancy above
// the configured load-factor bound (alpha, default 0.75), the table
// doubles its capacity (or advances to the next prime), reinserts every
// occupied slot, and discards all tombstones. Since the capacity strictly
// increases, each element is rehashed O(log capacity) times over the
// table's lifetime and the amortized insertion cost stays O(1).
//
// Complexity:
//
//   - Put / Get / Remove / Delete: O(1) expected, amortized over growth.
//   - Clear: O(capacity).
//   - Range: O(capacity).
//
// Options:
//
//   - WithCapacity(n)     initial capacity hint (rounded up).
//   - WithMaxLoad(alpha)  load-factor bound in (0, 1); default 0.75.
//   - WithHash(fn)        caller-supplied key hash (the "key reducer").
//   - WithCombine(fn)     aggregate duplicate keys instead of overwriting.
//   - WithRelease(fn)     element disposal hook for resource-owning values.
//   - WithPrimeCapacity() prime-sized capacities instead of powers of two.
//
// Errors:
//
//   - ErrCapacityExceeded  the table is full and may not grow further.
//
// A Map is not safe for concurrent use; callers must synchronize
// externally if they share one across goroutines.
package hashtable
