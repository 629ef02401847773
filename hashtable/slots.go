package hashtable

import (
	"hash/maphash"

	"github.com/katalvlaran/strukt/prime"
)

// slotState is the occupancy state of a single slot.
type slotState uint8

const (
	// slotEmpty terminates probe chains; a fresh table is all-empty.
	slotEmpty slotState = iota

	// slotOccupied holds a live key/element pair.
	slotOccupied

	// slotTombstone marks a deleted slot. Searches probe through it,
	// insertions may reclaim it. Required to keep probe chains intact
	// after deletion.
	slotTombstone
)

// slot is one cell of the open-addressing array.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	val   V
}

// slotTable is the open-addressing core: the raw slot array, the double
// hashing probe sequence, tombstone bookkeeping, and growth.
//
// Invariants:
//   - count (occupied + tombstones) <= len(slots)
//   - elems (occupied only)         <= count
//   - while len(slots) < MaxCapacity, elems <= maxLoad * len(slots)
//     immediately after every insert
type slotTable[K comparable, V any] struct {
	slots     []slot[K, V]
	count     int // occupied + tombstone slots
	elems     int // occupied slots only
	maxProbes int // high-water probe length over all insertions

	maxLoad   float64
	primeSize bool

	hash    HashFunc[K] // nil: maphash with the two seeds below
	seed1   maphash.Seed
	seed2   maphash.Seed
	combine CombineFunc[V]
	release ReleaseFunc[V]
}

// init allocates the slot array and records the table configuration.
func (t *slotTable[K, V]) init(o Options[K, V]) {
	hint := o.Capacity
	if hint <= 0 {
		hint = DefaultCapacity
	}
	t.slots = make([]slot[K, V], roundCapacity(hint, o.PrimeSize))
	t.maxLoad = o.MaxLoad
	t.primeSize = o.PrimeSize
	t.hash = o.Hash
	t.combine = o.Combine
	t.release = o.Release
	if t.hash == nil {
		t.seed1 = maphash.MakeSeed()
		t.seed2 = maphash.MakeSeed()
	}
}

// roundCapacity rounds a capacity hint up to the table's size scheme:
// the next power of two, or the next prime, clamped to
// [MinCapacity, MaxCapacity].
func roundCapacity(hint int, primeSize bool) int {
	if hint < MinCapacity {
		hint = MinCapacity
	}
	if hint > MaxCapacity {
		hint = MaxCapacity
	}
	if primeSize {
		return int(prime.Next(int64(hint)))
	}
	c := MinCapacity
	for c < hint {
		c <<= 1
	}

	return c
}

// hashes computes the two probe hashes for a key. With a caller-supplied
// HashFunc the second hash is derived by an avalanche mix so the two
// remain independent.
func (t *slotTable[K, V]) hashes(k K) (h1, h2 uint64) {
	if t.hash != nil {
		h1 = t.hash(k)
		h2 = mix64(h1)

		return h1, h2
	}
	h1 = maphash.Comparable(t.seed1, k)
	h2 = maphash.Comparable(t.seed2, k)

	return h1, h2
}

// step reduces h2 to a probe stride that cycles through every slot:
// odd for power-of-two capacities, in [1, capacity-1] for primes.
func (t *slotTable[K, V]) step(h2 uint64) uint64 {
	if t.primeSize {
		return 1 + h2%uint64(len(t.slots)-1)
	}

	return h2 | 1
}

// at returns the i-th slot index of the probe sequence (h1 + i*step).
func (t *slotTable[K, V]) at(h1, step uint64, i int) int {
	return int((h1 + uint64(i)*step) % uint64(len(t.slots)))
}

// insertOne places (k, v) into the table.
//
// The probe sequence is scanned until the key or an empty slot is found.
// An existing key is combined or overwritten in place. A new key occupies
// the first tombstone seen on its chain, falling back to the terminating
// empty slot; scanning always continues past tombstones so a key can
// never end up stored twice.
func (t *slotTable[K, V]) insertOne(k K, v V) error {
	// Proactive growth: keep elems/capacity <= maxLoad before probing.
	if err := t.maybeGrow(); err != nil {
		return err
	}

	h1, h2 := t.hashes(k)
	step := t.step(h2)
	n := len(t.slots)
	free := -1      // first reusable slot on the chain
	freeProbes := 0 // probe count up to and including free

	var idx int
	var s *slot[K, V]
	for i := 0; i < n; i++ {
		idx = t.at(h1, step, i)
		s = &t.slots[idx]
		if s.state == slotOccupied {
			if s.key == k {
				// Existing key: aggregate or replace the element.
				if t.combine != nil {
					s.val = t.combine(s.val, v)
				} else {
					if t.release != nil {
						t.release(s.val)
					}
					s.val = v
				}

				return nil
			}

			continue
		}
		if free < 0 {
			free = idx
			freeProbes = i + 1
		}
		if s.state == slotEmpty {
			// Empty terminates the chain: the key is not present.
			break
		}
	}
	if free < 0 {
		// Every slot occupied; only reachable once growth is capped.
		return ErrCapacityExceeded
	}

	s = &t.slots[free]
	if s.state == slotEmpty {
		t.count++ // tombstone reuse does not raise count
	}
	s.state = slotOccupied
	s.key = k
	s.val = v
	t.elems++
	if freeProbes > t.maxProbes {
		t.maxProbes = freeProbes
	}

	return nil
}

// lookup returns the slot index holding k, or -1.
//
// The scan stops at the first empty slot or after maxProbes steps — no
// insertion ever probed further, so the key cannot be beyond that point.
// Tombstones are probed through.
func (t *slotTable[K, V]) lookup(k K) int {
	if t.elems == 0 {
		return -1
	}
	h1, h2 := t.hashes(k)
	step := t.step(h2)
	limit := t.maxProbes
	if n := len(t.slots); limit > n {
		limit = n
	}

	var idx int
	for i := 0; i < limit; i++ {
		idx = t.at(h1, step, i)
		switch s := &t.slots[idx]; s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if s.key == k {
				return idx
			}
		}
	}

	return -1
}

// removeOne deletes k and copies its element out. The slot becomes a
// tombstone: elems drops, count does not.
func (t *slotTable[K, V]) removeOne(k K) (V, bool) {
	var zeroV V
	idx := t.lookup(k)
	if idx < 0 {
		return zeroV, false
	}
	s := &t.slots[idx]
	v := s.val
	var zeroK K
	s.key = zeroK
	s.val = zeroV
	s.state = slotTombstone
	t.elems--

	return v, true
}

// maybeGrow grows the table if one more element would exceed the
// load-factor bound. Past MaxCapacity growth is a no-op and the bound is
// abandoned; the table only errors once literally full.
func (t *slotTable[K, V]) maybeGrow() error {
	if float64(t.elems+1) <= t.maxLoad*float64(len(t.slots)) {
		return nil
	}

	return t.grow()
}

// grow doubles the capacity (or advances to the next prime), reinserts
// every occupied slot into the fresh array, and discards tombstones.
// maxProbes is rebuilt from the reinsertion probes.
func (t *slotTable[K, V]) grow() error {
	n := len(t.slots)
	if n >= MaxCapacity {
		if t.elems >= n {
			return ErrCapacityExceeded
		}

		return nil
	}

	var next int
	if t.primeSize {
		next = int(prime.Next(int64(2*n + 1)))
	} else {
		next = 2 * n
	}

	old := t.slots
	t.slots = make([]slot[K, V], next)
	t.count = 0
	t.elems = 0
	t.maxProbes = 0
	for i := range old {
		if old[i].state == slotOccupied {
			t.reinsert(old[i].key, old[i].val)
		}
	}

	return nil
}

// reinsert places a key during growth. Keys are known unique and the new
// array has free room, so no equality checks or growth checks are needed.
func (t *slotTable[K, V]) reinsert(k K, v V) {
	h1, h2 := t.hashes(k)
	step := t.step(h2)
	n := len(t.slots)

	var idx int
	for i := 0; i < n; i++ {
		idx = t.at(h1, step, i)
		s := &t.slots[idx]
		if s.state != slotEmpty {
			continue
		}
		s.state = slotOccupied
		s.key = k
		s.val = v
		t.count++
		t.elems++
		if i+1 > t.maxProbes {
			t.maxProbes = i + 1
		}

		return
	}
}

// clearAll releases every occupied element and resets all slots to empty,
// keeping the current capacity.
func (t *slotTable[K, V]) clearAll() {
	if t.release != nil {
		for i := range t.slots {
			if t.slots[i].state == slotOccupied {
				t.release(t.slots[i].val)
			}
		}
	}
	clear(t.slots) // zero value of slot is the empty state
	t.count = 0
	t.elems = 0
	t.maxProbes = 0
}

// mix64 is a 64-bit avalanche finalizer (splitmix64). It derives the
// second probe hash when the caller supplies only a single HashFunc.
func mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}
