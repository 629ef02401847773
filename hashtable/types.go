package hashtable

import "errors"

// Capacity limits and defaults for the slot table.
const (
	// MinCapacity is the smallest slot-array size ever allocated.
	MinCapacity = 8

	// DefaultCapacity is the initial capacity when WithCapacity is not given.
	DefaultCapacity = 16

	// MaxCapacity caps growth. Once reached, the table keeps accepting
	// insertions until every slot is occupied, but the load-factor bound
	// no longer holds.
	MaxCapacity = 1 << 30

	// DefaultMaxLoad is the default load-factor bound (alpha).
	DefaultMaxLoad = 0.75
)

// Sentinel errors returned by Map operations.
var (
	// ErrCapacityExceeded indicates the table is completely full and has
	// already reached MaxCapacity, so the insertion cannot be placed.
	// Continuing past this point would corrupt probe chains, hence the
	// operation is refused instead.
	ErrCapacityExceeded = errors.New("hashtable: maximum capacity exceeded")

	// ErrBadMaxLoad indicates WithMaxLoad was called with a value
	// outside the open interval (0, 1).
	ErrBadMaxLoad = errors.New("hashtable: max load factor must be in (0, 1)")

	// ErrBadCapacity indicates WithCapacity was called with a
	// non-positive capacity hint.
	ErrBadCapacity = errors.New("hashtable: capacity hint must be positive")
)

// HashFunc reduces a key to a 64-bit hash value. Supplying one replaces
// the default maphash-based hashing; the second probe hash is then
// derived from it by an avalanche mix.
type HashFunc[K comparable] func(K) uint64

// CombineFunc merges the element already stored under a key with a newly
// inserted one (e.g. min, max, sum). When set, re-inserting an existing
// key stores combine(old, next) instead of overwriting.
type CombineFunc[V any] func(old, next V) V

// ReleaseFunc disposes of an element that is being dropped: on overwrite,
// Delete, or Clear. Needed only when V owns external resources; plain
// values need no release hook.
type ReleaseFunc[V any] func(V)

// Options configures a Map at construction time.
type Options[K comparable, V any] struct {
	Capacity  int            // initial capacity hint; rounded up to a power of two or prime
	MaxLoad   float64        // load-factor bound alpha in (0, 1)
	Hash      HashFunc[K]    // optional caller hash; nil means maphash
	Combine   CombineFunc[V] // optional duplicate-key combiner; nil means overwrite
	Release   ReleaseFunc[V] // optional element disposal hook
	PrimeSize bool           // prime-sized capacities instead of powers of two
}

// Option is a functional option for configuring a Map.
type Option[K comparable, V any] func(*Options[K, V])

// WithCapacity sets the initial capacity hint. The actual capacity is the
// hint rounded up to the next power of two (or prime, with
// WithPrimeCapacity), never below MinCapacity.
// Panics on a non-positive hint.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(o *Options[K, V]) {
		if n <= 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithMaxLoad sets the load-factor bound alpha. Growth is triggered
// before any insertion that would push occupancy above alpha.
// Panics unless 0 < alpha < 1.
func WithMaxLoad[K comparable, V any](alpha float64) Option[K, V] {
	return func(o *Options[K, V]) {
		if alpha <= 0 || alpha >= 1 {
			panic(ErrBadMaxLoad.Error())
		}
		o.MaxLoad = alpha
	}
}

// WithHash installs a caller-supplied key hash. Use it when the key's
// identity is narrower than its representation, or to make probing
// deterministic in tests.
func WithHash[K comparable, V any](fn HashFunc[K]) Option[K, V] {
	return func(o *Options[K, V]) { o.Hash = fn }
}

// WithCombine installs a duplicate-key combiner, turning the map into an
// aggregate map: Put(k, next) on an existing key stores combine(old, next).
func WithCombine[K comparable, V any](fn CombineFunc[V]) Option[K, V] {
	return func(o *Options[K, V]) { o.Combine = fn }
}

// WithRelease installs an element disposal hook, invoked whenever the map
// drops an element it still owns (overwrite, Delete, Clear).
func WithRelease[K comparable, V any](fn ReleaseFunc[V]) Option[K, V] {
	return func(o *Options[K, V]) { o.Release = fn }
}

// WithPrimeCapacity switches the table to prime-sized capacities. Growth
// then advances to the next prime past double the current capacity.
func WithPrimeCapacity[K comparable, V any]() Option[K, V] {
	return func(o *Options[K, V]) { o.PrimeSize = true }
}

// DefaultOptions returns the Options used when no functional options are
// supplied: DefaultCapacity slots, alpha = DefaultMaxLoad, maphash-based
// hashing, overwrite-on-duplicate, no release hook.
func DefaultOptions[K comparable, V any]() Options[K, V] {
	return Options[K, V]{
		Capacity: DefaultCapacity,
		MaxLoad:  DefaultMaxLoad,
	}
}
