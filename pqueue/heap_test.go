package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the two structural invariants after any
// sequence of operations: min-heap order, and index-map synchronization
// (the map returns exactly i for entries[i].elem).
func checkInvariants(t *testing.T, h *IndexedHeap[int]) {
	t.Helper()
	for i := 1; i < len(h.entries); i++ {
		p := (i - 1) / 2
		require.LessOrEqual(t, h.entries[p].priority, h.entries[i].priority,
			"heap order broken at index %d", i)
	}
	require.Equal(t, len(h.entries), h.index.Len(), "index map size mismatch")
	for i := range h.entries {
		idx, ok := h.index.Get(h.entries[i].elem)
		require.True(t, ok, "element %d missing from index map", h.entries[i].elem)
		require.Equal(t, i, idx, "index map out of sync for element %d", h.entries[i].elem)
	}
}

func TestHeap_BasicScenario(t *testing.T) {
	// Push elements 0..9 with priorities 10,9,...,1: element i carries
	// priority 10-i, so element 9 (priority 1) must pop first.
	h := New[int]()
	for i := 0; i <= 9; i++ {
		require.NoError(t, h.Push(int64(10-i), i))
		checkInvariants(t, h)
	}

	p, e, err := h.Pop()
	require.NoError(t, err)
	assert.EqualValues(t, 1, p)
	assert.Equal(t, 9, e)
	checkInvariants(t, h)
}

func TestHeap_UpdateChangesOrdering(t *testing.T) {
	h := New[int]()
	for i := 0; i <= 9; i++ {
		require.NoError(t, h.Push(int64(10-i), i))
	}
	_, _, err := h.Pop() // (1, 9) leaves
	require.NoError(t, err)

	// Lower element 5 to priority 0: it must jump the queue.
	require.NoError(t, h.Update(0, 5))
	checkInvariants(t, h)

	p, e, err := h.Pop()
	require.NoError(t, err)
	assert.EqualValues(t, 0, p)
	assert.Equal(t, 5, e)
	checkInvariants(t, h)
}

func TestHeap_UpdateRaisesPriorityToo(t *testing.T) {
	h := New[int]()
	require.NoError(t, h.Push(1, 1))
	require.NoError(t, h.Push(2, 2))
	require.NoError(t, h.Push(3, 3))

	// Push the current minimum to the back.
	require.NoError(t, h.Update(10, 1))
	checkInvariants(t, h)

	p, e, err := h.Pop()
	require.NoError(t, err)
	assert.EqualValues(t, 2, p)
	assert.Equal(t, 2, e)
}

func TestHeap_PopDrainsInPriorityOrder(t *testing.T) {
	h := New[int]()
	prios := []int64{7, 3, 9, 1, 5, 8, 2, 6, 4, 0}
	for e, p := range prios {
		require.NoError(t, h.Push(p, e))
	}

	var last int64 = -1
	for h.Len() > 0 {
		p, _, err := h.Pop()
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, last, "pop order not monotone")
		last = p
		checkInvariants(t, h)
	}
	_, _, err := h.Pop()
	assert.ErrorIs(t, err, ErrEmptyHeap)
}

func TestHeap_ContractSentinels(t *testing.T) {
	h := New[int]()

	_, _, err := h.Pop()
	assert.ErrorIs(t, err, ErrEmptyHeap)
	_, _, err = h.Peek()
	assert.ErrorIs(t, err, ErrEmptyHeap)
	assert.ErrorIs(t, h.Update(1, 42), ErrElementNotFound)

	require.NoError(t, h.Push(5, 42))
	assert.ErrorIs(t, h.Push(6, 42), ErrDuplicateElement)
	assert.Equal(t, 1, h.Len(), "failed push must not leave a partial entry")
	checkInvariants(t, h)
}

func TestHeap_Contains(t *testing.T) {
	h := New[int]()
	assert.False(t, h.Contains(1))

	require.NoError(t, h.Push(3, 1))
	assert.True(t, h.Contains(1))

	_, _, err := h.Pop()
	require.NoError(t, err)
	assert.False(t, h.Contains(1), "popped element must leave the index map")
}

func TestHeap_RandomOpsKeepInvariants(t *testing.T) {
	// A deterministic fuzz of push/pop/update against the invariants.
	rng := rand.New(rand.NewSource(42))
	h := New[int]()
	queued := make(map[int]bool)

	for op := 0; op < 2000; op++ {
		switch r := rng.Intn(10); {
		case r < 5: // push a fresh element
			e := rng.Intn(500)
			if queued[e] {
				assert.ErrorIs(t, h.Push(rng.Int63n(1000), e), ErrDuplicateElement)

				continue
			}
			require.NoError(t, h.Push(rng.Int63n(1000), e))
			queued[e] = true
		case r < 8: // update a queued element
			for e := range queued {
				require.NoError(t, h.Update(rng.Int63n(1000), e))

				break
			}
		default: // pop the minimum
			if len(queued) == 0 {
				continue
			}
			_, e, err := h.Pop()
			require.NoError(t, err)
			delete(queued, e)
		}
		checkInvariants(t, h)
	}
	assert.Equal(t, len(queued), h.Len())
}

func TestHeap_ClearReleasesElements(t *testing.T) {
	released := map[int]bool{}
	h := New[int](
		WithCapacity[int](4),
		WithRelease[int](func(e int) { released[e] = true }),
	)
	for i := 0; i < 6; i++ {
		require.NoError(t, h.Push(int64(i), i))
	}

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Len(t, released, 6)
	assert.False(t, h.Contains(3))

	// The heap stays usable after Clear.
	require.NoError(t, h.Push(1, 1))
	p, e, err := h.Pop()
	require.NoError(t, err)
	assert.EqualValues(t, 1, p)
	assert.Equal(t, 1, e)
}

func TestHeap_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { New[int](WithCapacity[int](0)) })
}
