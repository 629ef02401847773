package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strukt/container"
)

func TestStack_LIFO(t *testing.T) {
	var s container.Stack[int]

	_, ok := s.Pop()
	assert.False(t, ok, "empty pop must miss")

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len(), "peek must not consume")

	for want := 3; want >= 1; want-- {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestQueue_FIFO(t *testing.T) {
	var q container.Queue[string]

	_, ok := q.Dequeue()
	assert.False(t, ok, "empty dequeue must miss")

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(t, 3, q.Len())

	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", front)

	for _, want := range []string{"a", "b", "c"} {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok = q.Dequeue()
	assert.False(t, ok)
}

func TestQueue_InterleavedCompaction(t *testing.T) {
	// Heavy interleaving drives the head cursor through repeated
	// compactions; order must survive.
	var q container.Queue[int]
	next := 0
	want := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 5; i++ {
			v, ok := q.Dequeue()
			require.True(t, ok)
			require.Equal(t, want, v)
			want++
		}
	}
	for q.Len() > 0 {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want, "every enqueued value dequeued exactly once")
}

func TestList_PushPopFront(t *testing.T) {
	var l container.List[int]

	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())

	var got []int
	l.Each(func(v int) bool {
		got = append(got, v)

		return true
	})
	assert.Equal(t, []int{1, 2, 3}, got)

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	front, ok := l.Front()
	require.True(t, ok)
	assert.Equal(t, 2, front)

	l.PopFront()
	l.PopFront()
	_, ok = l.PopFront()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())

	// The list is reusable after draining (tail reset).
	l.PushBack(9)
	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestDList_EndsAndRemove(t *testing.T) {
	var l container.DList[int]

	n2 := l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())

	// O(1) removal from the middle via the node handle.
	assert.True(t, l.Remove(n2))
	assert.False(t, l.Remove(n2), "second remove of the same node must miss")
	assert.Equal(t, 2, l.Len())

	v, ok := l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = l.PopBack()
	assert.False(t, ok)
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestDList_RejectsForeignNodes(t *testing.T) {
	var a, b container.DList[int]
	node := a.PushBack(1)
	assert.False(t, b.Remove(node), "node of another list must be rejected")
	assert.False(t, b.Remove(nil))
	assert.Equal(t, 1, a.Len())
}

func TestDList_EachOrder(t *testing.T) {
	var l container.DList[string]
	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")

	var got []string
	l.Each(func(v string) bool {
		got = append(got, v)

		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
