package pqueue_test

import (
	"testing"

	"github.com/katalvlaran/strukt/pqueue"
)

func BenchmarkHeap_PushPop(b *testing.B) {
	h := pqueue.New[int](pqueue.WithCapacity[int](1024))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Push(int64(i^0x5bf03635), i)
		if h.Len() >= 1024 {
			_, _, _ = h.Pop()
		}
	}
}

func BenchmarkHeap_Update(b *testing.B) {
	const n = 1 << 10
	h := pqueue.New[int](pqueue.WithCapacity[int](n))
	for i := 0; i < n; i++ {
		_ = h.Push(int64(i), i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Update(int64(i%2048), i%n)
	}
}
