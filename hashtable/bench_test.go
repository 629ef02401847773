package hashtable_test

import (
	"testing"

	"github.com/katalvlaran/strukt/hashtable"
)

func BenchmarkMap_Put(b *testing.B) {
	m := hashtable.New[int, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Put(i, i)
	}
}

func BenchmarkMap_Get(b *testing.B) {
	const n = 1 << 16
	m := hashtable.New[int, int](hashtable.WithCapacity[int, int](n))
	for i := 0; i < n; i++ {
		_ = m.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(i & (n - 1))
	}
}

func BenchmarkMap_PutRemoveChurn(b *testing.B) {
	// Steady-state churn exercises tombstone creation and reuse.
	m := hashtable.New[int, int](hashtable.WithCapacity[int, int](1024))
	for i := 0; i < 512; i++ {
		_ = m.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Put(512+i, i)
		_, _ = m.Remove(i)
	}
}
