package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/strukt/pqueue"
)

// ExampleIndexedHeap demonstrates push, in-place priority update, and
// ordered pop — the decrease-key pattern Dijkstra and Prim rely on.
func ExampleIndexedHeap() {
	// 1) Queue three jobs by urgency (lower = sooner).
	h := pqueue.New[string]()
	_ = h.Push(30, "backup")
	_ = h.Push(20, "reindex")
	_ = h.Push(10, "serve")

	// 2) The backup becomes urgent: lower its priority in place.
	_ = h.Update(5, "backup")

	// 3) Membership is O(1) via the internal index map.
	fmt.Println(h.Contains("reindex"))

	// 4) Drain in priority order.
	for h.Len() > 0 {
		p, job, _ := h.Pop()
		fmt.Println(p, job)
	}
	// Output:
	// true
	// 5 backup
	// 10 serve
	// 20 reindex
}
