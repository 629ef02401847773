// Package strukt is a teaching library of generic, manually-managed data
// structures and the classic graph algorithms built on top of them.
//
// 🚀 What is strukt?
//
//	A small, dependency-light library that brings together:
//		• Containers: stack, FIFO queue, singly & doubly linked lists
//		• Hash table: open addressing with double hashing, tombstones
//		  and incremental growth
//		• Indexed heap: a binary min-heap with O(1) membership and
//		  O(log n) priority updates via an internal element→index map
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra (true decrease-key)
//		• Minimum spanning trees: Prim (indexed-heap variant)
//		• TSP: Held–Karp (exact), nearest neighbour (approx)
//
// ✨ Why choose strukt?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest internals – every probing, sifting and growth step is
//     documented where it happens
//   - Pure Go – generics instead of unsafe casts, no cgo
//
// Package map, leaves first:
//
//	container/ — stack, queue, linked lists
//	prime/     — primality test & next-prime search
//	hashtable/ — open-addressing generic map (the workhorse)
//	pqueue/    — indexed binary min-heap, built on hashtable
//	graph/     — adjacency-list weighted/directed graph
//	bfs/, dfs/ — traversals over graph, clients of container
//	dijkstra/  — shortest paths, client of pqueue
//	prim/      — minimum spanning tree, client of pqueue
//	tsp/       — travelling-salesman solvers
//
// All structures are single-goroutine: no operation may run concurrently
// with another on the same instance without external synchronization.
//
//	go get github.com/katalvlaran/strukt
package strukt
