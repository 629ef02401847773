// Package prim implements Prim's minimum-spanning-tree algorithm on
// undirected, weighted graphs.
//
// This is the indexed variant: the frontier is a pqueue.IndexedHeap
// holding each reachable-but-unvisited vertex under the weight of its
// cheapest known connecting edge. Discovering a cheaper connection
// lowers that vertex's priority in place with Update — the heap never
// holds duplicate candidates, unlike edge-heap formulations.
//
// Complexity: O(E log V) time, O(V) memory.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph         if g is nil, directed, or unweighted.
//   - ErrEmptyRoot            if the root vertex ID is empty.
//   - graph.ErrVertexNotFound if the root does not exist in g.
//   - ErrDisconnected         if no spanning tree covers every vertex.
package prim

import "errors"

// Sentinel errors returned by Prim.
var (
	// ErrInvalidGraph indicates g is nil, directed, or unweighted; Prim
	// requires an undirected weighted graph.
	ErrInvalidGraph = errors.New("prim: graph must be undirected and weighted")

	// ErrEmptyRoot indicates the provided root vertex ID is empty.
	ErrEmptyRoot = errors.New("prim: root vertex ID is empty")

	// ErrDisconnected indicates the graph has no spanning tree reaching
	// every vertex from the root.
	ErrDisconnected = errors.New("prim: graph is disconnected")
)
