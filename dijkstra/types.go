// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs with non-negative edge weights.
//
// The frontier is a pqueue.IndexedHeap keyed by vertex ID, which gives a
// true decrease-key: when a strictly shorter path to a queued vertex is
// found, its priority is lowered in place with Update instead of pushing
// a duplicate entry. Contains distinguishes "never reached" from
// "reached and currently queued"; finalized vertices are tracked in a
// visited set outside the heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is pushed and popped once,
//     each edge relaxation is at most one Push or Update.
//   - Space: O(V) — the heap never holds more than one entry per vertex.
//
// Errors (sentinel):
//
//   - ErrEmptySource     if no source vertex ID was provided.
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrUnweightedGraph if the graph does not carry weights.
//   - ErrVertexNotFound  if the source vertex does not exist.
//   - ErrNegativeWeight  if any edge weight is negative.
package dijkstra

import "errors"

// Unreachable is the distance reported for vertices the source cannot
// reach.
const Unreachable int64 = 1<<63 - 1

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was not built WithWeighted;
	// Dijkstra orders vertices by accumulated weight.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a Dijkstra run.
type Options struct {
	Source     string // starting vertex ID; required
	ReturnPath bool   // whether to build and return the predecessor map
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables the predecessor map in the result; without it
// the prev return value is nil.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns the Options used when no functional options
// are supplied: no source (must be set), no predecessor map.
func DefaultOptions() Options {
	return Options{}
}
