// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path depths, parent links, and visit
// order. The frontier is a container.Queue.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs

import "errors"

// Sentinel errors returned by BFS.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to BFS.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotFound indicates the start vertex does not exist.
	ErrStartNotFound = errors.New("bfs: start vertex not found")

	// ErrWeightedGraph indicates the graph carries weights; BFS depths
	// are hop counts and would silently ignore them.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")
)

// VisitFunc observes a vertex as it is visited, with its BFS depth.
// A non-nil error aborts the traversal and is returned from BFS.
type VisitFunc func(id string, depth int) error

// Result collects the outcome of one traversal.
type Result struct {
	// Order lists vertex IDs in visit order, start first.
	Order []string

	// Depth maps each visited vertex to its hop count from the start.
	Depth map[string]int

	// Parent maps each visited vertex (except the start) to the vertex
	// it was discovered from.
	Parent map[string]string
}

// Options configures a traversal.
type Options struct {
	MaxDepth int       // 0 means unlimited; vertices beyond are not enqueued
	OnVisit  VisitFunc // optional per-vertex hook
}

// Option is a functional option for configuring BFS.
type Option func(*Options)

// WithMaxDepth bounds the traversal: neighbors deeper than limit hops
// are not enqueued. Zero (the default) means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithOnVisit installs a per-vertex hook; a non-nil error aborts the
// traversal.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// DefaultOptions returns the Options used when no functional options
// are supplied.
func DefaultOptions() Options {
	return Options{}
}
