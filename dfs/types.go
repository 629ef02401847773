// Package dfs provides iterative depth-first search over a graph.Graph,
// returning preorder visit order, parent links, and discovery depths.
// The explicit frontier is a container.Stack, so deep graphs cannot
// overflow the goroutine stack.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

import "errors"

// Sentinel errors returned by DFS.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to DFS.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates the start vertex does not exist.
	ErrStartNotFound = errors.New("dfs: start vertex not found")
)

// VisitFunc observes a vertex as it is visited (preorder), with its
// discovery depth. A non-nil error aborts the traversal and is returned
// from DFS.
type VisitFunc func(id string, depth int) error

// Result collects the outcome of one traversal.
type Result struct {
	// Order lists vertex IDs in preorder, start first.
	Order []string

	// Depth maps each visited vertex to the depth it was discovered at.
	Depth map[string]int

	// Parent maps each visited vertex (except the start) to the vertex
	// it was discovered from.
	Parent map[string]string
}

// Options configures a traversal.
type Options struct {
	MaxDepth int       // 0 means unlimited; vertices beyond are not pushed
	OnVisit  VisitFunc // optional per-vertex hook
}

// Option is a functional option for configuring DFS.
type Option func(*Options)

// WithMaxDepth bounds the traversal: neighbors deeper than limit are
// not pushed. Zero (the default) means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithOnVisit installs a per-vertex preorder hook; a non-nil error
// aborts the traversal.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// DefaultOptions returns the Options used when no functional options
// are supplied.
func DefaultOptions() Options {
	return Options{}
}
