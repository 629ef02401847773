// Package graph defines a compact adjacency-list graph: string vertex
// IDs, optional directedness, optional integer weights.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// New constructor. Mutating and querying methods live in graph.go.
//
// Unlike heavyweight graph cores, this one is a plain single-goroutine
// structure: no locks, no edge IDs, no metadata. It exists to feed the
// traversal and shortest-path packages (bfs, dfs, dijkstra, prim, tsp).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - non-zero weight on an unweighted graph.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an operation was given an empty vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")
)

// Edge is a connection From→To with an integer Weight (always 0 on
// unweighted graphs). On undirected graphs every edge is mirrored into
// both endpoints' adjacency lists, with From/To swapped in the mirror.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes all edges one-way From→To.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an adjacency-list graph over string vertex IDs.
//
// The zero value is not usable; construct with New. Not safe for
// concurrent use.
type Graph struct {
	directed bool
	weighted bool

	vertices map[string]struct{}
	adj      map[string][]Edge // per-vertex outgoing (and mirrored) edges
	edges    []Edge            // every edge once, as added
}

// New creates an empty Graph. By default it is undirected and
// unweighted. Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
