// Package tsp provides travelling-salesman solvers over complete
// weighted graphs: an exact Held–Karp dynamic program and a
// nearest-neighbour approximation.
//
// Both solvers take the tour's starting vertex and return a closed tour
// (the start vertex appears first and last) together with its cost.
// Completeness is required: every ordered pair of distinct vertices must
// be connected (on undirected graphs the mirrored edge counts).
//
// Complexity:
//
//   - Exact:  O(2^n · n^2) time, O(2^n · n) memory — capped at
//     MaxExactVertices vertices (ErrTooLarge beyond).
//   - Approx: O(n^2) time, O(n) memory; no approximation bound is
//     guaranteed on arbitrary weights, but it is a standard fast
//     baseline.
//
// Errors (sentinel):
//
//   - ErrNilGraph             if g is nil.
//   - ErrUnweightedGraph      if g does not carry weights.
//   - graph.ErrVertexNotFound if the start vertex does not exist.
//   - ErrIncomplete           if some vertex pair has no connecting edge.
//   - ErrTooLarge             if Exact is asked for more than
//     MaxExactVertices vertices.
package tsp

import "errors"

// MaxExactVertices bounds the Held–Karp solver: at 20 vertices the dp
// tables already hold 2^19 subset rows, and each extra vertex doubles
// them. Anything larger belongs to heuristics.
const MaxExactVertices = 20

// Sentinel errors returned by the TSP solvers.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrUnweightedGraph indicates the graph does not carry weights.
	ErrUnweightedGraph = errors.New("tsp: graph must be weighted")

	// ErrIncomplete indicates a vertex pair with no connecting edge;
	// the solvers require complete graphs.
	ErrIncomplete = errors.New("tsp: graph is not complete")

	// ErrTooLarge indicates more vertices than MaxExactVertices were
	// given to the exact solver.
	ErrTooLarge = errors.New("tsp: too many vertices for exact solver")
)
