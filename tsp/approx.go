package tsp

import (
	"github.com/katalvlaran/strukt/graph"
)

// Approx computes a closed tour from start with the nearest-neighbour
// heuristic: repeatedly hop to the cheapest unvisited vertex, then
// return to start. Fast and simple, but with no quality bound on
// arbitrary weights — use Exact when the instance is small enough.
//
// Returns the tour (start first and last) and its cost.
// Complexity: O(n^2) time, O(n) memory.
func Approx(g *graph.Graph, start string) ([]string, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, 0, ErrUnweightedGraph
	}
	if !g.HasVertex(start) {
		return nil, 0, graph.ErrVertexNotFound
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 1 {
		// Single vertex: the tour is standing still.
		return []string{start}, 0, nil
	}

	visited := make(map[string]bool, n)
	tour := make([]string, 0, n+1)
	tour = append(tour, start)
	visited[start] = true

	var cost int64
	cur := start
	for len(tour) < n {
		// Greedy hop: cheapest edge from cur to any unvisited vertex.
		next := ""
		var best int64
		for _, v := range vertices {
			if visited[v] {
				continue
			}
			w, ok := g.Weight(cur, v)
			if !ok {
				return nil, 0, ErrIncomplete
			}
			if next == "" || w < best {
				next = v
				best = w
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cost += best
		cur = next
	}

	// Close the cycle.
	w, ok := g.Weight(cur, start)
	if !ok {
		return nil, 0, ErrIncomplete
	}
	cost += w
	tour = append(tour, start)

	return tour, cost, nil
}
