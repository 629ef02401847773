package tsp

import (
	"github.com/katalvlaran/strukt/graph"
)

// infCost is an unreachable dp cell; far above any real tour cost yet
// safe to add edge weights to without overflow.
const infCost = int64(1) << 62

// Exact computes the optimal closed tour from start using the Held–Karp
// dynamic program over vertex subsets.
//
// dp[mask][i] is the cheapest way to leave start, visit exactly the
// vertex subset mask, and stand on vertex i (i ∈ mask). The answer is
// the cheapest dp[full][i] plus the edge back to start; parents are
// recorded for path reconstruction.
//
// Returns the tour (start first and last) and its cost.
// Complexity: O(2^n · n^2) time, O(2^n · n) memory, n = V-1.
func Exact(g *graph.Graph, start string) ([]string, int64, error) {
	others, w, depart, ret, err := prepare(g, start)
	if err != nil {
		return nil, 0, err
	}
	m := len(others)
	if m == 0 {
		// Single vertex: the tour is standing still.
		return []string{start}, 0, nil
	}
	if m+1 > MaxExactVertices {
		return nil, 0, ErrTooLarge
	}

	// dp and parent tables over all subsets of the non-start vertices.
	size := 1 << m
	dp := make([][]int64, size)
	parent := make([][]int, size)
	for mask := range dp {
		dp[mask] = make([]int64, m)
		parent[mask] = make([]int, m)
		for i := range dp[mask] {
			dp[mask][i] = infCost
			parent[mask][i] = -1
		}
	}
	for i := 0; i < m; i++ {
		dp[1<<i][i] = depart[i] // start → others[i]
	}

	// Grow subsets: extend every reachable (mask, last) by one vertex.
	for mask := 1; mask < size; mask++ {
		for last := 0; last < m; last++ {
			if mask&(1<<last) == 0 || dp[mask][last] == infCost {
				continue
			}
			base := dp[mask][last]
			for next := 0; next < m; next++ {
				if mask&(1<<next) != 0 {
					continue
				}
				cand := base + w[last][next]
				nm := mask | 1<<next
				if cand < dp[nm][next] {
					dp[nm][next] = cand
					parent[nm][next] = last
				}
			}
		}
	}

	// Close the cycle back to start.
	full := size - 1
	bestCost := infCost
	bestLast := -1
	for i := 0; i < m; i++ {
		if dp[full][i] == infCost {
			continue
		}
		cand := dp[full][i] + ret[i]
		if cand < bestCost {
			bestCost = cand
			bestLast = i
		}
	}
	if bestLast < 0 {
		return nil, 0, ErrIncomplete
	}

	// Walk the parent chain backwards, then reverse into tour order.
	order := make([]int, 0, m)
	mask, last := full, bestLast
	for last >= 0 {
		order = append(order, last)
		mask, last = mask&^(1<<last), parent[mask][last]
	}
	tour := make([]string, 0, m+2)
	tour = append(tour, start)
	for i := len(order) - 1; i >= 0; i-- {
		tour = append(tour, others[order[i]])
	}
	tour = append(tour, start)

	return tour, bestCost, nil
}

// prepare validates the graph and builds the dense weight tables:
// w[i][j] between non-start vertices, depart[i] for start→others[i],
// ret[i] for others[i]→start. The two directions are looked up
// separately, so directed graphs work too.
func prepare(g *graph.Graph, start string) (others []string, w [][]int64, depart, ret []int64, err error) {
	if g == nil {
		return nil, nil, nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(start) {
		return nil, nil, nil, nil, graph.ErrVertexNotFound
	}

	for _, v := range g.Vertices() {
		if v != start {
			others = append(others, v)
		}
	}
	m := len(others)

	w = make([][]int64, m)
	depart = make([]int64, m)
	ret = make([]int64, m)
	for i := 0; i < m; i++ {
		weight, ok := g.Weight(start, others[i])
		if !ok {
			return nil, nil, nil, nil, ErrIncomplete
		}
		depart[i] = weight

		weight, ok = g.Weight(others[i], start)
		if !ok {
			return nil, nil, nil, nil, ErrIncomplete
		}
		ret[i] = weight

		w[i] = make([]int64, m)
		for j := 0; j < m; j++ {
			if i == j {
				continue
			}
			weight, ok = g.Weight(others[i], others[j])
			if !ok {
				return nil, nil, nil, nil, ErrIncomplete
			}
			w[i][j] = weight
		}
	}

	return others, w, depart, ret, nil
}
