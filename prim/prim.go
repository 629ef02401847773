package prim

import (
	"fmt"

	"github.com/katalvlaran/strukt/graph"
	"github.com/katalvlaran/strukt/pqueue"
)

// Prim computes the minimum spanning tree of an undirected, weighted
// graph, growing outward from root.
//
// Steps:
//  1. Validate: g non-nil, weighted, undirected; root non-empty and
//     present.
//  2. Queue root at priority 0. For every other vertex the frontier
//     holds at most one entry: the weight of its cheapest edge into the
//     tree so far, maintained with Update (true decrease-key).
//  3. Repeatedly pop the cheapest frontier vertex, add its recorded
//     connecting edge to the MST, and relax its incident edges.
//  4. Fewer than V-1 edges collected → ErrDisconnected.
//
// Returns the MST edges (in the order vertices joined the tree) and the
// total weight. Complexity: O(E log V).
func Prim(g *graph.Graph, root string) ([]graph.Edge, int64, error) {
	// 1) Validation.
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, graph.ErrVertexNotFound
	}

	n := g.VertexCount()
	if n == 1 {
		// Single-vertex MST is trivially empty.
		return []graph.Edge{}, 0, nil
	}

	// 2) Frontier state: per-vertex cheapest connection weight (key)
	//    and the edge realizing it (bestEdge). The heap mirrors key.
	key := make(map[string]int64, n)
	bestEdge := make(map[string]graph.Edge, n)
	visited := make(map[string]bool, n)
	mst := make([]graph.Edge, 0, n-1)
	var total int64

	frontier := pqueue.New[string](pqueue.WithCapacity[string](n))
	key[root] = 0
	if err := frontier.Push(0, root); err != nil {
		return nil, 0, err
	}

	// 3) Main loop.
	for frontier.Len() > 0 {
		w, u, err := frontier.Pop()
		if err != nil {
			return nil, 0, err
		}
		visited[u] = true
		if u != root {
			mst = append(mst, bestEdge[u])
			total += w
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, 0, fmt.Errorf("prim: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.To
			if visited[v] {
				continue
			}
			cur, seen := key[v]
			if seen && e.Weight >= cur {
				continue
			}
			key[v] = e.Weight
			bestEdge[v] = e
			if seen {
				err = frontier.Update(e.Weight, v)
			} else {
				err = frontier.Push(e.Weight, v)
			}
			if err != nil {
				return nil, 0, err
			}
		}
	}

	// 4) Connectivity check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
