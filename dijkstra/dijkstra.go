package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strukt/graph"
	"github.com/katalvlaran/strukt/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable vertex of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if no path).
//   - prev: predecessor map when WithReturnPath is given, nil otherwise.
//   - err:  a sentinel error for invalid input (see package doc).
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *graph.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Fail fast on negative weights before touching any state.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Initialize distances to Unreachable, the source to 0.
	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
	}
	dist[cfg.Source] = 0

	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}

	// 4) The frontier holds at most one entry per vertex; visited marks
	//    vertices whose distance is final.
	visited := make(map[string]bool, len(vertices))
	frontier := pqueue.New[string](pqueue.WithCapacity[string](len(vertices)))
	if err := frontier.Push(0, cfg.Source); err != nil {
		return nil, nil, err
	}

	// 5) Main loop: pop the closest queued vertex, finalize it, relax
	//    its outgoing edges.
	for {
		d, u, err := frontier.Pop()
		if errors.Is(err, pqueue.ErrEmptyHeap) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.To
			if visited[v] {
				continue
			}
			nd := d + e.Weight
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			if prev != nil {
				prev[v] = u
			}

			// True decrease-key: lower the priority of a queued vertex
			// in place, push it otherwise.
			if frontier.Contains(v) {
				err = frontier.Update(nd, v)
			} else {
				err = frontier.Push(nd, v)
			}
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return dist, prev, nil
}
