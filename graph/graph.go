package graph

import "sort"

// Directed reports whether edges are one-way. Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed. Complexity: O(1).
func (g *Graph) Weighted() bool { return g.weighted }

// AddVertex registers a vertex ID. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge connects from→to with the given weight, registering both
// endpoints as vertices if needed. On undirected graphs the edge is
// mirrored into to's adjacency list as well. Unweighted graphs accept
// only weight 0 (ErrBadWeight otherwise). Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	e := Edge{From: from, To: to, Weight: weight}
	g.adj[from] = append(g.adj[from], e)
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Weight: weight})
	}
	g.edges = append(g.edges, e)

	return nil
}

// HasVertex reports whether id is a vertex of the graph. Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order, so iteration over the
// graph is deterministic. Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the edges leaving id: outgoing edges on directed
// graphs, all incident edges (oriented away from id) on undirected ones.
// The returned slice is a copy. Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// Edges returns every edge once, in insertion order, as a copy.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges (mirrors not double-counted).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Weight returns the smallest weight among edges from→to, and whether
// such an edge exists. Used by the TSP solvers, which require complete
// graphs. Complexity: O(deg(from)).
func (g *Graph) Weight(from, to string) (int64, bool) {
	var best int64
	found := false
	for _, e := range g.adj[from] {
		if e.To != to {
			continue
		}
		if !found || e.Weight < best {
			best = e.Weight
			found = true
		}
	}

	return best, found
}
