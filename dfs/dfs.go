package dfs

import (
	"fmt"

	"github.com/katalvlaran/strukt/container"
	"github.com/katalvlaran/strukt/graph"
)

// frame is one pending vertex on the explicit DFS stack.
type frame struct {
	id     string
	depth  int
	parent string
}

// DFS runs iterative depth-first search on g from start, applying any
// number of functional Options. Returns ErrNilGraph or ErrStartNotFound
// for invalid input, and any error produced by the OnVisit hook.
//
// Neighbors are pushed in reverse order so they are visited in the
// order the graph reports them, matching the recursive formulation.
// Complexity: O(V + E).
func DFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visited := make(map[string]bool, n)

	var stack container.Stack[frame]
	stack.Push(frame{id: start})

	for {
		f, ok := stack.Pop()
		if !ok {
			return res, nil
		}
		// A vertex can sit on the stack several times; only the first
		// pop visits it.
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		res.Order = append(res.Order, f.id)
		res.Depth[f.id] = f.depth
		if f.parent != "" {
			res.Parent[f.id] = f.parent
		}
		if o.OnVisit != nil {
			if err := o.OnVisit(f.id, f.depth); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit error at %q: %w", f.id, err)
			}
		}

		next := f.depth + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		neighbors, err := g.Neighbors(f.id)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
		}
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i].To] {
				stack.Push(frame{id: neighbors[i].To, depth: next, parent: f.id})
			}
		}
	}
}
