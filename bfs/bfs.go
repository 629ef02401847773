package bfs

import (
	"fmt"

	"github.com/katalvlaran/strukt/container"
	"github.com/katalvlaran/strukt/graph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one traversal.
type walker struct {
	g       *graph.Graph
	opts    Options
	queue   container.Queue[queueItem]
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start, applying any number of
// functional Options. Returns ErrNilGraph, ErrStartNotFound, or
// ErrWeightedGraph for invalid input, and any error produced by the
// OnVisit hook. Complexity: O(V + E).
func BFS(g *graph.Graph, start string, opts ...Option) (*Result, error) {
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
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		g:       g,
		opts:    o,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, and adds it
// to the frontier.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop drains the frontier, visiting each vertex and enqueueing its
// unseen neighbors.
func (w *walker) loop() error {
	for {
		item, ok := w.queue.Dequeue()
		if !ok {
			return nil
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
}

// visit records the vertex in Order and fires the OnVisit hook.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// expand enqueues every unseen neighbor of item, honoring MaxDepth.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.g.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}

	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range neighbors {
		if !w.visited[e.To] {
			w.enqueue(e.To, next, item.id)
		}
	}

	return nil
}
