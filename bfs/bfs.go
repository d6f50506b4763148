// Package bfs provides breadth-first search over an mtg.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from the vertex of a start
// node, with optional hooks, depth limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/meshpath/mtg"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	vertex mtg.NodeID // representative node
	depth  int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *mtg.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from the vertex of start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeInvalid for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *mtg.Graph, start mtg.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsValid(start) {
		return nil, ErrStartNodeInvalid
	}

	n := g.NumNodes()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n/2),
		res: &BFSResult{
			Order:  make([]mtg.NodeID, 0, n/2),
			Depth:  make(map[mtg.NodeID]int, n/2),
			Parent: make(map[mtg.NodeID]mtg.NodeID, n/2),
			Via:    make(map[mtg.NodeID]mtg.NodeID, n/2),
		},
	}

	w.enqueue(g.VertexRepresentative(start), 0, mtg.NullNode, mtg.NullNode)

	return w.res, w.loop()
}

// enqueue records vertex at depth d with its parent and calls OnEnqueue.
func (w *walker) enqueue(vertex mtg.NodeID, d int, parent, via mtg.NodeID) {
	w.res.Depth[vertex] = d
	if parent != mtg.NullNode {
		w.res.Parent[vertex] = parent
		w.res.Via[vertex] = via
	}
	w.opts.OnEnqueue(vertex, d)
	w.queue = append(w.queue, queueItem{vertex: vertex, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.vertex, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.vertex)
	if err := w.opts.OnVisit(item.vertex, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at vertex %d: %w", item.vertex, err)
	}
	return nil
}

// enqueueNeighbors walks the outbound half-edges of the vertex in VSucc
// order, applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for out := item.vertex; ; {
		if w.opts.FilterEdge(out) {
			nbr := w.graph.VertexRepresentative(w.graph.Mate(out))
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, nextDepth, item.vertex, out)
			}
		}
		if out = w.graph.VSucc(out); out == item.vertex {
			break
		}
	}
}
