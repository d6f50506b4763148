package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/pqueue"
	"github.com/katalvlaran/meshpath/unionfind"
)

// Context holds the reusable state of shortest-path searches on one graph.
//
// vertices is a dense arena of VertexData records; nodeToVertex maps a node id
// to the index of the record of its vertex (or sector), nullVertexIndex when
// none. Both are rebuilt lazily as nodes are reached.
type Context struct {
	g        *mtg.Graph
	options  Options
	backEdge mtg.Mask

	vertices     []VertexData
	nodeToVertex []int
	indexedNodes int // graph size when nodeToVertex was last grown

	queue    *pqueue.Queue
	clusters *unionfind.Set
	closed   bool
}

// NewContext binds a Context to g and grabs its private back-edge mask.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - mtg.ErrMaskPoolExhausted (wrapped): no mask is available.
func NewContext(g *mtg.Graph, opts ...Option) (*Context, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	mask, err := g.GrabMask()
	if err != nil {
		return nil, fmt.Errorf("shortestpath: grab back-edge mask: %w", err)
	}
	// A previous owner may have left the bit set.
	g.ClearMaskInSet(mask)

	return &Context{
		g:        g,
		options:  cfg,
		backEdge: mask,
		vertices: make([]VertexData, 0, cfg.Capacity),
		queue:    pqueue.New(cfg.Capacity),
		clusters: unionfind.New(0),
	}, nil
}

// Close clears the back-edge mask from every node and returns it to the pool.
// Calling Close more than once is a no-op.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.g.ClearMaskInSet(c.backEdge)
	c.vertices = nil
	c.nodeToVertex = nil
	c.queue.Reset()
	c.clusters.Reset()

	return c.g.DropMask(c.backEdge)
}

// Graph returns the graph the Context is bound to.
func (c *Context) Graph() *mtg.Graph { return c.g }

// BackEdgeMask returns the private mask marking back-edges.
func (c *Context) BackEdgeMask() mtg.Mask { return c.backEdge }

// ResetIncrementalSearchData forgets the previous search.
//
// Only the vertices recorded by that search are touched: their node→vertex
// entries are reset and their back-edge bits cleared. If the graph grew since
// the index was built, the whole index and mask are cleared instead.
func (c *Context) ResetIncrementalSearchData() {
	if c.closed {
		return
	}
	if c.indexedNodes != c.g.NumNodes() {
		c.g.ClearMaskInSet(c.backEdge)
		for i := range c.nodeToVertex {
			c.nodeToVertex[i] = nullVertexIndex
		}
	} else {
		for i := range c.vertices {
			rec := &c.vertices[i]
			c.clearIndexAroundVertex(rec.NodeA)
			if rec.NodeB != mtg.NullNode {
				c.g.ClearMaskAt(rec.NodeB, c.backEdge)
			}
		}
	}
	c.vertices = c.vertices[:0]
	c.queue.Reset()
	c.clusters.Reset()
	c.growIndex()
}

// growIndex extends nodeToVertex to cover every node of the graph.
func (c *Context) growIndex() {
	n := c.g.NumNodes()
	for len(c.nodeToVertex) < n {
		c.nodeToVertex = append(c.nodeToVertex, nullVertexIndex)
	}
	c.indexedNodes = n
}

func (c *Context) clearIndexAroundVertex(n mtg.NodeID) {
	for m := n; ; {
		if int(m) < len(c.nodeToVertex) {
			c.nodeToVertex[m] = nullVertexIndex
		}
		if m = c.g.VSucc(m); m == n || m == mtg.NullNode {
			break
		}
	}
}

// vertexIndex returns the record index for the vertex of n.
func (c *Context) vertexIndex(n mtg.NodeID) int {
	if n < 0 || int(n) >= len(c.nodeToVertex) {
		return nullVertexIndex
	}
	return c.nodeToVertex[n]
}

// recordVertex creates the record for the whole vertex of n.
func (c *Context) recordVertex(n mtg.NodeID, distance float64) int {
	idx := len(c.vertices)
	c.vertices = append(c.vertices, VertexData{
		NodeA:    n,
		NodeB:    mtg.NullNode,
		Distance: distance,
		Cluster:  -1,
	})
	for m := n; ; {
		c.nodeToVertex[m] = idx
		if m = c.g.VSucc(m); m == n {
			break
		}
	}

	return idx
}

// setBackEdge moves the back-edge of record idx to node.
func (c *Context) setBackEdge(idx int, node mtg.NodeID) {
	rec := &c.vertices[idx]
	if rec.NodeB != mtg.NullNode {
		c.g.ClearMaskAt(rec.NodeB, c.backEdge)
	}
	rec.NodeB = node
	c.g.SetMaskAt(node, c.backEdge)
}

// announce forwards a diagnostic message to the observer and the policy.
func (c *Context) announce(policy SearchPolicy, message string, a, b mtg.NodeID) {
	c.options.Observer(message, a, b)
	if an, ok := policy.(Announcer); ok {
		an.Announce(message, a, b)
	}
}

// NumVertex returns the number of records created by the last search.
func (c *Context) NumVertex() int { return len(c.vertices) }

// VertexData returns record i of the last search.
func (c *Context) VertexData(i int) (VertexData, bool) {
	if i < 0 || i >= len(c.vertices) {
		return VertexData{NodeA: mtg.NullNode, NodeB: mtg.NullNode, Distance: UnreachedDistance, Cluster: -1}, false
	}
	return c.vertices[i], true
}

// VertexIndex returns the record index of the vertex of node, or -1.
func (c *Context) VertexIndex(node mtg.NodeID) int {
	return c.vertexIndex(node)
}

// DistanceToVertex returns the distance recorded for the vertex of node.
// For an unreached vertex it returns UnreachedDistance and false.
func (c *Context) DistanceToVertex(node mtg.NodeID) (float64, bool) {
	idx := c.vertexIndex(node)
	if idx == nullVertexIndex {
		return UnreachedDistance, false
	}
	return c.vertices[idx].Distance, true
}
