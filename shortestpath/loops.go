package shortestpath

import (
	"github.com/katalvlaran/meshpath/mtg"
)

// MarkShortestPathBetweenLoops grows shortest-path fronts from every face loop
// whose nodes carry loopMask and paints pathMask on both half-edges of every
// connector it finds. It returns the number of connectors painted.
//
// Each loop becomes one union-find cluster. A loop node splits its vertex into
// sectors (the nodes from one loop node up to the next around the vertex), so
// a vertex touched by several loops gives each loop its own sector. When a
// front steps into a sector that already belongs to another cluster, the two
// fronts are traced back to their loops, the path is painted and the clusters
// merge. Meetings inside a single cluster are dropped, so at most
// clusters-1 connectors are painted and none is redundant. The first meeting
// of two clusters is not guaranteed to be the globally shortest connector
// between them.
//
// Steps:
//  1. Reset; give each loop a cluster and record its sectors at distance 0.
//  2. Queue every node of every seeded sector at its own edge length.
//  3. Pop base; far := FSucc(base) is the next node on base's face.
//     - far unreached: record far's sector in base's cluster, set its
//     back-edge to Mate(base) and queue its other nodes.
//     - far in the same cluster: drop.
//     - otherwise: paint the connector, union the clusters.
//
// A nil policy behaves as UnitPolicy. A zero loopMask, a zero pathMask or a
// closed Context returns 0.
func (c *Context) MarkShortestPathBetweenLoops(loopMask, pathMask mtg.Mask, policy SearchPolicy) int {
	if c.closed || loopMask == mtg.NullMask || pathMask == mtg.NullMask {
		return 0
	}
	if policy == nil {
		policy = UnitPolicy{}
	}
	c.ResetIncrementalSearchData()

	// 1. one cluster per tagged face loop
	n := c.g.NumNodes()
	for i := 0; i < n; i++ {
		node := mtg.NodeID(i)
		if !c.g.HasMaskAt(node, loopMask) || c.vertexIndex(node) != nullVertexIndex {
			continue
		}
		cluster := c.clusters.NewCluster()
		c.announce(policy, "loop", node, mtg.NullNode)
		for m := node; ; {
			if c.g.HasMaskAt(m, loopMask) && c.vertexIndex(m) == nullVertexIndex {
				c.recordSector(m, loopMask, 0, cluster)
			}
			if m = c.g.FSucc(m); m == node {
				break
			}
		}
	}

	// 2. seed the queue
	seeded := len(c.vertices)
	for idx := 0; idx < seeded; idx++ {
		c.pushSector(policy, idx, loopMask, mtg.NullNode)
	}

	// 3. grow fronts
	connectors := 0
	for c.queue.Len() > 0 && policy.ContinueSearch() {
		entry, _ := c.queue.Pop()
		base := entry.Node
		far := c.g.FSucc(base)
		baseCluster := c.vertices[c.vertexIndex(base)].Cluster
		farIdx := c.vertexIndex(far)

		switch {
		case farIdx == nullVertexIndex:
			back := c.g.Mate(base)
			farIdx = c.recordSector(far, loopMask, entry.Distance, baseCluster)
			c.setBackEdge(farIdx, back)
			c.pushSector(policy, farIdx, loopMask, back)

		case c.clusters.Same(baseCluster, c.vertices[farIdx].Cluster):
			// both fronts already joined

		default:
			c.paintConnector(base, far, pathMask)
			c.clusters.Union(baseCluster, c.vertices[farIdx].Cluster)
			connectors++
			c.announce(policy, "connect", base, far)
		}
	}

	return connectors
}

// sectorStart returns the loop node opening the sector that holds n, walking
// backwards around the vertex. A vertex with no loop node is a single sector
// and n itself is returned.
func (c *Context) sectorStart(n mtg.NodeID, loopMask mtg.Mask) mtg.NodeID {
	for m := n; ; {
		if c.g.HasMaskAt(m, loopMask) {
			return m
		}
		if m = c.g.VPred(m); m == n {
			return n
		}
	}
}

// forEachSectorNode calls fn for every node of the sector opened by start.
func (c *Context) forEachSectorNode(start mtg.NodeID, loopMask mtg.Mask, fn func(mtg.NodeID)) {
	for m := start; ; {
		fn(m)
		if m = c.g.VSucc(m); m == start || c.g.HasMaskAt(m, loopMask) {
			return
		}
	}
}

// recordSector creates the record for the sector holding n.
func (c *Context) recordSector(n mtg.NodeID, loopMask mtg.Mask, distance float64, cluster int) int {
	start := c.sectorStart(n, loopMask)
	idx := len(c.vertices)
	c.vertices = append(c.vertices, VertexData{
		NodeA:    start,
		NodeB:    mtg.NullNode,
		Distance: distance,
		Cluster:  cluster,
	})
	c.forEachSectorNode(start, loopMask, func(m mtg.NodeID) {
		c.nodeToVertex[m] = idx
	})

	return idx
}

// pushSector queues every node of sector idx except skip.
func (c *Context) pushSector(policy SearchPolicy, idx int, loopMask mtg.Mask, skip mtg.NodeID) {
	rec := c.vertices[idx]
	c.forEachSectorNode(rec.NodeA, loopMask, func(m mtg.NodeID) {
		if m == skip {
			return
		}
		d := rec.Distance + policy.EdgeLength(c.g, m)
		if policy.CanPush(c.g, m, d) {
			c.queue.Push(m, d)
		}
	})
}

// paintConnector marks the edge base→far and both back-edge chains behind it.
func (c *Context) paintConnector(base, far mtg.NodeID, pathMask mtg.Mask) {
	c.g.SetMaskAroundEdge(base, pathMask)
	c.paintChain(base, pathMask)
	c.paintChain(far, pathMask)
}

// paintChain follows back-edges from the sector of n to its loop.
func (c *Context) paintChain(n mtg.NodeID, pathMask mtg.Mask) {
	idx := c.vertexIndex(n)
	for steps := 0; idx != nullVertexIndex && steps < len(c.vertices); steps++ {
		back := c.vertices[idx].NodeB
		if back == mtg.NullNode {
			return
		}
		c.g.SetMaskAroundEdge(back, pathMask)
		idx = c.vertexIndex(c.g.Mate(back))
	}
}
