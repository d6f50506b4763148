package shortestpath

import (
	"github.com/katalvlaran/meshpath/mtg"
)

// SearchFromSeed runs single-source Dijkstra from the vertex of seed and
// returns the number of vertices reached (the seed vertex included).
//
// Steps:
//  1. Reset the previous search; record the seed vertex at distance 0 with no
//     back-edge and queue seed.
//  2. While the queue is non-empty and policy.ContinueSearch() holds, pop the
//     closest entry. Entries whose distance is worse than the vertex's current
//     record are stale and skipped.
//  3. For every outbound node around the popped vertex, the return edge is its
//     mate. The candidate distance is the vertex distance plus
//     policy.EdgeLength(returnEdge). If it beats the neighbor's record and
//     policy.CanPush admits it, the neighbor's back-edge moves to the return
//     edge and the return edge is queued.
//
// A nil policy behaves as UnitPolicy. An invalid seed or a closed Context
// returns 0 and leaves the previous results untouched.
func (c *Context) SearchFromSeed(seed mtg.NodeID, policy SearchPolicy) int {
	if c.closed || !c.g.IsValid(seed) {
		return 0
	}
	if policy == nil {
		policy = UnitPolicy{}
	}

	c.ResetIncrementalSearchData()
	c.announce(policy, "seed", seed, mtg.NullNode)
	c.recordVertex(seed, 0)
	c.queue.Push(seed, 0)

	for c.queue.Len() > 0 && policy.ContinueSearch() {
		entry, _ := c.queue.Pop()
		base := entry.Node
		baseDistance := c.vertices[c.vertexIndex(base)].Distance
		if entry.Distance > baseDistance {
			continue // superseded by a shorter route
		}
		c.announce(policy, "pop", base, mtg.NullNode)

		for out := base; ; {
			c.relax(policy, c.g.Mate(out), baseDistance)
			if out = c.g.VSucc(out); out == base {
				break
			}
		}
	}

	return len(c.vertices)
}

// relax offers returnEdge's vertex the distance through the popped vertex.
func (c *Context) relax(policy SearchPolicy, returnEdge mtg.NodeID, baseDistance float64) {
	candidate := baseDistance + policy.EdgeLength(c.g, returnEdge)
	idx := c.vertexIndex(returnEdge)
	if idx != nullVertexIndex && candidate >= c.vertices[idx].Distance {
		return
	}
	if !policy.CanPush(c.g, returnEdge, candidate) {
		return
	}

	if idx == nullVertexIndex {
		idx = c.recordVertex(returnEdge, candidate)
	} else {
		c.vertices[idx].Distance = candidate
	}
	c.setBackEdge(idx, returnEdge)
	c.queue.Push(returnEdge, candidate)
	c.announce(policy, "relax", returnEdge, c.g.Mate(returnEdge))
}
