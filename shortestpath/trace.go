package shortestpath

import (
	"github.com/katalvlaran/meshpath/mtg"
)

// TraceAndUnmarkEdges follows marked half-edges from the vertex of seed.
//
// At each vertex it looks for a node carrying pathMask and, when edgeClearMask
// is non-zero, edgeClearMask as well. The node is appended to reversed, loses
// its edgeClearMask bits and the walk moves to FSucc(node), the far end of that
// edge. The walk stops at the first vertex with no qualifying node.
//
// Passing the back-edge mask as pathMask walks toward the seed of the last
// search. Using the same mask as edgeClearMask consumes the marks, so a second
// trace over the same route yields nothing.
//
// forward holds the same nodes in the opposite order; with reverseMate each is
// replaced by its mate, giving half-edges directed away from where the walk
// ended. Walks are capped at NumNodes steps.
func (c *Context) TraceAndUnmarkEdges(seed mtg.NodeID, pathMask, edgeClearMask mtg.Mask, reverseMate bool) (reversed, forward []mtg.NodeID) {
	if !c.g.IsValid(seed) || pathMask == mtg.NullMask {
		return nil, nil
	}

	limit := c.g.NumNodes()
	for cur, steps := seed, 0; steps < limit; steps++ {
		node := c.findTraceNode(cur, pathMask, edgeClearMask)
		if node == mtg.NullNode {
			break
		}
		reversed = append(reversed, node)
		if edgeClearMask != mtg.NullMask {
			c.g.ClearMaskAt(node, edgeClearMask)
		}
		cur = c.g.FSucc(node)
	}

	forward = make([]mtg.NodeID, len(reversed))
	for i, node := range reversed {
		if reverseMate {
			node = c.g.Mate(node)
		}
		forward[len(reversed)-1-i] = node
	}

	return reversed, forward
}

func (c *Context) findTraceNode(n mtg.NodeID, pathMask, edgeClearMask mtg.Mask) mtg.NodeID {
	for m := n; ; {
		if c.g.HasMaskAt(m, pathMask) && (edgeClearMask == mtg.NullMask || c.g.HasMaskAt(m, edgeClearMask)) {
			return m
		}
		if m = c.g.VSucc(m); m == n {
			return mtg.NullNode
		}
	}
}

// PathToSeed returns the half-edges of the shortest path from the seed of the
// last search to the vertex of node, in travel order. Marks are left in place.
// The seed's own vertex yields an empty path.
//
// Errors:
//   - ErrContextClosed: the Context was closed.
//   - ErrUnreached: node is invalid or its vertex was not reached.
func (c *Context) PathToSeed(node mtg.NodeID) ([]mtg.NodeID, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	idx := c.vertexIndex(node)
	if idx == nullVertexIndex {
		return nil, ErrUnreached
	}

	var reversed []mtg.NodeID
	for steps := 0; steps < len(c.vertices); steps++ {
		back := c.vertices[idx].NodeB
		if back == mtg.NullNode {
			break
		}
		reversed = append(reversed, c.g.Mate(back))
		if idx = c.vertexIndex(c.g.Mate(back)); idx == nullVertexIndex {
			break
		}
	}

	path := make([]mtg.NodeID, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}

	return path, nil
}
