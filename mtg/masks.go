package mtg

import (
	"fmt"
	"math/bits"
)

// GrabMask takes one bit from the mask pool.
//
// The grabbed bit may still be set on nodes left behind by an earlier owner
// that did not clean up; callers that need a clean slate call ClearMaskInSet.
//
// Errors:
//   - ErrMaskPoolExhausted: every pool bit is held.
//
// Complexity: O(1).
func (g *Graph) GrabMask() (Mask, error) {
	if g.freeMasks == 0 {
		return NullMask, ErrMaskPoolExhausted
	}
	m := Mask(1) << bits.TrailingZeros32(uint32(g.freeMasks))
	g.freeMasks &^= m

	return m, nil
}

// DropMask returns the bits of m to the pool. Dropping NullMask is a no-op.
// Node bits are left untouched.
//
// Errors:
//   - ErrMaskNotGrabbed: m contains reserved bits or bits that are already free.
func (g *Graph) DropMask(m Mask) error {
	if m == NullMask {
		return nil
	}
	if m&reservedMaskBits != 0 || m&g.freeMasks != 0 {
		return fmt.Errorf("%w: %#x", ErrMaskNotGrabbed, uint32(m))
	}
	g.freeMasks |= m

	return nil
}

// FreeMaskCount returns how many pool bits are still available.
func (g *Graph) FreeMaskCount() int {
	return bits.OnesCount32(uint32(g.freeMasks))
}

// SetMaskAt sets the bits of m on node n.
func (g *Graph) SetMaskAt(n NodeID, m Mask) {
	if g.IsValid(n) {
		g.masks[n] |= m
	}
}

// ClearMaskAt clears the bits of m on node n.
func (g *Graph) ClearMaskAt(n NodeID, m Mask) {
	if g.IsValid(n) {
		g.masks[n] &^= m
	}
}

// HasMaskAt reports whether any bit of m is set on node n.
func (g *Graph) HasMaskAt(n NodeID, m Mask) bool {
	return g.IsValid(n) && g.masks[n]&m != 0
}

// GetMaskAt returns the bits of m that are set on node n.
func (g *Graph) GetMaskAt(n NodeID, m Mask) Mask {
	if !g.IsValid(n) {
		return NullMask
	}
	return g.masks[n] & m
}

// SetMaskAroundVertex sets m on every node around the vertex of n.
func (g *Graph) SetMaskAroundVertex(n NodeID, m Mask) {
	if !g.IsValid(n) {
		return
	}
	for c := n; ; {
		g.masks[c] |= m
		if c = g.fSucc[c^1]; c == n {
			break
		}
	}
}

// ClearMaskAroundVertex clears m on every node around the vertex of n.
func (g *Graph) ClearMaskAroundVertex(n NodeID, m Mask) {
	if !g.IsValid(n) {
		return
	}
	for c := n; ; {
		g.masks[c] &^= m
		if c = g.fSucc[c^1]; c == n {
			break
		}
	}
}

// SetMaskAroundFace sets m on every node around the face of n.
func (g *Graph) SetMaskAroundFace(n NodeID, m Mask) {
	if !g.IsValid(n) {
		return
	}
	for c := n; ; {
		g.masks[c] |= m
		if c = g.fSucc[c]; c == n {
			break
		}
	}
}

// ClearMaskAroundFace clears m on every node around the face of n.
func (g *Graph) ClearMaskAroundFace(n NodeID, m Mask) {
	if !g.IsValid(n) {
		return
	}
	for c := n; ; {
		g.masks[c] &^= m
		if c = g.fSucc[c]; c == n {
			break
		}
	}
}

// SetMaskAroundEdge sets m on n and its mate.
func (g *Graph) SetMaskAroundEdge(n NodeID, m Mask) {
	if g.IsValid(n) {
		g.masks[n] |= m
		g.masks[n^1] |= m
	}
}

// ClearMaskAroundEdge clears m on n and its mate.
func (g *Graph) ClearMaskAroundEdge(n NodeID, m Mask) {
	if g.IsValid(n) {
		g.masks[n] &^= m
		g.masks[n^1] &^= m
	}
}

// FindMaskAroundVertex returns the first node around the vertex of n, starting
// at n itself, that carries any bit of m. Returns NullNode when none does.
func (g *Graph) FindMaskAroundVertex(n NodeID, m Mask) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	for c := n; ; {
		if g.masks[c]&m != 0 {
			return c
		}
		if c = g.fSucc[c^1]; c == n {
			return NullNode
		}
	}
}

// FindMaskAroundFace returns the first node around the face of n, starting at
// n itself, that carries any bit of m. Returns NullNode when none does.
func (g *Graph) FindMaskAroundFace(n NodeID, m Mask) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	for c := n; ; {
		if g.masks[c]&m != 0 {
			return c
		}
		if c = g.fSucc[c]; c == n {
			return NullNode
		}
	}
}

// SetMaskInSet sets m on every node of the graph.
func (g *Graph) SetMaskInSet(m Mask) {
	for i := range g.masks {
		g.masks[i] |= m
	}
}

// ClearMaskInSet clears m on every node of the graph.
func (g *Graph) ClearMaskInSet(m Mask) {
	for i := range g.masks {
		g.masks[i] &^= m
	}
}

// CountMask returns the number of nodes carrying any bit of m.
func (g *Graph) CountMask(m Mask) int {
	count := 0
	for _, w := range g.masks {
		if w&m != 0 {
			count++
		}
	}

	return count
}
