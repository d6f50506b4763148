package mtg

// NumNodes returns the number of half-edges in the graph.
func (g *Graph) NumNodes() int { return len(g.fSucc) }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return len(g.fSucc) / 2 }

// IsValid reports whether n names a node of g.
func (g *Graph) IsValid(n NodeID) bool {
	return n >= 0 && int(n) < len(g.fSucc)
}

// CreateEdge appends an isolated edge and returns its two half-edges.
//
// The new edge forms its own face loop (n -> mate -> n) and each endpoint is a
// single-node vertex loop. Use VertexTwist to attach it to existing vertices.
// Both nodes get the PrimaryEdgeMask.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateEdge() (NodeID, NodeID) {
	n := NodeID(len(g.fSucc))
	m := n + 1
	g.fSucc = append(g.fSucc, m, n)
	g.fPred = append(g.fPred, m, n)
	g.masks = append(g.masks, PrimaryEdgeMask, PrimaryEdgeMask)
	g.coords = append(g.coords, Point3{}, Point3{})

	return n, m
}

// VertexTwist exchanges the vertex successors of a and b.
//
// If a and b are at different vertices the two vertex loops are merged, with b
// inserted immediately after a. If they share a vertex the loop is split in
// two. Face loops are updated consistently because VSucc is derived from
// FSucc(Mate(.)).
//
// Complexity: O(1).
func (g *Graph) VertexTwist(a, b NodeID) {
	if !g.IsValid(a) || !g.IsValid(b) || a == b {
		return
	}
	ma, mb := a^1, b^1
	sa, sb := g.fSucc[ma], g.fSucc[mb]
	g.fSucc[ma], g.fPred[sb] = sb, ma
	g.fSucc[mb], g.fPred[sa] = sa, mb
}

// Mate returns the opposite half-edge of n, or NullNode for an invalid n.
func (g *Graph) Mate(n NodeID) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	return n ^ 1
}

// FSucc returns the successor of n around its face.
func (g *Graph) FSucc(n NodeID) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	return g.fSucc[n]
}

// FPred returns the predecessor of n around its face.
func (g *Graph) FPred(n NodeID) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	return g.fPred[n]
}

// VSucc returns the successor of n around its start vertex.
func (g *Graph) VSucc(n NodeID) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	return g.fSucc[n^1]
}

// VPred returns the predecessor of n around its start vertex.
func (g *Graph) VPred(n NodeID) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	return g.fPred[n] ^ 1
}

// CollectVertexLoop returns the nodes around the vertex of n, starting at n
// and following VSucc. Returns nil for an invalid n.
func (g *Graph) CollectVertexLoop(n NodeID) []NodeID {
	if !g.IsValid(n) {
		return nil
	}
	var loop []NodeID
	for m := n; ; {
		loop = append(loop, m)
		if m = g.fSucc[m^1]; m == n {
			break
		}
	}

	return loop
}

// CollectFaceLoop returns the nodes around the face of n, starting at n and
// following FSucc. Returns nil for an invalid n.
func (g *Graph) CollectFaceLoop(n NodeID) []NodeID {
	if !g.IsValid(n) {
		return nil
	}
	var loop []NodeID
	for m := n; ; {
		loop = append(loop, m)
		if m = g.fSucc[m]; m == n {
			break
		}
	}

	return loop
}

// CountVertexLoop returns the number of nodes around the vertex of n (its degree).
func (g *Graph) CountVertexLoop(n NodeID) int {
	if !g.IsValid(n) {
		return 0
	}
	count := 0
	for m := n; ; {
		count++
		if m = g.fSucc[m^1]; m == n {
			break
		}
	}

	return count
}

// CountFaceLoop returns the number of nodes around the face of n.
func (g *Graph) CountFaceLoop(n NodeID) int {
	if !g.IsValid(n) {
		return 0
	}
	count := 0
	for m := n; ; {
		count++
		if m = g.fSucc[m]; m == n {
			break
		}
	}

	return count
}

// SetCoordinates stores p as the start-vertex coordinates of the single node n.
func (g *Graph) SetCoordinates(n NodeID, p Point3) {
	if g.IsValid(n) {
		g.coords[n] = p
	}
}

// SetVertexCoordinates stores p on every node around the vertex of n.
func (g *Graph) SetVertexCoordinates(n NodeID, p Point3) {
	if !g.IsValid(n) {
		return
	}
	for m := n; ; {
		g.coords[m] = p
		if m = g.fSucc[m^1]; m == n {
			break
		}
	}
}

// Coordinates returns the start-vertex coordinates of n (zero for an invalid n).
func (g *Graph) Coordinates(n NodeID) Point3 {
	if !g.IsValid(n) {
		return Point3{}
	}
	return g.coords[n]
}

// EdgeVector returns the vector from the start of n to the start of its mate.
func (g *Graph) EdgeVector(n NodeID) Point3 {
	if !g.IsValid(n) {
		return Point3{}
	}
	return g.coords[n^1].Sub(g.coords[n])
}
