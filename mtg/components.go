package mtg

// VertexLoops returns every vertex loop of the graph, each as the slice of its
// nodes in VSucc order, starting from the lowest node id. Loops are ordered by
// that starting id.
//
// Time:   O(N).
// Memory: O(N) for visited flags and output.
func (g *Graph) VertexLoops() [][]NodeID {
	seen := make([]bool, len(g.fSucc))
	var loops [][]NodeID
	for i := range g.fSucc {
		if seen[i] {
			continue
		}
		loop := g.CollectVertexLoop(NodeID(i))
		for _, n := range loop {
			seen[n] = true
		}
		loops = append(loops, loop)
	}

	return loops
}

// FaceLoops returns every face loop of the graph in FSucc order, starting from
// the lowest node id of each face.
//
// Time:   O(N).
// Memory: O(N).
func (g *Graph) FaceLoops() [][]NodeID {
	seen := make([]bool, len(g.fSucc))
	var loops [][]NodeID
	for i := range g.fSucc {
		if seen[i] {
			continue
		}
		loop := g.CollectFaceLoop(NodeID(i))
		for _, n := range loop {
			seen[n] = true
		}
		loops = append(loops, loop)
	}

	return loops
}

// ConnectedComponents groups vertices that are joined by edges.
// Each component is a slice holding one representative node per vertex (the
// lowest node id around that vertex) in BFS discovery order. Components are
// ordered by their lowest node id.
//
// Time:   O(N).
// Memory: O(N) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]NodeID {
	seen := make([]bool, len(g.fSucc))
	var comps [][]NodeID
	for i := range g.fSucc {
		if seen[i] {
			continue
		}
		// BFS over vertices; marking a vertex marks all of its nodes.
		start := g.markVertex(NodeID(i), seen)
		queue := []NodeID{start}
		var comp []NodeID
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			comp = append(comp, v)
			for c := v; ; {
				far := c ^ 1
				if !seen[far] {
					queue = append(queue, g.markVertex(far, seen))
				}
				if c = g.fSucc[c^1]; c == v {
					break
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// markVertex flags every node around the vertex of n as seen and returns the
// lowest node id of that vertex.
func (g *Graph) markVertex(n NodeID, seen []bool) NodeID {
	low := n
	for c := n; ; {
		seen[c] = true
		if c < low {
			low = c
		}
		if c = g.fSucc[c^1]; c == n {
			break
		}
	}

	return low
}

// VertexRepresentative returns the lowest node id around the vertex of n, a
// stable name for the vertex. Returns NullNode for an invalid n.
func (g *Graph) VertexRepresentative(n NodeID) NodeID {
	if !g.IsValid(n) {
		return NullNode
	}
	low := n
	for c := g.fSucc[n^1]; c != n; c = g.fSucc[c^1] {
		if c < low {
			low = c
		}
	}

	return low
}
