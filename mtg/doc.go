// Package mtg provides a manifold topology graph (MTG): a half-edge mesh
// substrate with per-node boolean mask bits, face-loop and vertex-loop
// traversal, and a pool of grabbable masks for algorithm bookkeeping.
//
// Model:
//
//   - Every undirected edge is stored as two directed half-edges ("nodes").
//     Nodes are dense integers; the two nodes of an edge are 2k and 2k+1, so
//     Mate(n) == n^1.
//   - Each node starts at a vertex and ends at its mate's start vertex.
//   - FSucc(n) is the next node around the face to the left of n.
//   - VSucc(n) == FSucc(Mate(n)) is the next node around the start vertex of n.
//     VPred is its inverse. A vertex exists only as the cycle of its nodes.
//   - Coordinates are stored per node (the coordinates of its start vertex).
//
// Masks:
//
//	Each node carries a 32-bit mask word. The low byte holds reserved masks
//	(ExteriorMask, BoundaryMask, PrimaryEdgeMask, SectionEdgeMask). The upper
//	bits form a pool handed out one bit at a time by GrabMask and returned with
//	DropMask, so unrelated algorithms can tag nodes without colliding.
//
//	m, err := g.GrabMask()
//	if err != nil {
//	    return err // ErrMaskPoolExhausted
//	}
//	defer g.DropMask(m)
//	g.ClearMaskInSet(m)
//
// Concurrency:
//
//	A Graph is not safe for concurrent use. Algorithms that borrow a graph
//	assume exclusive, single-threaded access for their whole run, and topology
//	must not change while a search holds state about it.
//
// Complexity:
//
//   - Navigation (Mate/FSucc/VSucc/VPred), single-node mask operations: O(1).
//   - Around-vertex / around-face operations: O(loop length).
//   - Whole-graph operations (SetMaskInSet, ClearMaskInSet, ConnectedComponents): O(N).
package mtg
