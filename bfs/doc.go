// Package bfs provides breadth-first search over an mtg.Graph half-edge mesh,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from the vertex
//     of a start node.
//   - Vertices are named by their representative node: the lowest node id
//     around the vertex (mtg.Graph.VertexRepresentative).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start
//   - Parent: vertex → its predecessor in the BFS tree
//   - Via: vertex → the half-edge that reached it
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual outbound half-edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	Hop distances on a mesh in O(V + E), a reference for unit-cost
//	shortest-path searches, and a quick reachability probe.
//
// Determinism
//
//	Neighbors are enqueued in vertex-loop (VSucc) order starting at the
//	representative node, so the visit sequence is fully reproducible for a
//	given mesh.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E·deg) (representative lookup walks the neighbor's vertex loop)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(n mtg.NodeID) bool { return !g.HasMaskAt(n, blocked) }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeInvalid     if the start node is not in the graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
