// Package shortestpath runs Dijkstra-style shortest-path searches over an
// mtg.Graph half-edge mesh.
//
// Overview:
//
//   - A Context is bound to one graph and owns one mask from the graph's pool
//     (the back-edge mask) for its whole lifetime. Close clears that mask from
//     every node and returns it.
//   - SearchFromSeed runs single-source Dijkstra from the vertex of a seed node.
//     For each reached vertex it records the distance, a representative node
//     and the back-edge: the half-edge at that vertex that points one step
//     closer to the seed. Exactly one node per reached vertex carries the
//     back-edge mask.
//   - MarkShortestPathBetweenLoops starts from every face loop tagged with a
//     caller mask at once. Each loop is a union-find cluster; when fronts of two
//     different clusters meet, the connecting shortest path is painted with a
//     caller path mask and the clusters merge. Fronts that meet inside one
//     cluster are dropped, so no redundant connector is ever painted.
//   - TraceAndUnmarkEdges walks back-edge marks from a vertex toward the seed,
//     consuming a second mask as it goes, so each mark is emitted once.
//
// Search policies:
//
//	A SearchPolicy supplies the edge cost (EdgeLength), an admission test
//	(CanPush) and an early-exit poll (ContinueSearch). Policies are chosen per
//	call. UnitPolicy, XYDistancePolicy and XYZDistancePolicy cover the common
//	metrics; MaxDistancePolicy, MaskFilterPolicy and MaskHitPolicy wrap another
//	policy to prune, filter or stop the search.
//
//	Edge lengths must be non-negative. Negative lengths break Dijkstra's
//	invariant and give undefined results; they are not checked at run time.
//
// Incremental reuse:
//
//	Every search starts with ResetIncrementalSearchData, which only touches the
//	vertices and back-edges recorded by the previous search. A Context can run
//	any number of searches one after another, never concurrently.
//
// Diagnostics:
//
//	WithObserver installs a callback receiving short announcements ("seed",
//	"relax", "loop", "connect", ...). Policies implementing Announcer receive
//	the same calls. The observer never affects the result; MaskHitPolicy
//	listens to "pop" to stop at the nearest target.
//
// Complexity:
//
//   - SearchFromSeed: O((V + E) log E) time, O(V + E) space.
//   - MarkShortestPathBetweenLoops: O(E log E + connectors·pathLength).
//   - ResetIncrementalSearchData: O(nodes around previously reached vertices).
package shortestpath
