// Package pqueue provides the min-distance priority queue used by the mesh
// shortest-path searches.
//
// Entries are (node, distance) pairs ordered by increasing distance. The queue
// uses the "lazy decrease-key" strategy: a better distance for a node is
// inserted as a new entry and the older, larger entry stays in the heap. The
// caller detects such stale entries when they are popped (by comparing with
// its own current record) and discards them. Len therefore counts entries,
// not live nodes.
//
// Entries with equal distance pop in insertion order (FIFO), which makes the
// searches built on top deterministic.
//
// Complexity:
//
//   - Push, Pop: O(log N) where N is the number of entries, live or stale.
//   - Peek, Len: O(1).
//   - Space: O(N).
package pqueue
