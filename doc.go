// Package meshpath is a shortest-path toolkit for planar meshes stored as
// half-edge mesh topology graphs.
//
// What is inside?
//
//	A small, dependency-light set of packages that fit together:
//		• mtg:          the half-edge graph, node masks, vertex and face loops
//		• builder:      deterministic planar layouts embedded into an mtg.Graph
//		• shortestpath: Dijkstra from a seed, connectors between loops, tracing
//		• bfs:          hop layering over vertices
//		• pqueue, unionfind: the queue and cluster sets behind the search
//
// Under the hood:
//
//	mtg/          — nodes, mates, FSucc/VSucc, 24 grabbable mask bits
//	builder/      — Grid, Ring, Wheel, Path, Segments constructors
//	shortestpath/ — Context, SearchPolicy, MarkShortestPathBetweenLoops
//	bfs/          — breadth-first traversal with hooks
//	cmd/meshpath  — command-line front end (search, connect, bfs)
//
// Quick ASCII example:
//
//	    3───2
//	    │   │
//	    0───1
//
//	is one vertex loop per corner and two face loops: the square, traced
//	0→1→2→3, and the outer face, traced 0→3→2→1.
//
//	go get github.com/katalvlaran/meshpath
package meshpath
