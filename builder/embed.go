// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// embed.go - turns a Layout into a half-edge mesh.
//
// Model:
//   • Each segment becomes one mtg edge; its first node runs from the
//     segment's first point to its second.
//   • Outbound nodes of a point are ordered by decreasing XY angle and spliced
//     into one vertex loop in that order, so VSucc turns clockwise and every
//     face is traced counter-clockwise with the face on its left.

package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/meshpath/mtg"
)

const methodEmbed = "embed"

func embed(l *Layout) (*Mesh, error) {
	numPoints := len(l.Points)

	// 1) Validate segments and reject duplicates in either direction.
	seen := make(map[[2]int]struct{}, len(l.Segments))
	for i, s := range l.Segments {
		a, b := s[0], s[1]
		if a < 0 || a >= numPoints || b < 0 || b >= numPoints {
			return nil, fmt.Errorf("%s: segment %d (%d→%d) with %d points: %w",
				methodEmbed, i, a, b, numPoints, ErrVertexIndex)
		}
		if a == b || l.Points[a].DistanceXY(l.Points[b]) == 0 {
			return nil, fmt.Errorf("%s: segment %d (%d→%d) has zero length: %w", methodEmbed, i, a, b, ErrDegenerateEdge)
		}
		key := [2]int{min(a, b), max(a, b)}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%s: segment %d (%d→%d) repeats an earlier one: %w", methodEmbed, i, a, b, ErrDegenerateEdge)
		}
		seen[key] = struct{}{}
	}

	// 2) Create one isolated edge per segment.
	g := mtg.NewGraph(mtg.WithCapacity(2 * len(l.Segments)))
	mesh := &Mesh{
		Graph:      g,
		Points:     append([]mtg.Point3(nil), l.Points...),
		Segments:   append([][2]int(nil), l.Segments...),
		VertexNode: make([]mtg.NodeID, numPoints),
		EdgeNode:   make([]mtg.NodeID, len(l.Segments)),
		nodeVertex: make([]int, 0, 2*len(l.Segments)),
	}
	outbound := make([][]mtg.NodeID, numPoints)
	for i, s := range l.Segments {
		fwd, rev := g.CreateEdge()
		g.SetCoordinates(fwd, l.Points[s[0]])
		g.SetCoordinates(rev, l.Points[s[1]])
		mesh.EdgeNode[i] = fwd
		mesh.nodeVertex = append(mesh.nodeVertex, s[0], s[1])
		outbound[s[0]] = append(outbound[s[0]], fwd)
		outbound[s[1]] = append(outbound[s[1]], rev)
	}

	// 3) Splice each point's outbound nodes clockwise.
	for v, outs := range outbound {
		if len(outs) == 0 {
			mesh.VertexNode[v] = mtg.NullNode
			continue
		}
		angle := func(n mtg.NodeID) float64 {
			d := g.EdgeVector(n)
			return math.Atan2(d.Y, d.X)
		}
		sort.SliceStable(outs, func(i, j int) bool { return angle(outs[i]) > angle(outs[j]) })
		for k := 1; k < len(outs); k++ {
			if angle(outs[k-1]) == angle(outs[k]) {
				return nil, fmt.Errorf("%s: overlapping segments at point %d: %w", methodEmbed, v, ErrDegenerateEdge)
			}
			g.VertexTwist(outs[k-1], outs[k])
		}
		mesh.VertexNode[v] = outs[0]
	}

	return mesh, nil
}
