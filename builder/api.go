// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in
//     order against a shared Layout, then embeds the layout once.
//   - Constructors only append points and segments; they never touch mtg.
//   - Determinism: same inputs/options and constructor order ⇒ identical
//     meshes, node ids included.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshpath/mtg"
)

// Constructor appends points and segments to a Layout using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Address their own points relative to l.NumPoints() at entry.
//   - Preserve determinism for the same config and call order.
type Constructor func(l *Layout, cfg builderConfig) error

// Layout is the planar drawing collected from constructors before embedding.
type Layout struct {
	Points   []mtg.Point3
	Segments [][2]int
}

// NumPoints returns the number of points added so far.
func (l *Layout) NumPoints() int { return len(l.Points) }

// AddPoint appends p and returns its index.
func (l *Layout) AddPoint(p mtg.Point3) int {
	l.Points = append(l.Points, p)
	return len(l.Points) - 1
}

// AddSegment appends the segment a→b. Indices are validated at embedding.
func (l *Layout) AddSegment(a, b int) {
	l.Segments = append(l.Segments, [2]int{a, b})
}

// Mesh is an embedded layout.
//
// VertexNode[v] is one outbound node of point v (mtg.NullNode for a point
// without segments). EdgeNode[i] is the node running along segment i from its
// first to its second point, so its face lies to the left of the segment.
type Mesh struct {
	Graph      *mtg.Graph
	Points     []mtg.Point3
	Segments   [][2]int
	VertexNode []mtg.NodeID
	EdgeNode   []mtg.NodeID

	nodeVertex []int
}

// VertexOf returns the point index at the origin of node, or -1.
func (m *Mesh) VertexOf(node mtg.NodeID) int {
	if node < 0 || int(node) >= len(m.nodeVertex) {
		return -1
	}
	return m.nodeVertex[node]
}

// NodeBetween returns the node leaving point a toward point b, or mtg.NullNode
// when no segment joins them.
func (m *Mesh) NodeBetween(a, b int) mtg.NodeID {
	if a < 0 || a >= len(m.VertexNode) || m.VertexNode[a] == mtg.NullNode {
		return mtg.NullNode
	}
	start := m.VertexNode[a]
	for n := start; ; {
		if m.VertexOf(m.Graph.Mate(n)) == b {
			return n
		}
		if n = m.Graph.VSucc(n); n == start {
			return mtg.NullNode
		}
	}
}

// BuildMesh resolves the builder configuration from bopts, applies all
// constructors in order and embeds the resulting layout.
// Any constructor error is wrapped with the context "BuildMesh: %w".
//
// Errors:
//   - ErrConstructFailed: nil constructor.
//   - ErrTooFewVertices, ErrInvalidParameter: constructor validation.
//   - ErrVertexIndex, ErrDegenerateEdge: the layout cannot be embedded.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*Mesh, error) {
	cfg := newBuilderConfig(bopts...)
	layout := &Layout{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(layout, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}

	mesh, err := embed(layout)
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %w", err)
	}

	return mesh, nil
}
