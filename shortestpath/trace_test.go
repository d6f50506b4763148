package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/builder"
	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

func TestPathToSeed_SumsToDistance(t *testing.T) {
	m := hillyGrid(t, 5, 5)
	g := m.Graph
	ctx := newContext(t, g)
	policy := shortestpath.XYZDistancePolicy{}
	seed := m.VertexNode[3]
	ctx.SearchFromSeed(seed, policy)

	for v := range m.Points {
		path, err := ctx.PathToSeed(m.VertexNode[v])
		require.NoError(t, err)

		cur := g.VertexRepresentative(seed)
		total := 0.0
		for _, n := range path {
			require.Equal(t, cur, g.VertexRepresentative(n), "path must be contiguous")
			total += policy.EdgeLength(g, g.Mate(n))
			cur = g.VertexRepresentative(g.Mate(n))
		}
		assert.Equal(t, g.VertexRepresentative(m.VertexNode[v]), cur)

		d, _ := ctx.DistanceToVertex(m.VertexNode[v])
		assert.InDelta(t, d, total, 1e-9)
	}

	path, err := ctx.PathToSeed(seed)
	require.NoError(t, err)
	assert.Empty(t, path)
}

// TestTraceAndUnmarkEdges_ConsumesOnce traces back-edges with a scratch clear
// mask: the first trace yields the path, the second yields nothing.
func TestTraceAndUnmarkEdges_ConsumesOnce(t *testing.T) {
	m := buildMesh(t, nil, builder.Grid(4, 5))
	g := m.Graph
	ctx := newContext(t, g)
	ctx.SearchFromSeed(m.VertexNode[0], shortestpath.UnitPolicy{})
	target := m.VertexNode[19]

	scratch, err := g.GrabMask()
	require.NoError(t, err)
	defer func() { g.ClearMaskInSet(scratch); _ = g.DropMask(scratch) }()
	g.SetMaskInSet(scratch)

	backEdges := g.CountMask(ctx.BackEdgeMask())
	reversed, forward := ctx.TraceAndUnmarkEdges(target, ctx.BackEdgeMask(), scratch, true)
	require.Len(t, reversed, 7) // 3 + 4 hops
	require.Len(t, forward, 7)

	want, err := ctx.PathToSeed(target)
	require.NoError(t, err)
	assert.Equal(t, want, forward)
	assert.Equal(t, g.VertexRepresentative(target), g.VertexRepresentative(reversed[0]))
	for i, n := range reversed {
		assert.Equal(t, g.Mate(n), forward[len(forward)-1-i])
		assert.False(t, g.HasMaskAt(n, scratch))
	}
	assert.Equal(t, backEdges, g.CountMask(ctx.BackEdgeMask()), "path mask untouched")

	again, againFwd := ctx.TraceAndUnmarkEdges(target, ctx.BackEdgeMask(), scratch, true)
	assert.Empty(t, again)
	assert.Empty(t, againFwd)
}

func TestTraceAndUnmarkEdges_NoClearMask(t *testing.T) {
	m := buildMesh(t, nil, builder.Grid(1, 4))
	g := m.Graph
	ctx := newContext(t, g)
	ctx.SearchFromSeed(m.VertexNode[0], nil)

	first, fwd := ctx.TraceAndUnmarkEdges(m.VertexNode[3], ctx.BackEdgeMask(), mtg.NullMask, false)
	second, _ := ctx.TraceAndUnmarkEdges(m.VertexNode[3], ctx.BackEdgeMask(), mtg.NullMask, false)
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, []mtg.NodeID{first[2], first[1], first[0]}, fwd)
}

func TestTraceAndUnmarkEdges_Invalid(t *testing.T) {
	m := buildMesh(t, nil, builder.Grid(1, 2))
	ctx := newContext(t, m.Graph)
	ctx.SearchFromSeed(m.VertexNode[0], nil)

	r, f := ctx.TraceAndUnmarkEdges(mtg.NullNode, ctx.BackEdgeMask(), mtg.NullMask, true)
	assert.Nil(t, r)
	assert.Nil(t, f)
	r, f = ctx.TraceAndUnmarkEdges(m.VertexNode[1], mtg.NullMask, mtg.NullMask, true)
	assert.Nil(t, r)
	assert.Nil(t, f)
	r, _ = ctx.TraceAndUnmarkEdges(m.VertexNode[0], ctx.BackEdgeMask(), mtg.NullMask, true)
	assert.Empty(t, r, "the seed vertex has no back-edge")
}
