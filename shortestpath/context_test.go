package shortestpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/builder"
	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

func TestNewContext_NilGraph(t *testing.T) {
	_, err := shortestpath.NewContext(nil)
	assert.ErrorIs(t, err, shortestpath.ErrNilGraph)
}

func TestNewContext_MaskPoolExhausted(t *testing.T) {
	g := mtg.NewGraph()
	g.CreateEdge()
	for g.FreeMaskCount() > 0 {
		_, err := g.GrabMask()
		require.NoError(t, err)
	}
	_, err := shortestpath.NewContext(g)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mtg.ErrMaskPoolExhausted))
}

func TestContext_CloseReturnsMask(t *testing.T) {
	m := buildMesh(t, nil, builder.Grid(4, 4))
	g := m.Graph
	free := g.FreeMaskCount()

	ctx, err := shortestpath.NewContext(g)
	require.NoError(t, err)
	assert.Equal(t, free-1, g.FreeMaskCount())
	assert.Same(t, g, ctx.Graph())

	reached := ctx.SearchFromSeed(m.VertexNode[0], shortestpath.UnitPolicy{})
	require.Equal(t, 16, reached)
	assert.Equal(t, reached-1, g.CountMask(ctx.BackEdgeMask()))

	mask := ctx.BackEdgeMask()
	require.NoError(t, ctx.Close())
	assert.Zero(t, g.CountMask(mask), "no stray back-edge bits")
	assert.Equal(t, free, g.FreeMaskCount())
	assert.NoError(t, ctx.Close(), "second Close is a no-op")

	assert.Zero(t, ctx.SearchFromSeed(m.VertexNode[0], nil))
	assert.Zero(t, ctx.MarkShortestPathBetweenLoops(mtg.BoundaryMask, mtg.SectionEdgeMask, nil))
	_, err = ctx.PathToSeed(m.VertexNode[0])
	assert.ErrorIs(t, err, shortestpath.ErrContextClosed)
}

func TestContext_TwoContextsShareGraph(t *testing.T) {
	m := buildMesh(t, nil, builder.Grid(3, 3))
	a := newContext(t, m.Graph)
	b := newContext(t, m.Graph)
	require.NotEqual(t, a.BackEdgeMask(), b.BackEdgeMask())

	a.SearchFromSeed(m.VertexNode[0], nil)
	b.SearchFromSeed(m.VertexNode[8], nil)
	assert.Equal(t, 8, m.Graph.CountMask(a.BackEdgeMask()))
	assert.Equal(t, 8, m.Graph.CountMask(b.BackEdgeMask()))
}

func TestContext_Queries(t *testing.T) {
	m := buildMesh(t, nil, builder.Grid(1, 3))
	ctx := newContext(t, m.Graph)
	ctx.SearchFromSeed(m.VertexNode[0], nil)

	assert.Equal(t, 3, ctx.NumVertex())
	rec, ok := ctx.VertexData(0)
	require.True(t, ok)
	assert.Equal(t, m.VertexNode[0], rec.NodeA)
	assert.Equal(t, mtg.NullNode, rec.NodeB)
	assert.Equal(t, 0.0, rec.Distance)
	assert.Equal(t, -1, rec.Cluster)

	_, ok = ctx.VertexData(3)
	assert.False(t, ok)
	assert.Equal(t, -1, ctx.VertexIndex(mtg.NullNode))

	d, ok := ctx.DistanceToVertex(mtg.NodeID(99))
	assert.False(t, ok)
	assert.Equal(t, shortestpath.UnreachedDistance, d)
}

func TestWithCapacity_Panics(t *testing.T) {
	assert.Panics(t, func() { shortestpath.WithCapacity(-1) })
	assert.NotPanics(t, func() { shortestpath.WithCapacity(16) })
}
