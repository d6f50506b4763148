package mtg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/mtg"
)

// buildTriangle assembles a counter-clockwise triangle A(0,0) B(1,0) C(0,1)
// by hand:
//
//	n0: A→B  n1: B→A
//	n2: B→C  n3: C→B
//	n4: C→A  n5: A→C
//
// The inner face is n0→n2→n4, the outer face n1→n5→n3.
func buildTriangle(t *testing.T) *mtg.Graph {
	t.Helper()
	g := mtg.NewGraph(mtg.WithCapacity(6))
	for i := 0; i < 3; i++ {
		g.CreateEdge()
	}
	g.VertexTwist(0, 5) // A
	g.VertexTwist(1, 2) // B
	g.VertexTwist(3, 4) // C
	g.SetVertexCoordinates(0, mtg.Point3{X: 0, Y: 0})
	g.SetVertexCoordinates(1, mtg.Point3{X: 1, Y: 0})
	g.SetVertexCoordinates(3, mtg.Point3{X: 0, Y: 1})
	require.Equal(t, 6, g.NumNodes())

	return g
}

func TestCreateEdge_Isolated(t *testing.T) {
	g := mtg.NewGraph()
	a, b := g.CreateEdge()
	assert.Equal(t, mtg.NodeID(0), a)
	assert.Equal(t, mtg.NodeID(1), b)
	assert.Equal(t, b, g.Mate(a))
	assert.Equal(t, a, g.Mate(b))
	assert.Equal(t, b, g.FSucc(a))
	assert.Equal(t, a, g.FPred(b))
	assert.Equal(t, a, g.VSucc(a), "isolated edge end is a one-node vertex")
	assert.Equal(t, a, g.VPred(a))
	assert.True(t, g.HasMaskAt(a, mtg.PrimaryEdgeMask))
	assert.Equal(t, 1, g.NumEdges())
}

func TestNavigation_InvalidNode(t *testing.T) {
	g := mtg.NewGraph()
	g.CreateEdge()
	for _, n := range []mtg.NodeID{mtg.NullNode, 2, 99} {
		assert.False(t, g.IsValid(n))
		assert.Equal(t, mtg.NullNode, g.Mate(n))
		assert.Equal(t, mtg.NullNode, g.FSucc(n))
		assert.Equal(t, mtg.NullNode, g.FPred(n))
		assert.Equal(t, mtg.NullNode, g.VSucc(n))
		assert.Equal(t, mtg.NullNode, g.VPred(n))
		assert.Nil(t, g.CollectVertexLoop(n))
		assert.Nil(t, g.CollectFaceLoop(n))
		assert.Zero(t, g.CountVertexLoop(n))
	}
}

func TestTriangle_Loops(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, []mtg.NodeID{0, 2, 4}, g.CollectFaceLoop(0))
	assert.Equal(t, []mtg.NodeID{1, 5, 3}, g.CollectFaceLoop(1))
	assert.Equal(t, []mtg.NodeID{0, 5}, g.CollectVertexLoop(0))
	assert.Equal(t, 2, g.CountVertexLoop(2))
	assert.Equal(t, 3, g.CountFaceLoop(3))

	// VSucc/VPred and FSucc/FPred are inverse permutations.
	for n := mtg.NodeID(0); int(n) < g.NumNodes(); n++ {
		assert.Equal(t, n, g.VPred(g.VSucc(n)))
		assert.Equal(t, n, g.FPred(g.FSucc(n)))
		assert.Equal(t, g.FSucc(g.Mate(n)), g.VSucc(n))
	}
}

func TestVertexTwist_SplitRestores(t *testing.T) {
	g := buildTriangle(t)
	// Twisting two nodes of the same vertex splits it; twisting again merges.
	g.VertexTwist(0, 5)
	assert.Equal(t, 1, g.CountVertexLoop(0))
	assert.Equal(t, 1, g.CountVertexLoop(5))
	g.VertexTwist(0, 5)
	assert.Equal(t, []mtg.NodeID{0, 5}, g.CollectVertexLoop(0))
}

func TestCoordinates(t *testing.T) {
	g := buildTriangle(t)
	assert.Equal(t, mtg.Point3{X: 0, Y: 1}, g.Coordinates(4))
	assert.Equal(t, mtg.Point3{X: 0, Y: 1}, g.Coordinates(3))
	assert.Equal(t, mtg.Point3{X: 1}, g.EdgeVector(0))
	assert.InDelta(t, 1.4142135, g.EdgeVector(2).Length(), 1e-6)
	assert.Equal(t, mtg.Point3{}, g.Coordinates(mtg.NullNode))

	p := mtg.Point3{X: 3, Y: 4, Z: 12}
	assert.InDelta(t, 13.0, p.Length(), 1e-12)
	assert.InDelta(t, 5.0, p.LengthXY(), 1e-12)
	assert.InDelta(t, 13.0, mtg.Point3{}.DistanceTo(p), 1e-12)
	assert.InDelta(t, 5.0, mtg.Point3{}.DistanceXY(p), 1e-12)
}

func TestComponents(t *testing.T) {
	g := buildTriangle(t)
	// A detached edge forms a second component.
	a, _ := g.CreateEdge()

	assert.Len(t, g.VertexLoops(), 5)
	assert.Len(t, g.FaceLoops(), 3)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []mtg.NodeID{0, 1, 3}, comps[0])
	assert.Equal(t, []mtg.NodeID{a, a + 1}, comps[1])

	assert.Equal(t, mtg.NodeID(0), g.VertexRepresentative(5))
	assert.Equal(t, mtg.NodeID(3), g.VertexRepresentative(4))
	assert.Equal(t, mtg.NullNode, g.VertexRepresentative(mtg.NullNode))
}
