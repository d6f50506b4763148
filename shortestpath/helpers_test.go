package shortestpath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/builder"
	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// buildMesh runs builder.BuildMesh and fails the test on error.
func buildMesh(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *builder.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(bopts, cons...)
	require.NoError(t, err)
	return m
}

// newContext binds a Context to g and closes it at test end.
func newContext(t testing.TB, g *mtg.Graph, opts ...shortestpath.Option) *shortestpath.Context {
	t.Helper()
	ctx, err := shortestpath.NewContext(g, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

// hillyGrid is a grid with diagonals over a bumpy surface, so XYZ lengths vary.
func hillyGrid(t testing.TB, rows, cols int) *builder.Mesh {
	return buildMesh(t,
		[]builder.BuilderOption{
			builder.WithDiagonals(),
			builder.WithHeightFn(func(x, y float64) float64 {
				return math.Sin(x*1.3) + math.Cos(y*0.7)
			}),
		},
		builder.Grid(rows, cols),
	)
}

// floydWarshall returns all-pairs XYZ distances between mesh points;
// unreachable pairs hold shortestpath.UnreachedDistance.
func floydWarshall(m *builder.Mesh) [][]float64 {
	n := len(m.Points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			d[i][j] = math.Inf(1)
		}
		d[i][i] = 0
	}
	for _, s := range m.Segments {
		w := m.Points[s[0]].DistanceTo(m.Points[s[1]])
		d[s[0]][s[1]] = math.Min(d[s[0]][s[1]], w)
		d[s[1]][s[0]] = math.Min(d[s[1]][s[0]], w)
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	for i := range d {
		for j := range d[i] {
			if math.IsInf(d[i][j], 1) {
				d[i][j] = shortestpath.UnreachedDistance
			}
		}
	}
	return d
}

// distances returns the recorded distance of every mesh point.
func distances(ctx *shortestpath.Context, m *builder.Mesh) []float64 {
	out := make([]float64, len(m.Points))
	for v := range m.Points {
		out[v], _ = ctx.DistanceToVertex(m.VertexNode[v])
	}
	return out
}

// masked returns the nodes carrying mask, in id order.
func masked(g *mtg.Graph, mask mtg.Mask) []mtg.NodeID {
	var out []mtg.NodeID
	for i := 0; i < g.NumNodes(); i++ {
		if g.HasMaskAt(mtg.NodeID(i), mask) {
			out = append(out, mtg.NodeID(i))
		}
	}
	return out
}

// recorder collects announcements from the observer or a policy.
type recorder struct {
	counts map[string]int
}

func newRecorder() *recorder { return &recorder{counts: map[string]int{}} }

func (r *recorder) observe(message string, _, _ mtg.NodeID) { r.counts[message]++ }

// announcingPolicy is a UnitPolicy that implements shortestpath.Announcer.
type announcingPolicy struct {
	shortestpath.UnitPolicy
	rec *recorder
}

func (p announcingPolicy) Announce(message string, a, b mtg.NodeID) { p.rec.observe(message, a, b) }

// stopPolicy never continues.
type stopPolicy struct{ shortestpath.BasePolicy }

func (stopPolicy) ContinueSearch() bool { return false }

// vetoPolicy never admits a push.
type vetoPolicy struct{ shortestpath.BasePolicy }

func (vetoPolicy) CanPush(*mtg.Graph, mtg.NodeID, float64) bool { return false }
