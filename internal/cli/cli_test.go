package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// execute runs the root command with args and returns stdout and the log.
func execute(t *testing.T, level log.Level, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), level, args...)
}

func executeContext(t *testing.T, ctx context.Context, level log.Level, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, level)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), logs.String(), err
}

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	assert.Equal(t, appName, root.Name())

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"search", "connect", "bfs"})
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.SetLogLevel(LogDebug)
	assert.Equal(t, LogDebug, c.Logger.GetLevel())
}

func TestSearchGrid(t *testing.T) {
	out, logs, err := execute(t, LogInfo, "search", "--grid", "3x3", "--to", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "9 of 9")
	assert.Contains(t, out, "point 8    4")
	assert.Contains(t, out, "Path")
	assert.Contains(t, logs, "search finished")
	assert.NotContains(t, logs, "relax", "observer logs at debug level only")
}

func TestSearchMaxDistance(t *testing.T) {
	out, _, err := execute(t, LogInfo, "search", "--grid", "3x3", "--max", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 9")
	assert.Contains(t, out, "point 8    -")
}

func TestSearchTargets(t *testing.T) {
	out, _, err := execute(t, LogInfo,
		"search", "--grid", "3x3", "--metric", "unit", "--target", "8", "--target", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2 at 2")
	assert.Contains(t, out, formatRoute([]int{0, 1, 2}))
}

func TestSearchScenarioFile(t *testing.T) {
	path := writeScenario(t, twoSquares)
	out, logs, err := execute(t, LogDebug, "search", "--scenario", path, "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Searched from point 3")
	assert.Contains(t, out, "8 of 8")
	assert.Contains(t, logs, "seed")
	assert.Contains(t, logs, "relax")
}

func TestSearchErrors(t *testing.T) {
	cases := map[string][]string{
		"no mesh":      {"search"},
		"both meshes":  {"search", "--grid", "2x2", "--scenario", "x.toml"},
		"bad grid":     {"search", "--grid", "2by2"},
		"seed range":   {"search", "--grid", "2x2", "--seed", "9"},
		"dest range":   {"search", "--grid", "2x2", "--to", "4"},
		"bad metric":   {"search", "--grid", "2x2", "--metric", "taxi"},
		"missing file": {"search", "--scenario", "does-not-exist.toml"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, LogInfo, args...)
			assert.Error(t, err)
		})
	}
}

func TestConnect(t *testing.T) {
	path := writeScenario(t, twoSquares)
	out, logs, err := execute(t, LogInfo, "connect", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Connected 2 loops")
	assert.Contains(t, logs, "connectors=1")

	var edges, cost string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "Edges" {
			edges = fields[1]
		}
		if len(fields) == 2 && fields[0] == "Cost" {
			cost = fields[1]
		}
	}
	assert.Equal(t, "1", edges)
	assert.Equal(t, "3", cost)
}

func TestConnectNeedsTwoLoops(t *testing.T) {
	_, _, err := execute(t, LogInfo, "connect", "--grid", "3x3")
	assert.ErrorIs(t, err, ErrScenario)
}

func TestBFS(t *testing.T) {
	out, _, err := execute(t, LogInfo, "bfs", "--grid", "3x3", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "9 of 9")
	assert.Contains(t, out, "depth 0: 4")
	assert.Contains(t, out, "depth 1: 1 3 5 7")
	assert.Contains(t, out, "depth 2: 0 2 6 8")
}

func TestBFSMaxDepth(t *testing.T) {
	out, _, err := execute(t, LogInfo, "bfs", "--grid", "3x3", "--max-depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 9")
	assert.NotContains(t, out, "depth 2")
}

func TestSearchTargetsMetricNearest(t *testing.T) {
	path := writeScenario(t, `
points = [[0, 0], [10, 0], [0, 1], [1, 1]]
segments = [[0, 1], [0, 2], [2, 3]]
targets = [1, 3]
`)
	out, _, err := execute(t, LogInfo, "search", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 at 2")
	assert.Contains(t, out, formatRoute([]int{0, 2, 3}))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := map[string][]string{
		"search":  {"search", "--grid", "60x60"},
		"connect": {"connect", "--scenario", writeScenario(t, twoSquares)},
		"bfs":     {"bfs", "--grid", "60x60"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := executeContext(t, ctx, LogInfo, args...)
			require.ErrorIs(t, err, context.Canceled)
			assert.NotContains(t, out, "Reached")
			assert.NotContains(t, out, "Connectors")
		})
	}
}

type countingPolicy struct {
	shortestpath.UnitPolicy
	pops *int
}

func (p countingPolicy) Announce(message string, _, _ mtg.NodeID) {
	if message == "pop" {
		*p.pops++
	}
}

func TestContextPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pops := 0
	p := withContext(ctx, countingPolicy{pops: &pops})
	assert.True(t, p.ContinueSearch())

	an, ok := p.(shortestpath.Announcer)
	require.True(t, ok)
	an.Announce("pop", 0, mtg.NullNode)
	assert.Equal(t, 1, pops)

	cancel()
	assert.False(t, p.ContinueSearch())
	assert.ErrorIs(t, contextErr(ctx), context.Canceled)
}
