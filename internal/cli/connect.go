package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// connectCommand creates the connect command, which joins the scenario's
// loops with shortest connectors.
func (c *CLI) connectCommand() *cobra.Command {
	var mesh meshFlags
	var metric string

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Join boundary loops with shortest connectors",
		Long: `Grow shortest-path fronts from every loop of a scenario and mark one
connector per merge, so that all loops end up joined by a tree of paths.`,
		Example: `  # Connect the holes of a drawing
  meshpath connect --scenario holes.toml --metric xy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mesh.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("metric") {
				s.Metric = metric
			}
			if err := s.Validate(); err != nil {
				return err
			}
			return c.runConnect(cmd, s)
		},
	}

	mesh.register(cmd)
	cmd.Flags().StringVar(&metric, "metric", MetricXY, "edge length: unit, xy or xyz")

	return cmd
}

func (c *CLI) runConnect(cmd *cobra.Command, s *Scenario) error {
	if len(s.Loops) < 2 {
		return fmt.Errorf("%w: connect needs at least two loops, got %d", ErrScenario, len(s.Loops))
	}
	m, err := s.Build()
	if err != nil {
		return err
	}
	g := m.Graph

	loopMask, err := g.GrabMask()
	if err != nil {
		return fmt.Errorf("grab loop mask: %w", err)
	}
	defer g.DropMask(loopMask)
	pathMask, err := g.GrabMask()
	if err != nil {
		return fmt.Errorf("grab path mask: %w", err)
	}
	defer g.DropMask(pathMask)
	g.ClearMaskInSet(loopMask | pathMask)
	defer g.ClearMaskInSet(loopMask | pathMask)

	if err := s.MarkLoops(m, loopMask); err != nil {
		return err
	}

	ctx, err := shortestpath.NewContext(g,
		shortestpath.WithObserver(c.observer()),
		shortestpath.WithCapacity(g.NumNodes()),
	)
	if err != nil {
		return err
	}
	defer ctx.Close()

	policy := s.Policy()
	connectors := ctx.MarkShortestPathBetweenLoops(loopMask, pathMask, withContext(cmd.Context(), policy))
	if err := contextErr(cmd.Context()); err != nil {
		return err
	}
	c.Logger.Info("connect finished", "loops", len(s.Loops), "connectors", connectors)

	edges, cost := paintedSegments(g, m.VertexOf, pathMask, policy)

	w := cmd.OutOrStdout()
	printSuccess(w, "Connected %d loops", len(s.Loops))
	printKeyValue(w, "Connectors", fmt.Sprintf("%d", connectors))
	printKeyValue(w, "Edges", fmt.Sprintf("%d", len(edges)))
	printKeyValue(w, "Cost", formatDistance(cost))
	for _, e := range edges {
		printDetail(w, "%d %s %d", e[0], iconArrow, e[1])
	}

	return nil
}

// paintedSegments lists the point pairs joined by painted half-edges, lower
// index first, and sums their lengths under policy.
func paintedSegments(g *mtg.Graph, vertexOf func(mtg.NodeID) int, mask mtg.Mask, policy shortestpath.SearchPolicy) ([][2]int, float64) {
	var edges [][2]int
	cost := 0.0
	for i := 0; i < g.NumNodes(); i += 2 {
		n := mtg.NodeID(i)
		if !g.HasMaskAt(n, mask) && !g.HasMaskAt(g.Mate(n), mask) {
			continue
		}
		a, b := vertexOf(n), vertexOf(g.Mate(n))
		if a > b {
			a, b = b, a
		}
		edges = append(edges, [2]int{a, b})
		cost += policy.EdgeLength(g, n)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return edges, cost
}
