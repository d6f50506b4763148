package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshpath/builder"
	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// meshFlags are the flags shared by every command that needs a mesh.
type meshFlags struct {
	scenario  string
	grid      string
	diagonals bool
}

func (f *meshFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "scenario TOML file")
	cmd.Flags().StringVar(&f.grid, "grid", "", "generate a RxC grid instead of reading a scenario")
	cmd.Flags().BoolVar(&f.diagonals, "diagonals", false, "add one diagonal per grid cell")
}

// load returns the scenario named by the flags.
func (f *meshFlags) load() (*Scenario, error) {
	switch {
	case f.scenario != "" && f.grid != "":
		return nil, fmt.Errorf("--scenario and --grid are exclusive")
	case f.scenario != "":
		return LoadScenario(f.scenario)
	case f.grid != "":
		return GridScenario(f.grid, f.diagonals)
	default:
		return nil, fmt.Errorf("one of --scenario or --grid is required")
	}
}

// searchCommand creates the search command for single-seed shortest paths.
func (c *CLI) searchCommand() *cobra.Command {
	var mesh meshFlags
	var seed, to int
	var metric string
	var maxDist float64
	var targets []int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Shortest distances from one seed point",
		Long: `Run Dijkstra from a seed point and print the distance to every point.

Flags override the values of a scenario file.`,
		Example: `  # Planar distances on a 4x5 grid
  meshpath search --grid 4x5 --seed 0

  # Stop at the first of several targets, hop count metric
  meshpath search --scenario mesh.toml --metric unit --target 7 --target 9

  # Path to one point
  meshpath search --grid 3x3 --to 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mesh.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = seed
			}
			if cmd.Flags().Changed("metric") {
				s.Metric = metric
			}
			if cmd.Flags().Changed("max") {
				s.Max = maxDist
			}
			if cmd.Flags().Changed("target") {
				s.Targets = targets
			}
			if err := s.Validate(); err != nil {
				return err
			}
			if cmd.Flags().Changed("to") {
				if err := s.checkPoint("destination", to, s.NumPoints()); err != nil {
					return err
				}
			} else {
				to = -1
			}

			m, err := s.Build()
			if err != nil {
				return err
			}

			return c.runSearch(cmd, s, m, to)
		},
	}

	mesh.register(cmd)
	cmd.Flags().IntVar(&seed, "seed", 0, "seed point index")
	cmd.Flags().IntVar(&to, "to", 0, "print the path to this point")
	cmd.Flags().StringVar(&metric, "metric", MetricXY, "edge length: unit, xy or xyz")
	cmd.Flags().Float64Var(&maxDist, "max", 0, "stop expanding beyond this distance (0 = no limit)")
	cmd.Flags().IntSliceVar(&targets, "target", nil, "stop at the nearest of these points")

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, s *Scenario, m *builder.Mesh, to int) error {
	g := m.Graph
	seedNode := m.VertexNode[s.Seed]
	if seedNode == mtg.NullNode {
		return fmt.Errorf("%w: seed %d has no segments", ErrScenario, s.Seed)
	}

	ctx, err := shortestpath.NewContext(g,
		shortestpath.WithObserver(c.observer()),
		shortestpath.WithCapacity(len(m.Points)),
	)
	if err != nil {
		return err
	}
	defer ctx.Close()

	policy := s.Policy()
	var hit *shortestpath.MaskHitPolicy
	if len(s.Targets) > 0 {
		targetMask, err := g.GrabMask()
		if err != nil {
			return fmt.Errorf("grab target mask: %w", err)
		}
		defer g.DropMask(targetMask)
		defer g.ClearMaskInSet(targetMask)
		for _, t := range s.Targets {
			if n := m.VertexNode[t]; n != mtg.NullNode {
				g.SetMaskAroundVertex(n, targetMask)
			}
		}
		hit = shortestpath.NewMaskHitPolicy(g, policy, targetMask)
		policy = hit
	}

	c.Logger.Debug("searching", "points", len(m.Points), "edges", g.NumEdges(), "seed", s.Seed, "metric", s.Metric)
	reached := ctx.SearchFromSeed(seedNode, withContext(cmd.Context(), policy))
	if err := contextErr(cmd.Context()); err != nil {
		return err
	}
	c.Logger.Info("search finished", "reached", reached)

	w := cmd.OutOrStdout()
	printSuccess(w, "Searched from point %d", s.Seed)
	printKeyValue(w, "Metric", s.Metric)
	printKeyValue(w, "Reached", fmt.Sprintf("%d of %d", reached, len(m.Points)))
	for v, n := range m.VertexNode {
		d := shortestpath.UnreachedDistance
		if n != mtg.NullNode {
			d, _ = ctx.DistanceToVertex(n)
		}
		printDetail(w, "point %-4d %s", v, formatDistance(d))
	}

	if hit != nil {
		if !hit.Found() {
			printKeyValue(w, "Target", "none reached")
			return nil
		}
		to = m.VertexOf(hit.Hit)
		printKeyValue(w, "Target", fmt.Sprintf("%d at %s", to, formatDistance(hit.HitDistance)))
	}
	if to < 0 {
		return nil
	}

	route, err := routeTo(ctx, m, to)
	if err != nil {
		printKeyValue(w, "Path", "unreached")
		return nil
	}
	printKeyValue(w, "Path", formatRoute(route))

	return nil
}

// routeTo returns the point indices of the shortest path from the seed to
// point to.
func routeTo(ctx *shortestpath.Context, m *builder.Mesh, to int) ([]int, error) {
	n := m.VertexNode[to]
	if n == mtg.NullNode {
		return nil, shortestpath.ErrUnreached
	}
	edges, err := ctx.PathToSeed(n)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []int{to}, nil
	}

	route := []int{m.VertexOf(edges[0])}
	for _, e := range edges {
		route = append(route, m.VertexOf(m.Graph.Mate(e)))
	}

	return route, nil
}
