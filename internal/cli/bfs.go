package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshpath/bfs"
	"github.com/katalvlaran/meshpath/mtg"
)

// bfsCommand creates the bfs command for hop layering from a seed point.
func (c *CLI) bfsCommand() *cobra.Command {
	var mesh meshFlags
	var seed, maxDepth int

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first layers from one seed point",
		Example: `  # Hop layers on a 3x3 grid
  meshpath bfs --grid 3x3 --seed 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mesh.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = seed
			}
			if err := s.Validate(); err != nil {
				return err
			}
			m, err := s.Build()
			if err != nil {
				return err
			}
			start := m.VertexNode[s.Seed]
			if start == mtg.NullNode {
				return fmt.Errorf("%w: seed %d has no segments", ErrScenario, s.Seed)
			}

			res, err := bfs.BFS(m.Graph, start,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
				bfs.WithOnVisit(func(v mtg.NodeID, depth int) error {
					c.Logger.Debug("visit", "point", m.VertexOf(v), "depth", depth)
					return nil
				}),
			)
			if err != nil {
				return err
			}

			layers := map[int][]int{}
			deepest := 0
			for v, d := range res.Depth {
				layers[d] = append(layers[d], m.VertexOf(v))
				deepest = max(deepest, d)
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Layered from point %d", s.Seed)
			printKeyValue(w, "Visited", fmt.Sprintf("%d of %d", len(res.Order), len(m.Points)))
			for d := 0; d <= deepest; d++ {
				pts := layers[d]
				sort.Ints(pts)
				strs := make([]string, len(pts))
				for i, p := range pts {
					strs[i] = fmt.Sprint(p)
				}
				printDetail(w, "depth %d: %s", d, strings.Join(strs, " "))
			}

			return nil
		},
	}

	mesh.register(cmd)
	cmd.Flags().IntVar(&seed, "seed", 0, "seed point index")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop at this depth (0 = no limit)")

	return cmd
}
