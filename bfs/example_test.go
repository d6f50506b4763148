package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/meshpath/bfs"
	"github.com/katalvlaran/meshpath/builder"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid mesh.
// Depths follow the Manhattan distance from the corner point.
func ExampleBFS_gridTraversal() {
	m, err := builder.BuildMesh(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(m.Graph, m.VertexNode[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for r := 0; r < 3; r++ {
		row := make([]int, 3)
		for c := range row {
			v := m.Graph.VertexRepresentative(m.VertexNode[builder.GridIndex(r, c, 3)])
			row[c] = res.Depth[v]
		}
		fmt.Println(row)
	}
	// Output:
	// [0 1 2]
	// [1 2 3]
	// [2 3 4]
}
