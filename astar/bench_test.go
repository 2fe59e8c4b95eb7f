package astar_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/heuristics"
)

// BenchmarkSearch_OpenGrid measures A* throughput on a 200x200 open grid
// with diagonal movement enabled, corner to corner.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	g, err := grid2d.NewGrid2D(200, 200, grid2d.IfNoObstacle)
	if err != nil {
		b.Fatalf("setup NewGrid2D failed: %v", err)
	}
	h := heuristics.DefaultDiagonal[grid2d.GridPos]()
	start := grid2d.GridPos{X: 0, Y: 0}
	goal := grid2d.GridPos{X: 199, Y: 199}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = astar.Search[grid2d.GridPos](g, h, start, goal)
	}
}
