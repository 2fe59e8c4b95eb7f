package flowfield_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/flowfield"
	"github.com/katalvlaran/pathkit/grid2d"
)

func BenchmarkCompute_OpenGrid(b *testing.B) {
	g, err := grid2d.NewGrid2D(200, 200, grid2d.IfNoObstacle)
	if err != nil {
		b.Fatal(err)
	}
	goal := grid2d.GridPos{X: 199, Y: 199}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flowfield.Compute(g, goal)
	}
}
