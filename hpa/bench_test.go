package hpa_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/hpa"
)

func BenchmarkFindPath_LargeGridCrossCluster(b *testing.B) {
	g, err := grid2d.NewGrid2D(200, 200, grid2d.IfNoObstacle)
	if err != nil {
		b.Fatal(err)
	}
	hg, err := hpa.Preprocess(g, 10)
	if err != nil {
		b.Fatal(err)
	}
	start := grid2d.GridPos{X: 0, Y: 0}
	goal := grid2d.GridPos{X: 199, Y: 199}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hg.FindPath(start, goal)
	}
}
