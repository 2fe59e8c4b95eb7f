package thetastar_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/heuristics"
	"github.com/katalvlaran/pathkit/pathcore"
	"github.com/katalvlaran/pathkit/thetastar"
	"github.com/stretchr/testify/require"
)

func TestSearch_AnyAngleBeatsGridConstrainedAStar(t *testing.T) {
	g, err := grid2d.NewGrid2D(12, 12, grid2d.Always)
	require.NoError(t, err)

	start := grid2d.GridPos{X: 0, Y: 0}
	goal := grid2d.GridPos{X: 11, Y: 4} // not aligned to a grid diagonal

	thetaResult := thetastar.Search[grid2d.GridPos](g, heuristics.Euclidean[grid2d.GridPos]{}, start, goal)
	require.Equal(t, pathcore.Found, thetaResult.Status)
	require.Equal(t, start, thetaResult.Path[0])
	require.Equal(t, goal, thetaResult.Path[len(thetaResult.Path)-1])

	astarResult := astar.Search[grid2d.GridPos](g, heuristics.DefaultDiagonal[grid2d.GridPos](), start, goal)
	require.Equal(t, pathcore.Found, astarResult.Status)

	// Any-angle movement is never more expensive than octile-constrained
	// movement, and strictly cheaper whenever the goal isn't grid-aligned.
	require.Less(t, thetaResult.Cost, astarResult.Cost)
	require.Less(t, len(thetaResult.Path), len(astarResult.Path))
}

func TestSearch_ObstacleForcesCornerPoint(t *testing.T) {
	g, err := grid2d.NewGrid2D(10, 10, grid2d.Always)
	require.NoError(t, err)
	g.SetRegionBlocked(4, 0, 2, 6, true)

	h := heuristics.Euclidean[grid2d.GridPos]{}
	start := grid2d.GridPos{X: 0, Y: 3}
	goal := grid2d.GridPos{X: 9, Y: 3}

	result := thetastar.Search[grid2d.GridPos](g, h, start, goal)
	require.Equal(t, pathcore.Found, result.Status)
	require.Greater(t, len(result.Path), 2, "an obstacle in the direct line must produce at least one corner")
}

func TestSearch_UnreachableGoalIsNotFound(t *testing.T) {
	g, err := grid2d.NewGrid2D(5, 5, grid2d.Never)
	require.NoError(t, err)
	g.SetRegionBlocked(2, 0, 1, 5, true)

	h := heuristics.Euclidean[grid2d.GridPos]{}
	result := thetastar.Search[grid2d.GridPos](g, h, grid2d.GridPos{X: 0, Y: 0}, grid2d.GridPos{X: 4, Y: 0})
	require.Equal(t, pathcore.NotFound, result.Status)
}

func TestWithMaxIterations_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { thetastar.WithMaxIterations(-1) })
}
