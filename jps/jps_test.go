package jps_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/heuristics"
	"github.com/katalvlaran/pathkit/jps"
	"github.com/katalvlaran/pathkit/pathcore"
	"github.com/stretchr/testify/require"
)

func TestSearch_OpenGridMatchesAStarCost(t *testing.T) {
	g, err := grid2d.NewGrid2D(20, 20, grid2d.Always)
	require.NoError(t, err)

	h := heuristics.DefaultDiagonal[grid2d.GridPos]()
	start := grid2d.GridPos{X: 0, Y: 0}
	goal := grid2d.GridPos{X: 19, Y: 19}

	jpsResult := jps.Search(g, h, start, goal)
	astarResult := astar.Search[grid2d.GridPos](g, h, start, goal)

	require.Equal(t, pathcore.Found, jpsResult.Status)
	require.InDelta(t, astarResult.Cost, jpsResult.Cost, 1e-3)
	require.Equal(t, start, jpsResult.Path[0])
	require.Equal(t, goal, jpsResult.Path[len(jpsResult.Path)-1])
	// JPS returns jump points only: far fewer nodes than a cell-by-cell walk.
	require.Less(t, len(jpsResult.Path), len(astarResult.Path))
}

func TestSearch_MazeMatchesAStarCost(t *testing.T) {
	g, err := grid2d.NewGrid2D(15, 15, grid2d.Never)
	require.NoError(t, err)
	g.SetRegionBlocked(5, 0, 1, 10, true)
	g.SetRegionBlocked(10, 5, 1, 10, true)

	h := heuristics.Manhattan[grid2d.GridPos]{}
	start := grid2d.GridPos{X: 0, Y: 0}
	goal := grid2d.GridPos{X: 14, Y: 14}

	jpsResult := jps.Search(g, h, start, goal)
	astarResult := astar.Search[grid2d.GridPos](g, h, start, goal)

	require.Equal(t, pathcore.Found, jpsResult.Status)
	require.InDelta(t, astarResult.Cost, jpsResult.Cost, 1e-3)
}

func TestSearch_UnreachableGoalIsNotFound(t *testing.T) {
	g, err := grid2d.NewGrid2D(5, 5, grid2d.Never)
	require.NoError(t, err)
	g.SetRegionBlocked(2, 0, 1, 5, true)

	h := heuristics.Manhattan[grid2d.GridPos]{}
	result := jps.Search(g, h, grid2d.GridPos{X: 0, Y: 0}, grid2d.GridPos{X: 4, Y: 0})
	require.Equal(t, pathcore.NotFound, result.Status)
}

func TestSearch_BlockedStartIsNotFound(t *testing.T) {
	g, err := grid2d.NewGrid2D(3, 3, grid2d.Never)
	require.NoError(t, err)
	g.SetBlocked(0, 0, true)

	h := heuristics.Manhattan[grid2d.GridPos]{}
	result := jps.Search(g, h, grid2d.GridPos{X: 0, Y: 0}, grid2d.GridPos{X: 2, Y: 2})
	require.Equal(t, pathcore.NotFound, result.Status)
}
