package pathfindmany_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/heuristics"
	"github.com/katalvlaran/pathkit/pathcore"
	"github.com/katalvlaran/pathkit/pathfindmany"
	"github.com/stretchr/testify/require"
)

func TestSearch_ResultsPreserveInputOrder(t *testing.T) {
	g, err := grid2d.NewGrid2D(10, 10, grid2d.Always)
	require.NoError(t, err)
	h := heuristics.DefaultDiagonal[grid2d.GridPos]()

	queries := []pathfindmany.Query[grid2d.GridPos]{
		{Start: grid2d.GridPos{X: 0, Y: 0}, Goal: grid2d.GridPos{X: 9, Y: 9}},
		{Start: grid2d.GridPos{X: 0, Y: 0}, Goal: grid2d.GridPos{X: 0, Y: 0}},
		{Start: grid2d.GridPos{X: 9, Y: 0}, Goal: grid2d.GridPos{X: 0, Y: 9}},
	}
	results := pathfindmany.Search[grid2d.GridPos](g, h, queries)

	require.Len(t, results, 3)
	require.Equal(t, pathcore.Found, results[0].Status)
	require.Equal(t, queries[0].Start, results[0].Path[0])
	require.Equal(t, queries[0].Goal, results[0].Path[len(results[0].Path)-1])

	require.Equal(t, pathcore.Found, results[1].Status)
	require.Equal(t, []grid2d.GridPos{queries[1].Start}, results[1].Path)

	require.Equal(t, queries[2].Start, results[2].Path[0])
	require.Equal(t, queries[2].Goal, results[2].Path[len(results[2].Path)-1])
}

func TestSearch_UnreachableQueryReturnsNotFoundWithoutAffectingOthers(t *testing.T) {
	g, err := grid2d.NewGrid2D(5, 5, grid2d.Never)
	require.NoError(t, err)
	g.SetRegionBlocked(2, 0, 1, 5, true)
	h := heuristics.Manhattan[grid2d.GridPos]{}

	queries := []pathfindmany.Query[grid2d.GridPos]{
		{Start: grid2d.GridPos{X: 0, Y: 0}, Goal: grid2d.GridPos{X: 4, Y: 0}},
		{Start: grid2d.GridPos{X: 0, Y: 0}, Goal: grid2d.GridPos{X: 1, Y: 1}},
	}
	results := pathfindmany.Search[grid2d.GridPos](g, h, queries)

	require.Equal(t, pathcore.NotFound, results[0].Status)
	require.Equal(t, pathcore.Found, results[1].Status)
}

func TestSearch_EmptyQueriesReturnsEmptySlice(t *testing.T) {
	g, err := grid2d.NewGrid2D(3, 3, grid2d.Never)
	require.NoError(t, err)
	h := heuristics.Manhattan[grid2d.GridPos]{}

	results := pathfindmany.Search[grid2d.GridPos](g, h, nil)
	require.Empty(t, results)
}
