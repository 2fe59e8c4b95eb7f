package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/stretchr/testify/require"
)

func TestFrom_ReachesEveryOpenCell(t *testing.T) {
	g, err := grid2d.NewGrid2D(4, 4, grid2d.Never)
	require.NoError(t, err)

	result := dijkstra.From[grid2d.GridPos](g, grid2d.GridPos{X: 0, Y: 0}, float32(math.Inf(1)))
	require.Len(t, result.Dist, 16)
	require.Equal(t, float32(6), result.Dist[grid2d.GridPos{X: 3, Y: 3}])
}

func TestFrom_BlockedCellsAreUnreachable(t *testing.T) {
	g, err := grid2d.NewGrid2D(5, 1, grid2d.Never)
	require.NoError(t, err)
	g.SetBlocked(2, 0, true)

	result := dijkstra.From[grid2d.GridPos](g, grid2d.GridPos{X: 0, Y: 0}, float32(math.Inf(1)))
	_, reachable := result.Dist[grid2d.GridPos{X: 4, Y: 0}]
	require.False(t, reachable)
}

func TestFrom_MaxDistanceCapsExploration(t *testing.T) {
	g, err := grid2d.NewGrid2D(10, 1, grid2d.Never)
	require.NoError(t, err)

	result := dijkstra.From[grid2d.GridPos](g, grid2d.GridPos{X: 0, Y: 0}, 3)
	_, reachable := result.Dist[grid2d.GridPos{X: 5, Y: 0}]
	require.False(t, reachable)
	require.Equal(t, float32(3), result.Dist[grid2d.GridPos{X: 3, Y: 0}])
}

func TestFrom_NilGraphReturnsEmptyResult(t *testing.T) {
	result := dijkstra.From[grid2d.GridPos](nil, grid2d.GridPos{}, float32(math.Inf(1)))
	require.Empty(t, result.Dist)
}
