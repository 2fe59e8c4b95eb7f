package flowfield_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathkit/flowfield"
	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/stretchr/testify/require"
)

func TestCompute_CardinalFieldPointsToGoal(t *testing.T) {
	g, err := grid2d.NewGrid2D(3, 3, grid2d.Never)
	require.NoError(t, err)

	goal := grid2d.GridPos{X: 2, Y: 1}
	ff := flowfield.Compute(g, goal)

	require.Equal(t, flowfield.None, ff.GetDirection(goal))
	require.Equal(t, flowfield.E, ff.GetDirection(grid2d.GridPos{X: 1, Y: 1}))
	require.Equal(t, flowfield.S, ff.GetDirection(grid2d.GridPos{X: 2, Y: 0}))
	require.Equal(t, flowfield.N, ff.GetDirection(grid2d.GridPos{X: 2, Y: 2}))
}

func TestCompute_DiagonalFieldPrefersShortcut(t *testing.T) {
	g, err := grid2d.NewGrid2D(3, 3, grid2d.Always)
	require.NoError(t, err)

	goal := grid2d.GridPos{X: 2, Y: 2}
	ff := flowfield.Compute(g, goal)

	require.Equal(t, flowfield.SE, ff.GetDirection(grid2d.GridPos{X: 0, Y: 0}))
}

func TestCompute_ObstacleRoutesAroundWall(t *testing.T) {
	g, err := grid2d.NewGrid2D(5, 5, grid2d.Never)
	require.NoError(t, err)
	g.SetRegionBlocked(2, 0, 1, 4, true)

	goal := grid2d.GridPos{X: 4, Y: 0}
	ff := flowfield.Compute(g, goal)

	require.NotEqual(t, flowfield.None, ff.GetDirection(grid2d.GridPos{X: 0, Y: 0}))
	require.False(t, math.IsInf(float64(ff.GetCostToGoal(grid2d.GridPos{X: 0, Y: 0})), 1))
}

func TestCompute_BlockedGoalLeavesEverythingUnreachable(t *testing.T) {
	g, err := grid2d.NewGrid2D(4, 4, grid2d.Never)
	require.NoError(t, err)
	goal := grid2d.GridPos{X: 2, Y: 2}
	g.SetBlocked(goal.X, goal.Y, true)

	ff := flowfield.Compute(g, goal)
	require.True(t, math.IsInf(float64(ff.GetCostToGoal(grid2d.GridPos{X: 0, Y: 0})), 1))
	require.Equal(t, flowfield.None, ff.GetDirection(grid2d.GridPos{X: 0, Y: 0}))
}

func TestGetDirectionAndCost_OutOfBoundsAreSafe(t *testing.T) {
	g, err := grid2d.NewGrid2D(3, 3, grid2d.Never)
	require.NoError(t, err)
	ff := flowfield.Compute(g, grid2d.GridPos{X: 1, Y: 1})

	require.Equal(t, flowfield.None, ff.GetDirection(grid2d.GridPos{X: -1, Y: 0}))
	require.Equal(t, flowfield.None, ff.GetDirection(grid2d.GridPos{X: 3, Y: 0}))
	require.True(t, math.IsInf(float64(ff.GetCostToGoal(grid2d.GridPos{X: -1, Y: 0})), 1))
}

func TestSampleBilinear_OutOfRangeReturnsZero(t *testing.T) {
	g, err := grid2d.NewGrid2D(3, 3, grid2d.Never)
	require.NoError(t, err)
	ff := flowfield.Compute(g, grid2d.GridPos{X: 1, Y: 1})

	vx, vy := ff.SampleBilinear(-1, 0)
	require.Zero(t, vx)
	require.Zero(t, vy)

	vx, vy = ff.SampleBilinear(2.5, 0)
	require.Zero(t, vx)
	require.Zero(t, vy)
}

func TestSampleBilinear_InteriorBlendsNeighboringDirections(t *testing.T) {
	g, err := grid2d.NewGrid2D(5, 5, grid2d.Never)
	require.NoError(t, err)
	ff := flowfield.Compute(g, grid2d.GridPos{X: 4, Y: 2})

	vx, _ := ff.SampleBilinear(1.5, 2)
	require.Greater(t, vx, float32(0))
}
