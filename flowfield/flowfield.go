// Package flowfield builds a dense vector field over a Grid2D that lets
// any number of agents follow the cheapest route to a shared goal without
// each running their own search: a Dijkstra-from-goal integration pass
// assigns every reachable cell a cost-to-goal, then a vector pass encodes,
// for each cell, which neighbor most reduces that cost as one of 9
// directions (including None for the goal and local minima).
package flowfield

import (
	"math"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/grid2d"
)

// Direction is a coarse step toward the goal, sampled on the grid's own
// 4- or 8-neighborhood depending on its diagonal policy.
type Direction int

const (
	None Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Vec2 returns the grid step (dx, dy) for d, each component -1, 0 or 1;
// None gives (0, 0).
func (d Direction) Vec2() (float32, float32) {
	switch d {
	case N:
		return 0, -1
	case NE:
		return 1, -1
	case E:
		return 1, 0
	case SE:
		return 1, 1
	case S:
		return 0, 1
	case SW:
		return -1, 1
	case W:
		return -1, 0
	case NW:
		return -1, -1
	default:
		return 0, 0
	}
}

// FlowField is a precomputed cost-to-goal and direction field over a
// Grid2D's cells.
type FlowField struct {
	width, height int32
	integration   []float32
	flow          []Direction
}

func idx(width, x, y int32) int { return int(y*width + x) }

var cardinalFlowDirs = []struct {
	dx, dy int32
	dir    Direction
}{
	{0, -1, N}, {1, 0, E}, {0, 1, S}, {-1, 0, W},
}

var octileFlowDirs = []struct {
	dx, dy int32
	dir    Direction
}{
	{0, -1, N}, {1, -1, NE}, {1, 0, E}, {1, 1, SE},
	{0, 1, S}, {-1, 1, SW}, {-1, 0, W}, {-1, -1, NW},
}

// Compute runs the Dijkstra-from-goal integration pass over grid (via the
// dijkstra package, inheriting the grid's own diagonal policy and edge
// costs), then the steepest-descent vector pass. A blocked or
// out-of-bounds goal yields a field with every cell unreachable.
func Compute(grid *grid2d.Grid2D, goal grid2d.GridPos) *FlowField {
	width, height := grid.Width(), grid.Height()
	ff := &FlowField{
		width:       width,
		height:      height,
		integration: make([]float32, int(width)*int(height)),
		flow:        make([]Direction, int(width)*int(height)),
	}
	for i := range ff.integration {
		ff.integration[i] = float32(math.Inf(1))
	}

	if grid.IsBlocked(goal.X, goal.Y) {
		return ff
	}

	result := dijkstra.From[grid2d.GridPos](grid, goal, float32(math.Inf(1)))
	for node, d := range result.Dist {
		ff.integration[idx(width, node.X, node.Y)] = d
	}
	ff.integration[idx(width, goal.X, goal.Y)] = 0

	dirs := cardinalFlowDirs
	if grid.DiagonalMode() != grid2d.Never {
		dirs = octileFlowDirs
	}

	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			i := idx(width, x, y)
			if math.IsInf(float64(ff.integration[i]), 1) || grid.IsBlocked(x, y) {
				continue
			}
			bestDir := None
			bestCost := ff.integration[i]
			for _, d := range dirs {
				nx, ny := x+d.dx, y+d.dy
				if nx < 0 || ny < 0 || nx >= width || ny >= height || grid.IsBlocked(nx, ny) {
					continue
				}
				if d.dx != 0 && d.dy != 0 && !grid.DiagonalAllowed(grid2d.GridPos{X: x, Y: y}, d.dx, d.dy) {
					continue
				}
				nCost := ff.integration[idx(width, nx, ny)]
				if nCost < bestCost {
					bestCost = nCost
					bestDir = d.dir
				}
			}
			ff.flow[i] = bestDir
		}
	}

	return ff
}

// GetDirection returns the flow direction at pos, or None if pos is out of
// bounds.
func (f *FlowField) GetDirection(pos grid2d.GridPos) Direction {
	if pos.X < 0 || pos.Y < 0 || pos.X >= f.width || pos.Y >= f.height {
		return None
	}
	return f.flow[idx(f.width, pos.X, pos.Y)]
}

// GetCostToGoal returns the integration cost at pos, or +Inf if pos is out
// of bounds or unreachable.
func (f *FlowField) GetCostToGoal(pos grid2d.GridPos) float32 {
	if pos.X < 0 || pos.Y < 0 || pos.X >= f.width || pos.Y >= f.height {
		return float32(math.Inf(1))
	}
	return f.integration[idx(f.width, pos.X, pos.Y)]
}

// SampleBilinear returns a smoothed (vx, vy) by interpolating the 2-vector
// direction forms of the four cells surrounding (x, y), weighted by
// (1-fx)(1-fy), fx(1-fy), (1-fx)fy, fxfy. Out-of-range inputs return
// (0, 0).
func (f *FlowField) SampleBilinear(x, y float32) (float32, float32) {
	if x < 0 || y < 0 {
		return 0, 0
	}
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	x1, y1 := x0+1, y0+1
	if x0 < 0 || y0 < 0 || x1 >= f.width || y1 >= f.height {
		return 0, 0
	}

	fx := x - float32(x0)
	fy := y - float32(y0)

	v00x, v00y := f.GetDirection(grid2d.GridPos{X: x0, Y: y0}).Vec2()
	v10x, v10y := f.GetDirection(grid2d.GridPos{X: x1, Y: y0}).Vec2()
	v01x, v01y := f.GetDirection(grid2d.GridPos{X: x0, Y: y1}).Vec2()
	v11x, v11y := f.GetDirection(grid2d.GridPos{X: x1, Y: y1}).Vec2()

	vx0 := lerp(v00x, v10x, fx)
	vy0 := lerp(v00y, v10y, fx)
	vx1 := lerp(v01x, v11x, fx)
	vy1 := lerp(v01y, v11y, fx)

	return lerp(vx0, vx1, fy), lerp(vy0, vy1, fy)
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }
