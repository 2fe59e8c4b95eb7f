package grid2d

import "math"

var sqrt2 = float32(math.Sqrt2)

// Grid2D is a row-major rectangular grid of cells, each either blocked or
// passable with a positive cost multiplier. It implements
// pathcore.Graph[GridPos] directly, so every grid-agnostic kernel (astar,
// thetastar, budgeted astar) can search it like any other Graph; jps
// specializes on *Grid2D for its pruned-neighbor rules instead of going
// through the interface.
type Grid2D struct {
	width, height int32
	cells         []cell
	diagonal      DiagonalMode
}

// NewGrid2D returns a width×height grid with every cell passable at cost 1.
func NewGrid2D(width, height int32, diagonal DiagonalMode) (*Grid2D, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNonPositiveDims
	}

	cells := make([]cell, int(width)*int(height))
	for i := range cells {
		cells[i].costMultiplier = 1.0
	}

	return &Grid2D{width: width, height: height, cells: cells, diagonal: diagonal}, nil
}

// Width returns the grid's column count.
func (g *Grid2D) Width() int32 { return g.width }

// Height returns the grid's row count.
func (g *Grid2D) Height() int32 { return g.height }

// DiagonalMode returns the grid's configured diagonal-movement policy.
func (g *Grid2D) DiagonalMode() DiagonalMode { return g.diagonal }

func (g *Grid2D) index(x, y int32) (int, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	return int(y*g.width + x), true
}

// SetBlocked marks a cell blocked or passable. Out-of-bounds coordinates are
// ignored.
func (g *Grid2D) SetBlocked(x, y int32, blocked bool) {
	idx, ok := g.index(x, y)
	if !ok {
		return
	}
	g.cells[idx].blocked = blocked
	if !blocked && g.cells[idx].costMultiplier == 0 {
		g.cells[idx].costMultiplier = 1.0
	}
}

// SetCost sets a passable cell's movement cost multiplier. Out-of-bounds
// coordinates are ignored.
func (g *Grid2D) SetCost(x, y int32, cost float32) {
	idx, ok := g.index(x, y)
	if !ok {
		return
	}
	g.cells[idx].blocked = false
	g.cells[idx].costMultiplier = cost
}

// SetRegionBlocked sets every cell in the rectangle [x, x+w) x [y, y+h) to
// the given blocked state.
func (g *Grid2D) SetRegionBlocked(x, y, w, h int32, blocked bool) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			g.SetBlocked(xx, yy, blocked)
		}
	}
}

// Clear resets every cell to passable at cost 1.
func (g *Grid2D) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{costMultiplier: 1.0}
	}
}

// IsBlocked reports whether (x, y) is out of bounds or marked blocked.
func (g *Grid2D) IsBlocked(x, y int32) bool {
	idx, ok := g.index(x, y)
	if !ok {
		return true
	}
	return g.cells[idx].blocked
}

// GetCost returns the movement cost multiplier of (x, y), or +Inf if the
// cell is out of bounds or blocked.
func (g *Grid2D) GetCost(x, y int32) float32 {
	idx, ok := g.index(x, y)
	if !ok || g.cells[idx].blocked {
		return float32(math.Inf(1))
	}
	return g.cells[idx].costMultiplier
}

var cardinalDirs = [4][2]int32{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
var diagonalDirs = [4][2]int32{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// IsPassable implements pathcore.Graph[GridPos].
func (g *Grid2D) IsPassable(node GridPos) bool {
	return !g.IsBlocked(node.X, node.Y)
}

// Neighbors implements pathcore.Graph[GridPos]. Cardinal moves are visited
// first, then diagonals (if enabled), matching the source generator's
// iteration order so results are deterministic for a fixed grid.
func (g *Grid2D) Neighbors(node GridPos, visit func(neighbor GridPos, edgeCost float32)) {
	for _, d := range cardinalDirs {
		nx, ny := node.X+d[0], node.Y+d[1]
		if !g.IsBlocked(nx, ny) {
			visit(GridPos{X: nx, Y: ny}, g.GetCost(nx, ny))
		}
	}

	if g.diagonal == Never {
		return
	}

	for _, d := range diagonalDirs {
		nx, ny := node.X+d[0], node.Y+d[1]
		if g.IsBlocked(nx, ny) {
			continue
		}

		c1Blocked := g.IsBlocked(node.X+d[0], node.Y)
		c2Blocked := g.IsBlocked(node.X, node.Y+d[1])

		allowed := false
		switch g.diagonal {
		case Always:
			allowed = true
		case IfNoObstacle:
			allowed = !c1Blocked || !c2Blocked
		case OnlyIfBothOpen:
			allowed = !c1Blocked && !c2Blocked
		}
		if !allowed {
			continue
		}

		visit(GridPos{X: nx, Y: ny}, g.GetCost(nx, ny)*sqrt2)
	}
}

// CanTraverse implements pathcore.Graph[GridPos] with a Bresenham line test:
// it reports whether every cell of the Bresenham line from->to (inclusive
// of both endpoints) is passable; a step that moves along both axes at once
// does not check the two cells beside it. Used by Theta*'s any-angle relaxation and by
// the greedy line-of-sight path smoother.
func (g *Grid2D) CanTraverse(from, to GridPos) bool {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := abs32(x1 - x0)
	dy := abs32(y1 - y0)
	sx := int32(1)
	if x0 >= x1 {
		sx = -1
	}
	sy := int32(1)
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for x != x1 || y != y1 {
		if g.IsBlocked(x, y) {
			return false
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	return !g.IsBlocked(x, y)
}

// DiagonalAllowed reports whether a diagonal step (dx, dy) from "from" is
// permitted under the grid's DiagonalMode, given the blocked state of the
// two cardinal cells adjacent to that diagonal. Exposed for jps, which
// needs the same corner-cutting rule Neighbors applies internally.
func (g *Grid2D) DiagonalAllowed(from GridPos, dx, dy int32) bool {
	if g.diagonal == Never {
		return false
	}
	c1Blocked := g.IsBlocked(from.X+dx, from.Y)
	c2Blocked := g.IsBlocked(from.X, from.Y+dy)

	switch g.diagonal {
	case Always:
		return true
	case IfNoObstacle:
		return !c1Blocked || !c2Blocked
	case OnlyIfBothOpen:
		return !c1Blocked && !c2Blocked
	default:
		return false
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
