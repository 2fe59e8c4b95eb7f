package grid3d

import "math"

// Grid3D is a row-major rectangular voxel grid, 6-connected (face
// neighbors only — no diagonal policy, per the source generator's
// "simplicity" comment). It implements pathcore.Graph[GridPos3D].
type Grid3D struct {
	width, height, depth int32
	voxels                []voxel
}

// NewGrid3D returns a width×height×depth grid with every voxel passable at
// cost 1.
func NewGrid3D(width, height, depth int32) (*Grid3D, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrNonPositiveDims
	}

	voxels := make([]voxel, int(width)*int(height)*int(depth))
	for i := range voxels {
		voxels[i].costMultiplier = 1.0
	}

	return &Grid3D{width: width, height: height, depth: depth, voxels: voxels}, nil
}

// Width, Height, Depth return the grid's dimensions.
func (g *Grid3D) Width() int32  { return g.width }
func (g *Grid3D) Height() int32 { return g.height }
func (g *Grid3D) Depth() int32  { return g.depth }

func (g *Grid3D) index(x, y, z int32) (int, bool) {
	if x < 0 || y < 0 || z < 0 || x >= g.width || y >= g.height || z >= g.depth {
		return 0, false
	}
	return int(z*g.width*g.height + y*g.width + x), true
}

// SetBlocked marks a voxel blocked or passable. Out-of-bounds coordinates
// are ignored.
func (g *Grid3D) SetBlocked(x, y, z int32, blocked bool) {
	idx, ok := g.index(x, y, z)
	if !ok {
		return
	}
	g.voxels[idx].blocked = blocked
	if !blocked && g.voxels[idx].costMultiplier == 0 {
		g.voxels[idx].costMultiplier = 1.0
	}
}

// SetCost sets a passable voxel's movement cost multiplier. Out-of-bounds
// coordinates are ignored.
func (g *Grid3D) SetCost(x, y, z int32, cost float32) {
	idx, ok := g.index(x, y, z)
	if !ok {
		return
	}
	g.voxels[idx].blocked = false
	g.voxels[idx].costMultiplier = cost
}

// Clear resets every voxel to passable at cost 1.
func (g *Grid3D) Clear() {
	for i := range g.voxels {
		g.voxels[i] = voxel{costMultiplier: 1.0}
	}
}

// IsBlocked reports whether (x, y, z) is out of bounds or marked blocked.
func (g *Grid3D) IsBlocked(x, y, z int32) bool {
	idx, ok := g.index(x, y, z)
	if !ok {
		return true
	}
	return g.voxels[idx].blocked
}

// GetCost returns the movement cost multiplier of (x, y, z), or +Inf if the
// voxel is out of bounds or blocked.
func (g *Grid3D) GetCost(x, y, z int32) float32 {
	if g.IsBlocked(x, y, z) {
		return float32(math.Inf(1))
	}
	idx, _ := g.index(x, y, z)
	return g.voxels[idx].costMultiplier
}

var faceDirs = [6][3]int32{
	{0, 0, 1}, {0, 0, -1},
	{0, 1, 0}, {0, -1, 0},
	{1, 0, 0}, {-1, 0, 0},
}

// IsPassable implements pathcore.Graph[GridPos3D].
func (g *Grid3D) IsPassable(node GridPos3D) bool {
	return !g.IsBlocked(node.X, node.Y, node.Z)
}

// Neighbors implements pathcore.Graph[GridPos3D]: the 6 face-adjacent
// voxels, in a fixed order (±Z, ±Y, ±X).
func (g *Grid3D) Neighbors(node GridPos3D, visit func(neighbor GridPos3D, edgeCost float32)) {
	for _, d := range faceDirs {
		nx, ny, nz := node.X+d[0], node.Y+d[1], node.Z+d[2]
		if !g.IsBlocked(nx, ny, nz) {
			visit(GridPos3D{X: nx, Y: ny, Z: nz}, g.GetCost(nx, ny, nz))
		}
	}
}

// CanTraverse implements pathcore.Graph[GridPos3D] with a 3D Bresenham line
// test analogous to Grid2D's: each iteration steps one voxel along the axis
// of largest extent, steps each other axis when its error term is positive,
// and checks the voxel it visits, both endpoints included.
func (g *Grid3D) CanTraverse(from, to GridPos3D) bool {
	x, y, z := from.X, from.Y, from.Z
	dx, dy, dz := abs32(to.X-x), abs32(to.Y-y), abs32(to.Z-z)
	sx, sy, sz := step(x, to.X), step(y, to.Y), step(z, to.Z)

	if dx >= dy && dx >= dz {
		err1, err2 := 2*dy-dx, 2*dz-dx
		for x != to.X {
			if g.IsBlocked(x, y, z) {
				return false
			}
			if err1 > 0 {
				y += sy
				err1 -= 2 * dx
			}
			if err2 > 0 {
				z += sz
				err2 -= 2 * dx
			}
			err1 += 2 * dy
			err2 += 2 * dz
			x += sx
		}
	} else if dy >= dx && dy >= dz {
		err1, err2 := 2*dx-dy, 2*dz-dy
		for y != to.Y {
			if g.IsBlocked(x, y, z) {
				return false
			}
			if err1 > 0 {
				x += sx
				err1 -= 2 * dy
			}
			if err2 > 0 {
				z += sz
				err2 -= 2 * dy
			}
			err1 += 2 * dx
			err2 += 2 * dz
			y += sy
		}
	} else {
		err1, err2 := 2*dy-dz, 2*dx-dz
		for z != to.Z {
			if g.IsBlocked(x, y, z) {
				return false
			}
			if err1 > 0 {
				y += sy
				err1 -= 2 * dz
			}
			if err2 > 0 {
				x += sx
				err2 -= 2 * dz
			}
			err1 += 2 * dy
			err2 += 2 * dx
			z += sz
		}
	}

	return !g.IsBlocked(x, y, z)
}

func step(from, to int32) int32 {
	if from < to {
		return 1
	}
	if from > to {
		return -1
	}
	return 0
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
