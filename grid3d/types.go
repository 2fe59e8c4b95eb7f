// Package grid3d implements the 3D voxel-grid topology: a row-major array
// of blocked/passable voxels connected by 6-connectivity (face neighbors
// only), satisfying pathcore.Graph[GridPos3D] and heuristics.Position3D.
package grid3d

import "errors"

// ErrNonPositiveDims indicates width, height, or depth was <= 0.
var ErrNonPositiveDims = errors.New("grid3d: width, height and depth must be positive")

// GridPos3D identifies a voxel by integer coordinates.
type GridPos3D struct {
	X, Y, Z int32
}

// XY implements heuristics.Position.
func (p GridPos3D) XY() (float32, float32) { return float32(p.X), float32(p.Y) }

// XYZ implements heuristics.Position3D.
func (p GridPos3D) XYZ() (float32, float32, float32) {
	return float32(p.X), float32(p.Y), float32(p.Z)
}

// voxel is the internal storage representation.
type voxel struct {
	blocked        bool
	costMultiplier float32
}
