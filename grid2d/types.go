// Package grid2d implements the 2D grid topology (spec component C2): a
// row-major array of blocked/passable cells with a configurable diagonal
// movement policy, satisfying pathcore.Graph[GridPos].
package grid2d

import "errors"

// Sentinel errors for grid2d construction.
var (
	// ErrNonPositiveDims indicates width or height was <= 0.
	ErrNonPositiveDims = errors.New("grid2d: width and height must be positive")
)

// DiagonalMode controls whether and when diagonal movement is permitted.
type DiagonalMode int

const (
	// Never disables all diagonal movement.
	Never DiagonalMode = iota
	// Always permits diagonal movement regardless of adjacent obstacles
	// (corner-cutting allowed).
	Always
	// IfNoObstacle permits a diagonal move if at least one of the two
	// adjacent cardinal cells is open.
	IfNoObstacle
	// OnlyIfBothOpen permits a diagonal move only if both adjacent cardinal
	// cells are open (strict corner-cutting prevention).
	OnlyIfBothOpen
)

// GridPos identifies a cell by integer coordinates. It is the node type
// Grid2D uses with pathcore.Graph and heuristics.Position.
type GridPos struct {
	X, Y int32
}

// XY implements heuristics.Position.
func (p GridPos) XY() (float32, float32) { return float32(p.X), float32(p.Y) }

// cell is the internal storage representation: Blocked cells carry no cost;
// passable cells carry a positive movement cost multiplier.
type cell struct {
	blocked        bool
	costMultiplier float32
}
