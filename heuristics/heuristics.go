// Package heuristics provides the stock Heuristic implementations used by
// pathkit's search kernels: Manhattan, Euclidean, Diagonal (octile), and
// Zero (turns A* into plain Dijkstra).
//
// All four operate over any node type that implements Position, so the same
// heuristic works across Grid2D's GridPos, Grid3D's GridPos3D, and any
// custom 2D/3D node a caller defines. They are generic over N so that each
// instantiation satisfies pathcore.Heuristic[N] directly, with no adaptor.
package heuristics

import "math"

// Position exposes the planar coordinates a heuristic needs. A single XY
// method (rather than separate X()/Y() accessors) keeps node types free to
// use plain X/Y fields without a name collision against the interface.
type Position interface {
	XY() (x, y float32)
}

// Position3D additionally exposes a Z coordinate via a single XYZ method,
// for the same field-name-collision reason Position uses XY instead of
// separate X()/Y() accessors. Grid3D's GridPos3D implements this; purely 2D
// node types do not need to.
type Position3D interface {
	XYZ() (x, y, z float32)
}

func zOf(p any) float32 {
	if p3, ok := p.(Position3D); ok {
		_, _, z := p3.XYZ()
		return z
	}
	return 0
}

// Manhattan estimates cost as the L1 (taxicab) distance. Admissible for
// grids that only permit cardinal movement.
type Manhattan[N Position] struct{}

// Estimate implements pathcore.Heuristic[N].
func (Manhattan[N]) Estimate(from, to N) float32 {
	fx, fy := from.XY()
	tx, ty := to.XY()
	return absf(fx-tx) + absf(fy-ty) + absf(zOf(from)-zOf(to))
}

// IsAdmissible implements pathcore.Heuristic[N].
func (Manhattan[N]) IsAdmissible() bool { return true }

// Euclidean estimates cost as straight-line distance. Admissible whenever
// the graph's minimum edge cost per unit distance is at least 1, and is the
// only heuristic that also doubles as an exact distance function — required
// by Theta*'s any-angle relaxation (spec §4.2) and used as the query
// heuristic for the hierarchical abstract graph (spec §4.5 step 3).
type Euclidean[N Position] struct{}

// Estimate implements pathcore.Heuristic[N].
func (Euclidean[N]) Estimate(from, to N) float32 {
	fx, fy := from.XY()
	tx, ty := to.XY()
	dx := fx - tx
	dy := fy - ty
	dz := zOf(from) - zOf(to)
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// IsAdmissible implements pathcore.Heuristic[N].
func (Euclidean[N]) IsAdmissible() bool { return true }

// Diagonal estimates cost using octile distance: cardinal moves cost
// CardinalCost, diagonal moves cost DiagonalCost. The zero value computes
// with CardinalCost=DiagonalCost=0, which is admissible but useless; use
// DefaultDiagonal for the standard 8-connected grid weights.
type Diagonal[N Position] struct {
	CardinalCost float32
	DiagonalCost float32
}

// DefaultDiagonal returns the standard 8-connected grid heuristic:
// CardinalCost=1, DiagonalCost=sqrt(2).
func DefaultDiagonal[N Position]() Diagonal[N] {
	return Diagonal[N]{CardinalCost: 1.0, DiagonalCost: float32(math.Sqrt2)}
}

// Estimate implements pathcore.Heuristic[N]. The Z term (if any) is folded
// in at CardinalCost, matching the source behavior for grids that treat
// height as an additional cardinal axis.
func (d Diagonal[N]) Estimate(from, to N) float32 {
	fx, fy := from.XY()
	tx, ty := to.XY()
	dx := absf(fx - tx)
	dy := absf(fy - ty)
	dz := absf(zOf(from) - zOf(to))

	minD, maxD := dx, dy
	if dx > dy {
		minD, maxD = dy, dx
	}

	return d.CardinalCost*(maxD-minD) + d.DiagonalCost*minD + dz*d.CardinalCost
}

// IsAdmissible implements pathcore.Heuristic[N].
func (Diagonal[N]) IsAdmissible() bool { return true }

// Zero always estimates zero remaining cost, degenerating A* into Dijkstra.
// Trivially admissible.
type Zero[N any] struct{}

// Estimate implements pathcore.Heuristic[N].
func (Zero[N]) Estimate(N, N) float32 { return 0 }

// IsAdmissible implements pathcore.Heuristic[N].
func (Zero[N]) IsAdmissible() bool { return true }

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
