// Package navmesh implements a triangle navigation mesh stored as a
// struct-of-arrays for cache locality: a flat vertex buffer, a flat
// triangle index buffer, and a flat neighbor-polygon buffer. It satisfies
// pathcore.Graph[uint32] with polygon index as the node type, so any
// grid-agnostic kernel (astar, thetastar) can search it directly.
package navmesh

import "errors"

// Sentinel errors for navmesh construction and queries.
var (
	// ErrMalformedMesh indicates vertices/polygons/neighbors have
	// inconsistent lengths (polygons and neighbors must both be a multiple
	// of 3, and every polygon/neighbor index must reference a valid
	// vertex/polygon).
	ErrMalformedMesh = errors.New("navmesh: malformed vertex/polygon/neighbor buffers")
)
