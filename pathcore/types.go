// Package pathcore defines the abstract Graph and Heuristic contracts shared
// by every search kernel in pathkit (astar, thetastar, jps, hpa, flowfield),
// along with the PathResult/PathStatus vocabulary they all return.
//
// A Graph is a capability set, not a class hierarchy: it exposes passability,
// callback-based neighbor iteration (so expansion never allocates a slice per
// call), and an optional line-of-sight check used by Theta* and the greedy
// smoother. Nodes must be comparable and cheap to copy; pathkit uses Go
// generics (comparable) rather than an interface{} key so concrete graphs
// (grid cells, navmesh polygon indices, hierarchical abstract node ids) never
// pay a boxing cost.
package pathcore

import "errors"

// Sentinel errors naming invalid search inputs. The search kernels do not
// return them: astar, thetastar and jps report a nil graph or heuristic as
// a NotFound PathResult.
var (
	// ErrNilGraph indicates a nil Graph was passed to a search entry point.
	ErrNilGraph = errors.New("pathcore: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to a search entry point.
	ErrNilHeuristic = errors.New("pathcore: heuristic is nil")
)

// Graph exposes the topology a search kernel needs. Implementations are
// read-only from the perspective of a running search: Grid2D, Grid3D,
// NavMesh, and the hierarchical abstract graph all satisfy it.
type Graph[N comparable] interface {
	// IsPassable reports whether node can be occupied/traversed at all.
	IsPassable(node N) bool

	// Neighbors invokes visit once per outgoing passable edge from node,
	// passing the neighbor and its non-negative, finite edge cost. visit
	// must not be retained past the call. Implementations must not allocate
	// a slice to satisfy this method; callback iteration is part of the
	// contract (see spec: "neighbors uses callback-based iteration to avoid
	// per-call allocation").
	Neighbors(node N, visit func(neighbor N, edgeCost float32))

	// CanTraverse reports whether a direct line-of-sight move from -> to is
	// valid, independent of the graph's normal adjacency. Used by Theta*'s
	// any-angle relaxation and by the greedy LOS smoother. Graphs with no
	// natural notion of line-of-sight (e.g. an abstract hierarchical graph)
	// may simply return true for all inputs.
	CanTraverse(from, to N) bool
}

// Heuristic estimates the remaining cost from a node to a goal.
type Heuristic[N any] interface {
	// Estimate returns a non-negative cost estimate from 'from' to 'to'.
	Estimate(from, to N) float32

	// IsAdmissible reports whether this heuristic never overestimates true
	// cost. Admissibility is a precondition for A*/JPS/Theta* optimality;
	// kernels do not verify it at runtime.
	IsAdmissible() bool
}

// PathStatus classifies the outcome of a search.
type PathStatus int

const (
	// Found means path[0]==start, path[len-1]==goal, and cost is exact.
	Found PathStatus = iota
	// NotFound means the frontier drained without reaching goal.
	NotFound
	// PartialTimeout means config.Timeout elapsed before completion; path is
	// a best-effort reconstruction from the last popped node.
	PartialTimeout
	// PartialMaxIter means config.MaxIterations was exceeded before
	// completion; path is a best-effort reconstruction from the last popped
	// node.
	PartialMaxIter
)

// String renders the status for logs and test failure messages.
func (s PathStatus) String() string {
	switch s {
	case Found:
		return "Found"
	case NotFound:
		return "NotFound"
	case PartialTimeout:
		return "PartialTimeout"
	case PartialMaxIter:
		return "PartialMaxIter"
	default:
		return "Unknown"
	}
}

// PathResult is the uniform return value of every search entry point in
// pathkit. Pathfinding is total: every query returns a PathResult, never an
// error (see spec §7 — malformed inputs surface as NotFound, not a panic).
type PathResult[N any] struct {
	// Path is the ordered sequence of nodes from start to goal inclusive.
	// Empty unless Status == Found, PartialTimeout, or PartialMaxIter.
	Path []N
	// Cost is the sum of edge costs along Path (or, for Theta*, along the
	// LOS segments of Path), within float32 accumulation tolerance.
	Cost float32
	// NodesExpanded counts how many nodes were popped off the frontier and
	// had their neighbors examined (lazy-stale pops are not counted).
	NodesExpanded int
	// Status classifies the outcome.
	Status PathStatus
}
