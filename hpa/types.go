package hpa

import (
	"errors"

	"github.com/katalvlaran/pathkit/grid2d"
)

// ErrInvalidClusterSize indicates Preprocess received a non-positive
// cluster side length.
var ErrInvalidClusterSize = errors.New("hpa: cluster size must be positive")

// ErrNilGrid indicates Preprocess received a nil base grid.
var ErrNilGrid = errors.New("hpa: base grid is nil")

// clusterParallelThreshold is the cluster count above which intra-cluster
// A* runs are dispatched across goroutines instead of run sequentially
// (spec §4.5: "If the number of clusters exceeds a threshold (e.g. 50)").
const clusterParallelThreshold = 50

// nodeID identifies an abstract node. Real abstract nodes are assigned
// increasing non-negative ids as they are created; virtualStart and
// virtualGoal are reserved ids used only for the lifetime of a single
// FindPath query, never stored in the precomputed graph.
type nodeID int32

const (
	virtualStart nodeID = -1
	virtualGoal  nodeID = -2
)

// abstractEdge is a directed, precomputed connection between two abstract
// nodes, carrying the concrete base-grid path that realizes it so
// refinement never has to re-search.
type abstractEdge struct {
	target nodeID
	cost   float32
	path   []grid2d.GridPos
}

// clusterKey identifies one S×S cluster of the base grid.
type clusterKey struct {
	cx, cy int32
}

// transientEdge is a per-query edge from/to a virtual start or goal node,
// built fresh for each FindPath call and discarded afterward.
type transientEdge struct {
	id   nodeID
	cost float32
	path []grid2d.GridPos
}

// edgeRecord is one directed edge discovered while processing a cluster,
// destined for a serial merge into the shared edge map.
type edgeRecord struct {
	from, to nodeID
	cost     float32
	path     []grid2d.GridPos
}
