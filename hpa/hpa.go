// Package hpa implements an HPA*-style hierarchical grid preprocessor and
// query: a Grid2D is partitioned into fixed-size clusters, cluster-border
// entrances become abstract nodes, intra-cluster A* runs precompute the
// edges between them, and a query composes two small transient edge lists
// (start-to-cluster, cluster-to-goal) with the precomputed abstract graph
// to answer long-range queries without one A* run from start to goal over
// the concrete grid. Queries whose start and goal share a cluster fall back
// to direct A* on the base grid.
package hpa

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/heuristics"
	"github.com/katalvlaran/pathkit/pathcore"
)

// HierarchicalGrid is an immutable, preprocessed abstraction over a
// Grid2D. Any mutation of the base grid after Preprocess invalidates the
// cached abstract edges; callers must rebuild.
type HierarchicalGrid struct {
	grid        *grid2d.Grid2D
	clusterSize int32

	nodePos      []grid2d.GridPos
	edges        map[nodeID][]abstractEdge
	clusterNodes map[clusterKey][]nodeID
}

// Preprocess partitions grid into clusterSize×clusterSize clusters,
// detects border entrances, and precomputes intra-cluster A* edges between
// every pair of entrances sharing a cluster.
func Preprocess(grid *grid2d.Grid2D, clusterSize int32) (*HierarchicalGrid, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if clusterSize <= 0 {
		return nil, ErrInvalidClusterSize
	}

	hg := &HierarchicalGrid{
		grid:         grid,
		clusterSize:  clusterSize,
		edges:        make(map[nodeID][]abstractEdge),
		clusterNodes: make(map[clusterKey][]nodeID),
	}
	hg.buildAbstractNodes()
	hg.buildIntraClusterEdges()

	return hg, nil
}

func (hg *HierarchicalGrid) clusterOf(pos grid2d.GridPos) clusterKey {
	return clusterKey{cx: pos.X / hg.clusterSize, cy: pos.Y / hg.clusterSize}
}

func (hg *HierarchicalGrid) addNode(pos grid2d.GridPos) nodeID {
	id := nodeID(len(hg.nodePos))
	hg.nodePos = append(hg.nodePos, pos)
	hg.edges[id] = nil

	key := hg.clusterOf(pos)
	hg.clusterNodes[key] = append(hg.clusterNodes[key], id)

	return id
}

func (hg *HierarchicalGrid) addEdge(from, to nodeID, cost float32, path []grid2d.GridPos) {
	hg.edges[from] = append(hg.edges[from], abstractEdge{target: to, cost: cost, path: path})
}

// buildAbstractNodes scans every vertical and horizontal cluster border
// for contiguous passable spans (entrances) and places one node pair per
// span.
func (hg *HierarchicalGrid) buildAbstractNodes() {
	w, h, cs := hg.grid.Width(), hg.grid.Height(), hg.clusterSize
	clusterCols := (w + cs - 1) / cs
	clusterRows := (h + cs - 1) / cs

	for cy := int32(0); cy < clusterRows; cy++ {
		for cx := int32(0); cx < clusterCols-1; cx++ {
			px := (cx+1)*cs - 1
			pxNext := px + 1
			if pxNext >= w {
				continue
			}
			yStart := cy * cs
			yEnd := minInt32((cy+1)*cs, h)
			hg.detectEntrances(px, yStart, yEnd, true, pxNext)
		}
	}

	for cy := int32(0); cy < clusterRows-1; cy++ {
		for cx := int32(0); cx < clusterCols; cx++ {
			py := (cy+1)*cs - 1
			pyNext := py + 1
			if pyNext >= h {
				continue
			}
			xStart := cx * cs
			xEnd := minInt32((cx+1)*cs, w)
			hg.detectEntrances(py, xStart, xEnd, false, pyNext)
		}
	}
}

// detectEntrances scans a border line (fixed at fixedCoord, running across
// [rangeStart, rangeEnd)) for maximal spans where both the border cell and
// its neighbor across the border are passable.
func (hg *HierarchicalGrid) detectEntrances(fixedCoord, rangeStart, rangeEnd int32, vertical bool, neighborCoord int32) {
	start := int32(-1)

	passableAt := func(i int32) bool {
		var c1x, c1y, c2x, c2y int32
		if vertical {
			c1x, c1y, c2x, c2y = fixedCoord, i, neighborCoord, i
		} else {
			c1x, c1y, c2x, c2y = i, fixedCoord, i, neighborCoord
		}

		return !hg.grid.IsBlocked(c1x, c1y) && !hg.grid.IsBlocked(c2x, c2y)
	}

	for i := rangeStart; i < rangeEnd; i++ {
		if passableAt(i) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			hg.createEntrance(start, i-1, fixedCoord, vertical, neighborCoord)
			start = -1
		}
	}
	if start >= 0 {
		hg.createEntrance(start, rangeEnd-1, fixedCoord, vertical, neighborCoord)
	}
}

func (hg *HierarchicalGrid) createEntrance(spanStart, spanEnd, fixed int32, vertical bool, neighborFixed int32) {
	mid := (spanStart + spanEnd) / 2

	var pos1, pos2 grid2d.GridPos
	if vertical {
		pos1 = grid2d.GridPos{X: fixed, Y: mid}
		pos2 = grid2d.GridPos{X: neighborFixed, Y: mid}
	} else {
		pos1 = grid2d.GridPos{X: mid, Y: fixed}
		pos2 = grid2d.GridPos{X: mid, Y: neighborFixed}
	}

	id1 := hg.addNode(pos1)
	id2 := hg.addNode(pos2)
	hg.addEdge(id1, id2, 1.0, []grid2d.GridPos{pos1, pos2})
	hg.addEdge(id2, id1, 1.0, []grid2d.GridPos{pos2, pos1})
}

// processCluster runs intra-cluster A* between every pair of a cluster's
// abstract nodes, returning both directions of every reachable pair.
func (hg *HierarchicalGrid) processCluster(nodes []nodeID) []edgeRecord {
	if len(nodes) < 2 {
		return nil
	}

	h := heuristics.Manhattan[grid2d.GridPos]{}
	var local []edgeRecord
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			posA, posB := hg.nodePos[a], hg.nodePos[b]

			result := astar.Search[grid2d.GridPos](hg.grid, h, posA, posB)
			if result.Status != pathcore.Found {
				continue
			}

			rev := make([]grid2d.GridPos, len(result.Path))
			for k, p := range result.Path {
				rev[len(result.Path)-1-k] = p
			}
			local = append(local,
				edgeRecord{from: a, to: b, cost: result.Cost, path: result.Path},
				edgeRecord{from: b, to: a, cost: result.Cost, path: rev},
			)
		}
	}

	return local
}

// buildIntraClusterEdges dispatches processCluster across every cluster,
// in parallel once the cluster count exceeds clusterParallelThreshold, and
// merges the results into the shared edge map serially.
func (hg *HierarchicalGrid) buildIntraClusterEdges() {
	clusters := make([]clusterKey, 0, len(hg.clusterNodes))
	for k := range hg.clusterNodes {
		clusters = append(clusters, k)
	}

	results := make([][]edgeRecord, len(clusters))
	if len(clusters) > clusterParallelThreshold {
		var g errgroup.Group
		for i, c := range clusters {
			i, c := i, c
			g.Go(func() error {
				results[i] = hg.processCluster(hg.clusterNodes[c])
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, c := range clusters {
			results[i] = hg.processCluster(hg.clusterNodes[c])
		}
	}

	for _, rs := range results {
		for _, r := range rs {
			hg.addEdge(r.from, r.to, r.cost, r.path)
		}
	}
}

// abstractGraph adapts a HierarchicalGrid's precomputed edges plus a
// query's transient start/goal edge lists into a pathcore.Graph[nodeID],
// per the design guidance to compose via a lightweight adaptor rather than
// mutating the stored abstract graph.
type abstractGraph struct {
	hg         *HierarchicalGrid
	startEdges []transientEdge
	goalEdges  []transientEdge
}

func (g *abstractGraph) IsPassable(nodeID) bool { return true }

func (g *abstractGraph) Neighbors(node nodeID, visit func(nodeID, float32)) {
	switch node {
	case virtualStart:
		for _, e := range g.startEdges {
			visit(e.id, e.cost)
		}
	case virtualGoal:
		// No outgoing edges from the goal.
	default:
		for _, e := range g.hg.edges[node] {
			visit(e.target, e.cost)
		}
		for _, e := range g.goalEdges {
			if e.id == node {
				visit(virtualGoal, e.cost)
			}
		}
	}
}

func (g *abstractGraph) CanTraverse(nodeID, nodeID) bool { return true }

// abstractHeuristic estimates Euclidean distance from an abstract node's
// real GridPos to the query's real goal (spec §4.5 step 3).
type abstractHeuristic struct {
	hg   *HierarchicalGrid
	goal grid2d.GridPos
}

func (h *abstractHeuristic) Estimate(from, _ nodeID) float32 {
	if from == virtualStart || from == virtualGoal {
		return 0
	}
	pos := h.hg.nodePos[from]
	dx := float32(pos.X - h.goal.X)
	dy := float32(pos.Y - h.goal.Y)

	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

func (h *abstractHeuristic) IsAdmissible() bool { return true }

// FindPath answers a long-range query. If start and goal share a cluster,
// it falls back to direct A* on the base grid; otherwise it composes the
// precomputed abstract graph with transient start/goal edges and refines
// the resulting abstract path back to a concrete one.
func (hg *HierarchicalGrid) FindPath(start, goal grid2d.GridPos) pathcore.PathResult[grid2d.GridPos] {
	if !hg.grid.IsPassable(start) || !hg.grid.IsPassable(goal) {
		return pathcore.PathResult[grid2d.GridPos]{Status: pathcore.NotFound}
	}

	euclid := heuristics.Euclidean[grid2d.GridPos]{}

	if hg.clusterOf(start) == hg.clusterOf(goal) {
		return astar.Search[grid2d.GridPos](hg.grid, euclid, start, goal)
	}

	var startEdges []transientEdge
	for _, id := range hg.clusterNodes[hg.clusterOf(start)] {
		res := astar.Search[grid2d.GridPos](hg.grid, euclid, start, hg.nodePos[id])
		if res.Status == pathcore.Found {
			startEdges = append(startEdges, transientEdge{id: id, cost: res.Cost, path: res.Path})
		}
	}

	var goalEdges []transientEdge
	for _, id := range hg.clusterNodes[hg.clusterOf(goal)] {
		res := astar.Search[grid2d.GridPos](hg.grid, euclid, hg.nodePos[id], goal)
		if res.Status == pathcore.Found {
			goalEdges = append(goalEdges, transientEdge{id: id, cost: res.Cost, path: res.Path})
		}
	}

	ag := &abstractGraph{hg: hg, startEdges: startEdges, goalEdges: goalEdges}
	ah := &abstractHeuristic{hg: hg, goal: goal}

	abstractResult := astar.Search[nodeID](ag, ah, virtualStart, virtualGoal)
	if abstractResult.Status != pathcore.Found {
		return pathcore.PathResult[grid2d.GridPos]{
			Status:        pathcore.NotFound,
			NodesExpanded: abstractResult.NodesExpanded,
		}
	}

	ap := abstractResult.Path
	var fullPath []grid2d.GridPos
	for i := 0; i < len(ap)-1; i++ {
		cur, next := ap[i], ap[i+1]

		var segment []grid2d.GridPos
		switch {
		case cur == virtualStart:
			for _, e := range startEdges {
				if e.id == next {
					segment = e.path
					break
				}
			}
		case next == virtualGoal:
			for _, e := range goalEdges {
				if e.id == cur {
					segment = e.path
					break
				}
			}
		default:
			for _, e := range hg.edges[cur] {
				if e.target == next {
					segment = e.path
					break
				}
			}
		}

		if len(fullPath) == 0 {
			fullPath = append(fullPath, segment...)
		} else {
			fullPath = append(fullPath, segment[1:]...)
		}
	}

	return pathcore.PathResult[grid2d.GridPos]{
		Path:          fullPath,
		Cost:          abstractResult.Cost,
		NodesExpanded: abstractResult.NodesExpanded,
		Status:        pathcore.Found,
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
