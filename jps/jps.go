// Package jps implements Jump Point Search, a grid specialization of A*
// that prunes symmetric neighbor expansions and jumps directly to the next
// decision point (a "jump point": the goal, a forced-neighbor node, or a
// node whose shadow contains one), rather than expanding every grid cell.
// It returns an optimal-cost path under an admissible heuristic; the
// returned path may skip straight-line runs of grid cells, containing only
// jump points.
package jps

import (
	"container/heap"
	"math"
	"time"

	"github.com/katalvlaran/pathkit/grid2d"
	"github.com/katalvlaran/pathkit/pathcore"
)

var sqrt2 = float32(math.Sqrt2)

type state struct {
	node   grid2d.GridPos
	g, f   float32
	tieVal float32
	seq    int
}

type frontier struct {
	items []*state
	tb    TieBreaking
}

func (h frontier) Len() int { return len(h.items) }

func (h frontier) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	switch h.tb {
	case PreferHigherG:
		if a.tieVal != b.tieVal {
			return a.tieVal > b.tieVal
		}
	case PreferLowerG:
		if a.tieVal != b.tieVal {
			return a.tieVal < b.tieVal
		}
	}
	return a.seq < b.seq
}

func (h frontier) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *frontier) Push(x any) { h.items = append(h.items, x.(*state)) }

func (h *frontier) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}

// Search runs Jump Point Search over grid from start to goal.
func Search(grid *grid2d.Grid2D, heuristic pathcore.Heuristic[grid2d.GridPos], start, goal grid2d.GridPos, opts ...Option) pathcore.PathResult[grid2d.GridPos] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if grid == nil || heuristic == nil {
		return pathcore.PathResult[grid2d.GridPos]{Status: pathcore.NotFound}
	}
	if !grid.IsPassable(start) || !grid.IsPassable(goal) {
		return pathcore.PathResult[grid2d.GridPos]{Status: pathcore.NotFound}
	}

	bestG := map[grid2d.GridPos]float32{start: 0}
	parent := map[grid2d.GridPos]grid2d.GridPos{}
	seq := 0

	fr := &frontier{tb: cfg.TieBreaking}
	heap.Init(fr)
	heap.Push(fr, &state{node: start, g: 0, f: heuristic.Estimate(start, goal), seq: seq})
	seq++

	startedAt := time.Now()
	iterations := 0
	nodesExpanded := 0

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*state)
		iterations++

		if cfg.MaxIterations > 0 && iterations > cfg.MaxIterations {
			return reconstruct(parent, start, cur.node, bestG[cur.node], nodesExpanded, pathcore.PartialMaxIter)
		}
		if cfg.Timeout > 0 && time.Since(startedAt) > cfg.Timeout {
			return reconstruct(parent, start, cur.node, bestG[cur.node], nodesExpanded, pathcore.PartialTimeout)
		}

		if cur.node == goal {
			return reconstruct(parent, start, goal, cur.g, nodesExpanded, pathcore.Found)
		}

		if known, ok := bestG[cur.node]; ok && known < cur.g {
			continue
		}

		nodesExpanded++

		parentNode, hasParent := parent[cur.node]
		var parentPtr *grid2d.GridPos
		if hasParent {
			parentPtr = &parentNode
		}

		for _, neighbor := range pruneNeighbors(grid, cur.node, parentPtr) {
			dx := sign(neighbor.X - cur.node.X)
			dy := sign(neighbor.Y - cur.node.Y)
			jp, ok := jump(grid, cur.node, dx, dy, goal)
			if !ok {
				continue
			}

			tentativeG := cur.g + jumpDistance(cur.node, jp)
			if known, has := bestG[jp]; has && !(tentativeG < known) {
				continue
			}
			bestG[jp] = tentativeG
			parent[jp] = cur.node
			h := heuristic.Estimate(jp, goal)
			heap.Push(fr, &state{node: jp, g: tentativeG, f: tentativeG + h, tieVal: tentativeG, seq: seq})
			seq++
		}
	}

	return pathcore.PathResult[grid2d.GridPos]{Status: pathcore.NotFound, NodesExpanded: nodesExpanded}
}

func jumpDistance(a, b grid2d.GridPos) float32 {
	dx := absf(float32(b.X - a.X))
	dy := absf(float32(b.Y - a.Y))
	minD, maxD := dx, dy
	if dx > dy {
		minD, maxD = dy, dx
	}
	return (sqrt2-1)*minD + maxD
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

var allDirs = [8][2]int32{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// pruneNeighbors returns the symmetry-reduced set of neighbor directions
// worth jumping from, given current and its parent (nil for the start
// node, which considers all 8 directions).
func pruneNeighbors(grid *grid2d.Grid2D, current grid2d.GridPos, parent *grid2d.GridPos) []grid2d.GridPos {
	var out []grid2d.GridPos

	if parent == nil {
		for _, d := range allDirs {
			nx, ny := current.X+d[0], current.Y+d[1]
			if grid.IsBlocked(nx, ny) {
				continue
			}
			if d[0] != 0 && d[1] != 0 && !grid.DiagonalAllowed(current, d[0], d[1]) {
				continue
			}
			out = append(out, grid2d.GridPos{X: nx, Y: ny})
		}
		return out
	}

	dx := sign(current.X - parent.X)
	dy := sign(current.Y - parent.Y)

	walkable := func(x, y int32) bool { return !grid.IsBlocked(x, y) }

	switch {
	case dx != 0 && dy != 0:
		if walkable(current.X+dx, current.Y+dy) && grid.DiagonalAllowed(current, dx, dy) {
			out = append(out, grid2d.GridPos{X: current.X + dx, Y: current.Y + dy})
		}
		if walkable(current.X+dx, current.Y) {
			out = append(out, grid2d.GridPos{X: current.X + dx, Y: current.Y})
		}
		if walkable(current.X, current.Y+dy) {
			out = append(out, grid2d.GridPos{X: current.X, Y: current.Y + dy})
		}
		if !walkable(current.X-dx, current.Y) && walkable(current.X-dx, current.Y+dy) && grid.DiagonalAllowed(current, -dx, dy) {
			out = append(out, grid2d.GridPos{X: current.X - dx, Y: current.Y + dy})
		}
		if !walkable(current.X, current.Y-dy) && walkable(current.X+dx, current.Y-dy) && grid.DiagonalAllowed(current, dx, -dy) {
			out = append(out, grid2d.GridPos{X: current.X + dx, Y: current.Y - dy})
		}
	case dx != 0:
		if walkable(current.X+dx, current.Y) {
			out = append(out, grid2d.GridPos{X: current.X + dx, Y: current.Y})
		}
		if !walkable(current.X, current.Y+1) && walkable(current.X+dx, current.Y+1) && grid.DiagonalAllowed(current, dx, 1) {
			out = append(out, grid2d.GridPos{X: current.X + dx, Y: current.Y + 1})
		}
		if !walkable(current.X, current.Y-1) && walkable(current.X+dx, current.Y-1) && grid.DiagonalAllowed(current, dx, -1) {
			out = append(out, grid2d.GridPos{X: current.X + dx, Y: current.Y - 1})
		}
	default:
		if walkable(current.X, current.Y+dy) {
			out = append(out, grid2d.GridPos{X: current.X, Y: current.Y + dy})
		}
		if !walkable(current.X+1, current.Y) && walkable(current.X+1, current.Y+dy) && grid.DiagonalAllowed(current, 1, dy) {
			out = append(out, grid2d.GridPos{X: current.X + 1, Y: current.Y + dy})
		}
		if !walkable(current.X-1, current.Y) && walkable(current.X-1, current.Y+dy) && grid.DiagonalAllowed(current, -1, dy) {
			out = append(out, grid2d.GridPos{X: current.X - 1, Y: current.Y + dy})
		}
	}

	return out
}

// jump recursively walks in direction (dx, dy) from current until it finds
// a jump point: the goal, a node with a forced neighbor, or (for a
// diagonal step) a node whose horizontal/vertical shadow contains one.
func jump(grid *grid2d.Grid2D, current grid2d.GridPos, dx, dy int32, goal grid2d.GridPos) (grid2d.GridPos, bool) {
	nextX, nextY := current.X+dx, current.Y+dy
	if grid.IsBlocked(nextX, nextY) {
		return grid2d.GridPos{}, false
	}
	if dx != 0 && dy != 0 && !grid.DiagonalAllowed(current, dx, dy) {
		return grid2d.GridPos{}, false
	}

	next := grid2d.GridPos{X: nextX, Y: nextY}
	if next == goal {
		return next, true
	}

	walkable := func(x, y int32) bool { return !grid.IsBlocked(x, y) }

	switch {
	case dx != 0 && dy != 0:
		if (!walkable(nextX-dx, nextY) && walkable(nextX-dx, nextY+dy)) ||
			(!walkable(nextX, nextY-dy) && walkable(nextX+dx, nextY-dy)) {
			return next, true
		}
		if _, ok := jump(grid, next, dx, 0, goal); ok {
			return next, true
		}
		if _, ok := jump(grid, next, 0, dy, goal); ok {
			return next, true
		}
	case dx != 0:
		if (!walkable(nextX, nextY+1) && walkable(nextX+dx, nextY+1)) ||
			(!walkable(nextX, nextY-1) && walkable(nextX+dx, nextY-1)) {
			return next, true
		}
	default:
		if (!walkable(nextX+1, nextY) && walkable(nextX+1, nextY+dy)) ||
			(!walkable(nextX-1, nextY) && walkable(nextX-1, nextY+dy)) {
			return next, true
		}
	}

	return jump(grid, next, dx, dy, goal)
}

func reconstruct(parent map[grid2d.GridPos]grid2d.GridPos, start, terminus grid2d.GridPos, cost float32, nodesExpanded int, status pathcore.PathStatus) pathcore.PathResult[grid2d.GridPos] {
	var path []grid2d.GridPos
	cur := terminus
	for {
		path = append(path, cur)
		if cur == start {
			break
		}
		p, ok := parent[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return pathcore.PathResult[grid2d.GridPos]{Path: path, Cost: cost, NodesExpanded: nodesExpanded, Status: status}
}
