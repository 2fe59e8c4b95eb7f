package astar

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/pathkit/pathcore"
)

// state is one entry in the A* frontier: a candidate node reached at cost
// g, with total estimated cost f = g + h. seq is an insertion counter that
// breaks all remaining ties deterministically.
type state[N comparable] struct {
	node   N
	g, f   float32
	tieVal float32
	seq    int
}

// frontier is a binary min-heap of *state[N], ordered primarily by f, then
// by the configured tie-breaker, then by insertion order. Using duplicate
// pushes instead of decrease-key (the "lazy deletion" pattern): a node can
// appear more than once; staleness is checked against bestG on pop.
type frontier[N comparable] struct {
	items []*state[N]
	tb    TieBreaking
}

func (h frontier[N]) Len() int { return len(h.items) }

func (h frontier[N]) Less(i, j int) bool {
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

func (h frontier[N]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *frontier[N]) Push(x any) { h.items = append(h.items, x.(*state[N])) }

func (h *frontier[N]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}

// Search runs A* from start to goal over graph using heuristic, returning a
// PathResult. It never errors: a nil graph or heuristic, or start/goal
// outside the graph, surfaces as Status=NotFound with an empty path.
func Search[N comparable](graph pathcore.Graph[N], heuristic pathcore.Heuristic[N], start, goal N, opts ...Option) pathcore.PathResult[N] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if graph == nil || heuristic == nil {
		return pathcore.PathResult[N]{Status: pathcore.NotFound}
	}
	if !graph.IsPassable(start) || !graph.IsPassable(goal) {
		return pathcore.PathResult[N]{Status: pathcore.NotFound}
	}

	bestG := map[N]float32{start: 0}
	parent := map[N]N{}
	seq := 0

	fr := &frontier[N]{tb: cfg.TieBreaking}
	heap.Init(fr)
	heap.Push(fr, &state[N]{node: start, g: 0, f: heuristic.Estimate(start, goal), tieVal: 0, seq: seq})
	seq++

	startedAt := time.Now()
	iterations := 0
	nodesExpanded := 0

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*state[N])
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
			continue // stale: a cheaper path to this node was already found
		}

		nodesExpanded++

		graph.Neighbors(cur.node, func(neighbor N, edgeCost float32) {
			tentativeG := cur.g + edgeCost
			if known, ok := bestG[neighbor]; ok && !(tentativeG < known) {
				return
			}
			bestG[neighbor] = tentativeG
			parent[neighbor] = cur.node
			h := heuristic.Estimate(neighbor, goal)
			heap.Push(fr, &state[N]{node: neighbor, g: tentativeG, f: tentativeG + h, tieVal: tentativeG, seq: seq})
			seq++
		})
	}

	return pathcore.PathResult[N]{Status: pathcore.NotFound, NodesExpanded: nodesExpanded}
}

// reconstruct walks the parent map backward from terminus to start and
// reverses it into a forward path.
func reconstruct[N comparable](parent map[N]N, start, terminus N, cost float32, nodesExpanded int, status pathcore.PathStatus) pathcore.PathResult[N] {
	var path []N
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

	return pathcore.PathResult[N]{Path: path, Cost: cost, NodesExpanded: nodesExpanded, Status: status}
}
