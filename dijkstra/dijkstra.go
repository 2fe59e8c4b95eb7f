// Package dijkstra computes single-source shortest-path distances to every
// node reachable from a source over a pathcore.Graph, using a lazy
// decrease-key min-heap. It generalizes the classic fixed-key (string)
// Dijkstra into one parameterized by any comparable node type, so the
// flowfield package's integration pass can reuse it directly over
// Grid2D/Grid3D instead of re-deriving the same relaxation loop.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized (visited) at most once: V extractions from
//     the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E
//     pushes.
//   - Each heap operation costs O(log N), N <= V + E, simplified to O(log V).
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries once a node is finalized.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/pathkit/pathcore"
)

// Result is the output of a single-source run: Dist maps every node
// reached from the source to its shortest distance; nodes absent from
// Dist were unreachable.
type Result[N comparable] struct {
	Dist map[N]float32
	Prev map[N]N
}

type nodeItem[N comparable] struct {
	node N
	dist float32
}

type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int            { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[N]) Push(x any)         { *pq = append(*pq, x.(*nodeItem[N])) }
func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// From runs Dijkstra from source over graph, visiting every node reachable
// within maxDistance (pass +Inf for no cap), and returns the distance and
// predecessor maps. A nil graph returns an empty Result.
func From[N comparable](graph pathcore.Graph[N], source N, maxDistance float32) Result[N] {
	dist := make(map[N]float32)
	prev := make(map[N]N)
	if graph == nil || !graph.IsPassable(source) {
		return Result[N]{Dist: dist, Prev: prev}
	}

	visited := make(map[N]bool)
	pq := make(nodePQ[N], 0, 16)
	heap.Init(&pq)

	dist[source] = 0
	heap.Push(&pq, &nodeItem[N]{node: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[N])
		u, d := item.node, item.dist

		if visited[u] {
			continue
		}
		if d > maxDistance {
			break
		}
		visited[u] = true

		graph.Neighbors(u, func(v N, edgeCost float32) {
			newDist := d + edgeCost
			if newDist > maxDistance {
				return
			}
			if known, ok := dist[v]; ok && newDist >= known {
				return
			}
			dist[v] = newDist
			prev[v] = u
			heap.Push(&pq, &nodeItem[N]{node: v, dist: newDist})
		})
	}

	return Result[N]{Dist: dist, Prev: prev}
}
