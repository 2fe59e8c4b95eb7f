package pathcore

import "sync"

// GenericGraph is a thread-safe, string-keyed weighted graph for callers
// whose topology is neither a grid nor a navmesh (test fixtures, ad-hoc
// waypoint graphs, graphs deserialized from some external source). It
// satisfies Graph[string] so every kernel in pathkit (astar, thetastar,
// jps's grid specialization excluded) can search it directly.
//
// Mutation is separated from search: GenericGraph may be safely mutated
// between queries (AddEdge, AddUndirectedEdge, SetBlocked, SetLineOfSight)
// but, per pathkit's lifecycle rule,
// must not be mutated concurrently with a running search over it.
type GenericGraph struct {
	mu   sync.RWMutex
	adj  map[string]map[string]float32 // from -> to -> edge cost
	los  map[[2]string]bool            // optional explicit line-of-sight overrides
	blocked map[string]bool
}

// NewGenericGraph returns an empty, directed-by-default weighted graph.
func NewGenericGraph() *GenericGraph {
	return &GenericGraph{
		adj:     make(map[string]map[string]float32),
		los:     make(map[[2]string]bool),
		blocked: make(map[string]bool),
	}
}

// AddEdge inserts a directed edge from->to with the given non-negative cost,
// auto-vivifying both endpoints. Calling AddEdge again for the same pair
// overwrites the cost (last write wins).
func (g *GenericGraph) AddEdge(from, to string, cost float32) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from]; !ok {
		g.adj[from] = make(map[string]float32)
	}
	if _, ok := g.adj[to]; !ok {
		g.adj[to] = make(map[string]float32)
	}
	g.adj[from][to] = cost
}

// AddUndirectedEdge inserts edges in both directions with the same cost.
func (g *GenericGraph) AddUndirectedEdge(a, b string, cost float32) {
	g.AddEdge(a, b, cost)
	g.AddEdge(b, a, cost)
}

// SetBlocked marks a node passable or impassable. The node need not have
// any edges; SetBlocked records only the blocked flag and adds no edges.
func (g *GenericGraph) SetBlocked(node string, blocked bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if blocked {
		g.blocked[node] = true
	} else {
		delete(g.blocked, node)
	}
}

// SetLineOfSight overrides CanTraverse(a, b) to the given value. Without an
// override, CanTraverse falls back to "a direct edge a->b exists", which is
// not a real line-of-sight test but keeps Theta*/smoothing usable on graphs
// that have no geometric embedding.
func (g *GenericGraph) SetLineOfSight(a, b string, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.los[[2]string{a, b}] = ok
}

// IsPassable implements Graph[string].
func (g *GenericGraph) IsPassable(node string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return !g.blocked[node]
}

// Neighbors implements Graph[string]. It iterates the node's adjacency in
// map order — callers that require determinism between runs should route
// through a kernel's deterministic tie-breaking rather than relying on
// neighbor enumeration order.
func (g *GenericGraph) Neighbors(node string, visit func(neighbor string, edgeCost float32)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.blocked[node] {
		return
	}
	for to, cost := range g.adj[node] {
		if g.blocked[to] {
			continue
		}
		visit(to, cost)
	}
}

// CanTraverse implements Graph[string]. It consults an explicit override if
// one was set via SetLineOfSight, otherwise falls back to direct
// adjacency.
func (g *GenericGraph) CanTraverse(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if ok, has := g.los[[2]string{from, to}]; has {
		return ok
	}
	_, hasEdge := g.adj[from][to]
	return hasEdge
}
