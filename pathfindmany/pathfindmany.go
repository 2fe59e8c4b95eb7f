// Package pathfindmany fans independent pathfinding queries out across
// goroutines and collects their results back in input order. Each query
// owns its own transient search state; the graph and heuristic are
// read-only and safely shared across the fan-out.
package pathfindmany

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/pathcore"
)

// Query is one (start, goal) pair to search for.
type Query[N comparable] struct {
	Start, Goal N
}

// Search runs astar.Search for every query concurrently and returns the
// results in the same order as queries. Nothing about one query's search
// depends on another's; the only shared state is the read-only graph and
// heuristic.
func Search[N comparable](
	graph pathcore.Graph[N],
	heuristic pathcore.Heuristic[N],
	queries []Query[N],
	opts ...astar.Option,
) []pathcore.PathResult[N] {
	results := make([]pathcore.PathResult[N], len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			results[i] = astar.Search[N](graph, heuristic, q.Start, q.Goal, opts...)
			return nil
		})
	}
	_ = g.Wait() // astar.Search never errors; Wait only joins the goroutines.

	return results
}
