package pathcore_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/pathcore"
	"github.com/stretchr/testify/require"
)

func TestGenericGraph_NeighborsAndPassable(t *testing.T) {
	g := pathcore.NewGenericGraph()
	g.AddUndirectedEdge("A", "B", 1.0)
	g.AddEdge("B", "C", 2.5)

	require.True(t, g.IsPassable("A"))

	var seen []string
	g.Neighbors("B", func(n string, cost float32) {
		seen = append(seen, n)
		if n == "C" {
			require.InDelta(t, 2.5, cost, 1e-6)
		}
	})
	require.ElementsMatch(t, []string{"A", "C"}, seen)
}

func TestGenericGraph_BlockedNodeHasNoNeighbors(t *testing.T) {
	g := pathcore.NewGenericGraph()
	g.AddUndirectedEdge("A", "B", 1.0)
	g.SetBlocked("B", true)

	require.False(t, g.IsPassable("B"))

	var seen []string
	g.Neighbors("A", func(n string, _ float32) { seen = append(seen, n) })
	require.Empty(t, seen, "blocked neighbor must not be visited")
}

func TestGenericGraph_CanTraverseFallsBackToAdjacency(t *testing.T) {
	g := pathcore.NewGenericGraph()
	g.AddEdge("A", "B", 1.0)

	require.True(t, g.CanTraverse("A", "B"))
	require.False(t, g.CanTraverse("B", "A"))

	g.SetLineOfSight("B", "A", true)
	require.True(t, g.CanTraverse("B", "A"))
}
