package navmesh_test

import (
	"testing"

	"github.com/katalvlaran/pathkit/funnel"
	"github.com/katalvlaran/pathkit/navmesh"
	"github.com/stretchr/testify/require"
)

// twoTriangles builds a simple quad split into two triangles sharing the
// diagonal edge (0,2):
//
//	0---1
//	| \ |
//	3---2
func twoTriangles(t *testing.T) *navmesh.NavMesh {
	t.Helper()
	vertices := []float32{
		0, 0, 0, // 0
		1, 0, 0, // 1
		1, 0, 1, // 2
		0, 0, 1, // 3
	}
	// poly0 = (0,1,2) edges (0,1)/(1,2)/(2,0); poly1 = (0,2,3) edges
	// (0,2)/(2,3)/(3,0). The shared edge is {0,2}: poly0's edge index 2
	// ((2,0)) and poly1's edge index 0 ((0,2)).
	polygons := []uint32{0, 1, 2, 0, 2, 3}
	neighbors := []int32{-1, -1, 1, 0, -1, -1}

	m, err := navmesh.New(vertices, polygons, neighbors)
	require.NoError(t, err)
	return m
}

func TestNew_RejectsMalformedBuffers(t *testing.T) {
	_, err := navmesh.New(nil, []uint32{0, 1}, []int32{-1, -1})
	require.ErrorIs(t, err, navmesh.ErrMalformedMesh)

	_, err = navmesh.New([]float32{0, 0, 0}, []uint32{0, 5, 0}, []int32{-1, -1, -1})
	require.ErrorIs(t, err, navmesh.ErrMalformedMesh)
}

func TestNavMesh_Neighbors(t *testing.T) {
	m := twoTriangles(t)

	var seen []uint32
	m.Neighbors(0, func(n uint32, cost float32) {
		seen = append(seen, n)
		require.Greater(t, cost, float32(0))
	})
	require.Equal(t, []uint32{1}, seen)
}

func TestNavMesh_CanTraverseAdjacentPolygons(t *testing.T) {
	m := twoTriangles(t)
	require.True(t, m.CanTraverse(0, 1))
	require.True(t, m.CanTraverse(1, 0))
}

func TestNavMesh_IsPassable(t *testing.T) {
	m := twoTriangles(t)
	require.True(t, m.IsPassable(0))
	require.True(t, m.IsPassable(1))
	require.False(t, m.IsPassable(2))
}

func TestNavMesh_GetPolyAtPos(t *testing.T) {
	m := twoTriangles(t)

	poly, ok := m.GetPolyAtPos(funnel.Vec3{0.25, 0, 0.25})
	require.True(t, ok)
	require.Equal(t, uint32(0), poly)

	_, ok = m.GetPolyAtPos(funnel.Vec3{10, 0, 10})
	require.False(t, ok)
}

func TestNavMesh_GetPortals(t *testing.T) {
	m := twoTriangles(t)

	start := funnel.Vec3{0.1, 0, 0.1}
	end := funnel.Vec3{0.9, 0, 0.9}
	portals := m.GetPortals([]uint32{0, 1}, start, end)

	require.Len(t, portals, 3)
	require.Equal(t, start, portals[0].Left)
	require.Equal(t, start, portals[0].Right)
	require.Equal(t, end, portals[2].Left)
	require.Equal(t, end, portals[2].Right)
	// Shared edge between poly 0 and 1 is {0,2}: poly0 crosses it via edge
	// (2,0), so leaving poly0 puts vertex 0 on the left, vertex 2 on the right.
	require.Equal(t, m.GetVertex(0), portals[1].Left)
	require.Equal(t, m.GetVertex(2), portals[1].Right)
}
