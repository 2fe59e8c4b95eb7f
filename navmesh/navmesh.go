package navmesh

import (
	"math"

	"github.com/katalvlaran/pathkit/funnel"
)

// NavMesh is a triangle mesh stored as three flat buffers: Vertices
// (stride 3: x, y, z), Polygons (triangle vertex indices, stride 3), and
// Adjacency (adjacent-polygon-per-edge indices, stride 3, -1 = boundary
// edge). Polygon i's three edges are (v[0],v[1]), (v[1],v[2]), (v[2],v[0]);
// Adjacency[i*3+k] names the polygon sharing edge k, or -1 if none.
type NavMesh struct {
	Vertices  []float32
	Polygons  []uint32
	Adjacency []int32
}

// New validates and returns a NavMesh. Polygons and Neighbors must each be
// a non-empty multiple of 3 of equal triangle count, and every polygon
// vertex index and non-boundary neighbor index must be in range.
func New(vertices []float32, polygons []uint32, neighbors []int32) (*NavMesh, error) {
	if len(polygons) == 0 || len(polygons)%3 != 0 || len(neighbors) != len(polygons) {
		return nil, ErrMalformedMesh
	}
	numVerts := uint32(len(vertices) / 3)
	numPolys := int32(len(polygons) / 3)
	for _, vi := range polygons {
		if vi >= numVerts {
			return nil, ErrMalformedMesh
		}
	}
	for _, ni := range neighbors {
		if ni != -1 && (ni < 0 || ni >= numPolys) {
			return nil, ErrMalformedMesh
		}
	}

	return &NavMesh{Vertices: vertices, Polygons: polygons, Adjacency: neighbors}, nil
}

// GetVertex returns the (x, y, z) of vertex index.
func (m *NavMesh) GetVertex(index uint32) funnel.Vec3 {
	i := int(index) * 3
	return funnel.Vec3{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]}
}

// Centroid returns the centroid of polygon polyIndex.
func (m *NavMesh) Centroid(polyIndex uint32) funnel.Vec3 {
	i := int(polyIndex) * 3
	v1 := m.GetVertex(m.Polygons[i])
	v2 := m.GetVertex(m.Polygons[i+1])
	v3 := m.GetVertex(m.Polygons[i+2])

	return funnel.Vec3{
		(v1[0] + v2[0] + v3[0]) / 3.0,
		(v1[1] + v2[1] + v3[1]) / 3.0,
		(v1[2] + v2[2] + v3[2]) / 3.0,
	}
}

func distance(a, b funnel.Vec3) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// GetPortals converts a path of polygon indices into the portal sequence
// the funnel package's StringPull consumes, bookended by degenerate
// start/end portals at startPos and endPos.
func (m *NavMesh) GetPortals(path []uint32, startPos, endPos funnel.Vec3) []funnel.Portal {
	portals := make([]funnel.Portal, 0, len(path)+1)
	portals = append(portals, funnel.Portal{Left: startPos, Right: startPos})

	for i := 0; i < len(path)-1; i++ {
		left, right, ok := m.findSharedEdge(path[i], path[i+1])
		if ok {
			portals = append(portals, funnel.Portal{Left: left, Right: right})
		}
	}

	portals = append(portals, funnel.Portal{Left: endPos, Right: endPos})

	return portals
}

// findSharedEdge returns the (left, right) vertices of the edge shared by
// p1 and p2, oriented so that crossing it while leaving p1 keeps left on
// the left and right on the right.
func (m *NavMesh) findSharedEdge(p1, p2 uint32) (left, right funnel.Vec3, ok bool) {
	startIdx := int(p1) * 3
	for i := 0; i < 3; i++ {
		if m.Adjacency[startIdx+i] == int32(p2) {
			v1Idx := m.Polygons[startIdx+i]
			v2Idx := m.Polygons[startIdx+(i+1)%3]
			v1 := m.GetVertex(v1Idx)
			v2 := m.GetVertex(v2Idx)
			// v1->v2 is p1's CCW edge; crossing it to leave p1 puts v1 on
			// the right and v2 on the left.
			return v2, v1, true
		}
	}
	return funnel.Vec3{}, funnel.Vec3{}, false
}

// GetPolyAtPos finds the polygon containing pos, tested in the XZ plane.
// Brute force, O(numPolys); fine for the mesh sizes this library targets.
func (m *NavMesh) GetPolyAtPos(pos funnel.Vec3) (uint32, bool) {
	numPolys := len(m.Polygons) / 3
	for i := 0; i < numPolys; i++ {
		idx := i * 3
		v1 := m.GetVertex(m.Polygons[idx])
		v2 := m.GetVertex(m.Polygons[idx+1])
		v3 := m.GetVertex(m.Polygons[idx+2])
		if isPointInTriangle(pos, v1, v2, v3) {
			return uint32(i), true
		}
	}
	return 0, false
}

func triSign(p1, p2, p3 funnel.Vec3) float32 {
	return (p1[0]-p3[0])*(p2[2]-p3[2]) - (p2[0]-p3[0])*(p1[2]-p3[2])
}

// isPointInTriangle tests containment in the XZ plane using non-strict
// sign comparisons, so points exactly on an edge are accepted.
func isPointInTriangle(p, a, b, c funnel.Vec3) bool {
	d1 := triSign(p, a, b)
	d2 := triSign(p, b, c)
	d3 := triSign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// IsPassable implements pathcore.Graph[uint32]: every in-range polygon
// index is passable; NavMesh carries no per-polygon blocking.
func (m *NavMesh) IsPassable(node uint32) bool {
	return int(node)*3 < len(m.Polygons)
}

// Neighbors implements pathcore.Graph[uint32]. Edge cost approximates
// traversal cost as the distance between the two polygons' centroids.
func (m *NavMesh) Neighbors(node uint32, visit func(neighbor uint32, edgeCost float32)) {
	startIndex := int(node) * 3
	if startIndex >= len(m.Adjacency) {
		return
	}

	centerCurrent := m.Centroid(node)

	for i := 0; i < 3; i++ {
		neighborIdx := m.Adjacency[startIndex+i]
		if neighborIdx == -1 {
			continue
		}
		neighbor := uint32(neighborIdx)
		cost := distance(centerCurrent, m.Centroid(neighbor))
		visit(neighbor, cost)
	}
}

// CanTraverse implements pathcore.Graph[uint32] as direct adjacency: two
// polygons are mutually visible if they share an edge. This is a coarse
// stand-in for true geometric line-of-sight; pathkit's Theta*/smoothing
// over navmeshes is expected to operate at the funnel/string-pull stage
// instead, where true portal geometry is available.
func (m *NavMesh) CanTraverse(from, to uint32) bool {
	_, _, ok := m.findSharedEdge(from, to)
	return ok
}
