// Package funnel implements the Simple Stupid Funnel Algorithm
// (string-pulling): given a corridor of polygons expressed as a sequence
// of shared-edge portals, it produces the shortest path through that
// corridor — the taut string a traveler would pull straight rather than
// hugging portal midpoints.
package funnel

// Vec3 is a point or vector in navmesh space.
type Vec3 = [3]float32

// Portal is an oriented edge shared between two adjacent polygons, carried
// as (Left, Right) vertices relative to the direction of travel. The first
// and last portals in a StringPull call are degenerate (Left == Right),
// representing the start and goal points.
type Portal struct {
	Left, Right Vec3
}

// triArea2D returns the signed area of the triangle (a, b, c) in the XZ
// plane. Drawn with x to the right and z up, it is negative when c is left
// of the vector a->b and positive when right; Portal's Left and Right use
// the same view.
func triArea2D(a, b, c Vec3) float32 {
	ax := b[0] - a[0]
	az := b[2] - a[2]
	bx := c[0] - a[0]
	bz := c[2] - a[2]
	return bx*az - ax*bz
}

// StringPull runs the funnel algorithm over portals (which must start and
// end with a degenerate start/goal portal, as navmesh.GetPortals
// produces) and returns the shortest path through the portal corridor.
func StringPull(portals []Portal) []Vec3 {
	path := make([]Vec3, 0, len(portals))
	if len(portals) == 0 {
		return path
	}

	apex := portals[0].Left
	portalLeft := portals[0].Left
	portalRight := portals[0].Right

	leftIndex := 0
	rightIndex := 0

	path = append(path, apex)

	i := 1
	for i < len(portals) {
		left := portals[i].Left
		right := portals[i].Right

		if triArea2D(apex, portalRight, right) <= 0.0 {
			if apex == portalRight || triArea2D(apex, portalLeft, right) > 0.0 {
				portalRight = right
				rightIndex = i
			} else {
				apex = portalLeft
				path = append(path, apex)

				portalLeft = apex
				portalRight = apex

				i = leftIndex + 1
				leftIndex = i
				rightIndex = i
				continue
			}
		}

		if triArea2D(apex, portalLeft, left) >= 0.0 {
			if apex == portalLeft || triArea2D(apex, portalRight, left) < 0.0 {
				portalLeft = left
				leftIndex = i
			} else {
				apex = portalRight
				path = append(path, apex)

				portalLeft = apex
				portalRight = apex

				i = rightIndex + 1
				leftIndex = i
				rightIndex = i
				continue
			}
		}

		i++
	}

	last := portals[len(portals)-1]
	if path[len(path)-1] != last.Left {
		path = append(path, last.Left)
	}

	return path
}
