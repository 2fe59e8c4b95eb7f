// Package smoothing shortens an already-found path by greedily skipping
// intermediate nodes whenever a direct line-of-sight shortcut exists,
// without re-running a search.
package smoothing

import "github.com/katalvlaran/pathkit/pathcore"

// Smooth returns the shortest subsequence of path whose consecutive pairs
// are all line-of-sight reachable via graph.CanTraverse. It scans from the
// path's end backward from each committed index, looking for the furthest
// node still reachable in a straight shot, so the result is never longer
// than the input and is itself a valid path over graph. Paths of length 0
// or 1 are returned unchanged.
func Smooth[N comparable](graph pathcore.Graph[N], path []N) []N {
	if graph == nil || len(path) <= 1 {
		return path
	}

	out := make([]N, 0, len(path))
	out = append(out, path[0])

	i := 0
	for i < len(path)-1 {
		j := len(path) - 1
		for j > i+1 && !graph.CanTraverse(path[i], path[j]) {
			j--
		}
		out = append(out, path[j])
		i = j
	}

	return out
}
