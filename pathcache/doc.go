// Package pathcache is a small TTL cache for pathfinding results, meant to
// sit in front of astar.Search (or any other kernel) when the same
// (start, goal) query recurs across frames faster than the underlying
// graph changes.
package pathcache
