// Package grid2d implements a 2D grid topology: a row-major array of
// blocked/passable cells with a configurable diagonal movement policy,
// satisfying pathcore.Graph[GridPos] and heuristics.Position.
//
// Four diagonal policies are supported (Never, Always, IfNoObstacle,
// OnlyIfBothOpen); IfNoObstacle and OnlyIfBothOpen differ in how strictly
// they prevent cutting across a blocked corner. Diagonal edges cost
// sqrt(2) times the destination cell's multiplier.
package grid2d
