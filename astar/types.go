// Package astar implements the A* informed-search kernel over any
// pathcore.Graph, plus a budgeted/resumable variant for incremental
// per-frame pathfinding.
//
// Complexity:
//
//   - Time:  O(E log V) in the worst case, where V is the number of nodes
//     reachable within the search horizon and E the edges examined.
//   - Space: O(V) for the best-g and parent maps; O(E) worst case for the
//     frontier under the lazy decrease-key strategy (duplicate entries are
//     pushed rather than updated in place, and skipped on pop if stale).
//
// Notes on implementation choices:
//
//   - Admissibility of the heuristic is the caller's responsibility
//     (Heuristic.IsAdmissible is advisory, not enforced) and is required
//     for optimality of the returned path.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries via a best-g staleness check on pop.
package astar

import (
	"errors"
	"time"
)

// Sentinel errors of the astar package. Search and NewBudgeted return no
// error values: a nil graph or heuristic makes Search return NotFound, and
// ErrBadMaxIterations and ErrBadTimeout are the panic messages of
// WithMaxIterations and WithTimeout.
var (
	// ErrNilGraph indicates a nil Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadMaxIterations indicates WithMaxIterations received a
	// non-positive value.
	ErrBadMaxIterations = errors.New("astar: max iterations must be positive")

	// ErrBadTimeout indicates WithTimeout received a non-positive value.
	ErrBadTimeout = errors.New("astar: timeout must be positive")
)

// TieBreaking selects how the frontier orders states whose f = g + h value
// is equal.
type TieBreaking int

const (
	// None breaks ties by insertion order only (FIFO among equal f).
	// CrossProduct is declared but unimplemented upstream and is treated
	// as an alias of None.
	None TieBreaking = iota
	// PreferHigherG pops the state with the larger g first among equal f,
	// biasing expansion toward nodes closer to the goal.
	PreferHigherG
	// PreferLowerG pops the state with the smaller g first among equal f.
	PreferLowerG
	// CrossProduct is reserved for a future tie-breaking strategy based on
	// the cross product of the start-goal and start-node vectors; it
	// currently behaves identically to None.
	CrossProduct
)

// Options configures a Search call.
//
// MaxIterations – optional cap on the number of frontier pops; 0 means no
// cap. Timeout – optional wall-clock budget for the whole search; zero
// means no cap. TieBreaking – secondary ordering among equal-f states.
type Options struct {
	MaxIterations int
	Timeout       time.Duration
	TieBreaking   TieBreaking
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the zero-cap configuration: no iteration limit,
// no timeout, TieBreaking=None.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		Timeout:       0,
		TieBreaking:   None,
	}
}

// WithMaxIterations caps the number of frontier pops. Must be positive;
// panics on a non-positive value, mirroring the teacher's functional
// option constructors.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIterations.Error())
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithTimeout caps the wall-clock duration of a search. Must be positive;
// panics on a non-positive value.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(ErrBadTimeout.Error())
	}
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithTieBreaking sets the secondary frontier ordering.
func WithTieBreaking(tb TieBreaking) Option {
	return func(o *Options) {
		o.TieBreaking = tb
	}
}
