package jps

import (
	"errors"
	"time"
)

// Sentinel errors for JPS option validation.
var (
	// ErrBadMaxIterations indicates WithMaxIterations received a
	// non-positive value.
	ErrBadMaxIterations = errors.New("jps: max iterations must be positive")

	// ErrBadTimeout indicates WithTimeout received a non-positive value.
	ErrBadTimeout = errors.New("jps: timeout must be positive")
)

// TieBreaking selects how the frontier orders states whose f = g + h value
// is equal. Identical vocabulary to astar.TieBreaking.
type TieBreaking int

const (
	// None breaks ties by insertion order only.
	None TieBreaking = iota
	// PreferHigherG pops the larger-g state first among equal f.
	PreferHigherG
	// PreferLowerG pops the smaller-g state first among equal f.
	PreferLowerG
	// CrossProduct is reserved; currently behaves identically to None.
	CrossProduct
)

// Options configures a Search call.
type Options struct {
	MaxIterations int
	Timeout       time.Duration
	TieBreaking   TieBreaking
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the zero-cap configuration.
func DefaultOptions() Options {
	return Options{TieBreaking: None}
}

// WithMaxIterations caps the number of frontier pops. Must be positive;
// panics on a non-positive value.
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
