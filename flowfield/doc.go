// Package flowfield is intended for many-agent crowds converging on a
// single goal: compute the field once, then every agent looks up its own
// cell's direction in O(1) instead of running its own search.
package flowfield
