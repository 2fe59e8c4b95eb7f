// Package hpa exists for maps large enough that a single concrete A* query
// corner-to-corner would expand too many nodes: preprocess once, then
// answer many long-range queries by searching a much smaller abstract
// graph of cluster-border entrances.
package hpa
