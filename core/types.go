// Package core defines the Node, Edge, and Graph types for the dfstep
// lesson graphs, and the validating constructor that freezes them.
//
// A Graph is built once from node and edge slices and never mutated
// afterwards; every query returns fresh allocations, so callers can
// retain results without aliasing internal state.
//
// This file declares Node, Edge, GraphOption, and the sentinel errors.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - two nodes share the same ID.
//	ErrDuplicateEdge - two edges share the same (From, To) pair.
//	ErrDanglingEdge  - an edge endpoint names an absent node (strict mode only).
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates that a supplied Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two supplied nodes share one ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates two supplied edges share the same ordered (From, To) pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrDanglingEdge indicates an edge endpoint references an absent node ID.
	// Only surfaced when the graph is constructed with WithStrictEndpoints.
	ErrDanglingEdge = errors.New("core: edge endpoint not in node set")
)

// Node is a labeled vertex of the lesson graph.
//
// ID uniquely identifies the node. X and Y are layout coordinates kept
// for renderers; the traversal engine never reads them.
type Node struct {
	// ID is the unique, stable label of this node.
	ID string

	// X is the horizontal layout position.
	X float64

	// Y is the vertical layout position.
	Y float64
}

// Edge is a directed connection From → To.
// The graph holds at most one edge per ordered pair.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string
}

// GraphOption configures validation behavior of NewGraph.
type GraphOption func(*graphConfig)

// graphConfig collects option state before construction.
type graphConfig struct {
	strictEndpoints bool
}

// WithStrictEndpoints makes NewGraph fail with ErrDanglingEdge when an
// edge references a node ID absent from the node set. By default the
// graph is lenient: a dangling edge is stored and simply points at a
// node that Neighbors will report but HasNode will deny.
func WithStrictEndpoints() GraphOption {
	return func(c *graphConfig) { c.strictEndpoints = true }
}
