// Package view derives render states for nodes and edges from an engine
// snapshot. It is the host-side classification of a dfstep run — which
// node is current, visited, stacked, or untouched, and which edge is
// active, visited, or default — packaged as pure functions so every
// renderer maps the same snapshot to the same picture.
//
// What:
//
//   - NodeState: NodeCurrent > NodeVisited > NodeInStack > NodeUntouched
//     (precedence: a node matching several categories takes the highest)
//   - EdgeState: EdgeActive (out-edge of the current node whose target is
//     already discovered or stacked), EdgeVisited (both endpoints
//     visited, not active), EdgeDefault otherwise
//   - ClassifyNodes / ClassifyEdges: pure functions of graph + snapshot;
//     no engine access, no mutation, safe on any goroutine
//
// Complexity: O(V·(V+S)) and O(E·(V+S)) respectively for V nodes, E edges
// and S stack entries — trivial at lesson-graph scale.
package view

import (
	"github.com/katalvlaran/dfstep/core"
	"github.com/katalvlaran/dfstep/dfs"
)

// NodeState classifies how a renderer should draw a node.
type NodeState int

const (
	// NodeUntouched: not discovered and not on the stack.
	NodeUntouched NodeState = iota

	// NodeInStack: pushed but not yet visited (mark-on-pop only).
	NodeInStack

	// NodeVisited: discovered, not the current node.
	NodeVisited

	// NodeCurrent: the node examined by the latest step.
	NodeCurrent
)

// String returns the lowercase state name.
func (s NodeState) String() string {
	switch s {
	case NodeInStack:
		return "in-stack"
	case NodeVisited:
		return "visited"
	case NodeCurrent:
		return "current"
	default:
		return "untouched"
	}
}

// EdgeState classifies how a renderer should draw an edge.
type EdgeState int

const (
	// EdgeDefault: not yet involved in the traversal.
	EdgeDefault EdgeState = iota

	// EdgeVisited: both endpoints visited (and the edge is not active).
	EdgeVisited

	// EdgeActive: leaves the current node toward a discovered or stacked
	// target — the frontier the latest step just touched.
	EdgeActive
)

// String returns the lowercase state name.
func (s EdgeState) String() string {
	switch s {
	case EdgeVisited:
		return "visited"
	case EdgeActive:
		return "active"
	default:
		return "default"
	}
}

// ClassifyNodes maps every node ID of g to its NodeState under snap.
// Precedence: current beats visited beats in-stack beats untouched.
func ClassifyNodes(g *core.Graph, snap dfs.Snapshot) map[string]NodeState {
	out := make(map[string]NodeState, g.NodeCount())
	for _, n := range g.Nodes() {
		out[n.ID] = classifyNode(n.ID, snap)
	}

	return out
}

// classifyNode resolves the state of a single node ID.
func classifyNode(id string, snap dfs.Snapshot) NodeState {
	switch {
	case id == snap.Current && snap.Current != "":
		return NodeCurrent
	case snap.HasVisited(id):
		return NodeVisited
	case snap.OnStack(id):
		return NodeInStack
	default:
		return NodeUntouched
	}
}

// ClassifyEdges maps every edge of g to its EdgeState under snap.
func ClassifyEdges(g *core.Graph, snap dfs.Snapshot) map[core.Edge]EdgeState {
	out := make(map[core.Edge]EdgeState, g.EdgeCount())
	for _, e := range g.Edges() {
		out[e] = classifyEdge(e, snap)
	}

	return out
}

// classifyEdge resolves the state of a single edge.
func classifyEdge(e core.Edge, snap dfs.Snapshot) EdgeState {
	active := snap.Current != "" && e.From == snap.Current &&
		(snap.HasVisited(e.To) || snap.OnStack(e.To))
	switch {
	case active:
		return EdgeActive
	case snap.HasVisited(e.From) && snap.HasVisited(e.To):
		return EdgeVisited
	default:
		return EdgeDefault
	}
}
