// File: graph.go
// Role: The immutable Graph type, its validating constructor, and all queries.
// Determinism:
//   - Nodes() and Edges() preserve construction order.
//   - Neighbors(id) preserves edge insertion order.
// Concurrency:
//   - A Graph is frozen after NewGraph returns; all methods are safe for
//     concurrent readers without locks.

package core

// Graph is an immutable, finite, directed graph over labeled nodes.
//
// Construction is the only mutation; afterwards any number of goroutines
// may query it concurrently. Query results never alias internal storage.
type Graph struct {
	nodes []Node              // construction order
	index map[string]int      // node ID → position in nodes
	edges []Edge              // construction order
	adj   map[string][]string // from ID → target IDs in edge insertion order
}

// NewGraph builds a Graph from the given nodes and edges.
//
// The input slices are copied; the caller may reuse or mutate them
// afterwards. Node IDs must be non-empty and unique, and at most one edge
// may exist per ordered (From, To) pair. With WithStrictEndpoints, every
// edge endpoint must name a node in the node set.
//
// Complexity: O(V + E) time and space.
//
// Errors:
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrDuplicateEdge
//   - ErrDanglingEdge (strict mode only)
func NewGraph(nodes []Node, edges []Edge, opts ...GraphOption) (*Graph, error) {
	// 1. Resolve options.
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes: make([]Node, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
		edges: make([]Edge, 0, len(edges)),
		adj:   make(map[string][]string, len(nodes)),
	}

	// 2. Admit nodes, rejecting empty and duplicate IDs.
	for _, n := range nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, ErrDuplicateNode
		}
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	// 3. Admit edges, rejecting duplicates of the same ordered pair.
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := seen[e]; dup {
			return nil, ErrDuplicateEdge
		}
		seen[e] = struct{}{}
		if cfg.strictEndpoints {
			if _, ok := g.index[e.From]; !ok {
				return nil, ErrDanglingEdge
			}
			if _, ok := g.index[e.To]; !ok {
				return nil, ErrDanglingEdge
			}
		}
		g.edges = append(g.edges, e)
		g.adj[e.From] = append(g.adj[e.From], e.To)
	}

	return g, nil
}

// Neighbors returns the targets of the outgoing edges of id, in edge
// insertion order. An id with no outgoing edges — including an id not
// present in the graph at all — yields nil; the lookup is deliberately
// lenient so a traversal can probe any label without an error path.
//
// The returned slice is a fresh copy. Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []string {
	targets := g.adj[id]
	if len(targets) == 0 {
		return nil
	}
	out := make([]string, len(targets))
	copy(out, targets)

	return out
}

// HasNode reports whether id is in the node set. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Position returns the layout coordinates of id and whether it exists.
// Complexity: O(1).
func (g *Graph) Position(id string) (x, y float64, ok bool) {
	i, ok := g.index[id]
	if !ok {
		return 0, 0, false
	}

	return g.nodes[i].X, g.nodes[i].Y, true
}

// Nodes returns a copy of the node set in construction order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge set in construction order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }
