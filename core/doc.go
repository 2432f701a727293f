// Package core provides the immutable directed Graph consumed by the
// dfstep engine, together with its Node and Edge value types.
//
// What:
//
//   - Node: labeled vertex with layout coordinates (renderer metadata;
//     never read by traversal code)
//   - Edge: directed (From, To) pair, at most one per ordered pair
//   - Graph: frozen at construction; copy-in, copy-out semantics
//   - Neighbors(id): outgoing targets in edge insertion order, lenient
//     toward unknown ids (nil, never an error)
//
// Why:
//   - A stepping demo replays the same traversal over and over; an
//     immutable graph with deterministic neighbor order makes every run
//     identical and every snapshot safe to hold across steps.
//   - Lenient lookup lets the engine probe a caller-supplied start label
//     without a failure path — an unknown start degrades to a one-node run.
//
// Validation:
//
//   - NewGraph rejects empty IDs, duplicate IDs, and duplicate edges.
//   - WithStrictEndpoints additionally rejects edges naming absent nodes
//     (ErrDanglingEdge); by default such edges are stored as-is.
//
// Complexity:
//
//   - NewGraph:     Time O(V+E), Memory O(V+E)
//   - Neighbors:    Time O(deg), fresh copy per call
//   - HasNode, Position, NodeCount, EdgeCount: O(1)
//
// Errors:
//
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrDuplicateEdge, ErrDanglingEdge
package core
