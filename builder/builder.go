// Package builder provides canned core.Graph instances for lessons,
// tests, and benchmarks: the reference six-node lesson graph with layout
// positions, linear chains, and complete binary trees.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Lesson is a static fixture and has no error path.
package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dfstep/core"
)

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// Lesson returns the reference lesson graph:
//
//	    A
//	   / \
//	  B   C
//	 / \ / \
//	D   E   F
//
// Edges: A→B, A→C, B→D, B→E, C→E, C→F. Starting at A, mark-on-pop
// discovery order is A B D E C F. Positions form the three-row layout
// the demo renders.
func Lesson() *core.Graph {
	nodes := []core.Node{
		{ID: "A", X: 200, Y: 40},
		{ID: "B", X: 100, Y: 140},
		{ID: "C", X: 300, Y: 140},
		{ID: "D", X: 40, Y: 240},
		{ID: "E", X: 200, Y: 240},
		{ID: "F", X: 360, Y: 240},
	}
	edges := []core.Edge{
		{From: "A", To: "B"}, {From: "A", To: "C"},
		{From: "B", To: "D"}, {From: "B", To: "E"},
		{From: "C", To: "E"}, {From: "C", To: "F"},
	}

	// The fixture is statically valid; construction cannot fail.
	g, err := core.NewGraph(nodes, edges, core.WithStrictEndpoints())
	if err != nil {
		panic("builder: lesson fixture invalid: " + err.Error())
	}

	return g
}

// Chain returns a directed chain N0→N1→…→N(n-1).
// Returns ErrTooFewNodes for n < 1.
func Chain(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: chain needs n ≥ 1, got %d", ErrTooFewNodes, n)
	}

	nodes := make([]core.Node, 0, n)
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n; i++ {
		nodes = append(nodes, core.Node{ID: fmt.Sprintf("N%d", i), X: float64(i) * 80, Y: 0})
		if i > 0 {
			edges = append(edges, core.Edge{
				From: fmt.Sprintf("N%d", i-1),
				To:   fmt.Sprintf("N%d", i),
			})
		}
	}

	return core.NewGraph(nodes, edges, core.WithStrictEndpoints())
}

// CompleteBinaryTree returns a complete binary tree of the given depth
// with 2^depth − 1 nodes labeled T-1 (root) through T-N, each T-k linked
// to T-2k and T-2k+1. Returns ErrTooFewNodes for depth < 1.
func CompleteBinaryTree(depth int) (*core.Graph, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: tree needs depth ≥ 1, got %d", ErrTooFewNodes, depth)
	}

	max := (1 << depth) - 1
	nodes := make([]core.Node, 0, max)
	edges := make([]core.Edge, 0, max-1)
	for i := 1; i <= max; i++ {
		nodes = append(nodes, core.Node{ID: fmt.Sprintf("T-%d", i)})
		if i > 1 {
			edges = append(edges, core.Edge{
				From: fmt.Sprintf("T-%d", i/2),
				To:   fmt.Sprintf("T-%d", i),
			})
		}
	}

	return core.NewGraph(nodes, edges, core.WithStrictEndpoints())
}
