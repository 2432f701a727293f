// File: snapshot.go
// Role: The immutable read of engine run state handed to renderers.
// Determinism:
//   - Visited is discovery order; Stack is bottom-to-top.
// Concurrency:
//   - A Snapshot is a value with freshly copied slices; safe to retain,
//     compare, and read from any goroutine.

package dfs

import "time"

// Snapshot is a point-in-time, read-only copy of the engine's run state.
//
// The engine builds a fresh Snapshot under its lock and hands out only
// copies, so a renderer can never observe a half-updated step.
type Snapshot struct {
	// Visited lists node IDs in discovery order, without duplicates.
	Visited []string

	// Stack lists the explicit DFS stack, bottom first, top last.
	// Under mark-on-pop a node may appear while also being visited:
	// that is the parent marker awaiting its backtrack re-arrival.
	Stack []string

	// Current is the node examined by the latest completed step,
	// or "" before the first step.
	Current string

	// Phase is the lifecycle state at snapshot time.
	Phase Phase

	// Running is true while the auto-advance timer is armed.
	Running bool

	// Done is true once the stack has been exhausted.
	Done bool

	// Speed is the auto-advance cadence.
	Speed time.Duration
}

// Top returns the current top of the stack and whether one exists.
func (s Snapshot) Top() (string, bool) {
	if len(s.Stack) == 0 {
		return "", false
	}

	return s.Stack[len(s.Stack)-1], true
}

// HasVisited reports whether id appears in Visited.
func (s Snapshot) HasVisited(id string) bool {
	for _, v := range s.Visited {
		if v == id {
			return true
		}
	}

	return false
}

// OnStack reports whether id appears anywhere in Stack.
func (s Snapshot) OnStack(id string) bool {
	for _, v := range s.Stack {
		if v == id {
			return true
		}
	}

	return false
}
