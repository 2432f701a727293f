// Package dfstep is a small, in-memory playground for teaching depth-first
// search one step at a time — an explicit-stack DFS you can single-step,
// auto-play, pause, and reset, watching the stack grow and shrink.
//
// 🚀 What is dfstep?
//
//	A tiny, dependency-light library built around one idea: a DFS that
//	advances exactly one node-examination per call, so a lesson (or a
//	renderer) can show every intermediate stack state. It contrasts the
//	two classic visited-marking policies:
//		• mark-on-pop (default): a node counts as visited only when it is
//		  examined at the top of the stack
//		• mark-on-push: a node counts as visited the moment it is pushed
//
// ✨ Why choose dfstep?
//
//   - Deterministic – neighbor order is edge insertion order, every run
//     replays identically
//   - Snapshot-driven – the engine emits immutable snapshots; renderers
//     poll or subscribe, never share mutable state
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	core/    — immutable directed Graph, Node, Edge types
//	dfs/     — the stepping engine: Start/Step/Pause/Resume/Reset, auto-play
//	view/    — derive node & edge render states from a snapshot
//	builder/ — canned lesson graphs (reference six-node graph, chains, trees)
//
// Quick ASCII example (the reference lesson graph):
//
//	    A
//	   / \
//	  B   C
//	 / \ / \
//	D   E   F
//
// Starting at A, mark-on-pop discovery order is A B D E C F.
//
//	go get github.com/katalvlaran/dfstep
package dfstep
