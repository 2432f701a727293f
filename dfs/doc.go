// Package dfs implements the stepping engine at the heart of dfstep: an
// explicit-stack depth-first search advanced one node-examination per
// call, with manual stepping, timer-driven auto-play, pause/resume, and
// reset.
//
// What:
//
//   - Engine: a four-phase state machine (Idle → Running ⇄ Paused → Done)
//     owning the visited order, the explicit stack, and the current node
//   - Mark-on-pop (default): a node becomes visited only when examined at
//     the stack top; its entry stays on the stack as a parent marker and
//     a later re-arrival triggers the backtrack pop
//   - Mark-on-push (WithMarkOnPush): a node becomes visited when pushed;
//     no re-arrivals, the stack never holds a node twice
//   - Snapshot: immutable copy of the run state, the only thing renderers
//     ever see
//
// Why:
//   - A conventional DFS runs to completion inside one call; a lesson
//     needs every intermediate stack state observable. The engine splits
//     the traversal into micro-steps a host can drive from a click or a
//     timer, and contrasts the two classic visited-marking policies.
//
// Key Types & Constants:
//
//   - Phase: Idle, Running, Paused, Done
//   - MarkPolicy: MarkOnPop, MarkOnPush
//   - Option / Options: WithSpeed, WithMarkOnPush, WithOnStep
//   - Snapshot: Visited, Stack, Current, Phase, Running, Done, Speed
//   - DefaultSpeed: 500ms auto-play cadence
//
// Auto-play discipline:
//
//	Exactly one deferred step is scheduled at a time; it is re-armed only
//	after the previous step completed and only while still Running. Pause,
//	Reset, Start, and natural completion all invalidate a pending timer
//	(generation counter under the engine lock), so no stray step can fire
//	against stale or reset state.
//
// Step count:
//
//	Under mark-on-pop a run over a graph with V reachable nodes takes one
//	step per discovery, one per backtrack re-arrival of each expanded
//	node, and one terminating step — bounded by 2V+1.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrOptionViolation    invalid Option value at construction
//   - ErrEmptyStartID       Start given an empty node ID
//   - ErrNonPositiveSpeed   cadence ≤ 0 rejected (zero-delay busy loop)
//   - ErrNotPaused          Resume outside Paused
//
// Functions:
//
//   - New(g *core.Graph, opts ...Option) (*Engine, error)
//   - (*Engine) Start, Step, Pause, Resume, Reset, SetSpeed, Snapshot, Phase
//   - DefaultOptions(), WithSpeed(), WithMarkOnPush(), WithOnStep()
package dfs
