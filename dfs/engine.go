// Package dfs implements a steppable, explicit-stack depth-first search
// over a core.Graph: one node-examination per Step call, resumable
// auto-play at a configurable cadence, and immutable snapshots for
// renderers. The default policy marks nodes visited on pop — a node is
// recorded only when examined at the top of the stack — which is the
// semantics the lesson exists to demonstrate; WithMarkOnPush selects the
// contrasted policy.
//
// Key features:
//   - New(g, opts...): bind an engine to an immutable graph
//   - Start / Step / Pause / Resume / Reset / SetSpeed lifecycle
//   - Auto-play: a single cancellable timer re-armed after each step
//   - Snapshot(): read run state from any goroutine, race-free
//   - Hooks: WithOnStep observer receiving a snapshot per completed step
//
// Complexity:
//
//   - Step:     O(deg(node)) per call; a full run is O(V + E) across
//     at most 2V+1 steps under mark-on-pop (each node is examined once
//     on discovery and once on backtrack, plus the terminating step).
//   - Snapshot: O(V) copy.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrOptionViolation     if an Option carried an invalid value.
//   - ErrEmptyStartID        if Start is given "".
//   - ErrNonPositiveSpeed    if SetSpeed is given d ≤ 0.
//   - ErrNotPaused           if Resume is called outside Paused.
package dfs

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/dfstep/core"
)

// Engine owns the DFS run state and drives it one micro-step at a time.
//
// All mutation happens under mu; the auto-advance timer callback re-checks
// a generation counter under the same lock, so a step canceled by Pause,
// Reset, Start, or completion never fires against newer state.
type Engine struct {
	mu    sync.Mutex
	graph *core.Graph // immutable; never nil
	opts  Options     // fixed at construction; opts.Speed seeds speed

	// Run state of one playback.
	visited    []string            // discovery order
	visitedSet map[string]struct{} // membership mirror of visited
	stack      []string            // bottom-to-top
	current    string              // latest examined node
	phase      Phase
	speed      time.Duration

	// Auto-advance bookkeeping.
	timer *time.Timer
	gen   uint64 // bumped whenever a pending timer becomes stale
}

// New binds a stepping engine to g.
//
// Returns ErrGraphNil for a nil graph, and an error wrapping
// ErrOptionViolation if any Option carried an invalid value.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options over defaults.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, dopts.err)
	}

	return &Engine{
		graph:      g,
		opts:       dopts,
		visitedSet: make(map[string]struct{}),
		phase:      Idle,
		speed:      dopts.Speed,
	}, nil
}

// Graph returns the immutable graph this engine traverses.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Start clears any previous run, seeds the stack with startID, enters
// Running, and arms the auto-advance timer. It may be called from any
// phase; a pending timer is canceled first.
//
// startID need not exist in the graph: an unknown label degrades to a
// run that visits exactly that label and finishes.
func (e *Engine) Start(startID string) error {
	if startID == "" {
		return ErrEmptyStartID
	}

	e.mu.Lock()
	// Cancel before touching state so no stale step interleaves.
	e.cancelTimerLocked()
	e.visited = nil
	e.visitedSet = make(map[string]struct{})
	e.current = ""
	e.stack = []string{startID}
	if e.opts.Policy == MarkOnPush {
		// Under mark-on-push the seed itself counts as pushed.
		e.markLocked(startID)
	}
	e.phase = Running
	e.armTimerLocked()
	e.mu.Unlock()

	return nil
}

// Step advances the traversal by exactly one micro-step and returns the
// resulting snapshot. Once Done it is an idempotent no-op. Manual steps
// may be interleaved with auto-play; the mutex serializes them.
func (e *Engine) Step() Snapshot {
	e.mu.Lock()
	advanced := e.stepLocked()
	snap := e.snapshotLocked()
	hook := e.opts.OnStep
	e.mu.Unlock()

	if advanced && hook != nil {
		hook(snap)
	}

	return snap
}

// Pause cancels auto-advance and preserves all run state. Only a Running
// engine pauses; in any other phase Pause is a no-op.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.phase == Running {
		e.phase = Paused
		e.cancelTimerLocked()
	}
	e.mu.Unlock()
}

// Resume re-arms auto-advance from Paused without re-seeding the stack.
// Returns ErrNotPaused in any other phase.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != Paused {
		return ErrNotPaused
	}
	e.phase = Running
	e.armTimerLocked()

	return nil
}

// Reset cancels auto-advance and clears the run state back to Idle.
// Speed persists: it is a user preference, not algorithm state.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.cancelTimerLocked()
	e.visited = nil
	e.visitedSet = make(map[string]struct{})
	e.stack = nil
	e.current = ""
	e.phase = Idle
	e.mu.Unlock()
}

// SetSpeed updates the auto-advance cadence. The new value applies from
// the next armed timer; a step already scheduled keeps its old delay.
// Returns ErrNonPositiveSpeed for d ≤ 0.
func (e *Engine) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return ErrNonPositiveSpeed
	}

	e.mu.Lock()
	e.speed = d
	e.mu.Unlock()

	return nil
}

// Snapshot returns a read-only copy of the current run state. Safe to
// call from any goroutine at any time.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	return snap
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	p := e.phase
	e.mu.Unlock()

	return p
}

// stepLocked performs exactly one of: terminate-if-empty,
// discover+expand, discover+backtrack, re-arrive+backtrack.
// It reports whether state advanced (false only once Done).
// Caller holds mu.
func (e *Engine) stepLocked() bool {
	// 1. Terminal phase: idempotent no-op.
	if e.phase == Done {
		return false
	}

	// 2. Exhausted stack terminates the run.
	if len(e.stack) == 0 {
		e.phase = Done
		e.cancelTimerLocked()

		return true
	}

	// 3. Examine the top of the stack (peek, not pop).
	node := e.stack[len(e.stack)-1]
	e.current = node

	switch e.opts.Policy {
	case MarkOnPush:
		e.expandOnPushLocked(node)
	default:
		e.expandOnPopLocked(node)
	}

	return true
}

// expandOnPopLocked applies the mark-on-pop step rules to the stack top.
// Caller holds mu.
func (e *Engine) expandOnPopLocked(node string) {
	// Second arrival at the top: every neighbor pushed above this node
	// has been fully processed, so retire it. This is the backtrack.
	if _, seen := e.visitedSet[node]; seen {
		e.stack = e.stack[:len(e.stack)-1]

		return
	}

	// First arrival: the node becomes visited now, at examination time.
	e.markLocked(node)

	// Keep only unvisited neighbors, preserving neighbor order.
	cand := e.graph.Neighbors(node)
	k := 0
	for _, id := range cand {
		if _, seen := e.visitedSet[id]; !seen {
			cand[k] = id
			k++
		}
	}
	cand = cand[:k]

	// Nothing left to expand: retire immediately.
	if len(cand) == 0 {
		e.stack = e.stack[:len(e.stack)-1]

		return
	}

	// Push in reversed order so pops come out in neighbor order.
	// The node itself stays underneath as the parent marker that will
	// trigger the backtrack on its second arrival.
	for i := len(cand) - 1; i >= 0; i-- {
		e.stack = append(e.stack, cand[i])
	}
}

// expandOnPushLocked applies the mark-on-push step rules to the stack top.
// Caller holds mu.
func (e *Engine) expandOnPushLocked(node string) {
	// The top was marked when pushed; pop it unconditionally.
	e.stack = e.stack[:len(e.stack)-1]

	// Mark fresh neighbors in neighbor order, then push them reversed.
	nbs := e.graph.Neighbors(node)
	fresh := nbs[:0]
	for _, id := range nbs {
		if _, seen := e.visitedSet[id]; !seen {
			e.markLocked(id)
			fresh = append(fresh, id)
		}
	}
	for i := len(fresh) - 1; i >= 0; i-- {
		e.stack = append(e.stack, fresh[i])
	}
}

// markLocked appends id to the discovery order. Caller holds mu.
func (e *Engine) markLocked(id string) {
	e.visited = append(e.visited, id)
	e.visitedSet[id] = struct{}{}
}

// snapshotLocked builds a Snapshot with freshly copied slices.
// Caller holds mu.
func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		Visited: make([]string, len(e.visited)),
		Stack:   make([]string, len(e.stack)),
		Current: e.current,
		Phase:   e.phase,
		Running: e.phase == Running,
		Done:    e.phase == Done,
		Speed:   e.speed,
	}
	copy(snap.Visited, e.visited)
	copy(snap.Stack, e.stack)

	return snap
}

// armTimerLocked schedules one deferred auto-step after the current
// cadence. Caller holds mu and must have phase == Running.
func (e *Engine) armTimerLocked() {
	e.gen++
	gen := e.gen
	e.timer = time.AfterFunc(e.speed, func() { e.autoStep(gen) })
}

// cancelTimerLocked invalidates any pending auto-step. Stopping the
// timer is best-effort; the generation bump is what guarantees a
// callback already in flight becomes a no-op. Caller holds mu.
func (e *Engine) cancelTimerLocked() {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// autoStep is the timer callback: perform one step if the engine is
// still Running and this timer generation is still live, then re-arm.
func (e *Engine) autoStep(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.phase != Running {
		// Stale timer: state moved on since this was armed.
		e.mu.Unlock()

		return
	}
	advanced := e.stepLocked()
	if e.phase == Running {
		e.armTimerLocked()
	}
	snap := e.snapshotLocked()
	hook := e.opts.OnStep
	e.mu.Unlock()

	if advanced && hook != nil {
		hook(snap)
	}
}
