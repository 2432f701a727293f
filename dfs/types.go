// Package dfs defines the phases, options, and error sentinels of the
// stepping engine, plus the immutable Snapshot emitted after each step.
package dfs

import (
	"errors"
	"time"
)

// DefaultSpeed is the auto-advance cadence used when WithSpeed is not given.
const DefaultSpeed = 500 * time.Millisecond

// Sentinel errors for engine construction and control.
var (
	// ErrGraphNil is returned by New when the graph pointer is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrEmptyStartID is returned by Start when the start node ID is "".
	ErrEmptyStartID = errors.New("dfs: start node ID is empty")

	// ErrNonPositiveSpeed is returned when a cadence ≤ 0 is supplied,
	// either via WithSpeed or SetSpeed. A zero or negative delay would
	// degenerate auto-play into a busy loop, so it is rejected outright.
	ErrNonPositiveSpeed = errors.New("dfs: speed must be positive")

	// ErrOptionViolation wraps any invalid Option recorded during New.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNotPaused is returned by Resume when the engine is not Paused.
	ErrNotPaused = errors.New("dfs: engine is not paused")
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	// Idle: constructed or reset; nothing seeded yet.
	Idle Phase = iota

	// Running: auto-advance timer armed.
	Running

	// Paused: stack state preserved, no auto-advance.
	Paused

	// Done: stack exhausted; terminal until Start or Reset.
	Done
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// MarkPolicy selects when a node is recorded as visited.
type MarkPolicy int

const (
	// MarkOnPop records a node as visited only when it is examined at
	// the top of the stack. This is the default, and the policy whose
	// double-arrival backtracking the demo exists to show.
	MarkOnPop MarkPolicy = iota

	// MarkOnPush records a node as visited the moment it is pushed.
	MarkOnPush
)

// Option configures engine behavior via functional arguments.
// An invalid Option (e.g. non-positive WithSpeed) is recorded internally
// and surfaced by New as an error wrapping ErrOptionViolation.
type Option func(*Options)

// Options holds the configurable parameters of an Engine.
type Options struct {
	// Speed is the delay between automatic steps while Running.
	Speed time.Duration

	// Policy selects mark-on-pop (default) or mark-on-push semantics.
	Policy MarkPolicy

	// OnStep, if non-nil, receives a snapshot after every completed
	// step, manual or timer-driven. It is invoked outside the engine
	// lock, so it may call back into the engine.
	OnStep func(Snapshot)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Speed = DefaultSpeed (500ms)
//   - mark-on-pop policy
//   - no step observer
func DefaultOptions() Options {
	return Options{
		Speed:  DefaultSpeed,
		Policy: MarkOnPop,
		OnStep: nil,
		err:    nil,
	}
}

// WithSpeed sets the initial auto-advance cadence.
// A non-positive d is recorded and surfaced by New as ErrOptionViolation.
func WithSpeed(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = ErrNonPositiveSpeed
			return
		}
		o.Speed = d
	}
}

// WithMarkOnPush switches the engine to mark-on-push visited semantics:
// each step pops the stack top, and every not-yet-marked neighbor is
// marked visited as it is pushed (in original neighbor order). The stack
// then never holds a node twice and no backtrack re-arrivals occur.
func WithMarkOnPush() Option {
	return func(o *Options) {
		o.Policy = MarkOnPush
	}
}

// WithOnStep registers fn as a step observer. Passing nil has no effect.
func WithOnStep(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
