package store

import "context"

// DefaultEffectGroup is the cancellation group assigned to effects that do
// not name one.
const DefaultEffectGroup = "default"

// SendFunc feeds an action produced by a running effect back into the
// store's dispatch loop. It is the only sanctioned way an effect
// communicates results.
type SendFunc[A any] func(A)

// Effect describes one cancellable asynchronous unit of work. Effects share
// no mutable state with each other; each run is independent.
//
// Run receives a context derived from the store lifetime and narrowed by the
// effect's group: cancelling the group cancels ctx. Run must return promptly
// once ctx is done and must treat that as normal termination, not failure.
// I/O failures are converted to action values (or absorbed) inside Run,
// never surfaced as faults that could crash the store.
type Effect[A any] struct {
	// Group identifies the cancellation family this effect belongs to.
	// Empty means DefaultEffectGroup.
	Group string

	// Run performs the work. A nil Run is a no-op effect.
	Run func(ctx context.Context, send SendFunc[A])
}

// Run constructs an Effect in the given cancellation group.
func Run[A any](group string, run func(ctx context.Context, send SendFunc[A])) Effect[A] {
	return Effect[A]{Group: group, Run: run}
}

// Reducer is the pure transition function: it maps the current state and an
// action to the next state plus zero or more effects to launch. It must be
// deterministic and referentially transparent given (state, action) alone.
type Reducer[S, A any] func(state S, action A) (S, []Effect[A])
