package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kodydeda4/recipeflow/logging"
	"github.com/kodydeda4/recipeflow/pubsub"
)

// Config defines tuning parameters for the Store's operational behavior.
type Config struct {
	// SubscriptionBufferSize sets how many undelivered committed states a
	// Changes subscriber may hold before conflation replaces the oldest
	// with the newest. Values below one are treated as one.
	SubscriptionBufferSize int
}

// DefaultConfig provides the default configuration: latest-only state
// subscriptions.
var DefaultConfig = Config{
	SubscriptionBufferSize: 1,
}

// Options configures a Store instance using the functional options pattern.
type Options struct {
	// Config contains operational parameters. Defaults to DefaultConfig.
	Config Config

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) func(o *Options) {
	return func(o *Options) { o.Config = cfg }
}

// WithLogger sets the logger used by the store.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Store owns a state value and drives it through a pure reducer.
//
// Concurrency model:
//   - Dispatch serializes reduce-and-commit under a mutex, so two
//     concurrent dispatches never interleave their reducer invocations and
//     commits happen strictly in dispatch order
//   - Committed states are published to Changes subscribers inside the
//     critical section (the underlying broker never blocks), so subscribers
//     observe states in commit order
//   - Effects run concurrently on their own goroutines, tracked by group in
//     a cancellation registry
//
// The zero value is not usable; construct with New.
type Store[S, A any] struct {
	mu      sync.Mutex
	state   S
	reduce  Reducer[S, A]
	changes *pubsub.Broker[S]
	logger  logging.Logger
	config  Config

	effectsMu sync.Mutex
	running   map[string]map[string]context.CancelFunc // group -> effect id -> cancel
	wg        sync.WaitGroup

	lifetime context.Context
	shutdown context.CancelFunc
}

// New creates a Store holding initial and driven by reduce.
//
// The store is immediately ready for use and safe for concurrent access.
// Dependencies such as data providers are not known to the Store; they are
// closed over by the reducer's effects (explicit constructor injection, no
// global registry).
func New[S, A any](initial S, reduce Reducer[S, A], optFns ...func(o *Options)) *Store[S, A] {
	opts := Options{
		Config: DefaultConfig,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	lifetime, shutdown := context.WithCancel(context.Background())

	return &Store[S, A]{
		state:    initial,
		reduce:   reduce,
		changes:  pubsub.NewBroker[S](opts.Config.SubscriptionBufferSize),
		logger:   opts.Logger,
		config:   opts.Config,
		running:  make(map[string]map[string]context.CancelFunc),
		lifetime: lifetime,
		shutdown: shutdown,
	}
}

// Dispatch runs the reducer with the current state and the given action,
// commits the resulting state, then starts every returned effect. The
// reduce-and-commit step is atomic; effect starts happen after the commit
// and never block the caller beyond goroutine startup.
//
// Dispatch is safe to call from effect goroutines; that re-entrancy is how
// effects feed results back into the state.
func (s *Store[S, A]) Dispatch(action A) {
	s.mu.Lock()
	next, effects := s.reduce(s.state, action)
	s.state = next
	s.changes.Publish(next)
	s.mu.Unlock()

	s.logger.Debug("store dispatched action type=%T effects=%d", action, len(effects))

	for _, eff := range effects {
		s.start(eff)
	}
}

// State returns the current committed state.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Changes returns a read-only subscription to committed states, seeded with
// the current state. Delivery is conflating: a slow consumer observes the
// latest committed state rather than every intermediate one. The channel is
// closed when ctx ends.
func (s *Store[S, A]) Changes(ctx context.Context) <-chan S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes.Subscribe(ctx, s.state)
}

// Bind dispatches action and ties the given effect groups to ctx: when ctx
// ends, each group is cancelled. This is the lifecycle hook for callers that
// want a subscription effect to live exactly as long as an external scope.
func (s *Store[S, A]) Bind(ctx context.Context, action A, groups ...string) {
	s.Dispatch(action)
	if len(groups) == 0 {
		return
	}
	go func() {
		<-ctx.Done()
		for _, g := range groups {
			s.Cancel(g)
		}
	}()
}

// Cancel cancels every running effect in the given group. Unknown or
// already-cancelled groups are a no-op, so Cancel is safe to call zero, one
// or many times. Unrelated in-flight effects are unaffected.
func (s *Store[S, A]) Cancel(group string) {
	s.effectsMu.Lock()
	cancels := s.running[group]
	delete(s.running, group)
	s.effectsMu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	if len(cancels) > 0 {
		s.logger.Debug("store cancelled effect group group=%s effects=%d", group, len(cancels))
	}
}

// ActiveEffects reports how many effects are currently running in the given
// group. Primarily useful for tests and introspection.
func (s *Store[S, A]) ActiveEffects(group string) int {
	s.effectsMu.Lock()
	defer s.effectsMu.Unlock()
	return len(s.running[group])
}

// Close cancels all running effects and waits for their goroutines to
// drain. Dispatch remains usable afterwards but no further effects are
// started. Close is idempotent.
func (s *Store[S, A]) Close() {
	s.shutdown()
	s.effectsMu.Lock()
	s.running = make(map[string]map[string]context.CancelFunc)
	s.effectsMu.Unlock()
	s.wg.Wait()
}

func (s *Store[S, A]) start(eff Effect[A]) {
	if eff.Run == nil {
		return
	}
	group := eff.Group
	if group == "" {
		group = DefaultEffectGroup
	}

	ctx, cancel := context.WithCancel(s.lifetime)
	id := uuid.NewString()

	s.effectsMu.Lock()
	if s.lifetime.Err() != nil {
		s.effectsMu.Unlock()
		cancel()
		return
	}
	if s.running[group] == nil {
		s.running[group] = make(map[string]context.CancelFunc)
	}
	s.running[group][id] = cancel
	s.wg.Add(1)
	s.effectsMu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.release(group, id, cancel)
		eff.Run(ctx, s.Dispatch)
	}()
}

func (s *Store[S, A]) release(group, id string, cancel context.CancelFunc) {
	cancel()
	s.effectsMu.Lock()
	defer s.effectsMu.Unlock()
	if cancels, ok := s.running[group]; ok {
		delete(cancels, id)
		if len(cancels) == 0 {
			delete(s.running, group)
		}
	}
}
