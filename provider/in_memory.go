package provider

import (
	"context"
	"sync"

	"github.com/kodydeda4/recipeflow/core"
	"github.com/kodydeda4/recipeflow/logging"
	"github.com/kodydeda4/recipeflow/pubsub"
)

// InMemoryProvider is a process-local core.Provider. It owns a single
// mutable Collection behind a mutex (the exclusive-writer boundary) and fans
// every mutation out through a broadcast broker.
//
// Contract:
//   - All mutations are serialized; a broadcast for a mutation happens-after
//     that mutation under the same critical section, so no subscriber can
//     observe a stale snapshot after a fresh one
//   - Collection values handed to subscribers are immutable snapshots; the
//     owner never mutates a value after publishing it
//   - Subscriber departure (context cancellation) releases the fan-out
//     resources for that subscription
type InMemoryProvider struct {
	mu      sync.Mutex
	recipes core.Collection
	broker  *pubsub.Broker[core.Collection]
	logger  logging.Logger
}

// Options configures an InMemoryProvider.
type Options struct {
	// Seed is the initial collection. Defaults to empty.
	Seed core.Collection

	// SubscriptionBufferSize bounds undelivered snapshots per subscriber
	// before latest-only conflation kicks in. Defaults to 1.
	SubscriptionBufferSize int

	// Logger defaults to NoOpLogger if nil.
	Logger logging.Logger
}

// WithSeed sets the initial collection.
func WithSeed(c core.Collection) func(o *Options) {
	return func(o *Options) { o.Seed = c }
}

// WithSubscriptionBuffer sets the per-subscriber snapshot buffer size.
func WithSubscriptionBuffer(n int) func(o *Options) {
	return func(o *Options) { o.SubscriptionBufferSize = n }
}

// WithLogger sets the logger used by the provider.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// NewInMemoryProvider constructs a provider, optionally seeded with an
// initial collection.
func NewInMemoryProvider(optFns ...func(o *Options)) *InMemoryProvider {
	opts := Options{
		SubscriptionBufferSize: 1,
		Logger:                 logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &InMemoryProvider{
		recipes: opts.Seed,
		broker:  pubsub.NewBroker[core.Collection](opts.SubscriptionBufferSize),
		logger:  opts.Logger,
	}
}

// Observe returns a fresh snapshot subscription. The current collection is
// delivered promptly, then one snapshot per mutation until ctx ends, at
// which point the channel closes and the subscriber is forgotten.
//
// Registration happens under the owner mutex, so a concurrent mutation
// either precedes the seed snapshot or is delivered as a later one; it can
// never fall between unseen.
func (p *InMemoryProvider) Observe(ctx context.Context) <-chan core.Collection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.broker.Subscribe(ctx, p.recipes)
}

// Delete removes the recipe with the given ID. Deleting an absent ID is a
// no-op: nil error and no broadcast. A successful removal publishes exactly
// one new snapshot, identical in order to the previous one minus the
// removed element.
func (p *InMemoryProvider) Delete(ctx context.Context, id core.RecipeID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	next, removed := p.recipes.Removing(id)
	if !removed {
		p.logger.Debug("provider delete no-op recipe_id=%s", id)
		return nil
	}
	p.recipes = next
	p.broker.Publish(next)
	p.logger.Debug("provider deleted recipe recipe_id=%s remaining=%d", id, next.Len())
	return nil
}

// Add appends a recipe and broadcasts the new snapshot. A duplicate ID
// fails with core.ErrDuplicateID and publishes nothing.
func (p *InMemoryProvider) Add(ctx context.Context, r core.Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	next, err := p.recipes.Appending(r)
	if err != nil {
		return err
	}
	p.recipes = next
	p.broker.Publish(next)
	p.logger.Debug("provider added recipe recipe_id=%s total=%d", r.ID, next.Len())
	return nil
}

// Snapshot returns the current collection value.
func (p *InMemoryProvider) Snapshot() core.Collection {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recipes
}

// Len returns the number of recipes currently stored.
func (p *InMemoryProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recipes.Len()
}

// SubscriberCount reports the number of active Observe subscriptions.
func (p *InMemoryProvider) SubscriberCount() int {
	return p.broker.Len()
}
