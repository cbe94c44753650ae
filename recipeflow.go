// Package recipeflow provides a high-level façade over the dispatch runtime
// and its collaborators (store, reducer, provider, logging) enabling quick
// construction of a live recipe-list state container. Most applications
// interact with this package by:
//  1. Creating a RecipeFlow via New() (optionally overriding the default
//     in-memory provider)
//  2. Binding the snapshot subscription to an external lifetime via Start()
//  3. Dispatching actions and observing committed state via Changes()
//
// The façade delegates all semantics to store.Store and recipes.NewReducer
// while keeping setup ergonomics concise. Defaults are safe for local
// development and testing; hosts typically supply a seeded provider and a
// structured logger.
package recipeflow

import (
	"context"

	"github.com/kodydeda4/recipeflow/core"
	"github.com/kodydeda4/recipeflow/logging"
	"github.com/kodydeda4/recipeflow/provider"
	"github.com/kodydeda4/recipeflow/recipes"
	"github.com/kodydeda4/recipeflow/store"
)

// Options configures the RecipeFlow instance.
type Options struct {
	// Provider is the live snapshot source. Defaults to an empty
	// in-memory provider if not provided.
	Provider core.Provider

	// StoreConfig tunes the dispatch runtime (subscription buffering).
	StoreConfig store.Config

	// Logger defaults to NoOp logger if nil.
	Logger logging.Logger
}

// WithProvider sets the data provider.
func WithProvider(p core.Provider) func(o *Options) {
	return func(o *Options) { o.Provider = p }
}

// WithStoreConfig overrides the default store configuration.
func WithStoreConfig(cfg store.Config) func(o *Options) {
	return func(o *Options) { o.StoreConfig = cfg }
}

// WithLogger sets the logger shared by the store and reducer effects.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// RecipeFlow aggregates the store, reducer and provider behind one handle.
type RecipeFlow struct {
	provider core.Provider
	store    *store.Store[recipes.State, recipes.Action]
}

// New creates a RecipeFlow with optional overrides. Any unset dependency is
// replaced by a safe in-process default.
func New(optFns ...func(o *Options)) *RecipeFlow {
	opts := Options{
		StoreConfig: store.DefaultConfig,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Provider == nil {
		opts.Provider = provider.NewInMemoryProvider()
	}

	st := store.New(
		recipes.State{},
		recipes.NewReducer(opts.Provider, opts.Logger),
		store.WithConfig(opts.StoreConfig),
		store.WithLogger(opts.Logger),
	)

	return &RecipeFlow{provider: opts.Provider, store: st}
}

// Start binds the snapshot subscription to ctx: it dispatches the Start
// action now and cancels the observe effect group when ctx ends.
func (rf *RecipeFlow) Start(ctx context.Context) {
	rf.store.Bind(ctx, recipes.Start{}, recipes.EffectGroupObserve)
}

// Dispatch feeds an action into the store.
func (rf *RecipeFlow) Dispatch(action recipes.Action) {
	rf.store.Dispatch(action)
}

// State returns the current committed state.
func (rf *RecipeFlow) State() recipes.State {
	return rf.store.State()
}

// Changes returns a conflating subscription to committed states, seeded
// with the current one. The channel closes when ctx ends.
func (rf *RecipeFlow) Changes(ctx context.Context) <-chan recipes.State {
	return rf.store.Changes(ctx)
}

// Store exposes the underlying store for callers that need targeted effect
// cancellation or introspection.
func (rf *RecipeFlow) Store() *store.Store[recipes.State, recipes.Action] {
	return rf.store
}

// Provider returns the data provider the runtime was constructed with.
func (rf *RecipeFlow) Provider() core.Provider {
	return rf.provider
}

// Close cancels all running effects and waits for them to drain.
func (rf *RecipeFlow) Close() {
	rf.store.Close()
}
