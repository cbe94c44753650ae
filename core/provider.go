package core

import "context"

// Provider is the data boundary of the runtime: a live source of
// full-collection snapshots plus a keyed delete. Implementations must be
// safe for concurrent use.
//
// Implementations must:
//   - Yield a fresh subscription per Observe call, promptly delivering the
//     current Collection and then one value per mutation
//   - Treat ctx cancellation as normal subscriber departure, releasing any
//     fan-out resources tied to that subscription (never as an error)
//   - Keep Delete atomic with respect to snapshot production: a subscriber
//     never observes an element removed and then present again
type Provider interface {
	// Observe returns a channel of collection snapshots. Each value
	// supersedes the previous one; the channel is closed when ctx ends.
	Observe(ctx context.Context) <-chan Collection

	// Delete removes the recipe with the given ID. Deleting an absent ID
	// is a no-op for the in-memory implementation; other implementations
	// may fail with ErrNotFound or ErrStoreUnavailable.
	Delete(ctx context.Context, id RecipeID) error
}
