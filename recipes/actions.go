package recipes

import "github.com/kodydeda4/recipeflow/core"

// State is the single source of truth observed by the presentation side.
// It is owned exclusively by the store and mutated only by the reducer.
type State struct {
	// Recipes is the last successfully delivered collection snapshot.
	Recipes core.Collection

	// LoadErr carries the most recent snapshot delivery failure. The
	// reducer retains the last good collection when a delivery fails and
	// clears LoadErr on the next successful snapshot.
	LoadErr error
}

// Action is the closed set of messages the reducer handles. The unexported
// marker method keeps the set sealed to this package, so the reducer's type
// switch is total over all variants.
type Action interface {
	isAction()
}

// Start begins observing the provider's snapshot feed. Dispatched once per
// lifetime scope, typically via Store.Bind.
type Start struct{}

// SnapshotReceived delivers the outcome of one snapshot pull: a full
// replacement collection on success, or the delivery error.
type SnapshotReceived struct {
	Recipes core.Collection
	Err     error
}

// DeleteRequested asks the provider to remove the recipe with the given ID.
type DeleteRequested struct {
	ID core.RecipeID
}

func (Start) isAction()            {}
func (SnapshotReceived) isAction() {}
func (DeleteRequested) isAction()  {}
