package recipes

import (
	"context"

	"github.com/kodydeda4/recipeflow/core"
	"github.com/kodydeda4/recipeflow/logging"
	"github.com/kodydeda4/recipeflow/store"
)

// Effect groups launched by this reducer. Cancelling EffectGroupObserve
// closes the provider subscription without disturbing in-flight deletes.
const (
	EffectGroupObserve = "recipes.observe"
	EffectGroupDelete  = "recipes.delete"
)

// NewReducer builds the recipe-list transition function over the given
// provider. The returned reducer is pure: it performs no I/O itself and is
// deterministic over (state, action); the provider and logger are only
// touched inside the effects it describes.
func NewReducer(p core.Provider, logger logging.Logger) store.Reducer[State, Action] {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return func(state State, action Action) (State, []store.Effect[Action]) {
		switch action := action.(type) {
		case Start:
			return state, []store.Effect[Action]{observeEffect(p)}

		case SnapshotReceived:
			if action.Err != nil {
				// Keep the last good collection; surface the failure.
				state.LoadErr = action.Err
				return state, nil
			}
			state.Recipes = action.Recipes
			state.LoadErr = nil
			return state, nil

		case DeleteRequested:
			return state, []store.Effect[Action]{deleteEffect(p, logger, action.ID)}
		}
		return state, nil
	}
}

// observeEffect subscribes to the provider's snapshot feed and dispatches
// one SnapshotReceived per delivered collection. Each snapshot is dispatched
// before the next one is pulled, so the consumer's pull rate is the
// backpressure. Cancellation ends the subscription silently.
func observeEffect(p core.Provider) store.Effect[Action] {
	return store.Run(EffectGroupObserve, func(ctx context.Context, send store.SendFunc[Action]) {
		snapshots := p.Observe(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case c, ok := <-snapshots:
				if !ok {
					return
				}
				send(SnapshotReceived{Recipes: c})
			}
		}
	})
}

// deleteEffect calls Delete and absorbs the outcome: failures are logged,
// never re-dispatched. The user-visible consequence of a failed delete is
// that the collection simply does not change.
func deleteEffect(p core.Provider, logger logging.Logger, id core.RecipeID) store.Effect[Action] {
	return store.Run(EffectGroupDelete, func(ctx context.Context, _ store.SendFunc[Action]) {
		if err := p.Delete(ctx, id); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("recipe delete failed recipe_id=%s error=%v", id, err)
		}
	})
}
