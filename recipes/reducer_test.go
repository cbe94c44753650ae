package recipes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodydeda4/recipeflow/core"
	"github.com/kodydeda4/recipeflow/internal/testutil"
	"github.com/kodydeda4/recipeflow/logging"
)

// recordingProvider captures Delete calls and serves a canned Observe feed.
type recordingProvider struct {
	deleted   chan core.RecipeID
	deleteErr error
	snapshots []core.Collection
}

func newRecordingProvider(snapshots ...core.Collection) *recordingProvider {
	return &recordingProvider{deleted: make(chan core.RecipeID, 8), snapshots: snapshots}
}

func (p *recordingProvider) Observe(ctx context.Context) <-chan core.Collection {
	ch := make(chan core.Collection, len(p.snapshots))
	for _, c := range p.snapshots {
		ch <- c
	}
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

func (p *recordingProvider) Delete(ctx context.Context, id core.RecipeID) error {
	p.deleted <- id
	return p.deleteErr
}

func twoRecipes() core.Collection {
	return testutil.NewCollectionBuilder().Add("1", "A").Add("2", "B").Build()
}

func TestReduce_IsDeterministic(t *testing.T) {
	reduce := NewReducer(newRecordingProvider(), logging.NoOpLogger{})
	state := State{Recipes: twoRecipes()}

	actions := []Action{
		Start{},
		SnapshotReceived{Recipes: twoRecipes()},
		SnapshotReceived{Err: errors.New("boom")},
		DeleteRequested{ID: "1"},
	}
	for _, action := range actions {
		s1, e1 := reduce(state, action)
		s2, e2 := reduce(state, action)
		assert.Equal(t, s1.LoadErr, s2.LoadErr)
		assert.True(t, s1.Recipes.Equal(s2.Recipes))
		require.Len(t, e2, len(e1))
		for i := range e1 {
			assert.Equal(t, e1[i].Group, e2[i].Group)
		}
	}
}

func TestReduce_StartLaunchesObserveEffectOnly(t *testing.T) {
	reduce := NewReducer(newRecordingProvider(), logging.NoOpLogger{})

	state, effects := reduce(State{Recipes: twoRecipes()}, Start{})

	assert.True(t, state.Recipes.Equal(twoRecipes()), "state unchanged")
	require.Len(t, effects, 1)
	assert.Equal(t, EffectGroupObserve, effects[0].Group)
}

func TestReduce_SnapshotSuccessReplacesWholesale(t *testing.T) {
	reduce := NewReducer(newRecordingProvider(), logging.NoOpLogger{})
	replacement := testutil.NewCollectionBuilder().Add("9", "Z").Build()

	state, effects := reduce(
		State{Recipes: twoRecipes(), LoadErr: errors.New("stale failure")},
		SnapshotReceived{Recipes: replacement},
	)

	assert.Empty(t, effects)
	assert.True(t, state.Recipes.Equal(replacement), "no merging with prior state")
	assert.NoError(t, state.LoadErr, "success clears a previous delivery failure")
}

func TestReduce_SnapshotFailureRetainsLastGoodCollection(t *testing.T) {
	reduce := NewReducer(newRecordingProvider(), logging.NoOpLogger{})
	failure := errors.New("feed broke")

	state, effects := reduce(State{Recipes: twoRecipes()}, SnapshotReceived{Err: failure})

	assert.Empty(t, effects)
	assert.True(t, state.Recipes.Equal(twoRecipes()), "stale data is retained")
	assert.ErrorIs(t, state.LoadErr, failure)
}

func TestReduce_DeleteRequestedLaunchesDeleteEffect(t *testing.T) {
	p := newRecordingProvider()
	reduce := NewReducer(p, logging.NoOpLogger{})

	state, effects := reduce(State{Recipes: twoRecipes()}, DeleteRequested{ID: "1"})

	assert.True(t, state.Recipes.Equal(twoRecipes()), "state changes only via a new snapshot")
	require.Len(t, effects, 1)
	assert.Equal(t, EffectGroupDelete, effects[0].Group)

	// Running the effect calls the provider exactly once.
	effects[0].Run(context.Background(), func(Action) {
		t.Fatal("delete effect must not dispatch actions back")
	})
	select {
	case id := <-p.deleted:
		assert.Equal(t, core.RecipeID("1"), id)
	default:
		t.Fatal("provider delete was not called")
	}
}

func TestDeleteEffect_AbsorbsFailure(t *testing.T) {
	p := newRecordingProvider()
	p.deleteErr = core.ErrStoreUnavailable
	reduce := NewReducer(p, logging.NoOpLogger{})

	_, effects := reduce(State{}, DeleteRequested{ID: "1"})
	require.Len(t, effects, 1)

	// Must not panic or dispatch; the failure is absorbed at the boundary.
	effects[0].Run(context.Background(), func(Action) {
		t.Fatal("failure must not re-enter the reducer")
	})
}

func TestObserveEffect_DispatchesSnapshotsInOrder(t *testing.T) {
	first := twoRecipes()
	second := testutil.NewCollectionBuilder().Add("2", "B").Build()
	p := newRecordingProvider(first, second)
	reduce := NewReducer(p, logging.NoOpLogger{})

	_, effects := reduce(State{}, Start{})
	require.Len(t, effects, 1)

	ctx, cancel := context.WithCancel(context.Background())
	received := make(chan SnapshotReceived, 2)
	done := make(chan struct{})
	go func() {
		defer close(done)
		effects[0].Run(ctx, func(a Action) {
			received <- a.(SnapshotReceived)
		})
	}()

	got1 := <-received
	got2 := <-received
	assert.True(t, got1.Recipes.Equal(first))
	assert.True(t, got2.Recipes.Equal(second))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("observe effect must end on cancellation")
	}
}
