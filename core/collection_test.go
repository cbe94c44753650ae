package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewCollection(
		Recipe{ID: "1", Name: "Pasta"},
		Recipe{ID: "1", Name: "Tacos"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestCollection_PreservesInsertionOrder(t *testing.T) {
	c := MustCollection(
		Recipe{ID: "3", Name: "C"},
		Recipe{ID: "1", Name: "A"},
		Recipe{ID: "2", Name: "B"},
	)
	got := c.Recipes()
	require.Len(t, got, 3)
	assert.Equal(t, RecipeID("3"), got[0].ID)
	assert.Equal(t, RecipeID("1"), got[1].ID)
	assert.Equal(t, RecipeID("2"), got[2].ID)
}

func TestCollection_Get(t *testing.T) {
	c := MustCollection(Recipe{ID: "1", Name: "Pasta"})

	r, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Pasta", r.Name)

	_, ok = c.Get("99")
	assert.False(t, ok)
}

func TestCollection_Appending(t *testing.T) {
	c := MustCollection(Recipe{ID: "1", Name: "Pasta"})

	next, err := c.Appending(Recipe{ID: "2", Name: "Tacos"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.Len())
	assert.Equal(t, 1, c.Len(), "receiver must be unchanged")

	_, err = next.Appending(Recipe{ID: "1", Name: "Ramen"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestCollection_Removing(t *testing.T) {
	c := MustCollection(
		Recipe{ID: "1", Name: "A"},
		Recipe{ID: "2", Name: "B"},
		Recipe{ID: "3", Name: "C"},
	)

	next, removed := c.Removing("2")
	require.True(t, removed)
	assert.Equal(t, []Recipe{{ID: "1", Name: "A"}, {ID: "3", Name: "C"}}, next.Recipes())
	assert.Equal(t, 3, c.Len(), "receiver must be unchanged")
}

func TestCollection_RemovingAbsentIsNoOp(t *testing.T) {
	c := MustCollection(Recipe{ID: "1", Name: "A"})

	next, removed := c.Removing("99")
	assert.False(t, removed)
	assert.True(t, next.Equal(c))
}

func TestCollection_Replacing(t *testing.T) {
	c := MustCollection(
		Recipe{ID: "1", Name: "A"},
		Recipe{ID: "2", Name: "B"},
	)

	next, ok := c.Replacing(Recipe{ID: "1", Name: "A2"})
	require.True(t, ok)
	got := next.Recipes()
	assert.Equal(t, "A2", got[0].Name)
	assert.Equal(t, RecipeID("2"), got[1].ID, "position preserved")

	_, ok = c.Replacing(Recipe{ID: "99", Name: "X"})
	assert.False(t, ok)
}

func TestCollection_Equal(t *testing.T) {
	a := MustCollection(Recipe{ID: "1", Name: "A"}, Recipe{ID: "2", Name: "B"})
	b := MustCollection(Recipe{ID: "1", Name: "A"}, Recipe{ID: "2", Name: "B"})
	reordered := MustCollection(Recipe{ID: "2", Name: "B"}, Recipe{ID: "1", Name: "A"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(reordered), "order is part of equality")
	assert.False(t, a.Equal(Collection{}))
	assert.True(t, Collection{}.Equal(Collection{}))
}

func TestCollection_RecipesIsDefensiveCopy(t *testing.T) {
	c := MustCollection(Recipe{ID: "1", Name: "A"})
	got := c.Recipes()
	got[0].Name = "mutated"

	r, _ := c.Get("1")
	assert.Equal(t, "A", r.Name)
}
