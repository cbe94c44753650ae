package testutil

import "github.com/kodydeda4/recipeflow/core"

// Recipe builds a recipe with a fixed, human-readable ID. Deterministic IDs
// keep test expectations stable across runs.
func Recipe(id, name string) core.Recipe {
	return core.Recipe{ID: core.RecipeID(id), Name: name}
}

// CollectionBuilder provides a fluent helper for constructing collections.
// Example:
//
//	c := testutil.NewCollectionBuilder().Add("1", "Pasta").Add("2", "Tacos").Build()
//
// Build panics on duplicate IDs; that is a test programming error.
type CollectionBuilder struct {
	recipes []core.Recipe
}

// NewCollectionBuilder creates an empty builder.
func NewCollectionBuilder() *CollectionBuilder { return &CollectionBuilder{} }

// Add appends a recipe with the given ID and name (chainable).
func (b *CollectionBuilder) Add(id, name string) *CollectionBuilder {
	b.recipes = append(b.recipes, Recipe(id, name))
	return b
}

// AddRecipe appends an already constructed recipe (chainable).
func (b *CollectionBuilder) AddRecipe(r core.Recipe) *CollectionBuilder {
	b.recipes = append(b.recipes, r)
	return b
}

// Build materializes the collection.
func (b *CollectionBuilder) Build() core.Collection {
	return core.MustCollection(b.recipes...)
}
