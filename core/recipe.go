package core

import "github.com/google/uuid"

// RecipeID uniquely identifies a Recipe. Its textual form is a UUID so the
// entity can cross process or persistence boundaries without remapping.
type RecipeID string

// NewRecipeID generates a new unique recipe identifier.
func NewRecipeID() RecipeID { return RecipeID(uuid.NewString()) }

// String returns the textual UUID form of the identifier.
func (id RecipeID) String() string { return string(id) }

// Recipe is the domain entity. Identity is ID; equality is structural.
// Recipes are immutable values: replace them, never mutate them in place.
type Recipe struct {
	ID   RecipeID `json:"id"`
	Name string   `json:"name"`
}

// NewRecipe constructs a Recipe with a freshly minted ID.
func NewRecipe(name string) Recipe {
	return Recipe{ID: NewRecipeID(), Name: name}
}
