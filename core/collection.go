package core

import "fmt"

// Collection is an ordered sequence of Recipes keyed by ID.
//
// Contract:
//   - No two elements share an ID (enforced at construction and by every
//     derived-mutation method)
//   - Iteration order is insertion order and is preserved across snapshots
//   - Collections are values: methods return new Collections and never
//     mutate the receiver, so a snapshot handed to a consumer stays stable
type Collection struct {
	recipes []Recipe
}

// NewCollection builds a Collection from the given recipes, rejecting
// duplicate identifiers.
func NewCollection(recipes ...Recipe) (Collection, error) {
	seen := make(map[RecipeID]struct{}, len(recipes))
	for _, r := range recipes {
		if _, dup := seen[r.ID]; dup {
			return Collection{}, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	cp := make([]Recipe, len(recipes))
	copy(cp, recipes)
	return Collection{recipes: cp}, nil
}

// MustCollection is NewCollection that panics on duplicate IDs. Intended for
// tests and static seed data where duplicates are a programming error.
func MustCollection(recipes ...Recipe) Collection {
	c, err := NewCollection(recipes...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of recipes in the collection.
func (c Collection) Len() int { return len(c.recipes) }

// IsEmpty reports whether the collection contains no recipes.
func (c Collection) IsEmpty() bool { return len(c.recipes) == 0 }

// Get returns the recipe with the given ID and an existence flag.
func (c Collection) Get(id RecipeID) (Recipe, bool) {
	for _, r := range c.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Contains reports whether a recipe with the given ID is present.
func (c Collection) Contains(id RecipeID) bool {
	_, ok := c.Get(id)
	return ok
}

// Recipes returns a defensive copy of the ordered recipe slice.
func (c Collection) Recipes() []Recipe {
	cp := make([]Recipe, len(c.recipes))
	copy(cp, c.recipes)
	return cp
}

// Appending returns a new Collection with the recipe appended, or
// ErrDuplicateID if its identifier is already present.
func (c Collection) Appending(r Recipe) (Collection, error) {
	if c.Contains(r.ID) {
		return Collection{}, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	next := make([]Recipe, 0, len(c.recipes)+1)
	next = append(next, c.recipes...)
	next = append(next, r)
	return Collection{recipes: next}, nil
}

// Removing returns a new Collection without the recipe carrying the given ID
// and a flag reporting whether anything was removed. Order of the remaining
// elements is unchanged. An absent ID yields the receiver unchanged.
func (c Collection) Removing(id RecipeID) (Collection, bool) {
	for i, r := range c.recipes {
		if r.ID != id {
			continue
		}
		next := make([]Recipe, 0, len(c.recipes)-1)
		next = append(next, c.recipes[:i]...)
		next = append(next, c.recipes[i+1:]...)
		return Collection{recipes: next}, true
	}
	return c, false
}

// Replacing returns a new Collection where the recipe with the same ID is
// swapped in place, preserving position, and a flag reporting whether a
// matching ID existed.
func (c Collection) Replacing(r Recipe) (Collection, bool) {
	for i, existing := range c.recipes {
		if existing.ID != r.ID {
			continue
		}
		next := make([]Recipe, len(c.recipes))
		copy(next, c.recipes)
		next[i] = r
		return Collection{recipes: next}, true
	}
	return c, false
}

// Equal reports structural equality: same recipes in the same order.
func (c Collection) Equal(other Collection) bool {
	if len(c.recipes) != len(other.recipes) {
		return false
	}
	for i, r := range c.recipes {
		if r != other.recipes[i] {
			return false
		}
	}
	return true
}
