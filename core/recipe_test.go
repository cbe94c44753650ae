package core

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe_MintsUUID(t *testing.T) {
	r := NewRecipe("Pasta")
	assert.Equal(t, "Pasta", r.Name)

	_, err := uuid.Parse(r.ID.String())
	assert.NoError(t, err)
}

func TestNewRecipe_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewRecipe("A").ID, NewRecipe("B").ID)
}

func TestRecipe_WireShape(t *testing.T) {
	r := Recipe{ID: "b5f3da42-8a1f-4fe0-9a7b-0c1d2e3f4a5b", Name: "Miso Ramen"}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b5f3da42-8a1f-4fe0-9a7b-0c1d2e3f4a5b","name":"Miso Ramen"}`, string(data))

	var decoded Recipe
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r, decoded)
}
