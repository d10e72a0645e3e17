package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIngredientsKeepsFileOrder(t *testing.T) {
	path := writeFixture(t, `[
		{"name": "Oats", "calories_per": 389, "reference_amount": "100g"},
		{"name": "Egg", "calories_per": 78, "reference_amount": "1 piece"}
	]`)

	refs, warnings, err := LoadIngredients(path)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, refs, 2)
	assert.Equal(t, "Oats", refs[0].Name)
	assert.Equal(t, "Egg", refs[1].Name)
}

func TestLoadIngredientsSkipsInvalidRecords(t *testing.T) {
	path := writeFixture(t, `[
		{"name": "", "calories_per": 10, "reference_amount": "100g"},
		{"name": "Bad Fat", "calories_per": 10, "fat_per": -1, "reference_amount": "100g"},
		{"name": "Oats", "calories_per": 389, "reference_amount": "100g"}
	]`)

	refs, warnings, err := LoadIngredients(path)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "Oats", refs[0].Name)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "missing name")
	assert.Contains(t, warnings[1], "negative fat")
}

func TestLoadIngredientsWarnsOnNonNumericReference(t *testing.T) {
	path := writeFixture(t, `[
		{"name": "Handful of Nuts", "calories_per": 180, "reference_amount": "a handful"}
	]`)

	refs, warnings, err := LoadIngredients(path)
	require.NoError(t, err)
	// Loaded anyway; the resolver absorbs the missing base.
	require.Len(t, refs, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no numeric base")
}

func TestLoadIngredientsMissingFile(t *testing.T) {
	_, _, err := LoadIngredients(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadIngredientsBadJSON(t *testing.T) {
	path := writeFixture(t, `{"not": "a list"}`)
	_, _, err := LoadIngredients(path)
	assert.Error(t, err)
}

func TestLoadRecipes(t *testing.T) {
	path := writeFixture(t, `[
		{
			"name": "Protein Oatmeal",
			"category": "breakfast",
			"ingredients": [{"name": "Oats", "quantity": 60, "unit": "g"}],
			"instructions": ["Cook the oats."]
		}
	]`)

	fixtures, err := LoadRecipes(path)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, "Protein Oatmeal", fixtures[0].Name)
	require.Len(t, fixtures[0].Ingredients, 1)
	assert.Equal(t, 60.0, fixtures[0].Ingredients[0].Quantity)
}

func TestLoadRecipesRejectsUnnamed(t *testing.T) {
	path := writeFixture(t, `[{"name": "  ", "ingredients": []}]`)
	_, err := LoadRecipes(path)
	assert.Error(t, err)
}

func TestShippedFixturesParse(t *testing.T) {
	refs, warnings, err := LoadIngredients(filepath.Join("..", "..", "data", "ingredients.json"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.NotEmpty(t, refs)

	fixtures, err := LoadRecipes(filepath.Join("..", "..", "data", "recipes.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, fixtures)
}
