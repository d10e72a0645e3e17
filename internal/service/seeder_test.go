package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhq/coachplan/backend/internal/catalog"
	"github.com/trainhq/coachplan/backend/internal/models"
	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

func TestRecipeSeederComputesStoredMacros(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewIngredientService(db).CreateBatch(ctx, testCatalog()))

	seeder := NewRecipeSeeder(db)
	report, err := seeder.SeedRecipes(ctx, []catalog.RecipeFixture{
		{
			Name:     "Protein Oatmeal",
			Category: "breakfast",
			Ingredients: []nutrition.MealIngredient{
				{Name: "Oats", Quantity: 50, Unit: "g"},
				{Name: "Whey", Quantity: 30, Unit: "g"},
			},
			Instructions: []string{"Cook oats", "Stir in whey"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Empty(t, report.Unmatched)

	var row models.Recipe
	require.NoError(t, db.First(&row, "name = ?", "Protein Oatmeal").Error)

	// Oats at 50g: {195, 8.5, 33, 3.5}; whey at one scoop: {113, 24, 1.5, 1}.
	assert.Equal(t, 308, row.Calories)
	assert.Equal(t, 32.5, row.Protein)
	assert.Equal(t, 34.5, row.Carbs)
	assert.Equal(t, 4.5, row.Fat)
	require.Len(t, row.Ingredients, 2)
	assert.Equal(t, "Oats", row.Ingredients[0].Name)
}

func TestRecipeSeederUnmatchedNameContributesZero(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewIngredientService(db).CreateBatch(ctx, testCatalog()))

	seeder := NewRecipeSeeder(db)
	report, err := seeder.SeedRecipes(ctx, []catalog.RecipeFixture{
		{
			Name: "Mystery Bowl",
			Ingredients: []nutrition.MealIngredient{
				{Name: "Egg", Quantity: 2, Unit: "pieces"},
				{Name: "Moon Cheese", Quantity: 40, Unit: "g"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, []string{"Moon Cheese"}, report.Unmatched["Mystery Bowl"])

	var row models.Recipe
	require.NoError(t, db.First(&row, "name = ?", "Mystery Bowl").Error)
	assert.Equal(t, 156, row.Calories)
}

func TestRecipeSeederClearRecipes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewIngredientService(db).CreateBatch(ctx, testCatalog()))

	seeder := NewRecipeSeeder(db)
	_, err := seeder.SeedRecipes(ctx, []catalog.RecipeFixture{
		{Name: "A", Ingredients: []nutrition.MealIngredient{{Name: "Egg", Quantity: 1, Unit: "piece"}}},
		{Name: "B", Ingredients: []nutrition.MealIngredient{{Name: "Oats", Quantity: 40, Unit: "g"}}},
	})
	require.NoError(t, err)

	require.NoError(t, seeder.ClearRecipes(ctx))

	var n int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestRecipeSeederEmptyFixtures(t *testing.T) {
	db := setupTestDB(t)
	seeder := NewRecipeSeeder(db)

	report, err := seeder.SeedRecipes(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
}
