package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainhq/coachplan/backend/internal/catalog"
	"github.com/trainhq/coachplan/backend/internal/models"
	"github.com/trainhq/coachplan/backend/internal/nutrition"
	"github.com/trainhq/coachplan/backend/internal/service"
	"github.com/trainhq/coachplan/backend/internal/testhelpers"
)

// Seeds the shipped fixtures into a real postgres, then drives a plan
// summary the way the admin dashboard would.
func TestSeedAndSummarizeAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	refs, warnings, err := catalog.LoadIngredients(filepath.Join("..", "..", "data", "ingredients.json"))
	require.NoError(t, err)
	require.Empty(t, warnings)

	ingredients := service.NewIngredientService(db)
	require.NoError(t, ingredients.ReplaceCatalog(ctx, refs))

	fixtures, err := catalog.LoadRecipes(filepath.Join("..", "..", "data", "recipes.json"))
	require.NoError(t, err)

	seeder := service.NewRecipeSeeder(db)
	report, err := seeder.SeedRecipes(ctx, fixtures)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures), report.Created)
	assert.Empty(t, report.Unmatched)

	// Every seeded recipe should carry non-zero computed calories.
	var rows []models.Recipe
	require.NoError(t, db.Find(&rows).Error)
	for _, row := range rows {
		assert.Positive(t, row.Calories, "recipe %q", row.Name)
	}

	plans := service.NewPlanService(db)
	plan := &models.WeeklyPlan{
		ClientName:     "Integration Client",
		TargetCalories: 2500,
		TargetProtein:  180,
		TargetCarbs:    280,
		TargetFat:      80,
		Days: models.PlanDays{
			nutrition.Monday: {Meals: map[nutrition.MealSlot]nutrition.Meal{
				nutrition.SlotBreakfast: {Ingredients: []nutrition.MealIngredient{
					{Name: "Oats", Quantity: 60, Unit: "g"},
					{Name: "Whey Protein", Quantity: 30, Unit: "g"},
				}},
				nutrition.SlotLunch: {Ingredients: []nutrition.MealIngredient{
					{Name: "Kyllingfilet", Quantity: 150, Unit: "g"},
					{Name: "White Rice", Quantity: 125, Unit: "g"},
				}},
				nutrition.SlotEveningSnack: {Ingredients: []nutrition.MealIngredient{
					{Name: "Not In Catalog", Quantity: 100, Unit: "g"},
				}},
			}},
		},
	}
	require.NoError(t, plans.SaveWeeklyPlan(ctx, plan))

	summary, err := plans.WeekSummary(ctx, plan.ID)
	require.NoError(t, err)

	monday := summary.Days[nutrition.Monday]
	assert.Positive(t, monday.Totals.Calories)
	assert.Equal(t, []string{"Not In Catalog"}, monday.Unmatched)
	assert.LessOrEqual(t, monday.Progress.Calories, 100)

	// Reseed must leave exactly the fixture rows.
	require.NoError(t, ingredients.ReplaceCatalog(ctx, refs))
	n, err := ingredients.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(refs), n)
}
