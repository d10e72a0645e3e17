package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/internal/catalog"
	"github.com/trainhq/coachplan/backend/internal/models"
	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// RecipeSeeder bulk-creates recipe rows from fixtures, computing each
// recipe's stored macro totals from its ingredient entries and the
// current catalog. Ingredient names that match nothing contribute zero
// macros and are collected in the report; a bad name never aborts the
// batch.
type RecipeSeeder struct {
	db          *gorm.DB
	ingredients *IngredientService
}

// NewRecipeSeeder creates a new RecipeSeeder instance
func NewRecipeSeeder(db *gorm.DB) *RecipeSeeder {
	return &RecipeSeeder{db: db, ingredients: NewIngredientService(db)}
}

// SeedReport summarizes one seeding run.
type SeedReport struct {
	Created   int
	Unmatched map[string][]string
}

// SeedRecipes writes the fixtures. The returned report lists, per
// recipe, the ingredient names that found no catalog match.
func (s *RecipeSeeder) SeedRecipes(ctx context.Context, fixtures []catalog.RecipeFixture) (*SeedReport, error) {
	report := &SeedReport{Unmatched: make(map[string][]string)}
	if len(fixtures) == 0 {
		return report, nil
	}

	refs, err := s.ingredients.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Recipe, 0, len(fixtures))
	for _, f := range fixtures {
		entries := make([]nutrition.ResolvedMacros, 0, len(f.Ingredients))
		for _, ing := range f.Ingredients {
			ref, ok := nutrition.FindIngredient(ing.Name, refs)
			if !ok {
				report.Unmatched[f.Name] = append(report.Unmatched[f.Name], ing.Name)
				entries = append(entries, nutrition.ResolvedMacros{})
				continue
			}
			entries = append(entries, nutrition.ComputeEntryMacros(&ref, ing.Quantity, ing.Unit))
		}

		row := models.Recipe{
			Name:         f.Name,
			Description:  f.Description,
			Category:     f.Category,
			Ingredients:  models.RecipeIngredients(f.Ingredients),
			Instructions: models.JSONBStringArray(f.Instructions),
		}
		row.SetMacros(nutrition.SumMacros(entries))
		rows = append(rows, row)
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("seed recipes: %w", err)
	}
	report.Created = len(rows)
	return report, nil
}

// ClearRecipes drops every recipe row ahead of a reseed.
func (s *RecipeSeeder) ClearRecipes(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&models.Recipe{}).Error
	if err != nil {
		return fmt.Errorf("clear recipes: %w", err)
	}
	return nil
}
