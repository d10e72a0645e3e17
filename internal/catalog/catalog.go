// Package catalog loads the seed fixtures the maintenance commands feed
// into the store. Catalog content lives in JSON data files, not in the
// scripts themselves, so the calculation core stays decoupled from any
// specific ingredient list.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
)

// RecipeFixture is one recipe seed record. Macro totals are not part of
// the fixture; the seeder computes them from the ingredient entries and
// the catalog.
type RecipeFixture struct {
	Name         string                     `json:"name"`
	Description  string                     `json:"description,omitempty"`
	Category     string                     `json:"category,omitempty"`
	Ingredients  []nutrition.MealIngredient `json:"ingredients"`
	Instructions []string                   `json:"instructions,omitempty"`
}

// LoadIngredients reads an ingredient fixture file. Records that break
// the catalog invariants (empty name, negative macros) are dropped and
// reported as warnings; questionable-but-usable records (a reference
// amount with no numeric component) load with a warning, since the
// resolver absorbs them with its defaults. Catalog order is file order.
func LoadIngredients(path string) ([]nutrition.IngredientReference, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read ingredient fixture %s: %w", path, err)
	}

	var raw []nutrition.IngredientReference
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode ingredient fixture %s: %w", path, err)
	}

	refs := make([]nutrition.IngredientReference, 0, len(raw))
	var warnings []string
	for i, ref := range raw {
		if err := validateReference(ref); err != nil {
			warnings = append(warnings, fmt.Sprintf("record %d (%q): %v, skipped", i, ref.Name, err))
			continue
		}
		if !strings.ContainsAny(ref.ReferenceAmount, "0123456789") {
			warnings = append(warnings, fmt.Sprintf("record %d (%q): reference amount %q has no numeric base, resolver will assume %v",
				i, ref.Name, ref.ReferenceAmount, nutrition.DefaultResolverConfig().DefaultBaseAmount))
		}
		refs = append(refs, ref)
	}
	return refs, warnings, nil
}

// LoadRecipes reads a recipe fixture file.
func LoadRecipes(path string) ([]RecipeFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe fixture %s: %w", path, err)
	}

	var fixtures []RecipeFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode recipe fixture %s: %w", path, err)
	}
	for i, f := range fixtures {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("recipe fixture %s: record %d has no name", path, i)
		}
	}
	return fixtures, nil
}

func validateReference(ref nutrition.IngredientReference) error {
	if strings.TrimSpace(ref.Name) == "" {
		return fmt.Errorf("missing name")
	}
	if strings.TrimSpace(ref.ReferenceAmount) == "" {
		return fmt.Errorf("missing reference amount")
	}
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"calories", ref.CaloriesPer},
		{"protein", ref.ProteinPer},
		{"carbs", ref.CarbsPer},
		{"fat", ref.FatPer},
		{"fiber", ref.FiberPer},
	} {
		if m.value < 0 {
			return fmt.Errorf("negative %s", m.name)
		}
	}
	return nil
}
