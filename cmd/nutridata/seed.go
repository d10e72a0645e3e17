package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/config"
	"github.com/trainhq/coachplan/backend/internal/catalog"
	"github.com/trainhq/coachplan/backend/internal/service"
)

var seedReplace bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the ingredient catalog and recipe library from the fixture files",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}
		return runSeed(cmd.Context(), db, cfg, seedReplace)
	},
}

var reseedCmd = &cobra.Command{
	Use:   "reseed",
	Short: "Clear the catalog and recipe library, then seed from scratch",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}
		return runSeed(cmd.Context(), db, cfg, true)
	},
}

// runSeed loads both fixtures and writes them through the services.
// Data-quality problems (invalid fixture records, unmatched recipe
// ingredients) are warnings; only storage failures abort.
func runSeed(ctx context.Context, db *gorm.DB, cfg *config.Config, replace bool) error {
	refs, warnings, err := catalog.LoadIngredients(cfg.IngredientFixture)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("WARN ingredient fixture: %s", w)
	}

	ingredients := service.NewIngredientService(db)
	if replace {
		err = ingredients.ReplaceCatalog(ctx, refs)
	} else {
		err = ingredients.CreateBatch(ctx, refs)
	}
	if err != nil {
		return err
	}

	fixtures, err := catalog.LoadRecipes(cfg.RecipeFixture)
	if err != nil {
		return err
	}
	seeder := service.NewRecipeSeeder(db)
	if replace {
		if err := seeder.ClearRecipes(ctx); err != nil {
			return err
		}
	}
	report, err := seeder.SeedRecipes(ctx, fixtures)
	if err != nil {
		return err
	}
	for recipe, names := range report.Unmatched {
		log.Printf("WARN recipe %q: no catalog match for %v, macros counted as zero", recipe, names)
	}

	log.Printf("Seeded %d ingredients and %d recipes", len(refs), report.Created)
	return nil
}

func init() {
	seedCmd.Flags().BoolVar(&seedReplace, "replace", false, "Clear existing rows before seeding")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reseedCmd)
}
