package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
	"github.com/trainhq/coachplan/backend/internal/provider/openfoodfacts"
	"github.com/trainhq/coachplan/backend/internal/service"
)

var importCmd = &cobra.Command{
	Use:   "import NAME...",
	Short: "Fetch ingredients by name from OpenFoodFacts and append them to the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, cfg, err := openDB()
		if err != nil {
			return err
		}

		client := &openfoodfacts.Client{BaseURL: cfg.ImportBaseURL}
		var fetched []nutrition.IngredientReference
		for i, name := range args {
			if i > 0 {
				// Keep a fixed gap between calls to the public API.
				time.Sleep(cfg.ImportDelay)
			}
			ref, err := client.SearchIngredient(cmd.Context(), name)
			if err != nil {
				log.Printf("WARN import %q: %v", name, err)
				continue
			}
			fetched = append(fetched, ref)
		}

		if len(fetched) == 0 {
			log.Printf("Nothing imported (%d lookups failed)", len(args))
			return nil
		}
		if err := service.NewIngredientService(db).CreateBatch(cmd.Context(), fetched); err != nil {
			return err
		}
		log.Printf("Imported %d of %d ingredients", len(fetched), len(args))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
