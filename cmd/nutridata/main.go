// nutridata is the data-maintenance CLI for the coaching platform's
// ingredient catalog, recipe library, and nutrition plans. It is the
// only writer of catalog data; the admin dashboard consumes what it
// seeds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/trainhq/coachplan/backend/config"
	"github.com/trainhq/coachplan/backend/internal/database"
)

var rootCmd = &cobra.Command{
	Use:   "nutridata",
	Short: "nutridata maintains the ingredient catalog, recipes, and plan summaries",
	Long: "nutridata seeds and cleans the ingredient/recipe database from JSON fixture " +
		"files, imports ingredient records from OpenFoodFacts, and prints weekly plan " +
		"macro summaries. Configuration comes from the environment (see config package).",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB loads configuration and connects. Every subcommand starts
// here; none of them keep state between runs.
func openDB() (*gorm.DB, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}
