package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trainhq/coachplan/backend/internal/nutrition"
	"github.com/trainhq/coachplan/backend/internal/service"
)

var summaryCmd = &cobra.Command{
	Use:   "summary PLAN_ID",
	Short: "Print a weekly plan's macro totals and progress against its targets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q: %w", args[0], err)
		}

		db, _, err := openDB()
		if err != nil {
			return err
		}

		summary, err := service.NewPlanService(db).WeekSummary(cmd.Context(), planID)
		if err != nil {
			return err
		}

		for _, day := range nutrition.Weekdays() {
			ds, ok := summary.Days[day]
			if !ok {
				continue
			}
			fmt.Printf("%-10s %5d kcal (%3d%%)  P %5.1fg (%3d%%)  C %5.1fg (%3d%%)  F %5.1fg (%3d%%)\n",
				day,
				ds.Totals.Calories, ds.Progress.Calories,
				ds.Totals.Protein, ds.Progress.Protein,
				ds.Totals.Carbs, ds.Progress.Carbs,
				ds.Totals.Fat, ds.Progress.Fat,
			)
			for _, name := range ds.Unmatched {
				fmt.Printf("           ! no catalog match for %q, counted as zero\n", name)
			}
		}
		fmt.Printf("%-10s %5d kcal         P %5.1fg         C %5.1fg         F %5.1fg\n",
			"week", summary.Totals.Calories, summary.Totals.Protein, summary.Totals.Carbs, summary.Totals.Fat)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
