package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/communityshift/scheduler/pkg/core/services"
)

// MaterializeShiftsCmd creates the materializeShifts command
func MaterializeShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "materializeShifts <start> <end>",
		Short: "Expand recurring shift patterns into dated shift instances for a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("start must be a date (YYYY-MM-DD): %w", err)
			}
			end, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("end must be a date (YYYY-MM-DD): %w", err)
			}

			result, err := services.MaterializeShifts(app.Ctx, app.Database, app.Logger, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Materialization complete!\n\n")
			fmt.Printf("Range:     %s to %s\n", result.Start.Format("2006-01-02"), result.End.Format("2006-01-02"))
			fmt.Printf("Created:   %d new instances\n", len(result.Generated))
			fmt.Printf("Kept:      %d existing instances\n", result.Kept)
			fmt.Printf("Total:     %d instances in range\n\n", result.Total)

			for _, instance := range result.Generated {
				fmt.Printf("  + %s %s-%s @ %s\n",
					instance.Date.Format("2006-01-02 (Mon)"),
					instance.StartTime, instance.EndTime, instance.Location)
			}
			if len(result.Generated) > 0 {
				fmt.Println()
			}

			return nil
		},
	}
}
