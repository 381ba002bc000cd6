package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityshift/scheduler/pkg/core/services"
)

// EnforceCapacityCmd creates the enforceCapacity command
func EnforceCapacityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enforceCapacity <month>",
		Short: "Drop persisted assignments that exceed volunteer monthly capacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			result, err := services.EnforceMonthCapacity(app.Ctx, app.Database, app.Logger, month, dryRun)
			if err != nil {
				return err
			}

			if result.DryRun {
				fmt.Printf("\n✓ Capacity check complete (DRY RUN, nothing deleted)\n\n")
			} else {
				fmt.Printf("\n✓ Capacity check complete!\n\n")
			}

			fmt.Printf("Month:    %s\n", result.Month.Format("2006-01"))
			fmt.Printf("Checked:  %d assignments\n", result.Checked)
			fmt.Printf("Accepted: %d\n", result.Accepted)
			fmt.Printf("Dropped:  %d\n\n", len(result.Dropped))

			for _, drop := range result.Dropped {
				fmt.Printf("  ✗ %s on %s (%d/%d)\n",
					drop.Assignment.VolunteerID,
					drop.ShiftDate.Format("2006-01-02"),
					drop.Used, drop.Capacity)
			}
			if len(result.Dropped) > 0 {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Report violations without deleting")

	return cmd
}
