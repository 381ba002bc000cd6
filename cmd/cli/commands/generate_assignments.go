package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/communityshift/scheduler/pkg/core/services"
)

// GenerateAssignmentsCmd creates the generateAssignments command
func GenerateAssignmentsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateAssignments <month>",
		Short: "Assign volunteers to a month's open shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			result, err := services.GenerateAssignments(
				app.Ctx, app.Database, app.Logger, app.Cfg.EngineConfig(), month, dryRun)
			if err != nil {
				return err
			}

			if result.DryRun {
				fmt.Printf("\n✓ Assignment run complete (DRY RUN, nothing saved)\n\n")
			} else {
				fmt.Printf("\n✓ Assignment run complete!\n\n")
			}

			outcome := result.Outcome
			fmt.Printf("Month:         %s\n", result.Month.Format("2006-01"))
			fmt.Printf("Assignments:   %d\n", len(outcome.Assignments))
			fmt.Printf("Passes:        %d\n", outcome.Passes)
			fmt.Printf("Understaffed:  %d shifts below target\n", outcome.Understaffed)
			if len(result.Dropped) > 0 {
				fmt.Printf("Dropped:       %d over-capacity assignments\n", len(result.Dropped))
			}
			if !result.DryRun {
				fmt.Printf("Applied:       %d assignments saved\n", result.Applied)
			}

			// Per-volunteer utilization, stable order
			volunteerIDs := make([]string, 0, len(outcome.Utilization))
			for id := range outcome.Utilization {
				volunteerIDs = append(volunteerIDs, id)
			}
			sort.Strings(volunteerIDs)

			fmt.Printf("\nUtilization:\n")
			for _, id := range volunteerIDs {
				u := outcome.Utilization[id]
				fmt.Printf("  %-20s %d/%d\n", id, u.Used, u.Capacity)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")

	return cmd
}
