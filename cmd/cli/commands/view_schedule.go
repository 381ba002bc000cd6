package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/communityshift/scheduler/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule <month>",
		Short: "Show a month's shifts with their assignees and headcounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			softTarget := app.Cfg.EngineConfig().SoftTarget
			view, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, month, softTarget)
			if err != nil {
				return err
			}

			fmt.Printf("\nSchedule for %s (%d shifts, %d understaffed):\n\n",
				view.Month.Format("January 2006"), len(view.Shifts), view.Understaffed)

			for _, shift := range view.Shifts {
				marker := " "
				if shift.Understaffed {
					marker = "!"
				}
				fmt.Printf("%s %s %s-%s @ %-7s [%d/%d] %s\n",
					marker,
					shift.Instance.Date.Format("2006-01-02 (Mon)"),
					shift.Instance.StartTime, shift.Instance.EndTime,
					shift.Instance.Location,
					shift.Headcount, softTarget,
					strings.Join(shift.Assignees, ", "))
			}
			fmt.Println()

			return nil
		},
	}
}
