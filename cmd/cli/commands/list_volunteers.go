package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/communityshift/scheduler/pkg/core/model"
)

// ListVolunteersCmd creates the listVolunteers command
func ListVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listVolunteers",
		Short: "List all volunteers with capacity and preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteers, err := app.Database.GetVolunteers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list volunteers: %w", err)
			}

			fmt.Printf("\nFound %d volunteers:\n\n", len(volunteers))
			for _, v := range volunteers {
				capacity := model.Frequency(v.Frequency).Capacity()
				fmt.Printf("- %s %s (%s) - %s - skill %d - %d/month @ %s - days [%s]\n",
					v.FirstName, v.LastName, v.ID,
					v.Status, v.SkillLevel, capacity,
					v.PreferredLocation,
					strings.Join(v.PreferredDays, " "))
			}
			fmt.Println()

			return nil
		},
	}
}
