package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/communityshift/scheduler/pkg/core/assign"
	"github.com/communityshift/scheduler/pkg/core/model"
	"github.com/communityshift/scheduler/pkg/db"
)

// EnforceResult represents the result of a capacity enforcement pass
type EnforceResult struct {
	Month    time.Time
	Checked  int
	Accepted int
	Dropped  []assign.DroppedAssignment
	DryRun   bool
}

// EnforceMonthCapacity applies the capacity safety net to whatever
// assignments are currently persisted for the month, however they were
// produced. Assignments that push a volunteer over their monthly capacity are
// dropped, earliest shift dates winning. This must be run whenever
// assignments are supplied from outside the engine's own algorithm.
func EnforceMonthCapacity(
	ctx context.Context,
	database db.Database,
	logger *zap.Logger,
	month time.Time,
	dryRun bool,
) (*EnforceResult, error) {
	start, end := MonthRange(month)
	logger.Info("Enforcing monthly capacity",
		zap.String("month", month.Format("2006-01")),
		zap.Bool("dry_run", dryRun))

	instanceRecords, err := database.GetShiftInstancesInRange(
		ctx, start.Format(model.DateLayout), end.Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift instances: %w", err)
	}

	shiftDates := make(map[string]time.Time, len(instanceRecords))
	instanceIDs := make([]string, 0, len(instanceRecords))
	for _, rec := range instanceRecords {
		date, err := parseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("shift instance %s: %w", rec.ID, err)
		}
		shiftDates[rec.ID] = date
		instanceIDs = append(instanceIDs, rec.ID)
	}

	assignmentRecords, err := database.GetAssignmentsForInstances(ctx, instanceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	volunteerRecords, err := database.GetVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	capacities := make(map[string]int, len(volunteerRecords))
	for _, rec := range volunteerRecords {
		capacities[rec.ID] = model.Frequency(rec.Frequency).Capacity()
	}

	candidates := make([]model.Assignment, len(assignmentRecords))
	for i, rec := range assignmentRecords {
		candidates[i] = model.Assignment{
			ID:              rec.ID,
			ShiftInstanceID: rec.ShiftInstanceID,
			VolunteerID:     rec.VolunteerID,
			Status:          model.AssignmentStatus(rec.Status),
		}
	}

	accepted, dropped := assign.EnforceCapacity(candidates, shiftDates, capacities)
	for _, drop := range dropped {
		logger.Warn("Dropping over-capacity assignment",
			zap.String("assignment_id", drop.Assignment.ID),
			zap.String("volunteer_id", drop.Assignment.VolunteerID),
			zap.String("shift_date", drop.ShiftDate.Format(model.DateLayout)),
			zap.Int("used", drop.Used),
			zap.Int("capacity", drop.Capacity))
	}

	result := &EnforceResult{
		Month:    month,
		Checked:  len(candidates),
		Accepted: len(accepted),
		Dropped:  dropped,
		DryRun:   dryRun,
	}

	if dryRun || len(dropped) == 0 {
		return result, nil
	}

	droppedIDs := make([]string, len(dropped))
	for i, drop := range dropped {
		droppedIDs[i] = drop.Assignment.ID
	}
	if err := database.DeleteAssignments(ctx, droppedIDs); err != nil {
		return nil, fmt.Errorf("failed to delete dropped assignments: %w", err)
	}

	logger.Info("Capacity enforcement complete",
		zap.Int("checked", result.Checked),
		zap.Int("dropped", len(dropped)))

	return result, nil
}
