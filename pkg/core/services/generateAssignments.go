package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/communityshift/scheduler/pkg/core/assign"
	"github.com/communityshift/scheduler/pkg/core/model"
	"github.com/communityshift/scheduler/pkg/db"
)

// GenerateResult represents the result of generating assignments for a month
type GenerateResult struct {
	Month   time.Time
	Outcome *assign.Outcome
	Dropped []assign.DroppedAssignment
	Applied int // assignments written to the database (0 on dry run)
	DryRun  bool
}

// GenerateAssignments runs the assignment engine over a target month: it
// loads the active roster and the month's open shift instances, computes an
// assignment set, re-checks it through the capacity safety net, and replaces
// the month's previously generated assignments with the new set.
//
// Only Active volunteers and Open instances are fed to the engine; the engine
// itself reports ErrNoVolunteers / ErrNoOpenShifts when the filtered inputs
// are empty.
func GenerateAssignments(
	ctx context.Context,
	database db.Database,
	logger *zap.Logger,
	engineCfg assign.EngineConfig,
	month time.Time,
	dryRun bool,
) (*GenerateResult, error) {
	start, end := MonthRange(month)
	logger.Info("Generating assignments",
		zap.String("month", month.Format("2006-01")),
		zap.Bool("dry_run", dryRun))

	volunteers, err := loadActiveVolunteers(ctx, database)
	if err != nil {
		return nil, err
	}

	instances, openInstanceIDs, err := loadOpenInstances(ctx, database, start, end)
	if err != nil {
		return nil, err
	}

	logger.Debug("Engine inputs loaded",
		zap.Int("active_volunteers", len(volunteers)),
		zap.Int("open_shifts", len(instances)))

	engine := assign.New(engineCfg)
	outcome, err := engine.Run(volunteers, instances)
	if err != nil {
		return nil, fmt.Errorf("assignment run failed: %w", err)
	}

	logger.Info("Engine run complete",
		zap.Int("assignments", len(outcome.Assignments)),
		zap.Int("passes", outcome.Passes),
		zap.Int("understaffed", outcome.Understaffed))

	// Re-run the capacity safety net over the produced set. The engine
	// already enforces capacity, so drops here indicate an engine defect and
	// are worth loud logging, but they are recovered, not fatal.
	candidates := make([]model.Assignment, len(outcome.Assignments))
	for i, pair := range outcome.Assignments {
		candidates[i] = model.Assignment{
			ShiftInstanceID: pair.ShiftInstanceID,
			VolunteerID:     pair.VolunteerID,
			Status:          model.AssignmentAssigned,
		}
	}

	shiftDates := make(map[string]time.Time, len(instances))
	for _, instance := range instances {
		shiftDates[instance.ID] = instance.Date
	}
	capacities := make(map[string]int, len(volunteers))
	for _, volunteer := range volunteers {
		capacities[volunteer.ID] = volunteer.MonthlyCapacity()
	}

	accepted, dropped := assign.EnforceCapacity(candidates, shiftDates, capacities)
	for _, drop := range dropped {
		logger.Warn("Dropped over-capacity assignment",
			zap.String("volunteer_id", drop.Assignment.VolunteerID),
			zap.String("shift_instance_id", drop.Assignment.ShiftInstanceID),
			zap.Int("used", drop.Used),
			zap.Int("capacity", drop.Capacity))
	}

	result := &GenerateResult{
		Month:   month,
		Outcome: outcome,
		Dropped: dropped,
		DryRun:  dryRun,
	}

	if dryRun {
		logger.Info("Dry run, skipping database writes")
		return result, nil
	}

	// Clear the month's stale assignments on open instances before applying
	// the new set. Assignments on non-open instances are left untouched.
	if err := database.DeleteAssignmentsForInstances(ctx, openInstanceIDs); err != nil {
		return nil, fmt.Errorf("failed to clear stale assignments: %w", err)
	}

	records := make([]db.Assignment, len(accepted))
	for i, assignment := range accepted {
		records[i] = db.Assignment{
			ID:              uuid.New().String(),
			ShiftInstanceID: assignment.ShiftInstanceID,
			VolunteerID:     assignment.VolunteerID,
			Status:          string(assignment.Status),
		}
	}

	if err := database.InsertAssignments(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to insert assignments: %w", err)
	}

	result.Applied = len(records)
	logger.Info("Assignments applied", zap.Int("count", result.Applied))

	return result, nil
}

// loadActiveVolunteers fetches the roster and keeps only Active volunteers
func loadActiveVolunteers(ctx context.Context, database db.Database) ([]model.Volunteer, error) {
	records, err := database.GetVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	volunteers := make([]model.Volunteer, 0, len(records))
	for _, rec := range records {
		volunteer, err := volunteerFromRecord(rec)
		if err != nil {
			return nil, err
		}
		if !volunteer.IsActive() {
			continue
		}
		volunteers = append(volunteers, volunteer)
	}

	return volunteers, nil
}

// loadOpenInstances fetches the range's shift instances and keeps only Open
// ones, returning their IDs alongside
func loadOpenInstances(
	ctx context.Context,
	database db.Database,
	start, end time.Time,
) ([]model.ShiftInstance, []string, error) {
	records, err := database.GetShiftInstancesInRange(
		ctx, start.Format(model.DateLayout), end.Format(model.DateLayout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch shift instances: %w", err)
	}

	var instances []model.ShiftInstance
	var ids []string
	for _, rec := range records {
		instance, err := instanceFromRecord(rec)
		if err != nil {
			return nil, nil, err
		}
		if instance.Status != model.InstanceOpen {
			continue
		}
		instances = append(instances, instance)
		ids = append(ids, instance.ID)
	}

	return instances, ids, nil
}
