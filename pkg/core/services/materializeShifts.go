package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/communityshift/scheduler/pkg/core/model"
	"github.com/communityshift/scheduler/pkg/core/schedule"
	"github.com/communityshift/scheduler/pkg/db"
)

// MaterializeResult represents the result of materializing shift instances
// for a date range
type MaterializeResult struct {
	Start     time.Time
	End       time.Time
	Generated []model.ShiftInstance // instances created by this run
	Kept      int                   // persisted instances that superseded generated ones or passed through
	Total     int                   // instances in the range after the run
}

// MaterializeShifts expands recurring shift patterns into concrete shift
// instances for the closed range [start, end] and stores the ones that don't
// already exist. Persisted instances are authoritative: a hand-edited or
// assigned instance for the same (pattern, date) occurrence is kept and the
// generated one discarded.
func MaterializeShifts(
	ctx context.Context,
	database db.Database,
	logger *zap.Logger,
	start, end time.Time,
) (*MaterializeResult, error) {
	logger.Info("Materializing shift instances",
		zap.String("start", start.Format(model.DateLayout)),
		zap.String("end", end.Format(model.DateLayout)))

	patternRecords, err := database.GetShiftPatterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift patterns: %w", err)
	}

	patterns := make([]model.RecurringShiftPattern, 0, len(patternRecords))
	for _, rec := range patternRecords {
		patterns = append(patterns, patternFromRecord(rec))
	}

	exceptionRecords, err := database.GetShiftExceptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift exceptions: %w", err)
	}

	exceptions := make([]model.ShiftOccurrenceException, 0, len(exceptionRecords))
	for _, rec := range exceptionRecords {
		exception, err := exceptionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, exception)
	}

	logger.Debug("Loaded patterns and exceptions",
		zap.Int("patterns", len(patterns)),
		zap.Int("exceptions", len(exceptions)))

	instanceRecords, err := database.GetShiftInstancesInRange(
		ctx, start.Format(model.DateLayout), end.Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing shift instances: %w", err)
	}

	persisted := make([]model.ShiftInstance, 0, len(instanceRecords))
	for _, rec := range instanceRecords {
		instance, err := instanceFromRecord(rec)
		if err != nil {
			return nil, err
		}
		persisted = append(persisted, instance)
	}

	generated, err := schedule.Materialize(patterns, exceptions, start, end)
	if err != nil {
		return nil, fmt.Errorf("materialization failed: %w", err)
	}

	merged := schedule.Merge(generated, persisted)
	fresh := schedule.NewlyGenerated(merged)

	// Mint IDs for the instances this run created
	records := make([]db.ShiftInstance, len(fresh))
	for i := range fresh {
		fresh[i].ID = uuid.New().String()
		records[i] = instanceRecord(fresh[i])
	}

	if err := database.InsertShiftInstances(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to insert shift instances: %w", err)
	}

	logger.Info("Materialization complete",
		zap.Int("generated", len(fresh)),
		zap.Int("kept", len(persisted)),
		zap.Int("total", len(merged)))

	return &MaterializeResult{
		Start:     start,
		End:       end,
		Generated: fresh,
		Kept:      len(persisted),
		Total:     len(merged),
	}, nil
}
